package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Имя-заглушка для гостей, созданных продвижением очереди; реальные
// имена задаются через rename.
const promotedGuestName = "Guest"

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	var reg domain.Registration
	var chatID sql.NullInt64
	if err := row.Scan(
		&reg.ID, &reg.SessionID, &reg.Contact.Name, &reg.Contact.Email, &reg.Contact.Phone,
		&chatID, &reg.Status, &reg.GuestCount, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan registration: %w", err)
	}
	if chatID.Valid {
		reg.Contact.TelegramChatID = &chatID.Int64
	}
	return &reg, nil
}

func chatIDValue(c domain.Contact) any {
	if c.TelegramChatID == nil {
		return nil
	}
	return *c.TelegramChatID
}

// lockSession берёт блокировку строки сессии. Любая транзакция,
// меняющая занятость, начинается с неё.
func lockSession(ctx context.Context, tx *sql.Tx, sessionID string) (maxCapacity, confirmed int, err error) {
	query := `SELECT max_capacity, confirmed_attendees FROM sessions WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, query, sessionID).Scan(&maxCapacity, &confirmed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, domain.ErrSessionNotFound
		}
		return 0, 0, fmt.Errorf("lock session row: %w", err)
	}
	return maxCapacity, confirmed, nil
}

// adjustCapacity двигает счётчик занятых мест под блокировкой сессии,
// при освобождении не опускается ниже нуля.
func adjustCapacity(ctx context.Context, tx *sql.Tx, sessionID string, delta int) error {
	query := `UPDATE sessions
			  SET confirmed_attendees = GREATEST(confirmed_attendees + $2, 0), updated_at = now()
			  WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, sessionID, delta); err != nil {
		return fmt.Errorf("adjust capacity: %w", err)
	}
	return nil
}

func (r *ReservationRepository) CreateRegistration(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	maxCapacity, confirmed, err := lockSession(ctx, tx, reg.SessionID)
	if err != nil {
		return err
	}
	if confirmed >= maxCapacity {
		return domain.ErrNoAvailableSpots
	}

	query := `INSERT INTO registrations (id, session_id, name, email, phone, telegram_chat_id,
	                                     status, guest_count, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9)`
	_, err = tx.ExecContext(
		ctx, query, reg.ID, reg.SessionID,
		reg.Contact.Name, reg.Contact.Email, reg.Contact.Phone, chatIDValue(reg.Contact),
		reg.Status, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}

	if err = adjustCapacity(ctx, tx, reg.SessionID, 1); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetRegistration(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT id, session_id, name, email, phone, telegram_chat_id, status, guest_count, created_at, updated_at
			  FROM registrations
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *ReservationRepository) ConfirmRegistration(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Срок оплаты меряем часами БД, как и свипер, иначе при расхождении
	// часов бронь одновременно подтверждаема и просрочена.
	query := `SELECT r.status, r.created_at + s.payment_ttl > now()
			  FROM registrations r
			  JOIN sessions s ON s.id = r.session_id
			  WHERE r.id = $1
			  FOR UPDATE OF r`
	var status domain.RegistrationStatus
	var withinTTL bool
	if err = tx.QueryRowContext(ctx, query, id).Scan(&status, &withinTTL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRegistrationNotFound
		}
		return fmt.Errorf("lock registration: %w", err)
	}

	if status != domain.RegistrationStatusPending {
		return domain.ErrRegistrationNotPending
	}
	if !withinTTL {
		return domain.ErrPaymentExpired
	}

	update := `UPDATE registrations SET status = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, update, id, domain.RegistrationStatusConfirmed); err != nil {
		return fmt.Errorf("confirm registration: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) CancelRegistration(ctx context.Context, id string) (*domain.CancelOutcome, error) {
	// Порядок блокировок: сначала строка сессии, потом бронь.
	var sessionID string
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT session_id FROM registrations WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}
	if err = row.Scan(&sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan session id: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, _, err = lockSession(ctx, tx, sessionID); err != nil {
		return nil, err
	}

	var status domain.RegistrationStatus
	var guestCount int
	lockReg := `SELECT status, guest_count FROM registrations WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockReg, id).Scan(&status, &guestCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("lock registration: %w", err)
	}
	if status == domain.RegistrationStatusCancelled {
		return nil, domain.ErrRegistrationNotFound
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM guest_entries WHERE registration_id = $1`, id); err != nil {
		return nil, fmt.Errorf("delete guest entries: %w", err)
	}
	// Владелец ушёл, его заявка на гостей тоже покидает очередь.
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM waitlist_entries WHERE registration_id = $1`, id); err != nil {
		return nil, fmt.Errorf("delete waitlist entry: %w", err)
	}

	update := `UPDATE registrations SET status = $2, guest_count = 0, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, update, id, domain.RegistrationStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel registration: %w", err)
	}

	freed := 1 + guestCount
	if err = adjustCapacity(ctx, tx, sessionID, -freed); err != nil {
		return nil, err
	}

	report, err := promoteLocked(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &domain.CancelOutcome{SessionID: sessionID, Freed: freed, Promotion: *report}, nil
}

func (r *ReservationRepository) AddGuests(ctx context.Context, registrationID string, requested int) (*domain.SplitOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	sessionID, err := activeRegistrationSession(ctx, tx, registrationID)
	if err != nil {
		return nil, err
	}

	maxCapacity, confirmed, err := lockSession(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}

	// Перечитываем статус под блокировкой: пока мы ждали строку сессии,
	// бронь могли отменить и освободить её места.
	var status domain.RegistrationStatus
	lockReg := `SELECT status FROM registrations WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockReg, registrationID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("lock registration: %w", err)
	}
	if status == domain.RegistrationStatusCancelled {
		return nil, domain.ErrRegistrationNotFound
	}

	toConfirm, toWaitlist := domain.SplitRequest(maxCapacity-confirmed, requested)

	now := time.Now().UTC()
	for i := 0; i < toConfirm; i++ {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO guest_entries (id, registration_id, name, created_at) VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), registrationID, promotedGuestName, now,
		)
		if err != nil {
			return nil, fmt.Errorf("insert guest entry: %w", err)
		}
	}

	if toConfirm > 0 {
		_, err = tx.ExecContext(ctx,
			`UPDATE registrations SET guest_count = guest_count + $2, updated_at = now() WHERE id = $1`,
			registrationID, toConfirm,
		)
		if err != nil {
			return nil, fmt.Errorf("update guest count: %w", err)
		}
		if err = adjustCapacity(ctx, tx, sessionID, toConfirm); err != nil {
			return nil, err
		}
	}

	if toWaitlist > 0 {
		if err = upsertGuestWaitlist(ctx, tx, sessionID, registrationID, toWaitlist); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &domain.SplitOutcome{Added: toConfirm, Waitlisted: toWaitlist}, nil
}

func (r *ReservationRepository) RemoveGuests(ctx context.Context, registrationID string, guestIDs []string) (*domain.RemoveOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	sessionID, err := activeRegistrationSession(ctx, tx, registrationID)
	if err != nil {
		return nil, err
	}

	if _, _, err = lockSession(ctx, tx, sessionID); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM guest_entries WHERE registration_id = $1 AND id = ANY($2)`,
		registrationID, pq.Array(guestIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("delete guest entries: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("guest rows affected: %w", err)
	}
	// Все id должны принадлежать этой брони, иначе откатываем всё.
	if int(removed) != len(guestIDs) {
		return nil, domain.ErrGuestNotFound
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE registrations SET guest_count = guest_count - $2, updated_at = now() WHERE id = $1`,
		registrationID, removed,
	)
	if err != nil {
		return nil, fmt.Errorf("update guest count: %w", err)
	}
	if err = adjustCapacity(ctx, tx, sessionID, -int(removed)); err != nil {
		return nil, err
	}

	report, err := promoteLocked(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &domain.RemoveOutcome{SessionID: sessionID, Removed: int(removed), Promotion: *report}, nil
}

func (r *ReservationRepository) RenameGuests(ctx context.Context, registrationID string, renames []domain.GuestRename) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = activeRegistrationSession(ctx, tx, registrationID); err != nil {
		return err
	}

	for _, rn := range renames {
		res, err := tx.ExecContext(ctx,
			`UPDATE guest_entries SET name = $3 WHERE id = $1 AND registration_id = $2`,
			rn.ID, registrationID, rn.Name,
		)
		if err != nil {
			return fmt.Errorf("rename guest: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rename rows affected: %w", err)
		}
		if rows == 0 {
			return domain.ErrGuestNotFound
		}
	}

	return tx.Commit()
}

func (r *ReservationRepository) MaterializeParty(ctx context.Context, sessionID string, contact domain.Contact, total int) (*domain.PartyOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	maxCapacity, confirmed, err := lockSession(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	avail := maxCapacity - confirmed
	if avail <= 0 {
		// Сессия заполнилась, пока компания платила: вся компания
		// ждёт места одной заявкой.
		_, err = tx.ExecContext(ctx,
			`INSERT INTO waitlist_entries (id, session_id, kind, requested, name, email, phone, telegram_chat_id, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.New().String(), sessionID, domain.WaitlistKindNewSpot, total,
			contact.Name, contact.Email, contact.Phone, chatIDValue(contact), now,
		)
		if err != nil {
			return nil, fmt.Errorf("insert waitlist entry: %w", err)
		}
		if err = tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return &domain.PartyOutcome{Waitlisted: total}, nil
	}

	confirmUnits, remainder := domain.SplitRequest(avail, total)

	regID := uuid.New().String()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO registrations (id, session_id, name, email, phone, telegram_chat_id,
		                            status, guest_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		regID, sessionID, contact.Name, contact.Email, contact.Phone, chatIDValue(contact),
		domain.RegistrationStatusConfirmed, confirmUnits-1, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	for i := 0; i < confirmUnits-1; i++ {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO guest_entries (id, registration_id, name, created_at) VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), regID, promotedGuestName, now,
		)
		if err != nil {
			return nil, fmt.Errorf("insert guest entry: %w", err)
		}
	}

	if err = adjustCapacity(ctx, tx, sessionID, confirmUnits); err != nil {
		return nil, err
	}

	if remainder > 0 {
		if err = upsertGuestWaitlist(ctx, tx, sessionID, regID, remainder); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &domain.PartyOutcome{RegistrationID: regID, Confirmed: confirmUnits, Waitlisted: remainder}, nil
}

func (r *ReservationRepository) PromoteSession(ctx context.Context, sessionID string) (*domain.PromotionReport, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, _, err = lockSession(ctx, tx, sessionID); err != nil {
		return nil, err
	}

	report, err := promoteLocked(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return report, nil
}

func (r *ReservationRepository) ListExpiredPending(ctx context.Context) ([]*domain.Registration, error) {
	query := `SELECT r.id, r.session_id, r.name, r.email, r.phone, r.telegram_chat_id,
	                 r.status, r.guest_count, r.created_at, r.updated_at
			  FROM registrations r
			  JOIN sessions s ON s.id = r.session_id
			  WHERE r.status = $1
			    AND r.created_at + s.payment_ttl < now()
			  ORDER BY r.created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.RegistrationStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list expired pending: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

// activeRegistrationSession находит сессию брони; отменённые брони
// считаются несуществующими.
func activeRegistrationSession(ctx context.Context, tx *sql.Tx, registrationID string) (string, error) {
	var sessionID string
	var status domain.RegistrationStatus
	query := `SELECT session_id, status FROM registrations WHERE id = $1`
	if err := tx.QueryRowContext(ctx, query, registrationID).Scan(&sessionID, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrRegistrationNotFound
		}
		return "", fmt.Errorf("find registration: %w", err)
	}
	if status == domain.RegistrationStatusCancelled {
		return "", domain.ErrRegistrationNotFound
	}
	return sessionID, nil
}

// upsertGuestWaitlist создаёт или увеличивает единственную add_guests
// заявку брони. Исходный created_at сохраняется, место в очереди не
// теряется.
func upsertGuestWaitlist(ctx context.Context, tx *sql.Tx, sessionID, registrationID string, count int) error {
	query := `INSERT INTO waitlist_entries (id, session_id, kind, registration_id, requested, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (registration_id) WHERE kind = 'add_guests'
			  DO UPDATE SET requested = waitlist_entries.requested + EXCLUDED.requested`
	_, err := tx.ExecContext(ctx, query,
		uuid.New().String(), sessionID, domain.WaitlistKindAddGuests,
		registrationID, count, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert waitlist entry: %w", err)
	}
	return nil
}

// promoteLocked раздаёт освободившиеся места очереди. Вызывающий уже
// держит блокировку сессии; весь проход коммитится вместе с
// освобождением мест.
func promoteLocked(ctx context.Context, tx *sql.Tx, sessionID string) (*domain.PromotionReport, error) {
	var maxCapacity, confirmed int
	counter := `SELECT max_capacity, confirmed_attendees FROM sessions WHERE id = $1`
	if err := tx.QueryRowContext(ctx, counter, sessionID).Scan(&maxCapacity, &confirmed); err != nil {
		return nil, fmt.Errorf("read session counter: %w", err)
	}
	if maxCapacity-confirmed <= 0 {
		return &domain.PromotionReport{}, nil
	}

	query := `SELECT id, session_id, kind, registration_id, requested, name, email, phone, telegram_chat_id, created_at
			  FROM waitlist_entries
			  WHERE session_id = $1
			  ORDER BY created_at, id
			  FOR UPDATE`
	rows, err := tx.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list waitlist entries: %w", err)
	}

	var entries []domain.WaitlistEntry
	for rows.Next() {
		var e domain.WaitlistEntry
		var regID sql.NullString
		var name, email, phone sql.NullString
		var chatID sql.NullInt64
		if err = rows.Scan(
			&e.ID, &e.SessionID, &e.Kind, &regID, &e.Requested,
			&name, &email, &phone, &chatID, &e.CreatedAt,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan waitlist entry: %w", err)
		}
		if regID.Valid {
			e.RegistrationID = &regID.String
		}
		if e.Kind == domain.WaitlistKindNewSpot {
			c := domain.Contact{Name: name.String, Email: email.String, Phone: phone.String}
			if chatID.Valid {
				c.TelegramChatID = &chatID.Int64
			}
			e.Contact = &c
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate waitlist entries: %w", err)
	}
	rows.Close()

	report := domain.PlanPromotion(maxCapacity-confirmed, entries)
	for i := range report.Conversions {
		if err = applyConversion(ctx, tx, &report.Conversions[i]); err != nil {
			return nil, err
		}
	}

	if report.Promoted > 0 {
		if err = adjustCapacity(ctx, tx, sessionID, report.Promoted); err != nil {
			return nil, err
		}
	}

	return &report, nil
}

func applyConversion(ctx context.Context, tx *sql.Tx, conv *domain.Conversion) error {
	now := time.Now().UTC()
	entry := &conv.Entry

	switch entry.Kind {
	case domain.WaitlistKindAddGuests:
		for i := 0; i < conv.Units; i++ {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO guest_entries (id, registration_id, name, created_at) VALUES ($1, $2, $3, $4)`,
				uuid.New().String(), *entry.RegistrationID, promotedGuestName, now,
			)
			if err != nil {
				return fmt.Errorf("insert promoted guest: %w", err)
			}
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE registrations SET guest_count = guest_count + $2, updated_at = now() WHERE id = $1`,
			*entry.RegistrationID, conv.Units,
		)
		if err != nil {
			return fmt.Errorf("update guest count: %w", err)
		}
		return settleEntry(ctx, tx, entry.ID, conv.Remaining)

	case domain.WaitlistKindNewSpot:
		regID := uuid.New().String()
		_, err := tx.ExecContext(ctx,
			`INSERT INTO registrations (id, session_id, name, email, phone, telegram_chat_id,
			                            status, guest_count, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			regID, entry.SessionID,
			entry.Contact.Name, entry.Contact.Email, entry.Contact.Phone, chatIDValue(*entry.Contact),
			domain.RegistrationStatusConfirmed, conv.Units-1, now, now,
		)
		if err != nil {
			return fmt.Errorf("insert promoted registration: %w", err)
		}
		for i := 0; i < conv.Units-1; i++ {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO guest_entries (id, registration_id, name, created_at) VALUES ($1, $2, $3, $4)`,
				uuid.New().String(), regID, promotedGuestName, now,
			)
			if err != nil {
				return fmt.Errorf("insert promoted guest: %w", err)
			}
		}
		conv.PromotedRegistrationID = regID
		if conv.Remaining == 0 {
			return settleEntry(ctx, tx, entry.ID, 0)
		}
		// У компании теперь есть бронь, остаток превращается в
		// add_guests заявку и сохраняет место в очереди.
		_, err = tx.ExecContext(ctx,
			`UPDATE waitlist_entries
			 SET kind = $2, registration_id = $3, requested = $4,
			     name = NULL, email = NULL, phone = NULL, telegram_chat_id = NULL
			 WHERE id = $1`,
			entry.ID, domain.WaitlistKindAddGuests, regID, conv.Remaining,
		)
		if err != nil {
			return fmt.Errorf("morph waitlist entry: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown waitlist kind %q", entry.Kind)
	}
}

func settleEntry(ctx context.Context, tx *sql.Tx, entryID string, remaining int) error {
	if remaining > 0 {
		_, err := tx.ExecContext(ctx,
			`UPDATE waitlist_entries SET requested = $2 WHERE id = $1`, entryID, remaining)
		if err != nil {
			return fmt.Errorf("decrement waitlist entry: %w", err)
		}
		return nil
	}
	_, err := tx.ExecContext(ctx, `DELETE FROM waitlist_entries WHERE id = $1`, entryID)
	if err != nil {
		return fmt.Errorf("delete waitlist entry: %w", err)
	}
	return nil
}
