package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Сколько храним подтверждённые интенты до зачистки свипером; хватает,
// чтобы пережить ретраи вебхуков.
const confirmedIntentRetention = 24 * time.Hour

type IntentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewIntentRepo(db *dbpg.DB) *IntentRepository {
	return &IntentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *IntentRepository) Create(ctx context.Context, in *domain.PendingIntent) error {
	query := `INSERT INTO pending_intents (id, session_id, kind, registration_id, requested,
	                                       to_confirm, to_waitlist, name, email, phone, telegram_chat_id,
	                                       status, created_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	var regID any
	if in.RegistrationID != nil {
		regID = *in.RegistrationID
	}
	var name, email, phone, chatID any
	if in.Contact != nil {
		name, email, phone = in.Contact.Name, in.Contact.Email, in.Contact.Phone
		chatID = chatIDValue(*in.Contact)
	}

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		in.ID, in.SessionID, in.Kind, regID, in.Requested,
		in.ToConfirm, in.ToWaitlist, name, email, phone, chatID,
		in.Status, in.CreatedAt, in.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert intent: %w", err)
	}
	return nil
}

// Claim атомарно проверяем статус и дедлайн, переводим интент в
// confirmed. Повторный вебхук получит ErrIntentAlreadyConfirmed вместо
// второй брони. Без ретраев: ретрай потерянного claim может
// подтвердить дважды.
func (r *IntentRepository) Claim(ctx context.Context, id string) (*domain.PendingIntent, error) {
	query := `UPDATE pending_intents
			  SET status = $2
			  WHERE id = $1 AND status = $3 AND expires_at > now()
			  RETURNING id, session_id, kind, registration_id, requested, to_confirm, to_waitlist,
			            name, email, phone, telegram_chat_id, status, created_at, expires_at`

	in, err := scanIntent(r.db.Master.QueryRowContext(ctx, query,
		id, domain.IntentStatusConfirmed, domain.IntentStatusPending))
	if err == nil {
		return in, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("claim intent: %w", err)
	}

	var status domain.IntentStatus
	var expiresAt time.Time
	check := `SELECT status, expires_at FROM pending_intents WHERE id = $1`
	err = r.db.Master.QueryRowContext(ctx, check, id).Scan(&status, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIntentNotFound
		}
		return nil, fmt.Errorf("check intent: %w", err)
	}
	if status == domain.IntentStatusConfirmed {
		return nil, domain.ErrIntentAlreadyConfirmed
	}
	return nil, domain.ErrIntentExpired
}

// Unclaim откатываем claim, если материализация брони не прошла:
// интент снова pending и ретрай вебхука может его добрать.
func (r *IntentRepository) Unclaim(ctx context.Context, id string) error {
	_, err := r.db.Master.ExecContext(ctx,
		`UPDATE pending_intents SET status = $2 WHERE id = $1 AND status = $3`,
		id, domain.IntentStatusPending, domain.IntentStatusConfirmed,
	)
	if err != nil {
		return fmt.Errorf("unclaim intent: %w", err)
	}
	return nil
}

func (r *IntentRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM pending_intents WHERE status = $1 AND expires_at <= $2`,
		domain.IntentStatusPending, now,
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired intents: %w", err)
	}
	expired, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired rows affected: %w", err)
	}

	_, err = r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM pending_intents WHERE status = $1 AND created_at < $2`,
		domain.IntentStatusConfirmed, now.Add(-confirmedIntentRetention),
	)
	if err != nil {
		return int(expired), fmt.Errorf("purge confirmed intents: %w", err)
	}

	return int(expired), nil
}

func scanIntent(row rowScanner) (*domain.PendingIntent, error) {
	var in domain.PendingIntent
	var regID sql.NullString
	var name, email, phone sql.NullString
	var chatID sql.NullInt64
	if err := row.Scan(
		&in.ID, &in.SessionID, &in.Kind, &regID, &in.Requested, &in.ToConfirm, &in.ToWaitlist,
		&name, &email, &phone, &chatID, &in.Status, &in.CreatedAt, &in.ExpiresAt,
	); err != nil {
		return nil, err
	}
	if regID.Valid {
		in.RegistrationID = &regID.String
	}
	if in.Kind == domain.IntentKindNewSpot {
		c := domain.Contact{Name: name.String, Email: email.String, Phone: phone.String}
		if chatID.Valid {
			c.TelegramChatID = &chatID.Int64
		}
		in.Contact = &c
	}
	return &in, nil
}
