package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, title, description, starts_at, max_capacity, confirmed_attendees,
	                                requires_payment, payment_ttl, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, 0, $6, make_interval(secs => $7), $8, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Title, s.Description, s.StartsAt,
		s.MaxCapacity, s.RequiresPayment, s.PaymentTTL.Seconds(), now, now,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, title, description, starts_at, max_capacity, confirmed_attendees,
	                 requires_payment, EXTRACT(EPOCH FROM payment_ttl)::bigint, created_at, updated_at
			  FROM sessions
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s domain.Session
	var ttlSeconds int64
	if err = row.Scan(
		&s.ID, &s.Title, &s.Description, &s.StartsAt, &s.MaxCapacity,
		&s.ConfirmedAttendees, &s.RequiresPayment, &ttlSeconds, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	s.PaymentTTL = time.Duration(ttlSeconds) * time.Second

	return &s, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT id, title, description, starts_at, max_capacity, confirmed_attendees,
	                 requires_payment, EXTRACT(EPOCH FROM payment_ttl)::bigint, created_at, updated_at
			  FROM sessions
			  ORDER BY starts_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		var s domain.Session
		var ttlSeconds int64
		if err = rows.Scan(
			&s.ID, &s.Title, &s.Description, &s.StartsAt, &s.MaxCapacity,
			&s.ConfirmedAttendees, &s.RequiresPayment, &ttlSeconds, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.PaymentTTL = time.Duration(ttlSeconds) * time.Second
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *SessionRepository) GetDetails(ctx context.Context, id string) (*domain.SessionDetails, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &domain.SessionDetails{
		Session:        *s,
		AvailableSpots: s.AvailableSpots(),
	}

	waitQuery := `SELECT COALESCE(SUM(requested), 0) FROM waitlist_entries WHERE session_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, waitQuery, id)
	if err != nil {
		return nil, fmt.Errorf("count waitlisted: %w", err)
	}
	if err = row.Scan(&details.WaitlistedUnits); err != nil {
		return nil, fmt.Errorf("scan waitlisted: %w", err)
	}

	regQuery := `SELECT id, session_id, name, email, phone, telegram_chat_id, status, guest_count, created_at, updated_at
				 FROM registrations
				 WHERE session_id = $1 AND status = ANY($2)
				 ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, regQuery, id, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		details.Registrations = append(details.Registrations, *reg)
	}

	return details, rows.Err()
}
