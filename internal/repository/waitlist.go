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

type WaitlistRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWaitlistRepo(db *dbpg.DB) *WaitlistRepository {
	return &WaitlistRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *WaitlistRepository) Join(ctx context.Context, e *domain.WaitlistEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Проверяем наличие мест под блокировкой сессии
	maxCapacity, confirmed, err := lockSession(ctx, tx, e.SessionID)
	if err != nil {
		return err
	}
	if confirmed < maxCapacity {
		return domain.ErrSpotsAvailable
	}

	query := `INSERT INTO waitlist_entries (id, session_id, kind, requested, name, email, phone, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(ctx, query,
		e.ID, e.SessionID, e.Kind, e.Requested,
		e.Contact.Name, e.Contact.Email, e.Contact.Phone, chatIDValue(*e.Contact), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert waitlist entry: %w", err)
	}

	return tx.Commit()
}

func (r *WaitlistRepository) Reduce(ctx context.Context, registrationID string, count int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var entryID string
	var requested int
	query := `SELECT id, requested FROM waitlist_entries
			  WHERE registration_id = $1 AND kind = $2
			  FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, registrationID, domain.WaitlistKindAddGuests).
		Scan(&entryID, &requested)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrWaitlistNotFound
		}
		return fmt.Errorf("lock waitlist entry: %w", err)
	}

	if count > requested {
		return fmt.Errorf("%w: reduce count %d exceeds waitlisted %d", domain.ErrValidation, count, requested)
	}

	if err = settleEntry(ctx, tx, entryID, requested-count); err != nil {
		return err
	}

	return tx.Commit()
}
