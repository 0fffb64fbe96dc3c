package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/casekeeper-server/internal/model"
)

var _ model.OutboxStore = (*OutboxRepository)(nil)

type OutboxRepository struct {
	db *Connection
}

func NewOutboxRepository(db *Connection) *OutboxRepository {
	return &OutboxRepository{
		db: db,
	}
}

// insertOutbox queues events inside the transaction of the case write.
func insertOutbox(ctx context.Context, tx pgx.Tx, events []model.OutboxEvent) error {
	if len(events) == 0 {
		return nil
	}

	query := `
		INSERT INTO case_outbox (id, case_id, event_type, payload, status, attempts, next_attempt_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	batch := &pgx.Batch{}
	for _, e := range events {
		batch.Queue(query, e.ID, e.CaseID, string(e.Type), []byte(e.Payload), string(e.Status), e.Attempts, e.NextAttemptAt, e.CreatedAt)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert outbox events: %w", err)
	}

	return nil
}

// Lease claims up to limit due events for leaseTTL and counts the attempt.
// Concurrent relays skip rows another relay is leasing.
func (r *OutboxRepository) Lease(ctx context.Context, now time.Time, limit int, leaseTTL time.Duration) ([]model.OutboxEvent, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	query := `
		UPDATE case_outbox
		SET lease_expires_at = $2, attempts = attempts + 1
		WHERE id IN (
			SELECT id FROM case_outbox
			WHERE status = 'pending'
			  AND next_attempt_at <= $1
			  AND (lease_expires_at IS NULL OR lease_expires_at <= $1)
			ORDER BY next_attempt_at, created_at
			LIMIT $3
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, case_id, event_type, payload, status, attempts, next_attempt_at, COALESCE(last_error, ''), created_at`

	rows, err := r.db.Query(ctx, query, now, now.Add(leaseTTL), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to lease outbox events: %w", err)
	}
	defer rows.Close()

	var events []model.OutboxEvent
	for rows.Next() {
		var (
			e         model.OutboxEvent
			eventType string
			status    string
			payload   []byte
		)
		err := rows.Scan(&e.ID, &e.CaseID, &eventType, &payload, &status, &e.Attempts, &e.NextAttemptAt, &e.LastError, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outbox event: %w", err)
		}
		e.Type = model.EventType(eventType)
		e.Status = model.OutboxStatus(status)
		e.Payload = payload
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *OutboxRepository) MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) error {
	const query = `UPDATE case_outbox SET status = 'delivered', delivered_at = $2, lease_expires_at = NULL WHERE id = $1`
	return r.settle(ctx, query, id, at)
}

func (r *OutboxRepository) MarkRetry(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time, lastError string) error {
	const query = `UPDATE case_outbox SET next_attempt_at = $2, last_error = $3, lease_expires_at = NULL WHERE id = $1`
	return r.settle(ctx, query, id, nextAttemptAt, lastError)
}

func (r *OutboxRepository) MarkDead(ctx context.Context, id uuid.UUID, lastError string) error {
	const query = `UPDATE case_outbox SET status = 'dead', last_error = $2, lease_expires_at = NULL WHERE id = $1`
	return r.settle(ctx, query, id, lastError)
}

func (r *OutboxRepository) settle(ctx context.Context, query string, id uuid.UUID, args ...any) error {
	cmd, err := r.db.Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("failed to update outbox event: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
