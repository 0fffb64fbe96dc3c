package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/casekeeper-server/internal/model"
)

var _ model.CaseStore = (*CaseRepository)(nil)

type CaseRepository struct {
	db *Connection
}

func NewCaseRepository(db *Connection) *CaseRepository {
	return &CaseRepository{
		db: db,
	}
}

// Create inserts c at version 1 together with its outbox events.
func (r *CaseRepository) Create(ctx context.Context, c model.Case, events []model.OutboxEvent) (model.Case, error) {
	c.Version = 1
	doc, err := json.Marshal(c)
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to encode case: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO cases (id, owner_id, invited_user_id, assigned_case_manager, invite_token,
		                   workflow_status, fully_locked, document, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11)`

	_, err = tx.Exec(ctx, query,
		c.ID, c.OwnerID, c.InvitedUserID, c.AssignedCaseManager, c.InviteToken,
		string(c.WorkflowStatus.OrDraft()), c.FullyLocked, doc, c.Version, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to insert case: %w", err)
	}

	if err := insertOutbox(ctx, tx, events); err != nil {
		return model.Case{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Case{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return c, nil
}

// Update writes c when the stored version still equals c.Version and
// bumps the version by one.
func (r *CaseRepository) Update(ctx context.Context, c model.Case, events []model.OutboxEvent) (model.Case, error) {
	if !c.LockInvariantHolds() {
		return model.Case{}, model.ErrLockInvariant
	}

	expected := c.Version
	c.Version++
	doc, err := json.Marshal(c)
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to encode case: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE cases
		SET invited_user_id = $3, assigned_case_manager = $4, invite_token = NULLIF($5, ''),
		    workflow_status = $6, fully_locked = $7, document = $8, version = $9, updated_at = $10
		WHERE id = $1 AND version = $2`

	cmd, err := tx.Exec(ctx, query,
		c.ID, expected, c.InvitedUserID, c.AssignedCaseManager, c.InviteToken,
		string(c.WorkflowStatus.OrDraft()), c.FullyLocked, doc, c.Version, c.UpdatedAt,
	)
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to update case: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cases WHERE id = $1)`, c.ID).Scan(&exists); err != nil {
			return model.Case{}, fmt.Errorf("failed to check case existence: %w", err)
		}
		if !exists {
			return model.Case{}, model.ErrNotFound
		}
		return model.Case{}, model.ErrVersionConflict
	}

	if err := insertOutbox(ctx, tx, events); err != nil {
		return model.Case{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Case{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return c, nil
}

func (r *CaseRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Case, error) {
	query := `SELECT document, version FROM cases WHERE id = $1`

	c, err := scanCase(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Case{}, model.ErrNotFound
		}
		return model.Case{}, fmt.Errorf("failed to get case by id: %w", err)
	}

	return c, nil
}

func (r *CaseRepository) GetByInviteToken(ctx context.Context, token string) (model.Case, error) {
	query := `SELECT document, version FROM cases WHERE invite_token = $1`

	c, err := scanCase(r.db.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Case{}, model.ErrNotFound
		}
		return model.Case{}, fmt.Errorf("failed to get case by invite token: %w", err)
	}

	return c, nil
}

func (r *CaseRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]model.Case, error) {
	query := `
		SELECT document, version
		FROM cases
		WHERE owner_id = $1 OR invited_user_id = $1 OR assigned_case_manager = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	defer rows.Close()

	var cases []model.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		cases = append(cases, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cases, nil
}

func scanCase(row pgx.Row) (model.Case, error) {
	var (
		doc     []byte
		version int64
	)
	if err := row.Scan(&doc, &version); err != nil {
		return model.Case{}, err
	}

	var c model.Case
	if err := json.Unmarshal(doc, &c); err != nil {
		return model.Case{}, fmt.Errorf("failed to decode case document: %w", err)
	}
	c.Version = version

	return c, nil
}
