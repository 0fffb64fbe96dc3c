package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/casekeeper-server/internal/model"
)

var _ model.LawyerDirectory = (*LawyerRepository)(nil)

type LawyerRepository struct {
	db *Connection
}

func NewLawyerRepository(db *Connection) *LawyerRepository {
	return &LawyerRepository{
		db: db,
	}
}

func (r *LawyerRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Lawyer, error) {
	var lawyer model.Lawyer
	query := `SELECT id, name, direct_email, public_email FROM lawyers WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.QueryRow(ctx, query, id).Scan(&lawyer.ID, &lawyer.Name, &lawyer.DirectEmail, &lawyer.PublicEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Lawyer{}, model.ErrNotFound
		}
		return model.Lawyer{}, fmt.Errorf("failed to get lawyer by id: %w", err)
	}

	return lawyer, nil
}
