package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/casekeeper-server/internal/model"
)

var _ model.UserDirectory = (*UserRepository)(nil)

// UserRepository reads the user directory maintained by the account service.
type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var (
		user model.User
		role string
	)
	query := `SELECT id, email, name, role FROM users WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Email, &user.Name, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	user.Role = model.Role(role)

	return user, nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	query := `SELECT id, email, name, role FROM users WHERE role = $1 AND deleted_at IS NULL ORDER BY email`

	rows, err := r.db.Query(ctx, query, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var (
			user     model.User
			userRole string
		)
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &userRole); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		user.Role = model.Role(userRole)
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
