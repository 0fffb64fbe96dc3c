package model

import (
	"context"

	"github.com/google/uuid"
)

// UserDirectory resolves platform users. It is owned by the account service
// and only read here.
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
}

// LawyerDirectory resolves lawyers available for selection.
type LawyerDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (Lawyer, error)
}

// User is a directory entry used for recipients and role checks.
type User struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  Role
}

// Lawyer is a directory entry of a lawyer.
type Lawyer struct {
	ID          uuid.UUID
	Name        string
	DirectEmail string
	PublicEmail string
}

// ContactEmail prefers the direct address over the public one.
func (l Lawyer) ContactEmail() string {
	if l.DirectEmail != "" {
		return l.DirectEmail
	}
	return l.PublicEmail
}
