package model

import "github.com/google/uuid"

// Role is the caller role asserted by the authentication service.
type Role string

const (
	// RoleEndUser is a party to a case (owner or invited partner).
	RoleEndUser Role = "end_user"
	// RoleCaseManager reviews cases in the CM queue.
	RoleCaseManager Role = "case_manager"
	// RoleAdmin is an operator account.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin is an unrestricted operator account.
	RoleSuperAdmin Role = "superadmin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleEndUser, RoleCaseManager, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsPrivileged reports whether r is exempt from party ownership and lock restrictions.
func (r Role) IsPrivileged() bool {
	switch r {
	case RoleCaseManager, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// IsPrivileged reports whether the actor holds a privileged role.
func (a Actor) IsPrivileged() bool {
	return a.Role.IsPrivileged()
}
