package model

import "errors"

var (
	// ErrNotFound is returned by stores when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrVersionConflict is returned by CaseStore.Update when the case changed since it was read.
	ErrVersionConflict = errors.New("case version conflict")
	// ErrLockInvariant is returned when a case is fully locked with an unlocked step.
	ErrLockInvariant = errors.New("fully locked case has unlocked steps")
)
