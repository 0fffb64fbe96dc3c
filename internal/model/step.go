package model

import (
	"time"

	"github.com/google/uuid"
)

// StepCount is the fixed number of questionnaire steps.
const StepCount = 7

// StepNumber identifies a questionnaire step, 1 through StepCount.
type StepNumber int

// Valid reports whether n is within [1, StepCount].
func (n StepNumber) Valid() bool {
	return n >= 1 && n <= StepCount
}

func (n StepNumber) index() int {
	return int(n) - 1
}

// FinalStep is the step whose submission seals the case.
const FinalStep StepNumber = StepCount

var (
	// OwnerSteps must be submitted before the case can be sealed (party 1 sections).
	OwnerSteps = []StepNumber{1, 2, 5, 6, 7}
	// InvitedSteps must be submitted before the case can be sealed (party 2 sections).
	InvitedSteps = []StepNumber{3, 4}
)

// StepStatus is the submission and lock audit of one step.
type StepStatus struct {
	Submitted   bool       `json:"submitted"`
	SubmittedBy *uuid.UUID `json:"submitted_by,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	Locked      bool       `json:"locked"`
	LockedBy    *uuid.UUID `json:"locked_by,omitempty"`
	LockedAt    *time.Time `json:"locked_at,omitempty"`
	UnlockedBy  *uuid.UUID `json:"unlocked_by,omitempty"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

func (s *StepStatus) markSubmitted(by uuid.UUID, at time.Time) {
	s.Submitted = true
	s.SubmittedBy = &by
	s.SubmittedAt = &at
}

func (s *StepStatus) lock(by uuid.UUID, at time.Time) {
	s.Locked = true
	s.LockedBy = &by
	s.LockedAt = &at
}

func (s *StepStatus) unlock(by uuid.UUID, at time.Time) {
	s.Locked = false
	s.LockedBy = nil
	s.LockedAt = nil
	s.UnlockedBy = &by
	s.UnlockedAt = &at
}
