package model

// WorkflowStatus is the case-level macro state.
type WorkflowStatus string

const (
	// WorkflowDraft is the initial state while parties fill in the questionnaire.
	WorkflowDraft WorkflowStatus = "DRAFT"
	// WorkflowCM means the case sits in the case-manager queue.
	WorkflowCM WorkflowStatus = "CM"
	// WorkflowPaid means payment arrived and the case was reopened for corrections.
	WorkflowPaid WorkflowStatus = "PAID"
	// WorkflowLawyer means the case is released to lawyer selection.
	WorkflowLawyer WorkflowStatus = "LAWYER"
)

// OrDraft returns DRAFT for an unset status.
func (s WorkflowStatus) OrDraft() WorkflowStatus {
	if s == "" {
		return WorkflowDraft
	}
	return s
}

// Valid reports whether s is a known status.
func (s WorkflowStatus) Valid() bool {
	switch s {
	case WorkflowDraft, WorkflowCM, WorkflowPaid, WorkflowLawyer:
		return true
	}
	return false
}

// ManualTarget reports whether managers may move a case into s directly.
func (s WorkflowStatus) ManualTarget() bool {
	switch s {
	case WorkflowCM, WorkflowPaid, WorkflowLawyer:
		return true
	}
	return false
}
