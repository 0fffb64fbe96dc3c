package model

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CaseStore defines persistence operations for cases.
//
// Create and Update persist the outbox events in the same transaction as the
// case document. Update succeeds only when the stored version equals c.Version
// and returns ErrVersionConflict otherwise.
type CaseStore interface {
	Create(ctx context.Context, c Case, events []OutboxEvent) (Case, error)
	GetByID(ctx context.Context, id uuid.UUID) (Case, error)
	GetByInviteToken(ctx context.Context, token string) (Case, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]Case, error)
	Update(ctx context.Context, c Case, events []OutboxEvent) (Case, error)
}

// LawyerSelection is a lawyer choice recorded for one party.
type LawyerSelection struct {
	LawyerID uuid.UUID
	// Party is the side the choice is recorded for. Parties leave it as
	// PartyNone or name themselves; privileged actors must name it.
	Party Party
	// Force lets a privileged actor give both parties the same lawyer.
	Force   bool
	Message string
}

// PreQuestionnaire is one party's post-lock questionnaire and lawyer choice.
type PreQuestionnaire struct {
	Answers        []json.RawMessage `json:"answers"`
	SelectedLawyer *uuid.UUID        `json:"selected_lawyer,omitempty"`
	SelectedAt     *time.Time        `json:"selected_at,omitempty"`
	Submitted      bool              `json:"submitted"`
	SubmittedBy    *uuid.UUID        `json:"submitted_by,omitempty"`
	SubmittedAt    *time.Time        `json:"submitted_at,omitempty"`
	Locked         bool              `json:"locked"`
	LockedBy       *uuid.UUID        `json:"locked_by,omitempty"`
	LockedAt       *time.Time        `json:"locked_at,omitempty"`
}

// Approval tracks the four independent sign-offs.
type Approval struct {
	User1Approved         bool       `json:"user1_approved"`
	User1ApprovedAt       *time.Time `json:"user1_approved_at,omitempty"`
	User2Approved         bool       `json:"user2_approved"`
	User2ApprovedAt       *time.Time `json:"user2_approved_at,omitempty"`
	LawyerApproved        bool       `json:"lawyer_approved"`
	LawyerApprovedAt      *time.Time `json:"lawyer_approved_at,omitempty"`
	ApprovedLawyer        *uuid.UUID `json:"approved_lawyer,omitempty"`
	CaseManagerApproved   bool       `json:"case_manager_approved"`
	CaseManagerApprovedAt *time.Time `json:"case_manager_approved_at,omitempty"`
	ApprovedBy            *uuid.UUID `json:"approved_by,omitempty"`
}

// Quorum reports whether both parties and the case manager approved.
// Lawyer approval is tracked but does not gate progression.
func (a Approval) Quorum() bool {
	return a.User1Approved && a.User2Approved && a.CaseManagerApproved
}

// Case is the aggregate root of one couple's agreement.
type Case struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`

	OwnerID            uuid.UUID  `json:"owner_id"`
	InvitedUserID      *uuid.UUID `json:"invited_user_id,omitempty"`
	InvitedEmail       string     `json:"invited_email,omitempty"`
	InviteToken        string     `json:"invite_token,omitempty"`
	InviteTokenExpires *time.Time `json:"invite_token_expires,omitempty"`

	Steps  [StepCount]json.RawMessage `json:"steps"`
	Status [StepCount]StepStatus      `json:"status"`

	FullyLocked   bool       `json:"fully_locked"`
	FullyLockedBy *uuid.UUID `json:"fully_locked_by,omitempty"`
	FullyLockedAt *time.Time `json:"fully_locked_at,omitempty"`

	PreQuestionnaires [2]PreQuestionnaire `json:"pre_questionnaires"`
	Approval          Approval            `json:"approval"`

	AssignedCaseManager *uuid.UUID     `json:"assigned_case_manager,omitempty"`
	WorkflowStatus      WorkflowStatus `json:"workflow_status"`
	DraftAgreementURL   string         `json:"draft_agreement_url,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCase returns an unsubmitted, unlocked DRAFT case owned by ownerID.
func NewCase(ownerID uuid.UUID, title string, now time.Time) Case {
	return Case{
		ID:             uuid.New(),
		Title:          title,
		OwnerID:        ownerID,
		WorkflowStatus: WorkflowDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// EnsureStepStatus returns the status record of step n. n must be valid.
func (c *Case) EnsureStepStatus(n StepNumber) *StepStatus {
	return &c.Status[n.index()]
}

// EnsurePreQuestionnaire returns the pre-questionnaire of party p.
// p must be PartyOwner or PartyInvited.
func (c *Case) EnsurePreQuestionnaire(p Party) *PreQuestionnaire {
	return &c.PreQuestionnaires[int(p)-1]
}

// AreAllStepsSubmitted reports whether every step has been submitted.
func (c *Case) AreAllStepsSubmitted() bool {
	for i := range c.Status {
		if !c.Status[i].Submitted {
			return false
		}
	}
	return true
}

// PartyOf resolves a user to their side of the case.
func (c *Case) PartyOf(userID uuid.UUID) Party {
	if userID == c.OwnerID {
		return PartyOwner
	}
	if c.InvitedUserID != nil && *c.InvitedUserID == userID {
		return PartyInvited
	}
	return PartyNone
}

// PartyIDs returns the owner and, when attached, the invited user.
func (c *Case) PartyIDs() []uuid.UUID {
	ids := []uuid.UUID{c.OwnerID}
	if c.InvitedUserID != nil {
		ids = append(ids, *c.InvitedUserID)
	}
	return ids
}

// SetStep stores the payload of step n and marks it submitted without locking it.
func (c *Case) SetStep(n StepNumber, payload json.RawMessage, by uuid.UUID, at time.Time) {
	c.Steps[n.index()] = payload
	c.EnsureStepStatus(n).markSubmitted(by, at)
}

// MissingRequiredSteps lists the unsubmitted sections of each party.
func (c *Case) MissingRequiredSteps() (owner []StepNumber, invited []StepNumber) {
	for _, n := range OwnerSteps {
		if !c.EnsureStepStatus(n).Submitted {
			owner = append(owner, n)
		}
	}
	for _, n := range InvitedSteps {
		if !c.EnsureStepStatus(n).Submitted {
			invited = append(invited, n)
		}
	}
	return owner, invited
}

// Seal locks the case and every step in one move.
func (c *Case) Seal(by uuid.UUID, at time.Time) {
	c.FullyLocked = true
	c.FullyLockedBy = &by
	c.FullyLockedAt = &at
	for i := range c.Status {
		c.Status[i].lock(by, at)
	}
}

// Unseal clears the full lock, every step lock and both pre-questionnaire locks.
// Submission state is kept.
func (c *Case) Unseal(by uuid.UUID, at time.Time) {
	c.FullyLocked = false
	c.FullyLockedBy = nil
	c.FullyLockedAt = nil
	for i := range c.Status {
		c.Status[i].unlock(by, at)
	}
	for i := range c.PreQuestionnaires {
		pq := &c.PreQuestionnaires[i]
		pq.Locked = false
		pq.LockedBy = nil
		pq.LockedAt = nil
	}
}

// Reopen unseals the case, resets both pre-questionnaires to unsubmitted and
// withdraws every approval, which were given for the uncorrected agreement.
// Step payloads, answers and lawyer choices are left untouched for corrections.
func (c *Case) Reopen(by uuid.UUID, at time.Time) {
	c.Unseal(by, at)
	for i := range c.PreQuestionnaires {
		c.PreQuestionnaires[i].Submitted = false
	}
	c.Approval = Approval{}
}

// CanBeUnlocked reports whether the case is sealed or was sealed at some point.
func (c *Case) CanBeUnlocked() bool {
	final := c.EnsureStepStatus(FinalStep)
	return c.FullyLocked || final.Submitted || final.SubmittedAt != nil
}

// LockInvariantHolds reports whether a full lock covers every step.
func (c *Case) LockInvariantHolds() bool {
	if !c.FullyLocked {
		return true
	}
	for i := range c.Status {
		if !c.Status[i].Locked {
			return false
		}
	}
	return true
}

// SealedAndComplete reports whether the case is fully locked with every step submitted.
func (c *Case) SealedAndComplete() bool {
	return c.FullyLocked && c.AreAllStepsSubmitted()
}

// LawyerStageOpen reports whether pre-questionnaires and lawyer selection are reachable.
func (c *Case) LawyerStageOpen() bool {
	return c.WorkflowStatus.OrDraft() == WorkflowLawyer && c.SealedAndComplete()
}

// BothPreQuestionnairesSubmitted reports whether both parties submitted their pre-questionnaire.
func (c *Case) BothPreQuestionnairesSubmitted() bool {
	return c.PreQuestionnaires[0].Submitted && c.PreQuestionnaires[1].Submitted
}

// IsLawyerSelected reports whether either party selected lawyerID.
func (c *Case) IsLawyerSelected(lawyerID uuid.UUID) bool {
	for i := range c.PreQuestionnaires {
		if sel := c.PreQuestionnaires[i].SelectedLawyer; sel != nil && *sel == lawyerID {
			return true
		}
	}
	return false
}

// ClearInvite drops the pending invitation.
func (c *Case) ClearInvite() {
	c.InvitedEmail = ""
	c.InviteToken = ""
	c.InviteTokenExpires = nil
}

// ResetInvitedParty detaches party 2 and wipes their sections in place.
func (c *Case) ResetInvitedParty() {
	c.InvitedUserID = nil
	c.ClearInvite()
	for _, n := range InvitedSteps {
		c.Steps[n.index()] = nil
		c.Status[n.index()] = StepStatus{}
	}
	c.PreQuestionnaires[int(PartyInvited)-1] = PreQuestionnaire{}
	c.Approval.User2Approved = false
	c.Approval.User2ApprovedAt = nil
}
