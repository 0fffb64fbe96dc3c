package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sealedCase(t *testing.T) Case {
	t.Helper()

	now := time.Now().UTC()
	owner := uuid.New()
	invited := uuid.New()
	c := NewCase(owner, "agreement", now)
	c.InvitedUserID = &invited
	for n := StepNumber(1); n <= StepCount; n++ {
		c.SetStep(n, json.RawMessage(`{}`), owner, now)
	}
	c.Seal(owner, now)
	return c
}

func TestNewCase(t *testing.T) {
	owner := uuid.New()
	now := time.Now()
	c := NewCase(owner, "title", now)

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, owner, c.OwnerID)
	assert.Equal(t, WorkflowDraft, c.WorkflowStatus)
	assert.False(t, c.FullyLocked)
	assert.False(t, c.AreAllStepsSubmitted())
	assert.Zero(t, c.Version)
	for n := StepNumber(1); n <= StepCount; n++ {
		assert.Equal(t, StepStatus{}, *c.EnsureStepStatus(n))
	}
}

func TestCase_PartyOf(t *testing.T) {
	owner := uuid.New()
	invited := uuid.New()
	c := NewCase(owner, "", time.Now())

	assert.Equal(t, PartyOwner, c.PartyOf(owner))
	assert.Equal(t, PartyNone, c.PartyOf(invited))

	c.InvitedUserID = &invited
	assert.Equal(t, PartyInvited, c.PartyOf(invited))
	assert.Equal(t, PartyNone, c.PartyOf(uuid.New()))
	assert.Equal(t, []uuid.UUID{owner, invited}, c.PartyIDs())
}

func TestCase_SealLocksEveryStep(t *testing.T) {
	c := sealedCase(t)

	assert.True(t, c.FullyLocked)
	require.NotNil(t, c.FullyLockedBy)
	require.NotNil(t, c.FullyLockedAt)
	assert.True(t, c.LockInvariantHolds())
	for n := StepNumber(1); n <= StepCount; n++ {
		s := c.EnsureStepStatus(n)
		assert.True(t, s.Locked, "step %d", n)
		assert.NotNil(t, s.LockedBy)
		assert.NotNil(t, s.LockedAt)
	}
}

func TestCase_LockInvariantHolds(t *testing.T) {
	c := sealedCase(t)
	c.Status[2].Locked = false

	assert.False(t, c.LockInvariantHolds())

	c.FullyLocked = false
	assert.True(t, c.LockInvariantHolds())
}

func TestCase_Unseal(t *testing.T) {
	c := sealedCase(t)
	c.PreQuestionnaires[0].Locked = true
	c.PreQuestionnaires[0].Submitted = true
	manager := uuid.New()

	c.Unseal(manager, time.Now())

	assert.False(t, c.FullyLocked)
	assert.Nil(t, c.FullyLockedBy)
	assert.Nil(t, c.FullyLockedAt)
	for n := StepNumber(1); n <= StepCount; n++ {
		s := c.EnsureStepStatus(n)
		assert.False(t, s.Locked)
		assert.Nil(t, s.LockedBy)
		assert.Nil(t, s.LockedAt)
		require.NotNil(t, s.UnlockedBy)
		assert.Equal(t, manager, *s.UnlockedBy)
		assert.True(t, s.Submitted)
	}
	assert.False(t, c.PreQuestionnaires[0].Locked)
	assert.True(t, c.PreQuestionnaires[0].Submitted)

	c.Unseal(manager, time.Now())
	assert.False(t, c.FullyLocked)
}

func TestCase_Reopen(t *testing.T) {
	c := sealedCase(t)
	answers := []json.RawMessage{json.RawMessage(`"yes"`)}
	for _, p := range []Party{PartyOwner, PartyInvited} {
		pq := c.EnsurePreQuestionnaire(p)
		pq.Answers = answers
		pq.Submitted = true
		pq.Locked = true
	}
	lawyer := uuid.New()
	c.EnsurePreQuestionnaire(PartyOwner).SelectedLawyer = &lawyer
	c.Approval = Approval{User1Approved: true, User2Approved: true, CaseManagerApproved: true, LawyerApproved: true}

	c.Reopen(uuid.New(), time.Now())

	assert.False(t, c.Approval.Quorum())
	assert.Equal(t, Approval{}, c.Approval)
	assert.Equal(t, lawyer, *c.EnsurePreQuestionnaire(PartyOwner).SelectedLawyer)

	assert.False(t, c.FullyLocked)
	for _, p := range []Party{PartyOwner, PartyInvited} {
		pq := c.EnsurePreQuestionnaire(p)
		assert.False(t, pq.Submitted)
		assert.False(t, pq.Locked)
		assert.Equal(t, answers, pq.Answers)
	}
	for i := range c.Steps {
		assert.JSONEq(t, `{}`, string(c.Steps[i]))
	}
}

func TestCase_MissingRequiredSteps(t *testing.T) {
	owner := uuid.New()
	c := NewCase(owner, "", time.Now())
	c.SetStep(1, json.RawMessage(`{}`), owner, time.Now())
	c.SetStep(3, json.RawMessage(`{}`), owner, time.Now())

	ownerMissing, invitedMissing := c.MissingRequiredSteps()

	assert.Equal(t, []StepNumber{2, 5, 6, 7}, ownerMissing)
	assert.Equal(t, []StepNumber{4}, invitedMissing)
}

func TestCase_CanBeUnlocked(t *testing.T) {
	owner := uuid.New()
	now := time.Now()

	tests := []struct {
		name   string
		mutate func(c *Case)
		want   bool
	}{
		{name: "fresh case", mutate: func(c *Case) {}, want: false},
		{name: "fully locked", mutate: func(c *Case) { c.FullyLocked = true }, want: true},
		{name: "final step submitted", mutate: func(c *Case) { c.SetStep(FinalStep, nil, owner, now) }, want: true},
		{name: "final step submitted at only", mutate: func(c *Case) { c.Status[6].SubmittedAt = &now }, want: true},
		{name: "other step submitted", mutate: func(c *Case) { c.SetStep(1, nil, owner, now) }, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCase(owner, "", now)
			tt.mutate(&c)
			assert.Equal(t, tt.want, c.CanBeUnlocked())
		})
	}
}

func TestCase_LawyerStageOpen(t *testing.T) {
	c := sealedCase(t)
	assert.False(t, c.LawyerStageOpen())

	c.WorkflowStatus = WorkflowLawyer
	assert.True(t, c.LawyerStageOpen())

	c.Unseal(uuid.New(), time.Now())
	assert.False(t, c.LawyerStageOpen())
}

func TestCase_IsLawyerSelected(t *testing.T) {
	c := sealedCase(t)
	lawyer := uuid.New()
	assert.False(t, c.IsLawyerSelected(lawyer))

	c.EnsurePreQuestionnaire(PartyInvited).SelectedLawyer = &lawyer
	assert.True(t, c.IsLawyerSelected(lawyer))
	assert.False(t, c.IsLawyerSelected(uuid.New()))
}

func TestCase_ResetInvitedParty(t *testing.T) {
	c := sealedCase(t)
	c.Approval.User2Approved = true
	c.EnsurePreQuestionnaire(PartyInvited).Submitted = true
	c.InviteToken = "token"

	c.ResetInvitedParty()

	assert.Nil(t, c.InvitedUserID)
	assert.Empty(t, c.InviteToken)
	assert.False(t, c.Approval.User2Approved)
	assert.Equal(t, PreQuestionnaire{}, c.PreQuestionnaires[1])
	for _, n := range InvitedSteps {
		assert.Nil(t, c.Steps[n-1])
		assert.False(t, c.EnsureStepStatus(n).Submitted)
	}
	assert.True(t, c.EnsureStepStatus(1).Submitted)
}

func TestApproval_Quorum(t *testing.T) {
	assert.False(t, Approval{User1Approved: true, User2Approved: true, LawyerApproved: true}.Quorum())
	assert.True(t, Approval{User1Approved: true, User2Approved: true, CaseManagerApproved: true}.Quorum())
}

func TestCase_JSONRoundtripKeepsStatus(t *testing.T) {
	c := sealedCase(t)

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	var got Case
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.True(t, got.FullyLocked)
	assert.True(t, got.LockInvariantHolds())
	assert.Equal(t, c.OwnerID, got.OwnerID)
}
