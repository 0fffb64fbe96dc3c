package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/casekeeper-server/internal/apierrors"
	"github.com/dtroode/casekeeper-server/internal/model"
)

func TestCase_ConcurrentWritesRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.draftCase(t)

	f.store.beforeUpdate = func() {
		_, err := f.svc.UpdateStep(ctx, f.invited, c.ID, 3, json.RawMessage(`{"fullName":"B"}`))
		require.NoError(t, err)
	}

	_, err := f.svc.UpdateStep(ctx, f.owner, c.ID, 1, json.RawMessage(`{"fullName":"A"}`))
	require.NoError(t, err)

	stored := f.store.mustGet(t, c.ID)
	assert.JSONEq(t, `{"fullName":"A"}`, string(stored.Steps[0]))
	assert.JSONEq(t, `{"fullName":"B"}`, string(stored.Steps[2]))
	assert.True(t, stored.EnsureStepStatus(1).Submitted)
	assert.True(t, stored.EnsureStepStatus(3).Submitted)
	assert.Equal(t, c.Version+2, stored.Version)
	assert.Equal(t, 3, f.store.updates)
}

func TestCase_WriteAttemptsExhausted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.draftCase(t)
	f.store.forcedConflicts = 5

	_, err := f.svc.UpdateStep(ctx, f.owner, c.ID, 1, json.RawMessage(`{}`))
	requireKind(t, err, apierrors.KindConflict)
	assert.Equal(t, 5, f.store.updates)

	stored := f.store.mustGet(t, c.ID)
	assert.Equal(t, c.Version, stored.Version)
	assert.False(t, stored.EnsureStepStatus(1).Submitted)
}

func TestCase_SealRetriedAfterConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.draftCase(t, 1, 2, 3, 4, 5, 6)
	f.store.forcedConflicts = 2

	got, err := f.svc.UpdateStep(ctx, f.owner, c.ID, 7, json.RawMessage(`{}`))
	require.NoError(t, err)

	assert.True(t, got.FullyLocked)
	assert.Equal(t, []model.EventType{
		model.EventDraftReady,
		model.EventReadyForCM,
		model.EventCaseSealed,
	}, f.store.eventTypes())
}
