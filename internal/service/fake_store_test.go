package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/casekeeper-server/internal/model"
)

// fakeCaseStore keeps cases as encoded documents so every read hands out a
// fresh copy, the way the database does.
type fakeCaseStore struct {
	mu     sync.Mutex
	docs   map[uuid.UUID][]byte
	outbox []model.OutboxEvent

	// forcedConflicts makes the next N updates fail with a version conflict.
	forcedConflicts int
	// beforeUpdate runs before an update compares versions.
	beforeUpdate func()
	updates      int
}

var _ model.CaseStore = (*fakeCaseStore)(nil)

func newFakeCaseStore() *fakeCaseStore {
	return &fakeCaseStore{docs: make(map[uuid.UUID][]byte)}
}

func (f *fakeCaseStore) Create(_ context.Context, c model.Case, events []model.OutboxEvent) (model.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c.Version = 1
	return c, f.put(c, events)
}

func (f *fakeCaseStore) GetByID(_ context.Context, id uuid.UUID) (model.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.get(id)
}

func (f *fakeCaseStore) GetByInviteToken(_ context.Context, token string) (model.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id := range f.docs {
		c, err := f.get(id)
		if err != nil {
			return model.Case{}, err
		}
		if c.InviteToken == token {
			return c, nil
		}
	}
	return model.Case{}, model.ErrNotFound
}

func (f *fakeCaseStore) ListByParticipant(_ context.Context, userID uuid.UUID) ([]model.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Case
	for id := range f.docs {
		c, err := f.get(id)
		if err != nil {
			return nil, err
		}
		managed := c.AssignedCaseManager != nil && *c.AssignedCaseManager == userID
		if c.PartyOf(userID) != model.PartyNone || managed {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCaseStore) Update(_ context.Context, c model.Case, events []model.OutboxEvent) (model.Case, error) {
	f.mu.Lock()
	hook := f.beforeUpdate
	f.beforeUpdate = nil
	f.mu.Unlock()
	if hook != nil {
		hook()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.updates++
	if f.forcedConflicts > 0 {
		f.forcedConflicts--
		return model.Case{}, model.ErrVersionConflict
	}

	stored, err := f.get(c.ID)
	if err != nil {
		return model.Case{}, err
	}
	if stored.Version != c.Version {
		return model.Case{}, model.ErrVersionConflict
	}
	if !c.LockInvariantHolds() {
		return model.Case{}, model.ErrLockInvariant
	}

	c.Version++
	return c, f.put(c, events)
}

func (f *fakeCaseStore) get(id uuid.UUID) (model.Case, error) {
	raw, ok := f.docs[id]
	if !ok {
		return model.Case{}, model.ErrNotFound
	}
	var c model.Case
	if err := json.Unmarshal(raw, &c); err != nil {
		return model.Case{}, err
	}
	return c, nil
}

func (f *fakeCaseStore) put(c model.Case, events []model.OutboxEvent) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	f.docs[c.ID] = raw
	f.outbox = append(f.outbox, events...)
	return nil
}

// seed stores c as is and returns the stored copy.
func (f *fakeCaseStore) seed(t *testing.T, c model.Case) model.Case {
	t.Helper()

	created, err := f.Create(context.Background(), c, nil)
	require.NoError(t, err)
	return created
}

func (f *fakeCaseStore) mustGet(t *testing.T, id uuid.UUID) model.Case {
	t.Helper()

	c, err := f.GetByID(context.Background(), id)
	require.NoError(t, err)
	return c
}

func (f *fakeCaseStore) eventTypes() []model.EventType {
	f.mu.Lock()
	defer f.mu.Unlock()

	types := make([]model.EventType, len(f.outbox))
	for i, e := range f.outbox {
		types[i] = e.Type
	}
	return types
}

func (f *fakeCaseStore) resetOutbox() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outbox = nil
}
