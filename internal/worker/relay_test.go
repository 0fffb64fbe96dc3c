package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/casekeeper-server/internal/mocks"
	"github.com/dtroode/casekeeper-server/internal/model"
	"github.com/dtroode/casekeeper-server/internal/testutil"
)

type stubRenderer struct {
	notifications []model.Notification
	err           error
	calls         int
}

func (r *stubRenderer) Render(context.Context, model.EventType, model.CaseEvent) ([]model.Notification, error) {
	r.calls++
	return r.notifications, r.err
}

type relayDeps struct {
	outbox   *servermocks.OutboxStore
	notifier *servermocks.Notifier
	storage  *servermocks.Storage
	renderer *stubRenderer
}

var relayNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestRelay(t *testing.T, cfg Config) (*Relay, relayDeps) {
	t.Helper()
	deps := relayDeps{
		outbox:   servermocks.NewOutboxStore(t),
		notifier: servermocks.NewNotifier(t),
		storage:  servermocks.NewStorage(t),
		renderer: &stubRenderer{},
	}
	r := NewRelay(deps.outbox, deps.renderer, deps.notifier, deps.storage, cfg, testutil.MakeNoopLogger())
	r.now = func() time.Time { return relayNow }
	return r, deps
}

func outboxEvent(t *testing.T, eventType model.EventType, payload model.CaseEvent, attempts int) model.OutboxEvent {
	t.Helper()
	e, err := model.NewOutboxEvent(eventType, payload, relayNow.Add(-time.Minute))
	require.NoError(t, err)
	e.Attempts = attempts
	return e
}

func TestRelay_ProcessBatch_Delivers(t *testing.T) {
	ctx := context.Background()
	r, deps := newTestRelay(t, Config{BatchSize: 10})

	e := outboxEvent(t, model.EventDraftReady, model.CaseEvent{CaseID: uuid.New(), CaseTitle: "A"}, 1)
	deps.renderer.notifications = []model.Notification{
		{To: "a@example.com", Subject: "s", Text: "t"},
		{To: "b@example.com", Subject: "s", Text: "t"},
	}

	deps.outbox.On("Lease", mock.Anything, relayNow, 10, time.Minute).Return([]model.OutboxEvent{e}, nil).Once()
	deps.notifier.On("Send", mock.Anything, deps.renderer.notifications[0]).Return(nil).Once()
	deps.notifier.On("Send", mock.Anything, deps.renderer.notifications[1]).Return(nil).Once()
	deps.outbox.On("MarkDelivered", mock.Anything, e.ID, relayNow).Return(nil).Once()

	n, err := r.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRelay_ProcessBatch_ArchivesSealedSnapshot(t *testing.T) {
	ctx := context.Background()
	r, deps := newTestRelay(t, Config{})

	caseID := uuid.New()
	snapshot := json.RawMessage(`{"id":"x","fully_locked":true}`)
	e := outboxEvent(t, model.EventCaseSealed, model.CaseEvent{CaseID: caseID, Snapshot: snapshot}, 1)

	var uploaded []string
	upload := func(args mock.Arguments) {
		raw, err := io.ReadAll(args.Get(2).(io.Reader))
		require.NoError(t, err)
		assert.JSONEq(t, string(snapshot), string(raw))
		uploaded = append(uploaded, args.String(1))
	}

	deps.outbox.On("Lease", mock.Anything, mock.Anything, 50, time.Minute).Return([]model.OutboxEvent{e}, nil).Once()
	deps.storage.On("Upload", mock.Anything, model.SealedHistoryKey(caseID, e.CreatedAt), mock.Anything).Run(upload).Return(nil).Once()
	deps.storage.On("Upload", mock.Anything, model.SealedSnapshotKey(caseID), mock.Anything).Run(upload).Return(nil).Once()
	deps.outbox.On("MarkDelivered", mock.Anything, e.ID, relayNow).Return(nil).Once()

	_, err := r.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{model.SealedHistoryKey(caseID, e.CreatedAt), model.SealedSnapshotKey(caseID)}, uploaded)
	assert.Zero(t, deps.renderer.calls)
}

func TestRelay_ProcessBatch_RetriesWithBackoff(t *testing.T) {
	ctx := context.Background()
	r, deps := newTestRelay(t, Config{MaxAttempts: 5, RetryBackoff: time.Second, RetryMaxDelay: time.Minute})

	e := outboxEvent(t, model.EventCaseUnlocked, model.CaseEvent{CaseID: uuid.New()}, 3)
	deps.renderer.notifications = []model.Notification{{To: "a@example.com"}}

	deps.outbox.On("Lease", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]model.OutboxEvent{e}, nil).Once()
	deps.notifier.On("Send", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
	deps.outbox.On("MarkRetry", mock.Anything, e.ID, relayNow.Add(4*time.Second), mock.MatchedBy(func(s string) bool {
		return assert.Contains(t, s, "redis down")
	})).Return(nil).Once()

	_, err := r.ProcessBatch(ctx)
	require.NoError(t, err)
}

func TestRelay_ProcessBatch_MarksDeadAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	r, deps := newTestRelay(t, Config{MaxAttempts: 3})

	e := outboxEvent(t, model.EventCaseUnlocked, model.CaseEvent{CaseID: uuid.New()}, 3)
	deps.renderer.err = errors.New("user directory unavailable")

	deps.outbox.On("Lease", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]model.OutboxEvent{e}, nil).Once()
	deps.outbox.On("MarkDead", mock.Anything, e.ID, mock.Anything).Return(nil).Once()

	_, err := r.ProcessBatch(ctx)
	require.NoError(t, err)
}

func TestRelay_ProcessBatch_LeaseError(t *testing.T) {
	ctx := context.Background()
	r, deps := newTestRelay(t, Config{})

	deps.outbox.On("Lease", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db gone")).Once()

	n, err := r.ProcessBatch(ctx)
	require.Error(t, err)
	assert.Zero(t, n)
}

func TestRelay_Backoff(t *testing.T) {
	r, _ := newTestRelay(t, Config{RetryBackoff: time.Second, RetryMaxDelay: 10 * time.Second})

	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{attempts: 1, want: time.Second},
		{attempts: 2, want: 2 * time.Second},
		{attempts: 4, want: 8 * time.Second},
		{attempts: 5, want: 10 * time.Second},
		{attempts: 30, want: 10 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.backoff(tt.attempts), "attempts=%d", tt.attempts)
	}
}

func TestRelay_Run_StopsOnCancel(t *testing.T) {
	r, deps := newTestRelay(t, Config{PollInterval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	deps.outbox.On("Lease", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(nil, nil).Once()

	require.NoError(t, r.Run(ctx))
}
