// Package worker delivers committed outbox events outside the request path.
package worker

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/dtroode/casekeeper-server/internal/logger"
	"github.com/dtroode/casekeeper-server/internal/model"
)

var tracer = otel.Tracer("github.com/dtroode/casekeeper-server/internal/worker")

// Renderer builds the notifications of one event.
type Renderer interface {
	Render(ctx context.Context, t model.EventType, e model.CaseEvent) ([]model.Notification, error)
}

// Config controls the relay loop.
type Config struct {
	PollInterval  time.Duration
	BatchSize     int
	LeaseTTL      time.Duration
	MaxAttempts   int
	RetryBackoff  time.Duration
	RetryMaxDelay time.Duration
}

func (c Config) normalized() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = 2 * time.Second
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 50
	}
	if c.LeaseTTL <= 0 {
		c.LeaseTTL = time.Minute
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 8
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 5 * time.Second
	}
	if c.RetryMaxDelay < c.RetryBackoff {
		c.RetryMaxDelay = 10 * time.Minute
	}
	return c
}

// Relay leases pending outbox rows, archives sealed snapshots and sends
// notifications. Delivery is at least once.
type Relay struct {
	outbox   model.OutboxStore
	renderer Renderer
	notifier model.Notifier
	storage  model.Storage
	cfg      Config
	logger   *logger.Logger
	now      func() time.Time
}

func NewRelay(
	outbox model.OutboxStore,
	renderer Renderer,
	notifier model.Notifier,
	storage model.Storage,
	cfg Config,
	logger *logger.Logger,
) *Relay {
	return &Relay{
		outbox:   outbox,
		renderer: renderer,
		notifier: notifier,
		storage:  storage,
		cfg:      cfg.normalized(),
		logger:   logger.With("component", "outbox_relay"),
		now:      time.Now,
	}
}

// Run polls the outbox until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	r.logger.Info("outbox relay started", "poll_interval", r.cfg.PollInterval)

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := r.ProcessBatch(ctx); err != nil && ctx.Err() == nil {
			r.logger.Error("outbox relay: failed to process batch", "error", err)
		}

		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// ProcessBatch leases one batch of due events and settles each of them.
// It returns the number of events leased.
func (r *Relay) ProcessBatch(ctx context.Context) (int, error) {
	events, err := r.outbox.Lease(ctx, r.now(), r.cfg.BatchSize, r.cfg.LeaseTTL)
	if err != nil {
		return 0, fmt.Errorf("failed to lease outbox events: %w", err)
	}

	for _, e := range events {
		r.process(ctx, e)
	}

	return len(events), nil
}

func (r *Relay) process(ctx context.Context, e model.OutboxEvent) {
	ctx, span := tracer.Start(ctx, "Outbox.Relay.Process")
	defer span.End()
	span.SetAttributes(
		attribute.String("event.id", e.ID.String()),
		attribute.String("event.type", string(e.Type)),
		attribute.Int("event.attempts", e.Attempts),
	)

	err := r.handle(ctx, e)
	if err == nil {
		if err := r.outbox.MarkDelivered(ctx, e.ID, r.now()); err != nil {
			r.logger.Error("outbox relay: failed to mark delivered", "event_id", e.ID, "error", err)
		}
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	if e.Attempts >= r.cfg.MaxAttempts {
		r.logger.Error("outbox relay: giving up on event",
			"event_id", e.ID,
			"event_type", e.Type,
			"case_id", e.CaseID,
			"attempts", e.Attempts,
			"error", err)
		if err := r.outbox.MarkDead(ctx, e.ID, err.Error()); err != nil {
			r.logger.Error("outbox relay: failed to mark dead", "event_id", e.ID, "error", err)
		}
		return
	}

	next := r.now().Add(r.backoff(e.Attempts))
	r.logger.Warn("outbox relay: delivery failed, will retry",
		"event_id", e.ID,
		"event_type", e.Type,
		"attempts", e.Attempts,
		"next_attempt_at", next,
		"error", err)
	if err := r.outbox.MarkRetry(ctx, e.ID, next, err.Error()); err != nil {
		r.logger.Error("outbox relay: failed to mark retry", "event_id", e.ID, "error", err)
	}
}

func (r *Relay) handle(ctx context.Context, e model.OutboxEvent) error {
	payload, err := e.DecodePayload()
	if err != nil {
		return err
	}

	if e.Type == model.EventCaseSealed {
		return r.archive(ctx, e, payload)
	}

	notifications, err := r.renderer.Render(ctx, e.Type, payload)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", e.Type, err)
	}

	for _, n := range notifications {
		if err := r.notifier.Send(ctx, n); err != nil {
			return fmt.Errorf("failed to send %s to %s: %w", e.Type, n.To, err)
		}
	}

	return nil
}

// archive stores the sealed snapshot under its history key and as the latest snapshot.
func (r *Relay) archive(ctx context.Context, e model.OutboxEvent, payload model.CaseEvent) error {
	if len(payload.Snapshot) == 0 {
		return fmt.Errorf("case.sealed event %s has no snapshot", e.ID)
	}

	keys := []string{
		model.SealedHistoryKey(payload.CaseID, e.CreatedAt),
		model.SealedSnapshotKey(payload.CaseID),
	}
	for _, key := range keys {
		if err := r.storage.Upload(ctx, key, bytes.NewReader(payload.Snapshot)); err != nil {
			return fmt.Errorf("failed to archive snapshot %s: %w", key, err)
		}
	}

	r.logger.Info("sealed snapshot archived", "case_id", payload.CaseID, "event_id", e.ID)
	return nil
}

// backoff doubles the retry delay per attempt up to RetryMaxDelay.
func (r *Relay) backoff(attempts int) time.Duration {
	delay := r.cfg.RetryBackoff
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= r.cfg.RetryMaxDelay {
			return r.cfg.RetryMaxDelay
		}
	}
	return delay
}
