package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/casekeeper-server/internal/apierrors"
	"github.com/dtroode/casekeeper-server/internal/model"
)

// pendingEvent is an outbox entry produced by a mutation before it is encoded.
type pendingEvent struct {
	eventType model.EventType
	payload   model.CaseEvent
}

// mutation applies one operation to a freshly loaded case. It must not keep
// references to c after returning and must leave c untouched on error.
type mutation func(ctx context.Context, c *model.Case, now time.Time) ([]pendingEvent, error)

// mutate runs a read-modify-write cycle against the case store, re-reading and
// re-applying fn when another writer bumped the version in between.
func (s *Case) mutate(ctx context.Context, caseID uuid.UUID, fn mutation) (model.Case, error) {
	for attempt := 1; attempt <= s.cfg.MaxWriteAttempts; attempt++ {
		c, err := s.load(ctx, caseID)
		if err != nil {
			return model.Case{}, err
		}

		now := s.now()
		pending, err := fn(ctx, &c, now)
		if err != nil {
			return model.Case{}, err
		}
		if !c.LockInvariantHolds() {
			return model.Case{}, fmt.Errorf("failed to apply mutation to case %s: %w", caseID, model.ErrLockInvariant)
		}
		c.UpdatedAt = now

		events, err := encodeEvents(pending, now)
		if err != nil {
			return model.Case{}, err
		}

		updated, err := s.store.Update(ctx, c, events)
		if errors.Is(err, model.ErrVersionConflict) {
			s.logger.Debug("case service: version conflict, retrying",
				"case_id", caseID,
				"attempt", attempt)
			continue
		}
		if err != nil {
			return model.Case{}, fmt.Errorf("failed to update case: %w", err)
		}

		return updated, nil
	}

	s.logger.Warn("case service: write attempts exhausted", "case_id", caseID, "attempts", s.cfg.MaxWriteAttempts)
	return model.Case{}, apierrors.NewErrConcurrentModification(caseID)
}

func (s *Case) load(ctx context.Context, caseID uuid.UUID) (model.Case, error) {
	c, err := s.store.GetByID(ctx, caseID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Case{}, apierrors.NewErrCaseNotFound(caseID)
	}
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to get case by id: %w", err)
	}

	return c, nil
}

func encodeEvents(pending []pendingEvent, now time.Time) ([]model.OutboxEvent, error) {
	events := make([]model.OutboxEvent, 0, len(pending))
	for _, p := range pending {
		e, err := model.NewOutboxEvent(p.eventType, p.payload, now)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// event builds the common payload for an event about c caused by actorID.
func event(t model.EventType, c *model.Case, actorID uuid.UUID) pendingEvent {
	return pendingEvent{
		eventType: t,
		payload: model.CaseEvent{
			CaseID:    c.ID,
			CaseTitle: c.Title,
			ActorID:   actorID,
			Parties:   c.PartyIDs(),
			ManagerID: c.AssignedCaseManager,
		},
	}
}

func (e pendingEvent) with(edit func(p *model.CaseEvent)) pendingEvent {
	edit(&e.payload)
	return e
}

// sealEvents announces a freshly sealed case to parties, the manager queue and the archive.
func sealEvents(c *model.Case, actorID uuid.UUID) ([]pendingEvent, error) {
	snapshot, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sealed snapshot: %w", err)
	}

	return []pendingEvent{
		event(model.EventDraftReady, c, actorID),
		event(model.EventReadyForCM, c, actorID),
		event(model.EventCaseSealed, c, actorID).with(func(p *model.CaseEvent) {
			p.Snapshot = snapshot
		}),
	}, nil
}
