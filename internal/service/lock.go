package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/casekeeper-server/internal/apierrors"
	"github.com/dtroode/casekeeper-server/internal/model"
	"github.com/dtroode/casekeeper-server/internal/policy"
)

// UnlockCase lifts the full lock so parties can correct their data.
// Repeating it on an unlocked case that was sealed before is harmless.
func (s *Case) UnlockCase(ctx context.Context, actor model.Actor, caseID uuid.UUID) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "UnlockCase", caseID)
	defer func() { endSpan(span, err) }()

	c, err = s.mutate(ctx, caseID, func(_ context.Context, c *model.Case, now time.Time) ([]pendingEvent, error) {
		if !policy.Can(actor, policy.ActionManageCase, *c) {
			return nil, apierrors.NewErrForbidden("unlock cases")
		}
		if !c.CanBeUnlocked() {
			return nil, apierrors.NewErrNotUnlockable()
		}

		c.Unseal(actor.ID, now)
		return []pendingEvent{event(model.EventCaseUnlocked, c, actor.ID)}, nil
	})
	if err != nil {
		return model.Case{}, err
	}

	s.logger.Info("case service: case unlocked", "case_id", caseID, "actor_id", actor.ID)
	return c, nil
}
