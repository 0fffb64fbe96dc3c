package service

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/casekeeper-server/internal/apierrors"
	"github.com/dtroode/casekeeper-server/internal/model"
	"github.com/dtroode/casekeeper-server/internal/policy"
)

// UpdateStep overwrites the data of one step and marks it submitted.
//
// Submitting the final step seals the case once every required section of
// both parties is present. Nothing is written when a section is missing.
func (s *Case) UpdateStep(ctx context.Context, actor model.Actor, caseID uuid.UUID, step int, payload json.RawMessage) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "UpdateStep", caseID)
	defer func() { endSpan(span, err) }()

	n := model.StepNumber(step)
	if !n.Valid() {
		return model.Case{}, apierrors.NewErrInvalidStepNumber(step)
	}
	if !isJSONObject(payload) {
		return model.Case{}, apierrors.NewErrInvalidStepPayload()
	}

	c, err = s.mutate(ctx, caseID, func(_ context.Context, c *model.Case, now time.Time) ([]pendingEvent, error) {
		if !policy.Can(actor, policy.ActionEditStep, *c) {
			return nil, apierrors.NewErrForbidden("edit this case")
		}
		if c.FullyLocked && !actor.IsPrivileged() {
			return nil, apierrors.NewErrCaseLocked()
		}

		if n != model.FinalStep {
			c.SetStep(n, payload, actor.ID, now)
			return nil, nil
		}

		if c.InvitedUserID == nil {
			return nil, apierrors.NewErrNoPartner()
		}
		prospective := *c
		prospective.SetStep(n, payload, actor.ID, now)
		if owner, invited := prospective.MissingRequiredSteps(); len(owner) > 0 || len(invited) > 0 {
			return nil, apierrors.NewErrMissingSteps(owner, invited)
		}

		c.SetStep(n, payload, actor.ID, now)
		c.Seal(actor.ID, now)
		return sealEvents(c, actor.ID)
	})
	if err != nil {
		return model.Case{}, err
	}

	if n == model.FinalStep {
		s.logger.Info("case service: case sealed", "case_id", caseID, "actor_id", actor.ID)
	}
	return c, nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}
