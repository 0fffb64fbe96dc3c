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
	"github.com/dtroode/casekeeper-server/internal/policy"
)

// SubmitPreQuestionnaire stores and locks the actor's pre-questionnaire.
func (s *Case) SubmitPreQuestionnaire(ctx context.Context, actor model.Actor, caseID uuid.UUID, answers []json.RawMessage) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "SubmitPreQuestionnaire", caseID)
	defer func() { endSpan(span, err) }()

	if answers == nil {
		return model.Case{}, apierrors.NewErrInvalidAnswers()
	}

	return s.mutate(ctx, caseID, func(_ context.Context, c *model.Case, now time.Time) ([]pendingEvent, error) {
		if !policy.Can(actor, policy.ActionActAsParty, *c) {
			return nil, apierrors.NewErrForbidden("submit a pre-questionnaire")
		}
		if !c.LawyerStageOpen() {
			return nil, apierrors.NewErrLawyerStageClosed()
		}
		pq := c.EnsurePreQuestionnaire(c.PartyOf(actor.ID))
		if pq.Locked {
			return nil, apierrors.NewErrPreQuestionnaireLocked()
		}

		wasComplete := c.BothPreQuestionnairesSubmitted()
		pq.Answers = answers
		pq.Submitted = true
		pq.SubmittedBy = &actor.ID
		pq.SubmittedAt = &now
		pq.Locked = true
		pq.LockedBy = &actor.ID
		pq.LockedAt = &now

		if !wasComplete && c.BothPreQuestionnairesSubmitted() {
			return []pendingEvent{event(model.EventPreQuestionnairesComplete, c, actor.ID)}, nil
		}
		return nil, nil
	})
}

// SelectLawyer records a lawyer choice for one party. The other party's choice
// of the same lawyer blocks the selection unless a privileged actor forces it.
// Parties select for themselves; privileged actors select for a named party.
func (s *Case) SelectLawyer(ctx context.Context, actor model.Actor, caseID uuid.UUID, sel model.LawyerSelection) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "SelectLawyer", caseID)
	defer func() { endSpan(span, err) }()

	if sel.Party != model.PartyNone && sel.Party != model.PartyOwner && sel.Party != model.PartyInvited {
		return model.Case{}, apierrors.NewErrInvalidField("party")
	}
	force := sel.Force && actor.IsPrivileged()
	if sel.Force && !force {
		s.logger.Debug("case service: ignoring force from unprivileged actor", "case_id", caseID, "actor_id", actor.ID)
	}

	return s.mutate(ctx, caseID, func(ctx context.Context, c *model.Case, now time.Time) ([]pendingEvent, error) {
		party := selectingParty(actor, *c, sel.Party)
		if party == model.PartyNone {
			return nil, apierrors.NewErrForbidden("select a lawyer")
		}
		if !c.LawyerStageOpen() {
			return nil, apierrors.NewErrLawyerStageClosed()
		}
		if !c.BothPreQuestionnairesSubmitted() {
			return nil, apierrors.NewErrPreQuestionnairesIncomplete()
		}

		if _, err := s.lawyers.GetByID(ctx, sel.LawyerID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, apierrors.NewErrLawyerNotFound(sel.LawyerID)
			}
			return nil, fmt.Errorf("failed to get lawyer by id: %w", err)
		}

		other := c.EnsurePreQuestionnaire(party.Other())
		if other.SelectedLawyer != nil && *other.SelectedLawyer == sel.LawyerID && !force {
			return nil, apierrors.NewErrLawyerAlreadySelected()
		}

		lawyerID := sel.LawyerID
		pq := c.EnsurePreQuestionnaire(party)
		pq.SelectedLawyer = &lawyerID
		pq.SelectedAt = &now

		withLawyer := func(p *model.CaseEvent) { p.LawyerID = &lawyerID }
		return []pendingEvent{
			event(model.EventLawyerSelected, c, actor.ID).with(withLawyer),
			event(model.EventLawyerIntroduction, c, actor.ID).with(withLawyer).with(func(p *model.CaseEvent) {
				p.Message = sel.Message
			}),
		}, nil
	})
}

// selectingParty resolves whose choice a selection records, or PartyNone when
// the actor may not select for the requested party.
func selectingParty(actor model.Actor, c model.Case, requested model.Party) model.Party {
	own := c.PartyOf(actor.ID)
	switch {
	case requested == model.PartyNone:
		return own
	case requested == own:
		return own
	case actor.IsPrivileged():
		return requested
	}
	return model.PartyNone
}

// IsLawyerSelected reports whether either party selected the lawyer.
func (s *Case) IsLawyerSelected(ctx context.Context, caseID, lawyerID uuid.UUID) (bool, error) {
	c, err := s.load(ctx, caseID)
	if err != nil {
		return false, err
	}
	return c.IsLawyerSelected(lawyerID), nil
}
