package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/casekeeper-server/internal/apierrors"
	"github.com/dtroode/casekeeper-server/internal/model"
	"github.com/dtroode/casekeeper-server/internal/policy"
)

// ApproveCaseByUser records the approval of the actor's side.
func (s *Case) ApproveCaseByUser(ctx context.Context, actor model.Actor, caseID uuid.UUID) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "ApproveCaseByUser", caseID)
	defer func() { endSpan(span, err) }()

	return s.mutate(ctx, caseID, func(_ context.Context, c *model.Case, now time.Time) ([]pendingEvent, error) {
		party := c.PartyOf(actor.ID)
		if party == model.PartyNone {
			return nil, apierrors.NewErrForbidden("approve this case")
		}
		if !c.SealedAndComplete() {
			return nil, apierrors.NewErrCaseNotSealed()
		}

		if party == model.PartyOwner {
			c.Approval.User1Approved = true
			c.Approval.User1ApprovedAt = &now
		} else {
			c.Approval.User2Approved = true
			c.Approval.User2ApprovedAt = &now
		}

		return applyQuorum(c, actor.ID, now), nil
	})
}

// ApproveCaseByLawyer records the approval of a lawyer chosen by either party.
// The actor is the lawyer themselves or a privileged operator acting for them.
func (s *Case) ApproveCaseByLawyer(ctx context.Context, actor model.Actor, caseID, lawyerID uuid.UUID) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "ApproveCaseByLawyer", caseID)
	defer func() { endSpan(span, err) }()

	if actor.ID != lawyerID && !actor.IsPrivileged() {
		return model.Case{}, apierrors.NewErrForbidden("approve on behalf of another lawyer")
	}

	return s.mutate(ctx, caseID, func(_ context.Context, c *model.Case, now time.Time) ([]pendingEvent, error) {
		if !c.SealedAndComplete() {
			return nil, apierrors.NewErrCaseNotSealed()
		}
		if !c.IsLawyerSelected(lawyerID) {
			return nil, apierrors.NewErrLawyerNotSelected(lawyerID)
		}

		c.Approval.LawyerApproved = true
		c.Approval.LawyerApprovedAt = &now
		c.Approval.ApprovedLawyer = &lawyerID

		return applyQuorum(c, actor.ID, now), nil
	})
}

// ApproveCaseByManager records the case manager approval.
func (s *Case) ApproveCaseByManager(ctx context.Context, actor model.Actor, caseID uuid.UUID) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "ApproveCaseByManager", caseID)
	defer func() { endSpan(span, err) }()

	return s.mutate(ctx, caseID, func(_ context.Context, c *model.Case, now time.Time) ([]pendingEvent, error) {
		if !policy.Can(actor, policy.ActionManageCase, *c) {
			return nil, apierrors.NewErrForbidden("approve as case manager")
		}
		if !c.SealedAndComplete() {
			return nil, apierrors.NewErrCaseNotSealed()
		}

		c.Approval.CaseManagerApproved = true
		c.Approval.CaseManagerApprovedAt = &now
		c.Approval.ApprovedBy = &actor.ID

		return applyQuorum(c, actor.ID, now), nil
	})
}

// applyQuorum moves the case to LAWYER the first time both parties and the
// case manager have approved.
func applyQuorum(c *model.Case, actorID uuid.UUID, now time.Time) []pendingEvent {
	if !c.Approval.Quorum() || c.WorkflowStatus == model.WorkflowLawyer {
		return nil
	}

	c.WorkflowStatus = model.WorkflowLawyer
	c.Seal(actorID, now)
	return []pendingEvent{event(model.EventLawyerStageOpened, c, actorID)}
}

// AssignCaseManager puts the case into the CM queue of a privileged user.
func (s *Case) AssignCaseManager(ctx context.Context, actor model.Actor, caseID, managerID uuid.UUID) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "AssignCaseManager", caseID)
	defer func() { endSpan(span, err) }()

	if !actor.IsPrivileged() {
		return model.Case{}, apierrors.NewErrForbidden("assign case managers")
	}

	manager, err := s.users.GetByID(ctx, managerID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Case{}, apierrors.NewErrUserNotFound(managerID)
	}
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !manager.Role.IsPrivileged() {
		return model.Case{}, apierrors.NewErrNotCaseManager(managerID)
	}

	return s.mutate(ctx, caseID, func(_ context.Context, c *model.Case, _ time.Time) ([]pendingEvent, error) {
		if !policy.Can(actor, policy.ActionManageCase, *c) {
			return nil, apierrors.NewErrForbidden("assign case managers")
		}

		c.AssignedCaseManager = &manager.ID
		c.WorkflowStatus = model.WorkflowCM
		return []pendingEvent{event(model.EventCaseManagerAssigned, c, actor.ID)}, nil
	})
}

// ChangeWorkflowStatus moves a case between CM, PAID and LAWYER by hand.
// LAWYER seals the case and needs the partner attached and every step submitted.
func (s *Case) ChangeWorkflowStatus(ctx context.Context, actor model.Actor, caseID uuid.UUID, status string) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "ChangeWorkflowStatus", caseID)
	defer func() { endSpan(span, err) }()

	target := model.WorkflowStatus(status)
	if !target.ManualTarget() {
		return model.Case{}, apierrors.NewErrInvalidWorkflowStatus(status)
	}

	c, err = s.mutate(ctx, caseID, func(_ context.Context, c *model.Case, now time.Time) ([]pendingEvent, error) {
		if !policy.Can(actor, policy.ActionManageCase, *c) {
			return nil, apierrors.NewErrForbidden("change workflow status")
		}

		if target == model.WorkflowLawyer {
			owner, invited := c.MissingRequiredSteps()
			if c.InvitedUserID == nil || len(owner) > 0 || len(invited) > 0 {
				return nil, apierrors.NewErrLawyerStageNotReady(c.InvitedUserID != nil, owner, invited)
			}
		}

		c.WorkflowStatus = target
		switch target {
		case model.WorkflowCM:
			if c.AssignedCaseManager == nil {
				c.AssignedCaseManager = &actor.ID
			}
			return []pendingEvent{event(model.EventReadyForCM, c, actor.ID)}, nil
		case model.WorkflowPaid:
			c.Reopen(actor.ID, now)
			return []pendingEvent{event(model.EventCaseReopened, c, actor.ID)}, nil
		default:
			c.Seal(actor.ID, now)
			return []pendingEvent{event(model.EventLawyerStageOpened, c, actor.ID)}, nil
		}
	})
	if err != nil {
		return model.Case{}, err
	}

	s.logger.Info("case service: workflow status changed", "case_id", caseID, "status", target, "actor_id", actor.ID)
	return c, nil
}
