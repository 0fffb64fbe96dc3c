// Package notification turns committed case events into mail-service messages.
package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/casekeeper-server/internal/model"
)

// ErrUnknownEvent is returned for event types that have no message template.
var ErrUnknownEvent = errors.New("unknown event type")

// Renderer resolves recipients through the directories and builds the
// notifications of one event.
type Renderer struct {
	users   model.UserDirectory
	lawyers model.LawyerDirectory
}

func NewRenderer(users model.UserDirectory, lawyers model.LawyerDirectory) *Renderer {
	return &Renderer{
		users:   users,
		lawyers: lawyers,
	}
}

// Render builds the notifications for event t. Events without an audience,
// such as case.sealed, render to nothing.
func (r *Renderer) Render(ctx context.Context, t model.EventType, e model.CaseEvent) ([]model.Notification, error) {
	switch t {
	case model.EventCaseSealed:
		return nil, nil

	case model.EventDraftReady:
		text := fmt.Sprintf("The agreement draft for %q is ready for review.", e.CaseTitle)
		if e.URL != "" {
			text += "\n\nDraft: " + e.URL
		}
		return r.toParties(ctx, e, "Your agreement draft is ready", text)

	case model.EventReadyForCM:
		return r.toManagerPool(ctx, e, "Case ready for review",
			fmt.Sprintf("Case %q (%s) is ready for the case manager queue.", e.CaseTitle, e.CaseID))

	case model.EventCaseUnlocked:
		return r.toParties(ctx, e, "Your case was unlocked",
			fmt.Sprintf("Case %q was unlocked for corrections.", e.CaseTitle))

	case model.EventCaseReopened:
		return r.toParties(ctx, e, "Your case was reopened",
			fmt.Sprintf("Payment for %q was received. The case is open again and both pre-questionnaires need to be resubmitted.", e.CaseTitle))

	case model.EventPreQuestionnairesComplete:
		subject := "Pre-questionnaires completed"
		text := fmt.Sprintf("Both parties of case %q (%s) submitted their pre-questionnaires.", e.CaseTitle, e.CaseID)
		if e.ManagerID != nil {
			return r.toUsers(ctx, []uuid.UUID{*e.ManagerID}, subject, text)
		}
		return r.toManagerPool(ctx, e, subject, text)

	case model.EventLawyerSelected:
		lawyer, err := r.lawyer(ctx, e)
		if err != nil {
			return nil, err
		}
		return r.toParties(ctx, e, "Lawyer selected",
			fmt.Sprintf("%s was selected as counsel on case %q.", lawyer.Name, e.CaseTitle))

	case model.EventLawyerIntroduction:
		lawyer, err := r.lawyer(ctx, e)
		if err != nil {
			return nil, err
		}
		to := lawyer.ContactEmail()
		if to == "" {
			return nil, nil
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Dear %s,\n\nYou were selected as counsel on case %q.", lawyer.Name, e.CaseTitle)
		if e.Message != "" {
			fmt.Fprintf(&b, "\n\nMessage from the client:\n%s", e.Message)
		}
		return []model.Notification{{To: to, Subject: "New client introduction", Text: b.String()}}, nil

	case model.EventLawyerStageOpened:
		return r.toParties(ctx, e, "Choose your lawyer",
			fmt.Sprintf("Case %q was approved. Please complete the pre-lawyer questionnaire and select your counsel.", e.CaseTitle))

	case model.EventCaseManagerAssigned:
		if e.ManagerID == nil {
			return nil, fmt.Errorf("case_manager.assigned event for case %s has no manager", e.CaseID)
		}
		manager, err := r.users.GetByID(ctx, *e.ManagerID)
		if err != nil {
			return nil, fmt.Errorf("failed to get case manager: %w", err)
		}
		return r.toParties(ctx, e, "Your case manager",
			fmt.Sprintf("%s is now the case manager of %q. You can reach them at %s.", manager.Name, e.CaseTitle, manager.Email))

	case model.EventPartnerInvited:
		if e.Email == "" {
			return nil, nil
		}
		return []model.Notification{{
			To:      e.Email,
			Subject: "You were invited to a case",
			Text:    fmt.Sprintf("You were invited to join case %q. Your invitation code is %s.", e.CaseTitle, e.Token),
		}}, nil

	case model.EventPartnerJoined:
		if len(e.Parties) == 0 {
			return nil, nil
		}
		return r.toUsers(ctx, e.Parties[:1], "Your partner joined",
			fmt.Sprintf("Your partner accepted the invitation to %q.", e.CaseTitle))
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, t)
}

func (r *Renderer) lawyer(ctx context.Context, e model.CaseEvent) (model.Lawyer, error) {
	if e.LawyerID == nil {
		return model.Lawyer{}, fmt.Errorf("event for case %s has no lawyer", e.CaseID)
	}
	lawyer, err := r.lawyers.GetByID(ctx, *e.LawyerID)
	if err != nil {
		return model.Lawyer{}, fmt.Errorf("failed to get lawyer: %w", err)
	}
	return lawyer, nil
}

func (r *Renderer) toParties(ctx context.Context, e model.CaseEvent, subject, text string) ([]model.Notification, error) {
	return r.toUsers(ctx, e.Parties, subject, text)
}

func (r *Renderer) toManagerPool(ctx context.Context, e model.CaseEvent, subject, text string) ([]model.Notification, error) {
	managers, err := r.users.ListByRole(ctx, model.RoleCaseManager)
	if err != nil {
		return nil, fmt.Errorf("failed to list case managers: %w", err)
	}

	out := make([]model.Notification, 0, len(managers))
	for _, m := range managers {
		if m.Email == "" {
			continue
		}
		out = append(out, model.Notification{To: m.Email, Subject: subject, Text: text})
	}
	return out, nil
}

func (r *Renderer) toUsers(ctx context.Context, ids []uuid.UUID, subject, text string) ([]model.Notification, error) {
	out := make([]model.Notification, 0, len(ids))
	for _, id := range ids {
		u, err := r.users.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get user %s: %w", id, err)
		}
		if u.Email == "" {
			continue
		}
		out = append(out, model.Notification{To: u.Email, Subject: subject, Text: text})
	}
	return out, nil
}
