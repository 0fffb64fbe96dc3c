package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dtroode/casekeeper-server/internal/apierrors"
	"github.com/dtroode/casekeeper-server/internal/logger"
	"github.com/dtroode/casekeeper-server/internal/model"
	"github.com/dtroode/casekeeper-server/internal/policy"
)

var tracer = otel.Tracer("github.com/dtroode/casekeeper-server/internal/service")

// Config tunes the case workflow.
type Config struct {
	InviteTTL        time.Duration
	MaxWriteAttempts int
	SnapshotURLTTL   time.Duration
}

// Case implements the case workflow engine.
type Case struct {
	store   model.CaseStore
	users   model.UserDirectory
	lawyers model.LawyerDirectory
	storage model.Storage
	cfg     Config
	logger  *logger.Logger
	now     func() time.Time
}

func NewCase(
	store model.CaseStore,
	users model.UserDirectory,
	lawyers model.LawyerDirectory,
	storage model.Storage,
	cfg Config,
	logger *logger.Logger,
) *Case {
	if cfg.MaxWriteAttempts < 1 {
		cfg.MaxWriteAttempts = 1
	}
	return &Case{
		store:   store,
		users:   users,
		lawyers: lawyers,
		storage: storage,
		cfg:     cfg,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func startSpan(ctx context.Context, name string, caseID uuid.UUID) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Case.Service."+name, trace.WithAttributes(attribute.String("case.id", caseID.String())))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}

// CreateCase opens a DRAFT case owned by the actor.
func (s *Case) CreateCase(ctx context.Context, actor model.Actor, title string) (c model.Case, err error) {
	c = model.NewCase(actor.ID, strings.TrimSpace(title), s.now())
	ctx, span := startSpan(ctx, "CreateCase", c.ID)
	defer func() { endSpan(span, err) }()

	c, err = s.store.Create(ctx, c, nil)
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to create case: %w", err)
	}

	s.logger.Info("case service: case created", "case_id", c.ID, "owner_id", actor.ID)
	return c, nil
}

// GetCase returns a case to a party or a privileged actor.
func (s *Case) GetCase(ctx context.Context, actor model.Actor, caseID uuid.UUID) (v model.CaseView, err error) {
	ctx, span := startSpan(ctx, "GetCase", caseID)
	defer func() { endSpan(span, err) }()

	c, err := s.load(ctx, caseID)
	if err != nil {
		return model.CaseView{}, err
	}
	if !policy.Can(actor, policy.ActionViewCase, c) {
		return model.CaseView{}, apierrors.NewErrCaseNotFound(caseID)
	}

	v, err = model.NewCaseView(c)
	if err != nil {
		return model.CaseView{}, fmt.Errorf("failed to render case: %w", err)
	}

	return v, nil
}

// ListCases returns cases the actor owns, was invited to or manages.
func (s *Case) ListCases(ctx context.Context, actor model.Actor) ([]model.Case, error) {
	cases, err := s.store.ListByParticipant(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases by participant: %w", err)
	}

	visible := cases[:0]
	for _, c := range cases {
		if policy.Can(actor, policy.ActionViewCase, c) {
			visible = append(visible, c)
		}
	}

	return visible, nil
}

// InvitePartner creates a pending invitation for the second party.
func (s *Case) InvitePartner(ctx context.Context, actor model.Actor, caseID uuid.UUID, email string) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "InvitePartner", caseID)
	defer func() { endSpan(span, err) }()

	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return model.Case{}, apierrors.NewErrInvalidEmail(email)
	}

	return s.mutate(ctx, caseID, func(_ context.Context, c *model.Case, now time.Time) ([]pendingEvent, error) {
		if !policy.Can(actor, policy.ActionManagePartner, *c) {
			return nil, apierrors.NewErrForbidden("invite a partner")
		}
		if c.InvitedUserID != nil {
			return nil, apierrors.NewErrPartnerAlreadyJoined()
		}

		token, err := newInviteToken()
		if err != nil {
			return nil, err
		}
		expires := now.Add(s.cfg.InviteTTL)
		c.InvitedEmail = addr.Address
		c.InviteToken = token
		c.InviteTokenExpires = &expires

		return []pendingEvent{
			event(model.EventPartnerInvited, c, actor.ID).with(func(p *model.CaseEvent) {
				p.Email = addr.Address
				p.Token = token
			}),
		}, nil
	})
}

// AcceptInvite attaches the actor as the second party of the invited case.
func (s *Case) AcceptInvite(ctx context.Context, actor model.Actor, token string) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "AcceptInvite", uuid.Nil)
	defer func() { endSpan(span, err) }()

	if token == "" {
		return model.Case{}, apierrors.NewErrInviteNotFound()
	}

	found, err := s.store.GetByInviteToken(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return model.Case{}, apierrors.NewErrInviteNotFound()
	}
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to get case by invite token: %w", err)
	}

	return s.mutate(ctx, found.ID, func(_ context.Context, c *model.Case, now time.Time) ([]pendingEvent, error) {
		if c.InviteToken != token {
			return nil, apierrors.NewErrInviteNotFound()
		}
		if c.InviteTokenExpires != nil && now.After(*c.InviteTokenExpires) {
			return nil, apierrors.NewErrInviteExpired()
		}
		if actor.ID == c.OwnerID {
			return nil, apierrors.NewErrForbidden("accept an invitation to your own case")
		}
		if c.InvitedUserID != nil {
			return nil, apierrors.NewErrPartnerAlreadyJoined()
		}

		c.InvitedUserID = &actor.ID
		c.ClearInvite()

		return []pendingEvent{event(model.EventPartnerJoined, c, actor.ID)}, nil
	})
}

// RemovePartner detaches the second party and resets their sections.
func (s *Case) RemovePartner(ctx context.Context, actor model.Actor, caseID uuid.UUID) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "RemovePartner", caseID)
	defer func() { endSpan(span, err) }()

	return s.mutate(ctx, caseID, func(_ context.Context, c *model.Case, now time.Time) ([]pendingEvent, error) {
		if !policy.Can(actor, policy.ActionManagePartner, *c) {
			return nil, apierrors.NewErrForbidden("remove the partner")
		}
		if c.FullyLocked {
			if !actor.IsPrivileged() {
				return nil, apierrors.NewErrCaseLocked()
			}
			// a case without its second party is incomplete and cannot stay sealed
			c.Unseal(actor.ID, now)
		}

		c.ResetInvitedParty()
		return nil, nil
	})
}

// SetDraftAgreementURL records the externally generated draft agreement link.
func (s *Case) SetDraftAgreementURL(ctx context.Context, actor model.Actor, caseID uuid.UUID, link string) (c model.Case, err error) {
	ctx, span := startSpan(ctx, "SetDraftAgreementURL", caseID)
	defer func() { endSpan(span, err) }()

	u, err := url.ParseRequestURI(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return model.Case{}, apierrors.NewErrInvalidURL(link)
	}

	return s.mutate(ctx, caseID, func(_ context.Context, c *model.Case, _ time.Time) ([]pendingEvent, error) {
		if !policy.Can(actor, policy.ActionManageCase, *c) {
			return nil, apierrors.NewErrForbidden("set the draft agreement")
		}

		c.DraftAgreementURL = u.String()
		return []pendingEvent{
			event(model.EventDraftReady, c, actor.ID).with(func(p *model.CaseEvent) {
				p.URL = c.DraftAgreementURL
			}),
		}, nil
	})
}

// GetSealedSnapshotURL returns a short-lived link to the archived sealed snapshot.
func (s *Case) GetSealedSnapshotURL(ctx context.Context, actor model.Actor, caseID uuid.UUID) (link string, err error) {
	ctx, span := startSpan(ctx, "GetSealedSnapshotURL", caseID)
	defer func() { endSpan(span, err) }()

	c, err := s.load(ctx, caseID)
	if err != nil {
		return "", err
	}
	if !policy.Can(actor, policy.ActionViewCase, c) {
		return "", apierrors.NewErrCaseNotFound(caseID)
	}

	key := model.SealedSnapshotKey(caseID)
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to check snapshot: %w", err)
	}
	if !exists {
		return "", apierrors.NewErrSnapshotNotFound(caseID)
	}

	link, err = s.storage.PresignedGetURL(ctx, key, s.cfg.SnapshotURLTTL)
	if err != nil {
		return "", fmt.Errorf("failed to presign snapshot: %w", err)
	}

	return link, nil
}

func newInviteToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate invite token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
