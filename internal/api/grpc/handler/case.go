package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/casekeeper-server/internal/api/grpc/casev1"
	"github.com/dtroode/casekeeper-server/internal/apierrors"
	"github.com/dtroode/casekeeper-server/internal/logger"
	"github.com/dtroode/casekeeper-server/internal/model"
)

// CaseService defines the case workflow operations exposed over gRPC.
type CaseService interface {
	CreateCase(ctx context.Context, actor model.Actor, title string) (model.Case, error)
	GetCase(ctx context.Context, actor model.Actor, caseID uuid.UUID) (model.CaseView, error)
	ListCases(ctx context.Context, actor model.Actor) ([]model.Case, error)
	UpdateStep(ctx context.Context, actor model.Actor, caseID uuid.UUID, step int, payload json.RawMessage) (model.Case, error)
	UnlockCase(ctx context.Context, actor model.Actor, caseID uuid.UUID) (model.Case, error)
	SubmitPreQuestionnaire(ctx context.Context, actor model.Actor, caseID uuid.UUID, answers []json.RawMessage) (model.Case, error)
	SelectLawyer(ctx context.Context, actor model.Actor, caseID uuid.UUID, sel model.LawyerSelection) (model.Case, error)
	IsLawyerSelected(ctx context.Context, caseID, lawyerID uuid.UUID) (bool, error)
	ApproveCaseByUser(ctx context.Context, actor model.Actor, caseID uuid.UUID) (model.Case, error)
	ApproveCaseByLawyer(ctx context.Context, actor model.Actor, caseID, lawyerID uuid.UUID) (model.Case, error)
	ApproveCaseByManager(ctx context.Context, actor model.Actor, caseID uuid.UUID) (model.Case, error)
	AssignCaseManager(ctx context.Context, actor model.Actor, caseID, managerID uuid.UUID) (model.Case, error)
	ChangeWorkflowStatus(ctx context.Context, actor model.Actor, caseID uuid.UUID, status string) (model.Case, error)
	InvitePartner(ctx context.Context, actor model.Actor, caseID uuid.UUID, email string) (model.Case, error)
	AcceptInvite(ctx context.Context, actor model.Actor, token string) (model.Case, error)
	RemovePartner(ctx context.Context, actor model.Actor, caseID uuid.UUID) (model.Case, error)
	SetDraftAgreementURL(ctx context.Context, actor model.Actor, caseID uuid.UUID, link string) (model.Case, error)
	GetSealedSnapshotURL(ctx context.Context, actor model.Actor, caseID uuid.UUID) (string, error)
}

var _ casev1.CaseServiceServer = (*Case)(nil)

// Case handles gRPC endpoints for cases.
type Case struct {
	caseService    CaseService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewCase creates a new Case handler.
func NewCase(caseService CaseService, contextManager model.ContextManager, logger *logger.Logger) *Case {
	return &Case{
		caseService:    caseService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// CreateCase creates a case owned by the caller.
func (h *Case) CreateCase(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, err := h.extractActorFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	c, err := h.caseService.CreateCase(ctx, actor, stringField(req, "title"))
	return h.caseResponse("create case", c, err)
}

// GetCase returns one case with every step merged against its template.
func (h *Case) GetCase(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}

	v, err := h.caseService.GetCase(ctx, actor, caseID)
	if err != nil {
		return nil, h.failure("get case", err)
	}

	return h.respond(map[string]any{"case": v})
}

// ListCases returns the cases the caller takes part in, each merged against
// the step templates.
func (h *Case) ListCases(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	actor, err := h.extractActorFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	cases, err := h.caseService.ListCases(ctx, actor)
	if err != nil {
		return nil, h.failure("list cases", err)
	}

	views := make([]model.CaseView, 0, len(cases))
	for _, c := range cases {
		v, err := model.NewCaseView(c)
		if err != nil {
			return nil, h.failure("list cases", err)
		}
		views = append(views, v)
	}

	h.logger.Debug("Case handler: cases listed", "actor_id", actor.ID, "count", len(views))

	return h.respond(map[string]any{"cases": views})
}

// UpdateStep writes one questionnaire step. Step 7 seals the case.
func (h *Case) UpdateStep(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}
	step, err := intField(req, "step")
	if err != nil {
		return nil, handleError(err)
	}
	payload, err := rawField(req, "data")
	if err != nil {
		return nil, handleError(err)
	}

	c, err := h.caseService.UpdateStep(ctx, actor, caseID, step, payload)
	return h.caseResponse("update step", c, err)
}

func (h *Case) UnlockCase(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}

	c, err := h.caseService.UnlockCase(ctx, actor, caseID)
	return h.caseResponse("unlock case", c, err)
}

func (h *Case) SubmitPreQuestionnaire(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}
	answers, err := listField(req, "answers")
	if err != nil {
		return nil, handleError(err)
	}

	c, err := h.caseService.SubmitPreQuestionnaire(ctx, actor, caseID, answers)
	return h.caseResponse("submit pre-questionnaire", c, err)
}

// SelectLawyer records a lawyer choice. Privileged callers name the party with
// "party" ("user1" or "user2"); "force" is only honored for them.
func (h *Case) SelectLawyer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}
	lawyerID, err := uuidField(req, "lawyer_id")
	if err != nil {
		return nil, handleError(err)
	}
	party, err := partyField(req, "party")
	if err != nil {
		return nil, handleError(err)
	}

	c, err := h.caseService.SelectLawyer(ctx, actor, caseID, model.LawyerSelection{
		LawyerID: lawyerID,
		Party:    party,
		Force:    boolField(req, "force"),
		Message:  stringField(req, "message"),
	})
	return h.caseResponse("select lawyer", c, err)
}

// IsLawyerSelected reports whether either party selected the lawyer.
// The caller must be able to read the case.
func (h *Case) IsLawyerSelected(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}
	lawyerID, err := uuidField(req, "lawyer_id")
	if err != nil {
		return nil, handleError(err)
	}

	if _, err := h.caseService.GetCase(ctx, actor, caseID); err != nil {
		return nil, h.failure("is lawyer selected", err)
	}

	selected, err := h.caseService.IsLawyerSelected(ctx, caseID, lawyerID)
	if err != nil {
		return nil, h.failure("is lawyer selected", err)
	}

	return h.respond(map[string]any{"selected": selected})
}

func (h *Case) ApproveCaseByUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}

	c, err := h.caseService.ApproveCaseByUser(ctx, actor, caseID)
	return h.caseResponse("approve case by user", c, err)
}

func (h *Case) ApproveCaseByLawyer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}
	lawyerID, err := uuidField(req, "lawyer_id")
	if err != nil {
		return nil, handleError(err)
	}

	c, err := h.caseService.ApproveCaseByLawyer(ctx, actor, caseID, lawyerID)
	return h.caseResponse("approve case by lawyer", c, err)
}

func (h *Case) ApproveCaseByManager(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}

	c, err := h.caseService.ApproveCaseByManager(ctx, actor, caseID)
	return h.caseResponse("approve case by manager", c, err)
}

func (h *Case) AssignCaseManager(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}
	managerID, err := uuidField(req, "manager_id")
	if err != nil {
		return nil, handleError(err)
	}

	c, err := h.caseService.AssignCaseManager(ctx, actor, caseID, managerID)
	return h.caseResponse("assign case manager", c, err)
}

func (h *Case) ChangeWorkflowStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}

	c, err := h.caseService.ChangeWorkflowStatus(ctx, actor, caseID, stringField(req, "status"))
	return h.caseResponse("change workflow status", c, err)
}

func (h *Case) InvitePartner(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}

	c, err := h.caseService.InvitePartner(ctx, actor, caseID, stringField(req, "email"))
	return h.caseResponse("invite partner", c, err)
}

func (h *Case) AcceptInvite(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, err := h.extractActorFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	c, err := h.caseService.AcceptInvite(ctx, actor, stringField(req, "token"))
	return h.caseResponse("accept invite", c, err)
}

func (h *Case) RemovePartner(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}

	c, err := h.caseService.RemovePartner(ctx, actor, caseID)
	return h.caseResponse("remove partner", c, err)
}

func (h *Case) SetDraftAgreementURL(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}

	c, err := h.caseService.SetDraftAgreementURL(ctx, actor, caseID, stringField(req, "url"))
	return h.caseResponse("set draft agreement url", c, err)
}

func (h *Case) GetSealedSnapshotURL(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actor, caseID, err := h.actorAndCase(ctx, req)
	if err != nil {
		return nil, err
	}

	link, err := h.caseService.GetSealedSnapshotURL(ctx, actor, caseID)
	if err != nil {
		return nil, h.failure("get sealed snapshot url", err)
	}

	return h.respond(map[string]any{"url": link})
}

func (h *Case) extractActorFromContext(ctx context.Context) (model.Actor, error) {
	actor, ok := h.contextManager.GetActorFromContext(ctx)
	if !ok {
		return model.Actor{}, apierrors.NewErrMissingAuthorizationToken()
	}
	return actor, nil
}

// actorAndCase resolves the caller and the case_id field. Errors are gRPC statuses.
func (h *Case) actorAndCase(ctx context.Context, req *structpb.Struct) (model.Actor, uuid.UUID, error) {
	actor, err := h.extractActorFromContext(ctx)
	if err != nil {
		return model.Actor{}, uuid.Nil, status.Error(codes.Unauthenticated, err.Error())
	}

	caseID, err := uuidField(req, "case_id")
	if err != nil {
		return model.Actor{}, uuid.Nil, handleError(err)
	}

	return actor, caseID, nil
}

// caseResponse renders a mutated case the same way GetCase does.
func (h *Case) caseResponse(op string, c model.Case, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, h.failure(op, err)
	}
	v, err := model.NewCaseView(c)
	if err != nil {
		return nil, h.failure(op, err)
	}
	return h.respond(map[string]any{"case": v})
}

// failure logs unexpected errors and converts err to a gRPC status.
// Caller mistakes are logged by the logging interceptor.
func (h *Case) failure(op string, err error) error {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		h.logger.Error("Case handler: "+op+" failed", "error", err.Error())
	}
	return handleError(err)
}

func (h *Case) respond(v map[string]any) (*structpb.Struct, error) {
	s, err := toStruct(v)
	if err != nil {
		h.logger.Error("Case handler: failed to encode response", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return s, nil
}
