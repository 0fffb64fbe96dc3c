// Package apierrors defines the caller-facing failures of case operations.
package apierrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"

	"github.com/dtroode/casekeeper-server/internal/model"
)

// Kind classifies an APIError independently of the transport.
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindInvalidInput       Kind = "invalid_input"
	KindForbidden          Kind = "forbidden"
	KindConflict           Kind = "conflict"
	KindPreconditionFailed Kind = "precondition_failed"
	KindUnauthenticated    Kind = "unauthenticated"
)

// APIError is an error safe to return to the caller as is.
type APIError struct {
	Kind     Kind
	GRPCCode codes.Code
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

func newError(kind Kind, code codes.Code, format string, args ...any) *APIError {
	return &APIError{Kind: kind, GRPCCode: code, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or "" when err is not an APIError.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// Is reports whether err is an APIError of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func NewErrCaseNotFound(id uuid.UUID) *APIError {
	return newError(KindNotFound, codes.NotFound, "case %s not found", id)
}

func NewErrInviteNotFound() *APIError {
	return newError(KindNotFound, codes.NotFound, "invitation not found")
}

func NewErrLawyerNotFound(id uuid.UUID) *APIError {
	return newError(KindNotFound, codes.NotFound, "lawyer %s not found", id)
}

func NewErrUserNotFound(id uuid.UUID) *APIError {
	return newError(KindNotFound, codes.NotFound, "user %s not found", id)
}

func NewErrSnapshotNotFound(id uuid.UUID) *APIError {
	return newError(KindNotFound, codes.NotFound, "no sealed snapshot for case %s", id)
}

func NewErrInvalidStepNumber(n int) *APIError {
	return newError(KindInvalidInput, codes.InvalidArgument, "step number %d is out of range [1, %d]", n, model.StepCount)
}

func NewErrInvalidField(name string) *APIError {
	return newError(KindInvalidInput, codes.InvalidArgument, "invalid or missing field %q", name)
}

func NewErrMissingAuthorizationToken() *APIError {
	return newError(KindUnauthenticated, codes.Unauthenticated, "missing authorization token")
}

func NewErrInvalidAuthorizationToken() *APIError {
	return newError(KindUnauthenticated, codes.Unauthenticated, "invalid authorization token")
}

func NewErrInvalidStepPayload() *APIError {
	return newError(KindInvalidInput, codes.InvalidArgument, "step data must be a JSON object")
}

func NewErrInvalidAnswers() *APIError {
	return newError(KindInvalidInput, codes.InvalidArgument, "answers must be an array")
}

func NewErrInvalidWorkflowStatus(s string) *APIError {
	return newError(KindInvalidInput, codes.InvalidArgument, "invalid workflow status %q", s)
}

func NewErrInvalidEmail(email string) *APIError {
	return newError(KindInvalidInput, codes.InvalidArgument, "invalid email %q", email)
}

func NewErrInvalidURL(u string) *APIError {
	return newError(KindInvalidInput, codes.InvalidArgument, "invalid url %q", u)
}

func NewErrNotCaseManager(id uuid.UUID) *APIError {
	return newError(KindInvalidInput, codes.InvalidArgument, "user %s cannot manage cases", id)
}

func NewErrForbidden(action string) *APIError {
	return newError(KindForbidden, codes.PermissionDenied, "not allowed to %s", action)
}

func NewErrCaseLocked() *APIError {
	return newError(KindForbidden, codes.PermissionDenied, "case is locked")
}

func NewErrPreQuestionnaireLocked() *APIError {
	return newError(KindForbidden, codes.PermissionDenied, "pre-questionnaire is already submitted and locked")
}

func NewErrLawyerNotSelected(id uuid.UUID) *APIError {
	return newError(KindForbidden, codes.PermissionDenied, "lawyer %s is not selected on this case", id)
}

func NewErrLawyerAlreadySelected() *APIError {
	return newError(KindConflict, codes.AlreadyExists, "the other party already selected this lawyer")
}

func NewErrPartnerAlreadyJoined() *APIError {
	return newError(KindConflict, codes.AlreadyExists, "case already has a partner")
}

func NewErrConcurrentModification(id uuid.UUID) *APIError {
	return newError(KindConflict, codes.Aborted, "case %s was modified concurrently, retry", id)
}

// NewErrMissingSteps lists unsubmitted sections per party.
func NewErrMissingSteps(owner, invited []model.StepNumber) *APIError {
	return newError(KindPreconditionFailed, codes.FailedPrecondition,
		"cannot submit final step: %s", missingSteps(owner, invited))
}

// NewErrLawyerStageNotReady reports why a case cannot be moved to the lawyer stage.
func NewErrLawyerStageNotReady(partnerJoined bool, owner, invited []model.StepNumber) *APIError {
	reason := "partner has not joined"
	if partnerJoined {
		reason = missingSteps(owner, invited)
	}
	return newError(KindPreconditionFailed, codes.FailedPrecondition,
		"case cannot enter the lawyer stage: %s", reason)
}

func NewErrNoPartner() *APIError {
	return newError(KindPreconditionFailed, codes.FailedPrecondition, "cannot submit final step: partner has not joined")
}

func NewErrNotUnlockable() *APIError {
	return newError(KindPreconditionFailed, codes.FailedPrecondition, "case has not been locked")
}

func NewErrLawyerStageClosed() *APIError {
	return newError(KindPreconditionFailed, codes.FailedPrecondition, "case is not open for lawyer selection")
}

func NewErrPreQuestionnairesIncomplete() *APIError {
	return newError(KindPreconditionFailed, codes.FailedPrecondition, "both pre-questionnaires must be submitted first")
}

func NewErrCaseNotSealed() *APIError {
	return newError(KindPreconditionFailed, codes.FailedPrecondition, "case must be fully locked with every step submitted")
}

func NewErrInviteExpired() *APIError {
	return newError(KindPreconditionFailed, codes.FailedPrecondition, "invitation has expired")
}

func missingSteps(owner, invited []model.StepNumber) string {
	var parts []string
	if len(owner) > 0 {
		parts = append(parts, "user1 missing steps "+joinSteps(owner))
	}
	if len(invited) > 0 {
		parts = append(parts, "user2 missing steps "+joinSteps(invited))
	}
	return strings.Join(parts, "; ")
}

func joinSteps(steps []model.StepNumber) string {
	s := make([]string, len(steps))
	for i, n := range steps {
		s[i] = fmt.Sprint(int(n))
	}
	return strings.Join(s, ", ")
}
