package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/casekeeper-server/internal/apierrors"
	"github.com/dtroode/casekeeper-server/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "api error passthrough",
			in:       apierrors.NewErrInvalidStepNumber(9),
			wantCode: codes.InvalidArgument,
			wantMsg:  apierrors.NewErrInvalidStepNumber(9).Message,
		},
		{
			name:     "wrapped api error",
			in:       fmt.Errorf("select lawyer: %w", apierrors.NewErrLawyerAlreadySelected()),
			wantCode: codes.AlreadyExists,
			wantMsg:  apierrors.NewErrLawyerAlreadySelected().Message,
		},
		{
			name:     "precondition failed",
			in:       apierrors.NewErrMissingSteps([]model.StepNumber{2}, nil),
			wantCode: codes.FailedPrecondition,
			wantMsg:  apierrors.NewErrMissingSteps([]model.StepNumber{2}, nil).Message,
		},
		{
			name:     "concurrent modification",
			in:       apierrors.NewErrConcurrentModification(uuid.Nil),
			wantCode: codes.Aborted,
			wantMsg:  apierrors.NewErrConcurrentModification(uuid.Nil).Message,
		},
		{
			name:     "model not found -> NotFound",
			in:       fmt.Errorf("failed to get case: %w", model.ErrNotFound),
			wantCode: codes.NotFound,
			wantMsg:  "case not found",
		},
		{
			name:     "other -> Internal",
			in:       errors.New("boom"),
			wantCode: codes.Internal,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := handleError(tt.in)
			st, ok := status.FromError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}
