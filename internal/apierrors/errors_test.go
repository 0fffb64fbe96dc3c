package apierrors

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"

	"github.com/dtroode/casekeeper-server/internal/model"
)

func TestNewErrMissingSteps(t *testing.T) {
	tests := []struct {
		name    string
		owner   []model.StepNumber
		invited []model.StepNumber
		want    string
	}{
		{
			name:    "both parties",
			owner:   []model.StepNumber{2, 5},
			invited: []model.StepNumber{3},
			want:    "cannot submit final step: user1 missing steps 2, 5; user2 missing steps 3",
		},
		{
			name:    "invited only",
			invited: []model.StepNumber{3, 4},
			want:    "cannot submit final step: user2 missing steps 3, 4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewErrMissingSteps(tt.owner, tt.invited)
			assert.Equal(t, tt.want, err.Error())
			assert.Equal(t, KindPreconditionFailed, err.Kind)
			assert.Equal(t, codes.FailedPrecondition, err.GRPCCode)
		})
	}
}

func TestNewErrLawyerStageNotReady(t *testing.T) {
	err := NewErrLawyerStageNotReady(false, nil, nil)
	assert.Equal(t, "case cannot enter the lawyer stage: partner has not joined", err.Error())
	assert.Equal(t, codes.FailedPrecondition, err.GRPCCode)

	err = NewErrLawyerStageNotReady(true, []model.StepNumber{7}, []model.StepNumber{3})
	assert.Equal(t, "case cannot enter the lawyer stage: user1 missing steps 7; user2 missing steps 3", err.Error())
	assert.Equal(t, KindPreconditionFailed, err.Kind)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewErrCaseNotFound(uuid.New()))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.Equal(t, Kind(""), KindOf(fmt.Errorf("plain")))
	assert.Equal(t, codes.Aborted, NewErrConcurrentModification(uuid.New()).GRPCCode)
}
