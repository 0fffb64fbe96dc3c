package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/casekeeper-server/internal/mocks"
	"github.com/dtroode/casekeeper-server/internal/model"
	"github.com/dtroode/casekeeper-server/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	ctx := context.Background()
	actor := model.Actor{ID: uuid.New(), Role: model.RoleEndUser}

	manager := &servermocks.TokenManager{}
	manager.On("GenerateAccessToken", actor).Return("access", nil).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())

	access, err := svc.Issue(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, "access", access)
	manager.AssertExpectations(t)
}

func TestTokenService_Issue_UnknownRole(t *testing.T) {
	manager := &servermocks.TokenManager{}
	svc := NewTokenService(manager, testutil.MakeNoopLogger())

	_, err := svc.Issue(context.Background(), model.Actor{ID: uuid.New(), Role: "lawyer"})
	require.Error(t, err)
	manager.AssertNotCalled(t, "GenerateAccessToken")
}

func TestTokenService_Issue_ManagerError(t *testing.T) {
	actor := model.Actor{ID: uuid.New(), Role: model.RoleAdmin}
	manager := &servermocks.TokenManager{}
	manager.On("GenerateAccessToken", actor).Return("", assert.AnError).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())

	_, err := svc.Issue(context.Background(), actor)
	require.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_GetActor(t *testing.T) {
	valid := model.Actor{ID: uuid.New(), Role: model.RoleCaseManager}

	tests := []struct {
		name     string
		parsed   model.Actor
		parseErr error
		wantErr  bool
	}{
		{name: "valid", parsed: valid},
		{name: "parse error", parseErr: assert.AnError, wantErr: true},
		{name: "unknown role", parsed: model.Actor{ID: uuid.New(), Role: "root"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := &servermocks.TokenManager{}
			manager.On("ParseAccessToken", "tok").Return(tt.parsed, tt.parseErr).Once()

			svc := NewTokenService(manager, testutil.MakeNoopLogger())
			got, err := svc.GetActor(context.Background(), "tok")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.parsed, got)
		})
	}
}
