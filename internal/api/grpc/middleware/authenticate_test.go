package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/casekeeper-server/internal/apierrors"
	"github.com/dtroode/casekeeper-server/internal/mocks"
	"github.com/dtroode/casekeeper-server/internal/model"
	"github.com/dtroode/casekeeper-server/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mdAuthHeader  string
		tokenSvcActor model.Actor
		tokenSvcErr   error
		wantGRPCCode  codes.Code
		wantErr       bool
		expectSetCtx  bool
	}{
		{
			name:         "missing authorization header",
			mdAuthHeader: "",
			wantGRPCCode: codes.Unauthenticated,
			wantErr:      true,
		},
		{
			name:         "invalid token",
			mdAuthHeader: "Bearer invalid",
			tokenSvcErr:  apierrors.NewErrInvalidAuthorizationToken(),
			wantGRPCCode: codes.Unauthenticated,
			wantErr:      true,
		},
		{
			name:          "nil actor id from token",
			mdAuthHeader:  "Bearer token",
			tokenSvcActor: model.Actor{Role: model.RoleEndUser},
			wantGRPCCode:  codes.Unauthenticated,
			wantErr:       true,
		},
		{
			name:          "valid token",
			mdAuthHeader:  "Bearer token",
			tokenSvcActor: model.Actor{ID: uuid.New(), Role: model.RoleCaseManager},
			wantGRPCCode:  codes.OK,
			expectSetCtx:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lg := testutil.MakeNoopLogger()
			cm := mocks.NewContextManager(t)

			if tt.expectSetCtx {
				cm.On("SetActorToContext", mock.Anything, tt.tokenSvcActor).Return(context.Background())
			}

			svc := mocks.NewTokenService(t)
			if tt.mdAuthHeader != "" {
				svc.On("GetActor", mock.Anything, mock.AnythingOfType("string")).Return(tt.tokenSvcActor, tt.tokenSvcErr)
			}
			m := NewAuthenticate(svc, cm, lg)

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, tt.wantGRPCCode, st.Code())
				assert.Nil(t, newCtx)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, newCtx)
			}
		})
	}
}
