package middleware

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/casekeeper-server/internal/apierrors"
	"github.com/dtroode/casekeeper-server/internal/logger"
	"github.com/dtroode/casekeeper-server/internal/model"
)

// TokenService resolves bearer tokens into actors.
type TokenService interface {
	GetActor(ctx context.Context, token string) (model.Actor, error)
}

// Authenticate validates bearer tokens and injects the actor into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// AuthFunc parses the authorization header, validates the token and returns
// a context carrying the actor.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var tokenString string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if authHeaders := md.Get("authorization"); len(authHeaders) > 0 {
			tokenString = strings.TrimPrefix(authHeaders[0], "Bearer ")
		}
	}

	actor, authErr := m.authenticateActor(ctx, tokenString)
	if authErr != nil {
		return nil, status.Error(codes.Unauthenticated, authErr.Error())
	}

	return m.contextManager.SetActorToContext(ctx, actor), nil
}

func (m *Authenticate) authenticateActor(ctx context.Context, tokenString string) (model.Actor, error) {
	if tokenString == "" {
		return model.Actor{}, apierrors.NewErrMissingAuthorizationToken()
	}

	actor, err := m.tokenService.GetActor(ctx, tokenString)
	if err != nil {
		m.logger.Debug("authenticate: token rejected", "error", err)
		return model.Actor{}, apierrors.NewErrInvalidAuthorizationToken()
	}

	if actor.ID == uuid.Nil {
		return model.Actor{}, apierrors.NewErrInvalidAuthorizationToken()
	}

	return actor, nil
}
