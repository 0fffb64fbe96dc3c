package service

import (
	"context"
	"fmt"

	"github.com/dtroode/casekeeper-server/internal/logger"
	"github.com/dtroode/casekeeper-server/internal/model"
)

// TokenService resolves bearer tokens into actors for the transport layer.
// Issuing is only used by local tooling; production tokens come from the
// account service sharing the signing secret.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(_ context.Context, actor model.Actor) (string, error) {
	if !actor.Role.Valid() {
		return "", fmt.Errorf("issue access: unknown role %q", actor.Role)
	}

	access, err := s.manager.GenerateAccessToken(actor)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}

	return access, nil
}

func (s *TokenService) GetActor(_ context.Context, token string) (model.Actor, error) {
	actor, err := s.manager.ParseAccessToken(token)
	if err != nil {
		return model.Actor{}, err
	}
	if !actor.Role.Valid() {
		s.logger.Warn("token service: rejected token with unknown role", "role", actor.Role)
		return model.Actor{}, fmt.Errorf("unknown role %q", actor.Role)
	}

	return actor, nil
}
