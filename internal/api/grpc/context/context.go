package context

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/casekeeper-server/internal/model"
)

// Metadata keys carrying the authenticated actor inside the incoming gRPC context.
// The authentication interceptor overwrites any client-sent values.
const (
	actorIDKey   string = "x-actor-id"
	actorRoleKey string = "x-actor-role"
)

var _ model.ContextManager = (*Manager)(nil)

// Manager stores and retrieves the actor in gRPC metadata.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetActorToContext returns a context whose incoming metadata carries actor.
func (m *Manager) SetActorToContext(ctx context.Context, actor model.Actor) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(nil)
	} else {
		md = md.Copy()
	}
	md.Set(actorIDKey, actor.ID.String())
	md.Set(actorRoleKey, string(actor.Role))

	return metadata.NewIncomingContext(ctx, md)
}

// GetActorFromContext reads the actor set by SetActorToContext.
// It reports false when the id is missing or malformed or the role is unknown.
func (m *Manager) GetActorFromContext(ctx context.Context) (model.Actor, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return model.Actor{}, false
	}

	ids := md.Get(actorIDKey)
	roles := md.Get(actorRoleKey)
	if len(ids) == 0 || len(roles) == 0 {
		return model.Actor{}, false
	}

	id, err := uuid.Parse(ids[0])
	if err != nil {
		return model.Actor{}, false
	}
	role := model.Role(roles[0])
	if !role.Valid() {
		return model.Actor{}, false
	}

	return model.Actor{ID: id, Role: role}, true
}
