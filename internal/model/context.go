package model

import "context"

// ContextManager carries the authenticated actor through request metadata.
type ContextManager interface {
	SetActorToContext(ctx context.Context, actor Actor) context.Context
	GetActorFromContext(ctx context.Context) (Actor, bool)
}
