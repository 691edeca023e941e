package auth

import (
	"context"

	"github.com/google/uuid"
)

type principalKey struct{}

// WithPrincipal returns a context carrying the authenticated user's ID.
func WithPrincipal(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, principalKey{}, userID)
}

// PrincipalFromContext extracts the authenticated user's ID from the context.
// The second return value is false for unauthenticated requests.
func PrincipalFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(principalKey{}).(uuid.UUID)
	return id, ok
}
