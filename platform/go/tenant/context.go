package tenant

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrMissingSpace is returned when an operation requires a tenant but none is attached to the context.
var ErrMissingSpace = errors.New("tenant space missing from context")

// Space captures the tenant a request operates on.
// It is attached to the context by middleware once the tenant has been resolved from credentials.
type Space struct {
	TenantID uuid.UUID
}

type ctxKey string

const spaceKey ctxKey = "PALMYRA_TENANT_SPACE"

// WithSpace returns a derived context carrying the tenant Space.
func WithSpace(ctx context.Context, space Space) context.Context {
	return context.WithValue(ctx, spaceKey, space)
}

// FromContext extracts the tenant Space and a boolean indicating presence.
func FromContext(ctx context.Context) (Space, bool) {
	v := ctx.Value(spaceKey)
	if v == nil {
		return Space{}, false
	}

	space, ok := v.(Space)
	return space, ok
}

// Require returns the tenant Space or ErrMissingSpace when it is absent or has a nil id.
func Require(ctx context.Context) (Space, error) {
	space, ok := FromContext(ctx)
	if !ok || space.TenantID == uuid.Nil {
		return Space{}, ErrMissingSpace
	}
	return space, nil
}
