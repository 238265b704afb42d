// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces the application uses to reach external systems.
package outbound

import (
	"context"

	"github.com/platewise/v1/internal/domain/recipe"
)

// StatePersister persists whole store states as opaque payloads, one payload
// per store key. Every mutation overwrites the prior value; there is no
// partial update. Implementations must be safe for concurrent use.
type StatePersister interface {
	// Save stores data under key, replacing any existing payload.
	Save(ctx context.Context, key string, data []byte) error

	// Load returns the payload stored under key. The boolean is false when
	// nothing has been stored yet, which is not an error.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Delete removes the payload stored under key. Deleting an absent key
	// is a no-op.
	Delete(ctx context.Context, key string) error
}

// RecipeGenerator produces recipe suggestions for a generation request.
// The stores only ever consume the result by value; the generator owns no
// state the stores depend on.
type RecipeGenerator interface {
	Generate(ctx context.Context, req recipe.GenerateRequest) (*recipe.GenerateResponse, error)
}
