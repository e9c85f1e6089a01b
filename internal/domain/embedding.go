package domain

import "context"

// Embedder is the shared text vectorization contract between layers.
// The returned vector is raw provider output; callers normalize it before
// handing it to the store.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// HealthChecker verifies embedding provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
