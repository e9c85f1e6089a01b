package domain

import "errors"

// Sentinel errors shared between layers.
var (
	// ErrQueryRequired signals a request without query text.
	ErrQueryRequired = errors.New("query text is required")
	// ErrEmbeddingTimeout signals that the embedding service did not answer in time.
	ErrEmbeddingTimeout = errors.New("embedding request timed out")
	// ErrEmbeddingInvalidResponse signals a malformed embedding service response.
	ErrEmbeddingInvalidResponse = errors.New("invalid embedding response")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)

// IsEmbeddingError reports whether err belongs to the embedding failure class.
// Callers surface these as one generic "search module unavailable" failure;
// the concrete cause is only logged server-side.
func IsEmbeddingError(err error) bool {
	return errors.Is(err, ErrEmbeddingTimeout) ||
		errors.Is(err, ErrEmbeddingInvalidResponse) ||
		errors.Is(err, ErrEmbeddingProviderError)
}
