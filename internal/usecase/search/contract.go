package search

import (
	"context"

	"github.com/campuslink/discovery/internal/domain/candidate"
	"github.com/campuslink/discovery/internal/domain/query"
)

// Repository defines the storage contract for tier queries: one query builder
// per collection, all taking the normalized query vector.
type Repository interface {
	Graduated(ctx context.Context, vec []float32, q *query.Query) ([]candidate.Candidate, error)
	Enrolled(ctx context.Context, vec []float32, q *query.Query) ([]candidate.Candidate, error)
	Positions(ctx context.Context, vec []float32, q *query.Query) ([]candidate.Candidate, error)
}

// Composer renders the one-sentence summary for a ranked result set.
type Composer interface {
	Compose(top []candidate.Candidate) string
}
