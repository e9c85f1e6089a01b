package search

import (
	"context"
	"fmt"

	"github.com/campuslink/discovery/internal/domain"
	"github.com/campuslink/discovery/internal/domain/candidate"
	"github.com/campuslink/discovery/internal/domain/query"
	"github.com/campuslink/discovery/internal/metrics"
)

// Config is the immutable ranking configuration, read once at startup.
type Config struct {
	Weights  Weights
	MinScore float64
}

// Service runs the cascading hybrid search: embed the query, try each tier in
// priority order, stop at the first tier that yields relevant candidates.
type Service struct {
	repo     Repository
	embed    domain.Embedder
	composer Composer
	cfg      Config
}

// New creates a search service.
func New(repo Repository, embed domain.Embedder, composer Composer, cfg Config) *Service {
	return &Service{repo: repo, embed: embed, composer: composer, cfg: cfg}
}

// Search answers one discovery query. An embedding failure aborts before any
// tier query; a tier query failure aborts the cascade rather than masking a
// real failure as an empty result. Every returned score derives from the same
// freshly computed query vector.
func (s *Service) Search(ctx context.Context, q *query.Query) (*Response, error) {
	raw, err := s.embed.Embed(ctx, q.Text())
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}
	vec := domain.NormalizeVector(raw)

	var picked []candidate.Candidate
	for t := tierGraduated; t != tierDone; t = t.next() {
		batch, err := s.queryTier(ctx, t, vec, q)
		if err != nil {
			return nil, fmt.Errorf("%s tier: %w", t, err)
		}

		if t == tierGraduated {
			batch = blendBatch(batch, s.cfg.Weights)
		}

		picked = selectTop(batch, s.cfg.MinScore, cascadeTopK)
		if len(picked) > 0 {
			metrics.SearchTierServedTotal.WithLabelValues(t.String()).Inc()
			break
		}
	}

	return s.respond(q, picked), nil
}

func (s *Service) queryTier(
	ctx context.Context, t tier, vec []float32, q *query.Query,
) ([]candidate.Candidate, error) {
	metrics.SearchTierQueriesTotal.WithLabelValues(t.String()).Inc()

	switch t {
	case tierGraduated:
		return s.repo.Graduated(ctx, vec, q)
	case tierEnrolled:
		return s.repo.Enrolled(ctx, vec, q)
	case tierPositions:
		return s.repo.Positions(ctx, vec, q)
	default:
		return nil, fmt.Errorf("unexpected cascade state: %s", t)
	}
}

func (s *Service) respond(q *query.Query, picked []candidate.Candidate) *Response {
	results := make([]Result, len(picked))
	for i, c := range picked {
		results[i] = Result{
			Collection: c.Tier(),
			ID:         c.ID(),
			Title:      c.Title(),
			Context:    c.Context(),
			Bio:        truncateBio(c.Bio()),
			Score:      c.Score(),
		}
	}

	return &Response{
		Summary: s.composer.Compose(picked),
		Results: results,
		Meta: Meta{
			Limit:    q.Limit(),
			Offset:   q.Offset(),
			Keyword:  q.Keyword(),
			Location: q.Location(),
			Skill:    q.Skill(),
			Weights:  s.cfg.Weights,
			MinScore: s.cfg.MinScore,
		},
	}
}
