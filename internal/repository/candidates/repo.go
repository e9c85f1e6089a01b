package candidates

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuslink/discovery/internal/db"
	"github.com/campuslink/discovery/internal/domain/candidate"
	"github.com/campuslink/discovery/internal/domain/query"
)

// Index and key layout. Only records that carry a stored vector are indexed,
// so the "embedding IS NOT NULL" restriction is implicit in every query.
const (
	keyPrefix = "discovery:"

	graduatedIndex = keyPrefix + "graduated:idx"
	enrolledIndex  = keyPrefix + "enrolled:idx"
	positionsIndex = keyPrefix + "positions:idx"

	graduatedKeys = keyPrefix + "graduated:"
	enrolledKeys  = keyPrefix + "enrolled:"
	positionsKeys = keyPrefix + "positions:"

	// profileField is the TEXT field the lexical term is ranked against.
	profileField = "profile"
)

// store is the consumer interface for tier queries (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// Repo runs the per-collection candidate queries. It is the only component
// that knows how the three collections are laid out in the record store.
type Repo struct {
	store store
}

// New creates a candidates repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Graduated queries the graduated-members collection: publicly visible
// records, optional location substring and exact skill filters, and an
// optional lexical term. Each candidate carries its semantic score plus the
// raw lexical score joined from a BM25 query over the same filtered set;
// rows absent from the lexical result keep a raw score of 0. Blending is the
// caller's job — relevance is only meaningful relative to the whole batch.
func (r *Repo) Graduated(ctx context.Context, vec []float32, q *query.Query) ([]candidate.Candidate, error) {
	base := db.CombineAll(
		db.TagEquals("visibility", "public"),
		locationFilter(q.Location()),
		skillFilter(q.Skill()),
	)

	prefilter := base
	if q.Keyword() != "" {
		// The lexical term also narrows the semantic batch, mirroring the
		// text query below so both scores describe the same rows.
		prefilter = db.CombineAll(base, db.TextMatch(profileField, q.Keyword()))
	}

	entries, err := r.searchKNN(ctx, graduatedIndex, prefilter, vec, q)
	if err != nil {
		return nil, fmt.Errorf("graduated: %w", err)
	}

	lexical := make(map[string]float64)
	if q.Keyword() != "" {
		tr, err := r.store.SearchText(ctx, &db.TextQuery{
			Index:     graduatedIndex,
			Field:     profileField,
			Term:      q.Keyword(),
			Prefilter: base,
			Limit:     fetchSize(q),
		})
		if err != nil {
			return nil, fmt.Errorf("graduated lexical: %w", err)
		}
		for _, e := range tr.Entries {
			lexical[e.Key] = e.Score
		}
	}

	cands := make([]candidate.Candidate, 0, len(entries))
	for _, e := range entries {
		id := strings.TrimPrefix(e.Key, graduatedKeys)
		cands = append(cands, candidate.New(
			candidate.Graduated, id,
			e.Fields["title"], e.Fields["context"], e.Fields["bio"],
			e.Score, lexical[e.Key], 0,
		))
	}
	return cands, nil
}

// Enrolled queries the enrolled-members collection. Semantic score only; the
// blended score equals the semantic score.
func (r *Repo) Enrolled(ctx context.Context, vec []float32, q *query.Query) ([]candidate.Candidate, error) {
	entries, err := r.searchKNN(ctx, enrolledIndex, "", vec, q)
	if err != nil {
		return nil, fmt.Errorf("enrolled: %w", err)
	}

	cands := make([]candidate.Candidate, 0, len(entries))
	for _, e := range entries {
		id := strings.TrimPrefix(e.Key, enrolledKeys)
		cands = append(cands, candidate.New(
			candidate.Enrolled, id,
			"", "", e.Fields["bio"],
			e.Score, 0, e.Score,
		))
	}
	return cands, nil
}

// Positions queries the open-positions collection, restricted to active
// postings. Semantic score only.
func (r *Repo) Positions(ctx context.Context, vec []float32, q *query.Query) ([]candidate.Candidate, error) {
	entries, err := r.searchKNN(ctx, positionsIndex, db.TagEquals("active", "true"), vec, q)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	cands := make([]candidate.Candidate, 0, len(entries))
	for _, e := range entries {
		id := strings.TrimPrefix(e.Key, positionsKeys)
		cands = append(cands, candidate.New(
			candidate.Position, id,
			e.Fields["title"], e.Fields["context"], e.Fields["bio"],
			e.Score, 0, e.Score,
		))
	}
	return cands, nil
}

func (r *Repo) searchKNN(
	ctx context.Context, index, prefilter string, vec []float32, q *query.Query,
) ([]db.SearchEntry, error) {
	sr, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		Index:        index,
		Prefilter:    prefilter,
		Vector:       vec,
		K:            fetchSize(q),
		Offset:       q.Offset(),
		Limit:        q.Limit(),
		ReturnFields: []string{"title", "context", "bio"},
	})
	if err != nil {
		return nil, err
	}
	if sr == nil {
		return nil, nil
	}
	return sr.Entries, nil
}

// fetchSize over-fetches through the requested page so the downstream
// threshold filter still has candidates to drop.
func fetchSize(q *query.Query) int {
	return q.Offset() + q.Limit()
}

func locationFilter(loc string) string {
	if loc == "" {
		return ""
	}
	return db.TagContains("location", loc)
}

func skillFilter(skill string) string {
	if skill == "" {
		return ""
	}
	return db.TagEquals("skills", skill)
}
