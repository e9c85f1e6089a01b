package search

import (
	"context"

	"github.com/campuslink/discovery/internal/domain/candidate"
	"github.com/campuslink/discovery/internal/domain/query"
)

// mockRepo implements Repository with per-tier function hooks and call counters.
type mockRepo struct {
	graduatedFn func(ctx context.Context, vec []float32, q *query.Query) ([]candidate.Candidate, error)
	enrolledFn  func(ctx context.Context, vec []float32, q *query.Query) ([]candidate.Candidate, error)
	positionsFn func(ctx context.Context, vec []float32, q *query.Query) ([]candidate.Candidate, error)

	graduatedCalls int
	enrolledCalls  int
	positionsCalls int
}

func (m *mockRepo) Graduated(ctx context.Context, vec []float32, q *query.Query) ([]candidate.Candidate, error) {
	m.graduatedCalls++
	if m.graduatedFn != nil {
		return m.graduatedFn(ctx, vec, q)
	}
	return nil, nil
}

func (m *mockRepo) Enrolled(ctx context.Context, vec []float32, q *query.Query) ([]candidate.Candidate, error) {
	m.enrolledCalls++
	if m.enrolledFn != nil {
		return m.enrolledFn(ctx, vec, q)
	}
	return nil, nil
}

func (m *mockRepo) Positions(ctx context.Context, vec []float32, q *query.Query) ([]candidate.Candidate, error) {
	m.positionsCalls++
	if m.positionsFn != nil {
		return m.positionsFn(ctx, vec, q)
	}
	return nil, nil
}

// mockEmbedder implements domain.Embedder.
type mockEmbedder struct {
	embedFn func(ctx context.Context, text string) ([]float32, error)
	calls   int
	lastIn  string
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	m.calls++
	m.lastIn = text
	if m.embedFn != nil {
		return m.embedFn(ctx, text)
	}
	return []float32{3, 4}, nil
}

// mockComposer implements Composer.
type mockComposer struct {
	composeFn func(top []candidate.Candidate) string
	calls     int
	lastTop   []candidate.Candidate
}

func (m *mockComposer) Compose(top []candidate.Candidate) string {
	m.calls++
	m.lastTop = top
	if m.composeFn != nil {
		return m.composeFn(top)
	}
	return "summary"
}

func newTestService(repo *mockRepo, embed *mockEmbedder, composer *mockComposer, cfg Config) *Service {
	if repo == nil {
		repo = &mockRepo{}
	}
	if embed == nil {
		embed = &mockEmbedder{}
	}
	if composer == nil {
		composer = &mockComposer{}
	}
	return New(repo, embed, composer, cfg)
}

func defaultTestConfig() Config {
	return Config{Weights: DefaultWeights(), MinScore: 0.3}
}

func mustQuery(text string) *query.Query {
	q, err := query.New(text, "", "", "", 0, 0, "tester")
	if err != nil {
		panic(err)
	}
	return &q
}

func graduatedCandidate(id string, semantic, lexicalRaw float64) candidate.Candidate {
	return candidate.New(candidate.Graduated, id, "Engineer", "Acme", "bio", semantic, lexicalRaw, 0)
}

func enrolledCandidate(id string, score float64) candidate.Candidate {
	return candidate.New(candidate.Enrolled, id, "Student", "", "studies distributed systems", score, 0, score)
}

func positionCandidate(id string, score float64) candidate.Candidate {
	return candidate.New(candidate.Position, id, "Backend Engineer", "Initech", "", score, 0, score)
}
