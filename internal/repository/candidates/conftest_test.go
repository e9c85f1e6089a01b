package candidates

import (
	"context"
	"testing"

	"github.com/campuslink/discovery/internal/db"
	"github.com/campuslink/discovery/internal/domain/query"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchKNNFn  func(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	searchTextFn func(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)

	knnCalls  []*db.KNNQuery
	textCalls []*db.TextQuery
}

func (m *mockStore) SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
	m.knnCalls = append(m.knnCalls, q)
	if m.searchKNNFn != nil {
		return m.searchKNNFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	m.textCalls = append(m.textCalls, q)
	if m.searchTextFn != nil {
		return m.searchTextFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testVector() []float32 {
	vec := make([]float32, 4)
	for i := range vec {
		vec[i] = 0.5
	}
	return vec
}

func mustQuery(t *testing.T, text, keyword, location, skill string, limit, offset int) *query.Query {
	t.Helper()
	q, err := query.New(text, keyword, location, skill, limit, offset, "")
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return &q
}

func knnResult(entries ...db.SearchEntry) *db.SearchResult {
	return &db.SearchResult{Total: len(entries), Entries: entries}
}
