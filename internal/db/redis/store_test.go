package redis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/redis/rueidis/mock"
	"go.uber.org/mock/gomock"

	"github.com/campuslink/discovery/internal/db"
)

// --- client.go tests ---

func TestPing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.Result(mock.RedisString("PONG")))

	s := NewStoreForTest(c)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPing_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	err := s.Ping(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !isDBError(err) {
		t.Errorf("expected db.Error, got %T", err)
	}
}

func TestNewStore_RequiresAddrs(t *testing.T) {
	if _, err := NewStore(Config{}); err == nil {
		t.Fatal("expected error for empty addrs")
	}
}

// --- search.go tests ---

func TestSearchKNN_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	var gotCmd []string
	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			gotCmd = cmd
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(1), // total
			mock.RedisString("discovery:graduated:1"),
			mock.RedisArray(
				mock.RedisString("__vector_score"),
				mock.RedisString("0.1"),
				mock.RedisString("title"),
				mock.RedisString("Engineer"),
			),
		)))

	s := NewStoreForTest(c)
	result, err := s.SearchKNN(context.Background(), &db.KNNQuery{
		Index:        "discovery:graduated:idx",
		Vector:       []float32{0.1, 0.2},
		K:            10,
		Limit:        10,
		ReturnFields: []string{"title"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("expected total 1, got %d", result.Total)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}
	if result.Entries[0].Key != "discovery:graduated:1" {
		t.Errorf("unexpected key %s", result.Entries[0].Key)
	}
	// cosine distance 0.1 maps to similarity 0.9
	if result.Entries[0].Score < 0.89 || result.Entries[0].Score > 0.91 {
		t.Errorf("expected score ~0.9, got %f", result.Entries[0].Score)
	}
	if result.Entries[0].Fields["title"] != "Engineer" {
		t.Errorf("unexpected fields %v", result.Entries[0].Fields)
	}

	joined := strings.Join(gotCmd, " ")
	if !strings.Contains(joined, "*=>[KNN 10 @vector $BLOB]") {
		t.Errorf("expected wildcard KNN query, got %q", joined)
	}
	if !strings.Contains(joined, "DIALECT 2") {
		t.Errorf("expected DIALECT 2, got %q", joined)
	}
}

func TestSearchKNN_PrefilterWrapsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	var gotCmd []string
	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			gotCmd = cmd
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisArray(mock.RedisInt64(0))))

	s := NewStoreForTest(c)
	_, err := s.SearchKNN(context.Background(), &db.KNNQuery{
		Index:     "idx",
		Prefilter: "@visibility:{public}",
		Vector:    []float32{0.5},
		K:         5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotCmd[2] != "(@visibility:{public})=>[KNN 5 @vector $BLOB]" {
		t.Errorf("unexpected query string %q", gotCmd[2])
	}
}

func TestSearchKNN_NegativeDistanceClamped(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(1),
			mock.RedisString("doc:1"),
			mock.RedisArray(
				mock.RedisString("__vector_score"),
				mock.RedisString("1.7"), // distance > 1 would go negative
			),
		)))

	s := NewStoreForTest(c)
	result, err := s.SearchKNN(context.Background(), &db.KNNQuery{
		Index:  "idx",
		Vector: []float32{0.1},
		K:      1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Entries[0].Score != 0 {
		t.Errorf("expected clamped score 0, got %f", result.Entries[0].Score)
	}
}

func TestSearchKNN_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisArray(mock.RedisInt64(0))))

	s := NewStoreForTest(c)
	result, err := s.SearchKNN(context.Background(), &db.KNNQuery{
		Index:  "idx",
		Vector: []float32{0.1},
		K:      10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(result.Entries))
	}
}

func TestSearchKNN_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	_, err := s.SearchKNN(context.Background(), &db.KNNQuery{
		Index:  "idx",
		Vector: []float32{0.1},
		K:      10,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !isDBError(err) {
		t.Errorf("expected db.Error, got %T", err)
	}
}

func TestSearchKNN_Validation(t *testing.T) {
	s := &Store{}

	tests := []struct {
		name string
		q    db.KNNQuery
	}{
		{"missing index", db.KNNQuery{Vector: []float32{0.1}, K: 1}},
		{"missing vector", db.KNNQuery{Index: "idx", K: 1}},
		{"zero k", db.KNNQuery{Index: "idx", Vector: []float32{0.1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.SearchKNN(context.Background(), &tc.q); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSearchText_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	var gotCmd []string
	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			gotCmd = cmd
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(2),
			mock.RedisString("discovery:graduated:1"),
			mock.RedisString("4.2"),
			mock.RedisArray(
				mock.RedisString("title"),
				mock.RedisString("Engineer"),
			),
			mock.RedisString("discovery:graduated:2"),
			mock.RedisString("1.5"),
			mock.RedisArray(),
		)))

	s := NewStoreForTest(c)
	result, err := s.SearchText(context.Background(), &db.TextQuery{
		Index:        "discovery:graduated:idx",
		Field:        "profile",
		Term:         "golang",
		Limit:        10,
		ReturnFields: []string{"title"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("expected total 2, got %d", result.Total)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}
	if result.Entries[0].Score != 4.2 {
		t.Errorf("expected raw score 4.2, got %f", result.Entries[0].Score)
	}
	if result.Entries[1].Key != "discovery:graduated:2" {
		t.Errorf("unexpected key %s", result.Entries[1].Key)
	}

	joined := strings.Join(gotCmd, " ")
	if !strings.Contains(joined, "WITHSCORES") {
		t.Errorf("expected WITHSCORES, got %q", joined)
	}
	if !strings.Contains(joined, "@profile:(golang)") {
		t.Errorf("expected text match clause, got %q", joined)
	}
}

func TestSearchText_PrefilterCombined(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	var gotCmd []string
	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			gotCmd = cmd
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisArray(mock.RedisInt64(0))))

	s := NewStoreForTest(c)
	_, err := s.SearchText(context.Background(), &db.TextQuery{
		Index:     "idx",
		Field:     "profile",
		Term:      "golang",
		Prefilter: "@visibility:{public}",
		Limit:     5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotCmd[2] != "@visibility:{public} @profile:(golang)" {
		t.Errorf("unexpected query string %q", gotCmd[2])
	}
}

func TestSearchText_Validation(t *testing.T) {
	s := &Store{}

	tests := []struct {
		name string
		q    db.TextQuery
	}{
		{"missing index", db.TextQuery{Field: "profile", Term: "x", Limit: 5}},
		{"missing term", db.TextQuery{Index: "idx", Field: "profile", Limit: 5}},
		{"zero limit", db.TextQuery{Index: "idx", Field: "profile", Term: "x"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.SearchText(context.Background(), &tc.q); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func isDBError(err error) bool {
	var dbErr *db.Error
	return errors.As(err, &dbErr)
}
