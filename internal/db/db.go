package db

import (
	"context"
	"time"
)

// Store is the record-store facade. The discovery engine only reads: it
// borrows a pooled connection per query and never writes or locks.
type Store interface {
	Pinger
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Searcher runs FT.SEARCH queries over the collection indexes. SearchKNN is
// the vector-distance operator; SearchText is the text-relevance operator
// (BM25 WITHSCORES).
type Searcher interface {
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
	SearchText(ctx context.Context, q *TextQuery) (*SearchResult, error)
}
