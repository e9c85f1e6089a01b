package search

import "github.com/campuslink/discovery/internal/domain/candidate"

// Weights are the blended-score coefficients. They always sum to 1: the
// lexical weight is derived, never configured independently.
type Weights struct {
	Vector  float64
	Lexical float64
}

// NewWeights derives the weight pair from the semantic coefficient.
func NewWeights(vector float64) Weights {
	return Weights{Vector: vector, Lexical: 1 - vector}
}

// DefaultWeights returns the 0.7/0.3 semantic/lexical split.
func DefaultWeights() Weights {
	return NewWeights(0.7)
}

// blendBatch computes the final blended score for one tier batch. Lexical
// relevance is only meaningful relative to the batch it came from, so this
// runs in two passes: find the batch maximum raw lexical score, then map each
// row to a [0,1] lexical share and blend. A batch with no lexical signal
// (max 0) blends a lexical term of 0 for every row.
func blendBatch(cands []candidate.Candidate, w Weights) []candidate.Candidate {
	var maxRaw float64
	for i := range cands {
		if cands[i].LexicalRaw() > maxRaw {
			maxRaw = cands[i].LexicalRaw()
		}
	}

	out := make([]candidate.Candidate, len(cands))
	for i, c := range cands {
		var lexical float64
		if maxRaw > 0 {
			lexical = c.LexicalRaw() / maxRaw
		}
		out[i] = c.Rescored(w.Vector*c.Semantic() + w.Lexical*lexical)
	}
	return out
}
