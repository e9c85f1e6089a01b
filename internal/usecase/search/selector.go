package search

import (
	"sort"

	"github.com/campuslink/discovery/internal/domain/candidate"
)

// cascadeTopK caps how many candidates a tier may serve. It is fixed: the
// caller's page size only governs the underlying fetch, not the shortlist.
const cascadeTopK = 3

// selectTop drops candidates below minScore, sorts the rest by blended score
// descending (stable, so equal scores keep store order) and truncates to topK.
func selectTop(cands []candidate.Candidate, minScore float64, topK int) []candidate.Candidate {
	kept := make([]candidate.Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Score() >= minScore {
			kept = append(kept, c)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score() > kept[j].Score()
	})

	if len(kept) > topK {
		kept = kept[:topK]
	}
	return kept
}
