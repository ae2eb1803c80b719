// Package hybrid fuses lexical and semantic rankings with reciprocal rank
// fusion so neither scoring scale dominates the merged order.
package hybrid

import (
	"sort"

	"github.com/recruitr-hq/recruitr/internal/domain/search/candidate"
)

// DefaultRRFK is the standard reciprocal rank fusion constant. Larger values
// flatten the gap between adjacent ranks.
const DefaultRRFK = 60

// fuse merges sub-rankings by summing 1/(k+position+1) per appearance, with
// position counted from zero within each ranking. Candidates tie-break by
// first appearance across the rankings in the order given, and final ranks are
// reassigned densely after truncation to topK.
func fuse(rankings [][]candidate.Candidate, k, topK int) []candidate.Candidate {
	scores := make(map[string]float64)
	order := make([]string, 0)

	for _, ranking := range rankings {
		for pos, c := range ranking {
			id := c.ParticipantID()
			if _, seen := scores[id]; !seen {
				order = append(order, id)
			}
			scores[id] += 1.0 / float64(k+pos+1)
		}
	}

	fused := make([]candidate.Candidate, 0, len(order))
	for _, id := range order {
		fused = append(fused, candidate.New(id, scores[id]))
	}

	sort.SliceStable(fused, func(i, j int) bool {
		return fused[i].Score() > fused[j].Score()
	})

	if len(fused) > topK {
		fused = fused[:topK]
	}
	candidate.RankDense(fused)

	return fused
}
