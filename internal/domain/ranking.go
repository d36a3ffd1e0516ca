package domain

import (
	"sort"
	"strconv"
)

// RankingResult is the ordering returned by the remote ranking service:
// parallel identifier and score lists. It need not cover the full candidate
// set; candidates absent from it are unranked.
type RankingResult struct {
	IDs    []string
	Scores []float64
}

// DefaultUnrankedScore is attached to candidates the ranking service did not
// return, sinking them below every ranked story without dropping them.
const DefaultUnrankedScore = 0.1

// ApplyRanking reorders candidates according to a ranking result.
//
// Ranked candidates appear first, in response order, annotated with their
// returned score. Every remaining candidate is appended afterwards in its
// original order with DefaultUnrankedScore. Identifiers in the response that
// match no candidate are ignored, so the output always holds exactly the
// input set of stories.
func ApplyRanking(candidates []Story, result RankingResult) []Story {
	byID := make(map[string]Story, len(candidates))
	for _, story := range candidates {
		byID[strconv.Itoa(story.ID)] = story
	}

	ranked := make([]Story, 0, len(candidates))
	seen := make(map[int]bool, len(candidates))
	for i, id := range result.IDs {
		if i >= len(result.Scores) {
			break
		}
		story, ok := byID[id]
		if !ok || seen[story.ID] {
			continue
		}

		score := result.Scores[i]
		story.RankScore = &score
		ranked = append(ranked, story)
		seen[story.ID] = true
	}

	for _, story := range candidates {
		if seen[story.ID] {
			continue
		}
		score := DefaultUnrankedScore
		story.RankScore = &score
		ranked = append(ranked, story)
	}

	return ranked
}

// SortByPoints is the fallback ordering used whenever personalized ranking is
// unavailable: raw popularity descending, stable, no rank scores attached.
// It returns a new slice and leaves candidates untouched.
func SortByPoints(candidates []Story) []Story {
	sorted := make([]Story, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Points > sorted[b].Points
	})
	return sorted
}
