package domain

import (
	"sort"
)

// ComposeFeed turns a raw story list into the visible slice for a page.
//
// Stories are filtered by category (CategoryAll passes everything), then by
// preference relevance when preferences are non-empty, then stably sorted:
// relevance descending with points breaking ties when preferences are set,
// points descending otherwise. Pagination is cumulative: page n returns the
// first pageSize*n stories, so later pages re-include earlier ones.
//
// The input slice is never mutated.
func ComposeFeed(
	stories []Story,
	category Category,
	preferences []Topic,
	pageSize, page int,
) (visible []Story, hasMore bool) {
	filtered := make([]Story, 0, len(stories))
	for _, story := range stories {
		if category != CategoryAll && story.Category != category {
			continue
		}
		if !MatchesPreferences(story.Title, preferences) {
			continue
		}
		filtered = append(filtered, story)
	}

	if len(preferences) > 0 {
		scores := make([]int, len(filtered))
		for i, story := range filtered {
			scores[i] = RelevanceScore(story.Title, preferences)
		}

		order := make([]int, len(filtered))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			if scores[order[a]] != scores[order[b]] {
				return scores[order[a]] > scores[order[b]]
			}
			return filtered[order[a]].Points > filtered[order[b]].Points
		})

		sorted := make([]Story, len(filtered))
		for i, idx := range order {
			sorted[i] = filtered[idx]
		}
		filtered = sorted
	} else {
		sort.SliceStable(filtered, func(a, b int) bool {
			return filtered[a].Points > filtered[b].Points
		})
	}

	end := pageSize * page
	if end < 0 || end > len(filtered) {
		end = len(filtered)
	}

	return filtered[:end], end < len(filtered)
}
