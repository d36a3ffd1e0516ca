package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesPreferences(t *testing.T) {
	cases := []struct {
		name        string
		title       string
		preferences []Topic
		want        bool
	}{
		{
			name:        "empty_preferences_match_everything",
			title:       "Local bakery opens",
			preferences: nil,
			want:        true,
		},
		{
			name:        "keyword_match",
			title:       "New AI breakthrough",
			preferences: []Topic{TopicTechnology},
			want:        true,
		},
		{
			name:        "no_keyword_match",
			title:       "Local bakery opens",
			preferences: []Topic{TopicTechnology},
			want:        false,
		},
		{
			name:        "case_insensitive",
			title:       "STARTUP Raises Series A FUNDING",
			preferences: []Topic{TopicStartups},
			want:        true,
		},
		{
			name:        "any_preferred_topic_suffices",
			title:       "CSS tricks for 2024",
			preferences: []Topic{TopicScience, TopicWeb},
			want:        true,
		},
		{
			name:        "unknown_topic_contributes_nothing",
			title:       "New AI breakthrough",
			preferences: []Topic{Topic("gardening")},
			want:        false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MatchesPreferences(tc.title, tc.preferences))
		})
	}
}

func TestRelevanceScore(t *testing.T) {
	cases := []struct {
		name        string
		title       string
		preferences []Topic
		want        int
	}{
		{
			name:        "empty_preferences_score_zero",
			title:       "New AI breakthrough in machine learning",
			preferences: nil,
			want:        0,
		},
		{
			name:        "one_point_per_keyword",
			title:       "AI code developer tools",
			preferences: []Topic{TopicTechnology},
			want:        3, // ai, code, developer
		},
		{
			name:        "keyword_counted_once_despite_repeats",
			title:       "data data data",
			preferences: []Topic{TopicData},
			want:        1,
		},
		{
			name:        "points_sum_across_topics",
			title:       "Startup ships mobile app",
			preferences: []Topic{TopicStartups, TopicMobile},
			want:        3, // startup; mobile, app
		},
		{
			name:        "unknown_topic_scores_zero",
			title:       "New AI breakthrough",
			preferences: []Topic{Topic("gardening")},
			want:        0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelevanceScore(tc.title, tc.preferences))
		})
	}
}

// A boolean match and a positive score must always agree for non-empty
// preference sets.
func TestMatchesPreferences_AgreesWithScore(t *testing.T) {
	titles := []string{
		"New AI breakthrough",
		"Local bakery opens",
		"Show HN: a CSS framework",
		"Ask HN: best database for analytics?",
		"Physics experiment confirms discovery",
		"",
	}

	for _, title := range titles {
		for _, topic := range ValidTopics {
			preferences := []Topic{topic}
			assert.Equal(t,
				RelevanceScore(title, preferences) > 0,
				MatchesPreferences(title, preferences),
				"title %q topic %q", title, topic,
			)
		}
	}
}

func TestParseTopics(t *testing.T) {
	topics, err := ParseTopics([]string{"Technology", " web "})
	assert.NoError(t, err)
	assert.Equal(t, []Topic{TopicTechnology, TopicWeb}, topics)

	_, err = ParseTopics([]string{"technology", "gardening"})
	assert.Error(t, err)
}
