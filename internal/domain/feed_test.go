package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeFeed_CategoryFilter(t *testing.T) {
	stories := []Story{
		{ID: 1, Points: 5, Title: "Show HN: X", Category: CategoryShow},
		{ID: 2, Points: 10, Title: "Ask HN: Y", Category: CategoryAsk},
	}

	visible, hasMore := ComposeFeed(stories, CategoryShow, nil, 10, 1)

	require.Len(t, visible, 1)
	assert.Equal(t, 1, visible[0].ID)
	assert.False(t, hasMore)
}

func TestComposeFeed_PreferenceFilterAndOrdering(t *testing.T) {
	stories := []Story{
		{ID: 1, Points: 1, Title: "New AI breakthrough", Category: CategoryStory},
		{ID: 2, Points: 1, Title: "Local bakery opens", Category: CategoryStory},
		{ID: 3, Points: 50, Title: "Software developer writes code", Category: CategoryStory},
	}

	visible, hasMore := ComposeFeed(stories, CategoryAll, []Topic{TopicTechnology}, 10, 1)

	require.Len(t, visible, 2)
	// Three keyword hits beat one, regardless of points.
	assert.Equal(t, 3, visible[0].ID)
	assert.Equal(t, 1, visible[1].ID)
	assert.False(t, hasMore)
}

func TestComposeFeed_RelevanceTiesBrokenByPoints(t *testing.T) {
	stories := []Story{
		{ID: 1, Points: 3, Title: "AI release", Category: CategoryStory},
		{ID: 2, Points: 9, Title: "AI update", Category: CategoryStory},
	}

	visible, _ := ComposeFeed(stories, CategoryAll, []Topic{TopicTechnology}, 10, 1)

	require.Len(t, visible, 2)
	assert.Equal(t, 2, visible[0].ID)
	assert.Equal(t, 1, visible[1].ID)
}

func TestComposeFeed_NoPreferencesSortsByPoints(t *testing.T) {
	stories := []Story{
		{ID: 1, Points: 5, Category: CategoryStory},
		{ID: 2, Points: 10, Category: CategoryStory},
		{ID: 3, Points: 7, Category: CategoryStory},
	}

	visible, _ := ComposeFeed(stories, CategoryAll, nil, 10, 1)

	require.Len(t, visible, 3)
	assert.Equal(t, []int{visible[0].ID, visible[1].ID, visible[2].ID}, []int{2, 3, 1})
}

func TestComposeFeed_StableForEqualKeys(t *testing.T) {
	stories := []Story{
		{ID: 1, Points: 5, Category: CategoryStory},
		{ID: 2, Points: 5, Category: CategoryStory},
		{ID: 3, Points: 5, Category: CategoryStory},
	}

	visible, _ := ComposeFeed(stories, CategoryAll, nil, 10, 1)

	require.Len(t, visible, 3)
	assert.Equal(t, 1, visible[0].ID)
	assert.Equal(t, 2, visible[1].ID)
	assert.Equal(t, 3, visible[2].ID)
}

func TestComposeFeed_CumulativePagination(t *testing.T) {
	var stories []Story
	for i := 1; i <= 7; i++ {
		stories = append(stories, Story{ID: i, Points: 100 - i, Category: CategoryStory})
	}

	pageOne, hasMore := ComposeFeed(stories, CategoryAll, nil, 3, 1)
	require.Len(t, pageOne, 3)
	assert.True(t, hasMore)

	pageTwo, hasMore := ComposeFeed(stories, CategoryAll, nil, 3, 2)
	require.Len(t, pageTwo, 6)
	assert.True(t, hasMore)

	// Each page is a prefix of the next.
	assert.Equal(t, pageOne, pageTwo[:3])

	pageThree, hasMore := ComposeFeed(stories, CategoryAll, nil, 3, 3)
	assert.Len(t, pageThree, 7)
	assert.False(t, hasMore)
	assert.Equal(t, pageTwo, pageThree[:6])
}

func TestComposeFeed_Idempotent(t *testing.T) {
	stories := []Story{
		{ID: 1, Points: 1, Title: "New AI breakthrough", Category: CategoryStory},
		{ID: 2, Points: 8, Title: "Ask HN: databases?", Category: CategoryAsk},
		{ID: 3, Points: 3, Title: "Web design trends", Category: CategoryStory},
	}

	first, firstMore := ComposeFeed(stories, CategoryAll, []Topic{TopicWeb}, 2, 1)
	second, secondMore := ComposeFeed(stories, CategoryAll, []Topic{TopicWeb}, 2, 1)

	assert.Equal(t, first, second)
	assert.Equal(t, firstMore, secondMore)
}

func TestComposeFeed_DoesNotMutateInput(t *testing.T) {
	stories := []Story{
		{ID: 1, Points: 1, Category: CategoryStory},
		{ID: 2, Points: 9, Category: CategoryStory},
	}

	_, _ = ComposeFeed(stories, CategoryAll, nil, 10, 1)

	assert.Equal(t, 1, stories[0].ID)
	assert.Equal(t, 2, stories[1].ID)
}

func TestComposeFeed_EmptyInput(t *testing.T) {
	visible, hasMore := ComposeFeed(nil, CategoryAll, nil, 10, 1)

	assert.Empty(t, visible)
	assert.False(t, hasMore)
}
