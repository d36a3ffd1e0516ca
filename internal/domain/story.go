package domain

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryStory Category = "story"
	CategoryShow  Category = "show"
	CategoryAsk   Category = "ask"
	CategoryJob   Category = "job"
)

// CategoryAll is a filter value only, never a story category.
const CategoryAll Category = "all"

var ValidCategories = []Category{
	CategoryStory,
	CategoryShow,
	CategoryAsk,
	CategoryJob,
}

type Story struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url,omitempty"`
	Points    int       `json:"points"`
	Author    string    `json:"author"`
	TimeAgo   string    `json:"time_ago"`
	CreatedAt time.Time `json:"created_at"`
	Comments  int       `json:"comments"`
	Category  Category  `json:"category"`
	RankScore *float64  `json:"rank_score,omitempty"`
}

// CategoryForStory derives a story's category from its upstream type and
// title, using the title-prefix convention of the item source.
func CategoryForStory(itemType, title string) Category {
	if strings.EqualFold(strings.TrimSpace(itemType), "job") {
		return CategoryJob
	}

	t := strings.ToLower(title)
	switch {
	case strings.HasPrefix(t, "show hn:"):
		return CategoryShow
	case strings.HasPrefix(t, "ask hn:"):
		return CategoryAsk
	case strings.Contains(t, "hiring"), strings.Contains(t, "job"):
		return CategoryJob
	default:
		return CategoryStory
	}
}
