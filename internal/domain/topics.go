package domain

import (
	"fmt"
	"strings"
)

// Topic is a named interest category from a fixed vocabulary, used both for
// user preferences and for keyword matching against story titles.
type Topic string

const (
	TopicTechnology Topic = "technology"
	TopicStartups   Topic = "startups"
	TopicScience    Topic = "science"
	TopicDesign     Topic = "design"
	TopicSecurity   Topic = "security"
	TopicData       Topic = "data"
	TopicMobile     Topic = "mobile"
	TopicWeb        Topic = "web"
)

var ValidTopics = []Topic{
	TopicTechnology,
	TopicStartups,
	TopicScience,
	TopicDesign,
	TopicSecurity,
	TopicData,
	TopicMobile,
	TopicWeb,
}

// topicKeywords is built once at init and never mutated afterwards.
var topicKeywords = map[Topic][]string{
	TopicTechnology: {"tech", "programming", "software", "ai", "machine learning", "blockchain", "crypto", "algorithm", "code", "developer"},
	TopicStartups:   {"startup", "business", "entrepreneur", "funding", "vc", "saas", "company", "launch", "growth"},
	TopicScience:    {"science", "research", "biology", "physics", "chemistry", "medical", "study", "discovery", "experiment"},
	TopicDesign:     {"design", "ux", "ui", "interface", "visual", "graphics", "user experience", "prototype"},
	TopicSecurity:   {"security", "privacy", "hacking", "cybersecurity", "encryption", "breach", "vulnerability"},
	TopicData:       {"data", "analytics", "database", "big data", "visualization", "analysis", "statistics"},
	TopicMobile:     {"mobile", "app", "ios", "android", "flutter", "react native", "smartphone"},
	TopicWeb:        {"web", "javascript", "react", "frontend", "backend", "api", "html", "css", "node"},
}

// MatchesPreferences reports whether a story title is relevant to any of the
// given preferred topics. An empty preference set matches everything.
// Matching is case-insensitive substring containment, no tokenization.
func MatchesPreferences(title string, preferences []Topic) bool {
	if len(preferences) == 0 {
		return true
	}

	lowerTitle := strings.ToLower(title)
	for _, topic := range preferences {
		// Topics missing from the table contribute no keywords.
		for _, keyword := range topicKeywords[topic] {
			if strings.Contains(lowerTitle, keyword) {
				return true
			}
		}
	}

	return false
}

// RelevanceScore counts how many preferred-topic keywords appear in the
// title. Each keyword contributes at most one point regardless of how many
// times it occurs. An empty preference set scores zero.
func RelevanceScore(title string, preferences []Topic) int {
	if len(preferences) == 0 {
		return 0
	}

	lowerTitle := strings.ToLower(title)
	score := 0
	for _, topic := range preferences {
		for _, keyword := range topicKeywords[topic] {
			if strings.Contains(lowerTitle, keyword) {
				score++
			}
		}
	}

	return score
}

// ParseTopics validates a list of raw topic names against the vocabulary.
func ParseTopics(raw []string) ([]Topic, error) {
	topics := make([]Topic, 0, len(raw))
	for _, r := range raw {
		topic := Topic(strings.ToLower(strings.TrimSpace(r)))
		if _, ok := topicKeywords[topic]; !ok {
			return nil, fmt.Errorf("unrecognised topic [%s]", r)
		}
		topics = append(topics, topic)
	}
	return topics, nil
}
