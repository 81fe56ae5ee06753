package analyzer

import (
	"sort"
	"strings"
)

// topicKeywords merges the technical and product vocabularies. Order of the
// names slice fixes tie-breaking for equal-confidence topics.
var topicNames = []string{
	"javascript",
	"python",
	"golang",
	"databases",
	"testing",
	"apis",
	"security",
	"courses",
	"books",
	"orders",
	"payments",
	"account",
}

var topicKeywords = map[string][]string{
	"javascript": {"javascript", "js", "node", "nodejs", "npm", "react", "frontend"},
	"python":     {"python", "pip", "django", "flask", "pandas"},
	"golang":     {"golang", "goroutine", "gopher", "gofmt"},
	"databases":  {"database", "sql", "query", "table", "index", "postgres", "sqlite"},
	"testing":    {"test", "testing", "assert", "mock", "coverage", "bug", "debug"},
	"apis":       {"api", "rest", "endpoint", "request", "response", "http", "json"},
	"security":   {"security", "auth", "token", "password", "login", "encryption"},
	"courses":    {"course", "lesson", "enroll", "enrollment", "learning", "tutorial"},
	"books":      {"book", "author", "shop", "read", "reading", "title"},
	"orders":     {"order", "cart", "checkout", "delivery", "shipping"},
	"payments":   {"payment", "pay", "refund", "price", "funds", "balance"},
	"account":    {"account", "profile", "settings", "email", "username"},
}

// interrogative cue words nudge a topic's score up by one when present,
// since a question about a topic is a stronger signal than a mention.
var topicCues = []string{"what", "how", "why", "explain", "tell"}

// DetectTopics counts keyword hits per topic in the message. Mentioning the
// topic name itself is worth two extra points, and an interrogative cue word
// one more. Topics with at least one keyword hit are returned sorted by
// confidence, descending; ties keep the fixed vocabulary order.
func DetectTopics(message string) []Topic {
	lower := strings.ToLower(message)

	cueBonus := 0
	for _, cue := range topicCues {
		if strings.Contains(lower, cue) {
			cueBonus = 1
			break
		}
	}

	topics := make([]Topic, 0, 4)
	for _, name := range topicNames {
		keywords := topicKeywords[name]
		var matches []string
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matches = append(matches, kw)
			}
		}
		if len(matches) == 0 {
			continue
		}

		score := len(matches)
		if strings.Contains(lower, name) {
			score += 2
		}
		score += cueBonus

		confidence := float64(score) / float64(len(keywords)+2)
		if confidence > 1 {
			confidence = 1
		}
		topics = append(topics, Topic{
			Name:       name,
			Confidence: confidence,
			Matches:    matches,
		})
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Confidence > topics[j].Confidence
	})
	return topics
}
