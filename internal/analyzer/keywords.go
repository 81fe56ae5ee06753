package analyzer

import (
	"sort"

	"github.com/mockmate/assistant/internal/textutil"
)

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "his": true,
	"has": true, "have": true, "had": true, "what": true, "when": true,
	"where": true, "who": true, "which": true, "why": true, "how": true,
	"this": true, "that": true, "these": true, "those": true, "with": true,
	"from": true, "they": true, "them": true, "then": true, "than": true,
	"its": true, "it's": true, "will": true, "would": true, "could": true,
	"should": true, "about": true, "into": true, "your": true, "some": true,
	"there": true, "their": true, "been": true, "being": true, "does": true,
	"did": true, "just": true, "like": true, "very": true, "also": true,
}

const maxKeywords = 10

// ExtractKeywords returns up to ten significant tokens by frequency.
// Stop words and tokens of two characters or fewer are dropped. Importance
// is the token's share of all tokens in the message. Equal frequencies keep
// first-appearance order.
func ExtractKeywords(message string) []Keyword {
	tokens := textutil.Tokenize(message)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) <= 2 || stopWords[tok] {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	keywords := make([]Keyword, 0, len(order))
	for _, word := range order {
		keywords = append(keywords, Keyword{
			Word:       word,
			Frequency:  counts[word],
			Importance: float64(counts[word]) / float64(len(tokens)),
		})
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Frequency > keywords[j].Frequency
	})
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}
