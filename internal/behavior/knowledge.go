package behavior

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"

	"github.com/mockmate/assistant/internal/content"
	"github.com/mockmate/assistant/internal/textutil"
)

// Fuzzy-match thresholds over normalized edit distance. Candidates worse
// than maxCandidateDistance are discarded outright. A best candidate within
// acceptDistance is answered silently; one between acceptDistance and
// ambiguousDistance, with company, triggers a disambiguation prompt; with
// nothing close enough the behavior admits ignorance.
const (
	maxCandidateDistance = 0.4
	acceptDistance       = 0.3
	ambiguousDistance    = 0.15
)

// maxSuggestions bounds the disambiguation list.
const maxSuggestions = 5

// candidate is a knowledge key with its distance from the query.
type candidate struct {
	key      string
	distance float64
}

// KnowledgeBehavior answers questions from the static knowledge base,
// falling back to fuzzy matching when the query is close to a known one.
type KnowledgeBehavior struct {
	content content.Provider
	rng     *rand.Rand
	logger  *slog.Logger
}

// NewKnowledgeBehavior creates the knowledge behavior. A nil rng means the
// shared goroutine-safe source.
func NewKnowledgeBehavior(provider content.Provider, rng *rand.Rand, logger *slog.Logger) *KnowledgeBehavior {
	if logger == nil {
		logger = slog.Default()
	}
	return &KnowledgeBehavior{
		content: provider,
		rng:     rng,
		logger:  logger.With("component", "knowledge"),
	}
}

func (b *KnowledgeBehavior) Name() string  { return "knowledge" }
func (b *KnowledgeBehavior) Priority() int { return PriorityKnowledge }

// CanHandle accepts exact knowledge keys, and questions that have at least
// one fuzzy candidate.
func (b *KnowledgeBehavior) CanHandle(msg *Message) bool {
	query := textutil.NormalizeKnowledgeQuery(msg.Raw)
	if query == "" {
		return false
	}
	if _, ok := b.content.Knowledge(query); ok {
		return true
	}
	return textutil.IsQuestion(msg.Raw) && len(b.candidates(query)) > 0
}

func (b *KnowledgeBehavior) Handle(ctx context.Context, msg *Message) string {
	query := textutil.NormalizeKnowledgeQuery(msg.Raw)

	if answer, ok := b.content.Knowledge(query); ok {
		return answer
	}

	candidates := b.candidates(query)
	if len(candidates) >= 2 && len(candidates) <= maxSuggestions && candidates[0].distance > ambiguousDistance {
		return b.disambiguate(candidates)
	}
	if len(candidates) >= 1 && candidates[0].distance <= acceptDistance {
		answer, ok := b.content.Knowledge(candidates[0].key)
		if ok {
			b.logger.Debug("fuzzy knowledge hit",
				"query", query,
				"key", candidates[0].key,
				"distance", candidates[0].distance)
			return answer
		}
	}
	return b.dontKnow()
}

// candidates returns knowledge keys within the distance cutoff, sorted
// ascending by distance. Keys are iterated in sorted order, so equal
// distances stay alphabetical and stable. Wellbeing small talk yields no
// candidates at all: those messages belong to another behavior, and a
// near-miss against the knowledge base would derail them.
func (b *KnowledgeBehavior) candidates(query string) []candidate {
	for _, phrase := range b.content.WellbeingPhrases() {
		if strings.Contains(query, phrase) {
			return nil
		}
	}

	var out []candidate
	for _, key := range b.content.KnowledgeKeys() {
		d := textutil.NormalizedDistance(query, key)
		if d <= maxCandidateDistance {
			out = append(out, candidate{key: key, distance: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].distance < out[j].distance
	})
	return out
}

// disambiguate renders a numbered list of plausible topics and asks the
// user to pick. Topics are the keys with the leading "what is " phrase
// stripped.
func (b *KnowledgeBehavior) disambiguate(candidates []candidate) string {
	var sb strings.Builder
	sb.WriteString("I'm not sure which one you mean. Did you want to know about:\n")
	for i, c := range candidates {
		if i == maxSuggestions {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, topicOf(c.key)))
	}
	sb.WriteString("Ask again with the full topic name.")
	return sb.String()
}

// topicOf derives a display topic from a knowledge key.
func topicOf(key string) string {
	topic := strings.TrimPrefix(key, "what is ")
	return strings.TrimSuffix(topic, "?")
}

func (b *KnowledgeBehavior) dontKnow() string {
	replies := b.content.UnknownReplies()
	if len(replies) == 0 {
		return lastResortReply
	}
	return replies[pickIndex(b.rng, len(replies))]
}
