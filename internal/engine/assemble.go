package engine

import (
	"log/slog"
	"math/rand"

	"github.com/mockmate/assistant/internal/behavior"
	"github.com/mockmate/assistant/internal/content"
	"github.com/mockmate/assistant/internal/memory"
)

// BuildRegistry wires the standard behavior set: commands preempting
// knowledge lookups, with the fallback closing the chain. rng may be nil
// outside tests.
func BuildRegistry(provider content.Provider, learned memory.LearnedTermsStore, rng *rand.Rand, logger *slog.Logger) *behavior.Registry {
	registry := behavior.NewRegistry(logger)
	registry.Register(behavior.NewCommandBehavior(provider, learned, rng, logger))
	registry.Register(behavior.NewKnowledgeBehavior(provider, rng, logger))
	registry.Register(behavior.NewFallbackBehavior(provider, rng))
	return registry
}
