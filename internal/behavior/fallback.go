package behavior

import (
	"context"
	"math/rand"

	"github.com/mockmate/assistant/internal/analyzer"
	"github.com/mockmate/assistant/internal/content"
)

// FallbackBehavior is the terminal behavior: it applies to every message,
// so dispatch is guaranteed to produce a reply. It leans on the analyzer to
// at least respond in kind to greetings, farewells, and thanks before
// resorting to an ignorance line.
type FallbackBehavior struct {
	content content.Provider
	rng     *rand.Rand
}

// NewFallbackBehavior creates the fallback behavior. A nil rng means the
// shared goroutine-safe source.
func NewFallbackBehavior(provider content.Provider, rng *rand.Rand) *FallbackBehavior {
	return &FallbackBehavior{content: provider, rng: rng}
}

func (b *FallbackBehavior) Name() string  { return "fallback" }
func (b *FallbackBehavior) Priority() int { return PriorityFallback }

// CanHandle always accepts.
func (b *FallbackBehavior) CanHandle(msg *Message) bool { return true }

func (b *FallbackBehavior) Handle(ctx context.Context, msg *Message) string {
	switch analyzer.DetectIntent(msg.Raw).Primary {
	case "greeting":
		name := ""
		if msg.Memory != nil && msg.Memory.Name != "" {
			name = ", " + msg.Memory.Name
		}
		return "Hello" + name + "! Ask me a question, or try \"help\"."
	case "farewell":
		return "Goodbye! Come back whenever you have more questions."
	case "feedback":
		return "Glad to help! Anything else you want to know?"
	}

	replies := b.content.UnknownReplies()
	if len(replies) == 0 {
		return lastResortReply
	}
	return replies[pickIndex(b.rng, len(replies))]
}
