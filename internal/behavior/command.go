package behavior

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"

	"github.com/mockmate/assistant/internal/content"
	"github.com/mockmate/assistant/internal/memory"
)

// Dispatch priorities. Commands always preempt content-based behaviors,
// knowledge sits in the middle, and the fallback catches the rest.
const (
	PriorityCommand   = 1000
	PriorityKnowledge = 750
	PriorityFallback  = 0
)

// commandKeys is the fixed command vocabulary. A message is a command when
// its normalized form equals a key exactly or starts with "<key> ".
var commandKeys = []string{
	"help",
	"topics",
	"remember",
	"forget",
	"tell me a joke",
	"tell me a fact",
	"what do you know about me",
}

// CommandBehavior recognizes and executes the fixed command vocabulary,
// mutating the sender's memory record where commands call for it.
type CommandBehavior struct {
	content content.Provider
	learned memory.LearnedTermsStore
	rng     *rand.Rand
	logger  *slog.Logger
}

// NewCommandBehavior creates the command behavior. A nil rng means the
// shared goroutine-safe source; tests inject a seeded one to pin picks down.
func NewCommandBehavior(provider content.Provider, learned memory.LearnedTermsStore, rng *rand.Rand, logger *slog.Logger) *CommandBehavior {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandBehavior{
		content: provider,
		learned: learned,
		rng:     rng,
		logger:  logger.With("component", "commands"),
	}
}

func (b *CommandBehavior) Name() string  { return "commands" }
func (b *CommandBehavior) Priority() int { return PriorityCommand }

// CanHandle matches the normalized command form against the vocabulary.
func (b *CommandBehavior) CanHandle(msg *Message) bool {
	return matchCommand(msg.Command) != ""
}

// matchCommand returns the vocabulary key the normalized command invokes,
// or "" when it is not a command.
func matchCommand(normalized string) string {
	for _, key := range commandKeys {
		if normalized == key || strings.HasPrefix(normalized, key+" ") {
			return key
		}
	}
	return ""
}

// commandArg extracts the argument for a prefix command: everything after
// the command phrase in the original message, original casing preserved,
// trimmed. The phrase is located case-insensitively so "Remember I like
// pizza" keeps "I like pizza" intact.
func commandArg(raw, key string) string {
	idx := strings.Index(strings.ToLower(raw), key)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(raw[idx+len(key):])
}

func (b *CommandBehavior) Handle(ctx context.Context, msg *Message) string {
	key := matchCommand(msg.Command)
	switch key {
	case "help":
		return b.content.HelpText()
	case "topics":
		return b.content.TopicsText()
	case "remember":
		return b.remember(msg)
	case "forget":
		return b.forget(ctx, msg)
	case "tell me a joke":
		return b.pick(b.content.Jokes())
	case "tell me a fact":
		return b.pick(b.content.Facts())
	case "what do you know about me":
		return b.profile(msg)
	default:
		// Unreachable while CanHandle gates Handle.
		return b.content.HelpText()
	}
}

func (b *CommandBehavior) remember(msg *Message) string {
	text := commandArg(msg.Raw, "remember")
	if text == "" {
		return "What should I remember? Try \"remember I like pizza\"."
	}
	msg.Memory.AddFact(text)
	return "I'll remember that: " + text
}

func (b *CommandBehavior) forget(ctx context.Context, msg *Message) string {
	text := commandArg(msg.Raw, "forget")
	if text == "" {
		return "What should I forget? Try \"forget pizza\" or \"forget all\"."
	}

	if strings.EqualFold(text, "all") {
		if err := b.learned.Delete(ctx, msg.UserID); err != nil {
			// The record is already being wiped; a failed side-table delete
			// is logged, never surfaced.
			b.logger.Warn("failed to delete learned terms", "user", msg.UserID, "error", err)
		}
		msg.Memory.Clear()
		return "Done. I've forgotten everything I knew about you."
	}

	if fact, ok := msg.Memory.RemoveFact(text); ok {
		return "Okay, I've forgotten: " + fact
	}
	if _, ok := msg.Memory.RemovePreference(text); ok {
		return fmt.Sprintf("Okay, I've forgotten your preference about %s.", text)
	}
	return fmt.Sprintf("I couldn't find anything about %q to forget.", text)
}

func (b *CommandBehavior) profile(msg *Message) string {
	mem := msg.Memory
	if mem.IsEmpty() {
		return "I don't know anything about you yet. Tell me something with \"remember ...\"."
	}

	var sb strings.Builder
	sb.WriteString("Here's what I know about you:\n")
	if mem.Name != "" {
		sb.WriteString("- Your name is " + mem.Name + "\n")
	}
	for _, line := range preferenceLines(mem.Preferences) {
		sb.WriteString("- " + line + "\n")
	}
	for _, fact := range mem.Facts {
		sb.WriteString("- " + fact + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// preferenceLines renders "you <preference> <topic>" lines in sorted topic
// order so the profile reads the same every time.
func preferenceLines(prefs map[string]string) []string {
	topics := make([]string, 0, len(prefs))
	for topic := range prefs {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	lines := make([]string, 0, len(topics))
	for _, topic := range topics {
		lines = append(lines, fmt.Sprintf("you %s %s", prefs[topic], topic))
	}
	return lines
}

func (b *CommandBehavior) pick(list []string) string {
	if len(list) == 0 {
		return b.content.HelpText()
	}
	return list[pickIndex(b.rng, len(list))]
}

// pickIndex draws from the injected source when present, otherwise from the
// package-global one, which is safe for concurrent users.
func pickIndex(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.Intn(n)
	}
	return rand.Intn(n)
}
