// Package behavior implements the assistant's message-handling core: a set
// of prioritized behaviors and the registry that dispatches each incoming
// message to exactly one of them.
//
// A behavior is a self-contained strategy: it says whether it applies to a
// message and, if chosen, produces the reply. The registry tries behaviors
// in descending priority order and a terminal fallback keeps the pipeline
// total, so dispatch always returns a reply.
package behavior

import (
	"context"

	"github.com/mockmate/assistant/internal/memory"
)

// Behavior is one message-handling strategy.
type Behavior interface {
	// Name identifies the behavior in logs.
	Name() string
	// Priority orders dispatch; higher runs first.
	Priority() int
	// CanHandle reports whether this behavior applies to the message.
	CanHandle(msg *Message) bool
	// Handle produces the reply. Only called after CanHandle returned true.
	Handle(ctx context.Context, msg *Message) string
}

// Message is the per-message context handed to behaviors.
type Message struct {
	// Raw is the message text exactly as received.
	Raw string
	// Command is the lowercased, whitespace-collapsed form used for
	// command matching.
	Command string
	// UserID identifies the sender.
	UserID string
	// ConversationID identifies the conversation thread.
	ConversationID string
	// Memory is the sender's mutable memory record. Behaviors may mutate
	// it in place; the engine persists it after dispatch.
	Memory *memory.UserMemory
}
