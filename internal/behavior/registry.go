package behavior

import (
	"context"
	"log/slog"
	"sort"
)

// lastResortReply covers the structurally unreachable case of every
// registered behavior declining or failing. Dispatch must return something.
const lastResortReply = "Sorry, something went wrong on my end. Try asking again?"

// Registry holds behaviors sorted by priority and dispatches messages to
// the first one that applies.
type Registry struct {
	behaviors []Behavior
	logger    *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger.With("component", "behavior")}
}

// Register adds a behavior and re-sorts by priority, descending. Equal
// priorities keep registration order, so the first-registered wins ties.
func (r *Registry) Register(b Behavior) {
	if b == nil {
		return
	}
	r.behaviors = append(r.behaviors, b)
	sort.SliceStable(r.behaviors, func(i, j int) bool {
		return r.behaviors[i].Priority() > r.behaviors[j].Priority()
	})
	r.logger.Debug("registered behavior", "name", b.Name(), "priority", b.Priority())
}

// Behaviors returns the registered behaviors in dispatch order.
func (r *Registry) Behaviors() []Behavior {
	out := make([]Behavior, len(r.behaviors))
	copy(out, r.behaviors)
	return out
}

// Dispatch routes the message to the highest-priority behavior that accepts
// it and returns that behavior's reply. A behavior that panics in CanHandle
// or Handle is logged and skipped, so one defective behavior cannot take
// down the pipeline; Dispatch itself always returns a non-empty reply and
// never panics.
func (r *Registry) Dispatch(ctx context.Context, msg *Message) string {
	for _, b := range r.behaviors {
		applies, ok := r.safeCanHandle(b, msg)
		if !ok || !applies {
			continue
		}
		reply, ok := r.safeHandle(ctx, b, msg)
		if !ok {
			continue
		}
		r.logger.Debug("dispatched message",
			"behavior", b.Name(),
			"user", msg.UserID,
			"conversation", msg.ConversationID)
		return reply
	}
	r.logger.Error("no behavior handled message", "user", msg.UserID)
	return lastResortReply
}

func (r *Registry) safeCanHandle(b Behavior, msg *Message) (applies, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("behavior panicked in CanHandle", "name", b.Name(), "panic", rec)
			applies, ok = false, false
		}
	}()
	return b.CanHandle(msg), true
}

func (r *Registry) safeHandle(ctx context.Context, b Behavior, msg *Message) (reply string, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("behavior panicked in Handle", "name", b.Name(), "panic", rec)
			reply, ok = "", false
		}
	}()
	return b.Handle(ctx, msg), true
}
