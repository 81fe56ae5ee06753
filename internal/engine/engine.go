// Package engine drives a conversation turn end to end: it loads (or
// creates) the sender's memory, builds the per-message context, dispatches
// to the behavior registry, and persists whatever the chosen behavior
// changed.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mockmate/assistant/internal/analyzer"
	"github.com/mockmate/assistant/internal/behavior"
	"github.com/mockmate/assistant/internal/memory"
	"github.com/mockmate/assistant/internal/textutil"
)

// Response is the outcome of one conversation turn.
type Response struct {
	// Reply is the assistant's answer; never empty.
	Reply string
	// ConversationID echoes the request's conversation, or the fresh ID
	// assigned when the request carried none.
	ConversationID string
	// Analysis is the heuristic breakdown of the incoming message, present
	// when the engine was built with WithAnalysis.
	Analysis *analyzer.Result
}

// Engine serializes and executes conversation turns.
type Engine struct {
	registry *behavior.Registry
	store    memory.Store
	logger   *slog.Logger
	analyze  bool

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithAnalysis makes every Response carry the analyzer breakdown of the
// incoming message, for telemetry or debugging consumers.
func WithAnalysis() Option {
	return func(e *Engine) { e.analyze = true }
}

// New creates an engine over a behavior registry and a memory store.
func New(registry *behavior.Registry, store memory.Store, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		registry: registry,
		store:    store,
		logger:   logger.With("component", "engine"),
		locks:    make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Respond handles one message from userID and returns the reply. Behaviors
// assume a single in-flight message per user, so turns for the same user
// are serialized on a per-user lock; different users proceed concurrently.
// Persistence failures are logged, never surfaced: the user still gets an
// answer.
func (e *Engine) Respond(ctx context.Context, userID, conversationID, raw string) Response {
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	mem := e.loadMemory(ctx, userID)
	msg := &behavior.Message{
		Raw:            raw,
		Command:        textutil.NormalizeCommand(raw),
		UserID:         userID,
		ConversationID: conversationID,
		Memory:         mem,
	}

	reply := e.registry.Dispatch(ctx, msg)

	if err := e.store.Put(ctx, mem); err != nil {
		e.logger.Error("failed to persist memory", "user", userID, "error", err)
	}

	resp := Response{Reply: reply, ConversationID: conversationID}
	if e.analyze {
		result := analyzer.Analyze(raw)
		resp.Analysis = &result
	}
	return resp
}

// loadMemory fetches the user's record, creating a fresh one on first
// contact or when the store misbehaves. The turn must not fail over a
// lookup.
func (e *Engine) loadMemory(ctx context.Context, userID string) *memory.UserMemory {
	mem, err := e.store.Get(ctx, userID)
	if err == nil {
		return mem
	}
	if !errors.Is(err, memory.ErrNotFound) {
		e.logger.Error("failed to load memory", "user", userID, "error", err)
	}
	return memory.NewUserMemory(userID)
}

func (e *Engine) userLock(userID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[userID] = lock
	}
	return lock
}
