package engine

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/mockmate/assistant/internal/content"
	"github.com/mockmate/assistant/internal/memory"
)

func newTestEngine(t *testing.T, opts ...Option) (*Engine, memory.Store) {
	t.Helper()
	store := memory.NewMemoryStore()
	learned := memory.NewMemoryLearnedTerms()
	registry := BuildRegistry(content.NewLibrary(), learned, rand.New(rand.NewSource(1)), nil)
	return New(registry, store, nil, opts...), store
}

func TestEngine_Respond(t *testing.T) {
	ctx := context.Background()

	t.Run("always replies", func(t *testing.T) {
		e, _ := newTestEngine(t)
		for _, raw := range []string{"", "what is javascript?", "help", "zzz", "!!!"} {
			if resp := e.Respond(ctx, "u1", "", raw); resp.Reply == "" {
				t.Errorf("empty reply for %q", raw)
			}
		}
	})

	t.Run("assigns conversation id when absent", func(t *testing.T) {
		e, _ := newTestEngine(t)
		resp := e.Respond(ctx, "u1", "", "hello")
		if resp.ConversationID == "" {
			t.Error("no conversation id assigned")
		}
		echoed := e.Respond(ctx, "u1", "conv-7", "hello")
		if echoed.ConversationID != "conv-7" {
			t.Errorf("ConversationID = %q, want conv-7", echoed.ConversationID)
		}
	})

	t.Run("memory persists across turns", func(t *testing.T) {
		e, store := newTestEngine(t)
		e.Respond(ctx, "u1", "", "remember I like pizza")

		mem, err := store.Get(ctx, "u1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(mem.Facts) != 1 || mem.Facts[0] != "I like pizza" {
			t.Errorf("Facts = %v", mem.Facts)
		}

		reply := e.Respond(ctx, "u1", "", "what do you know about me").Reply
		if !strings.Contains(reply, "I like pizza") {
			t.Errorf("profile reply = %q", reply)
		}
	})

	t.Run("commands preempt knowledge", func(t *testing.T) {
		e, _ := newTestEngine(t)
		lib := content.NewLibrary()
		if reply := e.Respond(ctx, "u1", "", "help").Reply; reply != lib.HelpText() {
			t.Errorf("reply = %q, want help text", reply)
		}
	})

	t.Run("knowledge answers questions", func(t *testing.T) {
		e, _ := newTestEngine(t)
		lib := content.NewLibrary()
		want, _ := lib.Knowledge("what is javascript")
		if reply := e.Respond(ctx, "u1", "", "What is JavaScript?").Reply; reply != want {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("analysis attached only when requested", func(t *testing.T) {
		plain, _ := newTestEngine(t)
		if resp := plain.Respond(ctx, "u1", "", "hello"); resp.Analysis != nil {
			t.Error("unexpected analysis on plain engine")
		}

		analyzed, _ := newTestEngine(t, WithAnalysis())
		resp := analyzed.Respond(ctx, "u1", "", "what is javascript?")
		if resp.Analysis == nil {
			t.Fatal("missing analysis")
		}
		if resp.Analysis.Intent.Primary != "question" {
			t.Errorf("Intent = %q, want question", resp.Analysis.Intent.Primary)
		}
	})
}

func TestEngine_ForgetAll(t *testing.T) {
	ctx := context.Background()
	e, store := newTestEngine(t)

	e.Respond(ctx, "u1", "", "remember I like pizza")
	e.Respond(ctx, "u1", "", "remember I have a dog")
	e.Respond(ctx, "u1", "", "forget all")

	mem, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !mem.IsEmpty() {
		t.Errorf("memory not cleared: %+v", mem)
	}
	if mem.Facts == nil || mem.Preferences == nil {
		t.Error("cleared fields are nil, want empty containers")
	}
}

func TestEngine_ConcurrentUsers(t *testing.T) {
	ctx := context.Background()
	e, store := newTestEngine(t)

	const turns = 25
	var wg sync.WaitGroup
	for _, user := range []string{"alice", "bob"} {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			for i := 0; i < turns; i++ {
				e.Respond(ctx, user, "", fmt.Sprintf("remember fact %d", i))
			}
		}(user)
	}
	wg.Wait()

	for _, user := range []string{"alice", "bob"} {
		mem, err := store.Get(ctx, user)
		if err != nil {
			t.Fatalf("Get(%s): %v", user, err)
		}
		if len(mem.Facts) != turns {
			t.Errorf("%s has %d facts, want %d (lost updates)", user, len(mem.Facts), turns)
		}
	}
}
