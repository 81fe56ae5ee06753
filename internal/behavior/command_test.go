package behavior

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/mockmate/assistant/internal/content"
	"github.com/mockmate/assistant/internal/memory"
	"github.com/mockmate/assistant/internal/textutil"
)

func newTestCommandBehavior(t *testing.T) (*CommandBehavior, *memory.MemoryLearnedTerms) {
	t.Helper()
	learned := memory.NewMemoryLearnedTerms()
	b := NewCommandBehavior(content.NewLibrary(), learned, rand.New(rand.NewSource(1)), nil)
	return b, learned
}

func commandMessage(raw, userID string) *Message {
	return &Message{
		Raw:     raw,
		Command: textutil.NormalizeCommand(raw),
		UserID:  userID,
		Memory:  memory.NewUserMemory(userID),
	}
}

func TestCommandBehavior_CanHandle(t *testing.T) {
	b, _ := newTestCommandBehavior(t)
	tests := []struct {
		raw  string
		want bool
	}{
		{"help", true},
		{"HELP", true},
		{"  topics  ", true},
		{"remember I like pizza", true},
		{"forget all", true},
		{"tell me a joke", true},
		{"Tell me a FACT", true},
		{"what do you know about me", true},
		{"helpful tips please", false},
		{"remembering the past", false},
		{"what is javascript", false},
		{"", false},
	}
	for _, tt := range tests {
		msg := commandMessage(tt.raw, "u1")
		if got := b.CanHandle(msg); got != tt.want {
			t.Errorf("CanHandle(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestCommandBehavior_Remember(t *testing.T) {
	ctx := context.Background()
	b, _ := newTestCommandBehavior(t)

	t.Run("stores fact verbatim", func(t *testing.T) {
		msg := commandMessage("remember I like pizza", "u1")
		reply := b.Handle(ctx, msg)
		if reply != "I'll remember that: I like pizza" {
			t.Errorf("reply = %q", reply)
		}
		if len(msg.Memory.Facts) != 1 || msg.Memory.Facts[0] != "I like pizza" {
			t.Errorf("Facts = %v", msg.Memory.Facts)
		}
	})

	t.Run("keeps original casing", func(t *testing.T) {
		msg := commandMessage("Remember My Cat Is Called Bob", "u1")
		b.Handle(ctx, msg)
		if msg.Memory.Facts[0] != "My Cat Is Called Bob" {
			t.Errorf("Facts = %v", msg.Memory.Facts)
		}
	})

	t.Run("bare remember asks for input", func(t *testing.T) {
		msg := commandMessage("remember", "u1")
		reply := b.Handle(ctx, msg)
		if len(msg.Memory.Facts) != 0 {
			t.Errorf("Facts = %v, want none", msg.Memory.Facts)
		}
		if reply == "" {
			t.Error("empty reply")
		}
	})
}

func TestCommandBehavior_Forget(t *testing.T) {
	ctx := context.Background()

	t.Run("removes first matching fact", func(t *testing.T) {
		b, _ := newTestCommandBehavior(t)
		msg := commandMessage("forget pizza", "u1")
		msg.Memory.AddFact("I like pizza")
		msg.Memory.AddFact("pizza every friday")

		reply := b.Handle(ctx, msg)
		if !strings.Contains(reply, "I like pizza") {
			t.Errorf("reply = %q, want first match reported", reply)
		}
		if len(msg.Memory.Facts) != 1 || msg.Memory.Facts[0] != "pizza every friday" {
			t.Errorf("Facts = %v", msg.Memory.Facts)
		}
	})

	t.Run("falls back to preference", func(t *testing.T) {
		b, _ := newTestCommandBehavior(t)
		msg := commandMessage("forget music", "u1")
		msg.Memory.Preferences["music"] = "love"

		reply := b.Handle(ctx, msg)
		if !strings.Contains(reply, "music") {
			t.Errorf("reply = %q", reply)
		}
		if len(msg.Memory.Preferences) != 0 {
			t.Errorf("Preferences = %v", msg.Memory.Preferences)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		b, _ := newTestCommandBehavior(t)
		msg := commandMessage("forget unicorns", "u1")
		reply := b.Handle(ctx, msg)
		if !strings.Contains(reply, "couldn't find") {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("forget all clears memory and learned terms", func(t *testing.T) {
		b, learned := newTestCommandBehavior(t)
		if err := learned.Put(ctx, "u1", []string{"webhook"}); err != nil {
			t.Fatal(err)
		}
		msg := commandMessage("forget all", "u1")
		msg.Memory.Name = "Ada"
		msg.Memory.AddFact("I like pizza")
		msg.Memory.Preferences["music"] = "love"

		b.Handle(ctx, msg)

		if !msg.Memory.IsEmpty() {
			t.Errorf("memory not cleared: %+v", msg.Memory)
		}
		if msg.Memory.Facts == nil || msg.Memory.Preferences == nil {
			t.Error("cleared fields must stay allocated, not nil")
		}
		if _, err := learned.Get(ctx, "u1"); !errors.Is(err, memory.ErrNotFound) {
			t.Errorf("learned terms err = %v, want ErrNotFound", err)
		}
	})
}

func TestCommandBehavior_CannedPicks(t *testing.T) {
	ctx := context.Background()
	b, _ := newTestCommandBehavior(t)
	lib := content.NewLibrary()

	t.Run("joke comes from the joke list", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			reply := b.Handle(ctx, commandMessage("tell me a joke", "u1"))
			if !containsString(lib.Jokes(), reply) {
				t.Fatalf("reply %q not in joke list", reply)
			}
		}
	})

	t.Run("fact comes from the fact list", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			reply := b.Handle(ctx, commandMessage("tell me a fact", "u1"))
			if !containsString(lib.Facts(), reply) {
				t.Fatalf("reply %q not in fact list", reply)
			}
		}
	})
}

func TestCommandBehavior_Profile(t *testing.T) {
	ctx := context.Background()
	b, _ := newTestCommandBehavior(t)

	t.Run("empty memory", func(t *testing.T) {
		reply := b.Handle(ctx, commandMessage("what do you know about me", "u1"))
		if !strings.Contains(reply, "don't know anything") {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("composed profile", func(t *testing.T) {
		msg := commandMessage("what do you know about me", "u1")
		msg.Memory.Name = "Ada"
		msg.Memory.Preferences["jazz"] = "love"
		msg.Memory.AddFact("I have a dog")

		reply := b.Handle(ctx, msg)
		if !strings.Contains(reply, "Ada") {
			t.Errorf("reply missing name: %q", reply)
		}
		if !strings.Contains(reply, "you love jazz") {
			t.Errorf("reply missing preference line: %q", reply)
		}
		if !strings.Contains(reply, "I have a dog") {
			t.Errorf("reply missing fact: %q", reply)
		}
	})
}

func TestCommandBehavior_HelpAndTopics(t *testing.T) {
	ctx := context.Background()
	b, _ := newTestCommandBehavior(t)
	lib := content.NewLibrary()

	if got := b.Handle(ctx, commandMessage("help", "u1")); got != lib.HelpText() {
		t.Errorf("help reply = %q", got)
	}
	if got := b.Handle(ctx, commandMessage("topics", "u1")); got != lib.TopicsText() {
		t.Errorf("topics reply = %q", got)
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
