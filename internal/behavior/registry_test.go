package behavior

import (
	"context"
	"testing"
)

// fakeBehavior is a scriptable behavior for registry tests.
type fakeBehavior struct {
	name     string
	priority int
	applies  bool
	reply    string
	panics   bool
	handled  int
}

func (f *fakeBehavior) Name() string  { return f.name }
func (f *fakeBehavior) Priority() int { return f.priority }

func (f *fakeBehavior) CanHandle(msg *Message) bool {
	if f.panics {
		panic("boom")
	}
	return f.applies
}

func (f *fakeBehavior) Handle(ctx context.Context, msg *Message) string {
	f.handled++
	return f.reply
}

func TestRegistry_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("highest priority applicable wins", func(t *testing.T) {
		r := NewRegistry(nil)
		low := &fakeBehavior{name: "low", priority: 10, applies: true, reply: "low"}
		high := &fakeBehavior{name: "high", priority: 100, applies: true, reply: "high"}
		r.Register(low)
		r.Register(high)

		if got := r.Dispatch(ctx, &Message{Raw: "x"}); got != "high" {
			t.Errorf("Dispatch = %q, want high", got)
		}
		if low.handled != 0 || high.handled != 1 {
			t.Errorf("handled counts low=%d high=%d, want 0/1", low.handled, high.handled)
		}
	})

	t.Run("inapplicable high priority is skipped", func(t *testing.T) {
		r := NewRegistry(nil)
		r.Register(&fakeBehavior{name: "high", priority: 100, applies: false, reply: "high"})
		r.Register(&fakeBehavior{name: "low", priority: 10, applies: true, reply: "low"})

		if got := r.Dispatch(ctx, &Message{Raw: "x"}); got != "low" {
			t.Errorf("Dispatch = %q, want low", got)
		}
	})

	t.Run("priority ties go to first registered", func(t *testing.T) {
		r := NewRegistry(nil)
		first := &fakeBehavior{name: "first", priority: 50, applies: true, reply: "first"}
		second := &fakeBehavior{name: "second", priority: 50, applies: true, reply: "second"}
		r.Register(first)
		r.Register(second)

		if got := r.Dispatch(ctx, &Message{Raw: "x"}); got != "first" {
			t.Errorf("Dispatch = %q, want first", got)
		}
	})

	t.Run("panicking behavior is skipped", func(t *testing.T) {
		r := NewRegistry(nil)
		r.Register(&fakeBehavior{name: "broken", priority: 100, panics: true})
		r.Register(&fakeBehavior{name: "ok", priority: 10, applies: true, reply: "ok"})

		if got := r.Dispatch(ctx, &Message{Raw: "x"}); got != "ok" {
			t.Errorf("Dispatch = %q, want ok", got)
		}
	})

	t.Run("empty registry still replies", func(t *testing.T) {
		r := NewRegistry(nil)
		if got := r.Dispatch(ctx, &Message{Raw: "x"}); got == "" {
			t.Error("Dispatch returned empty reply")
		}
	})

	t.Run("exactly one behavior handles", func(t *testing.T) {
		r := NewRegistry(nil)
		a := &fakeBehavior{name: "a", priority: 100, applies: true, reply: "a"}
		b := &fakeBehavior{name: "b", priority: 50, applies: true, reply: "b"}
		r.Register(a)
		r.Register(b)
		r.Dispatch(ctx, &Message{Raw: "x"})

		if a.handled+b.handled != 1 {
			t.Errorf("handled = %d+%d, want exactly one", a.handled, b.handled)
		}
	})
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(&fakeBehavior{name: "mid", priority: 50})
	r.Register(&fakeBehavior{name: "top", priority: 100})
	r.Register(&fakeBehavior{name: "bottom", priority: 1})
	r.Register(nil)

	got := r.Behaviors()
	if len(got) != 3 {
		t.Fatalf("Behaviors = %d entries, want 3", len(got))
	}
	wantOrder := []string{"top", "mid", "bottom"}
	for i, b := range got {
		if b.Name() != wantOrder[i] {
			t.Errorf("position %d = %q, want %q", i, b.Name(), wantOrder[i])
		}
	}
}
