package memory

import (
	"context"
	"errors"
	"testing"
)

func TestUserMemory_RemoveFact(t *testing.T) {
	t.Run("removes first match only", func(t *testing.T) {
		m := NewUserMemory("u1")
		m.AddFact("I like pizza")
		m.AddFact("pizza on fridays")
		m.AddFact("I have a dog")

		removed, ok := m.RemoveFact("pizza")
		if !ok {
			t.Fatal("RemoveFact returned false")
		}
		if removed != "I like pizza" {
			t.Errorf("removed %q, want first match", removed)
		}
		if len(m.Facts) != 2 || m.Facts[0] != "pizza on fridays" {
			t.Errorf("Facts = %v", m.Facts)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		m := NewUserMemory("u1")
		m.AddFact("I work at ACME Corp")
		if _, ok := m.RemoveFact("acme"); !ok {
			t.Error("RemoveFact did not match case-insensitively")
		}
	})

	t.Run("no match", func(t *testing.T) {
		m := NewUserMemory("u1")
		m.AddFact("I like pizza")
		if _, ok := m.RemoveFact("sushi"); ok {
			t.Error("RemoveFact matched nothing, want false")
		}
		if len(m.Facts) != 1 {
			t.Errorf("Facts = %v, want untouched", m.Facts)
		}
	})
}

func TestUserMemory_Clear(t *testing.T) {
	m := NewUserMemory("u1")
	m.Name = "Ada"
	m.AddFact("I like pizza")
	m.Preferences["music"] = "love"

	m.Clear()

	if m.Name != "" {
		t.Errorf("Name = %q, want empty", m.Name)
	}
	if m.Facts == nil || len(m.Facts) != 0 {
		t.Errorf("Facts = %#v, want empty slice", m.Facts)
	}
	if m.Preferences == nil || len(m.Preferences) != 0 {
		t.Errorf("Preferences = %#v, want empty map", m.Preferences)
	}
	if !m.IsEmpty() {
		t.Error("IsEmpty = false after Clear")
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	t.Run("get missing", func(t *testing.T) {
		if _, err := s.Get(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("put and get", func(t *testing.T) {
		m := NewUserMemory("u1")
		m.AddFact("I like pizza")
		if err := s.Put(ctx, m); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, err := s.Get(ctx, "u1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(got.Facts) != 1 || got.Facts[0] != "I like pizza" {
			t.Errorf("Facts = %v", got.Facts)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := s.Delete(ctx, "u1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := s.Get(ctx, "u1"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound after delete", err)
		}
	})

	t.Run("put without id fails", func(t *testing.T) {
		if err := s.Put(ctx, &UserMemory{}); err == nil {
			t.Error("expected error for record without user id")
		}
	})
}

func TestMemoryLearnedTerms(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLearnedTerms()

	if err := s.Put(ctx, "u1", []string{"grpc", "sqlite"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	terms, err := s.Get(ctx, "u1")
	if err != nil || len(terms) != 2 {
		t.Fatalf("Get = %v, %v", terms, err)
	}

	if err := s.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound after delete", err)
	}

	// Deleting an absent entry is not an error: "forget all" must be
	// idempotent for users the learner never saw.
	if err := s.Delete(ctx, "stranger"); err != nil {
		t.Errorf("Delete(absent) = %v, want nil", err)
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	t.Run("round trip", func(t *testing.T) {
		m := NewUserMemory("u1")
		m.Name = "Ada"
		m.AddFact("I like pizza")
		m.Preferences["music"] = "love"
		if err := s.Put(ctx, m); err != nil {
			t.Fatalf("Put: %v", err)
		}

		got, err := s.Get(ctx, "u1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Name != "Ada" || len(got.Facts) != 1 || got.Preferences["music"] != "love" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("replace on second put", func(t *testing.T) {
		m := NewUserMemory("u1")
		if err := s.Put(ctx, m); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, err := s.Get(ctx, "u1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !got.IsEmpty() {
			t.Errorf("got %+v, want cleared record", got)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		if _, err := s.Get(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := s.Delete(ctx, "u1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := s.Delete(ctx, "u1"); !errors.Is(err, ErrNotFound) {
			t.Errorf("second delete err = %v, want ErrNotFound", err)
		}
	})

	t.Run("learned terms", func(t *testing.T) {
		lt := s.LearnedTerms()
		if err := lt.Put(ctx, "u2", []string{"webhook"}); err != nil {
			t.Fatalf("Put: %v", err)
		}
		terms, err := lt.Get(ctx, "u2")
		if err != nil || len(terms) != 1 || terms[0] != "webhook" {
			t.Fatalf("Get = %v, %v", terms, err)
		}
		if err := lt.Delete(ctx, "u2"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := lt.Get(ctx, "u2"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
