package textutil

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"javascript", "javascrip", 1},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizedDistance(t *testing.T) {
	t.Run("identical strings are zero", func(t *testing.T) {
		if d := NormalizedDistance("hello", "hello"); d != 0 {
			t.Errorf("distance = %v, want 0", d)
		}
	})

	t.Run("both empty is zero", func(t *testing.T) {
		if d := NormalizedDistance("", ""); d != 0 {
			t.Errorf("distance = %v, want 0", d)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := [][2]string{
			{"kitten", "sitting"},
			{"what is javascript", "what is typescript"},
			{"", "abc"},
		}
		for _, p := range pairs {
			ab := NormalizedDistance(p[0], p[1])
			ba := NormalizedDistance(p[1], p[0])
			if ab != ba {
				t.Errorf("distance(%q,%q)=%v != distance(%q,%q)=%v", p[0], p[1], ab, p[1], p[0], ba)
			}
		}
	})

	t.Run("bounded in unit interval", func(t *testing.T) {
		pairs := [][2]string{
			{"a", "zzzzzzzzzz"},
			{"completely", "different"},
			{"", "x"},
		}
		for _, p := range pairs {
			d := NormalizedDistance(p[0], p[1])
			if d < 0 || d > 1 {
				t.Errorf("distance(%q,%q) = %v, out of [0,1]", p[0], p[1], d)
			}
		}
	})

	t.Run("single deletion in long string is small", func(t *testing.T) {
		d := NormalizedDistance("what is javascript", "what is javascrip")
		if d > 0.06 {
			t.Errorf("distance = %v, want <= 0.06", d)
		}
	})
}
