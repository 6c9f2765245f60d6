package verses

import (
	"fmt"
	"math/rand"
	"testing"
)

// at builds a range sitting at known committed values with matching raw text.
func at(t *testing.T, start, end uint) *Range {
	t.Helper()
	r := New()
	r.SetStart(fmt.Sprintf("%d", start))
	r.SetEnd(fmt.Sprintf("%d", end))
	if s, e := r.Bounds(); s != start || e != end {
		t.Fatalf("setup failed: wanted (%d,%d), got (%d,%d)", start, end, s, e)
	}
	return r
}

func assertBounds(t *testing.T, r *Range, start, end uint) {
	t.Helper()
	if s, e := r.Bounds(); s != start || e != end {
		t.Errorf("expected bounds (%d,%d), got (%d,%d)", start, end, s, e)
	}
}

func TestRange(t *testing.T) {
	t.Run("New starts at the zero verse", func(t *testing.T) {
		r := New()
		assertBounds(t, r, 0, 0)
		if r.Start().Raw() != "0" || r.End().Raw() != "0" {
			t.Errorf("expected raw \"0\"/\"0\", got %q/%q", r.Start().Raw(), r.End().Raw())
		}
	})

	t.Run("FullSong resets both fields", func(t *testing.T) {
		r := at(t, 30, 10)
		r.FullSong()
		assertBounds(t, r, 99, 0)
		if r.Start().Raw() != "99" || r.End().Raw() != "0" {
			t.Errorf("expected raw \"99\"/\"0\", got %q/%q", r.Start().Raw(), r.End().Raw())
		}
	})

	t.Run("SetStart commits a legal value", func(t *testing.T) {
		r := at(t, 30, 10)
		r.SetStart("50")
		assertBounds(t, r, 50, 10)
		if r.Start().Raw() != "50" {
			t.Errorf("expected raw \"50\", got %q", r.Start().Raw())
		}
	})

	t.Run("SetStart rejects a value below end but keeps the text", func(t *testing.T) {
		r := at(t, 30, 10)
		r.SetStart("5")
		assertBounds(t, r, 30, 10)
		if r.Start().Raw() != "5" {
			t.Errorf("expected raw \"5\", got %q", r.Start().Raw())
		}
		if r.Start().IsValid() {
			t.Error("start buffer should report invalid while raw disagrees with parsed")
		}
	})

	t.Run("SetStart falls back to end on unparsable text", func(t *testing.T) {
		r := at(t, 30, 10)
		r.SetStart("abc")
		assertBounds(t, r, 10, 10)
		if r.Start().Raw() != "abc" {
			t.Errorf("expected raw \"abc\", got %q", r.Start().Raw())
		}
	})

	t.Run("SetStart clamps to the last verse", func(t *testing.T) {
		r := New()
		r.SetStart("150")
		assertBounds(t, r, 99, 0)
		if r.Start().Raw() != "150" {
			t.Errorf("expected raw \"150\", got %q", r.Start().Raw())
		}
	})

	t.Run("SetEnd rejects a value above start but keeps the text", func(t *testing.T) {
		r := at(t, 30, 10)
		r.SetEnd("40")
		assertBounds(t, r, 30, 10)
		if r.End().Raw() != "40" {
			t.Errorf("expected raw \"40\", got %q", r.End().Raw())
		}
	})

	t.Run("SetEnd falls back to start on unparsable text", func(t *testing.T) {
		r := at(t, 30, 10)
		r.SetEnd("x")
		assertBounds(t, r, 30, 30)
	})

	t.Run("moving start revalidates a rejected end", func(t *testing.T) {
		r := at(t, 30, 10)
		r.SetEnd("40") // rejected, raw kept
		assertBounds(t, r, 30, 10)

		r.SetStart("60") // start now makes room for the pending end
		assertBounds(t, r, 60, 40)
	})

	t.Run("moving end revalidates a rejected start", func(t *testing.T) {
		r := at(t, 30, 10)
		r.SetStart("5") // rejected, raw kept
		assertBounds(t, r, 30, 10)

		r.SetEnd("2") // end drops below the pending start
		assertBounds(t, r, 5, 2)
	})

	t.Run("SetStart is idempotent on committed values", func(t *testing.T) {
		r := at(t, 30, 10)
		r.SetStart("30")
		assertBounds(t, r, 30, 10)
		r.SetStart("30")
		assertBounds(t, r, 30, 10)
	})

	t.Run("repeated invalid input holds the last good value", func(t *testing.T) {
		r := at(t, 30, 10)
		r.SetStart("not a number")
		r.SetStart("still not")
		assertBounds(t, r, 10, 10)
	})
}

func TestNextVerse(t *testing.T) {
	t.Run("shrinks the range from the bottom", func(t *testing.T) {
		r := at(t, 10, 3)
		r.NextVerse()
		assertBounds(t, r, 10, 2)
		if r.End().Raw() != "2" {
			t.Errorf("expected end raw \"2\", got %q", r.End().Raw())
		}
	})

	t.Run("leaves start untouched", func(t *testing.T) {
		r := at(t, 10, 3)
		r.SetStart("banana") // raw goes stale on purpose
		r.NextVerse()
		if r.Start().Raw() != "banana" {
			t.Errorf("expected start raw preserved, got %q", r.Start().Raw())
		}
	})

	t.Run("wraps to the opening verse after the last one", func(t *testing.T) {
		r := at(t, 5, 0)
		r.NextVerse()
		assertBounds(t, r, 99, 99)
		if r.Start().Raw() != "99" || r.End().Raw() != "99" {
			t.Errorf("expected raw \"99\"/\"99\", got %q/%q", r.Start().Raw(), r.End().Raw())
		}
	})

	t.Run("full cycle returns to the top", func(t *testing.T) {
		r := New()
		r.FullSong()
		for i := 0; i < 99; i++ {
			r.NextVerse()
		}
		assertBounds(t, r, 99, 1)
		r.NextVerse()
		assertBounds(t, r, 99, 0)
		r.NextVerse()
		assertBounds(t, r, 99, 99)
	})
}

// TestRangeInvariant drives the model with random operations and checks the
// ordering constraint never breaks.
func TestRangeInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r := New()

	inputs := []string{"0", "5", "42", "99", "100", "150", "-3", "abc", "", " 7", "007", "1e2"}

	for i := 0; i < 5000; i++ {
		switch rng.Intn(4) {
		case 0:
			r.SetStart(inputs[rng.Intn(len(inputs))])
		case 1:
			r.SetEnd(inputs[rng.Intn(len(inputs))])
		case 2:
			r.FullSong()
		case 3:
			r.NextVerse()
		}

		start, end := r.Bounds()
		if end > start || start > MaxVerse {
			t.Fatalf("invariant broken after %d ops: (%d,%d)", i+1, start, end)
		}
	}
}

func TestBuffer(t *testing.T) {
	t.Run("overwrite sets raw from the value", func(t *testing.T) {
		var b Buffer
		b.overwrite(42)
		if b.Raw() != "42" || b.Parsed() != 42 {
			t.Errorf("expected 42/\"42\", got %d/%q", b.Parsed(), b.Raw())
		}
		if !b.IsValid() {
			t.Error("overwritten buffer should be valid")
		}
	})

	t.Run("IsValid detects drift", func(t *testing.T) {
		var b Buffer
		b.overwrite(10)
		b.resolve("abc", func(uint) bool { return true }, 0)
		if b.IsValid() {
			t.Error("buffer with unparsable raw should be invalid")
		}
		if b.Parsed() != 0 {
			t.Errorf("expected fallback 0, got %d", b.Parsed())
		}
	})

	t.Run("leading zeros still commit", func(t *testing.T) {
		var b Buffer
		b.resolve("007", func(uint) bool { return true }, 0)
		if b.Parsed() != 7 {
			t.Errorf("expected 7, got %d", b.Parsed())
		}
		// "007" reparses to 7, so the buffer counts as valid
		if !b.IsValid() {
			t.Error("expected valid buffer")
		}
	})
}
