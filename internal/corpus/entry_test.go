package corpus

import (
	"errors"
	"testing"
)

func TestLookupMatchesNormalizedOnly(t *testing.T) {
	l := Parse("東京,とうきょう")

	// Display text is not a match key.
	if _, loc := l.Lookup("東京"); loc != NotFound {
		t.Errorf("lookup by display = %v, want NotFound", loc)
	}
	if _, loc := l.Lookup("とうきょう"); loc != InPending {
		t.Errorf("lookup by match = %v, want InPending", loc)
	}
}

func TestMarkUsedMovesEntry(t *testing.T) {
	l := Parse("東京,とうきょう\n大阪,おおさか")
	entry, _ := l.Lookup("とうきょう")

	if err := l.MarkUsed(entry); err != nil {
		t.Fatalf("MarkUsed: %v", err)
	}
	if _, loc := l.Lookup("とうきょう"); loc != InUsed {
		t.Errorf("after MarkUsed location = %v, want InUsed", loc)
	}
	if l.Remaining() != 1 || l.UsedCount() != 1 {
		t.Errorf("remaining/used = %d/%d, want 1/1", l.Remaining(), l.UsedCount())
	}

	// A second move of the same entry is a caller bug.
	if err := l.MarkUsed(entry); !errors.Is(err, ErrNotPending) {
		t.Errorf("second MarkUsed err = %v, want ErrNotPending", err)
	}
}

func TestMarkUsedKeepsPlayOrder(t *testing.T) {
	l := Parse("東京,とうきょう\n大阪,おおさか\n名古屋,なごや")
	for _, match := range []string{"おおさか", "とうきょう"} {
		entry, _ := l.Lookup(match)
		if err := l.MarkUsed(entry); err != nil {
			t.Fatalf("MarkUsed(%s): %v", match, err)
		}
	}
	got := displays(l.Used)
	if !equalStrings(got, []string{"大阪", "東京"}) {
		t.Errorf("used order = %v, want [大阪 東京]", got)
	}
}

func TestUnmark(t *testing.T) {
	l := Parse("東京,とうきょう\n\n大阪,おおさか")

	if err := l.Unmark("東京"); err != nil {
		t.Fatalf("Unmark: %v", err)
	}
	if _, loc := l.Lookup("とうきょう"); loc != InPending {
		t.Errorf("after Unmark location should be InPending")
	}
	if err := l.Unmark("東京"); !errors.Is(err, ErrNotUsed) {
		t.Errorf("Unmark of pending entry err = %v, want ErrNotUsed", err)
	}
}
