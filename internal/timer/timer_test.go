package timer

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

func newTestCountdown() (*Countdown, *clockwork.FakeClock) {
	fc := clockwork.NewFakeClock()
	c := New(map[int]Cue{5: "beep5", 3: "beep3"}, "timeout", fc, zerolog.Nop())
	return c, fc
}

func equalCues(a, b []Cue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCountdownCuesFireOncePerThreshold(t *testing.T) {
	c, fc := newTestCountdown()
	c.Start(10 * time.Second)

	if cues := c.Tick(); len(cues) != 0 {
		t.Fatalf("cues at 10s = %v, want none", cues)
	}

	fc.Advance(5 * time.Second)
	if cues := c.Tick(); !equalCues(cues, []Cue{"beep5"}) {
		t.Fatalf("cues at 5s = %v, want [beep5]", cues)
	}
	if cues := c.Tick(); len(cues) != 0 {
		t.Fatalf("threshold fired twice: %v", cues)
	}

	fc.Advance(2 * time.Second)
	if cues := c.Tick(); !equalCues(cues, []Cue{"beep3"}) {
		t.Fatalf("cues at 3s = %v, want [beep3]", cues)
	}
}

func TestCountdownUnevenTicksCatchUp(t *testing.T) {
	c, fc := newTestCountdown()
	c.Start(10 * time.Second)

	// One slow tick jumps past both thresholds; both cues arrive, highest
	// threshold first.
	fc.Advance(8 * time.Second)
	if cues := c.Tick(); !equalCues(cues, []Cue{"beep5", "beep3"}) {
		t.Fatalf("cues = %v, want [beep5 beep3]", cues)
	}
}

func TestCountdownExpiry(t *testing.T) {
	c, fc := newTestCountdown()
	c.Start(2 * time.Second)

	fc.Advance(2 * time.Second)
	if !c.IsExpired() {
		t.Fatal("countdown should be expired")
	}
	cues := c.Tick()
	if len(cues) == 0 || cues[len(cues)-1] != "timeout" {
		t.Fatalf("cues = %v, want trailing timeout", cues)
	}
	if cues := c.Tick(); len(cues) != 0 {
		t.Fatalf("timeout cue fired twice: %v", cues)
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %v, want 0", c.Remaining())
	}
}

func TestCountdownResetClearsCueState(t *testing.T) {
	c, fc := newTestCountdown()
	c.Start(5 * time.Second)

	fc.Advance(5 * time.Second)
	c.Tick()

	c.Reset(10 * time.Second)
	if c.IsExpired() {
		t.Fatal("reset countdown should not be expired")
	}
	if got := c.RemainingSeconds(); got != 10 {
		t.Fatalf("RemainingSeconds() = %d, want 10", got)
	}

	fc.Advance(5 * time.Second)
	if cues := c.Tick(); !equalCues(cues, []Cue{"beep5"}) {
		t.Fatalf("cues after reset = %v, want [beep5]", cues)
	}
}

func TestCountdownRemainingSecondsRoundsUp(t *testing.T) {
	c, fc := newTestCountdown()
	c.Start(10 * time.Second)

	fc.Advance(2500 * time.Millisecond)
	if got := c.RemainingSeconds(); got != 8 {
		t.Errorf("RemainingSeconds() = %d, want 8", got)
	}
}

func TestCueFor(t *testing.T) {
	c, _ := newTestCountdown()
	c.Start(10 * time.Second)

	if cue, ok := c.CueFor(5); !ok || cue != "beep5" {
		t.Errorf("CueFor(5) = %q, %v; want beep5, true", cue, ok)
	}
	if _, ok := c.CueFor(5); ok {
		t.Error("CueFor(5) fired twice")
	}
	if _, ok := c.CueFor(4); ok {
		t.Error("CueFor(4) should have no cue")
	}
}

func TestStoppedCountdownIsInert(t *testing.T) {
	c, fc := newTestCountdown()
	c.Start(5 * time.Second)
	c.Stop()

	fc.Advance(10 * time.Second)
	if c.IsExpired() {
		t.Error("stopped countdown reports expired")
	}
	if cues := c.Tick(); len(cues) != 0 {
		t.Errorf("stopped countdown ticked: %v", cues)
	}
}
