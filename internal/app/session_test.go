package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"yamanote/internal/config"
	"yamanote/internal/corpus"
	"yamanote/internal/domain"
)

const testCorpus = "東京,とうきょう\n上野,うえの\n名古屋,なごや"

func testConfig() *config.Config {
	return &config.Config{
		Game: config.GameConfig{TurnSeconds: 10, PassLimit: 1, WrongLimit: 2},
		Sound: config.SoundConfig{
			Correct:   "correct",
			Wrong:     "wrong",
			Timeout:   "timeout",
			Countdown: map[int]string{3: "beep3"},
		},
	}
}

func newTestSession(t *testing.T, raw string, players ...string) (*Session, *clockwork.FakeClock) {
	t.Helper()
	fc := clockwork.NewFakeClock()
	s := New(testConfig(), fc, zerolog.Nop())

	path := filepath.Join(t.TempDir(), "list.csv")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	if err := s.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	for _, name := range players {
		if err := s.AddPlayer(name); err != nil {
			t.Fatalf("AddPlayer(%s): %v", name, err)
		}
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s, fc
}

func TestTickCuesThenTimeout(t *testing.T) {
	s, fc := newTestSession(t, testCorpus, "alice", "bob")

	fc.Advance(7 * time.Second)
	res, err := s.Tick()
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(res.Cues) != 1 || res.Cues[0] != "beep3" {
		t.Fatalf("cues = %v, want [beep3]", res.Cues)
	}
	if res.TimedOut {
		t.Fatal("timed out early")
	}

	fc.Advance(3 * time.Second)
	res, err = s.Tick()
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !res.TimedOut || res.Outcome == nil || res.Outcome.Reason != domain.ReasonTimedOut {
		t.Fatalf("result = %+v, want timeout", res)
	}
	if res.Outcome.Player != "alice" {
		t.Errorf("timed out player = %s, want alice", res.Outcome.Player)
	}

	// Clock restarted for the next player.
	if s.CurrentPlayerName() != "bob" {
		t.Errorf("current = %s, want bob", s.CurrentPlayerName())
	}
	if s.RemainingSeconds() != 10 {
		t.Errorf("remaining = %d, want 10", s.RemainingSeconds())
	}
}

func TestLateSubmissionResolvesAsTimeout(t *testing.T) {
	s, fc := newTestSession(t, testCorpus, "alice", "bob")

	// The clock expired but no tick has run yet; the submission must lose.
	fc.Advance(10 * time.Second)
	res, err := s.Submit("とうきょう")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Outcome.Accepted || res.Outcome.Reason != domain.ReasonTimedOut {
		t.Fatalf("outcome = %+v, want timeout rejection", res.Outcome)
	}
	if res.Sound != "timeout" {
		t.Errorf("sound = %q, want timeout", res.Sound)
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
}

func TestAcceptedSubmissionRestartsClock(t *testing.T) {
	s, fc := newTestSession(t, testCorpus, "alice", "bob")

	fc.Advance(4 * time.Second)
	res, err := s.Submit("とうきょう")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !res.Outcome.Accepted || res.Sound != "correct" {
		t.Fatalf("result = %+v, want accepted with correct sound", res)
	}
	if s.CurrentPlayerName() != "bob" {
		t.Errorf("current = %s, want bob", s.CurrentPlayerName())
	}
	if s.RemainingSeconds() != 10 {
		t.Errorf("remaining = %d, want a fresh 10", s.RemainingSeconds())
	}
}

func TestRejectedSubmissionKeepsClockRunning(t *testing.T) {
	s, fc := newTestSession(t, testCorpus, "alice", "bob")

	fc.Advance(4 * time.Second)
	res, err := s.Submit("よこはま")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Outcome.Accepted || res.Sound != "wrong" {
		t.Fatalf("result = %+v, want rejection with wrong sound", res)
	}
	if s.CurrentPlayerName() != "alice" {
		t.Errorf("current = %s, want alice", s.CurrentPlayerName())
	}
	if s.RemainingSeconds() != 6 {
		t.Errorf("remaining = %d, want 6", s.RemainingSeconds())
	}
}

func TestLoadFileFailureIsRecoverable(t *testing.T) {
	fc := clockwork.NewFakeClock()
	s := New(testConfig(), fc, zerolog.Nop())

	err := s.LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}
	if s.List() != nil {
		t.Error("failed load should leave no list attached")
	}
}

func TestSaveFilePreservesPartition(t *testing.T) {
	s, _ := newTestSession(t, testCorpus, "alice")

	if res, _ := s.Submit("うえの"); !res.Outcome.Accepted {
		t.Fatalf("submit rejected: %+v", res.Outcome)
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := s.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	reloaded := corpus.Parse(string(data))
	if reloaded.UsedCount() != 1 || reloaded.Used[0].Display != "上野" {
		t.Errorf("used block = %+v, want [上野]", reloaded.Used)
	}
	if reloaded.Remaining() != 2 {
		t.Errorf("pending = %d entries, want 2", reloaded.Remaining())
	}
}

func TestGameOverStopsTheClock(t *testing.T) {
	s, fc := newTestSession(t, "東京,とうきょう", "alice")

	res, err := s.Submit("とうきょう")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !res.Outcome.GameOver || s.Phase() != domain.PhaseGameOver {
		t.Fatalf("outcome = %+v phase = %s, want game over", res.Outcome, s.Phase())
	}

	fc.Advance(time.Minute)
	tick, err := s.Tick()
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if tick.TimedOut || len(tick.Cues) != 0 {
		t.Errorf("tick after game over = %+v, want inert", tick)
	}
}
