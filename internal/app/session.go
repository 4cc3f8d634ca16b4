package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"yamanote/internal/config"
	"yamanote/internal/corpus"
	"yamanote/internal/domain"
	"yamanote/internal/timer"
)

// ErrIO marks answer-list file failures. Recoverable: the host prompts for
// another file and the running session is untouched.
var ErrIO = errors.New("answer list io failure")

// Session glues the turn engine, answer list and countdown together behind
// the presentation boundary. It is single-threaded by contract: the host
// event loop serializes Tick and input calls.
type Session struct {
	cfg   *config.Config
	clock clockwork.Clock
	log   zerolog.Logger

	game      *domain.Game
	countdown *timer.Countdown
	list      *corpus.List
	events    domain.EventSink
}

// SubmitResult pairs a turn outcome with the sound the host should play.
type SubmitResult struct {
	Outcome domain.Outcome
	Sound   string
}

// TickResult reports one countdown tick: cues to play, time left, and the
// forced outcome when the clock ran out.
type TickResult struct {
	Cues             []timer.Cue
	RemainingSeconds int
	TimedOut         bool
	Outcome          *domain.Outcome
}

// New creates a session from configuration. A nil clock means wall clock.
func New(cfg *config.Config, clock clockwork.Clock, log zerolog.Logger) *Session {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	settings := domain.Settings{MaxRounds: cfg.Game.MaxRounds}
	if cfg.Game.ChainRule {
		settings.Chain = domain.KanaChainRule{}
	}

	thresholds := make(map[int]timer.Cue, len(cfg.Sound.Countdown))
	for secs, id := range cfg.Sound.Countdown {
		thresholds[secs] = timer.Cue(id)
	}

	s := &Session{
		cfg:       cfg,
		clock:     clock,
		log:       log,
		game:      domain.NewGame(settings, clock),
		countdown: timer.New(thresholds, timer.Cue(cfg.Sound.Timeout), clock, log),
	}
	s.game.SetSink(s.onEvent)
	return s
}

// SetEvents registers a host sink receiving engine events after logging.
func (s *Session) SetEvents(sink domain.EventSink) {
	s.events = sink
}

func (s *Session) onEvent(e domain.Event) {
	s.log.Info().
		Str("event", string(e.Type)).
		Str("player", e.Player).
		Str("detail", e.Detail).
		Msg("game event")
	if s.events != nil {
		s.events(e)
	}
}

// LoadFile reads an answer list from path. Failures wrap ErrIO and leave any
// previously loaded list in place.
func (s *Session) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	list := corpus.Parse(string(data))
	s.attach(list)
	s.log.Info().
		Str("path", path).
		Int("entries", list.Len()).
		Int("used", list.UsedCount()).
		Msg("answer list loaded")
	return nil
}

// LoadDefault attaches the built-in station corpus.
func (s *Session) LoadDefault() {
	s.attach(corpus.DefaultList())
	s.log.Info().Int("entries", s.list.Len()).Msg("default answer list loaded")
}

func (s *Session) attach(list *corpus.List) {
	s.list = list
	s.game.AttachList(list)
}

// SaveFile persists the current list, used block first, preserving the
// blank-line split. Failures wrap ErrIO.
func (s *Session) SaveFile(path string) error {
	if s.list == nil {
		return domain.ErrNoAnswerList
	}
	if err := os.WriteFile(path, []byte(s.list.Serialize()), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// Serialize renders the current list as corpus text.
func (s *Session) Serialize() (string, error) {
	if s.list == nil {
		return "", domain.ErrNoAnswerList
	}
	return s.list.Serialize(), nil
}

// AddPlayer registers a player with the configured budgets.
func (s *Session) AddPlayer(name string) error {
	_, err := s.game.AddPlayer(name, s.cfg.Game.TurnSeconds, s.cfg.Game.PassLimit, s.cfg.Game.WrongLimit)
	return err
}

// RemovePlayer drops the named player.
func (s *Session) RemovePlayer(name string) error {
	return s.game.RemovePlayer(name)
}

// Start begins the game and the first player's countdown.
func (s *Session) Start() error {
	if err := s.game.Start(); err != nil {
		return err
	}
	s.resetClockForCurrent()
	return nil
}

// Stop ends the session.
func (s *Session) Stop() {
	s.game.Stop()
	s.countdown.Stop()
}

// Submit evaluates answer text for the current player. An expired countdown
// wins over a late submission: the turn resolves as a timeout before the text
// is considered.
func (s *Session) Submit(text string) (SubmitResult, error) {
	if s.countdown.IsExpired() {
		out, err := s.game.OnTimeout()
		if err != nil {
			return SubmitResult{}, err
		}
		s.afterTurn(out)
		return SubmitResult{Outcome: out, Sound: s.cfg.Sound.Timeout}, nil
	}

	out, err := s.game.Submit(text)
	if err != nil {
		return SubmitResult{}, err
	}
	res := SubmitResult{Outcome: out}
	if out.Accepted {
		res.Sound = s.cfg.Sound.Correct
	} else {
		res.Sound = s.cfg.Sound.Wrong
	}
	s.afterTurn(out)
	return res, nil
}

// Pass spends the current player's pass credit.
func (s *Session) Pass() (SubmitResult, error) {
	out, err := s.game.Pass()
	if err != nil {
		return SubmitResult{}, err
	}
	s.afterTurn(out)
	return SubmitResult{Outcome: out}, nil
}

// Unmark moves a used entry back to pending, a host correction for a
// mistakenly accepted answer.
func (s *Session) Unmark(display string) error {
	if s.list == nil {
		return domain.ErrNoAnswerList
	}
	return s.list.Unmark(display)
}

// Tick drives the countdown once. On expiry the engine's timeout path runs
// and, if the game continues, the clock restarts for the next player.
func (s *Session) Tick() (TickResult, error) {
	if s.game.Phase() != domain.PhaseWaitingForInput {
		return TickResult{}, nil
	}
	cues := s.countdown.Tick()
	res := TickResult{Cues: cues, RemainingSeconds: s.countdown.RemainingSeconds()}
	if s.countdown.IsExpired() {
		out, err := s.game.OnTimeout()
		if err != nil {
			return res, err
		}
		res.TimedOut = true
		res.Outcome = &out
		s.afterTurn(out)
	}
	return res, nil
}

// afterTurn restarts or stops the countdown depending on where the turn
// landed. Plain rejections keep the clock running for the same player.
func (s *Session) afterTurn(out domain.Outcome) {
	if out.GameOver || s.game.Phase() == domain.PhaseGameOver {
		s.countdown.Stop()
		return
	}
	turnMoved := out.Accepted || out.Eliminated ||
		out.Reason == domain.ReasonPassed || out.Reason == domain.ReasonTimedOut
	if turnMoved {
		s.resetClockForCurrent()
	}
}

func (s *Session) resetClockForCurrent() {
	secs := s.cfg.Game.TurnSeconds
	if p := s.game.CurrentPlayer(); p != nil && p.BaseSeconds > 0 {
		secs = p.BaseSeconds
	}
	s.countdown.Reset(time.Duration(secs) * time.Second)
}

// Score returns the session score.
func (s *Session) Score() int {
	return s.game.Score()
}

// Phase returns the engine phase.
func (s *Session) Phase() domain.Phase {
	return s.game.Phase()
}

// RemainingSeconds returns the current player's time left.
func (s *Session) RemainingSeconds() int {
	return s.countdown.RemainingSeconds()
}

// CurrentPlayerIndex returns the active seat index.
func (s *Session) CurrentPlayerIndex() int {
	return s.game.CurrentPlayerIndex()
}

// CurrentPlayerName returns the active player's name, empty when none.
func (s *Session) CurrentPlayerName() string {
	if p := s.game.CurrentPlayer(); p != nil {
		return p.Name
	}
	return ""
}

// Game exposes the underlying engine for read-only host rendering.
func (s *Session) Game() *domain.Game {
	return s.game
}

// List exposes the loaded answer list, nil before any load.
func (s *Session) List() *corpus.List {
	return s.list
}
