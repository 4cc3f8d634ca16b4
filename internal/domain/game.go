package domain

import (
	"strings"

	"github.com/jonboulle/clockwork"

	"yamanote/internal/corpus"
)

// Settings holds configurable game rules.
type Settings struct {
	MaxRounds int       // full cycles through the player order; 0 = unlimited
	Chain     ChainRule // nil disables the chaining constraint
}

// Game is the turn engine: it validates submissions against the answer list,
// keeps score, and advances turns. Side effects are limited to the game state
// and the answer list; presentation reacts to Outcome values and events.
type Game struct {
	players  []*Player
	list     *corpus.List
	settings Settings
	clock    clockwork.Clock
	sink     EventSink

	score      int
	currentIdx int
	phase      Phase
	rounds     int    // completed cycles through the player order
	lastMatch  string // match of the last accepted answer, drives the chain rule
}

// NewGame creates an idle game with the given rules.
func NewGame(settings Settings, clock clockwork.Clock) *Game {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Game{
		settings: settings,
		clock:    clock,
		phase:    PhaseIdle,
	}
}

// SetSink registers the event sink. Pass nil to silence events.
func (g *Game) SetSink(sink EventSink) {
	g.sink = sink
}

// AttachList sets the answer list to play against.
func (g *Game) AttachList(list *corpus.List) {
	g.list = list
}

// AddPlayer registers a player. Names are unique under normalization and
// limited to 60 characters. Players cannot join a running game.
func (g *Game) AddPlayer(name string, baseSeconds, passLimit, wrongLimit int) (*Player, error) {
	if g.phase != PhaseIdle && g.phase != PhaseGameOver {
		return nil, ErrGameInProgress
	}
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > 60 {
		return nil, ErrInvalidName
	}
	norm := corpus.Normalize(name)
	for _, p := range g.players {
		if corpus.Normalize(p.Name) == norm {
			return nil, ErrDuplicateName
		}
	}
	p := NewPlayer(name, baseSeconds, passLimit, wrongLimit)
	g.players = append(g.players, p)
	g.emit(EventPlayerAdded, p.Name, "")
	return p, nil
}

// RemovePlayer drops the named player. Not allowed mid-game.
func (g *Game) RemovePlayer(name string) error {
	if g.phase != PhaseIdle && g.phase != PhaseGameOver {
		return ErrGameInProgress
	}
	norm := corpus.Normalize(name)
	for i, p := range g.players {
		if corpus.Normalize(p.Name) == norm {
			g.players = append(g.players[:i], g.players[i+1:]...)
			if g.currentIdx >= len(g.players) && g.currentIdx > 0 {
				g.currentIdx = len(g.players) - 1
			}
			g.emit(EventPlayerRemoved, p.Name, "")
			return nil
		}
	}
	return ErrPlayerNotFound
}

// Start begins a session: budgets reset, score cleared, first player up.
func (g *Game) Start() error {
	if g.list == nil {
		return ErrNoAnswerList
	}
	if len(g.players) == 0 {
		return ErrNoPlayers
	}
	for _, p := range g.players {
		p.ResetRuntime()
	}
	g.score = 0
	g.currentIdx = 0
	g.rounds = 0
	g.lastMatch = ""
	g.phase = PhaseWaitingForInput
	g.emit(EventGameStarted, g.players[0].Name, "")
	return nil
}

// Stop ends the session immediately.
func (g *Game) Stop() {
	if g.phase == PhaseIdle || g.phase == PhaseGameOver {
		return
	}
	g.end("stopped by host")
}

// Submit evaluates the current player's raw answer text.
//
// The chaining rule, when configured, is checked before the answer list is
// consulted, so a rule-violating duplicate reports RuleViolation. A rejection
// of any kind spends one wrong-answer credit; a player out of credits is
// eliminated. An accepted answer moves the entry to used, scores one point,
// restores the wrong-answer budget and advances the turn.
func (g *Game) Submit(raw string) (Outcome, error) {
	p, err := g.actingPlayer()
	if err != nil {
		return Outcome{}, err
	}
	g.phase = PhaseEvaluating
	match := corpus.Normalize(extractAnswer(raw))

	if g.settings.Chain != nil && !g.settings.Chain.Allows(g.lastMatch, match) {
		return g.reject(p, raw, ReasonRuleViolation), nil
	}

	entry, loc := g.list.Lookup(match)
	switch loc {
	case corpus.InUsed:
		return g.reject(p, raw, ReasonAlreadyUsed), nil
	case corpus.NotFound:
		return g.reject(p, raw, ReasonNotInList), nil
	}

	if err := g.list.MarkUsed(entry); err != nil {
		g.phase = PhaseWaitingForInput
		return Outcome{}, err
	}
	g.score++
	g.lastMatch = entry.Match
	p.record(raw, true, g.clock.Now())
	p.resetWrong()
	g.emit(EventAnswerAccepted, p.Name, entry.Display)
	g.advance()
	return Outcome{
		Accepted:  true,
		Entry:     entry,
		Player:    p.Name,
		WrongLeft: p.WrongLeft,
		GameOver:  g.phase == PhaseGameOver,
	}, nil
}

// OnTimeout ends the current player's turn without scoring: the player is
// eliminated and the turn advances. The answer list is never touched.
func (g *Game) OnTimeout() (Outcome, error) {
	p, err := g.actingPlayer()
	if err != nil {
		return Outcome{}, err
	}
	g.phase = PhaseTimedOut
	p.Eliminated = true
	g.emit(EventPlayerEliminated, p.Name, "timed out")
	g.advance()
	return Outcome{
		Reason:     ReasonTimedOut,
		Player:     p.Name,
		Eliminated: true,
		GameOver:   g.phase == PhaseGameOver,
	}, nil
}

// Pass spends a pass credit and advances the turn. Without credits the turn
// stays with the current player.
func (g *Game) Pass() (Outcome, error) {
	p, err := g.actingPlayer()
	if err != nil {
		return Outcome{}, err
	}
	if !p.consumePass() {
		return Outcome{Reason: ReasonNoPassesLeft, Player: p.Name, WrongLeft: p.WrongLeft}, nil
	}
	g.emit(EventPlayerPassed, p.Name, "")
	g.advance()
	return Outcome{Reason: ReasonPassed, Player: p.Name, GameOver: g.phase == PhaseGameOver}, nil
}

// Forfeit eliminates the named player outright.
func (g *Game) Forfeit(name string) error {
	if g.phase != PhaseWaitingForInput {
		return ErrNotRunning
	}
	norm := corpus.Normalize(name)
	for _, p := range g.players {
		if corpus.Normalize(p.Name) == norm {
			if p.Eliminated {
				return nil
			}
			wasCurrent := g.CurrentPlayer() == p
			p.Eliminated = true
			g.emit(EventPlayerEliminated, p.Name, "forfeited")
			if wasCurrent {
				g.advance()
			} else if cause, done := g.finished(); done {
				g.end(cause)
			}
			return nil
		}
	}
	return ErrPlayerNotFound
}

// SkipCurrent advances past the current player without spending a pass.
func (g *Game) SkipCurrent() error {
	if _, err := g.actingPlayer(); err != nil {
		return err
	}
	g.advance()
	return nil
}

// CurrentPlayer returns the active player, skipping eliminated seats, or nil
// when everyone is out.
func (g *Game) CurrentPlayer() *Player {
	n := len(g.players)
	if n == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		idx := (g.currentIdx + i) % n
		if !g.players[idx].Eliminated {
			g.currentIdx = idx
			return g.players[idx]
		}
	}
	return nil
}

// Score returns the number of accepted answers this session.
func (g *Game) Score() int {
	return g.score
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// CurrentPlayerIndex returns the index of the active player.
func (g *Game) CurrentPlayerIndex() int {
	return g.currentIdx
}

// RoundsPlayed returns the number of completed cycles through the players.
func (g *Game) RoundsPlayed() int {
	return g.rounds
}

// LastMatch returns the normalized match of the last accepted answer, empty
// before the first acceptance.
func (g *Game) LastMatch() string {
	return g.lastMatch
}

// Players returns the players in seat order.
func (g *Game) Players() []*Player {
	out := make([]*Player, len(g.players))
	copy(out, g.players)
	return out
}

// List returns the attached answer list.
func (g *Game) List() *corpus.List {
	return g.list
}

// actingPlayer guards a turn action and resolves the current player.
func (g *Game) actingPlayer() (*Player, error) {
	switch g.phase {
	case PhaseGameOver:
		return nil, ErrGameOver
	case PhaseWaitingForInput:
	default:
		return nil, ErrInvalidPhase
	}
	if g.list == nil {
		return nil, ErrNoAnswerList
	}
	p := g.CurrentPlayer()
	if p == nil {
		return nil, ErrNoPlayers
	}
	return p, nil
}

// reject records a wrong answer, spending a credit and eliminating the player
// when the budget is exhausted. The turn stays with the player otherwise.
func (g *Game) reject(p *Player, raw string, reason RejectReason) Outcome {
	p.record(raw, false, g.clock.Now())
	g.emit(EventAnswerRejected, p.Name, string(reason))
	if !p.consumeWrong() {
		p.Eliminated = true
		g.emit(EventPlayerEliminated, p.Name, "wrong answer limit reached")
		g.advance()
		return Outcome{
			Reason:     reason,
			Player:     p.Name,
			Eliminated: true,
			GameOver:   g.phase == PhaseGameOver,
		}
	}
	g.phase = PhaseWaitingForInput
	return Outcome{Reason: reason, Player: p.Name, WrongLeft: p.WrongLeft}
}

// advance hands the turn to the next surviving player, or ends the game when
// a terminal condition is reached.
func (g *Game) advance() {
	if cause, done := g.finished(); done {
		g.end(cause)
		return
	}
	n := len(g.players)
	for i := 1; i <= n; i++ {
		cand := (g.currentIdx + i) % n
		if !g.players[cand].Eliminated {
			if cand <= g.currentIdx {
				g.rounds++
			}
			g.currentIdx = cand
			break
		}
	}
	if g.settings.MaxRounds > 0 && g.rounds >= g.settings.MaxRounds {
		g.end("max rounds reached")
		return
	}
	g.phase = PhaseWaitingForInput
	g.emit(EventTurnAdvanced, g.players[g.currentIdx].Name, "")
}

// finished checks the terminal conditions shared by every turn action.
func (g *Game) finished() (string, bool) {
	if len(g.players) > 0 {
		alive := 0
		for _, p := range g.players {
			if !p.Eliminated {
				alive++
			}
		}
		if alive == 0 {
			return "all players eliminated", true
		}
	}
	if g.list != nil && g.list.Remaining() == 0 {
		return "answer list exhausted", true
	}
	return "", false
}

func (g *Game) end(cause string) {
	g.phase = PhaseGameOver
	g.emit(EventGameEnded, "", cause)
}

func (g *Game) emit(t EventType, player, detail string) {
	if g.sink == nil {
		return
	}
	g.sink(Event{Type: t, Player: player, Detail: detail, Timestamp: g.clock.Now()})
}

// extractAnswer pulls the answer out of the "display（answer）" suggestion
// format the host panel produces, taking the last parenthesized run. Plain
// text passes through unchanged.
func extractAnswer(text string) string {
	for _, pair := range [][2]string{{"（", "）"}, {"(", ")"}} {
		start := strings.LastIndex(text, pair[0])
		end := strings.LastIndex(text, pair[1])
		if start >= 0 && end > start {
			return text[start+len(pair[0]) : end]
		}
	}
	return text
}
