package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record is one submitted answer in a player's history.
type Record struct {
	Text    string
	Correct bool
	At      time.Time
}

// Player represents a participant. Budgets (passes, wrong answers) are fixed
// at creation; the Left counters are runtime state reset on game start.
type Player struct {
	ID          string
	Name        string
	BaseSeconds int // thinking time per turn
	PassLimit   int
	WrongLimit  int

	PassesLeft int
	WrongLeft  int
	Eliminated bool

	History []Record
}

// NewPlayer creates a new player with the given name and budgets.
func NewPlayer(name string, baseSeconds, passLimit, wrongLimit int) *Player {
	p := &Player{
		ID:          uuid.NewString()[:8],
		Name:        name,
		BaseSeconds: baseSeconds,
		PassLimit:   passLimit,
		WrongLimit:  wrongLimit,
	}
	p.ResetRuntime()
	return p
}

// ResetRuntime restores budgets and clears per-game state.
func (p *Player) ResetRuntime() {
	p.PassesLeft = p.PassLimit
	p.WrongLeft = p.WrongLimit
	p.Eliminated = false
	p.History = nil
}

// consumeWrong spends one wrong-answer credit. Returns false when the budget
// was already exhausted.
func (p *Player) consumeWrong() bool {
	if p.WrongLeft > 0 {
		p.WrongLeft--
		return true
	}
	return false
}

// resetWrong restores the wrong-answer budget, done on a correct answer.
func (p *Player) resetWrong() {
	p.WrongLeft = p.WrongLimit
}

// CanPass reports whether the player has pass credits left.
func (p *Player) CanPass() bool {
	return p.PassesLeft > 0
}

// consumePass spends one pass credit. Returns false when none remain.
func (p *Player) consumePass() bool {
	if p.CanPass() {
		p.PassesLeft--
		return true
	}
	return false
}

// record appends an answer to the player's history.
func (p *Player) record(text string, correct bool, at time.Time) {
	p.History = append(p.History, Record{Text: text, Correct: correct, At: at})
}
