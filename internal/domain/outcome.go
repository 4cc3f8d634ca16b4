package domain

import "yamanote/internal/corpus"

// RejectReason says why a turn action did not score.
type RejectReason string

const (
	ReasonNotInList     RejectReason = "NOT_IN_LIST"
	ReasonAlreadyUsed   RejectReason = "ALREADY_USED"
	ReasonRuleViolation RejectReason = "RULE_VIOLATION"
	ReasonTimedOut      RejectReason = "TIMED_OUT"
	ReasonPassed        RejectReason = "PASSED"
	ReasonNoPassesLeft  RejectReason = "NO_PASSES_LEFT"
)

// Outcome is the closed result of a turn action. The presentation layer
// reacts to it (sounds, rendering); the engine itself has no side channels.
type Outcome struct {
	Accepted   bool
	Reason     RejectReason // set when not accepted
	Entry      corpus.Entry // the matched entry, set when accepted
	Player     string       // acting player's name
	WrongLeft  int          // acting player's remaining wrong-answer budget
	Eliminated bool         // this action eliminated the acting player
	GameOver   bool         // this action ended the game
}
