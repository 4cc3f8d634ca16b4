package domain

import "errors"

// Domain errors. These signal caller bugs or missing setup, never a normal
// game-rule rejection: rejections travel as Outcome values.
var (
	ErrNoAnswerList   = errors.New("no answer list loaded")
	ErrNoPlayers      = errors.New("no players in the game")
	ErrNotRunning     = errors.New("game is not running")
	ErrGameOver       = errors.New("game is already over")
	ErrInvalidPhase   = errors.New("invalid action for current phase")
	ErrPlayerNotFound = errors.New("player not found")
	ErrDuplicateName  = errors.New("player name already taken")
	ErrInvalidName    = errors.New("player name must be 1-60 characters")
	ErrGameInProgress = errors.New("cannot modify players mid-game")
)
