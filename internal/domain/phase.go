package domain

// Phase represents the current phase of a game session
type Phase string

const (
	PhaseIdle            Phase = "IDLE"              // No game running yet
	PhaseWaitingForInput Phase = "WAITING_FOR_INPUT" // Current player is thinking
	PhaseEvaluating      Phase = "EVALUATING"        // A submission is being judged
	PhaseTimedOut        Phase = "TIMED_OUT"         // Current player ran out of time
	PhaseGameOver        Phase = "GAME_OVER"         // Terminal state
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo checks if a transition from current phase to target phase is valid
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseIdle:            {PhaseWaitingForInput},
		PhaseWaitingForInput: {PhaseEvaluating, PhaseTimedOut, PhaseGameOver},
		PhaseEvaluating:      {PhaseWaitingForInput, PhaseGameOver},
		PhaseTimedOut:        {PhaseWaitingForInput, PhaseGameOver},
		PhaseGameOver:        {PhaseWaitingForInput}, // Restarting a session
	}

	allowed, ok := validTransitions[p]
	if !ok {
		return false
	}

	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}
