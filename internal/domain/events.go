package domain

import "time"

// EventType represents the type of game event
type EventType string

const (
	EventPlayerAdded      EventType = "PLAYER_ADDED"
	EventPlayerRemoved    EventType = "PLAYER_REMOVED"
	EventGameStarted      EventType = "GAME_STARTED"
	EventAnswerAccepted   EventType = "ANSWER_ACCEPTED"
	EventAnswerRejected   EventType = "ANSWER_REJECTED"
	EventPlayerPassed     EventType = "PLAYER_PASSED"
	EventPlayerEliminated EventType = "PLAYER_ELIMINATED"
	EventTurnAdvanced     EventType = "TURN_ADVANCED"
	EventGameEnded        EventType = "GAME_ENDED"
)

// Event is a notification emitted by the engine for the presentation
// collaborator. The engine never calls back into presentation; it hands
// events to an optional sink and returns Outcome values.
type Event struct {
	Type      EventType
	Player    string // name of the player concerned, if any
	Detail    string // free-form detail (answer text, reject reason, end cause)
	Timestamp time.Time
}

// EventSink receives engine events. Must not block.
type EventSink func(Event)
