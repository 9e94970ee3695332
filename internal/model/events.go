package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventRoundStarted    EventType = "round_started"
	EventWordAccepted    EventType = "word_accepted"
	EventWordRejected    EventType = "word_rejected"
	EventHighScoreRaised EventType = "high_score_raised"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	Round     int
	Payload   any // Type-specific data
}

// RoundStartedPayload contains data for round started events
type RoundStartedPayload struct {
	RootWord string
}

// WordAcceptedPayload contains data for word accepted events
type WordAcceptedPayload struct {
	Word  string
	Score int
}

// WordRejectedPayload contains data for word rejected events
type WordRejectedPayload struct {
	Word   string
	Reason RejectReason
}

// HighScoreRaisedPayload contains data for high score raised events
type HighScoreRaisedPayload struct {
	Previous int
	Current  int
}

// Listener receives engine events. Implementations must not call back into the engine.
type Listener func(Event)
