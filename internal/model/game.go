package model

import "time"

// RoundState represents whether the engine has a root word yet
type RoundState string

const (
	RoundStateUninitialized RoundState = "uninitialized" // No root word chosen yet
	RoundStateInProgress    RoundState = "in_progress"   // Root word set, accepting guesses
)

// RejectReason identifies which validation step refused a submission.
// Callers outside tests and diagnostics should only look at Accepted.
type RejectReason string

const (
	ReasonNone       RejectReason = ""
	ReasonEmpty      RejectReason = "empty"
	ReasonNotLetters RejectReason = "not_letters"
	ReasonDuplicate  RejectReason = "duplicate"
	ReasonNotInRoot  RejectReason = "not_in_root"
	ReasonMisspelled RejectReason = "misspelled"
)

// SubmitResult is the outcome of a single submission attempt
type SubmitResult struct {
	Accepted bool
	Reason   RejectReason
	// Word is the input exactly as submitted
	Word string
}

// Snapshot is a read-only view of the engine state for display
type Snapshot struct {
	State          RoundState
	Round          int
	RootWord       string
	Guesses        []string // most recent first
	Score          int
	HighScore      int
	Input          string
	RoundStartedAt time.Time
}
