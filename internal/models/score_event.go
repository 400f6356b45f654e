package models

import (
	"time"
)

// ScoreReason represents why a team's score changed
type ScoreReason string

const (
	// ScoreReasonWordFound indicates a guesser found the target sentence
	ScoreReasonWordFound ScoreReason = "word_found"

	// ScoreReasonWrongGuess indicates a guesser submitted an incorrect answer
	ScoreReasonWrongGuess ScoreReason = "wrong_guess"

	// ScoreReasonImageRegenerated indicates a drawer regenerated an image
	ScoreReasonImageRegenerated ScoreReason = "image_regenerated"

	// ScoreReasonRemoteSync indicates a hard sync to the server's authoritative score
	ScoreReasonRemoteSync ScoreReason = "remote_sync"
)

// ScoreEvent records a single score change for a team. Events are append-only
// and never deleted.
type ScoreEvent struct {
	// ID is the unique identifier for the event
	ID string

	// Team is the team whose score changed
	Team TeamColor

	// PreviousScore is the team's score before the change
	PreviousScore int

	// NewScore is the team's score after the change
	NewScore int

	// Delta is the signed change that was requested
	Delta int

	// Reason is why the score changed
	Reason ScoreReason

	// Timestamp is when the change was applied
	Timestamp time.Time
}
