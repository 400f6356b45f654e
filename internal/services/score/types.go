package score

import (
	"github.com/jonboulle/clockwork"
	"github.com/sketchduel/client/internal/common/uuid"
	"github.com/sketchduel/client/internal/models"
)

// Fixed magnitudes for the named game actions
const (
	// WordFoundPoints is awarded when a guesser finds the target sentence
	WordFoundPoints = 25

	// WrongGuessPenalty is deducted for an incorrect answer
	WrongGuessPenalty = 1

	// RegenerationPenalty is deducted for regenerating an image
	RegenerationPenalty = 10
)

// Config holds configuration for the score ledger
type Config struct {
	// Clock stamps score events
	Clock clockwork.Clock

	// UUIDGenerator assigns event IDs
	UUIDGenerator uuid.UUID
}

// Observer is notified after every applied score event. Observers must not
// mutate the event.
type Observer func(event *models.ScoreEvent)

// Winner is the outcome of a finished match
type Winner struct {
	// Team is the winning team, empty on a tie
	Team models.TeamColor

	// Tie indicates neither team had a strictly higher score
	Tie bool
}
