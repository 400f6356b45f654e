package score_events

import "github.com/sketchduel/client/internal/models"

type AppendEventInput struct {
	// SessionID is the session the event belongs to
	SessionID string

	// Event is the score event to journal
	Event *models.ScoreEvent
}

type GetEventsForSessionInput struct {
	SessionID string
}

type GetEventsForSessionOutput struct {
	Events []*models.ScoreEvent
}
