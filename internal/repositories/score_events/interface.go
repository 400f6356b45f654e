package score_events

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/sketchduel/client/internal/repositories/score_events Repository

import (
	"context"
)

// Repository defines the interface for the score event journal. The journal
// is append-only; events are never rewritten or deleted, so a restarted
// client can rebuild its ledger by replaying them in order.
type Repository interface {
	// AppendEvent appends a score event to a session's journal
	AppendEvent(ctx context.Context, input *AppendEventInput) error

	// GetEventsForSession retrieves a session's events, oldest first
	GetEventsForSession(ctx context.Context, input *GetEventsForSessionInput) (*GetEventsForSessionOutput, error)
}
