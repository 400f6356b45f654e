package snapshots

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/sketchduel/client/internal/repositories/snapshots Repository

import (
	"context"
)

// Repository caches the most recently published snapshot per session so a
// restarted client can render immediately while its first poll is still
// outstanding.
type Repository interface {
	// SaveSnapshot stores the latest snapshot for a session
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// GetSnapshot retrieves the cached snapshot for a session
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)

	// DeleteSnapshot removes the cached snapshot when a session ends
	DeleteSnapshot(ctx context.Context, input *DeleteSnapshotInput) error
}
