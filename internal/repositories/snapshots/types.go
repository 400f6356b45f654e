package snapshots

import "github.com/sketchduel/client/internal/models"

type SaveSnapshotInput struct {
	Snapshot *models.Snapshot
}

type GetSnapshotInput struct {
	SessionID string
}

type GetSnapshotOutput struct {
	Snapshot *models.Snapshot
}

type DeleteSnapshotInput struct {
	SessionID string
}
