// Package reconcile merges locally-composed challenge state with the
// server-authoritative snapshot fetched on each poll. The local collection
// defines which challenges are being worked on; the server decides image
// references, resolution and phase.
package reconcile

import (
	"github.com/sketchduel/client/internal/models"
)

// Merge reconciles the local challenge collection against a remote snapshot.
// For every local challenge with a remote counterpart, the locally-composed
// prompt and answer win unless empty, the server-computed image reference,
// resolved flag, phase and completion time always win, and the immutable
// template fields are copied from the local entity. Local challenges without
// a remote counterpart are kept verbatim; remote-only challenges are never
// introduced. Output order equals local input order, and neither input is
// mutated.
func Merge(local, remote []*models.Challenge) []*models.Challenge {
	if len(local) == 0 {
		return nil
	}
	if len(remote) == 0 {
		return Snapshot(local)
	}

	remoteByID := make(map[string]*models.Challenge, len(remote))
	for _, challenge := range remote {
		remoteByID[challenge.ID] = challenge
	}

	merged := make([]*models.Challenge, 0, len(local))
	for _, localChallenge := range local {
		remoteChallenge, ok := remoteByID[localChallenge.ID]
		if !ok {
			merged = append(merged, localChallenge.Clone())
			continue
		}

		entry := localChallenge.Clone()
		if entry.Prompt == "" {
			entry.Prompt = remoteChallenge.Prompt
		}
		if entry.Answer == "" {
			entry.Answer = remoteChallenge.Answer
		}
		entry.ImageURL = remoteChallenge.ImageURL
		entry.Resolved = remoteChallenge.Resolved
		entry.Phase = remoteChallenge.Phase
		entry.CompletedAt = remoteChallenge.CompletedAt
		merged = append(merged, entry)
	}
	return merged
}

// Snapshot returns an independent deep copy of the challenge collection,
// used to checkpoint state before a risky remote operation.
func Snapshot(challenges []*models.Challenge) []*models.Challenge {
	if challenges == nil {
		return nil
	}
	copied := make([]*models.Challenge, 0, len(challenges))
	for _, challenge := range challenges {
		copied = append(copied, challenge.Clone())
	}
	return copied
}

// Restore returns an independent deep copy of a previously taken snapshot,
// so the restored state cannot alias the checkpoint.
func Restore(snapshot []*models.Challenge) []*models.Challenge {
	return Snapshot(snapshot)
}
