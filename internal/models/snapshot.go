package models

import (
	"time"
)

// Snapshot is one reconciled view of a session: the authoritative session
// state merged with locally-composed challenge fields. Snapshots are
// immutable once published; each reconciliation cycle produces a new one.
type Snapshot struct {
	// Session is the merged session state
	Session *GameSession

	// Challenges is the merged challenge collection, local order preserved
	Challenges []*Challenge

	// FetchedAt is when the underlying remote fetch completed
	FetchedAt time.Time
}

// Clone returns an independent deep copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	clone := &Snapshot{
		Session:   s.Session.Clone(),
		FetchedAt: s.FetchedAt,
	}
	for _, challenge := range s.Challenges {
		clone.Challenges = append(clone.Challenges, challenge.Clone())
	}
	return clone
}
