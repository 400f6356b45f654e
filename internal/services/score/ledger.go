// Package score is the event-sourced score engine for a session. Scores are
// derived purely from applied deltas, clamped at zero, with every change
// captured as an append-only ScoreEvent. The ledger does no I/O; persistence
// hangs off the observer hook.
package score

import (
	"errors"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/sketchduel/client/internal/common/uuid"
	"github.com/sketchduel/client/internal/models"
)

// Ledger tracks per-team scores and the full score event history
type Ledger struct {
	clock  clockwork.Clock
	uuids  uuid.UUID
	mu     sync.Mutex
	scores map[models.TeamColor]int
	events []*models.ScoreEvent

	observers []Observer
}

// NewLedger creates a new score ledger with both teams at zero
func NewLedger(cfg *Config) (*Ledger, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	return &Ledger{
		clock: cfg.Clock,
		uuids: cfg.UUIDGenerator,
		scores: map[models.TeamColor]int{
			models.TeamRed:  0,
			models.TeamBlue: 0,
		},
	}, nil
}

// Subscribe registers an observer for future score events
func (l *Ledger) Subscribe(observer Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, observer)
}

// AddPoints increases a team's score. Non-positive amounts are a no-op and
// record no event.
func (l *Ledger) AddPoints(team models.TeamColor, amount int, reason models.ScoreReason) {
	if amount <= 0 {
		return
	}
	l.applyDelta(team, amount, reason)
}

// SubtractPoints decreases a team's score, clamped at zero. Non-positive
// amounts are a no-op and record no event.
func (l *Ledger) SubtractPoints(team models.TeamColor, amount int, reason models.ScoreReason) {
	if amount <= 0 {
		return
	}
	l.applyDelta(team, -amount, reason)
}

// SetScore hard-syncs a team to an absolute score, used to adopt the remote
// authoritative value without losing history. The equivalent delta routes
// through the same path as every other change; setting the current score is
// a no-op.
func (l *Ledger) SetScore(team models.TeamColor, absolute int, reason models.ScoreReason) {
	if absolute < 0 {
		absolute = 0
	}

	l.mu.Lock()
	delta := absolute - l.scores[team]
	l.mu.Unlock()

	if delta == 0 {
		return
	}
	l.applyDelta(team, delta, reason)
}

// RecordWordFound awards the fixed word-found bonus
func (l *Ledger) RecordWordFound(team models.TeamColor) {
	l.AddPoints(team, WordFoundPoints, models.ScoreReasonWordFound)
}

// RecordWrongGuess applies the fixed wrong-guess penalty
func (l *Ledger) RecordWrongGuess(team models.TeamColor) {
	l.SubtractPoints(team, WrongGuessPenalty, models.ScoreReasonWrongGuess)
}

// RecordImageRegenerated applies the fixed regeneration penalty
func (l *Ledger) RecordImageRegenerated(team models.TeamColor) {
	l.SubtractPoints(team, RegenerationPenalty, models.ScoreReasonImageRegenerated)
}

// applyDelta is the single path every score change takes
func (l *Ledger) applyDelta(team models.TeamColor, delta int, reason models.ScoreReason) {
	l.mu.Lock()

	previous := l.scores[team]
	updated := previous + delta
	if updated < 0 {
		updated = 0
	}
	l.scores[team] = updated

	event := &models.ScoreEvent{
		ID:            l.uuids.NewUUID(),
		Team:          team,
		PreviousScore: previous,
		NewScore:      updated,
		Delta:         delta,
		Reason:        reason,
		Timestamp:     l.clock.Now(),
	}
	l.events = append(l.events, event)
	observers := make([]Observer, len(l.observers))
	copy(observers, l.observers)

	l.mu.Unlock()

	for _, observer := range observers {
		observer(event)
	}
}

// GetScore returns a team's current score
func (l *Ledger) GetScore(team models.TeamColor) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.scores[team]
}

// History returns the score events applied so far, oldest first
func (l *Ledger) History() []*models.ScoreEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	history := make([]*models.ScoreEvent, len(l.events))
	copy(history, l.events)
	return history
}

// GetWinner returns the team with the strictly higher score, or a tie
func (l *Ledger) GetWinner() Winner {
	l.mu.Lock()
	defer l.mu.Unlock()

	red := l.scores[models.TeamRed]
	blue := l.scores[models.TeamBlue]
	switch {
	case red > blue:
		return Winner{Team: models.TeamRed}
	case blue > red:
		return Winner{Team: models.TeamBlue}
	default:
		return Winner{Tie: true}
	}
}

// Replay reapplies a previously journaled event stream onto a fresh ledger,
// rebuilding scores and history without emitting observer notifications.
// Used to recover state after a client restart.
func (l *Ledger) Replay(events []*models.ScoreEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, event := range events {
		l.scores[event.Team] = event.NewScore
		l.events = append(l.events, event)
	}
}
