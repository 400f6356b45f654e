package sync

import (
	"context"

	"github.com/sketchduel/client/internal/models"
)

// Service defines the interface for the session synchronizer: the polling
// loop that keeps local state reconciled with the remote session, plus the
// client-side game operations that feed the local working set.
type Service interface {
	// Start begins the polling loop and arms the phase transition watchers
	Start(ctx context.Context) error

	// Stop cancels the polling loop. In-flight requests complete and their
	// results are discarded.
	Stop()

	// Sync runs one fetch/reconcile/publish cycle immediately
	Sync(ctx context.Context) error

	// Snapshot returns the latest published snapshot, nil before the first
	// successful cycle
	Snapshot() *models.Snapshot

	// OnSnapshot registers a handler for every published snapshot
	OnSnapshot(handler SnapshotHandler)

	// OnTransition registers a handler for one-shot phase transitions
	OnTransition(handler TransitionHandler)

	// JoinTeam joins the session on the given team
	JoinTeam(ctx context.Context, input *JoinTeamInput) error

	// LeaveSession removes this client's player from the session
	LeaveSession(ctx context.Context) error

	// ChangeTeam moves this client's player to another team
	ChangeTeam(ctx context.Context, input *ChangeTeamInput) error

	// StartMatch moves the session out of the lobby, host only
	StartMatch(ctx context.Context) error

	// SubmitChallenge submits a word template and adds the created
	// challenge to the local working set
	SubmitChallenge(ctx context.Context, input *SubmitChallengeInput) (*SubmitChallengeOutput, error)

	// AdoptChallenge pulls a remotely known challenge into the local
	// working set, typically so a guesser can answer it
	AdoptChallenge(input *AdoptChallengeInput) error

	// SetDraftPrompt stores in-progress prompt text locally after
	// validating it against the challenge's words
	SetDraftPrompt(input *SetDraftPromptInput) error

	// SubmitPrompt irrevocably submits the draft prompt and generates the
	// image, rolling local state back if the call fails
	SubmitPrompt(ctx context.Context, input *SubmitPromptInput) (*SubmitPromptOutput, error)

	// RegenerateImage re-generates a challenge's image, capped per challenge
	RegenerateImage(ctx context.Context, input *RegenerateImageInput) (*RegenerateImageOutput, error)

	// SubmitAnswer submits the guesser's answer for a challenge
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) error
}
