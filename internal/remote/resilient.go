package remote

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

const (
	// DefaultMaxAttempts is how many times a transient failure is attempted
	DefaultMaxAttempts = 3

	// DefaultBaseDelay is the backoff step between transient retries; the
	// actual delay is the step multiplied by the attempt number
	DefaultBaseDelay = 500 * time.Millisecond
)

// ResilientConfig holds configuration for the resilient client wrapper
type ResilientConfig struct {
	// Client is the wrapped session API client
	Client Client

	// Clock drives backoff delays
	Clock clockwork.Clock

	// Logger records retry and recovery activity
	Logger zerolog.Logger

	// MaxAttempts overrides DefaultMaxAttempts when positive
	MaxAttempts int

	// BaseDelay overrides DefaultBaseDelay when positive
	BaseDelay time.Duration
}

// Resilient wraps a session API client with transient retry, conflict
// recovery and mutation serialization. Reads (GetSession, GetSessionStatus,
// ListChallenges) are retried only; mutations additionally hold the mutation
// slot, and a mutation requested while another is in flight is dropped with
// ErrMutationInFlight rather than queued.
type Resilient struct {
	client      Client
	clock       clockwork.Clock
	logger      zerolog.Logger
	maxAttempts int
	baseDelay   time.Duration

	// mutationMu is the single mutation slot
	mutationMu sync.Mutex
}

// NewResilient creates a new resilient wrapper around a session API client
func NewResilient(cfg *ResilientConfig) (*Resilient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	baseDelay := cfg.BaseDelay
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}

	return &Resilient{
		client:      cfg.Client,
		clock:       cfg.Clock,
		logger:      cfg.Logger,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
	}, nil
}

// withRetry runs fn, retrying transient failures up to maxAttempts with a
// linearly increasing delay. Non-transient failures return immediately,
// classified. After the final attempt the last error surfaces with the
// attempt count attached.
func (r *Resilient) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	var lastErr *Error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		classified := Classify(err)
		if classified.Class != ClassTransient {
			return classified
		}
		lastErr = classified

		if attempt < r.maxAttempts {
			delay := r.baseDelay * time.Duration(attempt)
			r.logger.Warn().
				Str("op", op).
				Int("attempt", attempt).
				Dur("delay", delay).
				Err(err).
				Msg("transient failure, retrying")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-r.clock.After(delay):
			}
		}
	}

	lastErr.Attempts = r.maxAttempts
	return fmt.Errorf("%s failed after %d attempts: %w", op, r.maxAttempts, lastErr)
}

// acquireMutation claims the single mutation slot or reports that one is
// already in flight. The caller re-issues after the in-flight operation
// settles if its desired end state changed.
func (r *Resilient) acquireMutation() error {
	if !r.mutationMu.TryLock() {
		return ErrMutationInFlight
	}
	return nil
}

// CreateSession creates a new game session
func (r *Resilient) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if err := r.acquireMutation(); err != nil {
		return nil, err
	}
	defer r.mutationMu.Unlock()

	var output *CreateSessionOutput
	err := r.withRetry(ctx, "create session", func(ctx context.Context) error {
		var err error
		output, err = r.client.CreateSession(ctx, input)
		return err
	})
	return output, err
}

// JoinSession adds a player to a session, recovering from "already in
// session" conflicts: first leave-then-rejoin, and failing that a refresh to
// see whether the player is already where they want to be.
func (r *Resilient) JoinSession(ctx context.Context, input *JoinSessionInput) error {
	if err := r.acquireMutation(); err != nil {
		return err
	}
	defer r.mutationMu.Unlock()

	err := r.withRetry(ctx, "join session", func(ctx context.Context) error {
		return r.client.JoinSession(ctx, input)
	})
	if err == nil {
		return nil
	}

	switch {
	case IsJoinConflict(err):
		return r.recoverJoinConflict(ctx, input, err)
	case IsMembershipConflict(err):
		// Stale membership on the server side; refresh and try once more.
		if _, refreshErr := r.client.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID}); refreshErr != nil {
			return err
		}
		if retryErr := r.client.JoinSession(ctx, input); retryErr != nil {
			return err
		}
		return nil
	default:
		return err
	}
}

// recoverJoinConflict handles the "already in session" join failure
func (r *Resilient) recoverJoinConflict(ctx context.Context, input *JoinSessionInput, original error) error {
	r.logger.Info().
		Str("session_id", input.SessionID).
		Str("player_id", input.PlayerID).
		Msg("join conflict, attempting leave and rejoin")

	leaveErr := r.client.LeaveSession(ctx, &LeaveSessionInput{
		SessionID: input.SessionID,
		PlayerID:  input.PlayerID,
	})
	if leaveErr == nil {
		if rejoinErr := r.client.JoinSession(ctx, input); rejoinErr == nil {
			return nil
		}
	}

	// Leave-then-rejoin did not work; inspect the authoritative session.
	output, getErr := r.client.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if getErr != nil {
		return original
	}

	player := output.Session.FindPlayer(input.PlayerID)
	switch {
	case player == nil:
		return original
	case player.Team == input.Team:
		// Already present with the desired team; nothing to do.
		r.logger.Info().
			Str("session_id", input.SessionID).
			Str("player_id", input.PlayerID).
			Msg("player already joined with desired team")
		return nil
	default:
		return r.client.ChangeTeam(ctx, &ChangeTeamInput{
			SessionID: input.SessionID,
			PlayerID:  input.PlayerID,
			Team:      input.Team,
		})
	}
}

// LeaveSession removes a player from a session. A "not in session" conflict
// is verified against a refresh and treated as success when the player is
// in fact gone.
func (r *Resilient) LeaveSession(ctx context.Context, input *LeaveSessionInput) error {
	if err := r.acquireMutation(); err != nil {
		return err
	}
	defer r.mutationMu.Unlock()

	err := r.withRetry(ctx, "leave session", func(ctx context.Context) error {
		return r.client.LeaveSession(ctx, input)
	})
	if err == nil || !IsMembershipConflict(err) {
		return err
	}

	output, getErr := r.client.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if getErr != nil {
		return err
	}
	if output.Session.FindPlayer(input.PlayerID) == nil {
		return nil
	}
	return err
}

// ChangeTeam moves a player to another team, recovering from "not in
// session" by refreshing and joining with the desired team.
func (r *Resilient) ChangeTeam(ctx context.Context, input *ChangeTeamInput) error {
	if err := r.acquireMutation(); err != nil {
		return err
	}
	defer r.mutationMu.Unlock()

	err := r.withRetry(ctx, "change team", func(ctx context.Context) error {
		return r.client.ChangeTeam(ctx, input)
	})
	if err == nil || !IsMembershipConflict(err) {
		return err
	}

	output, getErr := r.client.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if getErr != nil {
		return err
	}

	player := output.Session.FindPlayer(input.PlayerID)
	if player == nil {
		if joinErr := r.client.JoinSession(ctx, &JoinSessionInput{
			SessionID: input.SessionID,
			PlayerID:  input.PlayerID,
			Team:      input.Team,
		}); joinErr != nil {
			return err
		}
		return nil
	}
	if player.Team == input.Team {
		return nil
	}
	return err
}

// GetSession retrieves the full session snapshot with transient retry
func (r *Resilient) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	var output *GetSessionOutput
	err := r.withRetry(ctx, "get session", func(ctx context.Context) error {
		var err error
		output, err = r.client.GetSession(ctx, input)
		return err
	})
	return output, err
}

// GetSessionStatus retrieves the lifecycle status with transient retry
func (r *Resilient) GetSessionStatus(ctx context.Context, input *GetSessionStatusInput) (*GetSessionStatusOutput, error) {
	var output *GetSessionStatusOutput
	err := r.withRetry(ctx, "get session status", func(ctx context.Context) error {
		var err error
		output, err = r.client.GetSessionStatus(ctx, input)
		return err
	})
	return output, err
}

// StartSession moves the session out of the lobby
func (r *Resilient) StartSession(ctx context.Context, input *StartSessionInput) error {
	if err := r.acquireMutation(); err != nil {
		return err
	}
	defer r.mutationMu.Unlock()

	return r.withRetry(ctx, "start session", func(ctx context.Context) error {
		return r.client.StartSession(ctx, input)
	})
}

// ListChallenges retrieves all challenges with transient retry
func (r *Resilient) ListChallenges(ctx context.Context, input *ListChallengesInput) (*ListChallengesOutput, error) {
	var output *ListChallengesOutput
	err := r.withRetry(ctx, "list challenges", func(ctx context.Context) error {
		var err error
		output, err = r.client.ListChallenges(ctx, input)
		return err
	})
	return output, err
}

// SubmitChallenge creates a new challenge from a word template
func (r *Resilient) SubmitChallenge(ctx context.Context, input *SubmitChallengeInput) (*SubmitChallengeOutput, error) {
	if err := r.acquireMutation(); err != nil {
		return nil, err
	}
	defer r.mutationMu.Unlock()

	var output *SubmitChallengeOutput
	err := r.withRetry(ctx, "submit challenge", func(ctx context.Context) error {
		var err error
		output, err = r.client.SubmitChallenge(ctx, input)
		return err
	})
	return output, err
}

// SubmitPrompt submits a prompt and generates the image. Submission is
// irrevocable once the service accepts it; there is no preview step.
func (r *Resilient) SubmitPrompt(ctx context.Context, input *SubmitPromptInput) (*SubmitPromptOutput, error) {
	if err := r.acquireMutation(); err != nil {
		return nil, err
	}
	defer r.mutationMu.Unlock()

	var output *SubmitPromptOutput
	err := r.withRetry(ctx, "submit prompt", func(ctx context.Context) error {
		var err error
		output, err = r.client.SubmitPrompt(ctx, input)
		return err
	})
	return output, err
}

// SubmitAnswer submits the guesser's answer for a challenge
func (r *Resilient) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) error {
	if err := r.acquireMutation(); err != nil {
		return err
	}
	defer r.mutationMu.Unlock()

	return r.withRetry(ctx, "submit answer", func(ctx context.Context) error {
		return r.client.SubmitAnswer(ctx, input)
	})
}
