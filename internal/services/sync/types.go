package sync

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sketchduel/client/internal/models"
	"github.com/sketchduel/client/internal/remote"
)

const (
	// DefaultPollInterval is how often the remote session is fetched.
	// Polling is a deliberate constraint of the remote API, which offers
	// no push channel.
	DefaultPollInterval = 2 * time.Second

	// DefaultRequiredChallenges is how many challenges each player submits
	DefaultRequiredChallenges = 3

	// DefaultRoundDuration caps the playing round
	DefaultRoundDuration = 5 * time.Minute
)

// Transition identifies a one-shot phase boundary
type Transition string

const (
	// TransitionPlayingStarted fires when every player has submitted their
	// required challenges and the round begins
	TransitionPlayingStarted Transition = "playing_started"

	// TransitionGuessingStarted fires when every player has produced their
	// image and guessing begins
	TransitionGuessingStarted Transition = "guessing_started"

	// TransitionFinished fires when every player has finished guessing or
	// the round duration elapses, whichever comes first
	TransitionFinished Transition = "finished"
)

// SnapshotHandler receives every published snapshot. Handlers must not
// mutate the snapshot.
type SnapshotHandler func(snapshot *models.Snapshot)

// TransitionHandler receives one-shot phase transitions
type TransitionHandler func(transition Transition)

// Config holds configuration for the session synchronizer
type Config struct {
	// Client is the remote session API, normally the resilient wrapper
	Client remote.Client

	// Clock drives the polling ticker and round timing
	Clock clockwork.Clock

	// Logger records polling and transition activity
	Logger zerolog.Logger

	// SessionID is the session this synchronizer drives
	SessionID string

	// PlayerID identifies this client's player
	PlayerID string

	// PlayerName is this client's display name
	PlayerName string

	// PollInterval overrides DefaultPollInterval when positive
	PollInterval time.Duration

	// RequiredChallenges overrides DefaultRequiredChallenges when positive
	RequiredChallenges int

	// RoundDuration overrides DefaultRoundDuration when positive
	RoundDuration time.Duration
}

type JoinTeamInput struct {
	// Team is the desired team color
	Team models.TeamColor
}

type ChangeTeamInput struct {
	// Team is the new team color
	Team models.TeamColor
}

type SubmitChallengeInput struct {
	// Words are the five words forming the sentence template
	Words [5]string

	// ForbiddenWords are the three words a prompt must avoid
	ForbiddenWords [3]string
}

type SubmitChallengeOutput struct {
	Challenge *models.Challenge
}

type AdoptChallengeInput struct {
	ChallengeID string
}

type SetDraftPromptInput struct {
	ChallengeID string

	// Prompt is the in-progress prompt text
	Prompt string
}

type SubmitPromptInput struct {
	ChallengeID string
}

type SubmitPromptOutput struct {
	// ImageURL is the reference to the generated image
	ImageURL string
}

type RegenerateImageInput struct {
	ChallengeID string
}

type RegenerateImageOutput struct {
	// ImageURL is the reference to the regenerated image
	ImageURL string

	// Regenerations is how many regenerations the challenge has used
	Regenerations int
}

type SubmitAnswerInput struct {
	ChallengeID string

	// Answer is the guesser's answer text
	Answer string

	// Resolved marks the challenge as answered correctly
	Resolved bool
}
