package remote

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/sketchduel/client/internal/remote Client

// Client defines the remote session API. The remote service is poll-only:
// there is no push channel, so all state flows through GetSession and
// ListChallenges. Error strings returned by the service are the only error
// signal; Classify converts them into tagged variants at this boundary.
type Client interface {
	// CreateSession creates a new game session and returns its snapshot
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// JoinSession adds a player to a session on the given team
	JoinSession(ctx context.Context, input *JoinSessionInput) error

	// LeaveSession removes a player from a session
	LeaveSession(ctx context.Context, input *LeaveSessionInput) error

	// ChangeTeam moves a player to the other team while in the lobby
	ChangeTeam(ctx context.Context, input *ChangeTeamInput) error

	// GetSession retrieves the full authoritative session snapshot
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetSessionStatus retrieves just the session lifecycle status
	GetSessionStatus(ctx context.Context, input *GetSessionStatusInput) (*GetSessionStatusOutput, error)

	// StartSession moves the session out of the lobby, host only
	StartSession(ctx context.Context, input *StartSessionInput) error

	// ListChallenges retrieves all challenges for a session
	ListChallenges(ctx context.Context, input *ListChallengesInput) (*ListChallengesOutput, error)

	// SubmitChallenge creates a new challenge from a word template
	SubmitChallenge(ctx context.Context, input *SubmitChallengeInput) (*SubmitChallengeOutput, error)

	// SubmitPrompt submits the drawer's prompt and synchronously generates
	// the image, returning its reference
	SubmitPrompt(ctx context.Context, input *SubmitPromptInput) (*SubmitPromptOutput, error)

	// SubmitAnswer submits the guesser's answer for a challenge
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) error
}
