package remote

import "github.com/sketchduel/client/internal/models"

type CreateSessionInput struct {
	// HostName is the display name of the creating player
	HostName string
}

type CreateSessionOutput struct {
	Session *models.GameSession
}

type JoinSessionInput struct {
	SessionID string

	// PlayerID identifies the joining player
	PlayerID string

	// PlayerName is the joining player's display name
	PlayerName string

	// Team is the desired team color
	Team models.TeamColor
}

type LeaveSessionInput struct {
	SessionID string
	PlayerID  string
}

type ChangeTeamInput struct {
	SessionID string
	PlayerID  string

	// Team is the new team color
	Team models.TeamColor
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionOutput struct {
	Session *models.GameSession
}

type GetSessionStatusInput struct {
	SessionID string
}

type GetSessionStatusOutput struct {
	Status models.SessionStatus
}

type StartSessionInput struct {
	SessionID string
	PlayerID  string
}

type ListChallengesInput struct {
	SessionID string
}

type ListChallengesOutput struct {
	Challenges []*models.Challenge
}

type SubmitChallengeInput struct {
	SessionID string
	PlayerID  string

	// Words are the five words forming the sentence template
	Words [5]string

	// ForbiddenWords are the three words a prompt must avoid
	ForbiddenWords [3]string
}

type SubmitChallengeOutput struct {
	Challenge *models.Challenge
}

type SubmitPromptInput struct {
	SessionID   string
	ChallengeID string
	PlayerID    string

	// Prompt is the drawer's image-generation prompt text
	Prompt string
}

type SubmitPromptOutput struct {
	// ImageURL is the reference to the generated image
	ImageURL string
}

type SubmitAnswerInput struct {
	SessionID   string
	ChallengeID string
	PlayerID    string

	// Answer is the guesser's answer text
	Answer string

	// Resolved marks the challenge as answered correctly
	Resolved bool
}
