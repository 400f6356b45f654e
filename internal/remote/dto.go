package remote

import (
	"time"

	"github.com/sketchduel/client/internal/models"
)

// Wire representations of the session API's JSON payloads.

type playerDTO struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Team                string `json:"team"`
	Role                string `json:"role"`
	IsHost              bool   `json:"is_host"`
	ChallengesSubmitted int    `json:"challenges_submitted"`
	ChallengesDrawn     int    `json:"challenges_drawn"`
	ChallengesGuessed   int    `json:"challenges_guessed"`
}

type sessionDTO struct {
	ID                    string         `json:"id"`
	Status                string         `json:"status"`
	Phase                 string         `json:"phase"`
	Players               []playerDTO    `json:"players"`
	Scores                map[string]int `json:"scores"`
	CurrentChallengeIndex int            `json:"current_challenge_index"`
	HostID                string         `json:"host_id"`
	CreatedAt             time.Time      `json:"created_at"`
	StartedAt             time.Time      `json:"started_at"`
}

type challengeDTO struct {
	ID             string    `json:"id"`
	Words          []string  `json:"words"`
	ForbiddenWords []string  `json:"forbidden_words"`
	Prompt         string    `json:"prompt"`
	ImageURL       string    `json:"image_url"`
	Answer         string    `json:"answer"`
	Resolved       bool      `json:"resolved"`
	Phase          string    `json:"phase"`
	Regenerations  int       `json:"regenerations"`
	CompletedAt    time.Time `json:"completed_at"`
}

func (d *playerDTO) toModel() *models.Player {
	return &models.Player{
		ID:                  d.ID,
		Name:                d.Name,
		Team:                models.TeamColor(d.Team),
		Role:                models.Role(d.Role),
		IsHost:              d.IsHost,
		ChallengesSubmitted: d.ChallengesSubmitted,
		ChallengesDrawn:     d.ChallengesDrawn,
		ChallengesGuessed:   d.ChallengesGuessed,
	}
}

func (d *sessionDTO) toModel() *models.GameSession {
	session := &models.GameSession{
		ID:                    d.ID,
		Status:                models.SessionStatus(d.Status),
		Phase:                 models.RoundPhase(d.Phase),
		Scores:                make(map[models.TeamColor]int, len(d.Scores)),
		CurrentChallengeIndex: d.CurrentChallengeIndex,
		HostID:                d.HostID,
		CreatedAt:             d.CreatedAt,
		StartedAt:             d.StartedAt,
	}
	for i := range d.Players {
		session.Players = append(session.Players, d.Players[i].toModel())
	}
	for color, score := range d.Scores {
		session.Scores[models.TeamColor(color)] = score
	}
	return session
}

func (d *challengeDTO) toModel() *models.Challenge {
	challenge := &models.Challenge{
		ID:            d.ID,
		Prompt:        d.Prompt,
		ImageURL:      d.ImageURL,
		Answer:        d.Answer,
		Resolved:      d.Resolved,
		Phase:         models.ChallengePhase(d.Phase),
		Regenerations: d.Regenerations,
		CompletedAt:   d.CompletedAt,
	}
	copy(challenge.Words[:], d.Words)
	copy(challenge.ForbiddenWords[:], d.ForbiddenWords)
	return challenge
}
