package models

import (
	"time"
)

// SessionStatus represents the lifecycle state of a game session
type SessionStatus string

const (
	// SessionStatusLobby indicates the session is waiting for players to join teams
	SessionStatusLobby SessionStatus = "lobby"

	// SessionStatusChallenge indicates players are submitting challenge definitions
	SessionStatusChallenge SessionStatus = "challenge"

	// SessionStatusPlaying indicates the drawing/guessing round is in progress
	SessionStatusPlaying SessionStatus = "playing"

	// SessionStatusFinished indicates the session has concluded
	SessionStatusFinished SessionStatus = "finished"
)

// RoundPhase is the sub-state of a playing session
type RoundPhase string

const (
	// RoundPhaseDrawing indicates drawers are still producing images
	RoundPhaseDrawing RoundPhase = "drawing"

	// RoundPhaseGuessing indicates guessers are submitting answers
	RoundPhaseGuessing RoundPhase = "guessing"
)

// GameSession represents one match. The remote service owns the authoritative
// copy; each successful fetch replaces the session wholesale rather than
// patching fields in place.
type GameSession struct {
	// ID is the unique identifier for the session
	ID string

	// Status is the current lifecycle state
	Status SessionStatus

	// Phase is the active sub-state while Status is playing
	Phase RoundPhase

	// Players holds all participants in join order
	Players []*Player

	// Scores maps each team color to its current score
	Scores map[TeamColor]int

	// CurrentChallengeIndex is the index of the challenge being played
	CurrentChallengeIndex int

	// HostID is the player ID of the session host
	HostID string

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// StartedAt is when the playing round began, zero until then
	StartedAt time.Time
}

// PlayersOnTeam returns the session's players with the given color, preserving
// join order.
func (s *GameSession) PlayersOnTeam(color TeamColor) []*Player {
	var players []*Player
	for _, p := range s.Players {
		if p.Team == color {
			players = append(players, p)
		}
	}
	return players
}

// FindPlayer returns the player with the given ID, or nil if absent.
func (s *GameSession) FindPlayer(playerID string) *Player {
	for _, p := range s.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// Clone returns an independent deep copy of the session
func (s *GameSession) Clone() *GameSession {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Players = make([]*Player, 0, len(s.Players))
	for _, p := range s.Players {
		clone.Players = append(clone.Players, p.Clone())
	}
	if s.Scores != nil {
		clone.Scores = make(map[TeamColor]int, len(s.Scores))
		for color, score := range s.Scores {
			clone.Scores[color] = score
		}
	}
	return &clone
}
