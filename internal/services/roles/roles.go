// Package roles holds the deterministic drawer/guesser assignment rules.
// All functions are pure: they never mutate their input session.
package roles

import (
	"github.com/sketchduel/client/internal/models"
)

// PlayersPerTeam is how many players make a team complete
const PlayersPerTeam = 2

var teamColors = []models.TeamColor{models.TeamRed, models.TeamBlue}

// IsReady reports whether the session has exactly two complete teams, the
// precondition for role assignment.
func IsReady(session *models.GameSession) bool {
	if session == nil {
		return false
	}
	for _, color := range teamColors {
		if len(session.PlayersOnTeam(color)) != PlayersPerTeam {
			return false
		}
	}
	return len(session.Players) == PlayersPerTeam*len(teamColors)
}

// AssignInitialRoles returns a copy of the session with roles assigned: per
// team, the first player in join order becomes the drawer and the second the
// guesser. If the session is not ready the input is returned unmodified, no
// partial assignment. Reassigning an already-assigned session yields the
// identical result.
func AssignInitialRoles(session *models.GameSession) *models.GameSession {
	if !IsReady(session) {
		return session
	}

	assigned := session.Clone()
	for _, color := range teamColors {
		team := assigned.PlayersOnTeam(color)
		team[0].Role = models.RoleDrawer
		team[1].Role = models.RoleGuesser
	}
	return assigned
}

// AllPlayersHaveRoles reports whether every player in the session has a
// non-empty role.
func AllPlayersHaveRoles(session *models.GameSession) bool {
	if session == nil || len(session.Players) == 0 {
		return false
	}
	for _, p := range session.Players {
		if p.Role == models.RoleUnset {
			return false
		}
	}
	return true
}

// AreRolesValid reports whether every team has exactly two players with
// exactly one drawer and one guesser. Any other distribution, including
// incomplete teams, is invalid.
func AreRolesValid(session *models.GameSession) bool {
	if session == nil {
		return false
	}
	for _, color := range teamColors {
		team := session.PlayersOnTeam(color)
		if len(team) != PlayersPerTeam {
			return false
		}
		var drawers, guessers int
		for _, p := range team {
			switch p.Role {
			case models.RoleDrawer:
				drawers++
			case models.RoleGuesser:
				guessers++
			}
		}
		if drawers != 1 || guessers != 1 {
			return false
		}
	}
	return true
}
