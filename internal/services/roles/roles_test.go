package roles

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sketchduel/client/internal/models"
)

type RolesTestSuite struct {
	suite.Suite
}

func TestRolesTestSuite(t *testing.T) {
	suite.Run(t, new(RolesTestSuite))
}

func readySession() *models.GameSession {
	return &models.GameSession{
		ID: "test-session-id",
		Players: []*models.Player{
			{ID: "player-a", Name: "A", Team: models.TeamRed},
			{ID: "player-b", Name: "B", Team: models.TeamRed},
			{ID: "player-c", Name: "C", Team: models.TeamBlue},
			{ID: "player-d", Name: "D", Team: models.TeamBlue},
		},
	}
}

func (s *RolesTestSuite) TestAssignInitialRolesByJoinOrder() {
	session := readySession()

	assigned := AssignInitialRoles(session)

	s.Equal(models.RoleDrawer, assigned.FindPlayer("player-a").Role)
	s.Equal(models.RoleGuesser, assigned.FindPlayer("player-b").Role)
	s.Equal(models.RoleDrawer, assigned.FindPlayer("player-c").Role)
	s.Equal(models.RoleGuesser, assigned.FindPlayer("player-d").Role)
	s.True(AreRolesValid(assigned))
	s.True(AllPlayersHaveRoles(assigned))
}

func (s *RolesTestSuite) TestAssignInitialRolesDoesNotMutateInput() {
	session := readySession()

	AssignInitialRoles(session)

	for _, p := range session.Players {
		s.Equal(models.RoleUnset, p.Role)
	}
}

func (s *RolesTestSuite) TestAssignInitialRolesIsIdempotent() {
	assigned := AssignInitialRoles(readySession())
	reassigned := AssignInitialRoles(assigned)

	for i, p := range assigned.Players {
		s.Equal(p.Role, reassigned.Players[i].Role)
	}
}

func (s *RolesTestSuite) TestIncompleteSessionIsReturnedUnmodified() {
	session := &models.GameSession{
		Players: []*models.Player{
			{ID: "player-a", Team: models.TeamRed},
			{ID: "player-b", Team: models.TeamRed},
			{ID: "player-c", Team: models.TeamBlue},
		},
	}

	result := AssignInitialRoles(session)

	s.Same(session, result)
	s.False(AreRolesValid(result))
	s.False(AllPlayersHaveRoles(result))
}

func (s *RolesTestSuite) TestOverfullTeamIsNotAssigned() {
	session := readySession()
	session.Players = append(session.Players, &models.Player{ID: "player-e", Team: models.TeamRed})

	result := AssignInitialRoles(session)

	s.Same(session, result)
}

func (s *RolesTestSuite) TestIsReady() {
	s.True(IsReady(readySession()))
	s.False(IsReady(nil))
	s.False(IsReady(&models.GameSession{}))

	uneven := readySession()
	uneven.Players[3].Team = models.TeamRed
	s.False(IsReady(uneven))
}

func (s *RolesTestSuite) TestAreRolesValidRejectsBadDistributions() {
	twoDrawers := readySession()
	twoDrawers.Players[0].Role = models.RoleDrawer
	twoDrawers.Players[1].Role = models.RoleDrawer
	twoDrawers.Players[2].Role = models.RoleDrawer
	twoDrawers.Players[3].Role = models.RoleGuesser
	s.False(AreRolesValid(twoDrawers))

	zeroGuessers := readySession()
	for _, p := range zeroGuessers.Players {
		p.Role = models.RoleDrawer
	}
	s.False(AreRolesValid(zeroGuessers))

	unassigned := readySession()
	s.False(AreRolesValid(unassigned))
	s.False(AreRolesValid(nil))
}

func (s *RolesTestSuite) TestAllPlayersHaveRoles() {
	s.False(AllPlayersHaveRoles(nil))
	s.False(AllPlayersHaveRoles(&models.GameSession{}))

	partially := readySession()
	partially.Players[0].Role = models.RoleDrawer
	s.False(AllPlayersHaveRoles(partially))
}
