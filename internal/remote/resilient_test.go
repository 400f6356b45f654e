package remote_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sketchduel/client/internal/models"
	"github.com/sketchduel/client/internal/remote"
	"github.com/sketchduel/client/internal/remote/mocks"
)

type ResilientTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClient *mocks.MockClient
	resilient  *remote.Resilient
	ctx        context.Context

	testSessionID string
	testPlayerID  string
	joinInput     *remote.JoinSessionInput
}

func (s *ResilientTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = mocks.NewMockClient(s.mockCtrl)
	s.ctx = context.Background()

	resilient, err := remote.NewResilient(&remote.ResilientConfig{
		Client:    s.mockClient,
		Clock:     clockwork.NewRealClock(),
		Logger:    zerolog.Nop(),
		BaseDelay: time.Millisecond,
	})
	s.Require().NoError(err)
	s.resilient = resilient

	s.testSessionID = "test-session-id"
	s.testPlayerID = "test-player-id"
	s.joinInput = &remote.JoinSessionInput{
		SessionID:  s.testSessionID,
		PlayerID:   s.testPlayerID,
		PlayerName: "Test Player",
		Team:       models.TeamRed,
	}
}

func TestResilientTestSuite(t *testing.T) {
	suite.Run(t, new(ResilientTestSuite))
}

func (s *ResilientTestSuite) sessionWith(team models.TeamColor) *remote.GetSessionOutput {
	return &remote.GetSessionOutput{
		Session: &models.GameSession{
			ID: s.testSessionID,
			Players: []*models.Player{
				{ID: s.testPlayerID, Team: team},
			},
		},
	}
}

func (s *ResilientTestSuite) TestTransientErrorsExhaustAllAttempts() {
	transient := errors.New("read tcp: connection reset by peer")
	s.mockClient.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(nil, transient).
		Times(3)

	_, err := s.resilient.GetSession(s.ctx, &remote.GetSessionInput{SessionID: s.testSessionID})

	s.Require().Error(err)
	s.Contains(err.Error(), "after 3 attempts")
	s.True(remote.IsClass(err, remote.ClassTransient))
}

func (s *ResilientTestSuite) TestTransientErrorRecoversMidway() {
	transient := errors.New("dial tcp: i/o timeout")
	expected := s.sessionWith(models.TeamRed)

	gomock.InOrder(
		s.mockClient.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(nil, transient),
		s.mockClient.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(expected, nil),
	)

	output, err := s.resilient.GetSession(s.ctx, &remote.GetSessionInput{SessionID: s.testSessionID})

	s.NoError(err)
	s.Equal(expected, output)
}

func (s *ResilientTestSuite) TestFatalErrorsPropagateImmediately() {
	fatal := errors.New("internal server error")
	s.mockClient.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(nil, fatal).
		Times(1)

	_, err := s.resilient.GetSession(s.ctx, &remote.GetSessionInput{SessionID: s.testSessionID})

	s.Require().Error(err)
	s.True(remote.IsClass(err, remote.ClassFatal))
}

func (s *ResilientTestSuite) TestJoinConflictRecoversByLeaveAndRejoin() {
	conflict := errors.New("player already in game session")

	gomock.InOrder(
		s.mockClient.EXPECT().JoinSession(gomock.Any(), s.joinInput).Return(conflict),
		s.mockClient.EXPECT().LeaveSession(gomock.Any(), gomock.Any()).Return(nil),
		s.mockClient.EXPECT().JoinSession(gomock.Any(), s.joinInput).Return(nil),
	)

	s.NoError(s.resilient.JoinSession(s.ctx, s.joinInput))
}

func (s *ResilientTestSuite) TestJoinConflictWithPlayerAlreadyOnDesiredTeam() {
	conflict := errors.New("player already in game session")

	gomock.InOrder(
		s.mockClient.EXPECT().JoinSession(gomock.Any(), s.joinInput).Return(conflict),
		s.mockClient.EXPECT().LeaveSession(gomock.Any(), gomock.Any()).Return(conflict),
		s.mockClient.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(s.sessionWith(models.TeamRed), nil),
	)

	// Already present with the requested color: success, no error surfaced
	s.NoError(s.resilient.JoinSession(s.ctx, s.joinInput))
}

func (s *ResilientTestSuite) TestJoinConflictWithWrongTeamChangesTeam() {
	conflict := errors.New("player already in game session")

	gomock.InOrder(
		s.mockClient.EXPECT().JoinSession(gomock.Any(), s.joinInput).Return(conflict),
		s.mockClient.EXPECT().LeaveSession(gomock.Any(), gomock.Any()).Return(conflict),
		s.mockClient.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(s.sessionWith(models.TeamBlue), nil),
		s.mockClient.EXPECT().ChangeTeam(gomock.Any(), &remote.ChangeTeamInput{
			SessionID: s.testSessionID,
			PlayerID:  s.testPlayerID,
			Team:      models.TeamRed,
		}).Return(nil),
	)

	s.NoError(s.resilient.JoinSession(s.ctx, s.joinInput))
}

func (s *ResilientTestSuite) TestJoinConflictWithPlayerAbsentEscalatesOriginalError() {
	conflict := errors.New("player already in game session")
	empty := &remote.GetSessionOutput{Session: &models.GameSession{ID: s.testSessionID}}

	gomock.InOrder(
		s.mockClient.EXPECT().JoinSession(gomock.Any(), s.joinInput).Return(conflict),
		s.mockClient.EXPECT().LeaveSession(gomock.Any(), gomock.Any()).Return(conflict),
		s.mockClient.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(empty, nil),
	)

	err := s.resilient.JoinSession(s.ctx, s.joinInput)

	s.Require().Error(err)
	s.True(remote.IsClass(err, remote.ClassConflict))
}

func (s *ResilientTestSuite) TestJoinNotInSessionRefreshesAndRetriesOnce() {
	notIn := errors.New("player not in game session")

	gomock.InOrder(
		s.mockClient.EXPECT().JoinSession(gomock.Any(), s.joinInput).Return(notIn),
		s.mockClient.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(s.sessionWith(models.TeamRed), nil),
		s.mockClient.EXPECT().JoinSession(gomock.Any(), s.joinInput).Return(nil),
	)

	s.NoError(s.resilient.JoinSession(s.ctx, s.joinInput))
}

func (s *ResilientTestSuite) TestLeaveNotInSessionVerifiedAgainstRefresh() {
	notIn := errors.New("player not in game session")
	empty := &remote.GetSessionOutput{Session: &models.GameSession{ID: s.testSessionID}}

	gomock.InOrder(
		s.mockClient.EXPECT().LeaveSession(gomock.Any(), gomock.Any()).Return(notIn),
		s.mockClient.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(empty, nil),
	)

	s.NoError(s.resilient.LeaveSession(s.ctx, &remote.LeaveSessionInput{
		SessionID: s.testSessionID,
		PlayerID:  s.testPlayerID,
	}))
}

func (s *ResilientTestSuite) TestChangeTeamNotInSessionJoinsWithDesiredTeam() {
	notIn := errors.New("player not in game session")
	empty := &remote.GetSessionOutput{Session: &models.GameSession{ID: s.testSessionID}}

	gomock.InOrder(
		s.mockClient.EXPECT().ChangeTeam(gomock.Any(), gomock.Any()).Return(notIn),
		s.mockClient.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(empty, nil),
		s.mockClient.EXPECT().JoinSession(gomock.Any(), gomock.Any()).Return(nil),
	)

	s.NoError(s.resilient.ChangeTeam(s.ctx, &remote.ChangeTeamInput{
		SessionID: s.testSessionID,
		PlayerID:  s.testPlayerID,
		Team:      models.TeamBlue,
	}))
}

func (s *ResilientTestSuite) TestConcurrentMutationIsDroppedNotQueued() {
	started := make(chan struct{})
	release := make(chan struct{})

	s.mockClient.EXPECT().
		JoinSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *remote.JoinSessionInput) error {
			close(started)
			<-release
			return nil
		})

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- s.resilient.JoinSession(s.ctx, s.joinInput)
	}()

	<-started
	err := s.resilient.JoinSession(s.ctx, s.joinInput)
	s.ErrorIs(err, remote.ErrMutationInFlight)

	close(release)
	s.NoError(<-firstDone)
}
