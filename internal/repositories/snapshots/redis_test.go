package snapshots

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/sketchduel/client/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx context.Context

	mr          *miniredis.Miniredis
	redisClient *redis.Client
	repo        *redisRepository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.redisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.redisClient,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.redisClient != nil {
		s.redisClient.Close()
	}
	if s.mr != nil {
		s.mr.Close()
	}
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) snapshot(sessionID string) *models.Snapshot {
	return &models.Snapshot{
		Session: &models.GameSession{
			ID:     sessionID,
			Status: models.SessionStatusPlaying,
			Phase:  models.RoundPhaseDrawing,
			Players: []*models.Player{
				{ID: "player-a", Name: "A", Team: models.TeamRed, Role: models.RoleDrawer, IsHost: true},
			},
			Scores: map[models.TeamColor]int{models.TeamRed: 25, models.TeamBlue: 0},
			HostID: "player-a",
		},
		Challenges: []*models.Challenge{
			{
				ID:       "challenge-1",
				Words:    [5]string{"fox", "dusk", "hill", "tree", "moon"},
				Prompt:   "a red shape at twilight",
				ImageURL: "img1",
				Phase:    models.ChallengePhaseImageGenerated,
			},
		},
		FetchedAt: time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveSnapshotValidatesInput() {
	s.Error(s.repo.SaveSnapshot(s.ctx, nil))
	s.Error(s.repo.SaveSnapshot(s.ctx, &SaveSnapshotInput{}))
	s.Error(s.repo.SaveSnapshot(s.ctx, &SaveSnapshotInput{Snapshot: &models.Snapshot{}}))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSnapshot() {
	original := s.snapshot("test-session-id")
	s.Require().NoError(s.repo.SaveSnapshot(s.ctx, &SaveSnapshotInput{Snapshot: original}))

	output, err := s.repo.GetSnapshot(s.ctx, &GetSnapshotInput{SessionID: "test-session-id"})

	s.Require().NoError(err)
	cached := output.Snapshot
	s.Equal(models.SessionStatusPlaying, cached.Session.Status)
	s.Equal(25, cached.Session.Scores[models.TeamRed])
	s.Require().Len(cached.Challenges, 1)
	s.Equal("a red shape at twilight", cached.Challenges[0].Prompt)
	s.Equal("img1", cached.Challenges[0].ImageURL)
	s.True(original.FetchedAt.Equal(cached.FetchedAt))
}

func (s *RedisRepositoryTestSuite) TestSaveSnapshotReplacesPrevious() {
	first := s.snapshot("test-session-id")
	s.Require().NoError(s.repo.SaveSnapshot(s.ctx, &SaveSnapshotInput{Snapshot: first}))

	second := s.snapshot("test-session-id")
	second.Session.Scores[models.TeamRed] = 49
	s.Require().NoError(s.repo.SaveSnapshot(s.ctx, &SaveSnapshotInput{Snapshot: second}))

	output, err := s.repo.GetSnapshot(s.ctx, &GetSnapshotInput{SessionID: "test-session-id"})

	s.Require().NoError(err)
	s.Equal(49, output.Snapshot.Session.Scores[models.TeamRed])
}

func (s *RedisRepositoryTestSuite) TestGetSnapshotNotFound() {
	_, err := s.repo.GetSnapshot(s.ctx, &GetSnapshotInput{SessionID: "missing-session"})

	s.ErrorIs(err, ErrSnapshotNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteSnapshot() {
	s.Require().NoError(s.repo.SaveSnapshot(s.ctx, &SaveSnapshotInput{
		Snapshot: s.snapshot("test-session-id"),
	}))

	s.Require().NoError(s.repo.DeleteSnapshot(s.ctx, &DeleteSnapshotInput{
		SessionID: "test-session-id",
	}))

	_, err := s.repo.GetSnapshot(s.ctx, &GetSnapshotInput{SessionID: "test-session-id"})
	s.ErrorIs(err, ErrSnapshotNotFound)

	// Deleting again is a no-op.
	s.NoError(s.repo.DeleteSnapshot(s.ctx, &DeleteSnapshotInput{
		SessionID: "test-session-id",
	}))
}
