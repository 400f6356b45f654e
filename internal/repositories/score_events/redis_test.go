package score_events

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

func (s *RedisRepositoryTestSuite) event(id string, delta int) *models.ScoreEvent {
	return &models.ScoreEvent{
		ID:            id,
		Team:          models.TeamRed,
		PreviousScore: 100,
		NewScore:      100 + delta,
		Delta:         delta,
		Reason:        models.ScoreReasonWordFound,
		Timestamp:     time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestAppendEventValidatesInput() {
	s.Error(s.repo.AppendEvent(s.ctx, nil))
	s.Error(s.repo.AppendEvent(s.ctx, &AppendEventInput{SessionID: "test-session-id"}))
	s.Error(s.repo.AppendEvent(s.ctx, &AppendEventInput{Event: s.event("event-1", 25)}))
}

func (s *RedisRepositoryTestSuite) TestAppendAndReplayPreservesOrder() {
	events := []*models.ScoreEvent{
		s.event("event-1", 25),
		s.event("event-2", -1),
		s.event("event-3", -10),
	}
	for _, event := range events {
		s.Require().NoError(s.repo.AppendEvent(s.ctx, &AppendEventInput{
			SessionID: "test-session-id",
			Event:     event,
		}))
	}

	output, err := s.repo.GetEventsForSession(s.ctx, &GetEventsForSessionInput{
		SessionID: "test-session-id",
	})

	s.Require().NoError(err)
	s.Require().Len(output.Events, 3)
	for i, event := range events {
		s.Equal(event.ID, output.Events[i].ID)
		s.Equal(event.Delta, output.Events[i].Delta)
		s.Equal(event.Reason, output.Events[i].Reason)
		s.True(event.Timestamp.Equal(output.Events[i].Timestamp))
	}
}

func (s *RedisRepositoryTestSuite) TestJournalsAreIsolatedPerSession() {
	s.Require().NoError(s.repo.AppendEvent(s.ctx, &AppendEventInput{
		SessionID: "session-one",
		Event:     s.event("event-1", 25),
	}))

	output, err := s.repo.GetEventsForSession(s.ctx, &GetEventsForSessionInput{
		SessionID: "session-two",
	})

	s.Require().NoError(err)
	s.Empty(output.Events)
}
