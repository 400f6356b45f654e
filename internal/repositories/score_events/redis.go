package score_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sketchduel/client/internal/models"
)

const (
	// Key prefix for Redis
	eventsKeyPrefix = "score_events:"
)

// Config holds configuration for the Redis score event journal
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed score event journal
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AppendEvent appends a score event to the session's journal
func (r *redisRepository) AppendEvent(ctx context.Context, input *AppendEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}
	if input.SessionID == "" {
		return errors.New("session ID cannot be empty")
	}

	eventJSON, err := json.Marshal(input.Event)
	if err != nil {
		return fmt.Errorf("failed to marshal score event: %w", err)
	}

	key := fmt.Sprintf("%s%s", eventsKeyPrefix, input.SessionID)
	if err := r.client.RPush(ctx, key, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to append score event: %w", err)
	}

	return nil
}

// GetEventsForSession retrieves a session's journaled events, oldest first
func (r *redisRepository) GetEventsForSession(ctx context.Context, input *GetEventsForSessionInput) (*GetEventsForSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := fmt.Sprintf("%s%s", eventsKeyPrefix, input.SessionID)
	entries, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read score events: %w", err)
	}

	output := &GetEventsForSessionOutput{}
	for _, entry := range entries {
		var event models.ScoreEvent
		if err := json.Unmarshal([]byte(entry), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score event: %w", err)
		}
		output.Events = append(output.Events, &event)
	}

	return output, nil
}
