package snapshots

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
	snapshotKeyPrefix = "snapshot:"
)

// ErrSnapshotNotFound is returned when no snapshot is cached for a session
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Config holds configuration for the Redis snapshot cache
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed snapshot cache
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

// SaveSnapshot stores the latest snapshot for a session, replacing any
// previous one
func (r *redisRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil || input.Snapshot == nil || input.Snapshot.Session == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	snapshotJSON, err := json.Marshal(input.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := fmt.Sprintf("%s%s", snapshotKeyPrefix, input.Snapshot.Session.ID)
	if err := r.client.Set(ctx, key, snapshotJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// GetSnapshot retrieves the cached snapshot for a session
func (r *redisRepository) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := fmt.Sprintf("%s%s", snapshotKeyPrefix, input.SessionID)
	snapshotJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &GetSnapshotOutput{Snapshot: &snapshot}, nil
}

// DeleteSnapshot removes the cached snapshot for a session
func (r *redisRepository) DeleteSnapshot(ctx context.Context, input *DeleteSnapshotInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	key := fmt.Sprintf("%s%s", snapshotKeyPrefix, input.SessionID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}
