package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sketchduel/client/internal/common/uuid"
	"github.com/sketchduel/client/internal/models"
	"github.com/sketchduel/client/internal/remote"
	scoreEventsRepo "github.com/sketchduel/client/internal/repositories/score_events"
	snapshotsRepo "github.com/sketchduel/client/internal/repositories/snapshots"
	"github.com/sketchduel/client/internal/services/roles"
	"github.com/sketchduel/client/internal/services/score"
	syncService "github.com/sketchduel/client/internal/services/sync"
)

func main() {
	// Load .env if present; real environment wins
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	clock := clockwork.NewRealClock()

	sessionID := getEnv("SESSION_ID", "")
	if sessionID == "" {
		logger.Fatal().Msg("SESSION_ID environment variable is required")
	}
	playerID := getEnv("PLAYER_ID", "")
	if playerID == "" {
		logger.Fatal().Msg("PLAYER_ID environment variable is required")
	}
	playerName := getEnv("PLAYER_NAME", "anonymous")
	apiBaseURL := getEnv("API_BASE_URL", "http://localhost:8080")

	// Initialize Redis client for the local journal and snapshot cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	cancel()

	// Initialize repositories
	eventsRepo, err := scoreEventsRepo.NewRedis(&scoreEventsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create score event journal")
	}

	snapshotCache, err := snapshotsRepo.NewRedis(&snapshotsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create snapshot cache")
	}

	// Initialize the remote session API behind the resilient wrapper
	apiClient, err := remote.NewHTTP(&remote.HTTPConfig{
		BaseURL: apiBaseURL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create session API client")
	}

	resilient, err := remote.NewResilient(&remote.ResilientConfig{
		Client: apiClient,
		Clock:  clock,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create resilient client")
	}

	// Initialize the score ledger and rebuild it from the journal
	ledger, err := score.NewLedger(&score.Config{
		Clock:         clock,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create score ledger")
	}

	journalCtx, journalCancel := context.WithTimeout(context.Background(), 5*time.Second)
	journaled, err := eventsRepo.GetEventsForSession(journalCtx, &scoreEventsRepo.GetEventsForSessionInput{
		SessionID: sessionID,
	})
	journalCancel()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to read score event journal")
	} else if len(journaled.Events) > 0 {
		ledger.Replay(journaled.Events)
		logger.Info().Int("events", len(journaled.Events)).Msg("restored score history from journal")
	}

	// Journal every new score event
	ledger.Subscribe(func(event *models.ScoreEvent) {
		appendCtx, appendCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer appendCancel()
		if err := eventsRepo.AppendEvent(appendCtx, &scoreEventsRepo.AppendEventInput{
			SessionID: sessionID,
			Event:     event,
		}); err != nil {
			logger.Warn().Err(err).Msg("failed to journal score event")
		}
	})

	// Initialize the synchronizer
	synchronizer, err := syncService.New(&syncService.Config{
		Client:     resilient,
		Clock:      clock,
		Logger:     logger,
		SessionID:  sessionID,
		PlayerID:   playerID,
		PlayerName: playerName,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create synchronizer")
	}

	// Application-layer glue: cache snapshots, sync authoritative scores
	// and report role state on every published snapshot
	synchronizer.OnSnapshot(func(snapshot *models.Snapshot) {
		saveCtx, saveCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer saveCancel()
		if err := snapshotCache.SaveSnapshot(saveCtx, &snapshotsRepo.SaveSnapshotInput{
			Snapshot: snapshot,
		}); err != nil {
			logger.Warn().Err(err).Msg("failed to cache snapshot")
		}

		for team, remoteScore := range snapshot.Session.Scores {
			ledger.SetScore(team, remoteScore, models.ScoreReasonRemoteSync)
		}

		if roles.IsReady(snapshot.Session) && !roles.AllPlayersHaveRoles(snapshot.Session) {
			assigned := roles.AssignInitialRoles(snapshot.Session)
			logger.Info().
				Bool("valid", roles.AreRolesValid(assigned)).
				Msg("roles assigned for ready session")
		}
	})

	synchronizer.OnTransition(func(transition syncService.Transition) {
		logger.Info().Str("transition", string(transition)).Msg("session transition")
		if transition == syncService.TransitionFinished {
			winner := ledger.GetWinner()
			if winner.Tie {
				logger.Info().Msg("match finished in a tie")
			} else {
				logger.Info().Str("team", string(winner.Team)).Msg("match finished")
			}
		}
	})

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	if err := synchronizer.Start(runCtx); err != nil {
		logger.Fatal().Err(err).Msg("failed to start synchronizer")
	}

	logger.Info().Str("session_id", sessionID).Msg("session driver running, press CTRL-C to exit")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	synchronizer.Stop()
	logger.Info().Msg("shutting down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
