// Package sync implements the session synchronizer: a polling orchestrator
// that fetches the authoritative session, reconciles it with locally-composed
// state, publishes immutable snapshots and detects phase transitions exactly
// once. Polling exists because the remote API has no push channel; the
// interval is configuration, not a workaround.
package sync

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sketchduel/client/internal/models"
	"github.com/sketchduel/client/internal/reconcile"
	"github.com/sketchduel/client/internal/remote"
	"github.com/sketchduel/client/internal/watcher"
)

// service implements the Service interface
type service struct {
	client remote.Client
	clock  clockwork.Clock
	logger zerolog.Logger

	sessionID  string
	playerID   string
	playerName string

	pollInterval       time.Duration
	requiredChallenges int
	roundDuration      time.Duration

	mu         sync.Mutex
	local      []*models.Challenge
	lastRemote []*models.Challenge
	latest     *models.Snapshot
	inFlight   bool
	running    bool
	stopped    bool
	stop       chan struct{}

	snapshotHandlers   []SnapshotHandler
	transitionHandlers []TransitionHandler

	watchers []*watcher.Watcher
}

// New creates a new session synchronizer
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.SessionID == "" {
		return nil, ErrEmptySessionID
	}
	if cfg.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	requiredChallenges := cfg.RequiredChallenges
	if requiredChallenges <= 0 {
		requiredChallenges = DefaultRequiredChallenges
	}
	roundDuration := cfg.RoundDuration
	if roundDuration <= 0 {
		roundDuration = DefaultRoundDuration
	}

	return &service{
		client:             cfg.Client,
		clock:              cfg.Clock,
		logger:             cfg.Logger,
		sessionID:          cfg.SessionID,
		playerID:           cfg.PlayerID,
		playerName:         cfg.PlayerName,
		pollInterval:       pollInterval,
		requiredChallenges: requiredChallenges,
		roundDuration:      roundDuration,
	}, nil
}

// OnSnapshot registers a handler for every published snapshot
func (s *service) OnSnapshot(handler SnapshotHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshotHandlers = append(s.snapshotHandlers, handler)
}

// OnTransition registers a handler for one-shot phase transitions
func (s *service) OnTransition(handler TransitionHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transitionHandlers = append(s.transitionHandlers, handler)
}

// Snapshot returns the latest published snapshot, nil before the first cycle
func (s *service) Snapshot() *models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Start begins the polling loop and arms one watcher per phase boundary
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.stopped = false
	s.stop = make(chan struct{})
	stop := s.stop
	s.mu.Unlock()

	watchers, err := s.armWatchers(ctx)
	if err != nil {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.watchers = watchers
	s.mu.Unlock()

	go s.run(ctx, stop)

	s.logger.Info().
		Str("session_id", s.sessionID).
		Dur("poll_interval", s.pollInterval).
		Msg("synchronizer started")
	return nil
}

// armWatchers creates and starts the three phase transition watchers
func (s *service) armWatchers(ctx context.Context) ([]*watcher.Watcher, error) {
	transitions := []struct {
		transition Transition
		condition  func(ctx context.Context) (bool, error)
	}{
		{TransitionPlayingStarted, s.allChallengesSubmitted},
		{TransitionGuessingStarted, s.allImagesDrawn},
		{TransitionFinished, s.roundOver},
	}

	watchers := make([]*watcher.Watcher, 0, len(transitions))
	for _, t := range transitions {
		w, err := watcher.New(&watcher.Config{
			Clock:    s.clock,
			Logger:   s.logger,
			Interval: s.pollInterval,
		})
		if err != nil {
			return nil, err
		}

		transition := t.transition
		if err := w.StartListening(ctx, t.condition, func() {
			s.publishTransition(transition)
		}); err != nil {
			return nil, err
		}
		watchers = append(watchers, w)
	}
	return watchers, nil
}

// Stop cancels the polling loop and all watchers. An in-flight fetch is
// allowed to complete; its result is discarded rather than published.
func (s *service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.stopped = true
	stop := s.stop
	watchers := s.watchers
	s.watchers = nil
	s.mu.Unlock()

	close(stop)
	for _, w := range watchers {
		w.StopListening()
	}

	s.logger.Info().Str("session_id", s.sessionID).Msg("synchronizer stopped")
}

// run is the polling loop. Ticks are strictly sequential: a tick never
// starts while the previous cycle is outstanding.
func (s *service) run(ctx context.Context, stop chan struct{}) {
	ticker := s.clock.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if err := s.Sync(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("sync cycle failed")
			}
		}
	}
}

// Sync runs one fetch/reconcile/publish cycle. If a previous cycle is still
// in flight the call is skipped entirely.
func (s *service) Sync(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		s.logger.Debug().Msg("previous cycle still in flight, skipping tick")
		return nil
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	sessionOutput, err := s.client.GetSession(ctx, &remote.GetSessionInput{
		SessionID: s.sessionID,
	})
	if err != nil {
		return err
	}

	challengesOutput, err := s.client.ListChallenges(ctx, &remote.ListChallengesInput{
		SessionID: s.sessionID,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.stopped {
		// Stopped while the fetch was outstanding; discard the result.
		s.mu.Unlock()
		return nil
	}

	merged := reconcile.Merge(s.local, challengesOutput.Challenges)
	s.local = reconcile.Snapshot(merged)
	s.lastRemote = challengesOutput.Challenges

	snapshot := &models.Snapshot{
		Session:    sessionOutput.Session,
		Challenges: merged,
		FetchedAt:  s.clock.Now(),
	}
	s.latest = snapshot
	handlers := make([]SnapshotHandler, len(s.snapshotHandlers))
	copy(handlers, s.snapshotHandlers)
	watchers := make([]*watcher.Watcher, len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()

	for _, handler := range handlers {
		handler(snapshot)
	}
	for _, w := range watchers {
		w.Evaluate(ctx)
	}
	return nil
}

// publishTransition fans a fired transition out to the registered handlers
func (s *service) publishTransition(transition Transition) {
	s.mu.Lock()
	handlers := make([]TransitionHandler, len(s.transitionHandlers))
	copy(handlers, s.transitionHandlers)
	s.mu.Unlock()

	s.logger.Info().
		Str("session_id", s.sessionID).
		Str("transition", string(transition)).
		Msg("phase transition")

	for _, handler := range handlers {
		handler(transition)
	}
}

// allChallengesSubmitted holds when every player's submitted-challenge
// counter has reached the per-player requirement
func (s *service) allChallengesSubmitted(_ context.Context) (bool, error) {
	snapshot := s.Snapshot()
	if snapshot == nil || len(snapshot.Session.Players) == 0 {
		return false, nil
	}
	for _, p := range snapshot.Session.Players {
		if p.ChallengesSubmitted < s.requiredChallenges {
			return false, nil
		}
	}
	return true, nil
}

// allImagesDrawn holds when every player has produced their images
func (s *service) allImagesDrawn(_ context.Context) (bool, error) {
	snapshot := s.Snapshot()
	if snapshot == nil || len(snapshot.Session.Players) == 0 {
		return false, nil
	}
	for _, p := range snapshot.Session.Players {
		if p.ChallengesDrawn < s.requiredChallenges {
			return false, nil
		}
	}
	return true, nil
}

// roundOver holds when every player has finished guessing, or the round
// duration has elapsed since the session started, whichever comes first
func (s *service) roundOver(_ context.Context) (bool, error) {
	snapshot := s.Snapshot()
	if snapshot == nil || len(snapshot.Session.Players) == 0 {
		return false, nil
	}

	allGuessed := true
	for _, p := range snapshot.Session.Players {
		if p.ChallengesGuessed < s.requiredChallenges {
			allGuessed = false
			break
		}
	}
	if allGuessed {
		return true, nil
	}

	startedAt := snapshot.Session.StartedAt
	if startedAt.IsZero() {
		return false, nil
	}
	return s.clock.Now().Sub(startedAt) >= s.roundDuration, nil
}

// JoinTeam joins the session on the given team
func (s *service) JoinTeam(ctx context.Context, input *JoinTeamInput) error {
	if input == nil {
		return ErrNilInput
	}
	return s.client.JoinSession(ctx, &remote.JoinSessionInput{
		SessionID:  s.sessionID,
		PlayerID:   s.playerID,
		PlayerName: s.playerName,
		Team:       input.Team,
	})
}

// LeaveSession removes this client's player from the session
func (s *service) LeaveSession(ctx context.Context) error {
	return s.client.LeaveSession(ctx, &remote.LeaveSessionInput{
		SessionID: s.sessionID,
		PlayerID:  s.playerID,
	})
}

// ChangeTeam moves this client's player to another team
func (s *service) ChangeTeam(ctx context.Context, input *ChangeTeamInput) error {
	if input == nil {
		return ErrNilInput
	}
	return s.client.ChangeTeam(ctx, &remote.ChangeTeamInput{
		SessionID: s.sessionID,
		PlayerID:  s.playerID,
		Team:      input.Team,
	})
}

// StartMatch moves the session out of the lobby. Rejected locally when the
// latest snapshot shows this player is not the host.
func (s *service) StartMatch(ctx context.Context) error {
	if snapshot := s.Snapshot(); snapshot != nil && snapshot.Session.HostID != s.playerID {
		return remote.NewInvalid(ErrNotHost)
	}
	return s.client.StartSession(ctx, &remote.StartSessionInput{
		SessionID: s.sessionID,
		PlayerID:  s.playerID,
	})
}

// SubmitChallenge submits a word template and adds the created challenge to
// the local working set
func (s *service) SubmitChallenge(ctx context.Context, input *SubmitChallengeInput) (*SubmitChallengeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	for _, word := range input.Words {
		if word == "" {
			return nil, remote.NewInvalid(ErrIncompleteTemplate)
		}
	}

	output, err := s.client.SubmitChallenge(ctx, &remote.SubmitChallengeInput{
		SessionID:      s.sessionID,
		PlayerID:       s.playerID,
		Words:          input.Words,
		ForbiddenWords: input.ForbiddenWords,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.local = append(s.local, output.Challenge.Clone())
	s.mu.Unlock()

	return &SubmitChallengeOutput{Challenge: output.Challenge}, nil
}

// AdoptChallenge pulls a remotely known challenge into the local working set
func (s *service) AdoptChallenge(input *AdoptChallengeInput) error {
	if input == nil {
		return ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocal(input.ChallengeID) != nil {
		return nil
	}
	for _, challenge := range s.lastRemote {
		if challenge.ID == input.ChallengeID {
			s.local = append(s.local, challenge.Clone())
			return nil
		}
	}
	return ErrChallengeUnknown
}

// SetDraftPrompt stores in-progress prompt text locally. The draft stays
// locally authoritative through reconciliation until the server echoes it.
func (s *service) SetDraftPrompt(input *SetDraftPromptInput) error {
	if input == nil {
		return ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	challenge := s.findLocal(input.ChallengeID)
	if challenge == nil {
		return remote.NewInvalid(ErrChallengeNotFound)
	}
	if err := challenge.ValidatePrompt(input.Prompt); err != nil {
		return remote.NewInvalid(err)
	}

	challenge.Prompt = input.Prompt
	return nil
}

// SubmitPrompt irrevocably submits the draft prompt and generates the image.
// Local state is checkpointed before the call and restored if it fails.
func (s *service) SubmitPrompt(ctx context.Context, input *SubmitPromptInput) (*SubmitPromptOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	challenge := s.findLocal(input.ChallengeID)
	if challenge == nil {
		s.mu.Unlock()
		return nil, remote.NewInvalid(ErrChallengeNotFound)
	}
	if challenge.Prompt == "" {
		s.mu.Unlock()
		return nil, remote.NewInvalid(ErrNoPromptDrafted)
	}
	if err := challenge.ValidatePrompt(challenge.Prompt); err != nil {
		s.mu.Unlock()
		return nil, remote.NewInvalid(err)
	}
	checkpoint := reconcile.Snapshot(s.local)
	prompt := challenge.Prompt
	s.mu.Unlock()

	output, err := s.client.SubmitPrompt(ctx, &remote.SubmitPromptInput{
		SessionID:   s.sessionID,
		ChallengeID: input.ChallengeID,
		PlayerID:    s.playerID,
		Prompt:      prompt,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.local = reconcile.Restore(checkpoint)
		return nil, err
	}

	if updated := s.findLocal(input.ChallengeID); updated != nil {
		updated.ImageURL = output.ImageURL
		updated.Phase = models.ChallengePhaseImageGenerated
	}
	return &SubmitPromptOutput{ImageURL: output.ImageURL}, nil
}

// RegenerateImage re-generates a challenge's image. Each challenge permits
// at most models.MaxImageRegenerations regenerations.
func (s *service) RegenerateImage(ctx context.Context, input *RegenerateImageInput) (*RegenerateImageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	challenge := s.findLocal(input.ChallengeID)
	if challenge == nil {
		s.mu.Unlock()
		return nil, remote.NewInvalid(ErrChallengeNotFound)
	}
	if !challenge.CanRegenerate() {
		s.mu.Unlock()
		return nil, remote.NewInvalid(ErrRegenerationLimit)
	}
	if challenge.Prompt == "" {
		s.mu.Unlock()
		return nil, remote.NewInvalid(ErrNoPromptDrafted)
	}
	checkpoint := reconcile.Snapshot(s.local)
	prompt := challenge.Prompt
	s.mu.Unlock()

	output, err := s.client.SubmitPrompt(ctx, &remote.SubmitPromptInput{
		SessionID:   s.sessionID,
		ChallengeID: input.ChallengeID,
		PlayerID:    s.playerID,
		Prompt:      prompt,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.local = reconcile.Restore(checkpoint)
		return nil, err
	}

	regenerations := 0
	if updated := s.findLocal(input.ChallengeID); updated != nil {
		updated.ImageURL = output.ImageURL
		updated.Regenerations++
		regenerations = updated.Regenerations
	}
	return &RegenerateImageOutput{
		ImageURL:      output.ImageURL,
		Regenerations: regenerations,
	}, nil
}

// SubmitAnswer submits the guesser's answer for a challenge. The answer text
// stays locally authoritative until the server echoes it back; the resolved
// flag is always the server's call.
func (s *service) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) error {
	if input == nil {
		return ErrNilInput
	}
	if input.Answer == "" {
		return remote.NewInvalid(ErrEmptyAnswer)
	}

	s.mu.Lock()
	if s.findLocal(input.ChallengeID) == nil {
		s.mu.Unlock()
		return remote.NewInvalid(ErrChallengeNotFound)
	}
	s.mu.Unlock()

	err := s.client.SubmitAnswer(ctx, &remote.SubmitAnswerInput{
		SessionID:   s.sessionID,
		ChallengeID: input.ChallengeID,
		PlayerID:    s.playerID,
		Answer:      input.Answer,
		Resolved:    input.Resolved,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	if challenge := s.findLocal(input.ChallengeID); challenge != nil {
		challenge.Answer = input.Answer
	}
	s.mu.Unlock()
	return nil
}

// findLocal returns the working-set challenge with the given ID. Callers
// must hold s.mu.
func (s *service) findLocal(challengeID string) *models.Challenge {
	for _, challenge := range s.local {
		if challenge.ID == challengeID {
			return challenge
		}
	}
	return nil
}
