// Package watcher provides a generic one-shot condition poller used for
// every phase boundary in a session. A watcher evaluates its condition on a
// fixed interval and fires its callback exactly once the first time the
// condition holds.
package watcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// DefaultInterval is the polling interval used when none is configured
const DefaultInterval = time.Second

// Config holds configuration for a watcher
type Config struct {
	// Clock drives the polling ticker
	Clock clockwork.Clock

	// Logger records swallowed condition failures
	Logger zerolog.Logger

	// Interval is the polling interval; DefaultInterval when zero
	Interval time.Duration
}

// Watcher polls a condition and fires a callback once. A watcher instance
// does not re-arm after firing; independent transitions get independent
// instances.
type Watcher struct {
	clock    clockwork.Clock
	logger   zerolog.Logger
	interval time.Duration

	mu           sync.Mutex
	condition    func(ctx context.Context) (bool, error)
	onTransition func()
	started      bool
	fired        bool
	stop         chan struct{}
	done         chan struct{}
}

// Define errors
var (
	ErrNilCondition  = errors.New("condition cannot be nil")
	ErrNilCallback   = errors.New("callback cannot be nil")
	ErrAlreadyActive = errors.New("watcher is already listening")
)

// New creates a new watcher
func New(cfg *Config) (*Watcher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Watcher{
		clock:    cfg.Clock,
		logger:   cfg.Logger,
		interval: interval,
	}, nil
}

// StartListening begins polling the condition on the configured interval.
// The first time the condition reports true the callback runs exactly once
// and polling stops. A condition error is logged and swallowed; polling
// continues on the next tick. Calling StartListening on an active watcher
// returns ErrAlreadyActive.
func (w *Watcher) StartListening(ctx context.Context, condition func(ctx context.Context) (bool, error), onTransition func()) error {
	if condition == nil {
		return ErrNilCondition
	}
	if onTransition == nil {
		return ErrNilCallback
	}

	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return ErrAlreadyActive
	}
	w.started = true
	w.condition = condition
	w.onTransition = onTransition
	w.stop = make(chan struct{})
	w.done = make(chan struct{})
	stop, done := w.stop, w.done
	w.mu.Unlock()

	go w.poll(ctx, stop, done)
	return nil
}

func (w *Watcher) poll(ctx context.Context, stop, done chan struct{}) {
	defer close(done)

	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if w.Fired() {
				return
			}
			w.Evaluate(ctx)
			if w.Fired() {
				return
			}
		}
	}
}

// Evaluate runs the condition once, firing the callback if it holds and the
// watcher has not fired yet. Callers that already know fresh state arrived
// use this instead of waiting for the next tick. A condition error is logged
// and swallowed; it never counts as a transition.
func (w *Watcher) Evaluate(ctx context.Context) {
	w.mu.Lock()
	condition, onTransition := w.condition, w.onTransition
	fired := w.fired
	w.mu.Unlock()

	if fired || condition == nil {
		return
	}

	met, err := condition(ctx)
	if err != nil {
		// A transient check failure must never abort the watcher or
		// trigger the transition.
		w.logger.Warn().Err(err).Msg("transition condition check failed")
		return
	}
	if !met {
		return
	}

	w.mu.Lock()
	alreadyFired := w.fired
	w.fired = true
	w.mu.Unlock()

	if !alreadyFired {
		onTransition()
	}
}

// StopListening cancels polling immediately. It is idempotent and safe to
// call on a watcher that never started or has already fired.
func (w *Watcher) StopListening() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started || w.stop == nil {
		return
	}
	select {
	case <-w.stop:
		// Already stopped.
	default:
		close(w.stop)
	}
}

// Fired reports whether the watcher has fired its callback
func (w *Watcher) Fired() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fired
}
