package watcher

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
)

type WatcherTestSuite struct {
	suite.Suite
	clock *clockwork.FakeClock
	ctx   context.Context
}

func (s *WatcherTestSuite) SetupTest() {
	s.clock = clockwork.NewFakeClock()
	s.ctx = context.Background()
}

func TestWatcherTestSuite(t *testing.T) {
	suite.Run(t, new(WatcherTestSuite))
}

func (s *WatcherTestSuite) newWatcher() *Watcher {
	w, err := New(&Config{
		Clock:    s.clock,
		Interval: time.Second,
	})
	s.Require().NoError(err)
	return w
}

func (s *WatcherTestSuite) TestNewRequiresClock() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *WatcherTestSuite) TestStartListeningValidatesArguments() {
	w := s.newWatcher()

	s.ErrorIs(w.StartListening(s.ctx, nil, func() {}), ErrNilCondition)
	s.ErrorIs(w.StartListening(s.ctx, alwaysFalse, nil), ErrNilCallback)
}

func (s *WatcherTestSuite) TestFiresOnceWhenConditionBecomesTrue() {
	w := s.newWatcher()

	checked := make(chan int32, 16)
	var calls int32
	condition := func(context.Context) (bool, error) {
		n := atomic.AddInt32(&calls, 1)
		checked <- n
		return n >= 3, nil
	}

	fired := make(chan struct{}, 4)
	err := w.StartListening(s.ctx, condition, func() {
		fired <- struct{}{}
	})
	s.Require().NoError(err)

	for {
		s.clock.BlockUntil(1)
		s.clock.Advance(time.Second)
		if n := <-checked; n >= 3 {
			break
		}
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		s.FailNow("watcher never fired")
	}

	s.True(w.Fired())
	s.Equal(int32(3), atomic.LoadInt32(&calls))

	// Further evaluation must not fire again
	w.Evaluate(s.ctx)
	select {
	case <-fired:
		s.FailNow("watcher fired more than once")
	default:
	}
}

func (s *WatcherTestSuite) TestEvaluateFiresExactlyOnce() {
	w := s.newWatcher()

	var fires int
	err := w.StartListening(s.ctx, alwaysTrue, func() { fires++ })
	s.Require().NoError(err)
	defer w.StopListening()

	for i := 0; i < 5; i++ {
		w.Evaluate(s.ctx)
	}
	s.Equal(1, fires)
	s.True(w.Fired())
}

func (s *WatcherTestSuite) TestConditionErrorsAreSwallowed() {
	w := s.newWatcher()

	var calls int
	condition := func(context.Context) (bool, error) {
		calls++
		if calls == 1 {
			return false, errors.New("refresh session failed: network unreachable")
		}
		return true, nil
	}

	var fires int
	err := w.StartListening(s.ctx, condition, func() { fires++ })
	s.Require().NoError(err)
	defer w.StopListening()

	w.Evaluate(s.ctx)
	s.Zero(fires)
	s.False(w.Fired())

	w.Evaluate(s.ctx)
	s.Equal(1, fires)
}

func (s *WatcherTestSuite) TestStopListeningIsIdempotent() {
	w := s.newWatcher()

	// Stopping a watcher that never started is a no-op
	w.StopListening()

	err := w.StartListening(s.ctx, alwaysFalse, func() {})
	s.Require().NoError(err)

	w.StopListening()
	w.StopListening()
	s.False(w.Fired())
}

func (s *WatcherTestSuite) TestStartListeningTwiceFails() {
	w := s.newWatcher()

	s.Require().NoError(w.StartListening(s.ctx, alwaysFalse, func() {}))
	defer w.StopListening()

	s.ErrorIs(w.StartListening(s.ctx, alwaysFalse, func() {}), ErrAlreadyActive)
}

func (s *WatcherTestSuite) TestIndependentWatchersFireIndependently() {
	first := s.newWatcher()
	second := s.newWatcher()

	var firstFires, secondFires int
	s.Require().NoError(first.StartListening(s.ctx, alwaysTrue, func() { firstFires++ }))
	s.Require().NoError(second.StartListening(s.ctx, alwaysFalse, func() { secondFires++ }))
	defer first.StopListening()
	defer second.StopListening()

	first.Evaluate(s.ctx)
	second.Evaluate(s.ctx)

	s.Equal(1, firstFires)
	s.Zero(secondFires)
}

func alwaysTrue(context.Context) (bool, error) {
	return true, nil
}

func alwaysFalse(context.Context) (bool, error) {
	return false, nil
}
