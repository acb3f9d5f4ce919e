package playback

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/logger"
)

var ErrLoopStopped = errors.New("playback loop is not running")

// Intent is a user request applied to the controller on the loop goroutine.
type Intent interface {
	apply(c *Controller) error
}

type SelectStation struct{ ID int }

func (i SelectStation) apply(c *Controller) error { return c.SelectStation(i.ID) }

type TogglePlayback struct{}

func (TogglePlayback) apply(c *Controller) error {
	c.TogglePlayback()
	return nil
}

type SetVolume struct{ Level int }

func (i SetVolume) apply(c *Controller) error {
	c.SetVolume(i.Level)
	return nil
}

// Observer is called on the loop goroutine after a change of state.
type Observer func(prev, next domain.PlayerState)

type request struct {
	intent Intent
	reply  chan result
}

type result struct {
	state domain.PlayerState
	err   error
}

// Loop is the single event queue of the player: intents and engine events
// are processed one at a time on the goroutine running Run.
type Loop struct {
	ctrl     *Controller
	requests chan request
	done     chan struct{}
	stopOnce sync.Once

	snapshot  atomic.Pointer[domain.PlayerState]
	mu        sync.Mutex
	observers []Observer
}

func NewLoop(ctrl *Controller) *Loop {
	l := &Loop{
		ctrl:     ctrl,
		requests: make(chan request),
		done:     make(chan struct{}),
	}
	l.store(ctrl.State())
	return l
}

// OnChange registers an observer. Register observers before Run.
func (l *Loop) OnChange(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// Snapshot returns the state after the last processed item.
func (l *Loop) Snapshot() domain.PlayerState {
	return l.snapshot.Load().Clone()
}

// Dispatch queues an intent and waits until the loop has applied it.
func (l *Loop) Dispatch(ctx context.Context, intent Intent) (domain.PlayerState, error) {
	req := request{intent: intent, reply: make(chan result, 1)}
	select {
	case l.requests <- req:
	case <-l.done:
		return domain.PlayerState{}, ErrLoopStopped
	case <-ctx.Done():
		return domain.PlayerState{}, ctx.Err()
	}

	select {
	case res := <-req.reply:
		return res.state, res.err
	case <-ctx.Done():
		return domain.PlayerState{}, ctx.Err()
	}
}

// Run processes intents and engine events until ctx is cancelled or the
// engine closes its event stream.
func (l *Loop) Run(ctx context.Context) error {
	defer l.stopOnce.Do(func() { close(l.done) })

	l.step(func() error {
		l.ctrl.SetVolume(l.ctrl.State().Volume)
		return nil
	})

	events := l.ctrl.engine.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-l.requests:
			err := l.step(func() error { return req.intent.apply(l.ctrl) })
			if err != nil {
				logger.Log.Warn().Err(err).Msg("Intent rejected")
			}
			req.reply <- result{state: l.ctrl.State(), err: err}
		case ev, ok := <-events:
			if !ok {
				logger.Log.Info().Msg("Engine event stream closed, stopping playback loop")
				return nil
			}
			l.step(func() error {
				l.ctrl.HandleEngineEvent(ev)
				return nil
			})
		}
	}
}

func (l *Loop) step(fn func() error) error {
	prev := l.ctrl.State()
	err := fn()
	next := l.ctrl.State()
	if prev.Equal(next) {
		return err
	}

	l.store(next)
	l.mu.Lock()
	observers := l.observers
	l.mu.Unlock()
	for _, o := range observers {
		o(prev, next.Clone())
	}
	return err
}

func (l *Loop) store(s domain.PlayerState) {
	snap := s.Clone()
	l.snapshot.Store(&snap)
}
