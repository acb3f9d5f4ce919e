// Package playback owns the player state machine. Controller is not safe for
// concurrent use; Loop serializes intents and engine events onto it.
package playback

import (
	"errors"
	"fmt"
	"time"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/logger"
	"github.com/gabrielcapilla/radiogo/internal/ports"
)

var ErrUnknownStation = errors.New("station is not in the catalog")

const DefaultNotificationDuration = 5 * time.Second

type Options struct {
	// Volume is the initial volume; nil means domain.DefaultVolume.
	Volume               *int
	NotificationDuration time.Duration
}

type Controller struct {
	catalog  *domain.Catalog
	engine   ports.MediaEngine
	notifier ports.Notifier
	duration time.Duration

	state domain.PlayerState
	// seq identifies the most recent load; events for any other seq are stale.
	seq uint64
}

func NewController(catalog *domain.Catalog, engine ports.MediaEngine, notifier ports.Notifier, opts Options) *Controller {
	if opts.NotificationDuration <= 0 {
		opts.NotificationDuration = DefaultNotificationDuration
	}
	volume := domain.DefaultVolume
	if opts.Volume != nil {
		volume = domain.ClampVolume(*opts.Volume)
	}
	return &Controller{
		catalog:  catalog,
		engine:   engine,
		notifier: notifier,
		duration: opts.NotificationDuration,
		state: domain.PlayerState{
			Status: domain.StatusIdle,
			Volume: volume,
		},
	}
}

// State returns a snapshot that does not alias the controller's state.
func (c *Controller) State() domain.PlayerState {
	return c.state.Clone()
}

// Seq returns the sequence number of the most recent load.
func (c *Controller) Seq() uint64 {
	return c.seq
}

// Cue selects a station without loading it. Only valid while Idle.
func (c *Controller) Cue(id int) error {
	station, ok := c.catalog.Get(id)
	if !ok {
		return fmt.Errorf("cue %d: %w", id, ErrUnknownStation)
	}
	if c.state.Status != domain.StatusIdle {
		return nil
	}
	c.state.CurrentStation = &station
	logger.Log.Debug().Int("station_id", id).Msg("Station cued")
	return nil
}

func (c *Controller) SelectStation(id int) error {
	station, ok := c.catalog.Get(id)
	if !ok {
		return fmt.Errorf("select %d: %w", id, ErrUnknownStation)
	}
	c.state.CurrentStation = &station
	c.load()
	return nil
}

func (c *Controller) TogglePlayback() {
	switch c.state.Status {
	case domain.StatusLoading:
		return
	case domain.StatusPlaying:
		if err := c.engine.Pause(); err != nil {
			logger.Log.Warn().Err(err).Msg("Engine rejected pause command")
		}
		c.transition(domain.StatusPaused)
	default:
		if c.state.CurrentStation == nil {
			return
		}
		c.load()
	}
}

func (c *Controller) SetVolume(level int) {
	c.state.Volume = domain.ClampVolume(level)
	if err := c.engine.SetVolume(c.state.Volume); err != nil {
		logger.Log.Warn().Err(err).Int("volume", c.state.Volume).Msg("Engine rejected volume command")
	}
}

// HandleEngineEvent applies an adapter event. Events whose seq does not
// match the latest load are dropped.
func (c *Controller) HandleEngineEvent(ev ports.EngineEvent) {
	if ev.Seq != c.seq {
		logger.Log.Debug().Uint64("event_seq", ev.Seq).Uint64("seq", c.seq).Str("kind", ev.Kind.String()).Msg("Dropping stale engine event")
		return
	}

	switch ev.Kind {
	case ports.EngineReady:
		if c.state.Status == domain.StatusLoading {
			c.transition(domain.StatusPlaying)
		}
	case ports.EngineError:
		if !c.state.Status.IsActive() {
			return
		}
		name := c.state.CurrentStation.Name
		c.fail(ErrorMessage(ev.Code, name))
		logger.Log.Error().Str("code", ev.Code.String()).Str("station", name).Err(ev.Err).Msg("Playback failed")
		if c.notifier != nil {
			c.notifier.Notify(NotificationMessage(name), domain.SeverityError, c.duration)
		}
	case ports.EngineCommandFailed:
		if c.state.Status != domain.StatusLoading {
			return
		}
		c.fail(commandFailedMessage(ev.Err))
		logger.Log.Error().Err(ev.Err).Msg("Engine could not start playback")
	}
}

func (c *Controller) load() {
	c.seq++
	c.state.ErrorMessage = ""
	c.transition(domain.StatusLoading)

	if err := c.engine.Load(c.seq, c.state.CurrentStation.URL); err != nil {
		c.fail(commandFailedMessage(err))
		logger.Log.Error().Err(err).Str("station", c.state.CurrentStation.Name).Msg("Engine rejected load command")
	}
}

func (c *Controller) fail(message string) {
	c.state.ErrorMessage = message
	c.transition(domain.StatusError)
}

func (c *Controller) transition(to domain.Status) {
	from := c.state.Status
	c.state.Status = to
	if to != domain.StatusError {
		c.state.ErrorMessage = ""
	}
	logger.Log.Debug().Str("from", from.String()).Str("to", to.String()).Uint64("seq", c.seq).Msg("Player transition")
}
