package playback

import (
	"sync"
	"time"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/logger"
	"github.com/gabrielcapilla/radiogo/internal/ports"
)

const historyQueueSize = 16

// HistoryRecorder records a station each time playback of it starts. Writes
// happen on its own goroutine so the loop never waits on storage.
type HistoryRecorder struct {
	store   ports.StorageService
	entries chan domain.HistoryEntry
	done    chan struct{}

	mu     sync.Mutex
	closed bool
}

func NewHistoryRecorder(store ports.StorageService) *HistoryRecorder {
	r := &HistoryRecorder{
		store:   store,
		entries: make(chan domain.HistoryEntry, historyQueueSize),
		done:    make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *HistoryRecorder) run() {
	defer close(r.done)
	for entry := range r.entries {
		if err := r.store.AddToHistory(entry); err != nil {
			logger.Log.Error().Err(err).Int("station_id", entry.Station.ID).Msg("Could not save history entry")
		}
	}
}

// Observe has the Observer signature. Entries are dropped when the queue is full.
func (r *HistoryRecorder) Observe(prev, next domain.PlayerState) {
	if next.Status != domain.StatusPlaying || prev.Status == domain.StatusPlaying || !next.HasStation() {
		return
	}
	entry := domain.HistoryEntry{Station: *next.CurrentStation, PlayedAt: time.Now()}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	select {
	case r.entries <- entry:
	default:
		logger.Log.Warn().Int("station_id", entry.Station.ID).Msg("History queue full, entry dropped")
	}
}

// Close flushes queued entries and stops the writer.
func (r *HistoryRecorder) Close() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.entries)
	}
	r.mu.Unlock()
	<-r.done
}
