package playback

import (
	"errors"
	"sync"
	"time"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/ports"
)

type loadCall struct {
	seq uint64
	url string
}

type fakeEngine struct {
	mu       sync.Mutex
	loads    []loadCall
	pauses   int
	volumes  []int
	loadErr  error
	events   chan ports.EngineEvent
	closeErr error
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{events: make(chan ports.EngineEvent, 16)}
}

func (e *fakeEngine) Load(seq uint64, url string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loadErr != nil {
		return e.loadErr
	}
	e.loads = append(e.loads, loadCall{seq: seq, url: url})
	return nil
}

func (e *fakeEngine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pauses++
	return nil
}

func (e *fakeEngine) SetVolume(level int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volumes = append(e.volumes, level)
	return nil
}

func (e *fakeEngine) Events() <-chan ports.EngineEvent { return e.events }

func (e *fakeEngine) Close() error { return e.closeErr }

func (e *fakeEngine) lastLoad() loadCall {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loads[len(e.loads)-1]
}

func (e *fakeEngine) loadCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.loads)
}

type notification struct {
	message  string
	severity domain.Severity
	duration time.Duration
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []notification
}

func (n *fakeNotifier) Notify(message string, severity domain.Severity, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notification{message, severity, duration})
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

type fakeStore struct {
	mu      sync.Mutex
	entries []domain.HistoryEntry
	err     error
	// block, when set, holds every write until it is closed.
	block chan struct{}
}

func (s *fakeStore) AddToHistory(entry domain.HistoryEntry) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *fakeStore) GetHistory(limit int) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries, nil
}

func (s *fakeStore) Close() error { return nil }

var errEngineDown = errors.New("mpv is not running")

var testStations = []domain.Station{
	{ID: 1, Name: "Capital FM", URL: "http://capital", Category: "Music"},
	{ID: 2, Name: "LBC", URL: "http://lbc", Category: "Talk"},
}

func newTestController(t interface{ Fatalf(string, ...any) }) (*Controller, *fakeEngine, *fakeNotifier) {
	catalog, err := domain.NewCatalog(testStations)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	engine := newFakeEngine()
	notifier := &fakeNotifier{}
	c := NewController(catalog, engine, notifier, Options{})
	return c, engine, notifier
}
