package ports

// MediaEngine is the single-stream playback primitive driven by the playback
// controller. Commands are asynchronous: they return once queued and report
// their outcome later through Events.
type MediaEngine interface {
	// Load replaces the current source with url and starts playing it.
	// seq tags every event produced by this load.
	Load(seq uint64, url string) error
	Pause() error
	SetVolume(level int) error
	Events() <-chan EngineEvent
	Close() error
}
