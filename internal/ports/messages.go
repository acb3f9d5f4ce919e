package ports

import "github.com/gabrielcapilla/radiogo/internal/domain"

type EngineEventKind int

const (
	// EngineReady means the stream buffered enough to play.
	EngineReady EngineEventKind = iota
	// EngineError carries a classified media failure.
	EngineError
	// EngineCommandFailed means the engine rejected a load command.
	EngineCommandFailed
)

func (k EngineEventKind) String() string {
	switch k {
	case EngineReady:
		return "ready"
	case EngineError:
		return "error"
	case EngineCommandFailed:
		return "command_failed"
	default:
		return "unknown"
	}
}

// EngineEvent is emitted by a MediaEngine for the load tagged Seq.
type EngineEvent struct {
	Seq  uint64
	Kind EngineEventKind
	Code domain.ErrorCode
	Err  error
}
