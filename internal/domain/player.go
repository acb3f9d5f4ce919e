package domain

// Status is the playback status owned by the playback controller.
type Status string

const (
	StatusIdle    Status = "Idle"
	StatusLoading Status = "Loading"
	StatusPlaying Status = "Playing"
	StatusPaused  Status = "Paused"
	StatusError   Status = "Error"
)

func (s Status) String() string {
	return string(s)
}

// IsActive returns true while a stream is loading or playing.
func (s Status) IsActive() bool {
	return s == StatusLoading || s == StatusPlaying
}

// ErrorCode is the coarse failure classification reported by a media engine.
type ErrorCode string

const (
	ErrorAborted           ErrorCode = "aborted"
	ErrorNetwork           ErrorCode = "network"
	ErrorDecode            ErrorCode = "decode"
	ErrorSourceUnsupported ErrorCode = "source_unsupported"
	ErrorUnknown           ErrorCode = "unknown"
)

func (c ErrorCode) String() string {
	return string(c)
}

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

const (
	MinVolume     = 0
	MaxVolume     = 100
	DefaultVolume = 80
)

// ClampVolume bounds level to [MinVolume, MaxVolume].
func ClampVolume(level int) int {
	if level < MinVolume {
		return MinVolume
	}
	if level > MaxVolume {
		return MaxVolume
	}
	return level
}

// PlayerState is a snapshot of the player. Values handed out by the
// controller never alias its internal state.
type PlayerState struct {
	Status         Status   `json:"status"`
	CurrentStation *Station `json:"currentStation,omitempty"`
	Volume         int      `json:"volume"`
	ErrorMessage   string   `json:"errorMessage,omitempty"`
}

func (s PlayerState) HasStation() bool {
	return s.CurrentStation != nil
}

// Clone returns a deep copy of the state.
func (s PlayerState) Clone() PlayerState {
	if s.CurrentStation != nil {
		st := *s.CurrentStation
		s.CurrentStation = &st
	}
	return s
}

// Equal compares two snapshots by value.
func (s PlayerState) Equal(o PlayerState) bool {
	if s.Status != o.Status || s.Volume != o.Volume || s.ErrorMessage != o.ErrorMessage {
		return false
	}
	if (s.CurrentStation == nil) != (o.CurrentStation == nil) {
		return false
	}
	return s.CurrentStation == nil || *s.CurrentStation == *o.CurrentStation
}
