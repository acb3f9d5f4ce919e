package player

import (
	"errors"
	"strings"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/ports"

	"github.com/buger/jsonparser"
)

// mpvMessage is one line read from the IPC socket: either a command reply
// (Event empty) or an asynchronous event.
type mpvMessage struct {
	Event     string
	Reason    string
	FileError string
	RequestID int
	Status    string
	// EntryID is the playlist entry an event refers to, or the entry a
	// loadfile reply created.
	EntryID int
}

func parseMessage(line []byte) (mpvMessage, error) {
	var msg mpvMessage
	if len(line) == 0 || line[0] != '{' {
		return msg, errors.New("not a json object")
	}

	paths := [][]string{
		{"event"}, {"reason"}, {"file_error"}, {"request_id"}, {"error"},
		{"playlist_entry_id"}, {"data", "playlist_entry_id"},
	}
	var parseErr error
	jsonparser.EachKey(line, func(idx int, value []byte, vt jsonparser.ValueType, err error) {
		if err != nil {
			parseErr = err
			return
		}
		switch idx {
		case 0:
			msg.Event = string(value)
		case 1:
			msg.Reason = string(value)
		case 2:
			msg.FileError = string(value)
		case 3:
			id, err := jsonparser.ParseInt(value)
			if err == nil {
				msg.RequestID = int(id)
			}
		case 4:
			msg.Status = string(value)
		case 5, 6:
			if id, err := jsonparser.ParseInt(value); err == nil {
				msg.EntryID = int(id)
			}
		}
	}, paths...)

	return msg, parseErr
}

// translateEvent maps an mpv event to an engine event. ok is false for events
// the controller does not care about.
func translateEvent(msg mpvMessage) (kind ports.EngineEventKind, code domain.ErrorCode, ok bool) {
	switch msg.Event {
	case "playback-restart":
		return ports.EngineReady, "", true
	case "end-file":
		switch msg.Reason {
		case "error":
			return ports.EngineError, classifyFileError(msg.FileError), true
		case "quit":
			return ports.EngineError, domain.ErrorAborted, true
		case "eof":
			// A live stream has no end; reaching one means the source dropped.
			return ports.EngineError, domain.ErrorNetwork, true
		}
	}
	return 0, "", false
}

var fileErrorCodes = []struct {
	fragment string
	code     domain.ErrorCode
}{
	{"loading failed", domain.ErrorNetwork},
	{"network", domain.ErrorNetwork},
	{"unrecognized file format", domain.ErrorSourceUnsupported},
	{"unsupported", domain.ErrorSourceUnsupported},
	{"no audio or video data played", domain.ErrorDecode},
	{"decod", domain.ErrorDecode},
	{"abort", domain.ErrorAborted},
}

func classifyFileError(fileError string) domain.ErrorCode {
	lower := strings.ToLower(fileError)
	for _, fc := range fileErrorCodes {
		if strings.Contains(lower, fc.fragment) {
			return fc.code
		}
	}
	return domain.ErrorUnknown
}
