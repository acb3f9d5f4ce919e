package playback

import (
	"fmt"

	"github.com/gabrielcapilla/radiogo/internal/domain"
)

const fallbackStationName = "Station"

// ErrorMessage is the inline message shown for an engine failure.
func ErrorMessage(code domain.ErrorCode, stationName string) string {
	if stationName == "" {
		stationName = fallbackStationName
	}
	switch code {
	case domain.ErrorAborted:
		return "Playback aborted by the user."
	case domain.ErrorNetwork:
		return offlineMessage(stationName)
	case domain.ErrorDecode:
		return "The audio format is not supported by your player."
	case domain.ErrorSourceUnsupported:
		return fmt.Sprintf("%s is not available or not supported.", stationName)
	default:
		return "An unknown error occurred while playing the audio."
	}
}

// NotificationMessage is sent to the notifier for every engine failure,
// whatever its classification. It intentionally differs from ErrorMessage
// for non-network codes.
func NotificationMessage(stationName string) string {
	if stationName == "" {
		stationName = fallbackStationName
	}
	return offlineMessage(stationName)
}

func offlineMessage(name string) string {
	return fmt.Sprintf("%s is not online yet. Please try again later.", name)
}

func commandFailedMessage(err error) string {
	return fmt.Sprintf("Unable to play this station: %v", err)
}
