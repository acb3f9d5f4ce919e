package notify

import (
	"time"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/logger"
	"github.com/gabrielcapilla/radiogo/internal/ports"

	"github.com/rs/zerolog"
)

// LogNotifier writes notifications to the application log. Headless mode
// uses it as its only sink.
type LogNotifier struct {
	log *zerolog.Logger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: &logger.Log}
}

func (n *LogNotifier) Notify(message string, severity domain.Severity, duration time.Duration) {
	ev := n.log.Info()
	if severity == domain.SeverityError {
		ev = n.log.Error()
	}
	ev.Dur("duration", duration).Msg(message)
}

// Fanout delivers every notification to each sink in order.
type Fanout []ports.Notifier

func (f Fanout) Notify(message string, severity domain.Severity, duration time.Duration) {
	for _, n := range f {
		n.Notify(message, severity, duration)
	}
}
