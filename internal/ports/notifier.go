package ports

import (
	"time"

	"github.com/gabrielcapilla/radiogo/internal/domain"
)

// Notifier displays transient messages. Delivery is fire-and-forget.
type Notifier interface {
	Notify(message string, severity domain.Severity, duration time.Duration)
}
