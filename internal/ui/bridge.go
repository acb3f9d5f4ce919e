package ui

import (
	"sync"
	"time"

	"github.com/gabrielcapilla/radiogo/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

// Bridge carries notifications and state changes from the playback loop
// into the bubbletea program.
type Bridge struct {
	msgs chan tea.Msg
	done chan struct{}
	once sync.Once
}

func NewBridge() *Bridge {
	return &Bridge{
		msgs: make(chan tea.Msg, 32),
		done: make(chan struct{}),
	}
}

func (b *Bridge) Notify(message string, severity domain.Severity, duration time.Duration) {
	b.send(toastMsg{message: message, severity: severity, duration: duration})
}

// Observe has the playback.Observer signature.
func (b *Bridge) Observe(_, next domain.PlayerState) {
	b.send(stateMsg{state: next})
}

func (b *Bridge) send(msg tea.Msg) {
	select {
	case b.msgs <- msg:
	case <-b.done:
	}
}

// Close releases senders once the UI has exited.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.done) })
}

func (b *Bridge) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.msgs:
			return msg
		case <-b.done:
			return nil
		}
	}
}
