package ui

import (
	"time"

	"github.com/gabrielcapilla/radiogo/internal/domain"
)

type focusState int

const (
	inputFocus focusState = iota
	listFocus
)

type stateMsg struct{ state domain.PlayerState }

type toastMsg struct {
	message  string
	severity domain.Severity
	duration time.Duration
}
type clearToastMsg struct{ id int }

type dispatchErrorMsg struct{ err error }

type historyLoadedMsg struct{ entries []domain.HistoryEntry }
type historyErrorMsg struct{ err error }

type playStationMsg struct{ station domain.Station }
