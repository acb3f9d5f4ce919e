package ui

import (
	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/ports"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type historyItem struct{ entry domain.HistoryEntry }

func (i historyItem) FilterValue() string     { return i.entry.Station.Name }
func (i historyItem) Station() domain.Station { return i.entry.Station }
func (i historyItem) Label() string           { return i.entry.Station.Name }
func (i historyItem) Header() string          { return i.entry.PlayedAt.Local().Format("Jan 02 15:04") }

type historyModel struct {
	storageService ports.StorageService
	limit          int
	styles         Styles
	resultsList    list.Model
	spinner        spinner.Model
	isLoading      bool
	err            error
}

func newHistoryModel(service ports.StorageService, limit int, styles Styles, current func() int) historyModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return historyModel{
		storageService: service,
		limit:          limit,
		styles:         styles,
		resultsList: newStationList(itemDelegate{
			styles:      styles,
			headerWidth: 14,
			current:     current,
		}),
		spinner: s,
	}
}

// Load fetches the history in the background.
func (m *historyModel) Load() tea.Cmd {
	if m.storageService == nil {
		return nil
	}
	m.isLoading = true
	service, limit := m.storageService, m.limit
	fetch := func() tea.Msg {
		entries, err := service.GetHistory(limit)
		if err != nil {
			return historyErrorMsg{err}
		}
		return historyLoadedMsg{entries}
	}
	return tea.Batch(m.spinner.Tick, fetch)
}

func (m *historyModel) SetSize(w, h int) {
	m.resultsList.SetSize(w, h)
}

func (m historyModel) Update(msg tea.Msg) (historyModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.isLoading = false
		m.err = nil
		items := make([]list.Item, len(msg.entries))
		for i, entry := range msg.entries {
			items[i] = historyItem{entry: entry}
		}
		return m, m.resultsList.SetItems(items)
	case historyErrorMsg:
		m.isLoading = false
		m.err = msg.err
		return m, nil
	}

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if item, ok := m.resultsList.SelectedItem().(listItem); ok {
			station := item.Station()
			return m, func() tea.Msg { return playStationMsg{station: station} }
		}
		return m, nil
	}

	m.resultsList, cmd = m.resultsList.Update(msg)
	return m, cmd
}

func (m historyModel) View() string {
	switch {
	case m.storageService == nil:
		return m.styles.Muted.Render("History is disabled.")
	case m.isLoading:
		return m.spinner.View() + " Loading..."
	case m.err != nil:
		return m.styles.ErrorText.Render("Error: " + m.err.Error())
	case len(m.resultsList.Items()) == 0:
		return m.styles.Muted.Render("Nothing played yet.")
	default:
		return m.resultsList.View()
	}
}
