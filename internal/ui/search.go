package ui

import (
	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/search"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// searchModel is the station browser: a query input above the visible
// stations. Without a query the list is grouped by category.
type searchModel struct {
	state       *search.State
	styles      Styles
	focus       focusState
	textInput   textinput.Model
	resultsList list.Model
}

func newSearchModel(catalog []domain.Station, styles Styles, current func() int) searchModel {
	ti := textinput.New()
	ti.Placeholder = "Search by name or category..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.Muted
	ti.CharLimit = 64

	headerWidth := 0
	for _, s := range catalog {
		if w := lipgloss.Width(s.Category); w > headerWidth {
			headerWidth = w
		}
	}

	m := searchModel{
		state:     search.NewState(catalog),
		styles:    styles,
		focus:     listFocus,
		textInput: ti,
		resultsList: newStationList(itemDelegate{
			styles:      styles,
			headerWidth: headerWidth + 2,
			current:     current,
		}),
	}
	m.refresh()
	return m
}

// refresh rebuilds the list items from the search state.
func (m *searchModel) refresh() tea.Cmd {
	var items []list.Item
	if groups, ok := m.state.Groups(); ok {
		for _, g := range groups {
			for i, s := range g.Stations {
				header := ""
				if i == 0 {
					header = g.Category
				}
				items = append(items, stationItem{station: s, header: header})
			}
		}
	} else {
		for _, s := range m.state.Visible() {
			items = append(items, stationItem{station: s, header: s.Category})
		}
	}
	m.resultsList.ResetSelected()
	return m.resultsList.SetItems(items)
}

func (m *searchModel) SetSize(w, h int) {
	m.textInput.Width = w - 4
	m.resultsList.SetSize(w, h-2)
}

func (m *searchModel) Focus() tea.Cmd {
	m.focus = inputFocus
	return m.textInput.Focus()
}

func (m *searchModel) Blur() {
	m.focus = listFocus
	m.textInput.Blur()
}

func (m searchModel) Focused() focusState { return m.focus }

func (m searchModel) Update(msg tea.Msg) (searchModel, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	key, isKey := msg.(tea.KeyMsg)

	switch m.focus {
	case inputFocus:
		if isKey {
			switch key.String() {
			case "enter", "down", "tab", "esc":
				m.Blur()
				return m, nil
			}
		}
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
		if m.state.SetQuery(m.textInput.Value()) {
			cmds = append(cmds, m.refresh())
		}

	case listFocus:
		if isKey {
			switch key.String() {
			case "/", "tab":
				cmd = m.Focus()
				return m, cmd
			case "enter":
				if item, ok := m.resultsList.SelectedItem().(listItem); ok {
					station := item.Station()
					return m, func() tea.Msg { return playStationMsg{station: station} }
				}
				return m, nil
			}
		}
		m.resultsList, cmd = m.resultsList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m searchModel) View() string {
	var mainView string
	if len(m.resultsList.Items()) == 0 {
		mainView = m.styles.Muted.Render("No stations match your search.")
	} else {
		mainView = m.resultsList.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.textInput.View(), "", mainView)
}
