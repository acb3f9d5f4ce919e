package ui

import (
	"context"
	"time"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/playback"
	"github.com/gabrielcapilla/radiogo/internal/ports"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	MIN_WIDTH  = 50
	MIN_HEIGHT = 15

	volumeStep       = 10
	dispatchTimeout  = 5 * time.Second
	dispatchErrDelay = 5 * time.Second
)

// Player is the playback loop as seen by the UI.
type Player interface {
	Dispatch(ctx context.Context, intent playback.Intent) (domain.PlayerState, error)
	Snapshot() domain.PlayerState
}

type AppModel struct {
	width, height int
	player        Player
	bridge        *Bridge
	tabs          TabModel
	search        searchModel
	history       historyModel
	playerBar     PlayerModel
	toast         *toastMsg
	toastID       int
	nowPlaying    *int
	styles        Styles
}

func InitialModel(player Player, catalog *domain.Catalog, bridge *Bridge, storage ports.StorageService, historyLimit int) AppModel {
	styles := DefaultStyles()
	nowPlaying := new(int)
	current := func() int { return *nowPlaying }

	m := AppModel{
		player:     player,
		bridge:     bridge,
		tabs:       NewTabModel(),
		search:     newSearchModel(catalog.Stations(), styles, current),
		history:    newHistoryModel(storage, historyLimit, styles, current),
		playerBar:  NewPlayerModel(styles),
		nowPlaying: nowPlaying,
		styles:     styles,
	}
	m.setState(player.Snapshot())
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.bridge.wait()
}

func (m *AppModel) setState(state domain.PlayerState) tea.Cmd {
	*m.nowPlaying = 0
	if state.HasStation() {
		*m.nowPlaying = state.CurrentStation.ID
	}
	return m.playerBar.SetState(state)
}

func dispatchCmd(player Player, intent playback.Intent) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		if _, err := player.Dispatch(ctx, intent); err != nil {
			return dispatchErrorMsg{err}
		}
		return nil
	}
}

func (m *AppModel) showToast(t toastMsg) tea.Cmd {
	m.toastID++
	m.toast = &t
	id := m.toastID
	return tea.Tick(t.duration, func(time.Time) tea.Msg { return clearToastMsg{id: id} })
}

func (m AppModel) inputFocused() bool {
	return m.tabs.ActiveTab == stationsTab && m.search.Focused() == inputFocus
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateMsg:
		cmd = m.setState(msg.state)
		return m, tea.Batch(cmd, m.bridge.wait())

	case toastMsg:
		cmd = m.showToast(msg)
		return m, tea.Batch(cmd, m.bridge.wait())

	case clearToastMsg:
		if msg.id == m.toastID {
			m.toast = nil
		}
		return m, nil

	case dispatchErrorMsg:
		cmd = m.showToast(toastMsg{
			message:  msg.err.Error(),
			severity: domain.SeverityError,
			duration: dispatchErrDelay,
		})
		return m, cmd

	case playStationMsg:
		return m, dispatchCmd(m.player, playback.SelectStation{ID: msg.station.ID})

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.inputFocused() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case " ":
				return m, dispatchCmd(m.player, playback.TogglePlayback{})
			case "+", "=":
				return m, dispatchCmd(m.player, playback.SetVolume{Level: m.playerBar.state.Volume + volumeStep})
			case "-":
				return m, dispatchCmd(m.player, playback.SetVolume{Level: m.playerBar.state.Volume - volumeStep})
			case "ctrl+t":
				m.tabs.Next()
				if m.tabs.ActiveTab == historyTab {
					cmd = m.history.Load()
				}
				return m, cmd
			}
		}
		switch m.tabs.ActiveTab {
		case stationsTab:
			m.search, cmd = m.search.Update(msg)
		case historyTab:
			m.history, cmd = m.history.Update(msg)
		}
		return m, cmd
	}

	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	m.history, cmd = m.history.Update(msg)
	cmds = append(cmds, cmd)
	m.playerBar, cmd = m.playerBar.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m AppModel) toastView(width int) string {
	if m.toast == nil {
		return ""
	}
	style := m.styles.Toast
	if m.toast.severity == domain.SeverityError {
		style = m.styles.ToastError
	}
	return style.Width(width - 2).Render(truncate(m.toast.message, width-style.GetHorizontalFrameSize()))
}

func (m AppModel) helpView() string {
	if m.inputFocused() {
		return "[type] filter | [enter/esc] list | [ctrl+c] quit"
	}
	return "[↑/↓] navigate | [enter] play | [space] play/pause | [+/-] volume | [/] search | [ctrl+t] tabs | [q] quit"
}

func (m AppModel) View() string {
	if m.width < MIN_WIDTH || m.height < MIN_HEIGHT {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Terminal too small")
	}

	availableWidth := m.width - m.styles.App.GetHorizontalFrameSize()

	tabsView := m.tabs.View(availableWidth)
	toastView := m.toastView(availableWidth)

	playerHeight := 4
	helpHeight := 1
	mainHeight := m.height - lipgloss.Height(tabsView) - playerHeight - helpHeight - m.styles.App.GetVerticalFrameSize()
	if toastView != "" {
		mainHeight -= lipgloss.Height(toastView)
	}

	innerWidth := availableWidth - 2
	mainInnerHeight := mainHeight - 2

	var mainContent string
	switch m.tabs.ActiveTab {
	case historyTab:
		m.history.SetSize(innerWidth, mainInnerHeight)
		mainContent = m.history.View()
	default:
		m.search.SetSize(innerWidth, mainInnerHeight)
		mainContent = m.search.View()
	}
	m.playerBar.SetSize(innerWidth, playerHeight-2)

	mainPanel := m.styles.Box.Width(innerWidth).Height(mainInnerHeight).Render(mainContent)
	playerPanel := m.styles.Box.Width(innerWidth).Height(playerHeight - 2).Render(m.playerBar.View())
	helpView := m.styles.Help.Width(availableWidth).Render(truncate(m.helpView(), availableWidth))

	sections := []string{tabsView, mainPanel, playerPanel}
	if toastView != "" {
		sections = append(sections, toastView)
	}
	sections = append(sections, helpView)

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Top, sections...))
}
