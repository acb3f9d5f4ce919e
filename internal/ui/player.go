package ui

import (
	"fmt"

	"github.com/gabrielcapilla/radiogo/internal/domain"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const volumeBarWidth = 10

type PlayerModel struct {
	width, height int
	state         domain.PlayerState
	spinner       spinner.Model
	styles        Styles
}

func NewPlayerModel(styles Styles) PlayerModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = styles.Spinner
	return PlayerModel{
		state:   domain.PlayerState{Status: domain.StatusIdle, Volume: domain.DefaultVolume},
		spinner: s,
		styles:  styles,
	}
}

func (m *PlayerModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetState replaces the rendered snapshot. The returned command keeps the
// spinner ticking while a station is loading.
func (m *PlayerModel) SetState(state domain.PlayerState) tea.Cmd {
	wasLoading := m.state.Status == domain.StatusLoading
	m.state = state
	if state.Status == domain.StatusLoading && !wasLoading {
		return m.spinner.Tick
	}
	return nil
}

func (m PlayerModel) Update(msg tea.Msg) (PlayerModel, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok && m.state.Status == domain.StatusLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PlayerModel) statusView() string {
	switch m.state.Status {
	case domain.StatusLoading:
		return m.spinner.View() + " " + m.styles.PlayerStatus.Render("Loading")
	case domain.StatusPlaying:
		return m.styles.Playing.Render("▶ Playing")
	case domain.StatusPaused:
		return m.styles.PlayerStatus.Render("⏸ Paused")
	case domain.StatusError:
		return m.styles.ErrorText.Render("✖ Error")
	default:
		return m.styles.Muted.Render("■ Idle")
	}
}

func (m PlayerModel) View() string {
	volume := fmt.Sprintf("vol %s %3d%%", volumeBar(m.state.Volume, volumeBarWidth), m.state.Volume)

	title := m.styles.Muted.Render("No station selected")
	if m.state.HasStation() {
		st := m.state.CurrentStation
		name := st.Name
		if st.Category != "" {
			name += " · " + st.Category
		}
		titleWidth := m.width - lipgloss.Width(volume) - lipgloss.Width(m.statusView()) - 4
		title = m.styles.PlayerTitle.Render(truncate(name, titleWidth))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center, m.statusView(), "  ", title)
	gap := m.width - lipgloss.Width(line) - lipgloss.Width(volume)
	if gap < 1 {
		gap = 1
	}
	content := line + lipgloss.NewStyle().Width(gap).Render("") + m.styles.Muted.Render(volume)

	if m.state.Status == domain.StatusError && m.state.ErrorMessage != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content,
			m.styles.ErrorText.Render(truncate(m.state.ErrorMessage, m.width)))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Center, content)
}
