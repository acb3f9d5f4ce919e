package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	stationsTab = iota
	historyTab
)

func tabBorder(active bool) lipgloss.Border {
	border := lipgloss.RoundedBorder()
	if active {
		border.BottomLeft, border.Bottom, border.BottomRight = "┘", " ", "└"
	} else {
		border.BottomLeft, border.Bottom, border.BottomRight = "┴", "─", "┴"
	}
	return border
}

var (
	tabStyle       = lipgloss.NewStyle().Border(tabBorder(false), true).BorderForeground(accentColor).Padding(0, 1)
	activeTabStyle = tabStyle.Border(tabBorder(true), true).Bold(true)
	tabGapStyle    = lipgloss.NewStyle().Foreground(accentColor)
)

// TabModel switches the main panel between the station browser and the
// listening history.
type TabModel struct {
	Tabs      []string
	ActiveTab int
}

func NewTabModel() TabModel {
	return TabModel{Tabs: []string{"Stations", "History"}}
}

func (m *TabModel) Next() {
	m.ActiveTab = (m.ActiveTab + 1) % len(m.Tabs)
}

// View renders the tab row, drawing the baseline out to width.
func (m TabModel) View(width int) string {
	rendered := make([]string, 0, len(m.Tabs)+1)
	for i, title := range m.Tabs {
		if i == m.ActiveTab {
			rendered = append(rendered, activeTabStyle.Render(title))
		} else {
			rendered = append(rendered, tabStyle.Render(title))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
	if gap := width - lipgloss.Width(row); gap > 0 {
		row = lipgloss.JoinHorizontal(lipgloss.Bottom, row, tabGapStyle.Render(strings.Repeat("─", gap)))
	}
	return row
}
