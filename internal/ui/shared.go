package ui

import (
	"fmt"
	"io"

	"github.com/gabrielcapilla/radiogo/internal/domain"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type listItem interface {
	list.Item
	Station() domain.Station
	Label() string
	// Header is rendered in front of the label, e.g. a category name.
	Header() string
}

type stationItem struct {
	station domain.Station
	header  string
}

func (i stationItem) FilterValue() string     { return i.station.Name }
func (i stationItem) Station() domain.Station { return i.station }
func (i stationItem) Label() string           { return i.station.Name }
func (i stationItem) Header() string          { return i.header }

type itemDelegate struct {
	styles      Styles
	headerWidth int
	// current returns the id of the loaded station, or 0.
	current func() int
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(listItem)
	if !ok {
		return
	}

	itemStyle := d.styles.ListNormal
	pointer := "  "
	if index == m.Index() {
		itemStyle = d.styles.ListSelected
		pointer = d.styles.ListPointer.String()
	}

	marker := "  "
	if d.current != nil && d.current() == li.Station().ID {
		marker = d.styles.Playing.Render("♪ ")
	}

	header := ""
	if d.headerWidth > 0 {
		header = d.styles.Category.Width(d.headerWidth).Render(li.Header())
	}

	line := li.Label()
	if m.Width() > 0 {
		lineWidth := m.Width() - lipgloss.Width(pointer) - lipgloss.Width(header) - lipgloss.Width(marker)
		line = truncate(line, lineWidth)
	}
	fmt.Fprint(w, pointer+header+marker+itemStyle.Render(line))
}

func newStationList(delegate itemDelegate) list.Model {
	li := list.New([]list.Item{}, delegate, 0, 0)
	li.SetShowTitle(false)
	li.SetShowStatusBar(false)
	li.SetShowPagination(false)
	li.SetShowHelp(false)
	li.SetFilteringEnabled(false)
	return li
}
