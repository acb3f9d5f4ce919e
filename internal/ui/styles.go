package ui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	mutedColor  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	errorColor  = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F87"}
	okColor     = lipgloss.AdaptiveColor{Light: "#1B998B", Dark: "#04B575"}
)

type Styles struct {
	App          lipgloss.Style
	Box          lipgloss.Style
	Help         lipgloss.Style
	ListNormal   lipgloss.Style
	ListSelected lipgloss.Style
	ListPointer  lipgloss.Style
	Category     lipgloss.Style
	PlayerTitle  lipgloss.Style
	PlayerStatus lipgloss.Style
	Muted        lipgloss.Style
	ErrorText    lipgloss.Style
	Playing      lipgloss.Style
	Toast        lipgloss.Style
	ToastError   lipgloss.Style
	Spinner      lipgloss.Style
}

func DefaultStyles() Styles {
	s := Styles{}
	s.App = lipgloss.NewStyle().Padding(0, 1)
	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(accentColor)
	s.Help = lipgloss.NewStyle().Foreground(mutedColor)
	s.ListNormal = lipgloss.NewStyle()
	s.ListSelected = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	s.ListPointer = lipgloss.NewStyle().Foreground(accentColor).SetString("> ")
	s.Category = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	s.PlayerTitle = lipgloss.NewStyle().Bold(true)
	s.PlayerStatus = lipgloss.NewStyle().Foreground(accentColor)
	s.Muted = lipgloss.NewStyle().Foreground(mutedColor)
	s.ErrorText = lipgloss.NewStyle().Foreground(errorColor)
	s.Playing = lipgloss.NewStyle().Foreground(okColor)
	s.Toast = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(accentColor).
		Padding(0, 1)
	s.ToastError = s.Toast.BorderForeground(errorColor).Foreground(errorColor)
	s.Spinner = lipgloss.NewStyle().Foreground(accentColor)
	return s
}
