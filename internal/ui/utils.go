package ui

import "strings"

func truncate(s string, length int) string {
	if length <= 3 {
		return "..."
	}
	r := []rune(s)
	if len(r) > length {
		return string(r[:length-3]) + "..."
	}
	return s
}

// volumeBar renders level (0-100) as a bar of width cells.
func volumeBar(level, width int) string {
	filled := level * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
