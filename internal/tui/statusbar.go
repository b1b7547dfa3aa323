package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(shown, total int, categoryName string, sourceErrs int, width int, loading bool) string {
	left := fmt.Sprintf(" %d/%d marks", shown, total)
	if categoryName != "" && categoryName != "All" {
		left += " · " + categoryName
	}
	if sourceErrs > 0 {
		left += errorStyle.Render(fmt.Sprintf(" · %d source(s) failed", sourceErrs))
	}
	if loading {
		left += " (loading...)"
	}

	right := " o open  v video  r reload  ? help  q quit "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return statusBarStyle.Width(width).Render(left + fmt.Sprintf("%*s", gap, "") + right)
}
