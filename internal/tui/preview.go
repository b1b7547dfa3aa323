package tui

import (
	"fmt"
	"strings"

	"github.com/ThomasAtlantis/MarkSort/internal/item"
	"github.com/charmbracelet/lipgloss"
)

func renderPreview(it *item.Item, width, height, scroll int) string {
	if it == nil {
		return centerText("Select a mark", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(it.Title)

	byline := it.Author.Name
	if byline == "" {
		byline = "(unknown author)"
	}
	byline = fmt.Sprintf("%s · %s", byline, it.Platform)
	if it.Duration > 0 {
		byline += " · " + formatDuration(it.Duration)
	}
	author := previewAuthorStyle.Render(byline)

	desc := it.Description
	if desc == "" {
		desc = "(No description)"
	}
	body := previewBodyStyle.Width(contentWidth).Render(wrapText(desc, contentWidth))

	sections := []string{title, author, "", body}

	if len(it.Tags) > 0 {
		var tags []string
		for _, t := range it.Tags {
			tags = append(tags, "#"+t.Name)
		}
		sections = append(sections, "", previewTagStyle.Render(strings.Join(tags, " ")))
	}

	if counters := counterLine(it.Interact); counters != "" {
		sections = append(sections, "", itemMetaStyle.Render(counters))
	}

	sections = append(sections, previewLinkStyle.Width(contentWidth).Render("Open: "+it.URL))
	if it.VideoURL != "" {
		sections = append(sections, previewLinkStyle.Width(contentWidth).Render("Video: "+it.VideoURL))
	} else if it.Embed != nil {
		sections = append(sections, previewLinkStyle.Width(contentWidth).Render("Player: "+it.Embed.PlayerURL()))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// counterLine shows only the counters the platform actually reported.
// An absent counter is unknown, not zero, and is simply not drawn.
func counterLine(info item.InteractInfo) string {
	var parts []string
	if info.LikedCount != nil {
		parts = append(parts, "♥ "+*info.LikedCount)
	}
	if info.CollectedCount != nil {
		parts = append(parts, "★ "+*info.CollectedCount)
	}
	if info.CommentCount != nil {
		parts = append(parts, "💬 "+*info.CommentCount)
	}
	if info.PlayCount != nil {
		parts = append(parts, "▶ "+*info.PlayCount)
	}
	return strings.Join(parts, "  ")
}

func formatDuration(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
