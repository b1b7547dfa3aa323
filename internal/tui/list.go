package tui

import (
	"strings"

	"github.com/ThomasAtlantis/MarkSort/internal/item"
)

func platformLabel(p item.Platform) string {
	switch p {
	case item.Rednote:
		return itemRednoteStyle.Render("rednote")
	case item.Bilibili:
		return itemBilibiliStyle.Render("bilibili")
	default:
		return string(p)
	}
}

func renderListItem(it item.Item, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(it.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(it.Title, width-4))
	}

	meta := "  " + platformLabel(it.Platform)
	if it.Author.Name != "" {
		meta += " " + itemMetaStyle.Render("· "+truncateStr(it.Author.Name, width/2))
	}
	if it.Interact.LikedCount != nil {
		meta += " " + itemMetaStyle.Render("· ♥ "+*it.Interact.LikedCount)
	}

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderList(items []item.Item, cursor int, height int, width int) string {
	if len(items) == 0 {
		return centerText("Nothing in this category", width, height)
	}

	// Each entry is a title line plus a meta line plus a blank line.
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(items[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func centerText(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
