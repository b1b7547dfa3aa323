package tui

import (
	"fmt"

	"github.com/ThomasAtlantis/MarkSort/internal/category"
	"github.com/ThomasAtlantis/MarkSort/internal/item"
	"github.com/charmbracelet/lipgloss"
)

// categoryBar is the tag-category tab row. Exactly one category is
// active at a time; switching recomputes the filtered view in memory.
type categoryBar struct {
	categories []category.Category
	counts     []int
	active     int
}

func newCategoryBar(cats []category.Category, items []item.Item) categoryBar {
	counts := make([]int, len(cats))
	for i, c := range cats {
		counts[i] = len(category.Filter(items, c))
	}
	return categoryBar{categories: cats, counts: counts}
}

func (b *categoryBar) current() category.Category {
	if len(b.categories) == 0 {
		return category.Category{ID: category.AllID, Name: "All"}
	}
	return b.categories[b.active]
}

func (b *categoryBar) next() {
	if b.active < len(b.categories)-1 {
		b.active++
	}
}

func (b *categoryBar) prev() {
	if b.active > 0 {
		b.active--
	}
}

func (b *categoryBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")

	var parts []string
	for i, c := range b.categories {
		label := fmt.Sprintf("%s %d", c.Name, b.counts[i])
		if i == b.active {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(label))
		}
	}

	// Keep the active tab visible: start rendering a window of tabs at
	// the active one when everything doesn't fit.
	start := 0
	if width > 0 {
		total := 0
		for _, p := range parts {
			total += lipgloss.Width(p) + lipgloss.Width(sep)
		}
		if total > width && b.active > 0 {
			start = b.active - 1
			if start < 0 {
				start = 0
			}
		}
	}

	var row string
	for i := start; i < len(parts); i++ {
		candidate := row
		if row != "" {
			candidate += sep
		}
		candidate += parts[i]
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorTabBg).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
