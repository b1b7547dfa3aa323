package tui

import (
	"strings"
	"testing"

	"github.com/ThomasAtlantis/MarkSort/internal/category"
	"github.com/ThomasAtlantis/MarkSort/internal/item"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("深夜食堂めぐり", 5)
	want := "深夜..."
	if got != want {
		t.Errorf("truncateStr(multibyte, 5) = %q, want %q", got, want)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{93, "1:33"},
		{59, "0:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestCounterLineOnlyPresentCounters(t *testing.T) {
	liked := "12"
	plays := "999"
	line := counterLine(item.InteractInfo{LikedCount: &liked, PlayCount: &plays})
	if !strings.Contains(line, "12") || !strings.Contains(line, "999") {
		t.Errorf("counterLine = %q", line)
	}

	if got := counterLine(item.InteractInfo{}); got != "" {
		t.Errorf("no counters should render nothing, got %q", got)
	}
}

func TestCategoryBarCounts(t *testing.T) {
	items := []item.Item{
		{ID: "a", Tags: []item.Tag{{ID: "t1", Name: "Food"}}},
		{ID: "b", Tags: []item.Tag{{ID: "t1", Name: "Food"}}},
		{ID: "c"},
	}
	bar := newCategoryBar(category.Derive(items), items)

	if bar.counts[0] != 3 {
		t.Errorf("universal category count = %d, want 3", bar.counts[0])
	}
	if bar.counts[1] != 2 {
		t.Errorf("Food count = %d, want 2", bar.counts[1])
	}
}

func TestCategoryBarNavigationClamps(t *testing.T) {
	items := []item.Item{{ID: "a", Tags: []item.Tag{{ID: "t1", Name: "Food"}}}}
	bar := newCategoryBar(category.Derive(items), items)

	bar.prev()
	if bar.active != 0 {
		t.Error("prev at the first tab must stay put")
	}
	bar.next()
	if bar.current().ID != "t1" {
		t.Errorf("expected t1 active, got %s", bar.current().ID)
	}
	bar.next()
	if bar.active != 1 {
		t.Error("next at the last tab must stay put")
	}
}
