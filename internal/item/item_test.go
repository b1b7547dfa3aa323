package item

import (
	"strings"
	"testing"
)

func TestPlayerURL(t *testing.T) {
	e := Embed{Aid: 114023899528447, Bvid: "BV1xH4y1F7gG", Cid: 28500753257, Page: 1}
	got := e.PlayerURL()

	if !strings.HasPrefix(got, "https://player.bilibili.com/player.html?") {
		t.Fatalf("unexpected player endpoint: %s", got)
	}
	for _, part := range []string{
		"isOutside=true",
		"aid=114023899528447",
		"bvid=BV1xH4y1F7gG",
		"cid=28500753257",
		"p=1",
	} {
		if !strings.Contains(got, part) {
			t.Errorf("player URL missing %q: %s", part, got)
		}
	}
}

func TestKey(t *testing.T) {
	a := Item{Platform: Rednote, ID: "abc"}
	b := Item{Platform: Bilibili, ID: "abc"}
	if a.Key() == b.Key() {
		t.Error("same id on different platforms must not collide")
	}
}

func TestHasTag(t *testing.T) {
	it := Item{Tags: []Tag{{ID: "t1", Name: "Food"}, {ID: "t2", Name: "Travel"}}}
	if !it.HasTag("t2") {
		t.Error("expected t2 to be present")
	}
	if it.HasTag("t3") {
		t.Error("t3 should be absent")
	}
	if (Item{}).HasTag("t1") {
		t.Error("untagged item matches nothing")
	}
}
