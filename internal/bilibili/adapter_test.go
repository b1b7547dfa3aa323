package bilibili

import (
	"reflect"
	"testing"

	"github.com/ThomasAtlantis/MarkSort/internal/item"
)

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		name string
		m    Media
		want string
	}{
		{"bvid preferred", Media{ID: 99, Bvid: "BV1xx", BvID: "BV1yy"}, "BV1xx"},
		{"legacy spelling", Media{ID: 99, BvID: "BV1yy"}, "BV1yy"},
		{"numeric fallback", Media{ID: 99}, "99"},
	}
	for _, tt := range tests {
		if got := CanonicalID(tt.m); got != tt.want {
			t.Errorf("%s: CanonicalID = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAdaptDeepLink(t *testing.T) {
	it := Adapt(Media{ID: 7, Bvid: "BV1xH4y1F7gG"}, nil)
	if it.URL != "https://www.bilibili.com/video/BV1xH4y1F7gG" {
		t.Errorf("URL = %s", it.URL)
	}
	if it.Platform != item.Bilibili || it.ID != "BV1xH4y1F7gG" {
		t.Errorf("identity = %s/%s", it.Platform, it.ID)
	}
}

func TestAdaptRewritesAssetsLocally(t *testing.T) {
	m := Media{
		ID:    7,
		Bvid:  "BV1xx",
		Cover: "http://i0.hdslb.com/bfs/archive/abc123.jpg",
		Upper: Upper{Name: "uploader", Face: "https://i1.hdslb.com/bfs/face/def456.jpg"},
	}
	it := Adapt(m, nil)
	if it.Cover != "/images/abc123.jpg" {
		t.Errorf("Cover = %s", it.Cover)
	}
	if it.Author.Avatar != "/images/def456.jpg" {
		t.Errorf("Avatar = %s", it.Author.Avatar)
	}
}

func TestAdaptEmbed(t *testing.T) {
	m := Media{
		ID:   114023899528447,
		Bvid: "BV1xH4y1F7gG",
		Page: 2,
		UGC:  &UGC{FirstCid: 28500753257},
	}
	it := Adapt(m, nil)
	if it.Embed == nil {
		t.Fatal("expected embed parameters")
	}
	want := item.Embed{Aid: 114023899528447, Bvid: "BV1xH4y1F7gG", Cid: 28500753257, Page: 2}
	if !reflect.DeepEqual(*it.Embed, want) {
		t.Errorf("Embed = %+v, want %+v", *it.Embed, want)
	}
}

func TestAdaptEmbedDefaultsPage(t *testing.T) {
	it := Adapt(Media{ID: 1, Bvid: "BV1", UGC: &UGC{FirstCid: 5}}, nil)
	if it.Embed == nil || it.Embed.Page != 1 {
		t.Errorf("expected page to default to 1, got %+v", it.Embed)
	}
}

func TestAdaptNoEmbedWithoutClipID(t *testing.T) {
	for _, m := range []Media{
		{ID: 1, Bvid: "BV1"},
		{ID: 1, Bvid: "BV1", UGC: &UGC{}},
	} {
		if it := Adapt(m, nil); it.Embed != nil {
			t.Errorf("expected no embed for %+v", m.UGC)
		}
	}
}

func TestAdaptCounters(t *testing.T) {
	it := Adapt(Media{ID: 1, CntInfo: CntInfo{Collect: 10, Play: 12345, Reply: 0}}, nil)
	if it.Interact.CollectedCount == nil || *it.Interact.CollectedCount != "10" {
		t.Errorf("CollectedCount = %v", it.Interact.CollectedCount)
	}
	if it.Interact.PlayCount == nil || *it.Interact.PlayCount != "12345" {
		t.Errorf("PlayCount = %v", it.Interact.PlayCount)
	}
	// Zero is a reported value, not an unknown.
	if it.Interact.CommentCount == nil || *it.Interact.CommentCount != "0" {
		t.Errorf("CommentCount = %v", it.Interact.CommentCount)
	}
	// This export has no like counter at all.
	if it.Interact.LikedCount != nil {
		t.Errorf("LikedCount should be unknown, got %v", it.Interact.LikedCount)
	}
}

func TestAdaptNoTags(t *testing.T) {
	// Favorites exports carry no tag list; these items live only under
	// the universal category.
	it := Adapt(Media{ID: 1, Bvid: "BV1"}, nil)
	if len(it.Tags) != 0 {
		t.Errorf("Tags = %v", it.Tags)
	}
}
