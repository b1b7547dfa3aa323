package bilibili

import (
	"encoding/json"
	"strconv"

	"github.com/ThomasAtlantis/MarkSort/internal/assets"
	"github.com/ThomasAtlantis/MarkSort/internal/item"
)

const (
	videoBase = "https://www.bilibili.com/video/"

	// Referer required by the platform's image CDN.
	AssetReferer = "https://www.bilibili.com/"
)

// Adapt converts one saved video into the unified representation. Cover
// and avatar point at the locally mirrored copies rather than the
// upstream CDN, which refuses hotlinking.
func Adapt(m Media, raw json.RawMessage) item.Item {
	id := CanonicalID(m)
	return item.Item{
		Platform:    item.Bilibili,
		ID:          id,
		Title:       m.Title,
		Description: m.Intro,
		Cover:       assets.LocalPath(m.Cover),
		Author:      item.Author{Name: m.Upper.Name, Avatar: assets.LocalPath(m.Upper.Face)},
		URL:         videoBase + id,
		Interact:    interactInfo(m),
		Embed:       embed(m, id),
		Duration:    m.Duration,
		Raw:         raw,
	}
}

// CanonicalID prefers the stable bvid over the numeric archive id. The
// export has carried the bvid under two spellings across API revisions.
func CanonicalID(m Media) string {
	if m.Bvid != "" {
		return m.Bvid
	}
	if m.BvID != "" {
		return m.BvID
	}
	return strconv.FormatInt(m.ID, 10)
}

// embed builds the hosted-player parameters. Without a first clip id the
// video cannot be embedded and only the outbound link is offered.
func embed(m Media, bvid string) *item.Embed {
	if m.UGC == nil || m.UGC.FirstCid == 0 {
		return nil
	}
	page := m.Page
	if page <= 0 {
		page = 1
	}
	return &item.Embed{
		Aid:  m.ID,
		Bvid: bvid,
		Cid:  m.UGC.FirstCid,
		Page: page,
	}
}

// interactInfo maps the counters this export exposes. There is no like
// counter in favorites data, so LikedCount stays unknown.
func interactInfo(m Media) item.InteractInfo {
	return item.InteractInfo{
		CollectedCount: strp(strconv.FormatInt(m.CntInfo.Collect, 10)),
		CommentCount:   strp(strconv.FormatInt(m.CntInfo.Reply, 10)),
		PlayCount:      strp(strconv.FormatInt(m.CntInfo.Play, 10)),
	}
}

// AssetURLs lists the upstream images a mirroring pass should fetch for
// one record: the cover and the uploader's avatar.
func AssetURLs(m Media) []string {
	var urls []string
	if m.Cover != "" {
		urls = append(urls, m.Cover)
	}
	if m.Upper.Face != "" {
		urls = append(urls, m.Upper.Face)
	}
	return urls
}

func strp(s string) *string { return &s }
