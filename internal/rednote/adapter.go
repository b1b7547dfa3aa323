package rednote

import (
	"encoding/json"
	"net/url"

	"github.com/ThomasAtlantis/MarkSort/internal/item"
)

const exploreBase = "https://www.xiaohongshu.com/explore/"

// Adapt converts one exported note into the unified representation. It is
// total over well-formed records: records that fail to decode at all are
// rejected by the loader before ever reaching this function.
func Adapt(n Note, raw json.RawMessage) item.Item {
	return item.Item{
		Platform:    item.Rednote,
		ID:          n.NoteID,
		Title:       Title(n),
		Description: Description(n),
		Cover:       CoverURL(n),
		Author:      item.Author{Name: AuthorName(n), Avatar: AuthorAvatar(n)},
		URL:         NoteURL(n.NoteID, n.XsecToken),
		Tags:        unifiedTags(n),
		Interact:    interactInfo(n),
		VideoURL:    VideoURL(n),
		Duration:    Duration(n),
		Raw:         raw,
	}
}

// NoteURL builds the canonical deep link back to the original note. The
// xsec token must ride along as a query parameter or the platform rejects
// the visit.
func NoteURL(noteID, xsecToken string) string {
	q := url.Values{}
	q.Set("xsec_token", xsecToken)
	return exploreBase + noteID + "?" + q.Encode()
}

func unifiedTags(n Note) []item.Tag {
	src := Tags(n)
	if len(src) == 0 {
		return nil
	}
	tags := make([]item.Tag, len(src))
	for i, t := range src {
		tags[i] = item.Tag{ID: t.ID, Name: t.Name}
	}
	return tags
}

// interactInfo resolves counters field by field. The detail shape brings
// collected and comment counts the summary never has; its liked count
// supersedes the summary's only when actually populated.
func interactInfo(n Note) item.InteractInfo {
	var info item.InteractInfo
	if n.Interact.LikedCount != "" {
		info.LikedCount = strp(n.Interact.LikedCount)
	}
	card := n.card()
	if card == nil || card.Interact == nil {
		return info
	}
	if card.Interact.LikedCount != "" {
		info.LikedCount = strp(card.Interact.LikedCount)
	}
	info.CollectedCount = strp(card.Interact.CollectedCount)
	info.CommentCount = strp(card.Interact.CommentCount)
	return info
}

func strp(s string) *string { return &s }
