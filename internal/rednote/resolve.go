package rednote

import "sort"

// codecPreference is the playback preference order. Families earlier in
// the list decode more widely; anything not listed is a last resort.
var codecPreference = []string{"h264", "h265", "av1", "h266"}

// card returns the detail note card when one was captured, nil otherwise.
func (n Note) card() *NoteCard {
	if n.Detail == nil {
		return nil
	}
	return n.Detail.NoteCard
}

// Title resolves the effective title: the detail title when present,
// otherwise the summary display title.
func Title(n Note) string {
	if card := n.card(); card != nil && card.Title != "" {
		return card.Title
	}
	return n.DisplayTitle
}

// Description resolves the effective description. Only the detail shape
// carries one; without it the description is simply empty.
func Description(n Note) string {
	if card := n.card(); card != nil {
		return card.Desc
	}
	return ""
}

// AuthorName and AuthorAvatar fall back independently: a detail card can
// carry a user object with only some fields populated.
func AuthorName(n Note) string {
	if card := n.card(); card != nil && card.User != nil && card.User.Nickname != "" {
		return card.User.Nickname
	}
	return n.User.Nickname
}

func AuthorAvatar(n Note) string {
	if card := n.card(); card != nil && card.User != nil && card.User.Avatar != "" {
		return card.User.Avatar
	}
	return n.User.Avatar
}

// Tags returns the note's topic tags. Tags exist only on the detail shape.
func Tags(n Note) []Tag {
	if card := n.card(); card != nil {
		return card.TagList
	}
	return nil
}

// CoverURL picks the best cover image: the first detail image's default
// resolution, its preview resolution, then the summary cover's default
// and preview, else empty.
func CoverURL(n Note) string {
	if card := n.card(); card != nil && len(card.ImageList) > 0 {
		img := card.ImageList[0]
		if img.URLDefault != "" {
			return img.URLDefault
		}
		return img.URLPre
	}
	if n.Cover != nil {
		if n.Cover.URLDefault != "" {
			return n.Cover.URLDefault
		}
		return n.Cover.URLPre
	}
	return ""
}

// VideoURL picks the first usable playback URL, preferring codec families
// in codecPreference order and falling back to any family present. An
// empty result means the note has no video, which is a valid state, not
// an error.
func VideoURL(n Note) string {
	card := n.card()
	if card == nil || card.Video == nil || card.Video.Media == nil {
		return ""
	}
	streams := card.Video.Media.Stream

	for _, family := range codecPreference {
		if u := firstMasterURL(streams[family]); u != "" {
			return u
		}
	}

	// Nothing in a preferred family; take whatever the record has.
	families := make([]string, 0, len(streams))
	for f := range streams {
		families = append(families, f)
	}
	sort.Strings(families)
	for _, f := range families {
		if u := firstMasterURL(streams[f]); u != "" {
			return u
		}
	}
	return ""
}

func firstMasterURL(variants []Stream) string {
	if len(variants) == 0 {
		return ""
	}
	return variants[0].MasterURL
}

// Duration returns the video length in seconds, 0 when the note has no
// video or the capability block is missing.
func Duration(n Note) int {
	card := n.card()
	if card == nil || card.Video == nil || card.Video.Capa == nil {
		return 0
	}
	return card.Video.Capa.Duration
}
