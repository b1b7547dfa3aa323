// Package item defines the platform-agnostic representation of one saved
// piece of content. Adapters in the platform packages produce these; the
// category and tui packages only ever consume them.
package item

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// Platform identifies the service a piece of content was collected from.
type Platform string

const (
	Rednote  Platform = "rednote"
	Bilibili Platform = "bilibili"
)

// Tag is a topic label. Identity is ID; Name is display-only.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Author is the content's uploader or poster.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// InteractInfo holds whichever engagement counters a platform exposes.
// A nil field means the platform does not report that counter, which is
// not the same thing as "0"; renderers show nil as nothing at all.
type InteractInfo struct {
	LikedCount     *string `json:"likedCount,omitempty"`
	CollectedCount *string `json:"collectedCount,omitempty"`
	CommentCount   *string `json:"commentCount,omitempty"`
	PlayCount      *string `json:"playCount,omitempty"`
}

// Embed carries the identifiers needed for bilibili's hosted player.
type Embed struct {
	Aid  int64  `json:"aid"`
	Bvid string `json:"bvid"`
	Cid  int64  `json:"cid"`
	Page int    `json:"page"`
}

// PlayerURL builds the iframe player address for the embed.
func (e Embed) PlayerURL() string {
	q := url.Values{}
	q.Set("isOutside", "true")
	q.Set("aid", strconv.FormatInt(e.Aid, 10))
	q.Set("bvid", e.Bvid)
	q.Set("cid", strconv.FormatInt(e.Cid, 10))
	q.Set("p", strconv.Itoa(e.Page))
	return "https://player.bilibili.com/player.html?" + q.Encode()
}

// Item is one normalized piece of content. Collections of items are
// immutable snapshots: they are rebuilt from scratch on every load and
// never mutated afterwards.
type Item struct {
	Platform    Platform     `json:"platform"`
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Cover       string       `json:"cover"`
	Author      Author       `json:"author"`
	URL         string       `json:"url"`
	Tags        []Tag        `json:"tags,omitempty"`
	Interact    InteractInfo `json:"interactInfo"`

	// VideoURL (rednote) and Embed (bilibili) are mutually exclusive in
	// practice; either or both may be absent.
	VideoURL string `json:"videoUrl,omitempty"`
	Embed    *Embed `json:"embed,omitempty"`

	// Duration in seconds, 0 when unknown.
	Duration int `json:"duration,omitempty"`

	// Raw is the untouched source record, kept for traceability. Nothing
	// downstream interprets it.
	Raw json.RawMessage `json:"-"`
}

// Key returns the globally unique identity. IDs are only unique within a
// single platform.
func (it Item) Key() string {
	return string(it.Platform) + "/" + it.ID
}

// HasTag reports whether the item carries the tag with the given id.
func (it Item) HasTag(id string) bool {
	for _, t := range it.Tags {
		if t.ID == id {
			return true
		}
	}
	return false
}
