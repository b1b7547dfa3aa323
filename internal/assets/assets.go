// Package assets handles the local image mirror. Upstream CDNs refuse
// hotlinked covers and avatars, so images are downloaded once into a
// local directory and items reference them under /images/<filename>.
package assets

import "strings"

// Filename derives the on-disk name for a mirrored image. The CDN packs
// rendering parameters after "!" or "?"; both are stripped before taking
// the last path segment. Every mirrored file gets a .jpg name so the same
// derivation works at rewrite time and at download time.
func Filename(rawURL string) string {
	s := rawURL
	if i := strings.IndexByte(s, '!'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	name := s[strings.LastIndexByte(s, '/')+1:]
	if name == "" {
		return ""
	}
	if !strings.HasSuffix(name, ".jpg") {
		name += ".jpg"
	}
	return name
}

// LocalPath rewrites an upstream image URL to its mirrored location.
// Empty in, empty out.
func LocalPath(rawURL string) string {
	name := Filename(rawURL)
	if name == "" {
		return ""
	}
	return "/images/" + name
}
