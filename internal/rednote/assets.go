package rednote

// Referer required by the platform's image CDN.
const AssetReferer = "https://www.xiaohongshu.com/"

// AssetURLs lists the upstream images a mirroring pass should fetch for
// one note: the summary cover and the poster's avatar.
func AssetURLs(n Note) []string {
	var urls []string
	if n.Cover != nil && n.Cover.URLDefault != "" {
		urls = append(urls, n.Cover.URLDefault)
	}
	if n.User.Avatar != "" {
		urls = append(urls, n.User.Avatar)
	}
	return urls
}
