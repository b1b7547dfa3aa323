package tui

import "github.com/ThomasAtlantis/MarkSort/internal/feed"

// loadDoneMsg carries one finished load, partial failures included.
type loadDoneMsg struct {
	result feed.Result
}

type openErrMsg struct {
	err error
}
