// Package feed assembles the aggregate item collection. Every enabled
// source is loaded on its own goroutine and joined individually, so one
// platform's broken export never costs another platform's items.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ThomasAtlantis/MarkSort/internal/bilibili"
	"github.com/ThomasAtlantis/MarkSort/internal/config"
	"github.com/ThomasAtlantis/MarkSort/internal/fetch"
	"github.com/ThomasAtlantis/MarkSort/internal/item"
	"github.com/ThomasAtlantis/MarkSort/internal/rednote"
)

// ErrNoData reports that every configured source failed to load.
var ErrNoData = errors.New("no source could be loaded")

// Result is one load's outcome. Items are ordered source by source in
// configuration order, and within a source in export-file order. Errors
// holds one entry per failed source; a populated Errors alongside
// populated Items is the normal partial-failure case.
type Result struct {
	Items  []item.Item
	Errors []error

	loaded int
}

// Err returns ErrNoData when not a single source produced a well-formed
// collection. A source that loads an empty collection still counts as
// loaded.
func (r Result) Err() error {
	if r.loaded == 0 && len(r.Errors) > 0 {
		return ErrNoData
	}
	return nil
}

// FetchAll loads every source concurrently and concatenates the adapted
// items in source order. It never fails as a whole; inspect Result.Err
// for the all-sources-down condition.
func FetchAll(ctx context.Context, client fetch.Client, sources []config.Source) Result {
	slots := make([][]item.Item, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src config.Source) {
			defer wg.Done()
			slots[i], errs[i] = loadSource(ctx, client, src)
		}(i, src)
	}
	wg.Wait()

	var r Result
	for i := range sources {
		if errs[i] != nil {
			r.Errors = append(r.Errors, errs[i])
			continue
		}
		r.loaded++
		r.Items = append(r.Items, slots[i]...)
	}
	return r
}

// loadSource loads one source, trying the legacy fallback name when the
// primary is unreachable or came back empty.
func loadSource(ctx context.Context, client fetch.Client, src config.Source) ([]item.Item, error) {
	items, err := decodeSource(ctx, client, src.Type, src.URL)
	if src.FallbackURL == "" || (err == nil && len(items) > 0) {
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", src.Name, err)
		}
		return items, nil
	}

	fbItems, fbErr := decodeSource(ctx, client, src.Type, src.FallbackURL)
	if fbErr == nil {
		return fbItems, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w (legacy %s: %v)", src.Name, err, src.FallbackURL, fbErr)
	}
	// Primary was valid but empty and the fallback is gone: empty it is.
	return items, nil
}

func decodeSource(ctx context.Context, client fetch.Client, typ, ref string) ([]item.Item, error) {
	var records []json.RawMessage
	if err := client.FetchJSON(ctx, ref, &records); err != nil {
		return nil, err
	}

	items := make([]item.Item, 0, len(records))
	switch typ {
	case config.TypeRednote:
		for _, raw := range records {
			var n rednote.Note
			if json.Unmarshal(raw, &n) != nil {
				// Record doesn't match the platform shape; drop it here so
				// the adapter stays total.
				continue
			}
			items = append(items, rednote.Adapt(n, raw))
		}
	case config.TypeBilibili:
		for _, raw := range records {
			var m bilibili.Media
			if json.Unmarshal(raw, &m) != nil {
				continue
			}
			items = append(items, bilibili.Adapt(m, raw))
		}
	default:
		return nil, fmt.Errorf("unknown source type %q", typ)
	}
	return items, nil
}
