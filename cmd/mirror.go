package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/ThomasAtlantis/MarkSort/internal/assets"
	"github.com/ThomasAtlantis/MarkSort/internal/bilibili"
	"github.com/ThomasAtlantis/MarkSort/internal/config"
	"github.com/ThomasAtlantis/MarkSort/internal/feed"
	"github.com/ThomasAtlantis/MarkSort/internal/fetch"
	"github.com/ThomasAtlantis/MarkSort/internal/item"
	"github.com/ThomasAtlantis/MarkSort/internal/rednote"
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Download covers and avatars into the local images directory",
	Long:  "mirror loads every enabled source and downloads each mark's remote cover and avatar into the images directory, so the collection renders without hitting the platforms' CDNs.",
	RunE:  runMirror,
}

func runMirror(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client := fetch.New(cfg.RequestTimeoutDuration())
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeoutDuration())
	defer cancel()

	result := feed.FetchAll(ctx, client, cfg.EnabledSources())
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "[warn] %v\n", e)
	}
	if err := result.Err(); err != nil {
		return err
	}

	dir := cfg.GetImagesDir()
	hc := &http.Client{Timeout: cfg.RequestTimeoutDuration()}

	// Each platform's CDN checks the Referer, so the URLs are grouped
	// per platform and mirrored in two passes.
	var total assets.Stats
	for _, batch := range []struct {
		platform item.Platform
		referer  string
	}{
		{item.Rednote, rednote.AssetReferer},
		{item.Bilibili, bilibili.AssetReferer},
	} {
		urls := assetURLs(result.Items, batch.platform)
		if len(urls) == 0 {
			continue
		}
		stats, errs := assets.Mirror(context.Background(), hc, urls, dir, batch.referer)
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[warn] %v\n", e)
		}
		total.Downloaded += stats.Downloaded
		total.Skipped += stats.Skipped
		total.Failed += stats.Failed
	}

	fmt.Printf("mirrored into %s: %d downloaded, %d already present, %d failed\n",
		dir, total.Downloaded, total.Skipped, total.Failed)
	return nil
}

// assetURLs re-reads each item's original record to get at the remote
// asset URLs; the adapted Item may only carry rewritten local paths.
func assetURLs(items []item.Item, platform item.Platform) []string {
	var urls []string
	for _, it := range items {
		if it.Platform != platform || len(it.Raw) == 0 {
			continue
		}
		switch platform {
		case item.Rednote:
			var n rednote.Note
			if err := json.Unmarshal(it.Raw, &n); err == nil {
				urls = append(urls, rednote.AssetURLs(n)...)
			}
		case item.Bilibili:
			var m bilibili.Media
			if err := json.Unmarshal(it.Raw, &m); err == nil {
				urls = append(urls, bilibili.AssetURLs(m)...)
			}
		}
	}
	return urls
}
