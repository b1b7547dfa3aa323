package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Stats summarizes one mirroring pass.
type Stats struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Mirror downloads every URL into dir, naming files with Filename.
// Files already present are left alone. Failures are collected per URL
// and never abort the pass.
func Mirror(ctx context.Context, client *http.Client, urls []string, dir, referer string) (Stats, []error) {
	var (
		stats Stats
		errs  []error
	)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return stats, []error{fmt.Errorf("creating %s: %w", dir, err)}
	}

	seen := make(map[string]bool)
	for _, u := range urls {
		name := Filename(u)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		dest := filepath.Join(dir, name)
		if _, err := os.Stat(dest); err == nil {
			stats.Skipped++
			continue
		}

		if err := download(ctx, client, u, dest, referer); err != nil {
			stats.Failed++
			errs = append(errs, fmt.Errorf("mirroring %s: %w", u, err))
			continue
		}
		stats.Downloaded++
	}
	return stats, errs
}

func download(ctx context.Context, client *http.Client, rawURL, dest, referer string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(dest)
		return err
	}
	return f.Close()
}
