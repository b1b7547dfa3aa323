package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ThomasAtlantis/MarkSort/internal/category"
	"github.com/ThomasAtlantis/MarkSort/internal/config"
	"github.com/ThomasAtlantis/MarkSort/internal/feed"
	"github.com/ThomasAtlantis/MarkSort/internal/fetch"
)

var (
	flagCategory string
	flagJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the collection without the TUI",
	Long:  "list loads every enabled source and prints the aggregated marks, optionally filtered to one category, for piping into other tools.",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagCategory, "category", "", "only show marks in this category (tag id or name)")
	listCmd.Flags().BoolVar(&flagJSON, "json", false, "emit the filtered marks as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
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

	cats := category.Derive(result.Items)
	cat, err := pickCategory(cats, flagCategory)
	if err != nil {
		return err
	}
	items := category.Filter(result.Items, cat)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	fmt.Printf("Categories:")
	for _, c := range cats {
		fmt.Printf(" %s(%d)", c.Name, len(category.Filter(result.Items, c)))
	}
	fmt.Println()
	fmt.Println()

	for _, it := range items {
		fmt.Printf("[%s] %s\n", it.Platform, it.Title)
		fmt.Printf("    %s\n", it.URL)
	}
	fmt.Printf("\n%d mark(s) in %q\n", len(items), cat.Name)
	return nil
}

// pickCategory matches by tag id first, then case-sensitively by name.
// An empty selector means the universal category.
func pickCategory(cats []category.Category, sel string) (category.Category, error) {
	if sel == "" {
		return cats[0], nil
	}
	for _, c := range cats {
		if c.ID == sel {
			return c, nil
		}
	}
	for _, c := range cats {
		if c.Name == sel {
			return c, nil
		}
	}
	return category.Category{}, fmt.Errorf("unknown category %q", sel)
}
