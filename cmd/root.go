package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ThomasAtlantis/MarkSort/internal/config"
	"github.com/ThomasAtlantis/MarkSort/internal/fetch"
	"github.com/ThomasAtlantis/MarkSort/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "marksort",
	Short: "TUI browser for collected rednote and bilibili marks",
	Long:  "marksort unifies exported rednote notes and bilibili favorites into one tag-categorized collection and lets you browse it in the terminal.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(mirrorCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("marksort %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client := fetch.New(cfg.RequestTimeoutDuration())
	return tui.Run(cfg, client)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
