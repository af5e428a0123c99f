package cmd

import (
	"os"

	"github.com/brogergvhs/tafsird/internal/config"
	"github.com/brogergvhs/tafsird/internal/providers"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "List the supported tafsir authors",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := config.LoadMerged(config.Options{IgnoreConfig: flagIgnoreConfig})
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Key", "Name", "Example URL", ""})

		for _, p := range providers.Profiles() {
			mark := ""
			if p.Key == cfg.Author {
				mark = "default"
			}
			t.AppendRow(table.Row{p.Key, p.Name, p.URL(cfg.BaseURL, firstAyah), mark})
		}

		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authorsCmd)
}
