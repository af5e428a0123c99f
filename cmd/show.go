package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brogergvhs/tafsird/internal/config"
	"github.com/brogergvhs/tafsird/internal/output"
	"github.com/brogergvhs/tafsird/internal/providers"
	"github.com/brogergvhs/tafsird/internal/quran"
	"github.com/brogergvhs/tafsird/internal/store"
	"github.com/brogergvhs/tafsird/internal/tafsir"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const previewRunes = 80

var (
	flagShowFrom   string
	flagShowOutput string
	flagShowSQLite string
)

var showCmd = &cobra.Command{
	Use:   "show <author> <surah>",
	Short: "Show what an earlier run saved for one surah",
	Example: `  tafsird show alrazi 1
  tafsird show tabari 112 --from csv
  tafsird show qurtubi 2 --from sqlite --sqlite tafsir.db`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := config.LoadMerged(config.Options{
			IgnoreConfig: flagIgnoreConfig,
			Output:       flagShowOutput,
			SQLite:       flagShowSQLite,
		})
		if err != nil {
			return err
		}

		profile, err := providers.Lookup(args[0])
		if err != nil {
			return err
		}
		surah, err := quran.ParseSurah(args[1])
		if err != nil {
			return err
		}

		records, source, err := loadRecords(cmd.Context(), cfg, flagShowFrom, profile.Key, surah)
		if err != nil {
			return err
		}

		fmt.Printf("%s, surah %d: %d records from %s\n", profile.Name, surah, len(records), source)
		printRecords(os.Stdout, records)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&flagShowFrom, "from", output.FormatJSON, "read from json, csv or sqlite")
	showCmd.Flags().StringVar(&flagShowOutput, "output", "", "output folder of the run (default from config)")
	showCmd.Flags().StringVar(&flagShowSQLite, "sqlite", "", "SQLite database for --from sqlite")
	rootCmd.AddCommand(showCmd)
}

func loadRecords(ctx context.Context, cfg *config.Config, from, author string, surah int) ([]tafsir.Record, string, error) {
	switch strings.ToLower(from) {
	case output.FormatJSON:
		path := output.Path(cfg.Output, author, surah, output.FormatJSON)
		recs, err := output.ReadJSON(path)
		return recs, path, err

	case output.FormatCSV:
		path := output.Path(cfg.Output, author, surah, output.FormatCSV)
		recs, err := output.ReadCSV(path)
		return recs, path, err

	case "sqlite":
		if cfg.SQLite == "" {
			return nil, "", fmt.Errorf("--from sqlite needs --sqlite or sqlite in the config")
		}
		db, err := store.Open(cfg.SQLite)
		if err != nil {
			return nil, "", err
		}
		defer func() { _ = db.Close() }()

		recs, err := db.Records(ctx, author, surah)
		return recs, db.Path(), err
	}

	return nil, "", fmt.Errorf("unknown source %q (use json, csv or sqlite)", from)
}

func printRecords(w io.Writer, records []tafsir.Record) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Ayah", "Chars", "Text"})

	for _, r := range records {
		t.AppendRow(table.Row{r.Ref().String(), len([]rune(r.Text)), preview(r.Text)})
	}

	t.Render()
}

// preview is the first line of text, cut to previewRunes.
func preview(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	runes := []rune(line)
	if len(runes) > previewRunes {
		return string(runes[:previewRunes]) + "…"
	}
	return line
}
