package cmd

import (
	"os"

	"github.com/brogergvhs/tafsird/internal/quran"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var firstAyah = quran.AyahRef{Surah: 1, Ayah: 1}

var surahsCmd = &cobra.Command{
	Use:   "surahs [range]",
	Short: "List surahs with their ayah counts (optionally a range, e.g. 2-5)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := 1, quran.SurahCount
		if len(args) == 1 {
			var err error
			if from, to, err = quran.ParseRange(args[0]); err != nil {
				return err
			}
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"#", "Name", "Arabic", "Ayahs", "Revelation"})

		total := 0
		for _, s := range quran.All()[from-1 : to] {
			t.AppendRow(table.Row{s.Number, s.NameEnglish, s.NameArabic, s.Ayahs, s.Revelation})
			total += s.Ayahs
		}
		t.AppendFooter(table.Row{"", "", "Total", total, ""})

		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(surahsCmd)
}
