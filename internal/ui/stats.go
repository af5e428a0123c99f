package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/brogergvhs/tafsird/internal/driver"
	"github.com/brogergvhs/tafsird/internal/util"

	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintSummary renders the outcome of a run.
func PrintSummary(w io.Writer, sum *driver.Summary, bytesRead int64) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Extraction Summary")

	t.AppendRows([]table.Row{
		{"Author", sum.Author},
		{"Surahs planned", sum.Jobs},
		{"Surahs written", sum.SurahsWritten},
		{"Ayahs extracted", sum.Records},
		{"Ayahs skipped", len(sum.Skipped)},
		{"Data", util.Human(bytesRead)},
		{"Time", sum.Elapsed.Round(time.Second)},
	})
	if sum.SurahsExisted > 0 {
		t.AppendRow(table.Row{"Surahs already present", sum.SurahsExisted})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	if len(sum.Skipped) > 0 {
		refs := make([]string, len(sum.Skipped))
		for i, r := range sum.Skipped {
			refs[i] = r.String()
		}
		_, _ = fmt.Fprintf(w, "Skipped: %s\n", strings.Join(refs, ", "))
	}
}
