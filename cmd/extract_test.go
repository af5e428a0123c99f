package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brogergvhs/tafsird/internal/config"
	"github.com/brogergvhs/tafsird/internal/driver"
	"github.com/brogergvhs/tafsird/internal/output"
	"github.com/brogergvhs/tafsird/internal/quran"
	"github.com/brogergvhs/tafsird/internal/tafsir"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func parseExtractFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := newExtractCmd()
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

// stubAsk replaces the interactive prompt and records what it was asked.
func stubAsk(t *testing.T, fill func(*driver.Request)) *[]driver.Request {
	t.Helper()
	var asked []driver.Request
	prev := askRequest
	askRequest = func(req *driver.Request, _ string) error {
		asked = append(asked, *req)
		if fill != nil {
			fill(req)
		}
		return nil
	}
	t.Cleanup(func() { askRequest = prev })
	return &asked
}

func TestInferMode(t *testing.T) {
	testCases := []struct {
		args []string
		want driver.Mode
	}{
		{nil, ""},
		{[]string{"--surah", "2"}, driver.ModeSurah},
		{[]string{"--surah", "2", "--ayah", "255"}, driver.ModeAyah},
		{[]string{"--range", "1-3"}, driver.ModeRange},
		{[]string{"--list", "1,2"}, driver.ModeList},
		{[]string{"--author", "tabari"}, ""},
	}

	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			require.Equal(t, tc.want, inferMode(parseExtractFlags(t, tc.args...)))
		})
	}
}

func TestBuildRequestFromFlags(t *testing.T) {
	asked := stubAsk(t, nil)

	req, err := buildRequest(parseExtractFlags(t, "--author", "tabari", "--range", "112-114"), "alrazi")
	require.NoError(t, err)
	require.Equal(t, driver.Request{Author: "tabari", Mode: driver.ModeRange, From: 112, To: 114}, req)

	req, err = buildRequest(parseExtractFlags(t, "--list", "36,1,36"), "alrazi")
	require.NoError(t, err)
	require.Equal(t, "alrazi", req.Author)
	require.Equal(t, []int{1, 36}, req.Surahs)

	req, err = buildRequest(parseExtractFlags(t, "--mode", "all"), "qurtubi")
	require.NoError(t, err)
	require.Equal(t, driver.Request{Author: "qurtubi", Mode: driver.ModeAll}, req)

	require.Empty(t, *asked)
}

func TestBuildRequestAsksOnlyForMissingNumbers(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		fill func(*driver.Request)
		want driver.Request
	}{
		{
			name: "surah mode without surah",
			args: []string{"--mode", "surah"},
			fill: func(r *driver.Request) { r.Surah = 36 },
			want: driver.Request{Author: "alrazi", Mode: driver.ModeSurah, Surah: 36},
		},
		{
			name: "ayah mode without ayah",
			args: []string{"--mode", "ayah", "--surah", "2"},
			fill: func(r *driver.Request) { r.Ayah = 255 },
			want: driver.Request{Author: "alrazi", Mode: driver.ModeAyah, Surah: 2, Ayah: 255},
		},
		{
			name: "range mode without range",
			args: []string{"--author", "tabari", "--mode", "range"},
			fill: func(r *driver.Request) { r.From, r.To = 1, 2 },
			want: driver.Request{Author: "tabari", Mode: driver.ModeRange, From: 1, To: 2},
		},
		{
			name: "list mode without list",
			args: []string{"--mode", "list"},
			fill: func(r *driver.Request) { r.Surahs = []int{67} },
			want: driver.Request{Author: "alrazi", Mode: driver.ModeList, Surahs: []int{67}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			asked := stubAsk(t, tc.fill)

			req, err := buildRequest(parseExtractFlags(t, tc.args...), "alrazi")
			require.NoError(t, err)
			require.Equal(t, tc.want, req)

			require.Len(t, *asked, 1)
			// the mode and author are settled before asking
			require.Equal(t, tc.want.Mode, (*asked)[0].Mode)
			require.Equal(t, tc.want.Author, (*asked)[0].Author)

			_, _, err = driver.Plan(req)
			require.NoError(t, err)
		})
	}
}

func TestBuildRequestInteractive(t *testing.T) {
	asked := stubAsk(t, func(r *driver.Request) {
		r.Author, r.Mode, r.Surah = "ibn-katheer", driver.ModeSurah, 1
	})

	req, err := buildRequest(parseExtractFlags(t), "alrazi")
	require.NoError(t, err)
	require.Equal(t, driver.Request{Author: "ibn-katheer", Mode: driver.ModeSurah, Surah: 1}, req)
	require.Len(t, *asked, 1)
	require.Empty(t, (*asked)[0].Author)
}

func TestBuildRequestErrors(t *testing.T) {
	asked := stubAsk(t, nil)

	_, err := buildRequest(parseExtractFlags(t, "--range", "5-2"), "alrazi")
	var inputErr *quran.InputError
	require.ErrorAs(t, err, &inputErr)

	_, err = buildRequest(parseExtractFlags(t, "--mode", "everything"), "alrazi")
	require.ErrorAs(t, err, &inputErr)

	require.Empty(t, *asked)

	cancelled := errors.New("input cancelled")
	askRequest = func(*driver.Request, string) error { return cancelled }
	_, err = buildRequest(parseExtractFlags(t, "--mode", "surah"), "alrazi")
	require.ErrorIs(t, err, cancelled)
}

func TestMissingNumbers(t *testing.T) {
	require.True(t, missingNumbers(driver.Request{Mode: driver.ModeAyah, Surah: 2}))
	require.False(t, missingNumbers(driver.Request{Mode: driver.ModeAyah, Surah: 2, Ayah: 1}))
	require.True(t, missingNumbers(driver.Request{Mode: driver.ModeRange, From: 2}))
	require.False(t, missingNumbers(driver.Request{Mode: driver.ModeAll}))
}

func TestLoadRecords(t *testing.T) {
	dir := t.TempDir()
	recs := []tafsir.Record{
		{SurahNumber: 1, AyahNumber: 1, Author: "alrazi", Text: "first"},
		{SurahNumber: 1, AyahNumber: 2, Author: "alrazi", Text: "second"},
	}
	for _, sink := range []output.Sink{output.JSONSink{Dir: dir}, output.CSVSink{Dir: dir}} {
		_, err := sink.Write(context.Background(), "alrazi", 1, recs)
		require.NoError(t, err)
	}

	cfg := config.DefaultConfig()
	cfg.Output = dir

	for _, from := range []string{"json", "CSV"} {
		got, source, err := loadRecords(context.Background(), cfg, from, "alrazi", 1)
		require.NoError(t, err)
		require.Equal(t, recs, got)
		require.Contains(t, source, dir)
	}

	_, _, err := loadRecords(context.Background(), cfg, "sqlite", "alrazi", 1)
	require.Error(t, err)

	_, _, err = loadRecords(context.Background(), cfg, "xml", "alrazi", 1)
	require.Error(t, err)
}

func TestPrintRecords(t *testing.T) {
	var out bytes.Buffer
	printRecords(&out, []tafsir.Record{
		{SurahNumber: 2, AyahNumber: 255, Text: strings.Repeat("ب", 100) + "\nsecond line"},
	})

	s := out.String()
	require.Contains(t, s, "2:255")
	require.Contains(t, s, strings.Repeat("ب", previewRunes)+"…")
	require.NotContains(t, s, "second line")
}
