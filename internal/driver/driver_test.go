package driver

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/brogergvhs/tafsird/internal/collector"
	"github.com/brogergvhs/tafsird/internal/output"
	"github.com/brogergvhs/tafsird/internal/providers/generic"
	"github.com/brogergvhs/tafsird/internal/quran"
	"github.com/brogergvhs/tafsird/internal/tafsir"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// pageFetcher serves a fixed page per URL, or fails for the listed ones.
type pageFetcher struct {
	mu    sync.Mutex
	calls int
	fail  map[string]bool
}

func (f *pageFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.fail[url] {
		return []byte(`<html><body><p>maintenance</p></body></html>`), nil
	}
	return []byte(fmt.Sprintf(`<html><body><div id="preloaded-text"><p>commentary for %s</p></div></body></html>`, url)), nil
}

type recordingSink struct {
	mu     sync.Mutex
	writes map[int]int
	order  []int
	err    error
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Write(_ context.Context, author string, surah int, records []tafsir.Record) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writes == nil {
		s.writes = map[int]int{}
	}
	s.writes[surah]++
	s.order = append(s.order, surah)
	return fmt.Sprintf("%s/%d", author, surah), nil
}

type trackerCount struct {
	mu     sync.Mutex
	labels []string
}

func (p *trackerCount) Track(label string) collector.Tracker {
	p.mu.Lock()
	p.labels = append(p.labels, label)
	p.mu.Unlock()
	return nil
}

func newDriver(f generic.Fetcher, opts Options) *Driver {
	scr := generic.NewScraper(f, "", discardLogger())
	opts.Logger = discardLogger()
	return New(collector.New(scr, 1, discardLogger()), opts)
}

func TestPlan(t *testing.T) {
	testCases := []struct {
		name   string
		req    Request
		surahs []int
		ayahs  int
	}{
		{"ayah", Request{Author: "alrazi", Mode: ModeAyah, Surah: 2, Ayah: 255}, []int{2}, 1},
		{"surah", Request{Author: "tabari", Mode: ModeSurah, Surah: 1}, []int{1}, 7},
		{"range", Request{Author: "qurtubi", Mode: ModeRange, From: 112, To: 114}, []int{112, 113, 114}, 4 + 5 + 6},
		{"list", Request{Author: "alrazi", Mode: ModeList, Surahs: []int{114, 1, 114}}, []int{1, 114}, 13},
		{"all", Request{Author: "alaloosi", Mode: ModeAll}, nil, quran.AyahCount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, jobs, err := Plan(tc.req)
			require.NoError(t, err)

			total := 0
			var nums []int
			for _, j := range jobs {
				nums = append(nums, j.Surah.Number)
				total += j.Ayahs()
			}
			if tc.surahs != nil {
				require.Equal(t, tc.surahs, nums)
			} else {
				require.Len(t, nums, quran.SurahCount)
			}
			require.Equal(t, tc.ayahs, total)
		})
	}
}

func TestPlanInvalid(t *testing.T) {
	bad := []Request{
		{Author: "unknown", Mode: ModeSurah, Surah: 1},
		{Author: "alrazi", Mode: ModeSurah, Surah: 115},
		{Author: "alrazi", Mode: ModeAyah, Surah: 1, Ayah: 8},
		{Author: "alrazi", Mode: ModeRange, From: 5, To: 2},
		{Author: "alrazi", Mode: ModeRange, From: 0, To: 2},
		{Author: "alrazi", Mode: ModeRange, From: 1, To: 115},
		{Author: "alrazi", Mode: ModeRange, From: 1, To: math.MaxInt},
		{Author: "alrazi", Mode: ModeList},
		{Author: "alrazi", Mode: "everything"},
	}

	for _, req := range bad {
		_, _, err := Plan(req)
		var inputErr *quran.InputError
		require.ErrorAs(t, err, &inputErr, "%+v", req)
	}
}

func TestRunInvalidInputFetchesNothing(t *testing.T) {
	f := &pageFetcher{}
	d := newDriver(f, Options{Sinks: []output.Sink{&recordingSink{}}})

	_, err := d.Run(context.Background(), Request{Author: "alrazi", Mode: ModeSurah, Surah: 0})
	require.Error(t, err)
	require.Zero(t, f.calls)
}

func TestRunWholeQuranWritesEachSurahOnce(t *testing.T) {
	sink := &recordingSink{}
	progress := &trackerCount{}
	d := newDriver(&pageFetcher{}, Options{Sinks: []output.Sink{sink}, Progress: progress})

	sum, err := d.Run(context.Background(), Request{Author: "alrazi", Mode: ModeAll})
	require.NoError(t, err)

	require.Len(t, sink.writes, quran.SurahCount)
	for n := 1; n <= quran.SurahCount; n++ {
		require.Equal(t, 1, sink.writes[n], "surah %d", n)
		require.Equal(t, n, sink.order[n-1])
	}
	require.Equal(t, quran.SurahCount, sum.SurahsWritten)
	require.Equal(t, quran.AyahCount, sum.Records)
	require.Empty(t, sum.Skipped)
	require.Len(t, progress.labels, quran.SurahCount)
}

func TestRunSkipsFailedAyah(t *testing.T) {
	dir := t.TempDir()
	f := &pageFetcher{fail: map[string]bool{"https://tafsir.app/alrazi/1/5": true}}
	d := newDriver(f, Options{Sinks: []output.Sink{output.JSONSink{Dir: dir}}})

	sum, err := d.Run(context.Background(), Request{Author: "alrazi", Mode: ModeSurah, Surah: 1})
	require.NoError(t, err)
	require.Equal(t, 6, sum.Records)
	require.Equal(t, []quran.AyahRef{{Surah: 1, Ayah: 5}}, sum.Skipped)

	recs, err := output.ReadJSON(filepath.Join(dir, "alrazi", "1.json"))
	require.NoError(t, err)
	require.Len(t, recs, 6)

	var ayahs []int
	for _, r := range recs {
		ayahs = append(ayahs, r.AyahNumber)
	}
	require.Equal(t, []int{1, 2, 3, 4, 6, 7}, ayahs)
}

func TestRunSurahOneEndToEnd(t *testing.T) {
	dir := t.TempDir()
	sinks, err := output.NewSinks(dir, []string{"json", "csv"})
	require.NoError(t, err)

	d := newDriver(&pageFetcher{}, Options{Sinks: sinks})
	sum, err := d.Run(context.Background(), Request{Author: "alrazi", Mode: ModeSurah, Surah: 1})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "alrazi", "1.json"),
		filepath.Join(dir, "alrazi", "1.csv"),
	}, sum.Files)

	recs, err := output.ReadJSON(filepath.Join(dir, "alrazi", "1.json"))
	require.NoError(t, err)
	require.Len(t, recs, 7)

	seen := map[int]bool{}
	for i, r := range recs {
		require.Equal(t, i+1, r.AyahNumber)
		require.Equal(t, 1, r.SurahNumber)
		require.Equal(t, "alrazi", r.Author)
		require.Equal(t, fmt.Sprintf("commentary for https://tafsir.app/alrazi/1/%d", i+1), r.Text)
		require.False(t, seen[r.AyahNumber])
		seen[r.AyahNumber] = true
	}

	fh, err := os.Open(filepath.Join(dir, "alrazi", "1.csv"))
	require.NoError(t, err)
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 8)
	require.Equal(t, "surah_number", rows[0][0])
}

func TestRunSingleAyah(t *testing.T) {
	sink := &recordingSink{}
	f := &pageFetcher{}
	d := newDriver(f, Options{Sinks: []output.Sink{sink}})

	sum, err := d.Run(context.Background(), Request{Author: "ibn-katheer", Mode: ModeAyah, Surah: 2, Ayah: 255})
	require.NoError(t, err)
	require.Equal(t, 1, sum.Records)
	require.Equal(t, 1, f.calls)
	require.Equal(t, map[int]int{2: 1}, sink.writes)
}

func TestRunNothingExtracted(t *testing.T) {
	sink := &recordingSink{}
	fail := map[string]bool{}
	for a := 1; a <= 3; a++ {
		fail[fmt.Sprintf("https://tafsir.app/alrazi/103/%d", a)] = true
	}
	d := newDriver(&pageFetcher{fail: fail}, Options{Sinks: []output.Sink{sink}})

	sum, err := d.Run(context.Background(), Request{Author: "alrazi", Mode: ModeSurah, Surah: 103})
	require.NoError(t, err)
	require.Zero(t, sum.SurahsWritten)
	require.Len(t, sum.Skipped, 3)
	require.Empty(t, sink.writes)
}

func TestRunSinkErrorAborts(t *testing.T) {
	boom := errors.New("disk full")
	d := newDriver(&pageFetcher{}, Options{Sinks: []output.Sink{&recordingSink{err: boom}}})

	sum, err := d.Run(context.Background(), Request{Author: "alrazi", Mode: ModeRange, From: 1, To: 3})
	require.ErrorIs(t, err, boom)
	require.Zero(t, sum.SurahsWritten)
}

func TestRunSkipExisting(t *testing.T) {
	dir := t.TempDir()
	_, err := output.JSONSink{Dir: dir}.Write(context.Background(), "alrazi", 113, []tafsir.Record{{SurahNumber: 113, AyahNumber: 1}})
	require.NoError(t, err)

	f := &pageFetcher{}
	sink := &recordingSink{}
	d := newDriver(f, Options{Sinks: []output.Sink{sink}, SkipExisting: true, OutputDir: dir})

	sum, err := d.Run(context.Background(), Request{Author: "alrazi", Mode: ModeRange, From: 113, To: 114})
	require.NoError(t, err)
	require.Equal(t, 1, sum.SurahsExisted)
	require.Equal(t, map[int]int{114: 1}, sink.writes)
	require.Equal(t, 6, f.calls)
}

func TestRunSkipExistingRewritesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := output.Path(dir, "alrazi", 113, output.FormatJSON)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`[{"surah_number": 113,`), 0644))

	f := &pageFetcher{}
	d := newDriver(f, Options{Sinks: []output.Sink{output.JSONSink{Dir: dir}}, SkipExisting: true, OutputDir: dir})

	sum, err := d.Run(context.Background(), Request{Author: "alrazi", Mode: ModeSurah, Surah: 113})
	require.NoError(t, err)
	require.Zero(t, sum.SurahsExisted)
	require.Equal(t, 1, sum.SurahsWritten)
	require.Equal(t, 5, f.calls)

	recs, err := output.ReadJSON(path)
	require.NoError(t, err)
	require.Len(t, recs, 5)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := newDriver(&pageFetcher{}, Options{Sinks: []output.Sink{&recordingSink{}}})
	sum, err := d.Run(ctx, Request{Author: "alrazi", Mode: ModeAll})
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, sum.SurahsWritten)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Range ")
	require.NoError(t, err)
	require.Equal(t, ModeRange, m)

	_, err = ParseMode("x")
	require.Error(t, err)
}
