package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/brogergvhs/tafsird/internal/providers"
	"github.com/brogergvhs/tafsird/internal/quran"
	"github.com/brogergvhs/tafsird/internal/tafsir"

	"github.com/stretchr/testify/require"
)

type fakeScraper struct {
	mu     sync.Mutex
	calls  []quran.AyahRef
	failOn map[quran.AyahRef]error
}

func (f *fakeScraper) GetTafsir(_ context.Context, p providers.Profile, ref quran.AyahRef) (tafsir.Record, error) {
	f.mu.Lock()
	f.calls = append(f.calls, ref)
	f.mu.Unlock()

	if err, ok := f.failOn[ref]; ok {
		return tafsir.Record{}, err
	}
	return tafsir.Record{
		SurahNumber: ref.Surah,
		AyahNumber:  ref.Ayah,
		Author:      p.Key,
		Text:        fmt.Sprintf("tafsir %s", ref),
	}, nil
}

type countingTracker struct {
	total int
	done  atomic.Int32
	final bool
}

func (c *countingTracker) SetTotal(n int) { c.total = n }
func (c *countingTracker) Increment()     { c.done.Add(1) }
func (c *countingTracker) MarkDone()      { c.final = true }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustSurah(t *testing.T, n int) quran.Surah {
	t.Helper()
	s, err := quran.Lookup(n)
	require.NoError(t, err)
	return s
}

func mustProfile(t *testing.T) providers.Profile {
	t.Helper()
	p, err := providers.Lookup("alrazi")
	require.NoError(t, err)
	return p
}

func TestCollectSurahOrdered(t *testing.T) {
	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			scr := &fakeScraper{}
			c := New(scr, workers, discardLogger())
			tr := &countingTracker{}

			surah := mustSurah(t, 2)
			outcomes, err := c.CollectSurah(context.Background(), mustProfile(t), surah, 1, surah.Ayahs, tr)
			require.NoError(t, err)
			require.Len(t, outcomes, 286)

			recs := tafsir.Records(outcomes)
			require.Len(t, recs, 286)
			for i, r := range recs {
				require.Equal(t, i+1, r.AyahNumber)
			}

			require.Equal(t, 286, tr.total)
			require.Equal(t, int32(286), tr.done.Load())
			require.True(t, tr.final)
		})
	}
}

func TestCollectSurahSkipsFailures(t *testing.T) {
	scr := &fakeScraper{failOn: map[quran.AyahRef]error{
		{Surah: 1, Ayah: 4}: &tafsir.ExtractionError{Selector: "#preloaded-text", Reason: "container not found"},
		{Surah: 1, Ayah: 6}: fmt.Errorf("ayah 1:6: %w", &tafsir.NetworkError{URL: "u", StatusCode: 500}),
	}}
	c := New(scr, 1, discardLogger())

	outcomes, err := c.CollectSurah(context.Background(), mustProfile(t), mustSurah(t, 1), 1, 7, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 7)
	require.Equal(t, 2, tafsir.CountSkipped(outcomes))
	require.True(t, outcomes[3].Skipped())
	require.True(t, outcomes[5].Skipped())

	var ayahs []int
	for _, r := range tafsir.Records(outcomes) {
		ayahs = append(ayahs, r.AyahNumber)
	}
	require.Equal(t, []int{1, 2, 3, 5, 7}, ayahs)
	require.Len(t, scr.calls, 7)
}

func TestCollectSurahSubRange(t *testing.T) {
	scr := &fakeScraper{}
	c := New(scr, 1, discardLogger())

	outcomes, err := c.CollectSurah(context.Background(), mustProfile(t), mustSurah(t, 2), 255, 255, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.Equal(t, quran.AyahRef{Surah: 2, Ayah: 255}, outcomes[0].Ref)

	_, err = c.CollectSurah(context.Background(), mustProfile(t), mustSurah(t, 1), 1, 9, nil)
	var inputErr *quran.InputError
	require.ErrorAs(t, err, &inputErr)
	require.Empty(t, scr.calls[1:])
}

func TestCollectSurahFatalError(t *testing.T) {
	boom := errors.New("boom")
	scr := &fakeScraper{failOn: map[quran.AyahRef]error{{Surah: 1, Ayah: 2}: boom}}
	c := New(scr, 1, discardLogger())

	_, err := c.CollectSurah(context.Background(), mustProfile(t), mustSurah(t, 1), 1, 7, nil)
	require.ErrorIs(t, err, boom)
}

func TestCollectSurahCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(&fakeScraper{}, 1, discardLogger())
	_, err := c.CollectSurah(ctx, mustProfile(t), mustSurah(t, 1), 1, 7, nil)
	require.ErrorIs(t, err, context.Canceled)
}
