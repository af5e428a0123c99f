// Package collector turns a surah and an ayah range into an ordered batch of
// per-ayah outcomes.
package collector

import (
	"context"
	"log/slog"

	"github.com/brogergvhs/tafsird/internal/providers"
	"github.com/brogergvhs/tafsird/internal/quran"
	"github.com/brogergvhs/tafsird/internal/tafsir"

	"golang.org/x/sync/errgroup"
)

// Tracker receives per-ayah progress for one surah.
type Tracker interface {
	SetTotal(total int)
	Increment()
	MarkDone()
}

type nopTracker struct{}

func (nopTracker) SetTotal(int) {}
func (nopTracker) Increment()   {}
func (nopTracker) MarkDone()    {}

type Collector struct {
	scraper providers.Scraper
	workers int
	log     *slog.Logger
}

func New(s providers.Scraper, workers int, log *slog.Logger) *Collector {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Collector{scraper: s, workers: workers, log: log}
}

// CollectSurah fetches ayahs first..last of s. Outcomes come back in ayah
// order whatever the worker count. A failing ayah is logged and returned as
// a skipped outcome; only cancellation or an error unrelated to the ayah
// stops the batch.
func (c *Collector) CollectSurah(
	ctx context.Context,
	p providers.Profile,
	s quran.Surah,
	first, last int,
	tr Tracker,
) ([]tafsir.Outcome, error) {
	refs, err := s.Refs(first, last)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		tr = nopTracker{}
	}

	tr.SetTotal(len(refs))
	defer tr.MarkDone()

	outcomes := make([]tafsir.Outcome, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, ref := range refs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			rec, err := c.scraper.GetTafsir(gctx, p, ref)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				if !tafsir.IsSkippable(err) {
					return err
				}
				c.log.Warn("skipping ayah", "author", p.Key, "ayah", ref.String(), "err", err)
			}

			outcomes[i] = tafsir.Outcome{Ref: ref, Record: rec, Err: err}

			tr.Increment()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return outcomes, nil
}
