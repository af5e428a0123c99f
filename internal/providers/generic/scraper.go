package generic

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/brogergvhs/tafsird/internal/providers"
	"github.com/brogergvhs/tafsird/internal/quran"
	"github.com/brogergvhs/tafsird/internal/tafsir"
)

type Scraper struct {
	fetcher Fetcher
	baseURL string
	log     *slog.Logger
	now     func() time.Time
}

func NewScraper(f Fetcher, baseURL string, log *slog.Logger) *Scraper {
	if log == nil {
		log = slog.Default()
	}
	return &Scraper{
		fetcher: f,
		baseURL: baseURL,
		log:     log,
		now:     time.Now,
	}
}

var _ providers.Scraper = (*Scraper)(nil)

func (s *Scraper) URL(p providers.Profile, ref quran.AyahRef) string {
	return p.URL(s.baseURL, ref)
}

func (s *Scraper) GetTafsir(ctx context.Context, p providers.Profile, ref quran.AyahRef) (tafsir.Record, error) {
	surah, err := quran.Lookup(ref.Surah)
	if err != nil {
		return tafsir.Record{}, err
	}

	target := s.URL(p, ref)
	s.log.Debug("extracting", "author", p.Key, "ayah", ref.String(), "url", target)

	body, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return tafsir.Record{}, err
	}

	text, err := ExtractText(bytes.NewReader(body), p.Selector)
	if err != nil {
		var extErr *tafsir.ExtractionError
		if errors.As(err, &extErr) {
			extErr.URL = target
		}
		return tafsir.Record{}, fmt.Errorf("ayah %s: %w", ref, err)
	}

	return tafsir.NewRecord(surah, ref.Ayah, p.Key, p.Name, text, target, s.now()), nil
}
