// Package driver runs an extraction request: it plans per-surah jobs, drives
// the collector through them one surah at a time and hands each finished
// batch to the output sinks.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/brogergvhs/tafsird/internal/collector"
	"github.com/brogergvhs/tafsird/internal/output"
	"github.com/brogergvhs/tafsird/internal/quran"
	"github.com/brogergvhs/tafsird/internal/tafsir"
)

// Progress hands out a tracker per surah. The ui package renders them as
// progress bars.
type Progress interface {
	Track(label string) collector.Tracker
}

type Options struct {
	Sinks    []output.Sink
	Progress Progress
	Logger   *slog.Logger

	// SkipExisting skips a job when its JSON file already exists under
	// OutputDir.
	SkipExisting bool
	OutputDir    string
}

type Driver struct {
	collector *collector.Collector
	opts      Options
	log       *slog.Logger
}

func New(c *collector.Collector, opts Options) *Driver {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Driver{collector: c, opts: opts, log: log}
}

type Summary struct {
	Author        string
	Jobs          int
	SurahsWritten int
	SurahsExisted int
	Records       int
	Skipped       []quran.AyahRef
	Files         []string
	Elapsed       time.Duration
}

// Run processes every job of req in ascending surah order. A surah that
// yields no records is not written. The returned summary is valid even when
// err is non-nil and covers the surahs finished before the failure.
func (d *Driver) Run(ctx context.Context, req Request) (*Summary, error) {
	start := time.Now()

	profile, jobs, err := Plan(req)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Author: profile.Key, Jobs: len(jobs)}
	defer func() { sum.Elapsed = time.Since(start) }()

	d.log.Info("starting extraction",
		"author", profile.Key,
		"mode", req.Mode,
		"surahs", len(jobs),
	)

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		if d.opts.SkipExisting && d.exists(profile.Key, job.Surah.Number) {
			d.log.Info("output exists, skipping", "author", profile.Key, "surah", job.Surah.Number)
			sum.SurahsExisted++
			continue
		}

		d.log.Info("extracting", "author", profile.Key, "job", job.String())

		var tr collector.Tracker
		if d.opts.Progress != nil {
			tr = d.opts.Progress.Track(fmt.Sprintf("Surah %d", job.Surah.Number))
		}

		outcomes, err := d.collector.CollectSurah(ctx, profile, job.Surah, job.FirstAyah, job.LastAyah, tr)
		if err != nil {
			return sum, fmt.Errorf("surah %d: %w", job.Surah.Number, err)
		}

		records := tafsir.Records(outcomes)
		for _, o := range outcomes {
			if o.Skipped() {
				sum.Skipped = append(sum.Skipped, o.Ref)
			}
		}

		if len(records) == 0 {
			d.log.Warn("no records extracted, nothing written", "author", profile.Key, "surah", job.Surah.Number)
			continue
		}

		for _, sink := range d.opts.Sinks {
			path, err := sink.Write(ctx, profile.Key, job.Surah.Number, records)
			if err != nil {
				return sum, fmt.Errorf("surah %d: %s: %w", job.Surah.Number, sink.Name(), err)
			}
			sum.Files = append(sum.Files, path)
			d.log.Info("data saved", "sink", sink.Name(), "path", path, "records", len(records))
		}

		sum.SurahsWritten++
		sum.Records += len(records)

		d.log.Info("surah done",
			"author", profile.Key,
			"surah", job.Surah.Number,
			"records", len(records),
			"skipped", tafsir.CountSkipped(outcomes),
		)
	}

	return sum, nil
}

// exists reports whether a readable, non-empty JSON file is already there
// for (author, surah). A corrupt file counts as missing and is rewritten.
func (d *Driver) exists(author string, surah int) bool {
	path := output.Path(d.opts.OutputDir, author, surah, output.FormatJSON)
	records, err := output.ReadJSON(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			d.log.Warn("existing output unreadable, extracting again", "path", path, "err", err)
		}
		return false
	}
	return len(records) > 0
}
