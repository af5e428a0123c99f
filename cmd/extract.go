package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/brogergvhs/tafsird/internal/collector"
	"github.com/brogergvhs/tafsird/internal/config"
	"github.com/brogergvhs/tafsird/internal/driver"
	"github.com/brogergvhs/tafsird/internal/output"
	"github.com/brogergvhs/tafsird/internal/providers/generic"
	"github.com/brogergvhs/tafsird/internal/quran"
	"github.com/brogergvhs/tafsird/internal/store"
	"github.com/brogergvhs/tafsird/internal/ui"
	"github.com/brogergvhs/tafsird/internal/util"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const retryBackoff = 500 * time.Millisecond

var (
	// selection
	flagAuthor string
	flagMode   string
	flagSurah  int
	flagAyah   int
	flagRange  string
	flagList   string

	// output
	flagOutput       string
	flagFormats      []string
	flagSQLite       string
	flagSkipExisting bool
	flagDryRun       bool
	flagYes          bool

	// runtime
	flagWorkers int
	flagDelay   time.Duration
	flagTimeout time.Duration
	flagRetries int
	flagBaseURL string

	// headers/auth
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string
	flagCloudflare bool
)

func init() {
	rootCmd.AddCommand(newExtractCmd())
}

// newExtractCmd builds the extract command. Registering the flags resets
// the bound flag variables to their defaults.
func newExtractCmd() *cobra.Command {
	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract tafsir text per ayah and save it per surah. Uses the defaults from the selected config, overwritten by CLI flags",
		Long: `Extract tafsir text from tafsir.app.

Without --mode or any selection flag the command asks interactively for the
author, the extraction option and the surah/ayah numbers. With a mode but
without the numbers it needs, only the missing numbers are asked for.`,
		Example: `  tafsird extract
  tafsird extract --author alrazi --ayah 255 --surah 2
  tafsird extract --author tabari --surah 1 --format json
  tafsird extract --author qurtubi --range 112-114 --yes
  tafsird extract --author ibn-katheer --mode all --sqlite tafsir.db`,
		Aliases: []string{"ex"},
		RunE:    runExtract,
	}

	// selection
	extractCmd.Flags().StringVar(&flagAuthor, "author", "", "tafsir author key (see `tafsird authors`)")
	extractCmd.Flags().StringVar(&flagMode, "mode", "", "ayah, surah, range, list or all")
	extractCmd.Flags().IntVar(&flagSurah, "surah", 0, "surah number (1-114)")
	extractCmd.Flags().IntVar(&flagAyah, "ayah", 0, "ayah number within --surah")
	extractCmd.Flags().StringVar(&flagRange, "range", "", "inclusive surah range (e.g. 2-5)")
	extractCmd.Flags().StringVar(&flagList, "list", "", "comma separated surah numbers (e.g. 1,36,67)")

	// output
	extractCmd.Flags().StringVar(&flagOutput, "output", "", "output folder (default data)")
	extractCmd.Flags().StringSliceVar(&flagFormats, "format", nil, "output formats: json, csv (default json,csv)")
	extractCmd.Flags().StringVar(&flagSQLite, "sqlite", "", "also store records in this SQLite database")
	extractCmd.Flags().BoolVar(&flagSkipExisting, "skip-existing", false, "skip surahs whose JSON file already exists")
	extractCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show what would be extracted, don't fetch anything")
	extractCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "don't ask for confirmation on multi-surah runs")

	// runtime
	extractCmd.Flags().IntVar(&flagWorkers, "workers", 1, "parallel ayah requests within a surah")
	extractCmd.Flags().DurationVar(&flagDelay, "delay", time.Second, "minimum delay between requests")
	extractCmd.Flags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "per-request timeout")
	extractCmd.Flags().IntVar(&flagRetries, "retries", 3, "attempts per page on transient failures")
	extractCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "site base URL")

	// headers/auth
	extractCmd.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	extractCmd.Flags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	extractCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	extractCmd.Flags().BoolVar(&flagCloudflare, "cloudflare", false, "send Cloudflare-friendly browser headers")

	return extractCmd
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Output:       flagOutput,
		Author:       flagAuthor,
		Formats:      flagFormats,
		SQLite:       flagSQLite,
		LogFile:      flagLogFile,
		SkipExisting: flagSkipExisting,
		BaseURL:      flagBaseURL,
		Cookie:       flagCookie,
		CookieFile:   flagCookieFile,
		UserAgent:    flagUserAgent,
		Cloudflare:   flagCloudflare,
	})
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = max(1, flagWorkers)
	}
	if flags.Changed("delay") {
		cfg.Delay = max(0, flagDelay)
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flags.Changed("retries") {
		cfg.Retries = max(1, flagRetries)
	}

	console := ui.NewConsoleWriter(os.Stderr)
	log, closeLog, err := ui.NewLogger(ui.LogOptions{Debug: cfg.Debug, File: cfg.LogFile, Console: console})
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	log.Debug("config loaded", "source", usedPath)

	req, err := buildRequest(cmd, cfg.Author)
	if err != nil {
		return err
	}

	profile, jobs, err := driver.Plan(req)
	if err != nil {
		return err
	}

	if flagDryRun {
		printPlan(profile.Name, jobs, func(ref quran.AyahRef) string { return profile.URL(cfg.BaseURL, ref) })
		return nil
	}

	if len(jobs) > 1 && !flagYes {
		ok, err := confirm(fmt.Sprintf("Extract %s from %s", surahsLabel(len(jobs)), profile.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:    cfg.Timeout,
		UserAgent:  util.PickUserAgent(cfg.UserAgent),
		Cookie:     cfg.Cookie,
		CookieFile: cfg.CookieFile,
		Cloudflare: cfg.Cloudflare,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	fetcher := generic.NewHTTPFetcher(client, generic.FetcherOptions{
		Delay:    cfg.Delay,
		Attempts: cfg.Retries,
		Backoff:  retryBackoff,
		Logger:   log,
	})
	scr := generic.NewScraper(fetcher, cfg.BaseURL, log)

	sinks, err := output.NewSinks(cfg.Output, cfg.Formats)
	if err != nil {
		return err
	}
	var db *store.DB
	if cfg.SQLite != "" {
		if db, err = store.Open(cfg.SQLite); err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		sinks = append(sinks, db)
	}

	ctx, cancel := util.NotifyInterrupt(cmd.Context(), cfg.Output, log)
	defer cancel()

	pm := ui.NewProgressManager(os.Stdout)
	restoreConsole := console.Redirect(pm)

	drv := driver.New(collector.New(scr, cfg.Workers, log), driver.Options{
		Sinks:        sinks,
		Progress:     pm,
		Logger:       log,
		SkipExisting: cfg.SkipExisting,
		OutputDir:    cfg.Output,
	})

	sum, runErr := drv.Run(ctx, req)
	restoreConsole()
	pm.Close()

	if db != nil {
		if counts, err := db.Count(context.Background()); err == nil {
			log.Info("sqlite updated", "path", db.Path(), "author", profile.Key, "ayahs", counts[profile.Key])
		}
	}

	if sum != nil {
		fmt.Println()
		ui.PrintSummary(os.Stdout, sum, fetcher.BytesRead())
	}

	if runErr != nil {
		util.CleanupTempFiles(cfg.Output, log)
		if errors.Is(runErr, context.Canceled) {
			return fmt.Errorf("extraction interrupted: %w", runErr)
		}
		return runErr
	}

	fmt.Println("\nAll done.")
	return nil
}

// askRequest fills the missing parts of a request interactively.
var askRequest = promptRequest

// buildRequest turns the selection flags into a request. With no selection
// at all it falls back to interactive prompts for everything; with a mode
// it only asks for the numbers that mode still lacks.
func buildRequest(cmd *cobra.Command, defaultAuthor string) (driver.Request, error) {
	req := driver.Request{Author: flagAuthor, Surah: flagSurah, Ayah: flagAyah}

	if flagRange != "" {
		from, to, err := quran.ParseRange(flagRange)
		if err != nil {
			return req, err
		}
		req.From, req.To = from, to
	}
	if flagList != "" {
		nums, err := quran.ParseList(flagList)
		if err != nil {
			return req, err
		}
		req.Surahs = nums
	}

	if flagMode != "" {
		mode, err := driver.ParseMode(flagMode)
		if err != nil {
			return req, err
		}
		req.Mode = mode
	} else {
		req.Mode = inferMode(cmd)
	}

	if req.Mode != "" && req.Author == "" {
		req.Author = defaultAuthor
	}

	if req.Mode == "" || missingNumbers(req) {
		if err := askRequest(&req, defaultAuthor); err != nil {
			return req, err
		}
	}

	if req.Author == "" {
		req.Author = defaultAuthor
	}

	return req, nil
}

// missingNumbers reports whether req's mode still needs a surah, ayah,
// range or list.
func missingNumbers(req driver.Request) bool {
	switch req.Mode {
	case driver.ModeAyah:
		return req.Surah == 0 || req.Ayah == 0
	case driver.ModeSurah:
		return req.Surah == 0
	case driver.ModeRange:
		return req.From == 0 || req.To == 0
	case driver.ModeList:
		return len(req.Surahs) == 0
	}
	return false
}

func inferMode(cmd *cobra.Command) driver.Mode {
	flags := cmd.Flags()
	switch {
	case flags.Changed("ayah"):
		return driver.ModeAyah
	case flags.Changed("range"):
		return driver.ModeRange
	case flags.Changed("list"):
		return driver.ModeList
	case flags.Changed("surah"):
		return driver.ModeSurah
	}
	return ""
}

func printPlan(author string, jobs []driver.Job, url func(quran.AyahRef) string) {
	total := 0
	for _, j := range jobs {
		total += j.Ayahs()
	}

	fmt.Printf("Dry-run: %s, %s, %d ayahs.\n\n", author, surahsLabel(len(jobs)), total)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Surah", "Name", "Ayahs", "First URL"})
	for _, j := range jobs {
		t.AppendRow(table.Row{
			j.Surah.Number,
			j.Surah.NameEnglish,
			fmt.Sprintf("%d-%d", j.FirstAyah, j.LastAyah),
			url(quran.AyahRef{Surah: j.Surah.Number, Ayah: j.FirstAyah}),
		})
	}
	t.Render()
}
