package generic

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/brogergvhs/tafsird/internal/tafsir"
	"github.com/brogergvhs/tafsird/internal/util"

	"golang.org/x/time/rate"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type FetcherOptions struct {
	// Delay is the minimum spacing between two requests. Zero disables
	// pacing.
	Delay    time.Duration
	Attempts int
	Backoff  time.Duration
	Logger   *slog.Logger
}

type HTTPFetcher struct {
	client   *http.Client
	limiter  *rate.Limiter
	attempts int
	backoff  time.Duration
	log      *slog.Logger

	bytes atomic.Int64
}

func NewHTTPFetcher(c *http.Client, opts FetcherOptions) *HTTPFetcher {
	limit := rate.Inf
	if opts.Delay > 0 {
		limit = rate.Every(opts.Delay)
	}
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &HTTPFetcher{
		client:   c,
		limiter:  rate.NewLimiter(limit, 1),
		attempts: opts.Attempts,
		backoff:  opts.Backoff,
		log:      opts.Logger,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, target string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &tafsir.NetworkError{URL: target, Err: err}
	}

	resp, err := util.DoWithRetry(ctx, f.client, target, f.attempts, f.backoff)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			f.log.Debug("failed to close response body", "url", target, "err", cerr)
		}
	}()

	var buf bytes.Buffer
	if resp.ContentLength > 0 {
		buf.Grow(int(resp.ContentLength))
	}

	n, err := util.CopyCounting(&buf, resp.Body, nil)
	f.bytes.Add(n)
	if err != nil {
		return nil, &tafsir.NetworkError{URL: target, Err: err}
	}

	return buf.Bytes(), nil
}

// BytesRead is the total body size received so far.
func (f *HTTPFetcher) BytesRead() int64 {
	return f.bytes.Load()
}
