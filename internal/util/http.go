package util

import (
	"bufio"
	"context"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"
	"time"

	"github.com/brogergvhs/tafsird/internal/tafsir"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
)

type HTTPClientOptions struct {
	Timeout    time.Duration
	UserAgent  string
	Cookie     string
	CookieFile string
	Cloudflare bool
	Transport  http.RoundTripper
	Logger     *slog.Logger
}

func NewHTTPClient(opts HTTPClientOptions) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	var baseTransport http.RoundTripper
	if opts.Transport != nil {
		baseTransport = opts.Transport
	} else {
		baseTransport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			ForceAttemptHTTP2:   true,
		}
	}

	if opts.Cloudflare {
		baseTransport = cloudflarebp.AddCloudFlareByPass(baseTransport)
	}

	cookieHeader, err := joinCookies(opts.Cookie, opts.CookieFile)
	if err != nil {
		return nil, err
	}

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: roundTripper{
			base:         baseTransport,
			ua:           opts.UserAgent,
			cookieHeader: cookieHeader,
			log:          opts.Logger,
		},
		Jar: jar,
	}

	if opts.Logger != nil {
		opts.Logger.Debug("http client initialized",
			"timeout", opts.Timeout,
			"user_agent", opts.UserAgent,
			"cookie_file", opts.CookieFile,
			"cloudflare", opts.Cloudflare,
		)
	}

	return client, nil
}

type roundTripper struct {
	base         http.RoundTripper
	ua           string
	cookieHeader string
	log          *slog.Logger
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.ua != "" {
		req.Header.Set("User-Agent", rt.ua)
	}

	if rt.cookieHeader != "" && req.Header.Get("Cookie") == "" {
		req.Header.Set("Cookie", rt.cookieHeader)
	}

	if rt.log != nil {
		rt.log.Debug("http request", "method", req.Method, "url", req.URL.String())
	}

	return rt.base.RoundTrip(req)
}

// joinCookies merges the inline cookie string with the first non-empty line
// of the cookie file.
func joinCookies(inline, file string) (string, error) {
	s := strings.TrimSpace(inline)
	if file == "" {
		return s, nil
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}

	sc := bufio.NewScanner(strings.NewReader(string(b)))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if s == "" {
			s = line
		} else {
			s = s + "; " + line
		}
		break
	}

	return s, nil
}

// DoWithRetry GETs target and returns the response only for HTTP 200. Other
// outcomes become a *tafsir.NetworkError; temporary ones are retried with a
// linearly growing backoff.
func DoWithRetry(ctx context.Context, c *http.Client, target string, attempts int, backoff time.Duration) (*http.Response, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr *tafsir.NetworkError
	for i := 1; i <= attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, &tafsir.NetworkError{URL: target, Err: err}
		}

		resp, err := c.Do(req)
		switch {
		case err != nil:
			lastErr = &tafsir.NetworkError{URL: target, Err: err}
		case resp.StatusCode == http.StatusOK:
			return resp, nil
		default:
			_ = resp.Body.Close()
			lastErr = &tafsir.NetworkError{URL: target, StatusCode: resp.StatusCode}
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !lastErr.Temporary() || i == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff * time.Duration(i)):
		}
	}

	return nil, lastErr
}

func PickUserAgent(override string) string {
	if override != "" {
		return override
	}

	return "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
}
