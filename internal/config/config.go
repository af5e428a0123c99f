package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/brogergvhs/tafsird/internal/providers"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Output       string   `yaml:"output"`
	Author       string   `yaml:"author"`
	Formats      []string `yaml:"formats"`
	SQLite       string   `yaml:"sqlite"`
	LogFile      string   `yaml:"log_file"`
	Debug        bool     `yaml:"debug"`
	SkipExisting bool     `yaml:"skip_existing"`

	Workers int           `yaml:"workers"`
	Delay   time.Duration `yaml:"delay"`
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`

	BaseURL    string `yaml:"base_url"`
	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	UserAgent  string `yaml:"user_agent"`
	Cloudflare bool   `yaml:"cloudflare"`
}

// Options carries CLI flag values. Zero values leave the profile untouched.
type Options struct {
	IgnoreConfig bool
	Debug        bool
	Output       string
	Author       string
	Formats      []string
	SQLite       string
	LogFile      string
	SkipExisting bool
	Workers      int
	Delay        time.Duration
	Timeout      time.Duration
	Retries      int
	BaseURL      string
	Cookie       string
	CookieFile   string
	UserAgent    string
	Cloudflare   bool
}

const (
	DefaultOutput  = "data"
	DefaultLogFile = "tafsir_extraction.log"
)

func DefaultConfig() *Config {
	return &Config{
		Output:  DefaultOutput,
		Author:  providers.DefaultAuthor,
		Formats: []string{"json", "csv"},
		LogFile: DefaultLogFile,
		Workers: 1,
		Delay:   time.Second,
		Timeout: 30 * time.Second,
		Retries: 3,
		BaseURL: providers.DefaultBaseURL,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func LoadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadMerged loads the active profile (or defaults), applies opts on top and
// returns a description of where the values came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory, run `tafsird config init` to create one)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := LoadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Author != "" {
		c.Author = o.Author
	}
	if len(o.Formats) > 0 {
		c.Formats = o.Formats
	}
	if o.SQLite != "" {
		c.SQLite = o.SQLite
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	if o.Debug {
		c.Debug = true
	}
	if o.SkipExisting {
		c.SkipExisting = true
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.Delay != 0 {
		c.Delay = o.Delay
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Retries != 0 {
		c.Retries = o.Retries
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Cloudflare {
		c.Cloudflare = true
	}
}

func normalizeDefaults(c *Config) {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Author == "" {
		c.Author = providers.DefaultAuthor
	}
	if len(c.Formats) == 0 {
		c.Formats = []string{"json", "csv"}
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Retries < 1 {
		c.Retries = 1
	}
	if c.BaseURL == "" {
		c.BaseURL = providers.DefaultBaseURL
	}
}

func (c *Config) Print(w io.Writer) {
	p := func(format string, args ...any) {
		_, _ = fmt.Fprintf(w, format, args...)
	}

	p(" -output: %s\n", c.Output)
	p(" -author: %s\n", c.Author)
	p(" -formats: %s\n", strings.Join(c.Formats, ", "))
	if c.SQLite != "" {
		p(" -sqlite: %s\n", c.SQLite)
	}
	if c.LogFile != "" {
		p(" -log_file: %s\n", c.LogFile)
	}
	p(" -workers: %d\n", c.Workers)
	p(" -delay: %s\n", c.Delay)
	p(" -timeout: %s\n", c.Timeout)
	p(" -retries: %d\n", c.Retries)
	if c.BaseURL != providers.DefaultBaseURL {
		p(" -base_url: %s\n", c.BaseURL)
	}
	if c.Debug {
		p(" -debug: %t\n", c.Debug)
	}
	if c.SkipExisting {
		p(" -skip_existing: %t\n", c.SkipExisting)
	}
	if c.CookieFile != "" {
		p(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.Cloudflare {
		p(" -cloudflare: %t\n", c.Cloudflare)
	}
}
