package ui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

type LogOptions struct {
	Debug bool
	// File is appended to; empty disables the log file.
	File    string
	Console io.Writer
}

// NewLogger returns a text logger writing to the console and, when set, to
// the append-only log file. The returned close func releases the file.
func NewLogger(opts LogOptions) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	w := console
	closeFn := func() error { return nil }

	if opts.File != "" {
		if dir := filepath.Dir(opts.File); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, fmt.Errorf("create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(console, f)
		closeFn = f.Close
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeFn, nil
}

// ConsoleWriter is the console side of a logger. Its target can be swapped
// while the logger is in use, so log lines can go through the progress bars
// during a run.
type ConsoleWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleWriter(w io.Writer) *ConsoleWriter {
	return &ConsoleWriter{w: w}
}

func (c *ConsoleWriter) Write(b []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Write(b)
}

// Redirect sends writes to w until the returned restore func is called.
func (c *ConsoleWriter) Redirect(w io.Writer) (restore func()) {
	c.mu.Lock()
	prev := c.w
	c.w = w
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		c.w = prev
		c.mu.Unlock()
	}
}
