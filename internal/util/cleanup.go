package util

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

// NotifyInterrupt returns a context that is canceled on SIGINT or SIGTERM.
// A second signal removes leftover temp files under outputDir and exits.
func NotifyInterrupt(parent context.Context, outputDir string, log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sig := make(chan os.Signal, 2)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sig:
		case <-ctx.Done():
			signal.Stop(sig)
			return
		}

		log.Warn("interrupt received, finishing current ayah")
		cancel()

		<-sig
		log.Warn("second interrupt, exiting")
		CleanupTempFiles(outputDir, log)
		RemoveIfEmpty(outputDir, log)
		os.Exit(1)
	}()

	return ctx, func() {
		signal.Stop(sig)
		cancel()
	}
}

// CleanupTempFiles removes unfinished atomic writes anywhere under dir.
func CleanupTempFiles(dir string, log *slog.Logger) int {
	removed := 0
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !IsTempFile(d.Name()) {
			return nil
		}

		if err := os.Remove(path); err != nil {
			log.Error("cleanup failed", "path", path, "err", err)
		} else {
			log.Info("removed unfinished file", "path", path)
			removed++
		}
		return nil
	})

	return removed
}

func RemoveIfEmpty(dir string, log *slog.Logger) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	if len(entries) == 0 {
		if err := os.Remove(dir); err == nil {
			log.Info("removed empty output folder", "path", dir)
		}
	}
}
