package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/philipparndt/gizmo/pkg/watcher"
)

// Watch reloads path whenever it changes and hands every valid result to
// onChange. Invalid files are logged and skipped. onChange runs on the
// watcher goroutine. The returned function stops watching.
func Watch(ctx context.Context, path string, onChange func(Config)) (func() error, error) {
	fw, err := watcher.NewFileWatcher(250 * time.Millisecond)
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("component", "config")
	reload := func(string) {
		cfg, err := Load(path)
		if err != nil {
			logger.Warn("config reload failed", "err", err)
			return
		}
		logger.Info("config reloaded", "file", path)
		onChange(cfg)
	}

	if err := fw.Watch([]string{path}, reload); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch config: %w", err)
	}
	fw.Start(ctx)
	return fw.Close, nil
}
