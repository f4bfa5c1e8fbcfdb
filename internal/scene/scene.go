// Package scene loads the STL or OpenSCAD file a host displays and keeps
// it fresh while the file is edited.
package scene

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/philipparndt/gizmo/pkg/openscad"
	"github.com/philipparndt/gizmo/pkg/stl"
	"github.com/philipparndt/gizmo/pkg/watcher"
)

// Load reads an .stl file or renders a .scad file. It also returns the
// files whose changes invalidate the result.
func Load(ctx context.Context, path string) (*stl.Model, []string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".scad":
		renderer := openscad.NewRenderer(filepath.Dir(path))
		deps, err := renderer.ResolveDependencies(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve dependencies: %w", err)
		}
		model, err := renderer.Render(ctx, path)
		if err != nil {
			return nil, deps, err
		}
		return model, deps, nil

	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, []string{path}, fmt.Errorf("failed to parse STL file: %w", err)
		}
		return model, []string{path}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported file type: %s (expected .stl or .scad)", ext)
	}
}

// Reloader reloads a scene in the background whenever one of its files
// changes. Hosts poll Take from their frame loop so the new model is
// applied on the UI thread.
type Reloader struct {
	path string
	fw   *watcher.FileWatcher

	mu      sync.Mutex
	pending *stl.Model
	loading bool

	logger *slog.Logger
}

// Watch starts watching the files of the scene at path
func Watch(ctx context.Context, path string, files []string) (*Reloader, error) {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return nil, err
	}
	r := &Reloader{
		path:   path,
		fw:     fw,
		logger: slog.Default().With("component", "scene", "file", path),
	}
	if err := fw.Watch(files, func(changed string) { r.reload(ctx, changed) }); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch files: %w", err)
	}
	fw.Start(ctx)
	r.logger.Info("watching scene", "files", len(files))
	return r, nil
}

func (r *Reloader) reload(ctx context.Context, changed string) {
	r.mu.Lock()
	if r.loading {
		r.mu.Unlock()
		return
	}
	r.loading = true
	r.mu.Unlock()

	start := time.Now()
	model, _, err := Load(ctx, r.path)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if err != nil {
		r.logger.Warn("scene reload failed", "changed", changed, "err", err)
		return
	}
	r.pending = model
	r.logger.Info("scene reloaded", "triangles", model.TriangleCount(), "elapsed", time.Since(start))
}

// Take returns a freshly loaded model once, or nil
func (r *Reloader) Take() *stl.Model {
	r.mu.Lock()
	defer r.mu.Unlock()
	model := r.pending
	r.pending = nil
	return model
}

// Close stops watching
func (r *Reloader) Close() error {
	return r.fw.Close()
}
