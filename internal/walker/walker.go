// Package walker enumerates candidate files under a search root.
package walker

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"fileseek/internal/types"
)

// Walker streams regular-file paths below a root directory. Each call
// to Walk re-walks from scratch; nothing is cached between calls.
type Walker struct {
	exclude map[string]bool
	log     *slog.Logger
}

// New creates a Walker. Directories whose base name appears in
// excludeDirs are pruned during recursive walks; the default is none.
func New(excludeDirs []string, log *slog.Logger) *Walker {
	if log == nil {
		log = slog.Default()
	}
	exclude := make(map[string]bool, len(excludeDirs))
	for _, dir := range excludeDirs {
		exclude[dir] = true
	}
	return &Walker{exclude: exclude, log: log}
}

// Walk validates root eagerly and then streams file paths on the
// returned channel. A missing root fails with PathNotFound and an
// unreadable one with PermissionDenied; errors deeper in the tree only
// prune the affected directory. Non-recursive mode yields the direct
// children of root that are regular files. The channel is closed once
// the walk finishes or ctx is canceled.
func (w *Walker) Walk(ctx context.Context, root string, recursive bool) (<-chan string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, types.PathNotFound(root)
		case errors.Is(err, fs.ErrPermission):
			return nil, types.PermissionDenied(root)
		default:
			return nil, types.PathNotFound(root)
		}
	}

	out := make(chan string, 64)
	go func() {
		defer close(out)
		w.emit(ctx, root, entries, recursive, out)
	}()
	return out, nil
}

func (w *Walker) emit(ctx context.Context, dir string, entries []fs.DirEntry, recursive bool, out chan<- string) {
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if !recursive || w.exclude[entry.Name()] {
				continue
			}
			sub, err := os.ReadDir(path)
			if err != nil {
				w.log.Debug("pruning unreadable directory", "path", path, "error", err)
				continue
			}
			w.emit(ctx, path, sub, true, out)
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}

		select {
		case out <- path:
		case <-ctx.Done():
			return
		}
	}
}
