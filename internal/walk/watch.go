package findr

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch walks root like Walk and then keeps evaluating entries that are
// created or written under every directory the walk listed, until ctx is
// done. Events are handled one at a time on the calling goroutine, through
// the same decision table and depth bound as the walk. Each path is reported
// at most once per call.
func (w *Walker) Watch(ctx context.Context, root string) (Stats, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return Stats{}, fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	// watched directories keyed by their cleaned path, which is how fsnotify
	// names events
	dirs := make(map[string]watchedDir)

	w.seen = make(map[string]struct{})
	w.onDir = func(dir string, depth uint) {
		if err := watcher.Add(dir); err != nil {
			w.diagnose(dir, OpWatch, err)
			return
		}
		dirs[filepath.Clean(dir)] = watchedDir{path: dir, depth: depth}
	}
	defer func() {
		w.onDir = nil
		w.seen = nil
	}()

	if _, err := w.Walk(root); err != nil {
		return w.stats, err
	}
	w.logger.Debug("watching", zap.String("root", root), zap.Int("dirs", len(dirs)))

	for {
		select {
		case <-ctx.Done():
			return w.stats, nil
		case event, ok := <-watcher.Events:
			if !ok {
				return w.stats, nil
			}
			w.handleEvent(event, dirs)
		case err, ok := <-watcher.Errors:
			if !ok {
				return w.stats, nil
			}
			w.diagnose(root, OpWatch, err)
		}
	}
}

// watchedDir keeps a directory as it was walked.
type watchedDir struct {
	path  string
	depth uint
}

func (w *Walker) handleEvent(event fsnotify.Event, dirs map[string]watchedDir) {
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		delete(dirs, filepath.Clean(event.Name))
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	parent, ok := dirs[filepath.Dir(event.Name)]
	if !ok {
		return
	}
	path := joinPath(parent.path, filepath.Base(event.Name))

	kind := Classify(w.fsys, path)
	if !event.Has(fsnotify.Create) && kind != RegularFile {
		// a write only changes what the size predicate sees
		return
	}

	w.logger.Debug("event", zap.String("path", path), zap.Stringer("op", event.Op))
	w.depth = parent.depth + 1
	w.visit(path, kind)
}
