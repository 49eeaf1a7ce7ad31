package findr

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// Stats holds traversal counters for one walk.
type Stats struct {
	Visited     int64         // Entries classified, root included
	Files       int64         // Regular files seen
	Dirs        int64         // Directories seen
	Symlinks    int64         // Symbolic links seen
	Unknown     int64         // Entries that could not be classified
	Matches     int64         // Entries reported
	Diagnostics int64         // Non-fatal failures
	MaxDepth    uint          // Deepest level visited
	Elapsed     time.Duration // Wall time of the walk
}

// Option configures a Walker.
type Option func(*Walker)

// WithFS sets the filesystem. The default is OSFS.
func WithFS(fsys FS) Option {
	return func(w *Walker) { w.fsys = fsys }
}

// WithMatchFunc sets the match sink.
func WithMatchFunc(fn MatchFunc) Option {
	return func(w *Walker) { w.match = fn }
}

// WithDiagnosticFunc sets the diagnostic sink. Without one, diagnostics are
// written to the logger.
func WithDiagnosticFunc(fn DiagnosticFunc) Option {
	return func(w *Walker) { w.diag = fn }
}

// WithLogger sets the logger used for debug output and, when no diagnostic
// sink is given, for diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Walker) { w.logger = logger }
}

// Walker performs a synchronous, depth-first, pre-order traversal.
// A Walker may be reused but must not be shared between goroutines.
type Walker struct {
	preds  *PredicateSet
	fsys   FS
	match  MatchFunc
	diag   DiagnosticFunc
	logger *zap.Logger

	depth uint
	stats Stats

	// set by Watch
	onDir func(dir string, depth uint)
	seen  map[string]struct{}
}

// NewWalker returns a Walker evaluating preds.
func NewWalker(preds *PredicateSet, opts ...Option) *Walker {
	w := &Walker{
		preds: preds,
		fsys:  OSFS{},
		match: func(string) {},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = zap.NewNop()
	}
	if w.diag == nil {
		w.diag = LogDiagnostics(w.logger)
	}
	return w
}

// Walk traverses root. It fails only when root itself cannot be classified;
// every other failure is delivered as a Diagnostic and the walk continues.
func (w *Walker) Walk(root string) (Stats, error) {
	w.depth = 0
	w.stats = Stats{}

	info, err := w.fsys.Lstat(root)
	if err != nil {
		return w.stats, fmt.Errorf("%w %s: %w", ErrRootInaccessible, root, err)
	}

	w.logger.Debug("starting walk",
		zap.String("root", root),
		zap.Stringer("type", w.preds.Kind()),
	)

	start := time.Now()
	w.visit(root, kindOf(info))
	w.stats.Elapsed = time.Since(start)

	w.logger.Debug("walk finished",
		zap.String("root", root),
		zap.Int64("visited", w.stats.Visited),
		zap.Int64("matches", w.stats.Matches),
		zap.Int64("diagnostics", w.stats.Diagnostics),
		zap.Uint("max_depth", w.stats.MaxDepth),
		zap.Duration("elapsed", w.stats.Elapsed),
	)
	return w.stats, nil
}

// visit applies the decision table to one entry at the current depth.
func (w *Walker) visit(path string, kind EntryKind) {
	w.stats.Visited++
	if w.depth > w.stats.MaxDepth {
		w.stats.MaxDepth = w.depth
	}

	switch kind {
	case RegularFile:
		w.stats.Files++
		if w.preds.Matches(w.fsys, path, kind) {
			w.report(path)
		}
	case SymbolicLink:
		w.stats.Symlinks++
		if w.preds.Matches(w.fsys, path, kind) {
			w.report(path)
		}
	case Directory:
		w.stats.Dirs++
		if w.preds.Matches(w.fsys, path, kind) {
			w.report(path)
		}
		w.descend(path)
	case Unknown:
		w.stats.Unknown++
	}
}

// descend visits the children of dir unless the depth bound has been reached.
func (w *Walker) descend(dir string) {
	if !w.preds.canDescend(w.depth) {
		return
	}

	r, err := w.fsys.ReadDir(dir)
	if err != nil {
		w.diagnose(dir, OpReadDir, err)
		return
	}
	if w.onDir != nil {
		w.onDir(dir, w.depth)
	}

	w.depth++
	for {
		name, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		var listErr *ListingError
		if errors.As(err, &listErr) {
			w.diagnose(dir, OpReadDir, listErr.Err)
			break
		}
		if err != nil {
			path := dir
			if name != "" {
				path = joinPath(dir, name)
			}
			w.diagnose(path, OpReadEntry, err)
			continue
		}
		child := joinPath(dir, name)
		w.visit(child, Classify(w.fsys, child))
	}
	w.depth--
}

func (w *Walker) report(path string) {
	if w.seen != nil {
		if _, ok := w.seen[path]; ok {
			return
		}
		w.seen[path] = struct{}{}
	}
	w.stats.Matches++
	w.match(path)
}

func (w *Walker) diagnose(path string, op Op, err error) {
	w.stats.Diagnostics++
	w.diag(Diagnostic{Path: path, Op: op, Err: err})
}
