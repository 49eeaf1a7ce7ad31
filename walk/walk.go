package walk

import (
	"context"

	internal "github.com/TFMV/findr/internal/walk"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Re-export the types from the internal package
type (
	// EntryKind classifies a filesystem entry without following symbolic links.
	EntryKind = internal.EntryKind

	// SizeOp selects how a SizeConstraint compares a length.
	SizeOp = internal.SizeOp

	// SizeConstraint compares a file length against a byte count.
	SizeConstraint = internal.SizeConstraint

	// NameSources holds the raw name patterns. Exactly one must be set.
	NameSources = internal.NameSources

	// NameMatcher matches the final component of a path.
	NameMatcher = internal.NameMatcher

	// Config is the resolved, unvalidated search configuration.
	Config = internal.Config

	// PredicateSet is an immutable, validated bundle of matching criteria.
	PredicateSet = internal.PredicateSet

	// FS is the filesystem surface the Walker needs.
	FS = internal.FS

	// DirReader enumerates the immediate children of one directory.
	DirReader = internal.DirReader

	// ListingError ends a directory listing that failed partway through.
	ListingError = internal.ListingError

	// OSFS reads the host filesystem.
	OSFS = internal.OSFS

	// AferoFS adapts an afero.Fs to FS.
	AferoFS = internal.AferoFS

	// Walker performs a synchronous, depth-first, pre-order traversal.
	Walker = internal.Walker

	// Option configures a Walker.
	Option = internal.Option

	// Stats holds traversal counters for one walk.
	Stats = internal.Stats

	// Diagnostic is a non-fatal traversal-time failure.
	Diagnostic = internal.Diagnostic

	// Op names the filesystem call behind a Diagnostic.
	Op = internal.Op

	// MatchFunc receives each matched path exactly as it was walked.
	MatchFunc = internal.MatchFunc

	// DiagnosticFunc receives each traversal-time failure.
	DiagnosticFunc = internal.DiagnosticFunc

	// Collector records matches and diagnostics in memory.
	Collector = internal.Collector

	// LogLevel defines the verbosity of logging.
	LogLevel = internal.LogLevel

	// LogOptions configures NewLogger.
	LogOptions = internal.LogOptions
)

// Re-export all the constants
const (
	// Entry kinds
	Unknown      = internal.Unknown
	RegularFile  = internal.RegularFile
	Directory    = internal.Directory
	SymbolicLink = internal.SymbolicLink

	// Size comparisons
	SizeEqual   = internal.SizeEqual
	SizeAtLeast = internal.SizeAtLeast
	SizeAtMost  = internal.SizeAtMost

	// Diagnostic operations
	OpReadDir   = internal.OpReadDir
	OpReadEntry = internal.OpReadEntry
	OpWatch     = internal.OpWatch

	// Log levels
	LogLevelError = internal.LogLevelError
	LogLevelWarn  = internal.LogLevelWarn
	LogLevelInfo  = internal.LogLevelInfo
	LogLevelDebug = internal.LogLevelDebug
)

// Re-export the errors
var (
	ErrUnknownKind          = internal.ErrUnknownKind
	ErrUnknownSize          = internal.ErrUnknownSize
	ErrAmbiguousNameMatcher = internal.ErrAmbiguousNameMatcher
	ErrNoNameMatcher        = internal.ErrNoNameMatcher
	ErrInvalidPattern       = internal.ErrInvalidPattern
	ErrInvalidDepth         = internal.ErrInvalidDepth
	ErrRootInaccessible     = internal.ErrRootInaccessible
)

// NewPredicateSet validates cfg.
func NewPredicateSet(cfg Config) (*PredicateSet, error) {
	return internal.NewPredicateSet(cfg)
}

// ParseEntryKind converts a --type token into an EntryKind.
func ParseEntryKind(s string) (EntryKind, error) {
	return internal.ParseEntryKind(s)
}

// ParseSize parses a token of the form [+-]?<integer>[KMG]?.
func ParseSize(s string) (SizeConstraint, error) {
	return internal.ParseSize(s)
}

// NewNameMatcher compiles exactly one of the sources.
func NewNameMatcher(src NameSources) (*NameMatcher, error) {
	return internal.NewNameMatcher(src)
}

// IsConfigError reports whether err is a configuration-time failure.
func IsConfigError(err error) bool {
	return internal.IsConfigError(err)
}

// Classify returns the kind of path without following symbolic links.
func Classify(fsys FS, path string) EntryKind {
	return internal.Classify(fsys, path)
}

// NewAferoFS wraps an afero filesystem.
func NewAferoFS(fsys afero.Fs) AferoFS {
	return internal.NewAferoFS(fsys)
}

// NewWalker returns a Walker evaluating preds.
func NewWalker(preds *PredicateSet, opts ...Option) *Walker {
	return internal.NewWalker(preds, opts...)
}

// WithFS sets the Walker's filesystem.
func WithFS(fsys FS) Option { return internal.WithFS(fsys) }

// WithMatchFunc sets the match sink.
func WithMatchFunc(fn MatchFunc) Option { return internal.WithMatchFunc(fn) }

// WithDiagnosticFunc sets the diagnostic sink.
func WithDiagnosticFunc(fn DiagnosticFunc) Option { return internal.WithDiagnosticFunc(fn) }

// WithLogger sets the Walker's logger.
func WithLogger(logger *zap.Logger) Option { return internal.WithLogger(logger) }

// NewLogger builds the zap logger used for diagnostics and debug output.
func NewLogger(opts LogOptions) (*zap.Logger, error) {
	return internal.NewLogger(opts)
}

// LogDiagnostics returns a DiagnosticFunc that logs at warn level.
func LogDiagnostics(logger *zap.Logger) DiagnosticFunc {
	return internal.LogDiagnostics(logger)
}

// Watch walks root and then reports matching entries as they appear until
// ctx is done.
func Watch(ctx context.Context, root string, preds *PredicateSet, opts ...Option) (Stats, error) {
	return internal.NewWalker(preds, opts...).Watch(ctx, root)
}
