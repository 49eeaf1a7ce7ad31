package findr

import (
	"fmt"
	"path/filepath"
)

// Config is the resolved, unvalidated search configuration.
type Config struct {
	Type     string      // Entry kind token (f, d, s); empty means f
	Size     string      // Size token, empty for none
	Names    NameSources // Name patterns, at most one set
	MaxDepth *int        // Maximum traversal depth, nil for unlimited
}

// PredicateSet is an immutable, validated bundle of matching criteria.
// It performs no I/O except the length lookup in MatchesSize.
type PredicateSet struct {
	kind        EntryKind
	name        *NameMatcher
	size        *SizeConstraint
	maxDepth    uint
	hasMaxDepth bool
}

// NewPredicateSet validates cfg. Every failure is a configuration error.
func NewPredicateSet(cfg Config) (*PredicateSet, error) {
	p := &PredicateSet{kind: RegularFile}

	if cfg.Type != "" {
		kind, err := ParseEntryKind(cfg.Type)
		if err != nil {
			return nil, err
		}
		p.kind = kind
	}

	if cfg.Size != "" {
		size, err := ParseSize(cfg.Size)
		if err != nil {
			return nil, err
		}
		p.size = &size
	}

	if cfg.Names.count() > 0 {
		m, err := NewNameMatcher(cfg.Names)
		if err != nil {
			return nil, err
		}
		p.name = m
	}

	if cfg.MaxDepth != nil {
		if *cfg.MaxDepth <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, *cfg.MaxDepth)
		}
		p.maxDepth = uint(*cfg.MaxDepth)
		p.hasMaxDepth = true
	}

	return p, nil
}

// Kind returns the target entry kind.
func (p *PredicateSet) Kind() EntryKind { return p.kind }

// MaxDepth returns the depth bound and whether one is configured.
func (p *PredicateSet) MaxDepth() (uint, bool) { return p.maxDepth, p.hasMaxDepth }

// IsTargetKind reports whether kind is the configured kind.
func (p *PredicateSet) IsTargetKind(kind EntryKind) bool {
	return kind != Unknown && kind == p.kind
}

// MatchesName matches the final component of path. It is true when no
// name matcher is configured.
func (p *PredicateSet) MatchesName(path string) bool {
	if p.name == nil {
		return true
	}
	return p.name.MatchName(filepath.Base(path))
}

// MatchesSize compares the length of path on the host filesystem.
func (p *PredicateSet) MatchesSize(path string) bool {
	return p.MatchesSizeFS(OSFS{}, path)
}

// MatchesSizeFS compares the length of path as reported by fsys. A length
// that cannot be read never matches.
func (p *PredicateSet) MatchesSizeFS(fsys FS, path string) bool {
	if p.size == nil {
		return true
	}
	info, err := fsys.Stat(path)
	if err != nil || info.Size() < 0 {
		return false
	}
	return p.size.Matches(uint64(info.Size()))
}

// Matches applies the full decision for an entry of the given kind.
// Directories only need the kind to match; size applies to regular files only.
func (p *PredicateSet) Matches(fsys FS, path string, kind EntryKind) bool {
	switch kind {
	case RegularFile:
		return p.IsTargetKind(kind) && p.MatchesName(path) && p.MatchesSizeFS(fsys, path)
	case SymbolicLink:
		return p.IsTargetKind(kind) && p.MatchesName(path)
	case Directory:
		return p.IsTargetKind(kind)
	case Unknown:
		return false
	}
	return false
}

// canDescend reports whether a directory at depth may have its contents listed.
func (p *PredicateSet) canDescend(depth uint) bool {
	return !p.hasMaxDepth || depth < p.maxDepth
}
