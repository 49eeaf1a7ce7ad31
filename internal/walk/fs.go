package findr

import (
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/spf13/afero"
)

// FS is the filesystem surface the Walker needs.
type FS interface {
	// Lstat returns metadata without following a final symbolic link.
	Lstat(name string) (fs.FileInfo, error)
	// Stat returns metadata, following symbolic links.
	Stat(name string) (fs.FileInfo, error)
	// ReadDir opens a directory for enumeration of its immediate children.
	ReadDir(name string) (DirReader, error)
}

// DirReader enumerates the immediate children of one directory.
//
// Next returns io.EOF once the listing is exhausted and a *ListingError when
// the listing itself broke off. Any other error concerns a single entry and
// enumeration may continue; name may be empty when the failing entry could
// not be identified.
type DirReader interface {
	Next() (name string, err error)
}

// ListingError ends a directory listing that failed partway through.
type ListingError struct {
	Err error
}

func (e *ListingError) Error() string { return e.Err.Error() }
func (e *ListingError) Unwrap() error { return e.Err }

// --------------------------------------------------------------------------
// OS filesystem
// --------------------------------------------------------------------------

// OSFS reads the host filesystem. Directory listings are streamed with
// godirwalk's scanner so large directories are never loaded whole.
type OSFS struct{}

func (OSFS) Lstat(name string) (fs.FileInfo, error) { return os.Lstat(name) }
func (OSFS) Stat(name string) (fs.FileInfo, error)  { return os.Stat(name) }

func (OSFS) ReadDir(name string) (DirReader, error) {
	s, err := godirwalk.NewScanner(name)
	if err != nil {
		return nil, err
	}
	return &scannerReader{s: s}, nil
}

type scannerReader struct {
	s    *godirwalk.Scanner
	done bool
}

func (r *scannerReader) Next() (string, error) {
	if r.done {
		return "", io.EOF
	}
	if !r.s.Scan() {
		r.done = true
		if err := r.s.Err(); err != nil {
			return "", &ListingError{Err: err}
		}
		return "", io.EOF
	}
	name := r.s.Name()
	if _, err := r.s.Dirent(); err != nil {
		return name, err
	}
	return name, nil
}

// --------------------------------------------------------------------------
// afero adapter
// --------------------------------------------------------------------------

// AferoFS adapts an afero.Fs, such as an in-memory tree, to FS.
type AferoFS struct {
	Fs afero.Fs
}

// NewAferoFS wraps fsys.
func NewAferoFS(fsys afero.Fs) AferoFS {
	return AferoFS{Fs: fsys}
}

func (a AferoFS) Lstat(name string) (fs.FileInfo, error) {
	if l, ok := a.Fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return a.Fs.Stat(name)
}

func (a AferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.Fs.Stat(name)
}

func (a AferoFS) ReadDir(name string) (DirReader, error) {
	infos, err := afero.ReadDir(a.Fs, name)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name()
	}
	return &sliceReader{names: names}, nil
}

type sliceReader struct {
	names []string
}

func (r *sliceReader) Next() (string, error) {
	if len(r.names) == 0 {
		return "", io.EOF
	}
	name := r.names[0]
	r.names = r.names[1:]
	return name, nil
}

// joinPath appends name to dir without cleaning, so reported paths keep the
// root exactly as it was given.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
