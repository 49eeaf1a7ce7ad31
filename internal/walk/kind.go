package findr

import (
	"fmt"
	"io/fs"
	"strings"
)

// EntryKind classifies a filesystem entry without following symbolic links.
type EntryKind int

const (
	Unknown      EntryKind = iota // Metadata unreadable, or a special file
	RegularFile                   // Regular file
	Directory                     // Directory
	SymbolicLink                  // Symbolic link, never resolved
)

// String returns the name used in logs.
func (k EntryKind) String() string {
	switch k {
	case RegularFile:
		return "file"
	case Directory:
		return "directory"
	case SymbolicLink:
		return "symlink"
	case Unknown:
		return "unknown"
	}
	return fmt.Sprintf("EntryKind(%d)", int(k))
}

// ParseEntryKind converts a --type token into an EntryKind.
// Unknown is never a valid target.
func ParseEntryKind(s string) (EntryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "file":
		return RegularFile, nil
	case "d", "dir", "directory":
		return Directory, nil
	case "s", "l", "symlink", "link":
		return SymbolicLink, nil
	}
	return Unknown, fmt.Errorf("%w: %s", ErrUnknownKind, s)
}

// kindOf maps Lstat metadata onto an EntryKind.
func kindOf(info fs.FileInfo) EntryKind {
	mode := info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		return SymbolicLink
	case mode.IsDir():
		return Directory
	case mode.IsRegular():
		return RegularFile
	}
	return Unknown
}

// Classify returns the kind of path as seen by fsys.Lstat. Any error
// classifies the entry as Unknown.
func Classify(fsys FS, path string) EntryKind {
	info, err := fsys.Lstat(path)
	if err != nil {
		return Unknown
	}
	return kindOf(info)
}
