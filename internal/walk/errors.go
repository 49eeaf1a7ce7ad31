package findr

import "errors"

// Configuration errors. They are detected once, before any traversal starts,
// and are always returned wrapped with the offending value.
var (
	// ErrUnknownKind indicates an entry-kind token other than f, d or s
	ErrUnknownKind = errors.New("unknown type")

	// ErrUnknownSize indicates a size token that does not match [+-]?<int>[KMG]?
	ErrUnknownSize = errors.New("unknown size type")

	// ErrAmbiguousNameMatcher indicates more than one of regex, name and iname
	ErrAmbiguousNameMatcher = errors.New("more than one name matcher")

	// ErrNoNameMatcher indicates a name matcher was built without a pattern
	ErrNoNameMatcher = errors.New("no name matcher")

	// ErrInvalidPattern indicates a regular expression that does not compile
	ErrInvalidPattern = errors.New("invalid name pattern")

	// ErrInvalidDepth indicates a maximum depth that is not a positive integer
	ErrInvalidDepth = errors.New("depth should be >0")
)

// ErrRootInaccessible is returned by Walk when the root path cannot be
// classified. No listing is attempted in that case.
var ErrRootInaccessible = errors.New("cannot access")

var configErrors = []error{
	ErrUnknownKind,
	ErrUnknownSize,
	ErrAmbiguousNameMatcher,
	ErrNoNameMatcher,
	ErrInvalidPattern,
	ErrInvalidDepth,
}

// IsConfigError reports whether err is a configuration-time failure.
func IsConfigError(err error) bool {
	for _, target := range configErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
