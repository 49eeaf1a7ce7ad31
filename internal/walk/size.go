package findr

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// SizeOp selects how a SizeConstraint compares a length.
type SizeOp int

const (
	SizeEqual   SizeOp = iota // Exactly N bytes
	SizeAtLeast               // N bytes or more (+N)
	SizeAtMost                // N bytes or fewer (-N)
)

// SizeConstraint compares a file length against a byte count.
// Bytes is always the raw byte count; units do not survive parsing.
type SizeConstraint struct {
	Op    SizeOp
	Bytes uint64
}

var sizeToken = regexp.MustCompile(`^([+-]?)([0-9]+)([KMG]?)$`)

var sizeUnits = map[string]uint64{
	"":  1,
	"K": 1 << 10,
	"M": 1 << 20,
	"G": 1 << 30,
}

// ParseSize parses a token of the form [+-]?<integer>[KMG]?.
func ParseSize(s string) (SizeConstraint, error) {
	m := sizeToken.FindStringSubmatch(s)
	if m == nil {
		return SizeConstraint{}, fmt.Errorf("%w: %s", ErrUnknownSize, s)
	}

	n, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return SizeConstraint{}, fmt.Errorf("%w: %s", ErrUnknownSize, s)
	}
	unit := sizeUnits[m[3]]
	if n > math.MaxUint64/unit {
		return SizeConstraint{}, fmt.Errorf("%w: %s overflows", ErrUnknownSize, s)
	}

	c := SizeConstraint{Bytes: n * unit}
	switch m[1] {
	case "+":
		c.Op = SizeAtLeast
	case "-":
		c.Op = SizeAtMost
	default:
		c.Op = SizeEqual
	}
	return c, nil
}

// Matches compares length against the constraint.
func (c SizeConstraint) Matches(length uint64) bool {
	switch c.Op {
	case SizeAtLeast:
		return length >= c.Bytes
	case SizeAtMost:
		return length <= c.Bytes
	case SizeEqual:
		return length == c.Bytes
	}
	return false
}

// String renders the constraint back as a raw byte token.
func (c SizeConstraint) String() string {
	switch c.Op {
	case SizeAtLeast:
		return "+" + strconv.FormatUint(c.Bytes, 10)
	case SizeAtMost:
		return "-" + strconv.FormatUint(c.Bytes, 10)
	}
	return strconv.FormatUint(c.Bytes, 10)
}
