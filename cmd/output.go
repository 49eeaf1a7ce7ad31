package cmd

import (
	"bufio"
	"io"
)

// pathWriter prints one matched path per line. The first write error is kept
// and every later write is dropped.
type pathWriter struct {
	w         *bufio.Writer
	flushEach bool
	err       error
}

func newPathWriter(w io.Writer, flushEach bool) *pathWriter {
	return &pathWriter{w: bufio.NewWriter(w), flushEach: flushEach}
}

// WritePath is a walk.MatchFunc.
func (p *pathWriter) WritePath(path string) {
	if p.err != nil {
		return
	}
	if _, p.err = p.w.WriteString(path); p.err != nil {
		return
	}
	if p.err = p.w.WriteByte('\n'); p.err != nil {
		return
	}
	if p.flushEach {
		p.err = p.w.Flush()
	}
}

// Flush writes any buffered paths and returns the first error seen.
func (p *pathWriter) Flush() error {
	if p.err != nil {
		return p.err
	}
	p.err = p.w.Flush()
	return p.err
}
