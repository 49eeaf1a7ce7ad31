package findr

import "fmt"

// Op names the filesystem call behind a Diagnostic.
type Op string

const (
	OpReadDir   Op = "readdir"   // Listing a directory failed; its subtree is skipped
	OpReadEntry Op = "readentry" // Reading one entry of a listing failed; the entry is skipped
	OpWatch     Op = "watch"     // Registering or receiving filesystem notifications failed
)

// Diagnostic is a non-fatal traversal-time failure. It is delivered to the
// diagnostic sink and never interrupts the match stream.
type Diagnostic struct {
	Path string
	Op   Op
	Err  error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %v", d.Path, d.Err)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// MatchFunc receives each matched path exactly as it was walked.
type MatchFunc func(path string)

// DiagnosticFunc receives each traversal-time failure.
type DiagnosticFunc func(d Diagnostic)

// Collector records matches and diagnostics in memory.
type Collector struct {
	Matches     []string
	Diagnostics []Diagnostic
}

// Match appends path to Matches.
func (c *Collector) Match(path string) {
	c.Matches = append(c.Matches, path)
}

// Diagnose appends d to Diagnostics.
func (c *Collector) Diagnose(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}
