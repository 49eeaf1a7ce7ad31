package walk

// Result is the outcome of Find.
type Result struct {
	Matches     []string
	Diagnostics []Diagnostic
	Stats       Stats
}

// Find validates cfg, walks root and collects everything in memory. It
// returns a configuration error before touching the filesystem, and an
// error wrapping ErrRootInaccessible when root cannot be classified.
// Options may replace the filesystem or logger; the sinks are always the
// returned Result.
func Find(root string, cfg Config, opts ...Option) (Result, error) {
	preds, err := NewPredicateSet(cfg)
	if err != nil {
		return Result{}, err
	}

	var c Collector
	opts = append(opts[:len(opts):len(opts)], WithMatchFunc(c.Match), WithDiagnosticFunc(c.Diagnose))
	stats, err := NewWalker(preds, opts...).Walk(root)
	if err != nil {
		return Result{}, err
	}
	return Result{Matches: c.Matches, Diagnostics: c.Diagnostics, Stats: stats}, nil
}
