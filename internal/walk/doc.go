// Package findr is the traversal and predicate-matching engine behind the
// findr command.
//
// A PredicateSet is built once from a Config and never changes:
//
//	depth := 2
//	preds, err := findr.NewPredicateSet(findr.Config{
//		Type:     "f",
//		Size:     "+5K",
//		Names:    findr.NameSources{Glob: "*.go"},
//		MaxDepth: &depth,
//	})
//
// A Walker applies it to a tree, sending matches and diagnostics to
// separate sinks:
//
//	var c findr.Collector
//	w := findr.NewWalker(preds,
//		findr.WithMatchFunc(c.Match),
//		findr.WithDiagnosticFunc(c.Diagnose),
//	)
//	stats, err := w.Walk("/path/to/search")
//
// Walk only returns an error when the root itself is inaccessible. Unreadable
// directories and entries are reported as Diagnostic values and the walk
// carries on with their siblings.
package findr
