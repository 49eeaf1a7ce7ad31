// Package walk provides a find(1)-style search over a directory tree.
//
// Basic usage:
//
//	res, err := walk.Find("/path/to/search", walk.Config{
//		Type:  "f",
//		Names: walk.NameSources{Glob: "*.go"},
//		Size:  "+1K",
//	})
//
// Streaming matches and diagnostics to separate sinks:
//
//	preds, err := walk.NewPredicateSet(walk.Config{Type: "d"})
//	w := walk.NewWalker(preds,
//		walk.WithMatchFunc(func(path string) { fmt.Println(path) }),
//		walk.WithDiagnosticFunc(func(d walk.Diagnostic) { log.Print(d) }),
//	)
//	stats, err := w.Walk(".")
//
// Searching an in-memory tree:
//
//	mem := afero.NewMemMapFs()
//	res, err := walk.Find("/", walk.Config{}, walk.WithFS(walk.NewAferoFS(mem)))
//
// Watching for new matches after the initial walk:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
//	defer cancel()
//	_, err := walk.Watch(ctx, ".", preds, walk.WithMatchFunc(print))
package walk
