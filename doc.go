// Package styleguideextractor turns a website URL into a Markdown style guide
// (colors, typography, spacing, components) and lets the user copy it to the
// clipboard or save it to a file.
//
// The extraction itself is done by a backend: an HTTP extraction service or
// an external command. This package owns what happens around it: the request
// lifecycle, the status line with its auto-clearing success messages, the
// mapping of backend failures to user-facing messages, and the exports.
//
// The terminal UI lives in internal/tui and the CLI in
// cmd/styleguide-extractor; both are thin layers over [App].
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named styleguideextractor:
//
//	import "github.com/kataras/styleguide-extractor" // package styleguideextractor
//
// # Quick start
//
//	be, err := styleguideextractor.NewBackend(styleguideextractor.BackendOptions{
//	    URL: "http://127.0.0.1:8787",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app, err := styleguideextractor.New(styleguideextractor.Options{
//	    Backend: be,
//	    Dialog:  myDialog,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := app.Submit(ctx, "https://example.com"); err != nil {
//	    log.Println(app.Status().Current().Message)
//	}
//	fmt.Println(app.Session().Document())
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Status line
//
// Every operation reports through [App.Status]. Success messages clear
// themselves after three seconds unless another message replaced them
// first; loading and error messages stay until replaced.
package styleguideextractor
