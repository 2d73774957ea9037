package styleguideextractor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kataras/styleguide-extractor/pkg/backend"
	"github.com/kataras/styleguide-extractor/pkg/exporter"
	"github.com/kataras/styleguide-extractor/pkg/extractor"
	"github.com/kataras/styleguide-extractor/pkg/session"
	"github.com/kataras/styleguide-extractor/pkg/status"
)

// Version is the application version.
const Version = "0.1.0"

// Options configures an App.
type Options struct {
	Backend   backend.Extractor   // required
	Dialog    exporter.SaveDialog // required
	Clipboard exporter.Clipboard  // nil = system clipboard
	Writer    exporter.FileWriter // nil = write to disk
	Scheduler status.Scheduler    // nil = real timers
	Logger    Logger              // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// App is one running instance of the extractor: a session, its status line,
// the extraction coordinator and both exports.
type App struct {
	session   *session.State
	status    *status.Reporter
	extractor *extractor.Coordinator
	clipboard *exporter.ClipboardExport
	file      *exporter.FileExport
	log       Logger
}

// New wires an App from opts. It fails when a required collaborator is
// missing.
func New(opts Options) (*App, error) {
	if opts.Backend == nil {
		return nil, errors.New("styleguideextractor: a backend is required")
	}
	if opts.Dialog == nil {
		return nil, errors.New("styleguideextractor: a save dialog is required")
	}
	if opts.Clipboard == nil {
		opts.Clipboard = exporter.SystemClipboard{}
	}
	if opts.Writer == nil {
		opts.Writer = exporter.DiskWriter{}
	}

	state := session.New()
	reporter := status.NewReporter(opts.Scheduler)

	return &App{
		session:   state,
		status:    reporter,
		extractor: extractor.New(state, reporter, opts.Backend, opts.Logger),
		clipboard: exporter.NewClipboardExport(state, reporter, opts.Clipboard, opts.Logger),
		file:      exporter.NewFileExport(state, reporter, opts.Dialog, opts.Writer, opts.Logger),
		log:       opts.Logger,
	}, nil
}

// Submit extracts the style guide of rawURL. It blocks until the backend
// settles; see extractor.Coordinator.Submit for the returned errors.
func (a *App) Submit(ctx context.Context, rawURL string) error {
	return a.extractor.Submit(ctx, rawURL)
}

// CopyToClipboard copies the current document to the clipboard.
func (a *App) CopyToClipboard() error {
	return a.clipboard.CopyToClipboard()
}

// SaveToFile asks for a path and writes the current document there.
func (a *App) SaveToFile(ctx context.Context) error {
	return a.file.SaveToFile(ctx)
}

// Session returns the session state.
func (a *App) Session() *session.State { return a.session }

// Status returns the status reporter.
func (a *App) Status() *status.Reporter { return a.status }

// BackendOptions selects and configures a backend.
type BackendOptions struct {
	Kind     string        // "http" (default) or "command"
	URL      string        // extraction service base URL, for "http"
	Command  []string      // argv, for "command"
	Timeout  time.Duration // per request
	CacheTTL time.Duration // 0 = no caching
	Logger   Logger
}

func (o *BackendOptions) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// NewBackend builds the backend described by opts.
func NewBackend(opts BackendOptions) (backend.Extractor, error) {
	var (
		be  backend.Extractor
		err error
	)

	switch strings.ToLower(strings.TrimSpace(opts.Kind)) {
	case "", "http":
		opts.logInfo("Using extraction service at %s", opts.URL)
		be, err = backend.NewClient(opts.URL, opts.Timeout)
	case "command":
		opts.logInfo("Using extraction command %q", strings.Join(opts.Command, " "))
		var cmd *backend.Command
		if cmd, err = backend.NewCommand(opts.Command); err == nil {
			be = withTimeout(cmd, opts.Timeout)
		}
	default:
		return nil, fmt.Errorf("unknown backend kind %q (must be http or command)", opts.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	if opts.CacheTTL > 0 {
		opts.logInfo("Caching extracted documents for %s", opts.CacheTTL)
		be = backend.NewCached(be, opts.CacheTTL)
	}
	return be, nil
}

func withTimeout(next backend.Extractor, d time.Duration) backend.Extractor {
	if d <= 0 {
		return next
	}
	return backend.ExtractorFunc(func(ctx context.Context, url string) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return next.ExtractWebsiteStyles(ctx, url)
	})
}
