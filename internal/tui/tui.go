package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	styleguideextractor "github.com/kataras/styleguide-extractor"
	"github.com/kataras/styleguide-extractor/pkg/backend"
	"github.com/kataras/styleguide-extractor/pkg/exporter"
	"github.com/kataras/styleguide-extractor/pkg/formatter"
	"github.com/kataras/styleguide-extractor/pkg/status"
)

// Options configures Run.
type Options struct {
	Backend   backend.Extractor
	Clipboard exporter.Clipboard         // nil = system clipboard
	Logger    styleguideextractor.Logger // must not write to the terminal
	Style     string                     // glamour style, "" = dark
}

// Run starts the terminal UI and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	dialog := NewDialog()

	app, err := styleguideextractor.New(styleguideextractor.Options{
		Backend:   opts.Backend,
		Dialog:    dialog,
		Clipboard: opts.Clipboard,
		Logger:    opts.Logger,
	})
	if err != nil {
		return err
	}

	m := NewModel(ctx, app, formatter.NewRenderer(opts.Style))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	dialog.Attach(p.Send)
	app.Status().Subscribe(func(st status.Status) {
		p.Send(statusMsg{status: st})
	})

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
