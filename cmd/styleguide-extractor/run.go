package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	styleguideextractor "github.com/kataras/styleguide-extractor"
	"github.com/kataras/styleguide-extractor/internal/config"
	"github.com/kataras/styleguide-extractor/internal/logger"
	"github.com/kataras/styleguide-extractor/internal/tui"
	"github.com/kataras/styleguide-extractor/pkg/exporter"
	"github.com/kataras/styleguide-extractor/pkg/formatter"
)

const version = styleguideextractor.Version

var errEmptyDocument = errors.New("extraction returned an empty document")

// loadConfig reads the config file and environment, then applies the flags
// the user actually set.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("backend") {
		cfg.Backend.Kind = f.backendKind
	}
	if changed("backend-url") {
		cfg.Backend.URL = f.backendURL
	}
	if changed("backend-command") {
		cfg.Backend.Command = f.backendCommand
		if !changed("backend") {
			cfg.Backend.Kind = config.BackendCommand
		}
	}
	if changed("timeout") {
		cfg.Backend.TimeoutSeconds = f.timeout
	}
	if changed("cache-ttl") {
		cfg.Backend.CacheTTLSeconds = f.cacheTTL
	}
	if changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if changed("debug") {
		cfg.Log.Debug = f.debug
	}
	if changed("style") {
		cfg.Display.Style = f.style
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func backendOptions(cfg *config.Config, log styleguideextractor.Logger) styleguideextractor.BackendOptions {
	return styleguideextractor.BackendOptions{
		Kind:     cfg.Backend.Kind,
		URL:      cfg.Backend.URL,
		Command:  cfg.Backend.Command,
		Timeout:  cfg.Backend.Timeout(),
		CacheTTL: cfg.Backend.CacheTTL(),
		Logger:   log,
	}
}

func runTUI(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs only go to the file.
	log := logger.New(logger.Options{File: cfg.Log.File, Debug: cfg.Log.Debug})
	defer log.Sync()

	be, err := styleguideextractor.NewBackend(backendOptions(cfg, log))
	if err != nil {
		return err
	}

	log.Infof("Starting styleguide-extractor %s", version)
	return tui.Run(cmd.Context(), tui.Options{
		Backend: be,
		Logger:  log.Named("app"),
		Style:   cfg.Display.Style,
	})
}

func runExtract(cmd *cobra.Command, f *flags) error {
	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	fileLog := logger.New(logger.Options{File: cfg.Log.File, Debug: cfg.Log.Debug})
	defer fileLog.Sync()
	log := &cliLogger{w: cmd.ErrOrStderr(), file: fileLog}

	cyan.Fprintln(out, "\n🎨 Website Style Guide Extractor")
	cyan.Fprintln(out, "=================================")
	cyan.Fprintln(out)

	be, err := styleguideextractor.NewBackend(backendOptions(cfg, log))
	if err != nil {
		return err
	}

	app, err := styleguideextractor.New(styleguideextractor.Options{
		Backend: be,
		Dialog:  flagDialog{path: f.output},
		Logger:  log,
	})
	if err != nil {
		return err
	}

	if err := app.Submit(cmd.Context(), f.url); err != nil {
		return errors.New(app.Status().Current().Message)
	}

	doc := app.Session().Document()
	if doc == "" && (f.copy || f.output != "") {
		return errEmptyDocument
	}
	printSummary(out, formatter.Summarize(doc))

	if f.copy {
		green.Fprint(out, "\n📋 Copying to clipboard... ")
		if err := app.CopyToClipboard(); err != nil {
			red.Fprintln(out, "✗")
			if errors.Is(err, exporter.ErrNoDocument) {
				return errEmptyDocument
			}
			return errors.New(app.Status().Current().Message)
		}
		green.Fprintln(out, "✓")
	}

	if f.output == "" {
		if !f.copy {
			fmt.Fprintln(out)
			fmt.Fprint(out, doc)
		}
		return nil
	}

	path := exporter.MarkdownFilter.Apply(strings.TrimSpace(f.output))
	green.Fprintf(out, "\n💾 Writing to %s... ", path)
	if err := app.SaveToFile(cmd.Context()); err != nil {
		red.Fprintln(out, "✗")
		return fmt.Errorf("%s: %w", app.Status().Current().Message, err)
	}
	green.Fprintln(out, "✓")

	green.Fprintf(out, "\n✨ Successfully extracted the style guide to %s\n\n", path)
	return nil
}

func printSummary(w io.Writer, sum formatter.Summary) {
	cyan := color.New(color.FgCyan)

	if sum.Title != "" {
		cyan.Fprintf(w, "\n📄 %s\n", sum.Title)
	}
	if len(sum.Sections) == 0 {
		return
	}

	cyan.Fprintln(w, "\n📊 Extraction Summary:")
	for _, s := range sum.Sections {
		if len(s.Groups) == 0 {
			fmt.Fprintf(w, "  • %s\n", s.Name)
			continue
		}

		parts := make([]string, 0, len(s.Groups))
		for _, g := range s.Groups {
			parts = append(parts, fmt.Sprintf("%d %s", g.Items, strings.ToLower(g.Name)))
		}
		fmt.Fprintf(w, "  • %s: %s\n", s.Name, strings.Join(parts, ", "))
	}
}

// flagDialog answers the save dialog with the --output flag.
type flagDialog struct {
	path string
}

func (d flagDialog) Prompt(ctx context.Context, opts exporter.SaveOptions) (string, bool, error) {
	if d.path == "" {
		return "", false, nil
	}
	path, err := opts.ResolvePath(d.path)
	if err != nil {
		return "", false, fmt.Errorf("invalid output %q: %w", d.path, err)
	}
	return path, true, nil
}

// cliLogger implements styleguideextractor.Logger with colored terminal output
// and mirrors every message to the log file.
type cliLogger struct {
	w    io.Writer
	file *logger.Logger
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, format+"\n", args...)
	l.file.Infof(format, args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, "⚠ "+format+"\n", args...)
	l.file.Warnf(format, args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.w, "✗ "+format+"\n", args...)
	l.file.Errorf(format, args...)
}
