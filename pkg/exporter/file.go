package exporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kataras/styleguide-extractor/pkg/failure"
	"github.com/kataras/styleguide-extractor/pkg/status"
)

// DefaultFileName is the file name the save dialog proposes.
const DefaultFileName = "style-guide.md"

// Filter restricts the files a save dialog offers.
type Filter struct {
	Name       string
	Extensions []string // without the leading dot
}

// MarkdownFilter is the only filter the file export uses.
var MarkdownFilter = Filter{Name: "Markdown", Extensions: []string{"md"}}

// Apply returns path with the filter's first extension appended when path
// has no extension. Paths with an extension are returned unchanged.
func (f Filter) Apply(path string) string {
	if path == "" || len(f.Extensions) == 0 || filepath.Ext(path) != "" {
		return path
	}
	return path + "." + f.Extensions[0]
}

// Matches reports whether path carries one of the filter's extensions.
func (f Filter) Matches(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, e := range f.Extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// SaveOptions configures a save dialog.
type SaveOptions struct {
	DefaultPath string
	Filters     []Filter
}

// ResolvePath normalises a path typed into a save dialog: it trims it,
// applies the first filter and checks that some filter accepts the result.
func (o SaveOptions) ResolvePath(raw string) (string, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return "", errors.New("enter a file name")
	}
	if len(o.Filters) == 0 {
		return path, nil
	}

	path = o.Filters[0].Apply(path)
	for _, f := range o.Filters {
		if f.Matches(path) {
			return path, nil
		}
	}

	var exts []string
	for _, f := range o.Filters {
		for _, ext := range f.Extensions {
			exts = append(exts, "."+ext)
		}
	}
	return "", fmt.Errorf("file must end in %s", strings.Join(exts, " or "))
}

// SaveDialog asks the user where to save. ok is false when the user
// cancelled.
type SaveDialog interface {
	Prompt(ctx context.Context, opts SaveOptions) (path string, ok bool, err error)
}

// FileWriter persists UTF-8 text at path, creating or truncating the file.
type FileWriter interface {
	WriteFile(path, text string) error
}

// DiskWriter writes files to the local file system. Parent directories must
// exist already, as they would for a path picked in a dialog.
type DiskWriter struct{}

func (DiskWriter) WriteFile(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %w", path, err)
	}

	if _, err := io.WriteString(f, text); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %q: %w", path, err)
	}
	return nil
}

// FileExport saves the current document to a user-chosen file.
type FileExport struct {
	base
	dialog SaveDialog
	writer FileWriter
}

// NewFileExport returns the file export component.
func NewFileExport(doc DocumentSource, reporter *status.Reporter, dialog SaveDialog, writer FileWriter, log Logger) *FileExport {
	return &FileExport{
		base:   base{doc: doc, status: reporter, log: log},
		dialog: dialog,
		writer: writer,
	}
}

// SaveToFile prompts for a destination and writes the document there.
//
// It returns ErrNoDocument when there is nothing to save and ErrCancelled
// when the user dismisses the dialog; neither changes the status. A dialog
// or write failure shows "Failed to save file" and is returned as a
// *failure.Failure.
func (e *FileExport) SaveToFile(ctx context.Context) error {
	doc := e.doc.Document()
	if doc == "" {
		return ErrNoDocument
	}

	path, ok, err := e.dialog.Prompt(ctx, SaveOptions{
		DefaultPath: DefaultFileName,
		Filters:     []Filter{MarkdownFilter},
	})
	if err != nil {
		return e.fail(fmt.Errorf("save dialog: %w", err))
	}
	if !ok || path == "" {
		return ErrCancelled
	}

	if err := e.writer.WriteFile(path, doc); err != nil {
		return e.fail(err)
	}

	e.infof("Saved %d bytes to %s", len(doc), path)
	e.status.Show(SavedMessage, status.Success)
	return nil
}

func (e *FileExport) fail(err error) error {
	f := failure.FileSave(err)
	e.errorf("Error saving file: %v", err)
	e.status.Show(f.Message, status.Error)
	return f
}
