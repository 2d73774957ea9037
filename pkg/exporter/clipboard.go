package exporter

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/kataras/styleguide-extractor/pkg/failure"
	"github.com/kataras/styleguide-extractor/pkg/status"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard is the operating system clipboard. On Linux it needs
// xclip, xsel or wl-clipboard installed.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}

// ClipboardExport copies the current document to a Clipboard.
type ClipboardExport struct {
	base
	clipboard Clipboard
}

// NewClipboardExport returns the clipboard export component.
func NewClipboardExport(doc DocumentSource, reporter *status.Reporter, cb Clipboard, log Logger) *ClipboardExport {
	return &ClipboardExport{
		base:      base{doc: doc, status: reporter, log: log},
		clipboard: cb,
	}
}

// CopyToClipboard writes the document verbatim to the clipboard and reports
// the outcome. It returns ErrNoDocument, without touching the clipboard or
// the status, when there is nothing to copy.
func (e *ClipboardExport) CopyToClipboard() error {
	doc := e.doc.Document()
	if doc == "" {
		return ErrNoDocument
	}

	if err := e.clipboard.WriteText(doc); err != nil {
		f := failure.Clipboard(err)
		e.errorf("Error copying to clipboard: %v", err)
		e.status.Show(f.Message, status.Error)
		return f
	}

	e.infof("Copied %d bytes to clipboard", len(doc))
	e.status.Show(CopiedMessage, status.Success)
	return nil
}
