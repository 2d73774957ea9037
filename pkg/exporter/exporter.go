// Package exporter copies the current style-guide document to the system
// clipboard or saves it to a file chosen by the user.
//
// Both exports only read the document. With no document yet they do nothing
// and change no status.
package exporter

import (
	"errors"

	"github.com/kataras/styleguide-extractor/pkg/status"
)

// Success messages.
const (
	CopiedMessage = "Markdown copied to clipboard!"
	SavedMessage  = "File saved successfully!"
)

var (
	// ErrNoDocument is returned when an export is attempted before any
	// document was produced. No status is shown for it.
	ErrNoDocument = errors.New("no document to export")
	// ErrCancelled is returned when the user dismisses the save dialog.
	// No status is shown for it.
	ErrCancelled = errors.New("save cancelled")
)

// DocumentSource exposes the current document read-only.
type DocumentSource interface {
	Document() string
}

// Logger receives diagnostic messages. A nil Logger silences all output.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// base holds what both exports share.
type base struct {
	doc    DocumentSource
	status *status.Reporter
	log    Logger
}

func (b *base) infof(f string, a ...any) {
	if b.log != nil {
		b.log.Infof(f, a...)
	}
}

func (b *base) errorf(f string, a ...any) {
	if b.log != nil {
		b.log.Errorf(f, a...)
	}
}
