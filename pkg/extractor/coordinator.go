// Package extractor runs the extraction request lifecycle: it validates the
// submitted URL, marks the session busy, calls the backend, reports the
// outcome on the status line and publishes the resulting document.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kataras/styleguide-extractor/pkg/backend"
	"github.com/kataras/styleguide-extractor/pkg/failure"
	"github.com/kataras/styleguide-extractor/pkg/session"
	"github.com/kataras/styleguide-extractor/pkg/status"
)

// Status messages of a request.
const (
	LoadingMessage = "Fetching website and extracting styles..."
	SuccessMessage = "Style guide generated successfully!"
)

// ErrRequestInFlight is returned by Submit when another request has not
// settled yet. The UI disables its trigger while busy, so only scripted
// callers should ever see it.
var ErrRequestInFlight = errors.New("an extraction request is already in flight")

// Logger receives progress messages. A nil Logger silences all output.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Coordinator owns the extraction request lifecycle.
type Coordinator struct {
	state   *session.State
	status  *status.Reporter
	backend backend.Extractor
	log     Logger
}

// New returns a Coordinator that records its progress in state and reporter
// and delegates the extraction itself to be.
func New(state *session.State, reporter *status.Reporter, be backend.Extractor, log Logger) *Coordinator {
	return &Coordinator{
		state:   state,
		status:  reporter,
		backend: be,
		log:     log,
	}
}

// Submit extracts the style guide of rawURL.
//
// A blank URL reports "Please enter a valid URL" and returns a *failure.Failure
// without contacting the backend. Otherwise the request runs to completion:
// on success the document is published and nil returned; on failure the
// classified *failure.Failure is shown and returned. The session is returned
// to idle on every path.
func (c *Coordinator) Submit(ctx context.Context, rawURL string) error {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		f := failure.Empty()
		c.status.Show(f.Message, status.Error)
		return f
	}

	if !c.state.Begin(url) {
		c.warnf("Ignoring submit of %s: %v", url, ErrRequestInFlight)
		return ErrRequestInFlight
	}
	defer c.state.Finish()

	id := uuid.NewString()
	started := time.Now()

	c.status.Show(LoadingMessage, status.Loading)
	c.infof("[%s] Extracting styles from %s...", id, url)

	doc, err := c.extract(ctx, url)
	if err != nil {
		f := failure.Classify(err)
		c.errorf("[%s] Extraction failed after %s (%s): %v", id, time.Since(started).Round(time.Millisecond), f.Kind, err)
		c.status.Show(f.Message, status.Error)
		return f
	}

	c.state.Publish(doc)
	c.status.Show(SuccessMessage, status.Success)
	c.infof("[%s] Extracted %d bytes in %s", id, len(doc), time.Since(started).Round(time.Millisecond))
	return nil
}

// extract calls the backend and reports a panic as an error.
func (c *Coordinator) extract(ctx context.Context, url string) (doc string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extraction backend panicked: %v", r)
		}
	}()
	return c.backend.ExtractWebsiteStyles(ctx, url)
}

func (c *Coordinator) infof(f string, a ...any) {
	if c.log != nil {
		c.log.Infof(f, a...)
	}
}

func (c *Coordinator) warnf(f string, a ...any) {
	if c.log != nil {
		c.log.Warnf(f, a...)
	}
}

func (c *Coordinator) errorf(f string, a ...any) {
	if c.log != nil {
		c.log.Errorf(f, a...)
	}
}
