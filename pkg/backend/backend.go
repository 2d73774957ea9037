// Package backend provides the capability that turns a website URL into a
// style-guide document, and the transports used to reach it.
package backend

import (
	"context"
)

// Extractor fetches a website and returns its style guide as Markdown text.
// Calls may block for as long as the network does.
type Extractor interface {
	ExtractWebsiteStyles(ctx context.Context, url string) (string, error)
}

// ExtractorFunc adapts an ordinary function to Extractor.
type ExtractorFunc func(ctx context.Context, url string) (string, error)

// ExtractWebsiteStyles calls f(ctx, url).
func (f ExtractorFunc) ExtractWebsiteStyles(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}

// Stage names the backend step that failed.
type Stage string

const (
	StageFetch   Stage = "fetch"
	StageExtract Stage = "extract"
)

// Error is a failure reported by a backend that knows which stage failed.
// Its text matches the plain-text errors of backends that don't, so both
// kinds classify the same way.
type Error struct {
	Stage  Stage
	Detail string
	Err    error // optional underlying cause
}

func (e *Error) Error() string {
	switch e.Stage {
	case StageFetch:
		return "Failed to fetch website: " + e.Detail
	case StageExtract:
		return "Failed to extract styles: " + e.Detail
	default:
		return e.Detail
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
