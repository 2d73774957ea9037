// Package failure maps extraction and export errors to the messages shown to
// the user.
//
// Backend failures are classified from their text, following the phrasing
// of the extraction backend ("Failed to fetch website: ...", "Failed to
// extract styles: ..."). When the backend reports a structured
// *backend.Error, or the cause chain holds a net error, that information is
// used first and the text matching is only the fallback.
package failure

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/kataras/styleguide-extractor/pkg/backend"
)

// Kind is the category of a failure.
type Kind int

const (
	Unclassified Kind = iota
	EmptyInput
	NetworkDNS
	NetworkTimeout
	NetworkConnection
	NetworkOther
	ParseFailure
	ClipboardFailure
	FileSaveFailure
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "empty_input"
	case NetworkDNS:
		return "network_dns"
	case NetworkTimeout:
		return "network_timeout"
	case NetworkConnection:
		return "network_connection"
	case NetworkOther:
		return "network_other"
	case ParseFailure:
		return "parse_failure"
	case ClipboardFailure:
		return "clipboard_failure"
	case FileSaveFailure:
		return "file_save_failure"
	default:
		return "unclassified"
	}
}

// User-facing messages.
const (
	MsgEmptyInput        = "Please enter a valid URL"
	MsgNetworkDNS        = "Could not resolve the website URL. Please check the URL and try again."
	MsgNetworkTimeout    = "Request timed out. The website might be slow or unreachable."
	MsgNetworkConnection = "Could not connect to the website. Please check your internet connection."
	MsgNetworkOther      = "Network error: "
	MsgParseFailure      = "Could not parse the website's HTML. The page structure might be unusual."
	MsgClipboardFailure  = "Failed to copy to clipboard"
	MsgFileSaveFailure   = "Failed to save file"
)

const (
	fetchMarker   = "Failed to fetch website"
	extractMarker = "Failed to extract styles"
)

// Failure is a classified error. Message is what the user sees; Err, if
// set, is the original error.
type Failure struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Empty returns the failure for a blank URL.
func Empty() *Failure {
	return &Failure{Kind: EmptyInput, Message: MsgEmptyInput}
}

// Clipboard wraps a clipboard write error.
func Clipboard(err error) *Failure {
	return &Failure{Kind: ClipboardFailure, Message: MsgClipboardFailure, Err: err}
}

// FileSave wraps a save dialog or file write error.
func FileSave(err error) *Failure {
	return &Failure{Kind: FileSaveFailure, Message: MsgFileSaveFailure, Err: err}
}

// Classify turns a backend error into a Failure. A nil error returns nil and
// an error that already is a *Failure is returned as is.
func Classify(err error) *Failure {
	if err == nil {
		return nil
	}

	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	raw := err.Error()
	switch stageOf(err, raw) {
	case backend.StageFetch:
		return classifyFetch(err, raw)
	case backend.StageExtract:
		return &Failure{Kind: ParseFailure, Message: MsgParseFailure, Err: err}
	}

	return &Failure{Kind: Unclassified, Message: raw, Err: err}
}

func stageOf(err error, raw string) backend.Stage {
	var be *backend.Error
	if errors.As(err, &be) && (be.Stage == backend.StageFetch || be.Stage == backend.StageExtract) {
		return be.Stage
	}

	// Fetch takes precedence over extract.
	if strings.Contains(raw, fetchMarker) {
		return backend.StageFetch
	}
	if strings.Contains(raw, extractMarker) {
		return backend.StageExtract
	}
	return ""
}

func classifyFetch(err error, raw string) *Failure {
	if kind, ok := netKind(err); ok {
		return fetchFailure(kind, raw, err)
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "dns") || strings.Contains(lower, "resolve"):
		return fetchFailure(NetworkDNS, raw, err)
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "timed out"):
		return fetchFailure(NetworkTimeout, raw, err)
	case strings.Contains(lower, "connection"):
		return fetchFailure(NetworkConnection, raw, err)
	default:
		return fetchFailure(NetworkOther, raw, err)
	}
}

// netKind inspects the cause chain for errors from package net.
func netKind(err error) (Kind, bool) {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return NetworkDNS, true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NetworkTimeout, true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NetworkTimeout, true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return NetworkConnection, true
	}
	return Unclassified, false
}

func fetchFailure(kind Kind, raw string, err error) *Failure {
	msg := ""
	switch kind {
	case NetworkDNS:
		msg = MsgNetworkDNS
	case NetworkTimeout:
		msg = MsgNetworkTimeout
	case NetworkConnection:
		msg = MsgNetworkConnection
	default:
		kind = NetworkOther
		msg = MsgNetworkOther + raw
	}
	return &Failure{Kind: kind, Message: msg, Err: err}
}
