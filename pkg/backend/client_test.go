package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseServiceURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "host and port",
			url:  "http://127.0.0.1:8787",
			want: "http://127.0.0.1:8787",
		},
		{
			name: "trailing slash is dropped",
			url:  "https://extract.example.com/",
			want: "https://extract.example.com",
		},
		{
			name: "path prefix",
			url:  "https://example.com/api/v1/",
			want: "https://example.com/api/v1",
		},
		{
			name: "surrounding spaces",
			url:  "  http://localhost:8787  ",
			want: "http://localhost:8787",
		},
		{
			name:    "missing scheme",
			url:     "localhost:8787",
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			url:     "ftp://example.com",
			wantErr: true,
		},
		{
			name:    "query string",
			url:     "http://example.com/?token=1",
			wantErr: true,
		},
		{
			name:    "empty URL",
			url:     "",
			wantErr: true,
		},
		{
			name:    "scheme only",
			url:     "http://",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseServiceURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseServiceURL() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseServiceURL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestClientReturnsDocumentVerbatim(t *testing.T) {
	const doc = "# Style Guide for https://example.com\n\n## Color Scheme\n\n  - `#fff`  \n"

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/extract" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req extractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.URL != "example.com" {
			t.Errorf("request url = %q, want %q", req.URL, "example.com")
		}
		w.Header().Set("Content-Type", "text/markdown")
		w.Write([]byte(doc))
	})

	got, err := c.ExtractWebsiteStyles(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("ExtractWebsiteStyles() error = %v", err)
	}
	if got != doc {
		t.Errorf("ExtractWebsiteStyles() = %q, want %q", got, doc)
	}
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantText  string
		wantStage Stage // empty = plain error
	}{
		{
			name:      "structured fetch failure",
			status:    http.StatusBadGateway,
			body:      `{"stage":"fetch","message":"dns error: failed to lookup address information"}`,
			wantText:  "Failed to fetch website: dns error: failed to lookup address information",
			wantStage: StageFetch,
		},
		{
			name:      "structured extract failure",
			status:    http.StatusUnprocessableEntity,
			body:      `{"stage":"extract","message":"invalid selector"}`,
			wantText:  "Failed to extract styles: invalid selector",
			wantStage: StageExtract,
		},
		{
			name:     "plain text failure",
			status:   http.StatusInternalServerError,
			body:     "Failed to fetch website: operation timed out\n",
			wantText: "Failed to fetch website: operation timed out",
		},
		{
			name:     "empty body",
			status:   http.StatusServiceUnavailable,
			body:     "",
			wantText: "extraction service returned status 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.ExtractWebsiteStyles(context.Background(), "https://example.com")
			if err == nil {
				t.Fatal("ExtractWebsiteStyles() error = nil")
			}
			if err.Error() != tt.wantText {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantText)
			}

			var be *Error
			if got := errors.As(err, &be); got != (tt.wantStage != "") {
				t.Fatalf("errors.As(*Error) = %v, want %v", got, tt.wantStage != "")
			}
			if be != nil && be.Stage != tt.wantStage {
				t.Errorf("Stage = %q, want %q", be.Stage, tt.wantStage)
			}
		})
	}
}

func TestClientServiceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewClient(base, time.Second)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if _, err := c.ExtractWebsiteStyles(context.Background(), "https://example.com"); err == nil {
		t.Fatal("expected error for closed service")
	}
}
