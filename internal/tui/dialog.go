package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kataras/styleguide-extractor/pkg/exporter"
)

var errDialogDetached = errors.New("save dialog is not attached to a running program")

// promptMsg asks the model to show the save prompt. The model answers
// exactly once on reply.
type promptMsg struct {
	opts  exporter.SaveOptions
	reply chan<- promptReply
}

type promptReply struct {
	path string
	ok   bool
}

// Dialog is an exporter.SaveDialog drawn inside the running program as an
// inline path prompt.
type Dialog struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// NewDialog returns a Dialog that must be attached before use.
func NewDialog() *Dialog {
	return &Dialog{}
}

// Attach sets the function used to deliver messages to the program,
// normally (*tea.Program).Send.
func (d *Dialog) Attach(send func(tea.Msg)) {
	d.mu.Lock()
	d.send = send
	d.mu.Unlock()
}

// Prompt shows the prompt and blocks until the user confirms or dismisses
// it, or ctx ends. It must not be called from the program's Update.
func (d *Dialog) Prompt(ctx context.Context, opts exporter.SaveOptions) (string, bool, error) {
	d.mu.Lock()
	send := d.send
	d.mu.Unlock()

	if send == nil {
		return "", false, errDialogDetached
	}

	reply := make(chan promptReply, 1)
	send(promptMsg{opts: opts, reply: reply})

	select {
	case r := <-reply:
		return r.path, r.ok, nil
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}
