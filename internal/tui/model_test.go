package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	styleguideextractor "github.com/kataras/styleguide-extractor"
	"github.com/kataras/styleguide-extractor/pkg/backend"
	"github.com/kataras/styleguide-extractor/pkg/exporter"
	"github.com/kataras/styleguide-extractor/pkg/formatter"
	"github.com/kataras/styleguide-extractor/pkg/status"
	"github.com/kataras/styleguide-extractor/pkg/status/statustest"
)

const guide = "# Style Guide for https://example.com\n\n## Color Scheme\n\n### Primary Colors\n- `#ff0000`\n"

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) WriteText(text string) error {
	c.text = text
	return c.err
}

type memWriter map[string]string

func (w memWriter) WriteFile(path, text string) error {
	w[path] = text
	return nil
}

type harness struct {
	m      Model
	app    *styleguideextractor.App
	dialog *Dialog
	sent   chan tea.Msg
	sched  *statustest.Scheduler
	cb     *memClipboard
	files  memWriter
}

func newHarness(t *testing.T, extract backend.ExtractorFunc) *harness {
	t.Helper()

	h := &harness{
		dialog: NewDialog(),
		sent:   make(chan tea.Msg, 16),
		sched:  &statustest.Scheduler{},
		cb:     &memClipboard{},
		files:  memWriter{},
	}
	h.dialog.Attach(func(msg tea.Msg) { h.sent <- msg })

	app, err := styleguideextractor.New(styleguideextractor.Options{
		Backend:   extract,
		Dialog:    h.dialog,
		Clipboard: h.cb,
		Writer:    h.files,
		Scheduler: h.sched,
	})
	require.NoError(t, err)
	app.Status().Subscribe(func(st status.Status) { h.sent <- statusMsg{status: st} })

	h.app = app
	h.m = NewModel(context.Background(), app, formatter.NewRenderer("notty"))
	h.update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

// drain feeds every message the reporter or dialog sent back into the model.
func (h *harness) drain() {
	for {
		select {
		case msg := <-h.sent:
			h.update(msg)
		default:
			return
		}
	}
}

// run executes cmd and feeds the result of the given type back into the model.
func run[T tea.Msg](h *harness, cmd tea.Cmd) (T, bool) {
	var zero T
	if cmd == nil {
		return zero, false
	}

	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if got, ok := run[T](h, c); ok {
				return got, true
			}
		}
	case T:
		h.update(msg)
		return msg, true
	}
	return zero, false
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSubmitShowsDocument(t *testing.T) {
	release := make(chan struct{})
	h := newHarness(t, func(ctx context.Context, url string) (string, error) {
		<-release
		return guide, nil
	})
	h.m.input.SetValue("https://example.com")

	cmd := h.update(key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, h.m.busy())
	assert.Contains(t, h.m.View(), "Extracting...")

	assert.Nil(t, h.update(key("enter")), "enter is ignored while busy")

	close(release)
	done, ok := run[extractDoneMsg](h, cmd)
	require.True(t, ok)
	require.NoError(t, done.err)
	h.drain()

	assert.False(t, h.m.busy())
	assert.Equal(t, status.Success, h.m.status.Severity)

	view := h.m.View()
	assert.Contains(t, view, "✅ Style guide generated successfully!")
	assert.Contains(t, view, "Primary Colors")
	assert.Contains(t, view, "Extract Styles")

	h.sched.Advance(status.SuccessTimeout)
	h.drain()
	assert.True(t, h.m.status.IsZero())
	assert.NotContains(t, h.m.View(), "generated successfully")
}

func TestSubmitFailureHidesDocument(t *testing.T) {
	h := newHarness(t, func(ctx context.Context, url string) (string, error) {
		return "", errors.New("Failed to extract styles: unexpected token")
	})
	h.m.input.SetValue("https://example.com")

	_, ok := run[extractDoneMsg](h, h.update(key("enter")))
	require.True(t, ok)
	h.drain()

	view := h.m.View()
	assert.Contains(t, view, "❌ Could not parse the website's HTML.")
	assert.NotContains(t, view, "ctrl+y copy", "no export actions without a document")
	assert.False(t, h.app.Session().DocumentVisible())
}

func TestSubmitBlank(t *testing.T) {
	h := newHarness(t, func(ctx context.Context, url string) (string, error) {
		t.Error("backend called for a blank URL")
		return "", nil
	})

	done, ok := run[extractDoneMsg](h, h.update(key("enter")))
	require.True(t, ok)
	assert.Error(t, done.err)
	h.drain()

	assert.Contains(t, h.m.View(), "❌ Please enter a valid URL")
}

func TestCopy(t *testing.T) {
	h := newHarness(t, func(ctx context.Context, url string) (string, error) { return guide, nil })
	h.m.input.SetValue("https://example.com")
	run[extractDoneMsg](h, h.update(key("enter")))

	_, ok := run[exportDoneMsg](h, h.update(key("ctrl+y")))
	require.True(t, ok)
	h.drain()

	assert.Equal(t, guide, h.cb.text)
	assert.Contains(t, h.m.View(), "✅ Markdown copied to clipboard!")
}

func TestStatusOutOfOrder(t *testing.T) {
	h := newHarness(t, func(ctx context.Context, url string) (string, error) { return guide, nil })
	h.drain()

	reporter := h.app.Status()
	reporter.Show("Style guide generated successfully!", status.Success)
	h.sched.Advance(status.SuccessTimeout)
	copied := reporter.Show(exporter.CopiedMessage, status.Success)

	var msgs []statusMsg
	for len(h.sent) > 0 {
		msgs = append(msgs, (<-h.sent).(statusMsg))
	}
	require.Len(t, msgs, 3)
	cleared := msgs[1]
	require.True(t, cleared.status.IsZero())

	// The copy notification overtakes the expiry of the previous message.
	h.update(msgs[0])
	h.update(msgs[2])
	h.update(cleared)

	assert.Equal(t, copied, h.m.status)
	assert.Equal(t, reporter.Current(), h.m.status)
	assert.Contains(t, h.m.View(), "✅ Markdown copied to clipboard!")
}

func TestSavePrompt(t *testing.T) {
	h := newHarness(t, func(ctx context.Context, url string) (string, error) { return guide, nil })
	h.m.input.SetValue("https://example.com")
	run[extractDoneMsg](h, h.update(key("enter")))
	h.drain()

	cmd := h.update(key("ctrl+s"))
	require.NotNil(t, cmd)
	assert.Nil(t, h.update(key("ctrl+s")), "one export at a time")

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var prompt promptMsg
	select {
	case msg := <-h.sent:
		prompt = msg.(promptMsg)
	case <-time.After(time.Second):
		t.Fatal("save prompt was not requested")
	}
	assert.Equal(t, exporter.DefaultFileName, prompt.opts.DefaultPath)

	h.update(prompt)
	assert.Equal(t, "style-guide.md", h.m.pathInput.Value())
	assert.Contains(t, h.m.View(), "Save as:")

	h.m.pathInput.SetValue("notes.txt")
	h.update(key("enter"))
	assert.Contains(t, h.m.View(), "file must end in .md")

	h.m.pathInput.SetValue("guide")
	h.update(key("enter"))
	assert.Nil(t, h.m.prompt)

	select {
	case msg := <-done:
		h.update(msg)
		assert.NoError(t, msg.(exportDoneMsg).err)
	case <-time.After(time.Second):
		t.Fatal("save did not finish")
	}
	h.drain()

	assert.Equal(t, guide, h.files["guide.md"])
	assert.Contains(t, h.m.View(), "✅ File saved successfully!")
}

func TestSavePromptCancel(t *testing.T) {
	h := newHarness(t, func(ctx context.Context, url string) (string, error) { return guide, nil })
	h.m.input.SetValue("https://example.com")
	run[extractDoneMsg](h, h.update(key("enter")))
	h.drain()
	before := h.m.status

	cmd := h.update(key("ctrl+s"))
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	h.update(<-h.sent)
	require.NotNil(t, h.m.prompt)
	h.update(key("esc"))

	msg := <-done
	assert.ErrorIs(t, msg.(exportDoneMsg).err, exporter.ErrCancelled)
	h.update(msg)
	h.drain()

	assert.Empty(t, h.files)
	assert.Equal(t, before, h.m.status)
	assert.False(t, h.m.exporting)
}

func TestDialogDetached(t *testing.T) {
	_, ok, err := NewDialog().Prompt(context.Background(), exporter.SaveOptions{})
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestDialogContextDone(t *testing.T) {
	d := NewDialog()
	d.Attach(func(tea.Msg) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := d.Prompt(ctx, exporter.SaveOptions{})
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQuit(t *testing.T) {
	h := newHarness(t, func(ctx context.Context, url string) (string, error) { return guide, nil })
	cmd := h.update(key("ctrl+c"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.False(t, strings.Contains(h.m.View(), "Save as:"))
}
