package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kataras/styleguide-extractor/pkg/status"
)

// statusMsg is sent by the status reporter whenever the status line changes,
// including when a success message clears itself.
type statusMsg struct {
	status status.Status
}

// extractDoneMsg reports that a submitted request settled.
type extractDoneMsg struct {
	err error
}

// exportDoneMsg reports that a copy or save finished.
type exportDoneMsg struct {
	save bool
	err  error
}

// The App calls below block and report through the status reporter, whose
// listener sends to the program. They must run as commands, never inside
// Update.

func (m Model) submitCmd(rawURL string) tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		return extractDoneMsg{err: app.Submit(ctx, rawURL)}
	}
}

func (m Model) copyCmd() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		return exportDoneMsg{err: app.CopyToClipboard()}
	}
}

func (m Model) saveCmd() tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		return exportDoneMsg{save: true, err: app.SaveToFile(ctx)}
	}
}
