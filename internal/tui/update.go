package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeHeight is the number of lines around the document viewport.
const chromeHeight = 10

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		if m.prompt != nil {
			return m.updatePrompt(msg)
		}
		return m.handleKey(msg)
	case promptMsg:
		return m.openPrompt(msg)
	case statusMsg:
		// Notifications can arrive out of order; keep the newest status.
		if msg.status.ID < m.status.ID {
			return m, nil
		}
		m.status = msg.status
		return m, nil
	case extractDoneMsg:
		m.submitting = false
		if msg.err == nil {
			m.refreshDocument()
			m.viewport.GotoTop()
		}
		return m, nil
	case exportDoneMsg:
		m.exporting = false
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.prompt != nil {
		m.pathInput, cmd = m.pathInput.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.input.Width = max(msg.Width-32, 10)
	m.pathInput.Width = max(msg.Width-24, 10)

	m.viewport.Width = max(msg.Width-2, 10)
	m.viewport.Height = max(msg.Height-chromeHeight, 3)
	m.refreshDocument()

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		if m.busy() {
			return m, nil
		}
		m.submitting = true
		return m, tea.Batch(m.submitCmd(m.input.Value()), m.spinner.Tick)
	case "ctrl+y":
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		return m, m.copyCmd()
	case "ctrl+s":
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		return m, m.saveCmd()
	case "up", "down", "pgup", "pgdown":
		if m.app.Session().DocumentVisible() {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) openPrompt(msg promptMsg) (Model, tea.Cmd) {
	if m.prompt != nil {
		msg.reply <- promptReply{}
		return m, nil
	}

	m.prompt = &msg
	m.promptHint = ""
	m.input.Blur()
	m.pathInput.SetValue(msg.opts.DefaultPath)
	m.pathInput.CursorEnd()
	return m, m.pathInput.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m = m.closePrompt(promptReply{})
		return m, tea.Quit
	case "esc":
		return m.closePrompt(promptReply{}), nil
	case "enter":
		path, err := m.prompt.opts.ResolvePath(m.pathInput.Value())
		if err != nil {
			m.promptHint = err.Error()
			return m, nil
		}
		return m.closePrompt(promptReply{path: path, ok: true}), nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	m.promptHint = ""
	return m, cmd
}

func (m Model) closePrompt(r promptReply) Model {
	m.prompt.reply <- r
	m.prompt = nil
	m.promptHint = ""
	m.pathInput.Blur()
	m.input.Focus()
	return m
}

func (m *Model) refreshDocument() {
	session := m.app.Session()
	if !session.DocumentVisible() {
		m.viewport.SetContent("")
		return
	}

	out, err := m.renderer.Render(session.Document(), m.viewport.Width-2)
	if err != nil {
		out = session.Document()
	}
	m.viewport.SetContent(out)
}
