package tui

import (
	"strings"

	"github.com/kataras/styleguide-extractor/pkg/session"
	"github.com/kataras/styleguide-extractor/pkg/status"
)

// View implements tea.Model.
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Website Style Guide Extractor"))
	s.WriteString("\n")

	s.WriteString(labelStyle.Render("Website URL: "))
	s.WriteString(m.input.View())
	s.WriteString("  ")
	s.WriteString(m.viewTrigger())
	s.WriteString("\n\n")

	s.WriteString(m.viewStatus())
	s.WriteString("\n")

	if m.prompt != nil {
		s.WriteString(labelStyle.Render("Save as: "))
		s.WriteString(m.pathInput.View())
		if m.promptHint != "" {
			s.WriteString("  ")
			s.WriteString(errorStyle.Render(m.promptHint))
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.app.Session().DocumentVisible() {
		s.WriteString(documentStyle.Render(m.viewport.View()))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render(m.help()))
	return s.String()
}

func (m Model) viewTrigger() string {
	if m.busy() {
		return disabledButtonStyle.Render(m.spinner.View() + session.BusyLabel)
	}
	return buttonStyle.Render(m.app.Session().Trigger().Label)
}

func (m Model) viewStatus() string {
	st := m.status
	switch st.Severity {
	case status.Loading:
		return loadingStyle.Render(m.spinner.View() + st.Message)
	case status.Success:
		return successStyle.Render("✅ " + st.Message)
	case status.Error:
		return errorStyle.Render("❌ " + st.Message)
	default:
		return ""
	}
}

func (m Model) help() string {
	if m.prompt != nil {
		return "Enter to save • Esc to cancel"
	}
	if m.app.Session().DocumentVisible() {
		return "Enter to extract • ctrl+y copy Markdown • ctrl+s save to file • ↑/↓ scroll • ctrl+c quit"
	}
	return "Enter to extract • ctrl+c quit"
}
