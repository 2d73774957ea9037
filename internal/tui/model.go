package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	styleguideextractor "github.com/kataras/styleguide-extractor"
	"github.com/kataras/styleguide-extractor/pkg/formatter"
	"github.com/kataras/styleguide-extractor/pkg/status"
)

// Model is the bubbletea model of the extractor screen.
type Model struct {
	ctx context.Context
	app *styleguideextractor.App

	input     textinput.Model
	pathInput textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	renderer  *formatter.Renderer

	status     status.Status
	submitting bool
	exporting  bool
	prompt     *promptMsg
	promptHint string

	width  int
	height int
}

// NewModel returns the initial model for app. ctx bounds every request the
// model starts.
func NewModel(ctx context.Context, app *styleguideextractor.App, renderer *formatter.Renderer) Model {
	input := textinput.New()
	input.Placeholder = "https://example.com"
	input.Prompt = ""
	input.CharLimit = 2048
	input.Focus()

	pathInput := textinput.New()
	pathInput.Prompt = ""
	pathInput.CharLimit = 1024

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	if renderer == nil {
		renderer = formatter.NewRenderer("")
	}

	return Model{
		ctx:       ctx,
		app:       app,
		input:     input,
		pathInput: pathInput,
		spinner:   sp,
		viewport:  viewport.New(80, 20),
		renderer:  renderer,
		status:    app.Status().Current(),
		width:     80,
		height:    30,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) busy() bool {
	return m.submitting || m.app.Session().InFlight()
}
