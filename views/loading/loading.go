package loadingview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shellkit/ui"
	"shellkit/views/helpbar"
	"shellkit/views/view"
)

const ViewName = view.NameLoading

type Model struct {
	width, height int
	message       string
	spinner       spinner.Model
	isError       bool
}

func New(width, height int, payload any) *Model {
	message := "Please wait..."
	if s, ok := payload.(string); ok && s != "" {
		message = s
	}

	return &Model{
		width:   width,
		height:  height,
		message: message,
		spinner: ui.BubbleSpinner(),
		isError: strings.HasPrefix(message, "Error"),
	}
}

func (m *Model) Init() tea.Cmd    { return m.spinner.Tick }
func (m *Model) Name() string     { return ViewName }
func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	if m.isError {
		return []helpbar.HelpEntry{{Key: "esc", Desc: "back"}}
	}
	return nil
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) View() string {
	content := m.message
	if !m.isError {
		content = fmt.Sprintf("%s %s", m.spinner.View(), m.message)
	}
	box := ui.RenderFramedBox("", content, "", 0)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
