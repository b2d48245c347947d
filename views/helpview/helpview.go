package helpview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"shellkit/ui"
	"shellkit/views/helpbar"
	"shellkit/views/view"
)

const ViewName = view.NameHelp

// CommandInfo is one row of the command table.
type CommandInfo struct {
	Name     string
	Synopsis string
}

type Model struct {
	width, height int
	commands      []CommandInfo
}

func New(width, height int, cmds []CommandInfo) *Model {
	return &Model{width: width, height: height, commands: cmds}
}

func (m *Model) Init() tea.Cmd    { return nil }
func (m *Model) Name() string     { return ViewName }
func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{{Key: "esc", Desc: "close"}}
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	return nil
}

func (m *Model) View() string {
	nameWidth := 0
	for _, c := range m.commands {
		if len(c.Name) > nameWidth {
			nameWidth = len(c.Name)
		}
	}

	// Name column is fixed, synopsis absorbs the rest of the frame.
	cols := ui.DistributeColumns(m.width-4, 1, 2, []int{nameWidth, 40}, []int{1})

	var b strings.Builder
	for _, c := range m.commands {
		syn := c.Synopsis
		if len(syn) > cols[1] && cols[1] > 1 {
			syn = syn[:cols[1]-1] + "…"
		}
		fmt.Fprintf(&b, "%-*s  %s\n", cols[0], c.Name, syn)
	}

	return ui.RenderFramedBox("Commands", strings.TrimRight(b.String(), "\n"),
		"help <command> shows full usage", m.width)
}
