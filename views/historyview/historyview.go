package historyview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"shellkit/history"
	"shellkit/views/helpbar"
	"shellkit/views/view"
)

const ViewName = view.NameHistory

// RunEntryMsg asks the console to re-run a history entry.
type RunEntryMsg struct{ Statement string }

type item struct {
	n int
	e history.Entry
}

func (i item) Title() string       { return fmt.Sprintf("%4d  %s", i.n, i.e.Statement) }
func (i item) Description() string { return i.e.When.Format("2006-01-02 15:04:05") }
func (i item) FilterValue() string { return i.e.Statement }

type Model struct {
	list list.Model
}

func New(width, height int, entries []history.Entry) *Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = item{n: i + 1, e: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Command history"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return &Model{list: l}
}

func (m *Model) Init() tea.Cmd    { return nil }
func (m *Model) Name() string     { return ViewName }
func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "enter", Desc: "re-run"},
		{Key: "/", Desc: "filter"},
		{Key: "esc", Desc: "close"},
	}
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		if it, ok := m.list.SelectedItem().(item); ok {
			statement := it.e.Statement
			return tea.Sequence(
				func() tea.Msg { return view.NavigateBackMsg{} },
				func() tea.Msg { return RunEntryMsg{Statement: statement} },
			)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *Model) View() string {
	return m.list.View()
}
