package helpbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type HelpEntry struct {
	Key  string
	Desc string
}

// Model renders the key-binding bar shown above the active view.
type Model struct {
	globalHelp  []HelpEntry
	viewHelp    []HelpEntry
	width       int
	minColWidth int
}

const (
	defaultMinColWidth = 20
	rowsPerColumn      = 4
)

func New(width int) *Model {
	return &Model{
		globalHelp:  []HelpEntry{{Key: "?", Desc: "help"}},
		width:       width,
		minColWidth: defaultMinColWidth,
	}
}

func (m *Model) WithGlobalHelp(entries []HelpEntry) *Model {
	m.globalHelp = entries
	return m
}

func (m *Model) WithViewHelp(entries []HelpEntry) *Model {
	m.viewHelp = entries
	return m
}

func (m *Model) SetWidth(width int) *Model {
	m.width = width
	return m
}

// View renders the session info block on the left with the key help
// columns beside it.
func (m *Model) View(sessionInfo string) string {
	allHelp := append(append([]HelpEntry{}, m.globalHelp...), m.viewHelp...)
	if len(allHelp) == 0 {
		return sessionInfo
	}

	infoWidth := lipgloss.Width(sessionInfo)
	availableWidth := m.width - infoWidth - 2
	if availableWidth < m.minColWidth {
		return sessionInfo
	}

	numCols := (len(allHelp) + rowsPerColumn - 1) / rowsPerColumn
	if maxCols := availableWidth / m.minColWidth; numCols > maxCols && maxCols > 0 {
		numCols = maxCols
	}

	columns := make([][]HelpEntry, numCols)
	for i, entry := range allHelp {
		col := i / rowsPerColumn
		if col >= numCols {
			break
		}
		columns[col] = append(columns[col], entry)
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)

	var renderedCols []string
	for colIdx, col := range columns {
		maxKeyLen := 0
		for _, entry := range col {
			if w := lipgloss.Width("<" + entry.Key + ">"); w > maxKeyLen {
				maxKeyLen = w
			}
		}

		var lines []string
		for _, entry := range col {
			keyText := "<" + entry.Key + ">"
			padding := maxKeyLen - lipgloss.Width(keyText)
			lines = append(lines, keyStyle.Render(keyText)+strings.Repeat(" ", padding+2)+entry.Desc)
		}

		if colIdx > 0 {
			renderedCols = append(renderedCols, "   ")
		}
		renderedCols = append(renderedCols, strings.Join(lines, "\n"))
	}

	helpBlock := lipgloss.JoinHorizontal(lipgloss.Top, renderedCols...)
	helpAligned := lipgloss.NewStyle().
		Width(availableWidth).
		Align(lipgloss.Left).
		Render(helpBlock)

	return lipgloss.JoinHorizontal(lipgloss.Top, sessionInfo, "  ", helpAligned)
}
