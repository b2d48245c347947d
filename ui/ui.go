package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles (you can override these per-view if desired)
var (
	FrameTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	FrameBorderColor = lipgloss.Color("117")

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f87")).
			Bold(true)

	FaintStyle = lipgloss.NewStyle().Faint(true)

	// Rainbow colors the breadcrumb segments of the view stack bar.
	Rainbow = []lipgloss.Style{
		lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("231")),
		lipgloss.NewStyle().Background(lipgloss.Color("39")).Foreground(lipgloss.Color("16")),
		lipgloss.NewStyle().Background(lipgloss.Color("42")).Foreground(lipgloss.Color("16")),
		lipgloss.NewStyle().Background(lipgloss.Color("214")).Foreground(lipgloss.Color("16")),
	}
)

// RenderFramedBox draws a bordered frame with a centered title and
// optional footer line. ANSI sequences in content are preserved.
func RenderFramedBox(title, content, footer string, width int) string {
	lines := strings.Split(content, "\n")
	var footerLines []string
	if footer != "" {
		footerLines = strings.Split(footer, "\n")
	}

	contentWidth := 0
	for _, l := range append(append([]string{}, lines...), footerLines...) {
		if w := lipgloss.Width(l); w > contentWidth {
			contentWidth = w
		}
	}
	if width <= 0 {
		width = contentWidth + 4
	}

	titleStyled := ""
	if title != "" {
		titleStyled = FrameTitleStyle.Render(" " + title + " ")
	}
	borderWidth := width - 2
	borderStyle := lipgloss.NewStyle().Foreground(FrameBorderColor)

	leftPad := (borderWidth - lipgloss.Width(titleStyled)) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	rightPad := borderWidth - leftPad - lipgloss.Width(titleStyled)
	if rightPad < 0 {
		rightPad = 0
	}

	topLine := fmt.Sprintf("%s%s%s%s%s",
		borderStyle.Render("╭"),
		borderStyle.Render(strings.Repeat("─", leftPad)),
		titleStyled,
		borderStyle.Render(strings.Repeat("─", rightPad)),
		borderStyle.Render("╮"),
	)

	boxLines := []string{topLine}
	for _, l := range lines {
		boxLines = append(boxLines, fmt.Sprintf("%s%s%s",
			borderStyle.Render("│"),
			padLine(l, borderWidth),
			borderStyle.Render("│")))
	}
	for _, fl := range footerLines {
		boxLines = append(boxLines, fmt.Sprintf("%s%s%s",
			borderStyle.Render("│"),
			padLine(FaintStyle.Render(fl), borderWidth),
			borderStyle.Render("│")))
	}

	bottomLine := fmt.Sprintf("%s%s%s",
		borderStyle.Render("╰"),
		borderStyle.Render(strings.Repeat("─", borderWidth)),
		borderStyle.Render("╯"))
	boxLines = append(boxLines, bottomLine)

	return strings.Join(boxLines, "\n")
}

// padLine fits a line to width, preserving ANSI sequences.
func padLine(line string, width int) string {
	l := lipgloss.Width(line)
	if l >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line + strings.Repeat(" ", width-l)
}
