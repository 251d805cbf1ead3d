package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// render styles ; lipgloss degrades to plain text off-terminal
var (
	styleTitle  = lipgloss.NewStyle().Bold(true)
	styleHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleMuted  = lipgloss.NewStyle().Faint(true)
	styleOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleFail   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// table renders [rows] under [headers] with per-column widths.
func table(headers []string, rows [][]string) string {

	widths := make([]int, len(headers))
	for e, h := range headers {
		widths[e] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for e, cell := range row {
			if e < len(widths) && lipgloss.Width(cell) > widths[e] {
				widths[e] = lipgloss.Width(cell)
			}
		}
	}

	var view strings.Builder
	for e, h := range headers {
		view.WriteString(styleHeader.Width(widths[e] + 2).Render(h))
	}
	view.WriteString("\n")
	for _, row := range rows {
		for e, cell := range row {
			if e < len(widths) {
				view.WriteString(styleCell.Width(widths[e] + 2).Render(cell))
			}
		}
		view.WriteString("\n")
	}
	return view.String()
}

// kv renders an aligned key: value listing ; blank values are skipped.
func kv(pairs [][2]string) string {

	width := 0
	for _, pair := range pairs {
		if pair[1] != "" && len(pair[0]) > width {
			width = len(pair[0])
		}
	}

	var view strings.Builder
	for _, pair := range pairs {
		if pair[1] == "" {
			continue
		}
		view.WriteString(styleMuted.Render(fmt.Sprintf("%-*s", width+2, pair[0]+":")))
		view.WriteString(pair[1])
		view.WriteString("\n")
	}
	return view.String()
}

func title(text string) string {
	return styleTitle.Render(text) + "\n"
}

func success(text string) {
	fmt.Println(styleOK.Render(text))
}

func failure(text string) {
	fmt.Println(styleFail.Render(text))
}

func boolMark(is bool) string {
	if is {
		return "yes"
	}
	return "no"
}
