// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

// render.go turns a status report into terminal output. Styling follows the
// shared palette; when color is off the same layout is emitted as plain
// text so the view stays scriptable.

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/courierhq/courier/core/model"
	"github.com/courierhq/courier/internal/i18n"
)

// colorPalette defines the core colors used in the CLI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorSpecial   = lipgloss.Color("208") // An orange for special attention
	colorSuccess   = lipgloss.Color("40")  // A nice green
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)

	stateStyles = map[model.State]lipgloss.Style{
		model.StateOK:    lipgloss.NewStyle().Foreground(colorSuccess),
		model.StateSetup: lipgloss.NewStyle().Foreground(colorHighlight),
		model.StateWarn:  lipgloss.NewStyle().Foreground(colorSpecial),
		model.StateOff:   lipgloss.NewStyle().Foreground(colorSubtle).Strikethrough(true),
	}
)

// RenderReport renders the status report as a table plus any detail tables.
// Cells are padded before styling so ANSI codes never break alignment.
func RenderReport(rep model.Report, color bool) string {
	var sb strings.Builder

	title := i18n.T("status.title")
	if color {
		title = titleStyle.Render(title)
	}
	sb.WriteString(title + "\n\n")

	providerWidth := len(i18n.T("status.col_channel"))
	for _, row := range rep.Rows {
		providerWidth = max(providerWidth, len(row.Provider))
	}
	const stateWidth = 5 // longest state is "setup"

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %s\n",
		providerWidth, i18n.T("status.col_channel"),
		stateWidth, i18n.T("status.col_state"),
		i18n.T("status.col_detail")))

	for _, row := range rep.Rows {
		state := fmt.Sprintf("%-*s", stateWidth, strings.ToUpper(string(row.State)))
		if color {
			if style, ok := stateStyles[row.State]; ok {
				state = style.Render(state)
			}
		}
		sb.WriteString(fmt.Sprintf("%-*s  %s  %s\n",
			providerWidth, row.Provider, state, row.Detail))
	}

	for _, table := range rep.Details {
		sb.WriteString("\n")
		sb.WriteString(renderDetailTable(table, color))
	}

	return sb.String()
}

func renderDetailTable(table model.DetailTable, color bool) string {
	var sb strings.Builder

	title := table.Title
	if color {
		title = titleStyle.Render(title)
	}
	sb.WriteString(title + "\n")

	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = len(col)
	}
	for _, row := range table.Rows {
		for i, col := range table.Columns {
			widths[i] = max(widths[i], len(row[col]))
		}
	}

	var header []string
	for i, col := range table.Columns {
		header = append(header, fmt.Sprintf("%-*s", widths[i], strings.ToUpper(col)))
	}
	sb.WriteString(strings.TrimRight(strings.Join(header, "  "), " ") + "\n")

	for _, row := range table.Rows {
		var cells []string
		for i, col := range table.Columns {
			cells = append(cells, fmt.Sprintf("%-*s", widths[i], row[col]))
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " ") + "\n")
	}

	return sb.String()
}
