// Package tui is the line-rendering sink for table mode. It turns rows and
// their emphasis intents into styled terminal lines; everything it prints
// was decided upstream by the report package.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"
	"github.com/schemaguard/schemaguard/internal/domain"
	"github.com/schemaguard/schemaguard/internal/domain/report"
)

var (
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	dim     = lipgloss.Color("#6B7280") // muted gray
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	success = lipgloss.Color("#22C55E") // green
)

var (
	failStyle    = lipgloss.NewStyle().Foreground(danger)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	passStyle    = lipgloss.NewStyle().Foreground(success)
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

var tableHeader = [3]string{"Change", "Code", "Description"}

// RenderTable renders the tabular report with severity coloring. Pass
// color=false when stdout is not a terminal to emit plain text.
func RenderTable(tbl report.Table, color bool) string {
	if tbl.Message != "" {
		if color {
			return passStyle.Render(tbl.Message) + "\n"
		}
		return tbl.Message + "\n"
	}

	changeW, codeW := len(tableHeader[0]), len(tableHeader[1])
	for _, row := range tbl.Rows {
		changeW = max(changeW, len(row.Change))
		codeW = max(codeW, len(row.Code))
	}

	var b strings.Builder
	header := fmt.Sprintf("  %s  %s  %s",
		padRight(tableHeader[0], changeW),
		padRight(tableHeader[1], codeW),
		tableHeader[2],
	)
	if color {
		header = headerStyle.Render(header)
	}
	b.WriteString(header + "\n")

	for _, row := range tbl.Rows {
		line := fmt.Sprintf("  %s  %s  %s",
			padRight(row.Change, changeW),
			padRight(row.Code, codeW),
			row.Description,
		)
		if color {
			line = emphasisStyle(row.Emphasis).Render(line)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// RenderSummary renders the one-line verdict printed under the table.
func RenderSummary(c domain.Classification, color bool) string {
	var line string
	if c.Safe() {
		line = fmt.Sprintf("%s checked, none breaking.", english.Plural(c.Total, "change", ""))
		if color {
			line = passStyle.Render(line)
		}
	} else {
		line = fmt.Sprintf("%d of %d changes are breaking.", c.BreakingCount, c.Total)
		if color {
			line = summaryStyle.Foreground(danger).Render(line)
		}
	}
	return line + "\n"
}

func emphasisStyle(e report.Emphasis) lipgloss.Style {
	switch e {
	case report.EmphasisFail:
		return failStyle
	case report.EmphasisWarn:
		return warnStyle
	default:
		return dimStyle
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
