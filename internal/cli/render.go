package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/imaan/internal/analytics"
)

var (
	ColorBorder    = lipgloss.Color("#44475A")
	ColorText      = lipgloss.Color("#F8F8F2")
	ColorTextMuted = lipgloss.Color("#6272A4")
	ColorAccent    = lipgloss.Color("#BD93F9")
	ColorRed       = lipgloss.Color("#FF5555")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorBorder)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorRed)
)

// Table is a bordered text table for list output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders t with rounded borders. Columns are left aligned
// and sized to their widest cell.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}
	line := func(cells []string, style lipgloss.Style) {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			b.WriteString(style.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	if len(t.Headers) > 0 {
		line(t.Headers, headerStyle)
		rule("├", "┼", "┤")
	}
	for _, row := range t.Rows {
		line(row, valueStyle)
	}
	rule("╰", "┴", "╯")

	return b.String()
}

// RenderProgressBar renders a text bar for a 0-100 percentage; values past
// 100 draw a full bar.
func RenderProgressBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(filled, width))
	return mutedStyle.Render("[") +
		valueStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled)+"]")
}

// RenderDayBars draws one horizontal bar per day, scaled to the busiest day.
func RenderDayBars(title string, buckets []analytics.DayBucket, width int) string {
	peak := 0
	for _, bk := range buckets {
		peak = max(peak, bk.Count)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	for _, bk := range buckets {
		n := 0
		if peak > 0 {
			n = bk.Count * width / peak
		}
		fmt.Fprintf(&b, "  %s %s %d\n",
			mutedStyle.Render(bk.Label()),
			valueStyle.Render(strings.Repeat("▇", n))+dimStyle.Render(strings.Repeat("·", width-n)),
			bk.Count,
		)
	}
	return b.String()
}

// Header renders a section heading
func Header(s string) string {
	return headerStyle.Render(s)
}

// Muted renders secondary text
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Warn renders text that needs attention, e.g. an overdue marker
func Warn(s string) string {
	return warnStyle.Render(s)
}
