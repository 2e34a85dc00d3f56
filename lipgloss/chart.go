// Package lipgloss renders recipecrawl charts for the terminal.
package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/recipecrawl"
)

// Chart defaults.
const (
	DefaultBarWidth   = 40
	DefaultLabelWidth = 32
)

const barGlyph = "█"

// Ensure BarChart implements recipecrawl.ChartRenderer at compile time.
var _ recipecrawl.ChartRenderer = (*BarChart)(nil)

// BarChart draws horizontal bars, one row per title, in the order given.
type BarChart struct {
	w          io.Writer
	barWidth   int
	labelWidth int

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	barStyle   lipgloss.Style
	countStyle lipgloss.Style
}

// Option configures a BarChart.
type Option func(*BarChart)

// WithBarWidth sets the width of the longest bar in cells.
func WithBarWidth(n int) Option {
	return func(c *BarChart) {
		c.barWidth = n
	}
}

// WithLabelWidth sets the column width for titles. Longer titles are truncated.
func WithLabelWidth(n int) Option {
	return func(c *BarChart) {
		c.labelWidth = n
	}
}

// NewBarChart creates a BarChart writing to w. Colors follow what w supports.
func NewBarChart(w io.Writer, opts ...Option) *BarChart {
	r := lipgloss.NewRenderer(w)
	c := &BarChart{
		w:          w,
		barWidth:   DefaultBarWidth,
		labelWidth: DefaultLabelWidth,
		titleStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		labelStyle: r.NewStyle().Foreground(lipgloss.Color("241")),
		barStyle:   r.NewStyle().Foreground(lipgloss.Color("214")),
		countStyle: r.NewStyle().Foreground(lipgloss.Color("86")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RenderChart writes title followed by one bar per count.
// Bars are scaled so the largest count fills the bar width.
func (c *BarChart) RenderChart(title string, counts []recipecrawl.TitleCount) error {
	if len(counts) == 0 {
		return nil
	}

	highest := 0
	for _, tc := range counts {
		highest = max(highest, tc.Count)
	}

	var b strings.Builder
	b.WriteString(c.titleStyle.Render(title))
	b.WriteString("\n\n")
	for _, tc := range counts {
		label := truncate(tc.Title, c.labelWidth)
		b.WriteString(c.labelStyle.Width(c.labelWidth).Render(label))
		b.WriteString(" ")
		b.WriteString(c.barStyle.Render(strings.Repeat(barGlyph, barLength(tc.Count, highest, c.barWidth))))
		b.WriteString(" ")
		b.WriteString(c.countStyle.Render(fmt.Sprint(tc.Count)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(c.w, b.String())
	return err
}

// barLength scales count to width cells; any positive count gets one cell.
func barLength(count, highest, width int) int {
	if count <= 0 || highest <= 0 || width <= 0 {
		return 0
	}
	n := count * width / highest
	return max(n, 1)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
