package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Render writes the warnings, the fixed notices and then the table.
func Render(w io.Writer, rep *Report, theme *Theme) error {
	var b strings.Builder
	for _, warning := range rep.Warnings {
		b.WriteString(theme.Paint(Warn, warning.Text))
		b.WriteByte('\n')
	}
	for _, notice := range Notices {
		b.WriteString(notice)
		b.WriteByte('\n')
	}
	b.WriteString(Table(rep.Rows, theme).String())
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Table lays out rows under Headers.
func Table(rows []Row, theme *Theme) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.border).
		Headers(Headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.header
			}
			return theme.cell
		})

	for _, r := range rows {
		cells := r.Cells()
		values := make([]string, len(cells))
		for i, c := range cells {
			values[i] = theme.Paint(c.Emphasis, c.Text)
		}
		t.Row(values...)
	}
	return t
}
