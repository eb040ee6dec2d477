package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable is a simple table component for rendering static data.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewSimpleTable creates a new SimpleTable with the given title and headers.
func NewSimpleTable(title string, headers []string) *SimpleTable {
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles.
// Cells are left aligned and padded to the widest cell of their column.
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}

	writeRow := func(cells []string, style func(int) lipgloss.Style) {
		for i := range colWidths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i > 0 {
				sb.WriteString("  ")
			}
			padded := cell + strings.Repeat(" ", colWidths[i]-lipgloss.Width(cell))
			if i == len(colWidths)-1 {
				padded = cell
			}
			sb.WriteString(style(i).Render(padded))
		}
		sb.WriteString("\n")
	}

	writeRow(t.Headers, func(int) lipgloss.Style { return styles.Bold })

	totalWidth := 2 * (len(colWidths) - 1)
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", totalWidth)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		writeRow(row, func(i int) lipgloss.Style {
			if i == 0 {
				return styles.Label
			}
			return styles.Body
		})
	}

	return sb.String()
}
