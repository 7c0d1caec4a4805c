package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomypizza/orderdesk/orders"
)

// Table renders order records as aligned columns.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string

	// rowStatus drives per-row coloring; parallel to Rows.
	rowStatus []orders.Status
	rowDue    []time.Time
}

// NewOrderTable builds a table from the given records.
func NewOrderTable(title string, records []orders.Order) *Table {
	t := &Table{
		Title:   title,
		Headers: []string{"ID", "NAME", "DUE", "PRIORITY", "STATUS", "LOCATION"},
	}
	for _, o := range records {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", o.ID),
			o.Name,
			o.Due.Local().Format("Jan 02 15:04"),
			string(o.Priority),
			string(o.Status),
			o.Location,
		})
		t.rowStatus = append(t.rowStatus, o.Status)
		t.rowDue = append(t.rowDue, o.Due)
	}
	return t
}

// View renders the table with the given styles. Completed rows are dimmed
// green, rows past due are highlighted.
func (t *Table) View(styles Styles, now time.Time) string {
	if len(t.Rows) == 0 {
		return styles.Muted.Render("no orders") + "\n"
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

	headerStyle := styles.Header.Padding(0, 1)
	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i] + 2).Render(h))
	}
	sb.WriteString("\n")

	for r, row := range t.Rows {
		rowStyle := styles.Body
		if t.rowStatus[r] == orders.StatusCompleted {
			rowStyle = styles.Done
		} else if now.After(t.rowDue[r]) {
			rowStyle = styles.Overdue
		}
		cellStyle := rowStyle.Padding(0, 1)
		for i, cell := range row {
			if i < len(colWidths) {
				sb.WriteString(cellStyle.Width(colWidths[i] + 2).Render(cell))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
