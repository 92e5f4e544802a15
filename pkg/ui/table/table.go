// Package table renders rows as a terminal table with lipgloss. Data
// sources implement TableData rather than building lipgloss tables.
package table

import (
	"fmt"
	"os"
	"strings"
	"time"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is implemented by anything which can be rendered as a table
type TableData interface {
	// Header returns the column labels
	Header() []string

	// Len returns the number of rows
	Len() int

	// Row returns the cell values for row i, or nil to skip the row
	Row(i int) []any
}

// Bold marks a cell to be rendered in bold
type Bold struct{ Value any }

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	empty      = "-"
	timeLayout = "2006-01-02 15:04"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(1)
	borderStyle = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render returns the table as a string. When stdout is a terminal narrower
// than the table, columns are wrapped to fit.
func Render(data TableData) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i := range data.Len() {
		if row := data.Row(i); row != nil {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = Cell(v)
			}
			t.Row(cells...)
		}
	}

	result := t.Render()
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 && widest(result) > width {
		result = t.Width(width).Render()
	}
	return result
}

// Cell returns the display string for a value. Empty and zero values are
// shown as a dash.
func Cell(v any) string {
	switch v := v.(type) {
	case nil:
		return empty
	case Bold:
		return boldStyle.Render(Cell(v.Value))
	case string:
		if v == "" {
			return empty
		}
		return v
	case time.Time:
		if v.IsZero() {
			return empty
		}
		return v.Format(timeLayout)
	case int:
		if v == 0 {
			return empty
		}
		return fmt.Sprint(v)
	case uint:
		if v == 0 {
			return empty
		}
		return fmt.Sprint(v)
	default:
		if s := fmt.Sprint(v); s != "" {
			return s
		}
		return empty
	}
}

// Truncate shortens s to at most max runes on a single line
func Truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); max > 0 && len(r) > max {
		return string(r[:max-1]) + "…"
	}
	return s
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func widest(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		n = max(n, lipgloss.Width(line))
	}
	return n
}
