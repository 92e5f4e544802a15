package table_test

import (
	"strings"
	"testing"
	"time"

	// Packages
	assert "github.com/stretchr/testify/assert"
	table "github.com/vedanth-p/Agentic-AI-playground/pkg/ui/table"
)

type rows [][]any

func (rows) Header() []string { return []string{"NAME", "DESCRIPTION"} }
func (r rows) Len() int { return len(r) }
func (r rows) Row(i int) []any { return r[i] }

func Test_table_001(t *testing.T) {
	assert := assert.New(t)
	out := table.Render(rows{
		{"get_weather", "Retrieves the current weather report for a specified city."},
		nil,
		{"echo", ""},
	})
	assert.Contains(out, "NAME")
	assert.Contains(out, "get_weather")
	assert.Contains(out, "echo")
	assert.Contains(out, "-")
}

func Test_table_002(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		in   any
		want string
	}{
		{nil, "-"},
		{"", "-"},
		{"text", "text"},
		{0, "-"},
		{42, "42"},
		{uint(0), "-"},
		{uint(7), "7"},
		{time.Time{}, "-"},
		{time.Date(2025, 1, 15, 12, 30, 0, 0, time.UTC), "2025-01-15 12:30"},
		{3.5, "3.5"},
	}
	for _, test := range tests {
		assert.Equal(test.want, table.Cell(test.in))
	}
	assert.True(strings.Contains(table.Cell(table.Bold{Value: "x"}), "x"))
}

func Test_table_003(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("hello world", table.Truncate("hello\nworld", 20))
	assert.Equal("hell…", table.Truncate("hello world", 5))
	assert.Equal("abc", table.Truncate("abc", 0))
}
