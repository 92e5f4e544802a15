package markdown_test

import (
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
	markdown "github.com/vedanth-p/Agentic-AI-playground/pkg/ui/markdown"
)

func Test_markdown_001(t *testing.T) {
	assert := assert.New(t)
	r, err := markdown.New(80)
	if !assert.NoError(err) {
		t.FailNow()
	}
	out := r.Render("The weather in **Berlin** is Overcast.")
	assert.Contains(out, "Berlin")
	assert.Contains(out, "Overcast")
	assert.NotContains(out, "**")
}

func Test_markdown_002(t *testing.T) {
	assert := assert.New(t)
	var r *markdown.Renderer
	assert.Equal("plain *text*", r.Render("plain *text*"))
}
