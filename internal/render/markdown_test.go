package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_BasicMarkdown(t *testing.T) {
	r := NewMarkdown()

	html, err := r.Render("# Heading\n\nSome *emphasis*.")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Heading</h1>")
	assert.Contains(t, html, "<em>emphasis</em>")
}

func TestRender_GFMTable(t *testing.T) {
	r := NewMarkdown()

	html, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
}

func TestRender_EmptyBody(t *testing.T) {
	r := NewMarkdown()

	html, err := r.Render("")
	require.NoError(t, err)
	assert.Empty(t, html)
}
