package markup_test

import (
	"ipdetective/internal/markup"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	content := "# Title\n## Section\n### Sub\n- first\n• second\n  • nested\n\nplain text"
	blocks := markup.Parse(content)

	want := []markup.Block{
		{Kind: markup.KindHeading, Level: 1, Text: "Title"},
		{Kind: markup.KindHeading, Level: 2, Text: "Section"},
		{Kind: markup.KindHeading, Level: 3, Text: "Sub"},
		{Kind: markup.KindItem, Level: 0, Text: "first"},
		{Kind: markup.KindItem, Level: 0, Text: "second"},
		{Kind: markup.KindItem, Level: 1, Text: "nested"},
		{Kind: markup.KindBreak},
		{Kind: markup.KindParagraph, Text: "plain text"},
	}
	require.Equal(t, want, blocks)
}

func TestRender(t *testing.T) {
	html := string(markup.Render("# Fair Use\n\n- transformative"))
	assert.Contains(t, html, "<h1>Fair Use</h1>")
	assert.Contains(t, html, "<br>")
	assert.Contains(t, html, `<p class="item">• transformative</p>`)
}

func TestRenderEscapesHTML(t *testing.T) {
	html := string(markup.Render("<script>alert(1)</script>"))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
