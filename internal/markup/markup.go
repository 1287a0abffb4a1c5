// Package markup renders the lightweight markup used in evidence content:
// lines starting with #, ## or ### are headings, "- " and "• " start list
// items, blank lines are paragraph breaks and everything else is a paragraph.
package markup

import (
	"html/template"
	"strings"
)

type Kind int

const (
	KindHeading Kind = iota
	KindItem
	KindParagraph
	KindBreak
)

// Block is one parsed line of evidence content.
type Block struct {
	Kind Kind
	// Level is the heading level (1-3) for KindHeading and the indent level
	// (0 or 1) for KindItem.
	Level int
	Text  string
}

// Parse splits content into typed blocks, one per input line.
func Parse(content string) []Block {
	var blocks []Block
	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Kind: KindHeading, Level: 3, Text: strings.TrimPrefix(line, "### ")})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Kind: KindHeading, Level: 2, Text: strings.TrimPrefix(line, "## ")})
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, Block{Kind: KindHeading, Level: 1, Text: strings.TrimPrefix(line, "# ")})
		case strings.HasPrefix(line, "- "):
			blocks = append(blocks, Block{Kind: KindItem, Level: 0, Text: strings.TrimPrefix(line, "- ")})
		case strings.HasPrefix(line, "  • "):
			blocks = append(blocks, Block{Kind: KindItem, Level: 1, Text: strings.TrimPrefix(line, "  • ")})
		case strings.HasPrefix(line, "• "):
			blocks = append(blocks, Block{Kind: KindItem, Level: 0, Text: strings.TrimPrefix(line, "• ")})
		case line == "":
			blocks = append(blocks, Block{Kind: KindBreak})
		default:
			blocks = append(blocks, Block{Kind: KindParagraph, Text: line})
		}
	}
	return blocks
}

// Render parses content and renders it as HTML. All text is escaped; the
// returned value is safe to inject into a template.
func Render(content string) template.HTML {
	var b strings.Builder
	for _, block := range Parse(content) {
		text := template.HTMLEscapeString(block.Text)
		switch block.Kind {
		case KindHeading:
			switch block.Level {
			case 1:
				b.WriteString("<h1>" + text + "</h1>")
			case 2:
				b.WriteString("<h2>" + text + "</h2>")
			default:
				b.WriteString("<h3>" + text + "</h3>")
			}
		case KindItem:
			class := "item"
			if block.Level > 0 {
				class = "subitem"
			}
			b.WriteString(`<p class="` + class + `">• ` + text + "</p>")
		case KindBreak:
			b.WriteString("<br>")
		case KindParagraph:
			b.WriteString("<p>" + text + "</p>")
		}
	}
	return template.HTML(b.String()) //nolint:gosec // every text node is escaped above.
}
