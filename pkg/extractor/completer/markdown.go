package completer

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Flatten renders Markdown as plain text, one block per line.
func Flatten(markdown string) string {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []string

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := n.(type) {
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			blocks = append(blocks, inlineText(n, source))
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock, *ast.CodeBlock:
			blocks = append(blocks, blockText(n, source))
			return ast.WalkSkipChildren, nil

		case *ast.ThematicBreak:
			blocks = append(blocks, "---")
		}

		return ast.WalkContinue, nil
	})

	return strings.Join(blocks, "\n")
}

func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer

	ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := n.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))

			if n.SoftLineBreak() || n.HardLineBreak() {
				buf.WriteByte('\n')
			}

		case *ast.String:
			buf.Write(n.Value)

		case *ast.AutoLink:
			buf.Write(n.Label(source))
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimRight(buf.String(), "\n")
}

func blockText(n ast.Node, source []byte) string {
	var buf bytes.Buffer

	lines := n.Lines()

	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}

	return strings.TrimRight(buf.String(), "\n")
}
