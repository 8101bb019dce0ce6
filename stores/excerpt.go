package stores

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// Excerpt returns the first top-level block of a markdown body that has
// prose, as plain text cut to limit cells. Headings and code blocks are
// skipped. Items of a leading list are joined with spaces. A limit of zero
// or less disables the cut.
func Excerpt(body string, limit int) string {
	src := []byte(body)
	doc := markdown.Parser().Parse(text.NewReader(src))

	var b strings.Builder
	hasText := false
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n.Kind() == ast.KindDocument {
			return ast.WalkContinue, nil
		}
		if !entering {
			if n.Type() != ast.TypeBlock {
				return ast.WalkContinue, nil
			}
			if hasText && n.Parent() != nil && n.Parent().Kind() == ast.KindDocument {
				return ast.WalkStop, nil
			}
			b.WriteByte(' ')
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading, ast.KindCodeBlock, ast.KindFencedCodeBlock, ast.KindHTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		if t, ok := n.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			hasText = true
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return ""
	}

	out := strings.Join(strings.Fields(b.String()), " ")
	if limit > 0 {
		out = runewidth.Truncate(out, limit, "…")
	}
	return out
}
