package topdf

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown heading sizes by level. Levels three and deeper share a size.
func headingSize(level int) float64 {
	switch level {
	case 1:
		return 20
	case 2:
		return 18
	default:
		return 14
	}
}

// renderMarkdown walks the CommonMark AST with a single text accumulator.
// Paragraphs, headings and code blocks flush the accumulator; every other
// construct (lists, quotes, tables-as-text, image alt text) just leaks its
// text into it, which reproduces the flat, lossy rendering this pipeline
// has always produced.
func (c *Converter) renderMarkdown(doc *Document, _, content string) error {
	source := []byte(content)
	root := c.markdown.Parser().Parse(text.NewReader(source))

	acc := &markdownAccumulator{doc: doc, source: source, highlight: c.highlight}
	_ = ast.Walk(root, acc.visit)
	acc.flushTrailing()
	return nil
}

type markdownAccumulator struct {
	doc       *Document
	source    []byte
	highlight bool
	buf       strings.Builder
}

func (m *markdownAccumulator) visit(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Text:
		if entering {
			m.buf.Write(n.Segment.Value(m.source))
			if n.HardLineBreak() {
				m.buf.WriteByte('\n')
			} else if n.SoftLineBreak() {
				m.buf.WriteByte(' ')
			}
		}
	case *ast.String:
		if entering {
			m.buf.Write(n.Value)
		}
	case *ast.CodeSpan:
		if entering {
			m.buf.WriteString(" " + m.inlineCode(n) + " ")
			return ast.WalkSkipChildren, nil
		}
	case *ast.AutoLink:
		if entering {
			m.buf.Write(n.Label(m.source))
		}
	case *ast.Paragraph:
		if entering {
			m.buf.Reset()
		} else {
			if m.buf.Len() > 0 {
				m.doc.Push(NewParagraph(m.buf.String()))
				m.doc.Push(Break{Height: paragraphBreakHeight})
			}
			m.buf.Reset()
		}
	case *ast.Heading:
		if entering {
			m.buf.Reset()
		} else {
			style := Style{Bold: true, Size: headingSize(n.Level)}
			m.doc.Push(NewStyledParagraph(m.buf.String(), style))
			m.doc.Push(Break{Height: paragraphBreakHeight})
			m.buf.Reset()
		}
	case *ast.FencedCodeBlock:
		if entering {
			m.buf.Reset()
		} else {
			m.pushCode(m.blockLines(n), string(n.Language(m.source)))
		}
	case *ast.CodeBlock:
		if entering {
			m.buf.Reset()
		} else {
			m.pushCode(m.blockLines(n), "")
		}
	}
	return ast.WalkContinue, nil
}

// inlineCode joins the code span's segments with newlines folded to
// spaces, matching how inline code is displayed in running text.
func (m *markdownAccumulator) inlineCode(n *ast.CodeSpan) string {
	var code strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			code.Write(t.Segment.Value(m.source))
		}
	}
	return strings.ReplaceAll(code.String(), "\n", " ")
}

// blockLines reassembles a code block's raw source lines.
func (m *markdownAccumulator) blockLines(n ast.Node) string {
	var code strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		code.Write(segment.Value(m.source))
	}
	return code.String()
}

// pushCode emits a code block as code-size lines followed by a break.
// With highlighting on and a declared language, lines carry colored spans.
func (m *markdownAccumulator) pushCode(code, language string) {
	if m.highlight && language != "" {
		if paragraphs, ok := highlightCode(code, language); ok {
			for _, p := range paragraphs {
				m.doc.Push(p)
			}
			m.doc.Push(Break{Height: paragraphBreakHeight})
			return
		}
	}
	pushCodeLines(m.doc, code)
	m.doc.Push(Break{Height: paragraphBreakHeight})
}

// flushTrailing emits whatever text is still buffered once the walk ends.
// Text that leaked out of list items or quotes at the end of the input
// surfaces here as a plain paragraph with no trailing break.
func (m *markdownAccumulator) flushTrailing() {
	if m.buf.Len() > 0 {
		m.doc.Push(NewParagraph(m.buf.String()))
	}
	m.buf.Reset()
}
