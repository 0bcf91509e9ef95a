package topdf

// Notes:
// - Expected output is written as flat block sequences: paragraph text is
//   the joined span text, breaks carry their height
// - The accumulator deliberately leaks text out of lists, quotes and alt
//   text; the cases below pin that behavior down, including the buffered
//   text a following paragraph destroys

import (
	"strings"
	"testing"
)

type wantBlock struct {
	text string
	brk  float64
	bold bool
	size float64
}

func para(text string) wantBlock { return wantBlock{text: text} }
func brk(height float64) wantBlock { return wantBlock{brk: height} }

func styled(text string, b bool, s float64) wantBlock {
	return wantBlock{text: text, bold: b, size: s}
}

func assertBlocks(t *testing.T, doc *Document, want []wantBlock) {
	t.Helper()
	blocks := doc.Blocks()
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d (lines: %q)", len(blocks), len(want), docLines(doc))
	}
	for i, w := range want {
		switch b := blocks[i].(type) {
		case Break:
			if w.brk == 0 {
				t.Errorf("blocks[%d] is a Break, want paragraph %q", i, w.text)
			} else if b.Height != w.brk {
				t.Errorf("blocks[%d] break height = %v, want %v", i, b.Height, w.brk)
			}
		case Paragraph:
			if w.brk > 0 {
				t.Errorf("blocks[%d] is a paragraph %q, want break", i, b.Spans)
				continue
			}
			var sb strings.Builder
			for _, span := range b.Spans {
				sb.WriteString(span.Text)
			}
			if sb.String() != w.text {
				t.Errorf("blocks[%d] text = %q, want %q", i, sb.String(), w.text)
			}
			var style Style
			if len(b.Spans) > 0 {
				style = b.Spans[0].Style
			}
			if style.Bold != w.bold || style.Size != w.size {
				t.Errorf("blocks[%d] style = %+v, want bold=%v size=%v", i, style, w.bold, w.size)
			}
		default:
			t.Errorf("blocks[%d] has unexpected type %T", i, blocks[i])
		}
	}
}

// ---------------------------------------------------------------------------
// TestRenderMarkdown - Accumulator Semantics
// ---------------------------------------------------------------------------

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []wantBlock
	}{
		{
			name:    "heading then paragraph",
			content: "# Title\n\nA paragraph.\n",
			want: []wantBlock{
				styled("Title", true, 20),
				brk(0.5),
				para("A paragraph."),
				brk(0.5),
			},
		},
		{
			name:    "heading level two",
			content: "## Second\n",
			want:    []wantBlock{styled("Second", true, 18), brk(0.5)},
		},
		{
			name:    "heading level three",
			content: "### Third\n",
			want:    []wantBlock{styled("Third", true, 14), brk(0.5)},
		},
		{
			name:    "deep headings share a size",
			content: "#### Deep\n",
			want:    []wantBlock{styled("Deep", true, 14), brk(0.5)},
		},
		{
			name:    "setext heading",
			content: "Title\n=====\n",
			want:    []wantBlock{styled("Title", true, 20), brk(0.5)},
		},
		{
			name:    "empty heading still emits",
			content: "#\n",
			want:    []wantBlock{styled("", true, 20), brk(0.5)},
		},
		{
			name:    "soft break becomes a space",
			content: "alpha\nbeta\n",
			want:    []wantBlock{para("alpha beta"), brk(0.5)},
		},
		{
			name:    "hard break becomes a newline",
			content: "alpha  \nbeta\n",
			want:    []wantBlock{para("alpha\nbeta"), brk(0.5)},
		},
		{
			name:    "inline code is space padded",
			content: "use `go fmt` now\n",
			want:    []wantBlock{para("use  go fmt  now"), brk(0.5)},
		},
		{
			name:    "fenced code block",
			content: "```\nfmt.Println(1)\nreturn\n```\n",
			want: []wantBlock{
				styled("fmt.Println(1)", false, 10),
				styled("return", false, 10),
				brk(0.5),
			},
		},
		{
			name:    "indented code block",
			content: "    indented code\n",
			want:    []wantBlock{styled("indented code", false, 10), brk(0.5)},
		},
		{
			name:    "autolink keeps its url text",
			content: "<https://example.com>\n",
			want:    []wantBlock{para("https://example.com"), brk(0.5)},
		},
		{
			name:    "link renders its text only",
			content: "[click here](https://x.dev)\n",
			want:    []wantBlock{para("click here"), brk(0.5)},
		},
		{
			name:    "image alt text leaks into the paragraph",
			content: "before ![alt text](pic.png) after\n",
			want:    []wantBlock{para("before alt text after"), brk(0.5)},
		},
		{
			name:    "tight list leaks run-on text at end of input",
			content: "- one\n- two",
			want:    []wantBlock{para("onetwo")},
		},
		{
			name:    "tight list text is destroyed by a following paragraph",
			content: "- one\n- two\n\nNext.\n",
			want:    []wantBlock{para("Next."), brk(0.5)},
		},
		{
			name:    "loose list items emit as paragraphs",
			content: "- one\n\n- two\n",
			want: []wantBlock{
				para("one"),
				brk(0.5),
				para("two"),
				brk(0.5),
			},
		},
		{
			name:    "blockquote paragraphs flatten",
			content: "> quoted text\n",
			want:    []wantBlock{para("quoted text"), brk(0.5)},
		},
		{
			name:    "pipe tables stay plain text",
			content: "|a|b|\n|-|-|\n",
			want:    []wantBlock{para("|a|b| |-|-|"), brk(0.5)},
		},
		{
			name:    "strikethrough stays literal",
			content: "~~keep~~\n",
			want:    []wantBlock{para("~~keep~~"), brk(0.5)},
		},
		{
			name:    "html block content vanishes",
			content: "<div>\nhidden\n</div>\n\nvisible\n",
			want:    []wantBlock{para("visible"), brk(0.5)},
		},
		{
			name:    "thematic break emits nothing",
			content: "para one\n\n---\n\npara two\n",
			want: []wantBlock{
				para("para one"),
				brk(0.5),
				para("para two"),
				brk(0.5),
			},
		},
		{
			name:    "empty input",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestConverter(t)
			doc := NewDocument(EmbeddedFont())
			if err := c.renderMarkdown(doc, "", tt.content); err != nil {
				t.Fatalf("renderMarkdown() error = %v", err)
			}
			assertBlocks(t, doc, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderMarkdown_Highlighting - Fenced Blocks with a Language
// ---------------------------------------------------------------------------

func TestRenderMarkdown_Highlighting(t *testing.T) {
	t.Parallel()

	t.Run("off by default", func(t *testing.T) {
		t.Parallel()

		c := newTestConverter(t)
		doc := NewDocument(EmbeddedFont())
		if err := c.renderMarkdown(doc, "", "```go\nx := 1\n```\n"); err != nil {
			t.Fatalf("renderMarkdown() error = %v", err)
		}
		assertBlocks(t, doc, []wantBlock{styled("x := 1", false, 10), brk(0.5)})
	})

	t.Run("declared language gains colored spans", func(t *testing.T) {
		t.Parallel()

		c := newTestConverter(t, WithHighlighting())
		doc := NewDocument(EmbeddedFont())
		if err := c.renderMarkdown(doc, "", "```go\nreturn nil\n```\n"); err != nil {
			t.Fatalf("renderMarkdown() error = %v", err)
		}

		lines := docLines(doc)
		if len(lines) != 1 || lines[0] != "return nil" {
			t.Fatalf("lines = %q, want the code line intact", lines)
		}
		p := paragraphAt(t, doc, 0)
		colored := false
		for _, span := range p.Spans {
			if span.Style.Color != nil {
				colored = true
			}
			if span.Style.Size != codeFontSize {
				t.Errorf("span %q size = %v, want %v", span.Text, span.Style.Size, codeFontSize)
			}
		}
		if !colored {
			t.Error("no span carries a color")
		}
	})

	t.Run("unknown language falls back to plain", func(t *testing.T) {
		t.Parallel()

		c := newTestConverter(t, WithHighlighting())
		doc := NewDocument(EmbeddedFont())
		if err := c.renderMarkdown(doc, "", "```nosuchlang\nzzz\n```\n"); err != nil {
			t.Fatalf("renderMarkdown() error = %v", err)
		}
		assertBlocks(t, doc, []wantBlock{styled("zzz", false, 10), brk(0.5)})
	})

	t.Run("bare fence stays plain even when enabled", func(t *testing.T) {
		t.Parallel()

		c := newTestConverter(t, WithHighlighting())
		doc := NewDocument(EmbeddedFont())
		if err := c.renderMarkdown(doc, "", "```\nzzz\n```\n"); err != nil {
			t.Fatalf("renderMarkdown() error = %v", err)
		}
		assertBlocks(t, doc, []wantBlock{styled("zzz", false, 10), brk(0.5)})
	})
}
