package topdf

// Defaults applied to every document built by Convert.
const (
	defaultTitle       = "Converted Document"
	defaultLineSpacing = 1.2
	defaultMargin      = 10
)

// Color is an RGB triple attached to styled text.
type Color struct {
	R, G, B uint8
}

// Style describes how a run of text is drawn. The zero value is body
// text at the document's base size in black.
type Style struct {
	Bold  bool
	Size  float64 // point size; 0 means the document default
	Color *Color  // nil means black
}

// Span is a styled run of text inside a paragraph.
type Span struct {
	Text  string
	Style Style
}

// Block is a top-level layout element of a Document. Implementations
// are Paragraph, Break and Image.
type Block interface {
	isBlock()
}

// Paragraph is a wrapped unit of styled text spans.
type Paragraph struct {
	Spans []Span
}

// Break forces vertical whitespace between blocks, measured in line
// heights of the base size.
type Break struct {
	Height float64
}

// Image is a decoded raster placed as its own block.
type Image struct {
	Name   string
	Format string
	Data   []byte
	Width  int
	Height int
}

func (Paragraph) isBlock() {}
func (Break) isBlock()     {}
func (Image) isBlock()     {}

// NewParagraph builds a single-span paragraph in the default style.
func NewParagraph(text string) Paragraph {
	return Paragraph{Spans: []Span{{Text: text}}}
}

// NewStyledParagraph builds a single-span paragraph with the given style.
func NewStyledParagraph(text string, style Style) Paragraph {
	return Paragraph{Spans: []Span{{Text: text, Style: style}}}
}

// Document is the in-memory model a renderer fills before the PDF is
// written. Every conversion produces one with the same metadata: the
// shared title, 1.2 line spacing and 10mm page margins, with the single
// font serving the regular, bold, italic and bold-italic family slots.
type Document struct {
	Title       string
	LineSpacing float64
	Margin      float64

	font   *Font
	blocks []Block
}

// NewDocument returns an empty document seeded with the conversion
// defaults and the given font.
func NewDocument(font *Font) *Document {
	return &Document{
		Title:       defaultTitle,
		LineSpacing: defaultLineSpacing,
		Margin:      defaultMargin,
		font:        font,
	}
}

// Push appends a block to the document.
func (d *Document) Push(b Block) {
	d.blocks = append(d.blocks, b)
}

// Blocks returns the pushed blocks in insertion order.
func (d *Document) Blocks() []Block { return d.blocks }

// Font returns the face shared by all four family slots.
func (d *Document) Font() *Font { return d.font }
