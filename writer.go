package topdf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry and typography for rendered documents.
const (
	pageFormat    = "A4"
	baseFontSize  = 12 // points; spans without an explicit size use this
	pdfFontFamily = "docfont"
	mmPerPoint    = 25.4 / 72.0
)

// Render lays the document's blocks onto pages and writes the PDF to w.
// The document font is registered for the regular, bold, italic and
// bold-italic slots so styled spans always resolve to the same face.
func Render(doc *Document, w io.Writer) error {
	font := doc.Font()
	if font == nil {
		return fmt.Errorf("%w: document has no font", ErrRenderPDF)
	}

	pdf := gofpdf.New("P", "mm", pageFormat, "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(doc.Margin, doc.Margin, doc.Margin)
	pdf.SetAutoPageBreak(true, doc.Margin)
	for _, slot := range []string{"", "B", "I", "BI"} {
		pdf.AddUTF8FontFromBytes(pdfFontFamily, slot, bytes.Clone(font.Data()))
	}
	pdf.AddPage()

	page := &pageWriter{pdf: pdf, spacing: doc.LineSpacing}
	for _, block := range doc.Blocks() {
		switch b := block.(type) {
		case Paragraph:
			page.paragraph(b)
		case Break:
			page.gap(b)
		case Image:
			page.image(b)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderPDF, err)
	}
	return nil
}

// RenderFile renders the document and writes the PDF to path.
func RenderFile(doc *Document, path string) error {
	var buf bytes.Buffer
	if err := Render(doc, &buf); err != nil {
		return err
	}

	// #nosec G306 -- PDF output files are intended to be readable
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderPDF, err)
	}
	return nil
}

// pageWriter tracks typography state while blocks are laid out.
type pageWriter struct {
	pdf     *gofpdf.Fpdf
	spacing float64
}

// lineHeight converts a point size to the vertical advance in mm,
// including the document line spacing factor.
func (p *pageWriter) lineHeight(size float64) float64 {
	return size * mmPerPoint * p.spacing
}

func spanSize(s Style) float64 {
	if s.Size > 0 {
		return s.Size
	}
	return baseFontSize
}

func (p *pageWriter) applyStyle(s Style) {
	var slot string
	if s.Bold {
		slot = "B"
	}
	p.pdf.SetFont(pdfFontFamily, slot, spanSize(s))
	if s.Color != nil {
		p.pdf.SetTextColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
	} else {
		p.pdf.SetTextColor(0, 0, 0)
	}
}

func (p *pageWriter) paragraph(para Paragraph) {
	switch len(para.Spans) {
	case 0:
		p.pdf.Ln(p.lineHeight(baseFontSize))
	case 1:
		span := para.Spans[0]
		p.applyStyle(span.Style)
		p.pdf.MultiCell(0, p.lineHeight(spanSize(span.Style)), span.Text, "", "L", false)
	default:
		// Mixed spans flow on a shared baseline sized by the largest span.
		height := p.lineHeight(maxSpanSize(para.Spans))
		for _, span := range para.Spans {
			p.applyStyle(span.Style)
			p.pdf.Write(height, span.Text)
		}
		p.pdf.Ln(height)
	}
}

func maxSpanSize(spans []Span) float64 {
	var max float64
	for _, span := range spans {
		if size := spanSize(span.Style); size > max {
			max = size
		}
	}
	return max
}

func (p *pageWriter) gap(b Break) {
	p.pdf.Ln(b.Height * p.lineHeight(baseFontSize))
}

func (p *pageWriter) image(img Image) {
	opts := gofpdf.ImageOptions{ImageType: img.Format}
	info := p.pdf.RegisterImageOptionsReader(img.Name, opts, bytes.NewReader(img.Data))
	if info == nil {
		return
	}

	pageWidth, _ := p.pdf.GetPageSize()
	left, _, right, _ := p.pdf.GetMargins()
	maxWidth := pageWidth - left - right

	width, height := info.Width(), info.Height()
	if width > maxWidth {
		height *= maxWidth / width
		width = maxWidth
	}
	p.pdf.ImageOptions(img.Name, -1, 0, width, height, true, opts, 0, "")
}
