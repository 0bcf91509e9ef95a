package topdf

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/jaytaylor/html2text"
	"github.com/mitchellh/go-wordwrap"
	"github.com/tealeg/xlsx/v3"
	_ "golang.org/x/image/bmp"
)

// Shared renderer styling.
const (
	codeFontSize         = 10
	headerBreakHeight    = 1.0
	paragraphBreakHeight = 0.5
	htmlWrapColumn       = 80
)

// splitLines iterates lines the way the renderers consume them: split at
// \n or \r\n, with the final line ending optional.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	terminated := strings.HasSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}

// pushCodeLines emits content line by line at code size.
func pushCodeLines(doc *Document, content string) {
	for _, line := range splitLines(content) {
		doc.Push(NewStyledParagraph(line, Style{Size: codeFontSize}))
	}
}

// renderText emits one body paragraph per line. When highlighting is on
// and the path names a source-code file, lines carry colored spans
// instead; the paragraph structure stays the same.
func (c *Converter) renderText(doc *Document, path, content string) error {
	if c.highlight && path != "" {
		if paragraphs, ok := highlightFile(path, content); ok {
			for _, p := range paragraphs {
				doc.Push(p)
			}
			return nil
		}
	}
	for _, line := range splitLines(content) {
		doc.Push(NewParagraph(line))
	}
	return nil
}

// renderJSON re-indents parseable JSON and renders it as code under a
// bold header. Content that does not parse as a single JSON value is
// rendered verbatim instead.
func (c *Converter) renderJSON(doc *Document, _, content string) error {
	pretty := prettyJSON(content)
	doc.Push(NewStyledParagraph("JSON Content:", Style{Bold: true}))
	doc.Push(Break{Height: headerBreakHeight})
	pushCodeLines(doc, pretty)
	return nil
}

// prettyJSON reformats a single JSON value with sorted object keys and
// two-space indentation. Numbers pass through verbatim. Anything that
// does not parse, or parses to null, comes back unchanged.
func prettyJSON(content string) string {
	decoder := json.NewDecoder(strings.NewReader(content))
	decoder.UseNumber()
	var v any
	if err := decoder.Decode(&v); err != nil || v == nil {
		return content
	}
	if _, err := decoder.Token(); err != io.EOF {
		return content
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return content
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// renderXML emits the raw content as code under a bold header. No
// reformatting or validation is attempted.
func (c *Converter) renderXML(doc *Document, _, content string) error {
	doc.Push(NewStyledParagraph("XML Content:", Style{Bold: true}))
	doc.Push(Break{Height: headerBreakHeight})
	pushCodeLines(doc, content)
	return nil
}

// renderYAML mirrors the JSON contract: parseable YAML is re-marshaled
// into canonical form, anything else is rendered verbatim.
func (c *Converter) renderYAML(doc *Document, _, content string) error {
	doc.Push(NewStyledParagraph("YAML Content:", Style{Bold: true}))
	doc.Push(Break{Height: headerBreakHeight})
	pushCodeLines(doc, prettyYAML(content))
	return nil
}

func prettyYAML(content string) string {
	var v any
	if err := yaml.Unmarshal([]byte(content), &v); err != nil || v == nil {
		return content
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return content
	}
	return strings.TrimSuffix(string(out), "\n")
}

// renderTOML mirrors the XML contract: raw content as code under a bold
// header. The content is still run through the TOML parser so suspicious
// files show up in the logs.
func (c *Converter) renderTOML(doc *Document, _, content string) error {
	doc.Push(NewStyledParagraph("TOML Content:", Style{Bold: true}))
	doc.Push(Break{Height: headerBreakHeight})
	var v any
	if err := toml.Unmarshal([]byte(content), &v); err != nil {
		slog.Warn("toml content does not parse cleanly", "error", err)
	}
	pushCodeLines(doc, content)
	return nil
}

// renderHTML converts the markup to plain text wrapped at a fixed column
// and renders it as body paragraphs under a bold header.
func (c *Converter) renderHTML(doc *Document, _, content string) error {
	doc.Push(NewStyledParagraph("HTML Content:", Style{Bold: true}))
	doc.Push(Break{Height: headerBreakHeight})

	text, err := html2text.FromString(content)
	if err != nil {
		slog.Warn("failed to parse html content")
		doc.Push(NewStyledParagraph("Failed to parse HTML", Style{Color: &Color{R: 255}}))
		return nil
	}
	return c.renderText(doc, "", wordwrap.WrapString(text, htmlWrapColumn))
}

// renderCSV streams records straight from the file: the header row is a
// bold paragraph, data rows are code-size paragraphs. Records that fail
// to parse are skipped; only opening the file can fail the conversion.
func (c *Converter) renderCSV(doc *Document, path, _ string) error {
	// #nosec G304 -- paths come from explicit user selection
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCsv, err)
	}
	defer f.Close()

	doc.Push(NewStyledParagraph("CSV Content:", Style{Bold: true}))
	doc.Push(Break{Height: headerBreakHeight})

	reader := csv.NewReader(f)
	if header, err := reader.Read(); err == nil {
		doc.Push(NewStyledParagraph(strings.Join(header, " | "), Style{Bold: true}))
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			break
		}
		doc.Push(NewStyledParagraph(strings.Join(record, " | "), Style{Size: codeFontSize}))
	}
	return nil
}

// renderXLSX walks every sheet of the workbook: a bold sheet-name header,
// then rows joined like CSV with the first row bold.
func (c *Converter) renderXLSX(doc *Document, path, _ string) error {
	workbook, err := xlsx.OpenFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrXlsx, err)
	}

	for _, sheet := range workbook.Sheets {
		doc.Push(NewStyledParagraph(sheet.Name, Style{Bold: true}))
		doc.Push(Break{Height: headerBreakHeight})

		headerRow := true
		err := sheet.ForEachRow(func(row *xlsx.Row) error {
			var fields []string
			cellErr := row.ForEachCell(func(cell *xlsx.Cell) error {
				fields = append(fields, cell.String())
				return nil
			})
			if cellErr != nil {
				return cellErr
			}
			line := strings.Join(fields, " | ")
			if headerRow {
				doc.Push(NewStyledParagraph(line, Style{Bold: true}))
				headerRow = false
			} else {
				doc.Push(NewStyledParagraph(line, Style{Size: codeFontSize}))
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrXlsx, err)
		}
	}
	return nil
}

// renderImagePath places the decoded raster as its own block. A file
// that cannot be opened or decoded degrades to an inline error paragraph
// instead of failing the conversion.
func (c *Converter) renderImagePath(doc *Document, path, _ string) error {
	img, err := loadImage(path)
	if err != nil {
		slog.Error("loading image failed", "path", path, "error", err)
		doc.Push(NewParagraph("Error loading image: " + err.Error()))
		return nil
	}
	doc.Push(img)
	return nil
}

// loadImage decodes a raster file and re-encodes it as PNG so the PDF
// writer only ever embeds one well-known format.
func loadImage(path string) (Image, error) {
	// #nosec G304 -- paths come from explicit user selection
	f, err := os.Open(path)
	if err != nil {
		return Image{}, err
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return Image{}, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, decoded); err != nil {
		return Image{}, err
	}
	bounds := decoded.Bounds()
	return Image{
		Name:   filepath.Base(path),
		Format: "png",
		Data:   buf.Bytes(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
