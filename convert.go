package topdf

import (
	"log/slog"
	"path/filepath"

	"github.com/yuin/goldmark"
)

// Converter turns one input file into a PDF. A single Converter is
// shared by every worker in a batch; its fields are read-only after
// construction so concurrent Convert calls are safe.
type Converter struct {
	font      *Font
	highlight bool
	markdown  goldmark.Markdown
}

// Option configures a Converter.
type Option func(*Converter)

// WithHighlighting turns on colored spans for source-code files and for
// fenced code blocks with a declared language. Off by default, and with
// it off the output is byte-for-byte the plain rendering.
func WithHighlighting() Option {
	return func(c *Converter) { c.highlight = true }
}

// NewConverter builds a Converter around the shared font.
func NewConverter(font *Font, opts ...Option) *Converter {
	if font == nil {
		panic("nil Font in NewConverter")
	}
	c := &Converter{
		font:     font,
		markdown: goldmark.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// renderFunc renders pre-extracted content, or reads straight from the
// input path for the kinds that manage their own input.
type renderFunc func(c *Converter, doc *Document, path, content string) error

// renderers dispatches by kind. CSV, XLSX and Image read from the path;
// the rest consume the extracted content.
var renderers = map[FileKind]renderFunc{
	KindMarkdown: (*Converter).renderMarkdown,
	KindJSON:     (*Converter).renderJSON,
	KindXML:      (*Converter).renderXML,
	KindText:     (*Converter).renderText,
	KindDOCX:     (*Converter).renderText,
	KindHTML:     (*Converter).renderHTML,
	KindCSV:      (*Converter).renderCSV,
	KindYAML:     (*Converter).renderYAML,
	KindTOML:     (*Converter).renderTOML,
	KindXLSX:     (*Converter).renderXLSX,
	KindImage:    (*Converter).renderImagePath,
}

// Convert runs the classify, extract, render, write pipeline for one
// input file and writes the PDF to outputPath.
func (c *Converter) Convert(inputPath, outputPath string) error {
	slog.Info("starting conversion", "input", inputPath)
	kind := DetectKind(inputPath)

	var content string
	switch kind {
	case KindImage, KindCSV, KindXLSX:
		// these renderers read from the path themselves
	case KindDOCX:
		extracted, err := extractDocx(inputPath)
		if err != nil {
			return err
		}
		content = extracted
	default:
		loaded, err := readTextFile(inputPath)
		if err != nil {
			return err
		}
		content = loaded
	}
	slog.Info("content loaded", "kind", kind, "input", inputPath)

	if kind == KindUnknown {
		slog.Error("unknown file type", "input", inputPath)
		return ErrUnknownType
	}

	slog.Debug("building document structure")
	doc := NewDocument(c.font)

	slog.Debug("rendering content to document")
	if err := renderers[kind](c, doc, inputPath, content); err != nil {
		return err
	}

	slog.Info("rendering pdf", "output", outputPath)
	if err := RenderFile(doc, outputPath); err != nil {
		return err
	}
	slog.Info("conversion complete", "input", inputPath)
	return nil
}

// OutputPath derives the PDF path for an input file: the input's stem
// with a .pdf extension, placed in outputDir when it is set and next to
// the input otherwise.
func OutputPath(inputPath, outputDir string) string {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, Stem(inputPath)+".pdf")
}
