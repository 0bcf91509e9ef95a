// Package topdf converts heterogeneous documents to PDF.
//
// # Quick Start
//
// Create a converter with a font and convert one file:
//
//	conv := topdf.NewConverter(topdf.DefaultFont())
//
//	input := "notes/report.md"
//	if err := conv.Convert(input, topdf.OutputPath(input, "out")); err != nil {
//	    log.Fatal(err)
//	}
//
// The input's type is decided by its file extension alone. Markdown, HTML,
// JSON, XML, YAML, TOML, CSV, XLSX, DOCX, plain text, source code, and
// PNG/JPEG/BMP images are supported; anything else fails with
// ErrUnknownType.
//
// # Conversion Pipeline
//
// Each conversion runs the same four stages:
//
//  1. Classify the input by extension.
//  2. Load content: UTF-8 text for text-like kinds, the word XML for DOCX;
//     images, CSV and XLSX are opened by their renderers directly.
//  3. Render into a flat document model of styled paragraphs.
//  4. Write the PDF with a single embedded TrueType font.
//
// Structured inputs degrade instead of failing: malformed JSON, YAML or
// TOML is emitted as raw text, and an unreadable image becomes a plain
// error line in the PDF. Only unreadable inputs, broken DOCX/CSV/XLSX
// containers and PDF write failures fail the conversion.
//
// # Batch Conversion
//
// Orchestrator tracks a file list and converts every non-succeeded entry
// concurrently, one goroutine per file:
//
//	orc := topdf.NewOrchestrator(conv)
//	orc.Add("a.md", "b.csv")
//	orc.SetOutputDir("out")
//	if orc.ConvertAll() {
//	    orc.Run()
//	}
//
// Event loops that multiplex other sources can receive from Completions
// and feed each event to Apply instead of calling Run. Calling ConvertAll
// again retries only the failed entries.
//
// # Fonts
//
// All output uses one TrueType font. DefaultFont probes a list of common
// system paths and falls back to the embedded Go Regular face; NewFont and
// LoadFontFile accept custom faces. Every candidate is parse-validated, so
// a configured path never produces a broken PDF.
package topdf
