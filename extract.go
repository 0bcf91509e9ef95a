package topdf

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// readTextFile loads the whole file and requires UTF-8 content, which is
// what every text-oriented renderer expects.
func readTextFile(path string) (string, error) {
	// #nosec G304 -- paths come from explicit user selection
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %v", ErrRead, ErrNotUTF8)
	}
	return string(data), nil
}

// extractDocx pulls paragraph text out of word/document.xml. Elements are
// matched by local name so the namespace prefix does not matter. Each
// paragraph contributes its text runs followed by a newline; empty
// paragraphs still contribute the newline.
func extractDocx(path string) (string, error) {
	slog.Debug("reading docx archive", "path", path)

	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocx, err)
	}
	defer archive.Close()

	document, err := archive.Open("word/document.xml")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocx, err)
	}
	defer document.Close()

	var text strings.Builder
	decoder := xml.NewDecoder(document)
	paragraphDepth := 0
	inRun := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrDocx, err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				paragraphDepth++
			case "t":
				inRun = paragraphDepth > 0
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if paragraphDepth > 0 {
					paragraphDepth--
					text.WriteByte('\n')
				}
			case "t":
				inRun = false
			}
		case xml.CharData:
			if inRun {
				text.Write(t)
			}
		}
	}
	return text.String(), nil
}
