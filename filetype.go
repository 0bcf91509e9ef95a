package topdf

import (
	"path/filepath"
	"strings"
)

// FileKind identifies the content category of an input file. The set is
// closed: extraction and rendering dispatch over it through fixed tables.
type FileKind int

const (
	KindUnknown FileKind = iota
	KindMarkdown
	KindJSON
	KindXML
	KindText
	KindDOCX
	KindHTML
	KindCSV
	KindYAML
	KindTOML
	KindXLSX
	KindImage
)

// kindNames maps kinds to display names.
var kindNames = map[FileKind]string{
	KindUnknown:  "unknown",
	KindMarkdown: "markdown",
	KindJSON:     "json",
	KindXML:      "xml",
	KindText:     "text",
	KindDOCX:     "docx",
	KindHTML:     "html",
	KindCSV:      "csv",
	KindYAML:     "yaml",
	KindTOML:     "toml",
	KindXLSX:     "xlsx",
	KindImage:    "image",
}

// String returns the lowercase display name of the kind.
func (k FileKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// kindByExtension maps lowercased extensions (without the dot) to kinds.
// Source-code extensions fall under KindText: their content is rendered the
// same way as plain text.
var kindByExtension = map[string]FileKind{
	"md":       KindMarkdown,
	"markdown": KindMarkdown,
	"json":     KindJSON,
	"xml":      KindXML,
	"txt":      KindText,
	"rs":       KindText,
	"py":       KindText,
	"js":       KindText,
	"c":        KindText,
	"cpp":      KindText,
	"docx":     KindDOCX,
	"html":     KindHTML,
	"htm":      KindHTML,
	"csv":      KindCSV,
	"yaml":     KindYAML,
	"yml":      KindYAML,
	"toml":     KindTOML,
	"xlsx":     KindXLSX,
	"xls":      KindXLSX,
	"png":      KindImage,
	"jpg":      KindImage,
	"jpeg":     KindImage,
	"bmp":      KindImage,
}

// DetectKind classifies a path by its extension, case-insensitively.
// Paths without an extension map to KindUnknown. A leading dot alone does
// not start an extension: ".json" is a hidden file with no extension, not
// a JSON file.
func DetectKind(path string) FileKind {
	ext := extension(path)
	if ext == "" {
		return KindUnknown
	}
	if kind, ok := kindByExtension[strings.ToLower(ext)]; ok {
		return kind
	}
	return KindUnknown
}

// extension returns the extension of path's final element without the dot,
// or "" when there is none. A dot at position zero starts a hidden file
// name, not an extension.
func extension(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

// Stem returns the final path element with its extension removed. It is the
// base name the output PDF inherits.
func Stem(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name
	}
	return name[:i]
}
