package topdf

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// Font is an immutable handle to one parsed font face. It is created once at
// startup and shared by reference across all conversions; the PDF writer
// derives the whole font family from it (regular, bold, italic and
// bold-italic all point at the same face).
type Font struct {
	name string
	data []byte
}

// DefaultFontPaths is the ordered probe list for system fonts. The CJK faces
// come first so documents with Chinese text keep working out of the box; the
// DejaVu and Liberation entries cover stock Linux installs. Collection files
// (.ttc) fail to parse as a single face and are skipped by the probe.
var DefaultFontPaths = []string{
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\simhei.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

// NewFont parses and validates a single font face from raw TrueType or
// OpenType bytes. The bytes are copied, so the caller may reuse the slice.
func NewFont(data []byte) (*Font, error) {
	face, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontParse, err)
	}

	name, err := face.Name(nil, sfnt.NameIDFamily)
	if err != nil || name == "" {
		name = "Custom"
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	return &Font{name: name, data: buf}, nil
}

// LoadFontFile reads and parses a font face from disk.
func LoadFontFile(path string) (*Font, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the probe list or user config
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return NewFont(data)
}

// ProbeFonts tries each path in order and returns the first face that reads
// and parses. Returns ErrNoFont when none is usable.
func ProbeFonts(paths []string) (*Font, error) {
	for _, path := range paths {
		font, err := LoadFontFile(path)
		if err != nil {
			continue
		}
		slog.Info("loaded system font", "path", path, "family", font.Name())
		return font, nil
	}
	return nil, ErrNoFont
}

// EmbeddedFont returns the bundled fallback face (Go Regular). It panics if
// the embedded bytes fail to parse, which would mean a broken build.
func EmbeddedFont() *Font {
	font, err := NewFont(goregular.TTF)
	if err != nil {
		panic("topdf: failed to load embedded font: " + err.Error())
	}
	return font
}

// DefaultFont probes the default path list and falls back to the embedded
// face when no system font is usable.
func DefaultFont() *Font {
	if font, err := ProbeFonts(DefaultFontPaths); err == nil {
		return font
	}
	slog.Warn("loading embedded fallback font", "family", "Go Regular")
	return EmbeddedFont()
}

// Name returns the family name recorded in the face.
func (f *Font) Name() string { return f.name }

// Data returns the raw TTF bytes backing the face.
func (f *Font) Data() []byte { return f.data }
