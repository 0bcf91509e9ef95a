package topdf

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle names the chroma palette used for colored spans.
const highlightStyle = "github"

// sourceExtensions lists the code extensions eligible for whole-file
// highlighting. Plain txt stays uncolored.
var sourceExtensions = map[string]bool{
	"rs":  true,
	"py":  true,
	"js":  true,
	"c":   true,
	"cpp": true,
}

// highlightFile colors a whole source file by matching its name to a
// lexer. ok is false when the file is not an eligible source kind, in
// which case the caller renders it plain.
func highlightFile(path, content string) ([]Paragraph, bool) {
	if !sourceExtensions[strings.ToLower(extension(path))] {
		return nil, false
	}
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	paragraphs, err := highlightTokens(content, lexer, 0)
	if err != nil {
		return nil, false
	}
	return paragraphs, true
}

// highlightCode colors a fenced code block with a declared language.
// Unknown languages report ok false so the block stays plain.
func highlightCode(code, language string) ([]Paragraph, bool) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, false
	}
	paragraphs, err := highlightTokens(code, lexer, codeFontSize)
	if err != nil {
		return nil, false
	}
	return paragraphs, true
}

// highlightTokens tokenizes code and folds the token stream into one
// paragraph per source line. size is the span point size; zero keeps the
// document default, matching the plain rendering of the same content.
func highlightTokens(code string, lexer chroma.Lexer, size float64) ([]Paragraph, error) {
	lexer = chroma.Coalesce(lexer)
	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, strings.ReplaceAll(code, "\r\n", "\n"))
	if err != nil {
		return nil, err
	}

	var paragraphs []Paragraph
	var current Paragraph
	flush := func() {
		if len(current.Spans) == 0 {
			current.Spans = []Span{{Style: Style{Size: size}}}
		}
		paragraphs = append(paragraphs, current)
		current = Paragraph{}
	}

	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		tokenStyle := Style{Size: size, Bold: entry.Bold == chroma.Yes}
		if entry.Colour.IsSet() {
			tokenStyle.Color = &Color{
				R: entry.Colour.Red(),
				G: entry.Colour.Green(),
				B: entry.Colour.Blue(),
			}
		}

		value := token.Value
		for {
			idx := strings.IndexByte(value, '\n')
			if idx < 0 {
				break
			}
			if part := value[:idx]; part != "" {
				current.Spans = append(current.Spans, Span{Text: part, Style: tokenStyle})
			}
			flush()
			value = value[idx+1:]
		}
		if value != "" {
			current.Spans = append(current.Spans, Span{Text: value, Style: tokenStyle})
		}
	}
	if len(current.Spans) > 0 {
		flush()
	}
	return paragraphs, nil
}
