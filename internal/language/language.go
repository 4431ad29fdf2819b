// Package language detects the content language of files and exposes
// per-language display metadata.
package language

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Language identifies a detected content language. Glyph and color metadata
// are optional; unknown languages carry a name only.
type Language struct {
	// Name is the display name reported by the lexer registry.
	Name string

	glyph    string
	red      uint8
	green    uint8
	blue     uint8
	hasColor bool
}

// NerdFontGlyph returns the Nerd Font glyph associated with the language.
func (detectedLanguage Language) NerdFontGlyph() (string, bool) {
	return detectedLanguage.glyph, detectedLanguage.glyph != ""
}

// RGB returns the red, green, and blue components of the language's color.
func (detectedLanguage Language) RGB() (uint8, uint8, uint8, bool) {
	return detectedLanguage.red, detectedLanguage.green, detectedLanguage.blue, detectedLanguage.hasColor
}

// Detector picks a language for a path given a bounded prefix of its content.
type Detector interface {
	Detect(path string, contentPrefix []byte, readLimit int) *Language
}

// ChromaDetector implements Detector using the chroma lexer registry:
// filename match first, content analysis second.
type ChromaDetector struct{}

// NewChromaDetector constructs the chroma-backed detector.
func NewChromaDetector() *ChromaDetector {
	return &ChromaDetector{}
}

// Detect returns the language for the path, or nil when no lexer matches.
func (detector *ChromaDetector) Detect(path string, contentPrefix []byte, readLimit int) *Language {
	if readLimit > 0 && len(contentPrefix) > readLimit {
		contentPrefix = contentPrefix[:readLimit]
	}

	matchedLexer := lexers.Match(filepath.Base(path))
	if matchedLexer == nil && len(contentPrefix) > 0 {
		matchedLexer = lexers.Analyse(string(contentPrefix))
	}
	if matchedLexer == nil {
		return nil
	}

	return languageForLexer(matchedLexer)
}

var _ Detector = (*ChromaDetector)(nil)

// languageForLexer converts a lexer into a Language, attaching glyph and
// color metadata when the language is in the metadata table.
func languageForLexer(matchedLexer chroma.Lexer) *Language {
	lexerName := matchedLexer.Config().Name
	detectedLanguage := Language{Name: lexerName}
	if metadata, known := languageMetadata[strings.ToLower(lexerName)]; known {
		detectedLanguage.glyph = metadata.glyph
		detectedLanguage.red = metadata.red
		detectedLanguage.green = metadata.green
		detectedLanguage.blue = metadata.blue
		detectedLanguage.hasColor = metadata.hasColor
	}
	return &detectedLanguage
}

// displayMetadata holds the optional glyph and color for a language.
type displayMetadata struct {
	glyph    string
	red      uint8
	green    uint8
	blue     uint8
	hasColor bool
}

// rgbMetadata builds displayMetadata with a color.
func rgbMetadata(glyph string, red uint8, green uint8, blue uint8) displayMetadata {
	return displayMetadata{glyph: glyph, red: red, green: green, blue: blue, hasColor: true}
}

// languageMetadata maps lowercased lexer names to display metadata. Colors
// follow the conventional per-language palette.
var languageMetadata = map[string]displayMetadata{
	"bash":       rgbMetadata("", 0x89, 0xe0, 0x51),
	"c":          rgbMetadata("", 0x55, 0x55, 0x55),
	"c++":        rgbMetadata("", 0xf3, 0x4b, 0x7d),
	"css":        rgbMetadata("", 0x66, 0x33, 0x99),
	"go":         rgbMetadata("", 0x00, 0xad, 0xd8),
	"html":       rgbMetadata("", 0xe3, 0x4c, 0x26),
	"java":       rgbMetadata("", 0xb0, 0x72, 0x19),
	"javascript": rgbMetadata("", 0xf1, 0xe0, 0x5a),
	"json":       rgbMetadata("", 0x29, 0x29, 0x29),
	"lua":        rgbMetadata("", 0x00, 0x00, 0x80),
	"markdown":   rgbMetadata("", 0x08, 0x3f, 0xa1),
	"python":     rgbMetadata("", 0x35, 0x72, 0xa5),
	"ruby":       rgbMetadata("", 0x70, 0x15, 0x16),
	"rust":       rgbMetadata("", 0xde, 0xa5, 0x84),
	"toml":       rgbMetadata("", 0x9c, 0x42, 0x21),
	"typescript": rgbMetadata("", 0x31, 0x78, 0xc6),
	"yaml":       rgbMetadata("", 0xcb, 0x17, 0x1e),
}
