package language

import "testing"

func TestDetectByFilename(t *testing.T) {
	detector := NewChromaDetector()

	detectedLanguage := detector.Detect("/project/main.go", nil, 0)
	if detectedLanguage == nil {
		t.Fatal("main.go should detect a language")
	}
	if detectedLanguage.Name != "Go" {
		t.Fatalf("Name = %q, want Go", detectedLanguage.Name)
	}
	if glyph, hasGlyph := detectedLanguage.NerdFontGlyph(); !hasGlyph || glyph == "" {
		t.Fatal("Go should carry a glyph")
	}
	red, green, blue, hasColor := detectedLanguage.RGB()
	if !hasColor {
		t.Fatal("Go should carry a color")
	}
	if red != 0x00 || green != 0xad || blue != 0xd8 {
		t.Fatalf("Go color = %02x%02x%02x", red, green, blue)
	}
}

func TestDetectByContent(t *testing.T) {
	detector := NewChromaDetector()

	detectedLanguage := detector.Detect("/project/script", []byte("#!/bin/bash\necho hello\n"), 1024)
	if detectedLanguage == nil {
		t.Fatal("a shebang script should detect a language")
	}
	if detectedLanguage.Name == "" {
		t.Fatal("detected language must carry a name")
	}
}

func TestDetectUnknown(t *testing.T) {
	detector := NewChromaDetector()
	if detectedLanguage := detector.Detect("/project/data.xyzunknown", nil, 0); detectedLanguage != nil {
		t.Fatalf("unknown file detected as %q", detectedLanguage.Name)
	}
}

func TestDetectRespectsReadLimit(t *testing.T) {
	detector := NewChromaDetector()
	oversized := make([]byte, 64*1024)
	// Must not panic; the prefix is clamped to the limit before analysis.
	detector.Detect("/project/blob", oversized, 16*1024)
}

func TestUnknownLexerHasNoMetadata(t *testing.T) {
	detectedLanguage := Language{Name: "Obscure"}
	if _, hasGlyph := detectedLanguage.NerdFontGlyph(); hasGlyph {
		t.Fatal("language without metadata should have no glyph")
	}
	if _, _, _, hasColor := detectedLanguage.RGB(); hasColor {
		t.Fatal("language without metadata should have no color")
	}
}
