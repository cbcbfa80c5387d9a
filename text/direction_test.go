package text

import (
	"testing"

	"github.com/trkbt10/pageflow/model"
)

func makeRun(txt string, x, y, width, height float64) model.TextRun {
	return model.TextRun{
		Text:     txt,
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		FontSize: height,
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{LTR, "ltr"},
		{RTL, "rtl"},
		{TTB, "ttb"},
		{Direction(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestIsRTLRune(t *testing.T) {
	tests := []struct {
		name     string
		r        rune
		expected bool
	}{
		{"hebrew aleph", 'א', true},
		{"arabic alef", 'ا', true},
		{"hebrew presentation form", 'בּ', true},
		{"arabic presentation form", 'ﺍ', true},
		{"latin letter", 'a', false},
		{"digit", '7', false},
		{"cjk ideograph", '漢', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRTLRune(tt.r); got != tt.expected {
				t.Errorf("IsRTLRune(%q): expected %v, got %v", tt.r, tt.expected, got)
			}
		})
	}
}

func TestResolveInlineDirection_Latin(t *testing.T) {
	runs := []model.TextRun{
		makeRun("Hello world", 0, 100, 60, 12),
		makeRun("more latin text", 0, 80, 80, 12),
	}

	if got := ResolveInlineDirection(runs); got != LTR {
		t.Errorf("Expected ltr, got %s", got)
	}
}

func TestResolveInlineDirection_Hebrew(t *testing.T) {
	runs := []model.TextRun{
		makeRun("שלום עולם", 0, 100, 60, 12),
	}

	if got := ResolveInlineDirection(runs); got != RTL {
		t.Errorf("Expected rtl, got %s", got)
	}
}

func TestResolveInlineDirection_Arabic(t *testing.T) {
	runs := []model.TextRun{
		makeRun("مرحبا بالعالم", 0, 100, 70, 12),
	}

	if got := ResolveInlineDirection(runs); got != RTL {
		t.Errorf("Expected rtl, got %s", got)
	}
}

func TestResolveInlineDirection_MixedMostlyLatin(t *testing.T) {
	// A couple of RTL characters inside dominantly Latin text stay below
	// the 25% ratio and must not flip the page direction.
	runs := []model.TextRun{
		makeRun("The word אב appears in this otherwise English sentence", 0, 100, 300, 12),
	}

	if got := ResolveInlineDirection(runs); got != LTR {
		t.Errorf("Expected ltr, got %s", got)
	}
}

func TestResolveInlineDirection_DigitsAndSpacesIgnored(t *testing.T) {
	// Digits are not strong characters; two Hebrew letters against digits
	// only must detect as RTL.
	runs := []model.TextRun{
		makeRun("12345 678 אב 90", 0, 100, 80, 12),
	}

	if got := ResolveInlineDirection(runs); got != RTL {
		t.Errorf("Expected rtl, got %s", got)
	}
}

func TestResolveInlineDirection_Empty(t *testing.T) {
	if got := ResolveInlineDirection(nil); got != LTR {
		t.Errorf("Expected ltr fallback, got %s", got)
	}
}
