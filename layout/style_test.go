package layout

import "testing"

func TestNormalizeFontName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"subset prefix stripped", "ABCDEF+Helvetica", "Helvetica"},
		{"lowercase prefix kept", "abcdef+Helvetica", "abcdef+Helvetica"},
		{"short prefix kept", "AB+Font", "AB+Font"},
		{"plain name kept", "Times-Roman", "Times-Roman"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeFontName(tt.in); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStylesMatch(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		a, b runStyle
		want bool
	}{
		{
			"identical",
			runStyle{fontName: "Helvetica", fontSize: 10},
			runStyle{fontName: "Helvetica", fontSize: 10},
			true,
		},
		{
			"different face",
			runStyle{fontName: "Helvetica", fontSize: 10},
			runStyle{fontName: "Times-Roman", fontSize: 10},
			false,
		},
		{
			"size within tolerance",
			runStyle{fontName: "Helvetica", fontSize: 10},
			runStyle{fontName: "Helvetica", fontSize: 10.9},
			true,
		},
		{
			"size beyond tolerance",
			runStyle{fontName: "Helvetica", fontSize: 10},
			runStyle{fontName: "Helvetica", fontSize: 14},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stylesMatch(tt.a, tt.b, cfg); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestColorsMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		mode ColorMatching
		want bool
	}{
		{"none ignores colors", "#000", "#fff", ColorMatchingNone, true},
		{"strict equal", "#102030", "#102030", ColorMatchingStrict, true},
		{"strict case-insensitive", "#AABBCC", "#aabbcc", ColorMatchingStrict, true},
		{"strict different", "#000", "#001", ColorMatchingStrict, false},
		{"loose near", "#000000", "#0a0a0a", ColorMatchingLoose, true},
		{"loose far", "#000000", "#ffffff", ColorMatchingLoose, false},
		{"loose short and long form", "#fff", "#ffffff", ColorMatchingLoose, true},
		{"loose unparseable", "black", "#000", ColorMatchingLoose, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorsMatch(tt.a, tt.b, tt.mode); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParagraphStyle_LongestRunWins(t *testing.T) {
	short := makeRun("x", 0, 100, 8, 18)
	long := makeRun("the body of the line", 10, 100, 140, 10)

	p := makeParagraph(t, short, long)
	if got := paragraphStyle(p); got.fontSize != 10 {
		t.Errorf("Expected the longest run's style, got font size %v", got.fontSize)
	}
}
