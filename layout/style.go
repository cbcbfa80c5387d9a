package layout

import (
	"math"
	"strconv"
	"strings"

	"github.com/trkbt10/pageflow/model"
)

// runStyle is the style fingerprint used for continuity checks.
type runStyle struct {
	fontName string
	fontSize float64
	color    string
}

// normalizeFontName strips the 6-letter subset prefix ("ABCDEF+Helvetica")
// that document generators attach to embedded font subsets, so two subsets
// of the same face compare equal.
func normalizeFontName(name string) string {
	if len(name) > 7 && name[6] == '+' {
		prefix := name[:6]
		allUpper := true
		for _, r := range prefix {
			if r < 'A' || r > 'Z' {
				allUpper = false
				break
			}
		}
		if allUpper {
			return name[7:]
		}
	}
	return name
}

// styleOf returns the representative style of a run.
func styleOf(run model.TextRun) runStyle {
	return runStyle{
		fontName: normalizeFontName(run.FontName),
		fontSize: run.FontSize,
		color:    run.FillColor,
	}
}

// paragraphStyle returns the style of a paragraph's longest run, which is
// the most representative of the paragraph's body text.
func paragraphStyle(p Paragraph) runStyle {
	best := p.Runs[0]
	bestLen := best.CharCount()
	for _, r := range p.Runs[1:] {
		if n := r.CharCount(); n > bestLen {
			best = r
			bestLen = n
		}
	}
	return styleOf(best)
}

// stylesMatch reports whether two styles are continuous: same normalized
// font name, font sizes within tolerance of the larger size, and matching
// colors per the configured mode.
func stylesMatch(a, b runStyle, cfg Config) bool {
	if a.fontName != b.fontName {
		return false
	}

	reference := math.Max(a.fontSize, b.fontSize)
	if math.Abs(a.fontSize-b.fontSize) > cfg.FontSizeToleranceRatio*reference {
		return false
	}

	return colorsMatch(a.color, b.color, cfg.ColorMatching)
}

// colorsMatch compares two fill colors under the given matching mode.
func colorsMatch(a, b string, mode ColorMatching) bool {
	switch mode {
	case ColorMatchingStrict:
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	case ColorMatchingLoose:
		ar, ag, ab, aok := parseHexColor(a)
		br, bg, bb, bok := parseHexColor(b)
		if !aok || !bok {
			// Unparseable colors do not veto a merge in loose mode
			return true
		}
		const channelTolerance = 0.1
		return math.Abs(ar-br) <= channelTolerance &&
			math.Abs(ag-bg) <= channelTolerance &&
			math.Abs(ab-bb) <= channelTolerance
	default:
		return true
	}
}

// parseHexColor parses "#rgb" or "#rrggbb" into channels in [0, 1].
func parseHexColor(s string) (r, g, b float64, ok bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	switch len(s) {
	case 3:
		vals := make([]float64, 3)
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(s[i:i+1], 16, 8)
			if err != nil {
				return 0, 0, 0, false
			}
			vals[i] = float64(v) / 15
		}
		return vals[0], vals[1], vals[2], true
	case 6:
		vals := make([]float64, 3)
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
			if err != nil {
				return 0, 0, 0, false
			}
			vals[i] = float64(v) / 255
		}
		return vals[0], vals[1], vals[2], true
	default:
		return 0, 0, 0, false
	}
}
