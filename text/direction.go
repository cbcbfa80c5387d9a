package text

import (
	"unicode"

	"golang.org/x/text/unicode/bidi"

	"github.com/trkbt10/pageflow/model"
)

// Direction represents the inline writing direction of a paragraph.
// It is a closed set consumed by run ordering and padding-mapping logic.
type Direction int

const (
	// LTR (left-to-right) for Latin, Cyrillic, CJK in horizontal mode, etc.
	LTR Direction = iota
	// RTL (right-to-left) for Arabic, Hebrew, etc.
	RTL
	// TTB (top-to-bottom) for vertical writing mode
	TTB
)

// String returns a string representation of the direction ("ltr", "rtl", or "ttb").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case TTB:
		return "ttb"
	default:
		return "unknown"
	}
}

const (
	// maxDirectionSampleRuns bounds how many runs are inspected when
	// detecting the dominant inline direction.
	maxDirectionSampleRuns = 180

	// rtlRatioThreshold is the minimum fraction of strong code points that
	// must be right-to-left for the page to be treated as RTL.
	rtlRatioThreshold = 0.25

	// rtlMinCount is the minimum absolute number of RTL code points required.
	rtlMinCount = 2
)

// IsRTLRune reports whether r is a strong right-to-left code point.
// Classification uses the Unicode bidirectional classes R and AL, which
// cover the Hebrew and Arabic blocks including their presentation forms
// and historic ranges.
func IsRTLRune(r rune) bool {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.R, bidi.AL:
		return true
	}
	return false
}

// ResolveInlineDirection detects the dominant inline direction of the given
// runs for horizontal writing. It counts strong code points (whitespace and
// digits excluded) in up to 180 runs and returns RTL when at least 25% of
// them, and no fewer than two, are right-to-left. Ambiguous input defaults
// to LTR.
func ResolveInlineDirection(runs []model.TextRun) Direction {
	strong := 0
	rtl := 0

	sampled := 0
	for _, run := range runs {
		if sampled >= maxDirectionSampleRuns {
			break
		}
		sampled++

		for _, r := range run.Text {
			if unicode.IsSpace(r) || unicode.IsDigit(r) {
				continue
			}
			strong++
			if IsRTLRune(r) {
				rtl++
			}
		}
	}

	if strong == 0 {
		return LTR
	}
	if rtl >= rtlMinCount && float64(rtl) >= rtlRatioThreshold*float64(strong) {
		return RTL
	}
	return LTR
}
