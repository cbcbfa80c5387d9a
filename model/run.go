package model

import (
	"strings"
	"unicode/utf8"
)

// DefaultDescender is the font descender in 1/1000 em units assumed when no
// font metrics are available. Matches the common -0.2 em descender ratio.
const DefaultDescender = -200.0

// TextRun is a single positioned, styled text fragment from the source page.
// X and Y locate the bottom-left corner of the glyph box; Height is the full
// glyph-box height. Runs are produced by the upstream document parser and are
// never mutated by the layout engine.
type TextRun struct {
	Text     string
	X, Y     float64
	Width    float64
	Height   float64
	FontName string
	FontSize float64

	// CharSpacing and WordSpacing are additional advances in text space
	// units, as set by the source document.
	CharSpacing float64
	WordSpacing float64

	// HorizontalScaling is the horizontal glyph scaling in percent
	// (100 = unscaled). Zero is treated as 100.
	HorizontalScaling float64

	// FillColor is the fill color as a hex string (e.g. "#1a1a1a").
	// Empty when the parser did not report a color.
	FillColor string
}

// Bounds returns the glyph box of the run
func (r TextRun) Bounds() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Baseline returns the Y coordinate of the run's text baseline, derived from
// the box bottom and the font descender. The baseline is more stable than the
// box bottom across mixed font sizes, which makes it the anchor for line
// clustering.
func (r TextRun) Baseline() float64 {
	return r.Y - DefaultDescender*r.FontSize/1000
}

// CenterX returns the horizontal center of the glyph box
func (r TextRun) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY returns the vertical center of the glyph box
func (r TextRun) CenterY() float64 {
	return r.Y + r.Height/2
}

// ScalingFactor returns the horizontal scaling as a factor (1.0 = unscaled)
func (r TextRun) ScalingFactor() float64 {
	if r.HorizontalScaling <= 0 {
		return 1.0
	}
	return r.HorizontalScaling / 100
}

// CharCount returns the number of code points in the run's text
func (r TextRun) CharCount() int {
	return utf8.RuneCountInString(r.Text)
}

// EstimatedCharWidth estimates the average advance of one character in the
// run. The estimate is clamped to at least 0.3 times the font size; when the
// run's width is unusable it falls back to half the font size.
func (r TextRun) EstimatedCharWidth() float64 {
	count := r.CharCount()
	if count == 0 || r.Width <= 0 {
		return 0.5 * r.FontSize
	}
	w := r.Width / float64(count)
	if minW := 0.3 * r.FontSize; w < minW {
		return minW
	}
	return w
}

// EndsWithSpace reports whether the run's text ends in a space character.
// Word spacing only contributes to the expected inter-run gap in that case.
func (r TextRun) EndsWithSpace() bool {
	return strings.HasSuffix(r.Text, " ")
}

// BlockingZone is an axis-aligned rectangle, typically derived from vector
// graphics shapes on the page, that may separate two runs or lines. A zone
// that fully contains both sides of a candidate merge is a container and
// never blocks.
type BlockingZone = Rect

// PageContext carries optional page-level information alongside the runs.
type PageContext struct {
	BlockingZones []BlockingZone
	PageWidth     float64
	PageHeight    float64
}

// RunsBounds returns the union of the glyph boxes of a set of runs.
// Returns the zero Rect for an empty slice.
func RunsBounds(runs []TextRun) Rect {
	if len(runs) == 0 {
		return Rect{}
	}

	bounds := runs[0].Bounds()
	for _, r := range runs[1:] {
		bounds = bounds.Union(r.Bounds())
	}
	return bounds
}
