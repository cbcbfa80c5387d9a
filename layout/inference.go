package layout

import (
	"math"

	"github.com/trkbt10/pageflow/model"
	"github.com/trkbt10/pageflow/text"
)

// Alignment classifies the horizontal alignment of a block's paragraphs.
type Alignment int

const (
	// AlignmentUnknown means no alignment was clearly dominant
	AlignmentUnknown Alignment = iota
	// AlignmentLeft means paragraph left edges line up
	AlignmentLeft
	// AlignmentCenter means paragraph centers line up
	AlignmentCenter
	// AlignmentRight means paragraph right edges line up
	AlignmentRight
)

// String returns a string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignmentLeft:
		return "left"
	case AlignmentCenter:
		return "center"
	case AlignmentRight:
		return "right"
	default:
		return "unknown"
	}
}

// LayoutInference is the derived layout classification of a block: its
// inline direction, the dominant alignment with a confidence score, the
// estimated full bounding box, and semantic start/end padding.
type LayoutInference struct {
	Direction  text.Direction
	Alignment  Alignment
	Confidence float64

	// FullBounds is the estimated full box the block occupies, including
	// the substitution buffer.
	FullBounds model.Rect

	// PaddingStart and PaddingEnd are the median gaps between paragraph
	// edges and the box edges, expressed in reading order: for RTL blocks
	// start is the right edge.
	PaddingStart float64
	PaddingEnd   float64
}

// verticalInference is the fixed inference for vertical-mode blocks: top to
// bottom, no alignment classification, zero confidence.
func verticalInference() *LayoutInference {
	return &LayoutInference{
		Direction:  text.TTB,
		Alignment:  AlignmentUnknown,
		Confidence: 0,
	}
}

// inferLayout classifies the alignment of a horizontal block by comparing
// the spread (inter-quartile range) of the paragraphs' left edges, centers,
// and right edges: the tightest edge set wins. With three or more paragraphs
// and no clearly dominant edge set, the alignment is unknown.
func inferLayout(block Block, direction text.Direction) *LayoutInference {
	paragraphs := block.Paragraphs
	content := block.ContentBounds()

	lefts := make([]float64, len(paragraphs))
	centers := make([]float64, len(paragraphs))
	rights := make([]float64, len(paragraphs))
	fontSizes := make([]float64, len(paragraphs))
	for i, p := range paragraphs {
		b := p.Bounds()
		lefts[i] = b.Left()
		centers[i] = b.Center().X
		rights[i] = b.Right()
		fontSizes[i] = p.MaxFontSize()
	}

	spreads := []struct {
		alignment Alignment
		spread    float64
	}{
		{AlignmentLeft, model.IQR(lefts)},
		{AlignmentCenter, model.IQR(centers)},
		{AlignmentRight, model.IQR(rights)},
	}
	if direction == text.RTL {
		// Prefer the start edge on ties for RTL text
		spreads[0], spreads[2] = spreads[2], spreads[0]
	}

	best := spreads[0]
	second := math.MaxFloat64
	for _, s := range spreads[1:] {
		if s.spread < best.spread {
			second = best.spread
			best = s
		} else if s.spread < second {
			second = s.spread
		}
	}

	tolerance := anchorTolerance(model.Mean(fontSizes))
	dominant := best.spread <= tolerance || best.spread <= 0.5*second

	alignment := best.alignment
	if len(paragraphs) >= 3 && !dominant {
		alignment = AlignmentUnknown
	}

	confidence := 0.0
	if content.Width > 0 {
		confidence = model.Clamp(1-best.spread/content.Width, 0, 1)
	}
	if alignment == AlignmentUnknown {
		confidence = 0
	}

	leftPads := make([]float64, len(paragraphs))
	rightPads := make([]float64, len(paragraphs))
	for i, p := range paragraphs {
		b := p.Bounds()
		leftPads[i] = b.Left() - content.Left()
		rightPads[i] = content.Right() - b.Right()
	}

	paddingStart := model.Median(leftPads)
	paddingEnd := model.Median(rightPads)
	if direction == text.RTL {
		// Reading order starts at the right edge for RTL blocks
		paddingStart, paddingEnd = paddingEnd, paddingStart
	}

	return &LayoutInference{
		Direction:    direction,
		Alignment:    alignment,
		Confidence:   confidence,
		FullBounds:   block.Bounds,
		PaddingStart: paddingStart,
		PaddingEnd:   paddingEnd,
	}
}
