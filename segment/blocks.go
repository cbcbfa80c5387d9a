package segment

import (
	"strings"

	"github.com/trkbt10/pageflow/layout"
	"github.com/trkbt10/pageflow/model"
)

// BlockConfig is the configuration for block-aware contextual segmentation.
type BlockConfig struct {
	Config

	// MinXAxisOverlapRatio is the minimum horizontal overlap (intersection
	// over the narrower width) two blocks need before they may merge. It
	// keeps side-by-side columns with similar text from being coalesced
	// (default: 0.30)
	MinXAxisOverlapRatio float64

	// ContextParagraphEdgeCount is how many head and tail paragraphs of a
	// block contribute to its unit text (default: 2)
	ContextParagraphEdgeCount int
}

// DefaultBlockConfig returns the default block-aware configuration.
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		Config:                    DefaultConfig(),
		MinXAxisOverlapRatio:      0.30,
		ContextParagraphEdgeCount: 2,
	}
}

// SegmentGroupedText coalesces adjacent blocks that geometry split but
// content says are one logical unit, e.g. a paragraph continuing after a
// diagram. Each block's unit text is its head and tail paragraphs; a
// spatial guard vetoes merging blocks without meaningful horizontal
// overlap.
func SegmentGroupedText(blocks []layout.Block, cfg BlockConfig) (Result[layout.Block], error) {
	units := make([]Unit[layout.Block], len(blocks))
	for i, b := range blocks {
		units[i] = Unit[layout.Block]{
			Text:  blockContextText(b, cfg.ContextParagraphEdgeCount),
			Value: b,
		}
	}

	guard := func(left, right Unit[layout.Block]) bool {
		ratio := left.Value.Bounds.HorizontalOverlapRatio(right.Value.Bounds)
		return ratio >= cfg.MinXAxisOverlapRatio
	}

	return SegmentTextUnits(units, cfg.Config, guard)
}

// SegmentBounds returns the merged bounding box of a block segment.
func SegmentBounds(seg Segment[layout.Block]) model.Rect {
	if len(seg.Units) == 0 {
		return model.Rect{}
	}

	bounds := seg.Units[0].Value.Bounds
	for _, u := range seg.Units[1:] {
		bounds = bounds.Union(u.Value.Bounds)
	}
	return bounds
}

// blockContextText builds a block's segmentation text from its head and
// tail paragraphs, or the full text when the block is short.
func blockContextText(b layout.Block, edgeCount int) string {
	if edgeCount < 1 {
		edgeCount = 1
	}

	paragraphs := b.Paragraphs
	if len(paragraphs) <= 2*edgeCount {
		return b.Text()
	}

	parts := make([]string, 0, 2*edgeCount)
	for _, p := range paragraphs[:edgeCount] {
		parts = append(parts, p.Text())
	}
	for _, p := range paragraphs[len(paragraphs)-edgeCount:] {
		parts = append(parts, p.Text())
	}
	return strings.Join(parts, "\n")
}
