package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/trkbt10/pageflow/model"
)

// widthBufferRatio is the empirical width buffer applied to block bounds to
// absorb downstream font substitution. The letter-spacing-derived slack is
// used instead when larger.
const widthBufferRatio = 0.05

// nearZeroOverlapRatio: below this horizontal overlap two lines are treated
// as side by side rather than stacked.
const nearZeroOverlapRatio = 0.02

// Style-shift exception thresholds: a tight pair of body-like lines may
// merge across a style change when shaped like a continuing paragraph.
const (
	styleShiftMinWidthRatio   = 0.55
	styleShiftMinOverlapRatio = 0.18
	styleShiftMaxGapRatio     = 0.55
	bodyLikeWidthFontMultiple = 6.5
	bodyLikeMinCompactChars   = 10
	anchorToleranceFloor      = 0.8
	anchorToleranceFontRatio  = 0.85
	readingOrderRowTolerance  = 0.5
)

// Block is one or more paragraphs forming a single semantic unit.
type Block struct {
	// Bounds is the union of the paragraphs' run boxes with the width
	// buffer applied.
	Bounds model.Rect

	// Paragraphs in reading order
	Paragraphs []Paragraph

	// Inference carries the derived layout classification, when available
	Inference *LayoutInference
}

// NewBlock builds a block from paragraphs, computing buffered bounds.
func NewBlock(paragraphs []Paragraph) (Block, error) {
	if len(paragraphs) == 0 {
		return Block{}, ErrEmptyBlock
	}

	b := Block{Paragraphs: paragraphs}
	b.Bounds = bufferBounds(b.ContentBounds(), paragraphs)
	return b, nil
}

// ContentBounds returns the exact union of the paragraphs' run boxes,
// without the width buffer.
func (b Block) ContentBounds() model.Rect {
	bounds := b.Paragraphs[0].Bounds()
	for _, p := range b.Paragraphs[1:] {
		bounds = bounds.Union(p.Bounds())
	}
	return bounds
}

// Runs returns all runs of the block in reading order
func (b Block) Runs() []model.TextRun {
	var runs []model.TextRun
	for _, p := range b.Paragraphs {
		runs = append(runs, p.Runs...)
	}
	return runs
}

// Text returns the block text, paragraphs separated by newlines
func (b Block) Text() string {
	parts := make([]string, len(b.Paragraphs))
	for i, p := range b.Paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

// bufferBounds widens the bounds by the larger of the empirical ratio and
// the actual letter-spacing slack of the contained runs.
func bufferBounds(bounds model.Rect, paragraphs []Paragraph) model.Rect {
	slack := 0.0
	for _, p := range paragraphs {
		paragraphSlack := 0.0
		for _, r := range p.Runs {
			paragraphSlack += r.CharSpacing * r.ScalingFactor() * float64(r.CharCount())
		}
		if paragraphSlack > slack {
			slack = paragraphSlack
		}
	}

	buffer := math.Max(widthBufferRatio*bounds.Width, slack)
	bounds.Width += buffer
	return bounds
}

// canMergeLines decides whether the lower paragraph continues the block
// ending in the upper paragraph.
func canMergeLines(upper, lower Paragraph, cfg Config, zones []model.BlockingZone) bool {
	// Reading order only ever advances down the page.
	if lower.BaselineY >= upper.BaselineY {
		return false
	}

	upperBounds := upper.Bounds()
	lowerBounds := lower.Bounds()

	if zoneSeparatesVertically(zones, upperBounds, lowerBounds) {
		return false
	}

	gap := upperBounds.Bottom() - lowerBounds.Top()
	lineHeight := (upper.LineHeight() + lower.LineHeight()) / 2
	if gap > lineHeight*cfg.VerticalGapRatio {
		return false
	}

	overlapRatio := upperBounds.HorizontalOverlapRatio(lowerBounds)
	fontSize := math.Max(upper.MaxFontSize(), lower.MaxFontSize())
	anchored := sharedAnchor(upperBounds, lowerBounds, anchorTolerance(fontSize))

	// Side-by-side columns must never merge when column separation is on.
	if cfg.EnableColumnSeparation && overlapRatio < nearZeroOverlapRatio && !anchored {
		return false
	}

	if stylesMatch(paragraphStyle(upper), paragraphStyle(lower), cfg) {
		return true
	}

	return styleShiftException(upper, lower, overlapRatio, anchored, gap, lineHeight, fontSize)
}

// styleShiftException allows a merge across a style change when the pair is
// shaped like one paragraph: similar widths, aligned or overlapping, both
// body-like, and tightly spaced.
func styleShiftException(upper, lower Paragraph, overlapRatio float64, anchored bool, gap, lineHeight, fontSize float64) bool {
	upperWidth := upper.Bounds().Width
	lowerWidth := lower.Bounds().Width
	maxWidth := math.Max(upperWidth, lowerWidth)
	if maxWidth <= 0 {
		return false
	}
	if math.Min(upperWidth, lowerWidth)/maxWidth < styleShiftMinWidthRatio {
		return false
	}

	if overlapRatio < styleShiftMinOverlapRatio && !anchored {
		return false
	}

	if !bodyLike(upper) || !bodyLike(lower) {
		return false
	}

	return gap <= styleShiftMaxGapRatio*lineHeight
}

// bodyLike is a coarse proxy for "this looks like prose, not a label".
func bodyLike(p Paragraph) bool {
	if p.Bounds().Width >= bodyLikeWidthFontMultiple*p.MaxFontSize() {
		return true
	}
	return p.CompactCharCount() >= bodyLikeMinCompactChars
}

// anchorTolerance is the x-distance within which two line edges count as
// sharing an alignment anchor.
func anchorTolerance(fontSize float64) float64 {
	return math.Max(anchorToleranceFloor, anchorToleranceFontRatio*fontSize)
}

// sharedAnchor reports whether the two rectangles share a left, right, or
// center alignment anchor within tolerance.
func sharedAnchor(a, b model.Rect, tolerance float64) bool {
	return math.Abs(a.Left()-b.Left()) <= tolerance ||
		math.Abs(a.Right()-b.Right()) <= tolerance ||
		math.Abs(a.Center().X-b.Center().X) <= tolerance
}

// mergeParagraphsIntoBlocks folds ordered paragraphs into blocks. Each
// paragraph attaches to the most recently opened block whose last paragraph
// accepts it; otherwise it opens a new block. Scanning open blocks (rather
// than only the immediately preceding paragraph) lets a left-column line
// continue its own block across an interleaved right-column line.
func mergeParagraphsIntoBlocks(paragraphs []Paragraph, cfg Config, zones []model.BlockingZone) ([]Block, error) {
	if len(paragraphs) == 0 {
		return nil, nil
	}

	var groups [][]Paragraph
	for _, p := range paragraphs {
		attached := false
		for g := len(groups) - 1; g >= 0; g-- {
			last := groups[g][len(groups[g])-1]
			if canMergeLines(last, p, cfg, zones) {
				groups[g] = append(groups[g], p)
				attached = true
				break
			}
		}
		if !attached {
			groups = append(groups, []Paragraph{p})
		}
	}

	blocks := make([]Block, 0, len(groups))
	for _, group := range groups {
		block, err := NewBlock(group)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// sortBlocksInReadingOrder orders blocks top-to-bottom, then left-to-right,
// with positional tie-breaking. The result is a stable total order.
func sortBlocksInReadingOrder(blocks []Block) []Block {
	sort.SliceStable(blocks, func(i, j int) bool {
		topDiff := blocks[i].Bounds.Top() - blocks[j].Bounds.Top()
		if math.Abs(topDiff) > readingOrderRowTolerance {
			return topDiff > 0
		}
		if blocks[i].Bounds.Left() != blocks[j].Bounds.Left() {
			return blocks[i].Bounds.Left() < blocks[j].Bounds.Left()
		}
		return blocks[i].Bounds.Bottom() > blocks[j].Bounds.Bottom()
	})
	return blocks
}
