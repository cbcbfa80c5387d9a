package text

import (
	"math"

	"github.com/trkbt10/pageflow/model"
)

// WritingMode represents the dominant writing mode of a page.
type WritingMode int

const (
	// Horizontal writing: lines run left-to-right or right-to-left,
	// stacked top to bottom.
	Horizontal WritingMode = iota
	// Vertical writing: columns run top-to-bottom, stacked right to left
	// (or left to right).
	Vertical
)

// String returns a string representation of the writing mode.
func (m WritingMode) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

const (
	// maxShapeSampleRuns bounds how many runs contribute glyph-box shape votes.
	maxShapeSampleRuns = 240

	// maxNeighborSampleRuns bounds how many runs contribute nearest-neighbor
	// flow votes.
	maxNeighborSampleRuns = 180

	// verticalLikeAspect: a glyph box at least this much taller than wide
	// votes vertical.
	verticalLikeAspect = 0.55

	// horizontalLikeAspect: a glyph box at least this wide relative to its
	// height votes horizontal.
	horizontalLikeAspect = 0.9
)

// ResolveWritingMode detects whether the page is dominantly horizontal or
// vertical writing, using glyph-box aspect ratios and the axis of each run's
// nearest neighbor. Pages whose text is dominantly a right-to-left script are
// always horizontal: RTL glyph boxes can be narrow and tall enough to look
// vertical geometrically, but those scripts are not vertically typeset here.
func ResolveWritingMode(runs []model.TextRun) WritingMode {
	if len(runs) == 0 {
		return Horizontal
	}

	verticalLike, horizontalLike := countShapeVotes(runs)
	verticalFlow, horizontalFlow, flowSamples := countNeighborFlow(runs)

	if ResolveInlineDirection(runs) == RTL {
		return Horizontal
	}

	verticalScore := 2*float64(verticalLike) + float64(verticalFlow)
	horizontalScore := 2*float64(horizontalLike) + float64(horizontalFlow)

	// Flow alone cannot outvote shape: a page of wide single-run lines has
	// every nearest neighbor stacked vertically, yet is plainly horizontal.
	overwhelmingFlow := flowSamples > 0 &&
		verticalLike >= horizontalLike &&
		float64(verticalFlow) >= 2.5*float64(horizontalFlow) &&
		float64(verticalFlow) >= 0.75*float64(flowSamples)

	if overwhelmingFlow {
		return Vertical
	}
	if verticalScore > 1.1*horizontalScore && verticalLike > 0 {
		return Vertical
	}
	return Horizontal
}

// countShapeVotes classifies up to maxShapeSampleRuns glyph boxes as
// vertical-like or horizontal-like by aspect ratio.
func countShapeVotes(runs []model.TextRun) (verticalLike, horizontalLike int) {
	limit := len(runs)
	if limit > maxShapeSampleRuns {
		limit = maxShapeSampleRuns
	}

	for _, run := range runs[:limit] {
		if run.Height <= 0 {
			continue
		}
		if run.Width <= run.Height*verticalLikeAspect {
			verticalLike++
		} else if run.Width >= run.Height*horizontalLikeAspect {
			horizontalLike++
		}
	}
	return verticalLike, horizontalLike
}

// countNeighborFlow finds, for up to maxNeighborSampleRuns runs, the single
// nearest neighbor by center-to-center distance and counts whether the offset
// to it is dominantly horizontal or vertical.
func countNeighborFlow(runs []model.TextRun) (verticalFlow, horizontalFlow, samples int) {
	limit := len(runs)
	if limit > maxNeighborSampleRuns {
		limit = maxNeighborSampleRuns
	}
	if limit < 2 {
		return 0, 0, 0
	}

	sample := runs[:limit]
	centers := make([]model.Point, limit)
	for i, run := range sample {
		centers[i] = model.Point{X: run.CenterX(), Y: run.CenterY()}
	}

	for i := range sample {
		nearest := -1
		nearestDist := math.MaxFloat64
		for j := range sample {
			if i == j {
				continue
			}
			d := centers[i].Distance(centers[j])
			if d < nearestDist {
				nearestDist = d
				nearest = j
			}
		}
		if nearest < 0 {
			continue
		}

		dx := math.Abs(centers[nearest].X - centers[i].X)
		dy := math.Abs(centers[nearest].Y - centers[i].Y)
		if dy > dx {
			verticalFlow++
		} else {
			horizontalFlow++
		}
		samples++
	}
	return verticalFlow, horizontalFlow, samples
}
