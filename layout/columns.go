package layout

import (
	"math"
	"sort"

	"github.com/trkbt10/pageflow/model"
)

const (
	// Gutter detection histogram sizing
	minGutterBins = 200
	maxGutterBins = 600

	// gutterOccupancyRatio: bins at or below this fraction of the page's
	// peak occupancy count as empty.
	gutterOccupancyRatio = 0.08

	// minGutterWidthRatio: a candidate gutter must span at least this
	// fraction of the page width.
	minGutterWidthRatio = 0.018

	// maxStraddleRatio: candidates crossed by more than this fraction of
	// the runs' x-ranges are rejected.
	maxStraddleRatio = 0.18

	// rangeWidthCapMultiplier caps each x-range's histogram contribution at
	// this multiple of the 90th-percentile range width, tolerating a few
	// runs with spuriously wide boxes.
	rangeWidthCapMultiplier = 1.15

	// minColumnIntervalRatio: derived column intervals narrower than this
	// fraction of the page width are discarded.
	minColumnIntervalRatio = 0.08

	// minLineSpanRatio: page columns only apply to lines spanning at least
	// this fraction of the page width. Narrow lines and labels straddling
	// a gutter are left intact.
	minLineSpanRatio = 0.25
)

// xInterval is a horizontal interval on the page.
type xInterval struct {
	left, right float64
}

func (iv xInterval) width() float64 {
	return iv.right - iv.left
}

func (iv xInterval) contains(x float64) bool {
	return x >= iv.left && x < iv.right
}

// pageColumns holds the derived page-level column intervals, left to right.
type pageColumns struct {
	intervals []xInterval
	pageWidth float64
}

// columnIndexFor returns the index of the interval containing x, or the
// nearest interval when x falls inside a gutter band.
func (pc *pageColumns) columnIndexFor(x float64) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, iv := range pc.intervals {
		if iv.contains(x) {
			return i
		}
		d := math.Min(math.Abs(x-iv.left), math.Abs(x-iv.right))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// appliesTo reports whether page columns should split the given line: only
// lines spanning a meaningful share of the page participate.
func (pc *pageColumns) appliesTo(lineBounds model.Rect) bool {
	return lineBounds.Width >= minLineSpanRatio*pc.pageWidth
}

// gutterCandidate is a low-occupancy vertical band.
type gutterCandidate struct {
	left, right   float64
	meanOccupancy float64 // normalized to the page's peak occupancy
}

func (g gutterCandidate) width() float64 {
	return g.right - g.left
}

func (g gutterCandidate) midpoint() float64 {
	return (g.left + g.right) / 2
}

// detectPageColumns builds an occupancy histogram of run x-ranges and looks
// for persistent low-occupancy bands (gutters) between page columns.
// Returns nil when the page does not present a multi-column structure.
func detectPageColumns(runs []model.TextRun, pageWidth float64, cfg Config) *pageColumns {
	if len(runs) == 0 || cfg.MaxPageColumns < 2 {
		return nil
	}

	if pageWidth <= 0 {
		for _, r := range runs {
			if right := r.Bounds().Right(); right > pageWidth {
				pageWidth = right
			}
		}
	}
	if pageWidth <= 0 {
		return nil
	}

	// Collect x-ranges, excluding full-width runs (titles, headers) that
	// would mask every gutter they cross.
	type xRange struct{ left, width float64 }
	var ranges []xRange
	var widths []float64
	for _, r := range runs {
		if r.Width <= 0 {
			continue
		}
		if r.Width >= cfg.FullWidthRatio*pageWidth {
			continue
		}
		ranges = append(ranges, xRange{left: r.X, width: r.Width})
		widths = append(widths, r.Width)
	}
	if len(ranges) == 0 {
		return nil
	}

	widthCap := rangeWidthCapMultiplier * model.Quantile(widths, 0.9)

	binCount := int(model.Clamp(math.Round(pageWidth/2), minGutterBins, maxGutterBins))
	binWidth := pageWidth / float64(binCount)
	occupancy := make([]float64, binCount)

	for _, rng := range ranges {
		span := math.Min(rng.width, widthCap)
		lo := int(rng.left / binWidth)
		hi := int((rng.left + span) / binWidth)
		lo = int(model.Clamp(float64(lo), 0, float64(binCount-1)))
		hi = int(model.Clamp(float64(hi), 0, float64(binCount-1)))
		for b := lo; b <= hi; b++ {
			occupancy[b]++
		}
	}

	maxOccupancy := 0.0
	for _, o := range occupancy {
		if o > maxOccupancy {
			maxOccupancy = o
		}
	}
	if maxOccupancy == 0 {
		return nil
	}

	candidates := collectGutterCandidates(occupancy, binWidth, maxOccupancy, pageWidth)

	// Reject candidates that too many ranges straddle: a band crossed by
	// text is an illusion of the histogram, not a gutter.
	var gutters []gutterCandidate
	for _, g := range candidates {
		straddles := 0
		for _, rng := range ranges {
			if rng.left < g.midpoint() && rng.left+rng.width > g.midpoint() {
				straddles++
			}
		}
		if float64(straddles) > maxStraddleRatio*float64(len(ranges)) {
			continue
		}
		gutters = append(gutters, g)
	}
	if len(gutters) == 0 {
		return nil
	}

	// Rank by width weighted by emptiness, keep the best, restore
	// left-to-right order.
	sort.SliceStable(gutters, func(i, j int) bool {
		scoreI := gutters[i].width() * (1 - gutters[i].meanOccupancy)
		scoreJ := gutters[j].width() * (1 - gutters[j].meanOccupancy)
		return scoreI > scoreJ
	})
	if len(gutters) > cfg.MaxPageColumns-1 {
		gutters = gutters[:cfg.MaxPageColumns-1]
	}
	sort.SliceStable(gutters, func(i, j int) bool {
		return gutters[i].left < gutters[j].left
	})

	// Derive column intervals from the bands between gutters.
	var intervals []xInterval
	cursor := 0.0
	for _, g := range gutters {
		intervals = append(intervals, xInterval{left: cursor, right: g.left})
		cursor = g.right
	}
	intervals = append(intervals, xInterval{left: cursor, right: pageWidth})

	var kept []xInterval
	for _, iv := range intervals {
		if iv.width() >= minColumnIntervalRatio*pageWidth {
			kept = append(kept, iv)
		}
	}
	if len(kept) < 2 {
		return nil
	}

	return &pageColumns{intervals: kept, pageWidth: pageWidth}
}

// collectGutterCandidates scans the occupancy histogram for maximal runs of
// low bins away from the page edges.
func collectGutterCandidates(occupancy []float64, binWidth, maxOccupancy, pageWidth float64) []gutterCandidate {
	lowCutoff := gutterOccupancyRatio * maxOccupancy
	minWidth := minGutterWidthRatio * pageWidth

	var candidates []gutterCandidate
	runStart := -1

	flush := func(start, end int) {
		// Bands touching the page edges are margins, not gutters.
		if start <= 0 || end >= len(occupancy)-1 {
			return
		}
		left := float64(start) * binWidth
		right := float64(end+1) * binWidth
		if right-left < minWidth {
			return
		}
		sum := 0.0
		for b := start; b <= end; b++ {
			sum += occupancy[b] / maxOccupancy
		}
		candidates = append(candidates, gutterCandidate{
			left:          left,
			right:         right,
			meanOccupancy: sum / float64(end-start+1),
		})
	}

	for b, o := range occupancy {
		if o <= lowCutoff {
			if runStart < 0 {
				runStart = b
			}
			continue
		}
		if runStart >= 0 {
			flush(runStart, b-1)
			runStart = -1
		}
	}
	if runStart >= 0 {
		flush(runStart, len(occupancy)-1)
	}

	return candidates
}
