package layout

import (
	"math"
	"sort"

	"github.com/trkbt10/pageflow/model"
)

// adaptiveGapMultiplier scales the adaptive space-gap threshold into the
// hybrid column split threshold.
const adaptiveGapMultiplier = 3.5

// strongGutterGapMultiplier and strongGutterFontMultiplier define the
// "strong gutter" escape for two-run lines: only a gap this large splits a
// pair, so ordinary inter-word gaps mis-measured as columns do not.
const (
	strongGutterGapMultiplier  = 1.8
	strongGutterFontMultiplier = 6.0
)

// sortRunsByX returns the runs of one line cluster sorted by ascending x.
func sortRunsByX(runs []model.TextRun) []model.TextRun {
	sorted := make([]model.TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})
	return sorted
}

// expectedGap estimates the natural advance between two adjacent runs: the
// average estimated character width of the pair, plus the previous run's
// character spacing scaled by its horizontal scaling, plus its word spacing
// when the previous run ends in a space.
func expectedGap(prev, next model.TextRun) float64 {
	gap := (prev.EstimatedCharWidth() + next.EstimatedCharWidth()) / 2
	gap += prev.CharSpacing * prev.ScalingFactor()
	if prev.EndsWithSpace() {
		gap += prev.WordSpacing * prev.ScalingFactor()
	}
	return gap
}

// splitLineByAdjacency splits a line's runs into segments wherever the gap
// to the previous run exceeds the expected gap scaled by the gap ratio, or
// a blocking zone truly separates the pair.
func splitLineByAdjacency(runs []model.TextRun, gapRatio float64, zones []model.BlockingZone) [][]model.TextRun {
	if len(runs) == 0 {
		return nil
	}

	sorted := sortRunsByX(runs)

	var segments [][]model.TextRun
	current := []model.TextRun{sorted[0]}

	for _, run := range sorted[1:] {
		prev := current[len(current)-1]
		gap := run.X - prev.Bounds().Right()

		if gap > expectedGap(prev, run)*gapRatio ||
			zoneSeparatesHorizontally(zones, prev.Bounds(), run.Bounds()) {
			segments = append(segments, current)
			current = []model.TextRun{run}
		} else {
			current = append(current, run)
		}
	}
	segments = append(segments, current)

	return segments
}

// adaptiveSpaceGapThreshold derives a gap threshold from the distribution of
// adjacent gaps in a line. When the gap distribution is wide (p75 far above
// p25, an IQR signal of mixed word gaps and column gaps) the quartile average
// separates them; otherwise the threshold leans on the median and font size.
func adaptiveSpaceGapThreshold(gaps []float64, fontSize float64) float64 {
	if len(gaps) == 0 {
		return fontSize
	}

	p25 := model.Quantile(gaps, 0.25)
	p75 := model.Quantile(gaps, 0.75)
	if p75 > 2.5*p25 && p25 > 0 {
		return (p25 + p75) / 2
	}

	median := model.Median(gaps)
	return math.Max(1.7*median, math.Max(0.9*p75, 0.33*fontSize))
}

// splitLineIntoColumns splits a line's runs at column-scale gaps using a
// hybrid threshold of character-width and adaptive space-gap estimates.
func splitLineIntoColumns(runs []model.TextRun, cfg Config, zones []model.BlockingZone) [][]model.TextRun {
	if len(runs) == 0 {
		return nil
	}

	sorted := sortRunsByX(runs)
	if len(sorted) == 1 {
		return [][]model.TextRun{sorted}
	}

	charWidths := make([]float64, len(sorted))
	fontSizes := make([]float64, len(sorted))
	for i, r := range sorted {
		charWidths[i] = r.EstimatedCharWidth()
		fontSizes[i] = r.FontSize
	}
	avgCharWidth := model.Mean(charWidths)
	fontSize := model.Mean(fontSizes)

	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, sorted[i].X-sorted[i-1].Bounds().Right())
	}

	// A 2-run line offers no gap distribution to trust: the adaptive
	// estimate would be derived from the very gap under test. Keep the pair
	// together unless a zone separates it or the gap is a strong gutter by
	// the character-width measure.
	if len(sorted) == 2 {
		strongGutter := math.Max(
			strongGutterGapMultiplier*avgCharWidth*cfg.ColumnGapRatio,
			strongGutterFontMultiplier*fontSize,
		)
		if gaps[0] > strongGutter ||
			zoneSeparatesHorizontally(zones, sorted[0].Bounds(), sorted[1].Bounds()) {
			return [][]model.TextRun{{sorted[0]}, {sorted[1]}}
		}
		return [][]model.TextRun{sorted}
	}

	threshold := math.Max(
		avgCharWidth*cfg.ColumnGapRatio,
		adaptiveGapMultiplier*adaptiveSpaceGapThreshold(gaps, fontSize),
	)

	var segments [][]model.TextRun
	current := []model.TextRun{sorted[0]}

	for i := 1; i < len(sorted); i++ {
		prev := current[len(current)-1]
		run := sorted[i]

		if gaps[i-1] > threshold ||
			zoneSeparatesHorizontally(zones, prev.Bounds(), run.Bounds()) {
			segments = append(segments, current)
			current = []model.TextRun{run}
		} else {
			current = append(current, run)
		}
	}
	segments = append(segments, current)

	return segments
}
