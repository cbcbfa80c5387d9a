package layout

import (
	"math"
	"sort"

	"github.com/trkbt10/pageflow/model"
)

// minBaselineTolerance is the floor for the baseline clustering tolerance,
// so tiny font sizes cannot collapse the tolerance to zero.
const minBaselineTolerance = 0.5

// minLineBoxOverlapRatio is the required vertical overlap between a run's
// box and the cluster's running mean box, as a fraction of the smaller
// height. It prevents baseline-only false merges between visually distinct
// but baseline-aligned content, e.g. interleaved scripts.
const minLineBoxOverlapRatio = 0.15

// lineCluster accumulates runs that share a baseline, tracking running means
// so each candidate run compares against the cluster as a whole rather than
// only its previous run.
type lineCluster struct {
	runs        []model.TextRun
	baselineSum float64
	fontSizeSum float64
	bottomSum   float64
	topSum      float64
}

func newLineCluster(run model.TextRun) *lineCluster {
	c := &lineCluster{}
	c.add(run)
	return c
}

func (c *lineCluster) add(run model.TextRun) {
	c.runs = append(c.runs, run)
	c.baselineSum += run.Baseline()
	c.fontSizeSum += run.FontSize
	c.bottomSum += run.Y
	c.topSum += run.Y + run.Height
}

func (c *lineCluster) meanBaseline() float64 {
	return c.baselineSum / float64(len(c.runs))
}

func (c *lineCluster) meanFontSize() float64 {
	return c.fontSizeSum / float64(len(c.runs))
}

// meanBox returns the cluster's running mean vertical interval as a Rect.
// Only the vertical extent is meaningful.
func (c *lineCluster) meanBox() model.Rect {
	n := float64(len(c.runs))
	bottom := c.bottomSum / n
	top := c.topSum / n
	return model.Rect{Y: bottom, Height: top - bottom, Width: 1}
}

// accepts reports whether the run belongs to this line cluster: its baseline
// must fall within the tolerance of the running mean baseline, and its box
// must vertically overlap the running mean box.
func (c *lineCluster) accepts(run model.TextRun, toleranceRatio float64) bool {
	referenceFontSize := math.Max(c.meanFontSize(), run.FontSize)
	tolerance := math.Max(minBaselineTolerance, referenceFontSize*toleranceRatio)
	if math.Abs(run.Baseline()-c.meanBaseline()) > tolerance {
		return false
	}

	box := run.Bounds()
	box.X = 0
	box.Width = 1
	return c.meanBox().VerticalOverlapRatio(box) >= minLineBoxOverlapRatio
}

// clusterLines groups runs into line clusters by baseline. Runs are sorted
// by descending baseline and folded greedily into the current cluster, so
// clusters are emitted top to bottom.
func clusterLines(runs []model.TextRun, toleranceRatio float64) [][]model.TextRun {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]model.TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Baseline() > sorted[j].Baseline()
	})

	var clusters [][]model.TextRun
	current := newLineCluster(sorted[0])

	for _, run := range sorted[1:] {
		if current.accepts(run, toleranceRatio) {
			current.add(run)
		} else {
			clusters = append(clusters, current.runs)
			current = newLineCluster(run)
		}
	}
	clusters = append(clusters, current.runs)

	return clusters
}
