package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/trkbt10/pageflow/model"
	"github.com/trkbt10/pageflow/text"
)

// minVerticalColumnTolerance is the floor for the center-x distance within
// which a run still joins an existing vertical column.
const minVerticalColumnTolerance = 2.0

// verticalColumn accumulates runs sharing a center-x during vertical-mode
// clustering, tracking running means for the online nearest-column search.
type verticalColumn struct {
	runs        []model.TextRun
	centerXSum  float64
	widthSum    float64
	fontSizeSum float64
}

func (c *verticalColumn) add(run model.TextRun) {
	c.runs = append(c.runs, run)
	c.centerXSum += run.CenterX()
	c.widthSum += run.Width
	c.fontSizeSum += run.FontSize
}

func (c *verticalColumn) meanCenterX() float64 {
	return c.centerXSum / float64(len(c.runs))
}

func (c *verticalColumn) meanWidth() float64 {
	return c.widthSum / float64(len(c.runs))
}

func (c *verticalColumn) meanFontSize() float64 {
	return c.fontSizeSum / float64(len(c.runs))
}

// tolerance returns the maximum center-x distance at which a run of the
// given width still belongs to this column.
func (c *verticalColumn) tolerance(runWidth float64) float64 {
	t := minVerticalColumnTolerance
	t = math.Max(t, c.meanWidth())
	t = math.Max(t, runWidth)
	t = math.Max(t, 0.9*c.meanFontSize())
	return t
}

// clusterVerticalColumns groups runs into vertical columns by center-x using
// an online nearest-column search: each run joins the nearest column whose
// running mean center-x lies within tolerance, or starts a new column.
func clusterVerticalColumns(runs []model.TextRun, order ColumnOrder) []*verticalColumn {
	var columns []*verticalColumn

	for _, run := range runs {
		var best *verticalColumn
		bestDist := math.MaxFloat64
		for _, col := range columns {
			d := math.Abs(run.CenterX() - col.meanCenterX())
			if d <= col.tolerance(run.Width) && d < bestDist {
				best = col
				bestDist = d
			}
		}
		if best != nil {
			best.add(run)
		} else {
			col := &verticalColumn{}
			col.add(run)
			columns = append(columns, col)
		}
	}

	sort.SliceStable(columns, func(i, j int) bool {
		if order == ColumnOrderLeftToRight {
			return columns[i].meanCenterX() < columns[j].meanCenterX()
		}
		return columns[i].meanCenterX() > columns[j].meanCenterX()
	})

	return columns
}

// splitColumnIntoParagraphs splits one vertical column into paragraph
// segments: a new segment starts at a large vertical gap, a style change,
// or a blocking zone between consecutive runs.
func splitColumnIntoParagraphs(col *verticalColumn, cfg Config, zones []model.BlockingZone) [][]model.TextRun {
	sorted := make([]model.TextRun, len(col.runs))
	copy(sorted, col.runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CenterY() > sorted[j].CenterY()
	})

	var segments [][]model.TextRun
	current := []model.TextRun{sorted[0]}

	for _, run := range sorted[1:] {
		prev := current[len(current)-1]

		gap := prev.Bounds().Bottom() - run.Bounds().Top()
		lineHeight := (prev.Height + run.Height) / 2

		split := gap > lineHeight*cfg.VerticalGapRatio ||
			!stylesMatch(styleOf(prev), styleOf(run), cfg) ||
			zoneSeparatesVertically(zones, prev.Bounds(), run.Bounds())

		if split {
			segments = append(segments, current)
			current = []model.TextRun{run}
		} else {
			current = append(current, run)
		}
	}
	segments = append(segments, current)

	return segments
}

// analyzeVertical runs the vertical-mode path: cluster runs into columns,
// split each column into paragraph segments, and emit one block per column
// in the configured column order.
func analyzeVertical(runs []model.TextRun, cfg Config, zones []model.BlockingZone) ([]Block, error) {
	columns := clusterVerticalColumns(runs, cfg.VerticalColumnOrder)

	blocks := make([]Block, 0, len(columns))
	for _, col := range columns {
		segments := splitColumnIntoParagraphs(col, cfg, zones)

		paragraphs := make([]Paragraph, 0, len(segments))
		for _, seg := range segments {
			p, err := NewParagraph(seg, text.TTB)
			if err != nil {
				return nil, fmt.Errorf("layout: vertical column segment: %w", err)
			}
			paragraphs = append(paragraphs, p)
		}

		block, err := NewBlock(paragraphs)
		if err != nil {
			return nil, fmt.Errorf("layout: vertical column block: %w", err)
		}
		block.Inference = verticalInference()
		blocks = append(blocks, block)
	}

	return blocks, nil
}
