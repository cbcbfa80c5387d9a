package layout

import (
	"fmt"

	"github.com/trkbt10/pageflow/model"
	"github.com/trkbt10/pageflow/text"
)

// Analyzer performs spatial grouping: clustering a page's runs into lines,
// columns, paragraphs, and ordered blocks. An Analyzer is stateless and safe
// for concurrent use across pages.
type Analyzer struct {
	config Config
}

// NewAnalyzer creates an analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return &Analyzer{config: DefaultConfig()}
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// Config returns the analyzer's configuration
func (a *Analyzer) Config() Config {
	return a.config
}

// Analyze groups the page's runs into ordered blocks. The context is
// optional; it supplies blocking zones and page dimensions when the caller
// has them. An empty run list yields an empty block list.
func (a *Analyzer) Analyze(runs []model.TextRun, pctx *model.PageContext) ([]Block, error) {
	if err := a.config.Validate(); err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}

	var zones []model.BlockingZone
	pageWidth := 0.0
	if pctx != nil {
		zones = pctx.BlockingZones
		pageWidth = pctx.PageWidth
	}

	mode := a.resolveWritingMode(runs)
	if mode == text.Vertical {
		return analyzeVertical(runs, a.config, zones)
	}

	return a.analyzeHorizontal(runs, zones, pageWidth)
}

// resolveWritingMode applies the configured override or detects the mode.
func (a *Analyzer) resolveWritingMode(runs []model.TextRun) text.WritingMode {
	switch a.config.WritingMode {
	case WritingModeHorizontal:
		return text.Horizontal
	case WritingModeVertical:
		return text.Vertical
	default:
		return text.ResolveWritingMode(runs)
	}
}

// resolveInlineDirection applies the configured override or detects the
// direction from run content.
func (a *Analyzer) resolveInlineDirection(runs []model.TextRun) text.Direction {
	switch a.config.InlineDirection {
	case InlineDirectionLTR:
		return text.LTR
	case InlineDirectionRTL:
		return text.RTL
	default:
		return text.ResolveInlineDirection(runs)
	}
}

// analyzeHorizontal is the horizontal-mode path: line clustering, per-line
// segmentation, block merging (per page column when detected), ordering,
// and layout inference.
func (a *Analyzer) analyzeHorizontal(runs []model.TextRun, zones []model.BlockingZone, pageWidth float64) ([]Block, error) {
	cfg := a.config
	direction := a.resolveInlineDirection(runs)

	lines := clusterLines(runs, cfg.LineToleranceRatio)

	var columns *pageColumns
	if cfg.EnableColumnSeparation && cfg.EnablePageColumnDetection {
		columns = detectPageColumns(runs, pageWidth, cfg)
	}

	// Split each line cluster into paragraph segments and assign each
	// segment to a page-column bucket (bucket 0 when no page columns).
	bucketCount := 1
	if columns != nil {
		bucketCount = len(columns.intervals)
	}
	buckets := make([][]Paragraph, bucketCount)

	for _, line := range lines {
		for _, seg := range a.splitLine(line, columns, zones) {
			p, err := NewParagraph(seg, direction)
			if err != nil {
				return nil, fmt.Errorf("layout: line segment: %w", err)
			}

			bucket := 0
			if columns != nil {
				bucket = columns.columnIndexFor(p.Bounds().Center().X)
			}
			buckets[bucket] = append(buckets[bucket], p)
		}
	}

	// Merge paragraphs into blocks independently per column, then restore
	// one stable page order across all blocks.
	var blocks []Block
	for _, bucket := range buckets {
		merged, err := mergeParagraphsIntoBlocks(bucket, cfg, zones)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, merged...)
	}

	blocks = sortBlocksInReadingOrder(blocks)

	for i := range blocks {
		blocks[i].Inference = inferLayout(blocks[i], direction)
	}

	return blocks, nil
}

// splitLine segments one line cluster. Wide lines on a multi-column page are
// first partitioned by the detected column intervals and adjacency-split
// inside each partition; otherwise the line is column-split (when enabled)
// or adjacency-split directly.
func (a *Analyzer) splitLine(line []model.TextRun, columns *pageColumns, zones []model.BlockingZone) [][]model.TextRun {
	cfg := a.config

	if !cfg.EnableColumnSeparation {
		return splitLineByAdjacency(line, cfg.HorizontalGapRatio, zones)
	}

	lineBounds := model.RunsBounds(line)
	if columns != nil && columns.appliesTo(lineBounds) {
		partitions := make([][]model.TextRun, len(columns.intervals))
		for _, run := range line {
			idx := columns.columnIndexFor(run.CenterX())
			partitions[idx] = append(partitions[idx], run)
		}

		var segments [][]model.TextRun
		for _, part := range partitions {
			if len(part) == 0 {
				continue
			}
			segments = append(segments, splitLineByAdjacency(part, cfg.HorizontalGapRatio, zones)...)
		}
		return segments
	}

	return splitLineIntoColumns(line, cfg, zones)
}
