// Package pageflow extracts semantic reading structure (paragraphs,
// blocks, reading order, writing direction) from a flat collection of
// positioned text runs taken from a page of a fixed-layout document.
//
// Basic usage:
//
//	blocks, err := pageflow.Analyze(runs, nil)
//	if err != nil {
//	    // handle error
//	}
//
// With blocking zones and a custom configuration:
//
//	cfg := layout.DefaultConfig()
//	cfg.VerticalGapRatio = 0.8
//	blocks, err := pageflow.AnalyzeWithConfig(runs, &model.PageContext{
//	    BlockingZones: zones,
//	    PageWidth:     612,
//	}, cfg)
//
// The optional contextual pass coalesces blocks that the geometric pass
// split but whose content reads as one unit:
//
//	result, err := pageflow.SegmentBlocks(blocks, segment.DefaultBlockConfig())
//
// For advanced use cases, the lower-level layout and segment packages are
// also available.
package pageflow

import (
	"github.com/trkbt10/pageflow/layout"
	"github.com/trkbt10/pageflow/model"
	"github.com/trkbt10/pageflow/segment"
)

// Analyze groups a page's runs into ordered blocks using the default
// configuration. The context is optional.
func Analyze(runs []model.TextRun, pctx *model.PageContext) ([]layout.Block, error) {
	return layout.NewAnalyzer().Analyze(runs, pctx)
}

// AnalyzeWithConfig groups a page's runs into ordered blocks using a custom
// configuration.
func AnalyzeWithConfig(runs []model.TextRun, pctx *model.PageContext, cfg layout.Config) ([]layout.Block, error) {
	return layout.NewAnalyzerWithConfig(cfg).Analyze(runs, pctx)
}

// SegmentBlocks runs the contextual pass over already-grouped blocks,
// merging adjacent blocks whose content reads as one logical unit.
func SegmentBlocks(blocks []layout.Block, cfg segment.BlockConfig) (segment.Result[layout.Block], error) {
	return segment.SegmentGroupedText(blocks, cfg)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	blocks := pageflow.Must(pageflow.Analyze(runs, nil))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
