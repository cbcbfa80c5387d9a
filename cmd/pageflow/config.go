package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/trkbt10/pageflow/layout"
	"github.com/trkbt10/pageflow/segment"
)

// yamlConfig mirrors the library configs with pointer fields, so only the
// keys present in the file override the defaults.
type yamlConfig struct {
	Layout struct {
		LineToleranceRatio        *float64 `yaml:"line_tolerance_ratio"`
		HorizontalGapRatio        *float64 `yaml:"horizontal_gap_ratio"`
		VerticalGapRatio          *float64 `yaml:"vertical_gap_ratio"`
		FontSizeToleranceRatio    *float64 `yaml:"font_size_tolerance_ratio"`
		ColorMatching             *string  `yaml:"color_matching"`
		EnableColumnSeparation    *bool    `yaml:"enable_column_separation"`
		ColumnGapRatio            *float64 `yaml:"column_gap_ratio"`
		EnablePageColumnDetection *bool    `yaml:"enable_page_column_detection"`
		MaxPageColumns            *int     `yaml:"max_page_columns"`
		FullWidthRatio            *float64 `yaml:"full_width_ratio"`
		WritingMode               *string  `yaml:"writing_mode"`
		VerticalColumnOrder       *string  `yaml:"vertical_column_order"`
		InlineDirection           *string  `yaml:"inline_direction"`
	} `yaml:"layout"`
	Segment struct {
		WindowSize                *int     `yaml:"window_size"`
		MergeThreshold            *float64 `yaml:"merge_threshold"`
		StrongMergeThreshold      *float64 `yaml:"strong_merge_threshold"`
		MinCombinedChars          *int     `yaml:"min_combined_chars"`
		BoundaryContextChars      *int     `yaml:"boundary_context_chars"`
		SuffixPrefixMergeRatio    *float64 `yaml:"suffix_prefix_merge_ratio"`
		SuffixPrefixMergeMinChars *int     `yaml:"suffix_prefix_merge_min_chars"`
		AdaptiveMergePercentile   *float64 `yaml:"adaptive_merge_percentile"`
		MinXAxisOverlapRatio      *float64 `yaml:"min_x_axis_overlap_ratio"`
		ContextParagraphEdgeCount *int     `yaml:"context_paragraph_edge_count"`
	} `yaml:"segment"`
}

// loadConfig applies YAML overrides from path onto the default configs.
func loadConfig(path string, layoutCfg *layout.Config, segmentCfg *segment.BlockConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return err
	}

	l := yc.Layout
	setFloat(&layoutCfg.LineToleranceRatio, l.LineToleranceRatio)
	setFloat(&layoutCfg.HorizontalGapRatio, l.HorizontalGapRatio)
	setFloat(&layoutCfg.VerticalGapRatio, l.VerticalGapRatio)
	setFloat(&layoutCfg.FontSizeToleranceRatio, l.FontSizeToleranceRatio)
	setFloat(&layoutCfg.ColumnGapRatio, l.ColumnGapRatio)
	setFloat(&layoutCfg.FullWidthRatio, l.FullWidthRatio)
	setBool(&layoutCfg.EnableColumnSeparation, l.EnableColumnSeparation)
	setBool(&layoutCfg.EnablePageColumnDetection, l.EnablePageColumnDetection)
	setInt(&layoutCfg.MaxPageColumns, l.MaxPageColumns)

	if l.ColorMatching != nil {
		mode, err := parseColorMatching(*l.ColorMatching)
		if err != nil {
			return err
		}
		layoutCfg.ColorMatching = mode
	}
	if l.WritingMode != nil {
		mode, err := parseWritingMode(*l.WritingMode)
		if err != nil {
			return err
		}
		layoutCfg.WritingMode = mode
	}
	if l.VerticalColumnOrder != nil {
		order, err := parseColumnOrder(*l.VerticalColumnOrder)
		if err != nil {
			return err
		}
		layoutCfg.VerticalColumnOrder = order
	}
	if l.InlineDirection != nil {
		dir, err := parseInlineDirection(*l.InlineDirection)
		if err != nil {
			return err
		}
		layoutCfg.InlineDirection = dir
	}

	s := yc.Segment
	setInt(&segmentCfg.WindowSize, s.WindowSize)
	setFloat(&segmentCfg.MergeThreshold, s.MergeThreshold)
	setFloat(&segmentCfg.StrongMergeThreshold, s.StrongMergeThreshold)
	setInt(&segmentCfg.MinCombinedChars, s.MinCombinedChars)
	setInt(&segmentCfg.BoundaryContextChars, s.BoundaryContextChars)
	setFloat(&segmentCfg.SuffixPrefixMergeRatio, s.SuffixPrefixMergeRatio)
	setInt(&segmentCfg.SuffixPrefixMergeMinChars, s.SuffixPrefixMergeMinChars)
	setFloat(&segmentCfg.AdaptiveMergePercentile, s.AdaptiveMergePercentile)
	setFloat(&segmentCfg.MinXAxisOverlapRatio, s.MinXAxisOverlapRatio)
	setInt(&segmentCfg.ContextParagraphEdgeCount, s.ContextParagraphEdgeCount)

	return nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func parseColorMatching(s string) (layout.ColorMatching, error) {
	switch s {
	case "none":
		return layout.ColorMatchingNone, nil
	case "loose":
		return layout.ColorMatchingLoose, nil
	case "strict":
		return layout.ColorMatchingStrict, nil
	}
	return 0, fmt.Errorf("unknown color_matching %q", s)
}

func parseWritingMode(s string) (layout.WritingModeOption, error) {
	switch s {
	case "auto":
		return layout.WritingModeAuto, nil
	case "horizontal":
		return layout.WritingModeHorizontal, nil
	case "vertical":
		return layout.WritingModeVertical, nil
	}
	return 0, fmt.Errorf("unknown writing_mode %q", s)
}

func parseColumnOrder(s string) (layout.ColumnOrder, error) {
	switch s {
	case "right-to-left":
		return layout.ColumnOrderRightToLeft, nil
	case "left-to-right":
		return layout.ColumnOrderLeftToRight, nil
	}
	return 0, fmt.Errorf("unknown vertical_column_order %q", s)
}

func parseInlineDirection(s string) (layout.InlineDirectionOption, error) {
	switch s {
	case "auto":
		return layout.InlineDirectionAuto, nil
	case "ltr":
		return layout.InlineDirectionLTR, nil
	case "rtl":
		return layout.InlineDirectionRTL, nil
	}
	return 0, fmt.Errorf("unknown inline_direction %q", s)
}
