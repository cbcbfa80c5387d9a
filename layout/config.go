package layout

import "fmt"

// WritingModeOption selects the writing mode, or requests auto-detection.
type WritingModeOption int

const (
	// WritingModeAuto detects the writing mode from run geometry
	WritingModeAuto WritingModeOption = iota
	// WritingModeHorizontal forces horizontal writing
	WritingModeHorizontal
	// WritingModeVertical forces vertical writing
	WritingModeVertical
)

// String returns a string representation of the writing mode option.
func (m WritingModeOption) String() string {
	switch m {
	case WritingModeHorizontal:
		return "horizontal"
	case WritingModeVertical:
		return "vertical"
	default:
		return "auto"
	}
}

// InlineDirectionOption selects the inline direction, or requests detection.
type InlineDirectionOption int

const (
	// InlineDirectionAuto detects the inline direction from run content
	InlineDirectionAuto InlineDirectionOption = iota
	// InlineDirectionLTR forces left-to-right
	InlineDirectionLTR
	// InlineDirectionRTL forces right-to-left
	InlineDirectionRTL
)

// String returns a string representation of the inline direction option.
func (d InlineDirectionOption) String() string {
	switch d {
	case InlineDirectionLTR:
		return "ltr"
	case InlineDirectionRTL:
		return "rtl"
	default:
		return "auto"
	}
}

// ColorMatching controls how fill colors participate in style continuity
// checks during block merging.
type ColorMatching int

const (
	// ColorMatchingNone ignores fill colors entirely
	ColorMatchingNone ColorMatching = iota
	// ColorMatchingLoose compares parsed color channels with tolerance
	ColorMatchingLoose
	// ColorMatchingStrict requires exact color equality
	ColorMatchingStrict
)

// String returns a string representation of the color matching mode.
func (c ColorMatching) String() string {
	switch c {
	case ColorMatchingLoose:
		return "loose"
	case ColorMatchingStrict:
		return "strict"
	default:
		return "none"
	}
}

// ColumnOrder selects the stacking order of vertical-mode columns.
type ColumnOrder int

const (
	// ColumnOrderRightToLeft is the traditional order for vertical CJK text
	ColumnOrderRightToLeft ColumnOrder = iota
	// ColumnOrderLeftToRight stacks vertical columns left to right
	ColumnOrderLeftToRight
)

// String returns a string representation of the column order.
func (o ColumnOrder) String() string {
	if o == ColumnOrderLeftToRight {
		return "left-to-right"
	}
	return "right-to-left"
}

// Config holds the tuning parameters for spatial grouping. The numeric
// defaults were tuned empirically against a fixture corpus; changing them is
// a tuning decision, not a bug fix.
type Config struct {
	// LineToleranceRatio scales the reference font size into the baseline
	// distance tolerance for line clustering (default: 0.1)
	LineToleranceRatio float64

	// HorizontalGapRatio scales the expected inter-run gap into the
	// adjacency split threshold within a line (default: 1.5)
	HorizontalGapRatio float64

	// VerticalGapRatio scales the line height into the maximum vertical gap
	// merged across lines, and the vertical-mode paragraph split threshold
	// (default: 1.2)
	VerticalGapRatio float64

	// ColorMatching controls fill-color participation in style continuity
	// (default: none)
	ColorMatching ColorMatching

	// FontSizeToleranceRatio scales the larger font size into the maximum
	// size difference still considered the same style (default: 0.1)
	FontSizeToleranceRatio float64

	// EnableColumnSeparation enables per-line column splitting and the
	// side-by-side column merge protection (default: true)
	EnableColumnSeparation bool

	// ColumnGapRatio scales the average character width into the column
	// split threshold (default: 3.0)
	ColumnGapRatio float64

	// EnablePageColumnDetection enables page-level gutter detection
	// (default: true)
	EnablePageColumnDetection bool

	// MaxPageColumns caps how many page-level columns are derived
	// (default: 3)
	MaxPageColumns int

	// FullWidthRatio excludes runs wider than this fraction of the page
	// from gutter detection, so titles spanning the page do not hide
	// gutters (default: 0.85)
	FullWidthRatio float64

	// WritingMode forces a writing mode or requests auto-detection
	WritingMode WritingModeOption

	// VerticalColumnOrder is the stacking order of vertical-mode columns
	// (default: right-to-left)
	VerticalColumnOrder ColumnOrder

	// InlineDirection forces an inline direction or requests detection
	InlineDirection InlineDirectionOption
}

// DefaultConfig returns the default spatial grouping configuration.
func DefaultConfig() Config {
	return Config{
		LineToleranceRatio:        0.1,
		HorizontalGapRatio:        1.5,
		VerticalGapRatio:          1.2,
		ColorMatching:             ColorMatchingNone,
		FontSizeToleranceRatio:    0.1,
		EnableColumnSeparation:    true,
		ColumnGapRatio:            3.0,
		EnablePageColumnDetection: true,
		MaxPageColumns:            3,
		FullWidthRatio:            0.85,
		WritingMode:               WritingModeAuto,
		VerticalColumnOrder:       ColumnOrderRightToLeft,
		InlineDirection:           InlineDirectionAuto,
	}
}

// Validate reports malformed configuration. Non-positive ratios and counts
// are programmer errors and surface immediately rather than producing
// nonsense groupings.
func (c Config) Validate() error {
	if c.LineToleranceRatio <= 0 {
		return fmt.Errorf("layout: LineToleranceRatio must be positive, got %v", c.LineToleranceRatio)
	}
	if c.HorizontalGapRatio <= 0 {
		return fmt.Errorf("layout: HorizontalGapRatio must be positive, got %v", c.HorizontalGapRatio)
	}
	if c.VerticalGapRatio <= 0 {
		return fmt.Errorf("layout: VerticalGapRatio must be positive, got %v", c.VerticalGapRatio)
	}
	if c.FontSizeToleranceRatio <= 0 {
		return fmt.Errorf("layout: FontSizeToleranceRatio must be positive, got %v", c.FontSizeToleranceRatio)
	}
	if c.ColumnGapRatio <= 0 {
		return fmt.Errorf("layout: ColumnGapRatio must be positive, got %v", c.ColumnGapRatio)
	}
	if c.MaxPageColumns < 1 {
		return fmt.Errorf("layout: MaxPageColumns must be at least 1, got %d", c.MaxPageColumns)
	}
	if c.FullWidthRatio <= 0 || c.FullWidthRatio > 1 {
		return fmt.Errorf("layout: FullWidthRatio must be in (0, 1], got %v", c.FullWidthRatio)
	}
	return nil
}
