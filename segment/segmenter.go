package segment

import (
	"fmt"
	"strings"

	"github.com/trkbt10/pageflow/model"
)

// Reason explains why a boundary was merged or kept.
type Reason string

const (
	// ReasonBlockedByCallback means the caller-supplied guard rejected the merge
	ReasonBlockedByCallback Reason = "blocked-by-callback"
	// ReasonStrongNCD means the contexts were near-identical under compression
	ReasonStrongNCD Reason = "strong-ncd"
	// ReasonSuffixPrefixOverlap means the left unit's tail repeats as the
	// right unit's head, e.g. a line continued verbatim across a forced break
	ReasonSuffixPrefixOverlap Reason = "suffix-prefix-overlap"
	// ReasonInsufficientLength means the units were too short to trust
	// similarity scoring
	ReasonInsufficientLength Reason = "insufficient-length"
	// ReasonThresholdNCD means the score cleared the merge threshold
	ReasonThresholdNCD Reason = "threshold-ncd"
	// ReasonNCDTooHigh means the score did not clear the merge threshold
	ReasonNCDTooHigh Reason = "ncd-too-high"
)

// Unit is one element of the ordered sequence under segmentation, carrying
// an arbitrary payload.
type Unit[T any] struct {
	Text  string
	Value T
}

// Boundary records the decision taken between unit Index and Index+1.
type Boundary struct {
	Index      int
	NCD        float64
	LeftChars  int
	RightChars int
	Merge      bool
	Reason     Reason
}

// Segment is a maximal run of units merged across their boundaries.
type Segment[T any] struct {
	Units []Unit[T]
	Text  string
}

// Result is the outcome of one segmentation call.
type Result[T any] struct {
	// Threshold is the effective merge threshold after optional adaptive
	// tightening
	Threshold  float64
	Boundaries []Boundary
	Segments   []Segment[T]
}

// Guard decides whether two adjacent units may merge at all. Returning
// false vetoes the merge before any similarity scoring.
type Guard[T any] func(left, right Unit[T]) bool

// Config holds contextual segmentation tuning. The defaults were tuned
// against a fixture corpus.
type Config struct {
	// WindowSize is how many units on each side of a boundary contribute
	// context text (default: 1)
	WindowSize int

	// MergeThreshold is the NCD at or below which sufficiently long
	// neighbors merge (default: 0.22)
	MergeThreshold float64

	// StrongMergeThreshold is the NCD at or below which neighbors merge
	// regardless of length (default: 0.10)
	StrongMergeThreshold float64

	// MinCombinedChars is the minimum combined unit length for threshold
	// merging; shorter pairs are too noisy (default: 48)
	MinCombinedChars int

	// BoundaryContextChars caps each side's context window, scanning from
	// the boundary outward (default: 220)
	BoundaryContextChars int

	// SuffixPrefixMergeRatio is the fraction of the shorter unit that a
	// suffix/prefix overlap must cover to force a merge (default: 0.75)
	SuffixPrefixMergeRatio float64

	// SuffixPrefixMergeMinChars is the minimum overlap length considered
	// (default: 10)
	SuffixPrefixMergeMinChars int

	// AdaptiveMergePercentile, when positive, tightens the merge threshold
	// to this percentile of the observed boundary NCD distribution
	// (0 disables)
	AdaptiveMergePercentile float64
}

// DefaultConfig returns the default contextual segmentation configuration.
func DefaultConfig() Config {
	return Config{
		WindowSize:                1,
		MergeThreshold:            0.22,
		StrongMergeThreshold:      0.10,
		MinCombinedChars:          48,
		BoundaryContextChars:      220,
		SuffixPrefixMergeRatio:    0.75,
		SuffixPrefixMergeMinChars: 10,
	}
}

// Validate reports malformed configuration.
func (c Config) Validate() error {
	if c.WindowSize < 1 {
		return fmt.Errorf("segment: WindowSize must be at least 1, got %d", c.WindowSize)
	}
	if c.BoundaryContextChars < 1 {
		return fmt.Errorf("segment: BoundaryContextChars must be at least 1, got %d", c.BoundaryContextChars)
	}
	if c.SuffixPrefixMergeMinChars < 1 {
		return fmt.Errorf("segment: SuffixPrefixMergeMinChars must be at least 1, got %d", c.SuffixPrefixMergeMinChars)
	}
	if c.MergeThreshold < 0 || c.StrongMergeThreshold < 0 {
		return fmt.Errorf("segment: thresholds must be non-negative")
	}
	return nil
}

// SegmentTextUnits segments an ordered sequence of text-bearing units by
// content similarity. Each boundary between adjacent units is decided in
// order: a guard veto wins, then a strong NCD merge, then a verbatim
// suffix/prefix continuation, then a length floor, then the (optionally
// adaptive) NCD threshold. Segments are the maximal runs between kept
// boundaries.
func SegmentTextUnits[T any](units []Unit[T], cfg Config, guard Guard[T]) (Result[T], error) {
	if err := cfg.Validate(); err != nil {
		return Result[T]{}, err
	}

	if len(units) == 0 {
		return Result[T]{Threshold: cfg.MergeThreshold}, nil
	}
	if len(units) == 1 {
		return Result[T]{
			Threshold: cfg.MergeThreshold,
			Segments:  []Segment[T]{buildSegment(units)},
		}, nil
	}

	cache := make(compressedSizeCache)

	// Score every boundary first: the adaptive threshold needs the whole
	// distribution before any decision is taken.
	scores := make([]float64, len(units)-1)
	lefts := make([]string, len(units)-1)
	rights := make([]string, len(units)-1)
	for i := 0; i < len(units)-1; i++ {
		lefts[i] = leftContext(units, i, cfg)
		rights[i] = rightContext(units, i, cfg)
		scores[i] = cache.ncd(lefts[i], rights[i])
	}

	threshold := cfg.MergeThreshold
	if cfg.AdaptiveMergePercentile > 0 {
		adaptive := model.Quantile(scores, cfg.AdaptiveMergePercentile)
		if adaptive < threshold {
			threshold = adaptive
		}
	}

	boundaries := make([]Boundary, len(units)-1)
	for i := 0; i < len(units)-1; i++ {
		merge, reason := decideBoundary(units[i], units[i+1], scores[i], threshold, cfg, guard)
		boundaries[i] = Boundary{
			Index:      i,
			NCD:        scores[i],
			LeftChars:  len([]rune(lefts[i])),
			RightChars: len([]rune(rights[i])),
			Merge:      merge,
			Reason:     reason,
		}
	}

	var segments []Segment[T]
	start := 0
	for i, b := range boundaries {
		if !b.Merge {
			segments = append(segments, buildSegment(units[start:i+1]))
			start = i + 1
		}
	}
	segments = append(segments, buildSegment(units[start:]))

	return Result[T]{
		Threshold:  threshold,
		Boundaries: boundaries,
		Segments:   segments,
	}, nil
}

// decideBoundary applies the decision ladder for one boundary.
func decideBoundary[T any](left, right Unit[T], score, threshold float64, cfg Config, guard Guard[T]) (bool, Reason) {
	if guard != nil && !guard(left, right) {
		return false, ReasonBlockedByCallback
	}

	if score <= cfg.StrongMergeThreshold {
		return true, ReasonStrongNCD
	}

	if suffixPrefixOverlaps(left.Text, right.Text, cfg) {
		return true, ReasonSuffixPrefixOverlap
	}

	leftLen := len([]rune(left.Text))
	rightLen := len([]rune(right.Text))
	if leftLen+rightLen < cfg.MinCombinedChars {
		return false, ReasonInsufficientLength
	}

	if score <= threshold {
		return true, ReasonThresholdNCD
	}
	return false, ReasonNCDTooHigh
}

// suffixPrefixOverlaps reports whether the longest common suffix-of-left /
// prefix-of-right overlap covers enough of the shorter unit. This catches a
// line duplicated or continued verbatim across a forced page or column
// break.
func suffixPrefixOverlaps(left, right string, cfg Config) bool {
	l := []rune(left)
	r := []rune(right)

	maxOverlap := len(l)
	if len(r) < maxOverlap {
		maxOverlap = len(r)
	}
	if maxOverlap < cfg.SuffixPrefixMergeMinChars {
		return false
	}

	shorter := len(l)
	if len(r) < shorter {
		shorter = len(r)
	}

	for k := maxOverlap; k >= cfg.SuffixPrefixMergeMinChars; k-- {
		if string(l[len(l)-k:]) == string(r[:k]) {
			return float64(k) >= cfg.SuffixPrefixMergeRatio*float64(shorter)
		}
	}
	return false
}

// leftContext builds the text on the left side of boundary i: up to
// WindowSize units ending at i, capped to BoundaryContextChars scanning
// outward from the boundary (so the cap keeps the text nearest the
// boundary).
func leftContext[T any](units []Unit[T], i int, cfg Config) string {
	start := i - cfg.WindowSize + 1
	if start < 0 {
		start = 0
	}

	var sb strings.Builder
	for _, u := range units[start : i+1] {
		sb.WriteString(u.Text)
	}

	runes := []rune(sb.String())
	if len(runes) > cfg.BoundaryContextChars {
		runes = runes[len(runes)-cfg.BoundaryContextChars:]
	}
	return string(runes)
}

// rightContext builds the text on the right side of boundary i.
func rightContext[T any](units []Unit[T], i int, cfg Config) string {
	end := i + 1 + cfg.WindowSize
	if end > len(units) {
		end = len(units)
	}

	var sb strings.Builder
	for _, u := range units[i+1 : end] {
		sb.WriteString(u.Text)
	}

	runes := []rune(sb.String())
	if len(runes) > cfg.BoundaryContextChars {
		runes = runes[:cfg.BoundaryContextChars]
	}
	return string(runes)
}

// buildSegment concatenates a run of units into one segment.
func buildSegment[T any](units []Unit[T]) Segment[T] {
	copied := make([]Unit[T], len(units))
	copy(copied, units)

	parts := make([]string, len(copied))
	for i, u := range copied {
		parts[i] = u.Text
	}

	return Segment[T]{
		Units: copied,
		Text:  strings.Join(parts, "\n"),
	}
}
