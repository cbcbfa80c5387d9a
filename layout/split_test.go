package layout

import (
	"math"
	"testing"

	"github.com/trkbt10/pageflow/model"
)

func TestSplitLineByAdjacency_WordGapsStayTogether(t *testing.T) {
	runs := []model.TextRun{
		makeRun("some", 0, 100, 20, 10),
		makeRun("word", 23, 100, 20, 10),
		makeRun("text", 46, 100, 20, 10),
	}

	segments := splitLineByAdjacency(runs, 1.5, nil)
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if len(segments[0]) != 3 {
		t.Errorf("Expected 3 runs in segment, got %d", len(segments[0]))
	}
}

func TestSplitLineByAdjacency_LargeGapSplits(t *testing.T) {
	runs := []model.TextRun{
		makeRun("left", 0, 100, 20, 10),
		makeRun("cell", 23, 100, 20, 10),
		makeRun("far", 120, 100, 20, 10),
	}

	segments := splitLineByAdjacency(runs, 1.5, nil)
	if len(segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segments))
	}
	if len(segments[0]) != 2 || len(segments[1]) != 1 {
		t.Errorf("Expected segments of 2 and 1 runs, got %d and %d",
			len(segments[0]), len(segments[1]))
	}
}

func TestSplitLineByAdjacency_UnsortedInput(t *testing.T) {
	runs := []model.TextRun{
		makeRun("word", 23, 100, 20, 10),
		makeRun("some", 0, 100, 20, 10),
	}

	segments := splitLineByAdjacency(runs, 1.5, nil)
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0][0].Text != "some" {
		t.Errorf("Expected leftmost run first, got %q", segments[0][0].Text)
	}
}

func TestExpectedGap_WordSpacingAppliesAfterSpace(t *testing.T) {
	prev := makeRun("ends ", 0, 100, 25, 10)
	prev.WordSpacing = 4
	next := makeRun("next", 30, 100, 20, 10)

	withSpace := expectedGap(prev, next)

	prev.Text = "ends"
	withoutSpace := expectedGap(prev, next)

	if withSpace <= withoutSpace {
		t.Errorf("Expected word spacing to widen the gap, got %v vs %v", withSpace, withoutSpace)
	}
	if diff := withSpace - withoutSpace; math.Abs(diff-4) > 1.5 {
		t.Errorf("Expected roughly the word spacing as difference, got %v", diff)
	}
}

func TestAdaptiveSpaceGapThreshold_BimodalGaps(t *testing.T) {
	// Word gaps near 2 mixed with a column gap of 40: the threshold must
	// land between the two modes.
	gaps := []float64{2, 2, 2, 40}

	got := adaptiveSpaceGapThreshold(gaps, 10)
	if got <= 2 || got >= 40 {
		t.Errorf("Expected threshold between gap modes, got %v", got)
	}
}

func TestAdaptiveSpaceGapThreshold_UniformGaps(t *testing.T) {
	gaps := []float64{2, 2, 2, 2}

	got := adaptiveSpaceGapThreshold(gaps, 10)
	want := 3.4 // 1.7 * median
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v for uniform gaps, got %v", want, got)
	}
}

func TestAdaptiveSpaceGapThreshold_NoGaps(t *testing.T) {
	if got := adaptiveSpaceGapThreshold(nil, 10); got != 10 {
		t.Errorf("Expected font size fallback, got %v", got)
	}
}

func TestSplitLineIntoColumns_TwoRunsNeedStrongGutter(t *testing.T) {
	cfg := DefaultConfig()

	// Moderate gap: a 2-run line never splits on a word-scale gap.
	runs := []model.TextRun{
		makeRun("left", 0, 100, 20, 10),
		makeRun("side", 50, 100, 20, 10),
	}
	if segments := splitLineIntoColumns(runs, cfg, nil); len(segments) != 1 {
		t.Errorf("Expected moderate 2-run gap to stay together, got %d segments", len(segments))
	}

	// A gutter-scale gap splits the pair.
	runs[1].X = 170
	if segments := splitLineIntoColumns(runs, cfg, nil); len(segments) != 2 {
		t.Errorf("Expected strong gutter to split the pair, got %d segments", len(segments))
	}
}

func TestSplitLineIntoColumns_MixedGaps(t *testing.T) {
	cfg := DefaultConfig()

	runs := []model.TextRun{
		makeRun("aaaa", 0, 100, 20, 10),
		makeRun("bbbb", 22, 100, 20, 10),
		makeRun("cccc", 44, 100, 20, 10),
		makeRun("dddd", 164, 100, 20, 10),
		makeRun("eeee", 186, 100, 20, 10),
		makeRun("ffff", 208, 100, 20, 10),
	}

	segments := splitLineIntoColumns(runs, cfg, nil)
	if len(segments) != 2 {
		t.Fatalf("Expected 2 column segments, got %d", len(segments))
	}
	if len(segments[0]) != 3 || len(segments[1]) != 3 {
		t.Errorf("Expected 3 runs per column, got %d and %d", len(segments[0]), len(segments[1]))
	}
}

func TestSplitLineIntoColumns_SingleRun(t *testing.T) {
	runs := []model.TextRun{makeRun("only", 0, 100, 20, 10)}

	segments := splitLineIntoColumns(runs, DefaultConfig(), nil)
	if len(segments) != 1 || len(segments[0]) != 1 {
		t.Errorf("Expected single segment for single run, got %v", segments)
	}
}
