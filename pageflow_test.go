package pageflow

import (
	"errors"
	"testing"

	"github.com/trkbt10/pageflow/layout"
	"github.com/trkbt10/pageflow/model"
	"github.com/trkbt10/pageflow/segment"
)

func pageRuns() []model.TextRun {
	mk := func(content string, x, y, width, fontSize float64) model.TextRun {
		return model.TextRun{
			Text:     content,
			X:        x,
			Y:        y,
			Width:    width,
			Height:   fontSize * 1.2,
			FontName: "Helvetica",
			FontSize: fontSize,
		}
	}
	return []model.TextRun{
		mk("Document Title", 100, 720, 300, 24),
		mk("The opening line of the body", 50, 680, 220, 10),
		mk("continues on the next line", 50, 666, 220, 10),
	}
}

func TestAnalyze(t *testing.T) {
	blocks, err := Analyze(pageRuns(), &model.PageContext{PageWidth: 612, PageHeight: 792})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Text() != "Document Title" {
		t.Errorf("Expected title block first, got %q", blocks[0].Text())
	}
	if len(blocks[1].Paragraphs) != 2 {
		t.Errorf("Expected 2 paragraphs in body block, got %d", len(blocks[1].Paragraphs))
	}
}

func TestAnalyzeWithConfig(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.VerticalGapRatio = 0.05

	blocks, err := AnalyzeWithConfig(pageRuns(), &model.PageContext{PageWidth: 612}, cfg)
	if err != nil {
		t.Fatalf("AnalyzeWithConfig failed: %v", err)
	}
	// The tight gap ratio splits the two body lines apart.
	if len(blocks) != 3 {
		t.Errorf("Expected 3 blocks with tight gap ratio, got %d", len(blocks))
	}
}

func TestAnalyzeWithConfig_Invalid(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.LineToleranceRatio = 0

	if _, err := AnalyzeWithConfig(pageRuns(), nil, cfg); err == nil {
		t.Error("Expected error for invalid config, got nil")
	}
}

func TestSegmentBlocks(t *testing.T) {
	blocks, err := Analyze(pageRuns(), &model.PageContext{PageWidth: 612})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	result, err := SegmentBlocks(blocks, segment.DefaultBlockConfig())
	if err != nil {
		t.Fatalf("SegmentBlocks failed: %v", err)
	}

	total := 0
	for _, seg := range result.Segments {
		total += len(seg.Units)
	}
	if total != len(blocks) {
		t.Errorf("Expected every block in exactly one segment, got %d of %d", total, len(blocks))
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Expected 42, got %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for non-nil error")
		}
	}()
	Must(0, errors.New("boom"))
}
