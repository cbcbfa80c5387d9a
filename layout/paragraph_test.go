package layout

import (
	"testing"

	"github.com/trkbt10/pageflow/model"
	"github.com/trkbt10/pageflow/text"
)

func TestNewParagraph_Empty(t *testing.T) {
	if _, err := NewParagraph(nil, text.LTR); err != ErrEmptyParagraph {
		t.Errorf("Expected ErrEmptyParagraph, got %v", err)
	}
}

func TestNewParagraph_OrdersByDirection(t *testing.T) {
	a := makeRun("a", 0, 100, 20, 10)
	b := makeRun("b", 30, 100, 20, 10)

	tests := []struct {
		name      string
		direction text.Direction
		runs      []model.TextRun
		wantFirst string
	}{
		{"ltr ascending x", text.LTR, []model.TextRun{b, a}, "a"},
		{"rtl descending x", text.RTL, []model.TextRun{a, b}, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParagraph(tt.runs, tt.direction)
			if err != nil {
				t.Fatalf("NewParagraph failed: %v", err)
			}
			if p.Runs[0].Text != tt.wantFirst {
				t.Errorf("Expected %q first, got %q", tt.wantFirst, p.Runs[0].Text)
			}
		})
	}
}

func TestNewParagraph_VerticalOrdersTopDown(t *testing.T) {
	upper := makeVerticalRun("上", 500, 400)
	lower := makeVerticalRun("下", 500, 340)

	p, err := NewParagraph([]model.TextRun{lower, upper}, text.TTB)
	if err != nil {
		t.Fatalf("NewParagraph failed: %v", err)
	}
	if p.Runs[0].Text != "上" {
		t.Errorf("Expected top run first, got %q", p.Runs[0].Text)
	}
}

func TestParagraph_BaselineIsMean(t *testing.T) {
	a := makeRun("a", 0, 100, 20, 10) // baseline 102
	b := makeRun("b", 30, 102, 20, 10)

	p, err := NewParagraph([]model.TextRun{a, b}, text.LTR)
	if err != nil {
		t.Fatalf("NewParagraph failed: %v", err)
	}
	if p.BaselineY != 103 {
		t.Errorf("Expected mean baseline 103, got %v", p.BaselineY)
	}
}

func TestParagraph_Text(t *testing.T) {
	p, err := NewParagraph([]model.TextRun{
		makeRun("world", 60, 100, 50, 10),
		makeRun("Hello ", 0, 100, 50, 10),
	}, text.LTR)
	if err != nil {
		t.Fatalf("NewParagraph failed: %v", err)
	}
	if got := p.Text(); got != "Hello world" {
		t.Errorf("Expected %q, got %q", "Hello world", got)
	}
}

func TestParagraph_CompactCharCount(t *testing.T) {
	p := makeParagraph(t, makeRun("a b　c", 0, 100, 50, 10))
	if got := p.CompactCharCount(); got != 3 {
		t.Errorf("Expected 3 compact chars, got %d", got)
	}
}

func TestParagraph_MaxFontSizeAndLineHeight(t *testing.T) {
	small := makeRun("small", 0, 100, 40, 10)
	big := makeRun("big", 50, 100, 40, 18)

	p := makeParagraph(t, small, big)
	if got := p.MaxFontSize(); got != 18 {
		t.Errorf("Expected max font size 18, got %v", got)
	}
	if got := p.LineHeight(); got != big.Height {
		t.Errorf("Expected line height %v, got %v", big.Height, got)
	}
}
