package layout

import (
	"testing"

	"github.com/trkbt10/pageflow/model"
	"github.com/trkbt10/pageflow/text"
)

func makeParagraph(t *testing.T, runs ...model.TextRun) Paragraph {
	t.Helper()
	p, err := NewParagraph(runs, text.LTR)
	if err != nil {
		t.Fatalf("NewParagraph failed: %v", err)
	}
	return p
}

func TestNewBlock_Empty(t *testing.T) {
	if _, err := NewBlock(nil); err != ErrEmptyBlock {
		t.Errorf("Expected ErrEmptyBlock, got %v", err)
	}
}

func TestBlockBounds_WidthBuffer(t *testing.T) {
	p := makeParagraph(t, makeRun("buffered", 10, 100, 100, 10))

	block, err := NewBlock([]Paragraph{p})
	if err != nil {
		t.Fatalf("NewBlock failed: %v", err)
	}

	content := block.ContentBounds()
	if content.Width != 100 {
		t.Errorf("Expected content width 100, got %v", content.Width)
	}
	if block.Bounds.Width <= content.Width {
		t.Errorf("Expected buffered width above %v, got %v", content.Width, block.Bounds.Width)
	}
	if block.Bounds.Left() != content.Left() {
		t.Errorf("Expected buffer to extend width only, left moved from %v to %v",
			content.Left(), block.Bounds.Left())
	}
}

func TestBlockBounds_LetterSpacingSlack(t *testing.T) {
	spaced := makeRun("spaced out text run", 10, 100, 100, 10)
	spaced.CharSpacing = 2

	block, err := NewBlock([]Paragraph{makeParagraph(t, spaced)})
	if err != nil {
		t.Fatalf("NewBlock failed: %v", err)
	}

	// 19 characters at 2 units of spacing outweighs the 5% ratio buffer.
	wantBuffer := 2.0 * 19

	got := block.Bounds.Width - block.ContentBounds().Width
	if got != wantBuffer {
		t.Errorf("Expected slack buffer %v, got %v", wantBuffer, got)
	}
}

func TestBlockText_JoinsParagraphs(t *testing.T) {
	block, err := NewBlock([]Paragraph{
		makeParagraph(t, makeRun("first line", 0, 100, 80, 10)),
		makeParagraph(t, makeRun("second line", 0, 86, 80, 10)),
	})
	if err != nil {
		t.Fatalf("NewBlock failed: %v", err)
	}

	if got := block.Text(); got != "first line\nsecond line" {
		t.Errorf("Expected newline-joined text, got %q", got)
	}
}

func TestMergeParagraphs_StyleChangeSplits(t *testing.T) {
	upper := makeRun("Label", 0, 100, 30, 10)
	lower := makeRun("next", 0, 86, 30, 10)
	lower.FontName = "Times-Roman"

	blocks, err := mergeParagraphsIntoBlocks([]Paragraph{
		makeParagraph(t, upper),
		makeParagraph(t, lower),
	}, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Errorf("Expected style change to split blocks, got %d", len(blocks))
	}
}

func TestMergeParagraphs_FontSizeWithinTolerance(t *testing.T) {
	upper := makeRun("line one of body", 0, 100, 120, 10)
	lower := makeRun("line two of body", 0, 86, 120, 10.5)

	blocks, err := mergeParagraphsIntoBlocks([]Paragraph{
		makeParagraph(t, upper),
		makeParagraph(t, lower),
	}, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Errorf("Expected near-equal sizes to merge, got %d blocks", len(blocks))
	}
}

func TestMergeParagraphs_StyleShiftException(t *testing.T) {
	// A bold lead-in followed by body text: different style, but both lines
	// are wide, aligned, and tightly spaced, so they read as one paragraph.
	upper := makeRun("A bold opening sentence that runs wide", 0, 100, 200, 10)
	upper.FontName = "Helvetica-Bold"
	lower := makeRun("continues in the regular body typeface", 0, 86, 190, 10)

	blocks, err := mergeParagraphsIntoBlocks([]Paragraph{
		makeParagraph(t, upper),
		makeParagraph(t, lower),
	}, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Errorf("Expected style-shift exception to merge, got %d blocks", len(blocks))
	}
}

func TestMergeParagraphs_SideBySideColumnsNeverMerge(t *testing.T) {
	left := makeParagraph(t, makeRun("left column line", 0, 100, 100, 10))
	right := makeParagraph(t, makeRun("right column line", 300, 90, 100, 10))

	blocks, err := mergeParagraphsIntoBlocks([]Paragraph{left, right}, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Errorf("Expected side-by-side lines to stay apart, got %d blocks", len(blocks))
	}
}

func TestMergeParagraphs_InterleavedColumns(t *testing.T) {
	// Paragraph order interleaves two columns. The left column's second
	// line must still continue the left block across the right-column line.
	l1 := makeParagraph(t, makeRun("left line one", 0, 100, 100, 10))
	r1 := makeParagraph(t, makeRun("right line one", 300, 96, 100, 10))
	l2 := makeParagraph(t, makeRun("left line two", 0, 86, 100, 10))

	blocks, err := mergeParagraphsIntoBlocks([]Paragraph{l1, r1, l2}, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}

	var leftBlock *Block
	for i := range blocks {
		if blocks[i].ContentBounds().Left() == 0 {
			leftBlock = &blocks[i]
		}
	}
	if leftBlock == nil || len(leftBlock.Paragraphs) != 2 {
		t.Errorf("Expected left block with 2 paragraphs, got %+v", blocks)
	}
}

func TestMergeParagraphs_ReadingOrderOnlyAdvancesDown(t *testing.T) {
	lower := makeParagraph(t, makeRun("lower first", 0, 86, 100, 10))
	upper := makeParagraph(t, makeRun("upper after", 0, 100, 100, 10))

	blocks, err := mergeParagraphsIntoBlocks([]Paragraph{lower, upper}, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Errorf("Expected upward jump to open a new block, got %d blocks", len(blocks))
	}
}

func TestSortBlocksInReadingOrder(t *testing.T) {
	mk := func(x, y float64) Block {
		b, err := NewBlock([]Paragraph{makeParagraph(t, makeRun("b", x, y, 50, 10))})
		if err != nil {
			t.Fatalf("NewBlock failed: %v", err)
		}
		return b
	}

	blocks := []Block{mk(300, 100), mk(0, 500), mk(0, 100)}
	sorted := sortBlocksInReadingOrder(blocks)

	if sorted[0].ContentBounds().Top() != 512 {
		t.Errorf("Expected topmost block first, got top %v", sorted[0].ContentBounds().Top())
	}
	if sorted[1].ContentBounds().Left() != 0 || sorted[2].ContentBounds().Left() != 300 {
		t.Errorf("Expected same-row blocks ordered left to right, got lefts %v and %v",
			sorted[1].ContentBounds().Left(), sorted[2].ContentBounds().Left())
	}
}
