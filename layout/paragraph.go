package layout

import (
	"errors"
	"sort"
	"strings"

	"github.com/trkbt10/pageflow/model"
	"github.com/trkbt10/pageflow/text"
)

// ErrEmptyParagraph is returned when a paragraph is constructed from zero
// runs. Every line cluster is non-empty by construction, so hitting this is
// an internal invariant break, not an input problem.
var ErrEmptyParagraph = errors.New("layout: paragraph requires at least one run")

// ErrEmptyBlock is returned when a block is constructed from zero paragraphs.
var ErrEmptyBlock = errors.New("layout: block requires at least one paragraph")

// Paragraph is an ordered sequence of runs forming one physical line in
// horizontal mode, or one physical column segment in vertical mode. Run
// order follows the resolved inline direction, not input order.
type Paragraph struct {
	// Runs in inline-direction order
	Runs []model.TextRun

	// BaselineY is the representative baseline of the paragraph
	// (mean run baseline)
	BaselineY float64

	// Direction is the resolved inline direction
	Direction text.Direction
}

// NewParagraph builds a paragraph from runs, ordering them by the given
// inline direction: ltr ascending x, rtl descending x, ttb descending
// y-center.
func NewParagraph(runs []model.TextRun, direction text.Direction) (Paragraph, error) {
	if len(runs) == 0 {
		return Paragraph{}, ErrEmptyParagraph
	}

	ordered := make([]model.TextRun, len(runs))
	copy(ordered, runs)
	sort.SliceStable(ordered, func(i, j int) bool {
		switch direction {
		case text.RTL:
			return ordered[i].X > ordered[j].X
		case text.TTB:
			return ordered[i].CenterY() > ordered[j].CenterY()
		default:
			return ordered[i].X < ordered[j].X
		}
	})

	baselineSum := 0.0
	for _, r := range ordered {
		baselineSum += r.Baseline()
	}

	return Paragraph{
		Runs:      ordered,
		BaselineY: baselineSum / float64(len(ordered)),
		Direction: direction,
	}, nil
}

// Bounds returns the union of the paragraph's run boxes
func (p Paragraph) Bounds() model.Rect {
	return model.RunsBounds(p.Runs)
}

// Text returns the concatenated run text in inline-direction order
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// MaxFontSize returns the largest font size among the paragraph's runs
func (p Paragraph) MaxFontSize() float64 {
	size := 0.0
	for _, r := range p.Runs {
		if r.FontSize > size {
			size = r.FontSize
		}
	}
	return size
}

// LineHeight returns the height of the tallest run box in the paragraph
func (p Paragraph) LineHeight() float64 {
	h := 0.0
	for _, r := range p.Runs {
		if r.Height > h {
			h = r.Height
		}
	}
	return h
}

// CompactCharCount returns the number of non-whitespace code points in the
// paragraph text. Used by the body-like line heuristic.
func (p Paragraph) CompactCharCount() int {
	count := 0
	for _, r := range p.Text() {
		if !isSpaceRune(r) {
			count++
		}
	}
	return count
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ' ', '　':
		return true
	}
	return false
}
