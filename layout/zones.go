package layout

import (
	"github.com/trkbt10/pageflow/model"
)

// zoneSeparatesHorizontally reports whether any blocking zone lies between
// two horizontally adjacent rectangles. A zone that fully contains both
// rectangles is a container and never separates them.
func zoneSeparatesHorizontally(zones []model.BlockingZone, a, b model.Rect) bool {
	left, right := a, b
	if left.Left() > right.Left() {
		left, right = right, left
	}

	gapLeft := left.Right()
	gapRight := right.Left()
	if gapRight <= gapLeft {
		return false // no gap to separate
	}

	pair := a.Union(b)
	for _, zone := range zones {
		if zone.ContainsRect(pair) {
			continue // container zone
		}
		if zone.VerticalOverlap(pair) <= 0 {
			continue
		}
		if zone.Right() > gapLeft && zone.Left() < gapRight {
			return true
		}
	}
	return false
}

// zoneSeparatesVertically reports whether any blocking zone lies between two
// vertically adjacent rectangles (upper above lower). The container-zone
// exception applies here as well.
func zoneSeparatesVertically(zones []model.BlockingZone, upper, lower model.Rect) bool {
	if upper.Bottom() < lower.Bottom() {
		upper, lower = lower, upper
	}

	gapTop := upper.Bottom()
	gapBottom := lower.Top()
	if gapTop <= gapBottom {
		return false
	}

	pair := upper.Union(lower)
	for _, zone := range zones {
		if zone.ContainsRect(pair) {
			continue
		}
		if zone.HorizontalOverlap(pair) <= 0 {
			continue
		}
		if zone.Top() > gapBottom && zone.Bottom() < gapTop {
			return true
		}
	}
	return false
}
