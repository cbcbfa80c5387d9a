// Package model provides the shared value types for page layout analysis:
// geometry primitives (Point, Rect), the positioned TextRun leaf unit,
// blocking zones, page context, and small statistics helpers.
//
// All types in this package are immutable value types. The layout engine
// never mutates the runs it is given; derived structures reference runs by
// value only.
package model
