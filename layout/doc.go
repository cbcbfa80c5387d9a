// Package layout groups a page's positioned text runs into lines, columns,
// paragraphs, and ordered blocks.
//
// The analysis is purely geometric and heuristic: baselines cluster runs
// into lines, gap statistics split lines into segments and columns, an
// occupancy histogram finds page-level gutters, and style continuity merges
// lines into blocks. Vertical writing uses a separate column-clustering
// path. Blocking zones (rectangles from vector graphics) can veto merges,
// except when a zone contains both sides of a candidate merge.
//
// Every operation is a pure function of its input: no randomness, no clock,
// no shared state. Identical input and configuration always produce
// identical output, so pages may be analyzed in parallel by the caller.
package layout
