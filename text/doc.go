// Package text provides writing-mode and inline-direction detection for
// positioned text runs. Detection is heuristic: glyph-box aspect ratios and
// nearest-neighbor flow decide between horizontal and vertical writing, and
// Unicode bidirectional classes decide between left-to-right and
// right-to-left inline direction. Ambiguous input falls back to horizontal
// and left-to-right.
package text
