// Package segment provides contextual segmentation of ordered text-bearing
// units using normalized compression distance (NCD).
//
// The generic form works over any payload type; the block-aware form
// coalesces adjacent layout blocks that the geometric pass split but whose
// content reads as one logical unit, guarded by a horizontal-overlap check
// that keeps side-by-side columns apart.
//
// Compressed sizes are memoized per call only. A segmentation call is a
// pure function of its input and is safe to run concurrently across pages.
package segment
