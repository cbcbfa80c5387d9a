package segment

import (
	"bytes"
	"compress/flate"
	"math"
)

// compressedSizeCache memoizes compressed byte sizes within one segmentation
// call. It must never outlive a call: segmentation has to stay reentrant and
// parallel-safe across pages.
type compressedSizeCache map[string]int

// compressedSize returns the DEFLATE-compressed byte length of s. DEFLATE is
// deterministic for a fixed input and level, which keeps NCD scores stable
// across runs.
func (c compressedSizeCache) compressedSize(s string) int {
	if size, ok := c[s]; ok {
		return size
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		// flate.NewWriter only fails on an invalid level
		panic(err)
	}
	_, _ = w.Write([]byte(s))
	_ = w.Close()

	size := buf.Len()
	c[s] = size
	return size
}

// ncd computes the normalized compression distance between two strings:
// (C(a+b) - min(C(a), C(b))) / max(C(a), C(b)). Returns 0 when both strings
// are empty and 1 when exactly one is.
func (c compressedSizeCache) ncd(a, b string) float64 {
	if a == "" && b == "" {
		return 0
	}
	if a == "" || b == "" {
		return 1
	}

	ca := float64(c.compressedSize(a))
	cb := float64(c.compressedSize(b))
	cab := float64(c.compressedSize(a + b))

	maxC := math.Max(ca, cb)
	if maxC == 0 {
		return 0
	}
	return (cab - math.Min(ca, cb)) / maxC
}
