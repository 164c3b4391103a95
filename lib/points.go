package logview

import "sort"

// A Point is a single sample of a series: X is a timestamp in nanoseconds
// from the upstream log decoder, Y the sampled value.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Points is a slice of samples ordered by ascending X. Upstream decoders
// are responsible for the sort order; it is not re-validated here.
type Points []Point

// IndexRange returns the bounds of the maximal contiguous sub-slice of ps
// with lo <= x < hi, so that ps[start:end] is exactly the points inside the
// half-open interval. Both bounds come from a lower-bound binary search:
// no points in range yields start == end, everything in range yields
// (0, len(ps)). Because a pyramid level's min and max chains share window
// boundaries, a range computed against either chain is valid for both.
func (ps Points) IndexRange(lo, hi float64) (start, end int) {
	start = sort.Search(len(ps), func(i int) bool { return ps[i].X >= lo })
	end = sort.Search(len(ps), func(i int) bool { return ps[i].X >= hi })
	return start, end
}

// Clone returns a copy of ps that shares no storage with it.
func (ps Points) Clone() Points {
	if ps == nil {
		return nil
	}
	return append(make(Points, 0, len(ps)), ps...)
}
