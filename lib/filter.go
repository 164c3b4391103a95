package logview

// Series below this size are rendered in full regardless of the viewport:
// the bookkeeping of trimming costs more than drawing the extra points.
const skipFilterBelow = 1024

// FilterPoints trims ps to the points relevant for the viewport while
// always keeping the first and last point of ps, so that a "fit to data"
// reset stays meaningful even when the user has panned entirely off the
// data. The result never aliases ps. Re-filtering an output with the same
// viewport returns it unchanged.
func FilterPoints(ps Points, vp Viewport) Points {
	if len(ps) < skipFilterBelow {
		return ps.Clone()
	}

	start, end := ps.IndexRange(vp.Lo, vp.Hi)

	if end-start == len(ps) {
		return ps.Clone()
	}
	// Viewport entirely outside the data: just the two anchors.
	if start == end {
		return Points{ps[0], ps[len(ps)-1]}
	}

	// The anchors may already be part of the in-range block, so this can
	// overallocate by two entries, but it never reallocates.
	out := make(Points, 0, end-start+2)
	if start != 0 {
		out = append(out, ps[0])
	}
	out = append(out, ps[start:end]...)
	if end != len(ps) {
		out = append(out, ps[len(ps)-1])
	}
	return out
}

// ExtractRange returns ps[start:end] with the first and last point of ps
// attached as anchors when the slice does not already start or end with
// them. It is the fast path used when the level selector has precomputed
// one index range shared by a level's min and max chains. Anchors are
// never emitted twice in a row.
func ExtractRange(ps Points, start, end int) Points {
	if len(ps) == 0 {
		return Points{}
	}

	first, last := ps[0], ps[len(ps)-1]
	out := make(Points, 0, end-start+2)
	if start >= end || ps[start] != first {
		out = append(out, first)
	}
	out = append(out, ps[start:end]...)
	if out[len(out)-1] != last {
		out = append(out, last)
	}
	return out
}
