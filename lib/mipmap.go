package logview

const (
	// DefaultDecimationFactor is the number of entries of level k-1 that
	// collapse into one (min,max) pair of level k.
	DefaultDecimationFactor = 2

	// DefaultMinLevelSize is the level length below which no further
	// levels are built. Below a few hundred points per level, rendering
	// the finer data directly is cheaper than another decimation step.
	DefaultMinLevelSize = 512
)

// A MipMap holds progressively coarser min/max envelopes of a raw series.
// Level 0 is the raw series itself and is never materialized here. Each
// entry of level k (k >= 1) summarizes a window of Factor consecutive
// entries of level k-1, keeping the source point with the smallest y on the
// min chain and the one with the largest y on the max chain, ties broken by
// earliest x. The kept points retain their original x, so level x-values
// are not evenly spaced.
//
// The pyramid grows append-only: Extend recomputes only the tail group of
// each level that the newly appended raw points can have touched. Building
// uses comparisons only, so the result is a pure function of the input
// order.
type MipMap struct {
	factor  int
	minSize int
	mins    [][]Point // mins[k-1] is the min chain of level k
	maxs    [][]Point
	raw     int // raw points consumed so far
}

// NewMipMap returns a MipMap with the default decimation factor and
// minimum level size.
func NewMipMap() *MipMap {
	return NewMipMapWith(DefaultDecimationFactor, DefaultMinLevelSize)
}

// NewMipMapWith returns a MipMap with the given decimation factor and
// minimum level size. Out of range values fall back to the defaults.
func NewMipMapWith(factor, minSize int) *MipMap {
	if factor < 2 {
		factor = DefaultDecimationFactor
	}
	if minSize < 1 {
		minSize = DefaultMinLevelSize
	}
	return &MipMap{factor: factor, minSize: minSize}
}

// Levels returns the number of levels, counting the raw series as level 0.
// An empty or unpyramided series reports 1.
func (m *MipMap) Levels() int { return len(m.mins) + 1 }

// Level returns the min and max chains of level k. Level 0 and any level
// that has not been built return nil chains; callers treat nil as "render
// the raw series".
func (m *MipMap) Level(k int) (mins, maxs Points) {
	if k < 1 || k > len(m.mins) {
		return nil, nil
	}
	return m.mins[k-1], m.maxs[k-1]
}

// LevelOrDeepest returns the chains of level k, clamped to the deepest
// level built. Like Level, level 0 yields nil chains.
func (m *MipMap) LevelOrDeepest(k int) (mins, maxs Points) {
	if k > len(m.mins) {
		k = len(m.mins)
	}
	return m.Level(k)
}

// Extend brings the pyramid up to date with the raw series after points
// have been appended to it. raw must be the full series, not just the new
// tail. Only the last group of each level is recomputed; a new entry is
// appended to a level once enough source entries arrive to start the next
// window, and a new level is started once the previous one grows past the
// minimum level size.
func (m *MipMap) Extend(raw Points) {
	if len(raw) <= m.raw {
		return
	}
	prev := m.raw
	m.raw = len(raw)

	srcMin, srcMax := raw, raw
	for k := 0; ; k++ {
		n := len(srcMin)
		ln := (n + m.factor - 1) / m.factor
		if ln < m.minSize || ln >= n {
			break
		}
		if k == len(m.mins) {
			m.mins = append(m.mins, make(Points, 0, ln))
			m.maxs = append(m.maxs, make(Points, 0, ln))
		}

		// Source entries at index >= prev may have changed, so every
		// group from the one holding index prev onward is recomputed.
		// Entries before it are final and stay untouched.
		dirty := prev / m.factor
		if built := len(m.mins[k]); dirty > built {
			dirty = built
		}
		m.mins[k] = m.mins[k][:dirty]
		m.maxs[k] = m.maxs[k][:dirty]

		for g := dirty; g < ln; g++ {
			lo := g * m.factor
			hi := lo + m.factor
			if hi > n {
				hi = n
			}
			mn, mx := srcMin[lo], srcMax[lo]
			for i := lo + 1; i < hi; i++ {
				if srcMin[i].Y < mn.Y {
					mn = srcMin[i]
				}
				if srcMax[i].Y > mx.Y {
					mx = srcMax[i]
				}
			}
			m.mins[k] = append(m.mins[k], mn)
			m.maxs[k] = append(m.maxs[k], mx)
		}

		srcMin, srcMax = m.mins[k], m.maxs[k]
		prev = dirty
	}
}
