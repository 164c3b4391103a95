// Package logview implements the level of detail core of the log plotter:
// min/max mipmap pyramids over raw sample series, viewport to index range
// mapping, per-frame level selection and point trimming, plus the sample
// codecs and reporters around them.
package logview

// A Series is one plottable sequence of samples together with the identity
// the hosting application uses for labeling and filtering: the id of the
// source log, a display name and a color. The identity fields are opaque
// to everything in this package except annotation filtering by log id.
//
// A Series owns its raw points and their mipmap pyramid. The pyramid is
// mutated only by Append; every read path borrows immutable slices.
type Series struct {
	LogID string
	Name  string
	Color string

	// XOffset shifts the whole series along the x axis at assembly time,
	// in the same unit as the point x-values. It lets the host align logs
	// with adjusted start times without rewriting stored points.
	XOffset float64

	points  Points
	markers []Marker
	mipmap  *MipMap
}

// NewSeries returns an empty Series with the given identity and a default
// mipmap configuration.
func NewSeries(logID, name, color string) *Series {
	return &Series{LogID: logID, Name: name, Color: color, mipmap: NewMipMap()}
}

// Append adds a batch of samples to the series and extends the pyramid to
// cover them. The batch must continue the series in ascending x; that is
// the upstream decoder's contract (see Points).
func (s *Series) Append(batch ...Point) {
	if len(batch) == 0 {
		return
	}
	s.points = append(s.points, batch...)
	if s.mipmap == nil {
		s.mipmap = NewMipMap()
	}
	s.mipmap.Extend(s.points)
}

// Mark records a discrete annotation on the series. Annotations are drawn
// at their literal coordinates and never x-filtered, so their count is
// expected to stay small.
func (s *Series) Mark(m Marker) { s.markers = append(s.markers, m) }

// Raw returns the raw points. The slice must not be mutated.
func (s *Series) Raw() Points { return s.points }

// Len returns the number of raw points.
func (s *Series) Len() int { return len(s.points) }

// Markers returns the recorded annotations. The slice must not be mutated.
func (s *Series) Markers() []Marker { return s.markers }

// Levels returns the pyramid depth, counting the raw series as level 0.
func (s *Series) Levels() int {
	if s.mipmap == nil {
		return 1
	}
	return s.mipmap.Levels()
}

// Level returns the min/max chains of pyramid level k, clamped to the
// deepest level built. Level 0 returns nil chains, meaning "render raw".
func (s *Series) Level(k int) (mins, maxs Points) {
	if s.mipmap == nil {
		return nil, nil
	}
	return s.mipmap.LevelOrDeepest(k)
}
