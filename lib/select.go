package logview

// MipMapMode determines how the level selector treats the pyramid for one
// frame.
type MipMapMode int

const (
	// ModeAuto picks the coarsest level that still yields roughly
	// pointsPerPixel points per horizontal pixel in the visible range.
	ModeAuto MipMapMode = iota
	// ModeManual forces a specific level, clamped to the built depth.
	ModeManual
	// ModeDisabled always renders the raw series.
	ModeDisabled
)

// MipMapConfig is the per-frame level selection setting. It is re-evaluated
// on every call with no memory of previous frames, so switching modes takes
// effect immediately and without side effects.
type MipMapConfig struct {
	Mode  MipMapMode
	Level int // used by ModeManual only
}

// Auto mode point budget: how many rendered points per horizontal pixel
// are acceptable before stepping to a coarser level.
const pointsPerPixel = 2

// A Span is a half-open index interval into a pyramid level's chains. The
// min and max chains of a level share window boundaries, so one Span is
// valid for both.
type Span struct{ Start, End int }

// SelectLevel chooses the pyramid level to render for the given frame. In
// Auto mode it walks the levels from fine to coarse and returns the first
// whose point count inside vp fits the pixel budget, along with the index
// range it computed; haveSpan reports whether span is usable. When even the
// deepest level exceeds the budget, the deepest level is returned. Manual
// levels are clamped to the built depth, and a series too short to have
// been pyramided always selects raw.
func (s *Series) SelectLevel(cfg MipMapConfig, vp Viewport, pixelWidth int) (level int, span Span, haveSpan bool) {
	switch cfg.Mode {
	case ModeDisabled:
		return 0, Span{}, false
	case ModeManual:
		lvl := cfg.Level
		if lvl < 0 {
			lvl = 0
		}
		if deepest := s.Levels() - 1; lvl > deepest {
			lvl = deepest
		}
		return lvl, Span{}, false
	}

	if pixelWidth <= 0 {
		return 0, Span{}, false
	}
	budget := pointsPerPixel * pixelWidth

	start, end := s.points.IndexRange(vp.Lo, vp.Hi)
	if end-start <= budget {
		return 0, Span{}, false
	}

	for lvl := 1; lvl <= s.Levels()-1; lvl++ {
		mins, _ := s.Level(lvl)
		st, en := mins.IndexRange(vp.Lo, vp.Hi)
		if en-st <= budget || lvl == s.Levels()-1 {
			return lvl, Span{Start: st, End: en}, true
		}
	}

	return 0, Span{}, false
}
