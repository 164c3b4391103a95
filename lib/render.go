package logview

import "math"

// DefaultMarginFraction is how far the viewport is extended past the
// visible bounds in both directions, so panning keeps drawn data beyond
// the visible edge.
const DefaultMarginFraction = 0.1

// A Viewport is the x-interval a frame wants rendered.
type Viewport struct{ Lo, Hi float64 }

// Extend widens the viewport by frac of its span in both directions.
func (v Viewport) Extend(frac float64) Viewport {
	ext := math.Abs(v.Hi-v.Lo) * frac
	return Viewport{Lo: v.Lo - ext, Hi: v.Hi + ext}
}

// A Polyline is an ordered list of drawable points with a name and color,
// consumed by the hosting renderer.
type Polyline struct {
	Name   string
	Color  string
	Width  float64
	Points Points
}

// A Quad is a filled quadrilateral in data coordinates. Envelope quads are
// meant to be drawn with a translucent fill and no stroke.
type Quad [4]Point

// A Marker is a discrete annotation at literal data coordinates, such as a
// state change decoded from a log.
type Marker struct {
	At   Point
	Text string
}

// An Annotation is a Marker bound to the identity of its source log, as
// emitted to the renderer.
type Annotation struct {
	LogID string
	At    Point
	Text  string
}

// Drawables is one frame's render output.
type Drawables struct {
	Lines       []Polyline
	Envelope    []Quad
	Annotations []Annotation
}

// FrameConfig carries the per-frame knobs owned by the hosting render
// loop. It is passed into every Assemble call instead of living in global
// state, so frames are reproducible in tests without a GUI host.
type FrameConfig struct {
	MipMap     MipMapConfig
	PixelWidth int      // plot area width in pixels, used by ModeAuto
	LineWidth  float64
	Margin     float64  // viewport extension fraction
	Envelope   bool     // shade between min and max chains
	HideLogIDs []string // log ids whose annotations are dropped
}

// DefaultFrameConfig returns the frame settings the hosting application
// starts from.
func DefaultFrameConfig() FrameConfig {
	return FrameConfig{
		MipMap:    MipMapConfig{Mode: ModeAuto},
		LineWidth: 1.5,
		Margin:    DefaultMarginFraction,
		Envelope:  true,
	}
}

// Assemble turns the given series into one frame's drawables for the
// visible bounds. It is a pure function of its inputs: every frame
// recomputes from scratch and nothing is mutated, so rendering can never
// interfere with ingestion.
func Assemble(series []*Series, bounds Viewport, cfg FrameConfig) Drawables {
	vp := bounds.Extend(cfg.Margin)

	var out Drawables
	for _, s := range series {
		assembleSeries(&out, s, vp, cfg)
	}
	for _, s := range series {
		if hidden(cfg.HideLogIDs, s.LogID) {
			continue
		}
		for _, m := range s.markers {
			out.Annotations = append(out.Annotations, Annotation{
				LogID: s.LogID,
				At:    Point{X: m.At.X + s.XOffset, Y: m.At.Y},
				Text:  m.Text,
			})
		}
	}
	return out
}

func assembleSeries(out *Drawables, s *Series, vp Viewport, cfg FrameConfig) {
	if s.Len() == 0 {
		return
	}

	// Range lookups happen in stored coordinates; the per-series x offset
	// is applied to the trimmed output.
	local := vp
	if s.XOffset != 0 {
		local = Viewport{Lo: vp.Lo - s.XOffset, Hi: vp.Hi - s.XOffset}
	}

	level, span, haveSpan := s.SelectLevel(cfg.MipMap, local, cfg.PixelWidth)
	if level == 0 {
		out.Lines = append(out.Lines, s.polyline(s.Name, FilterPoints(s.points, local), cfg.LineWidth))
		return
	}

	mins, maxs := s.Level(level)
	if len(mins) == 0 {
		// Too few samples for even one pyramid level.
		out.Lines = append(out.Lines, s.polyline(s.Name, FilterPoints(s.points, local), cfg.LineWidth))
		return
	}

	var pmin, pmax Points
	if haveSpan {
		pmin = ExtractRange(mins, span.Start, span.End)
		pmax = ExtractRange(maxs, span.Start, span.End)
	} else {
		pmin = FilterPoints(mins, local)
		pmax = FilterPoints(maxs, local)
	}

	out.Lines = append(out.Lines,
		s.polyline(s.Name+" (min)", pmin, cfg.LineWidth),
		s.polyline(s.Name+" (max)", pmax, cfg.LineWidth),
	)

	if cfg.Envelope {
		n := len(pmin)
		if len(pmax) < n {
			n = len(pmax)
		}
		for i := 0; i+1 < n; i++ {
			out.Envelope = append(out.Envelope, Quad{pmin[i], pmin[i+1], pmax[i+1], pmax[i]})
		}
	}
}

// polyline wraps trimmed points in a drawable, applying the series x
// offset. ps is always freshly allocated by the filter, so shifting in
// place is safe.
func (s *Series) polyline(name string, ps Points, width float64) Polyline {
	if s.XOffset != 0 {
		for i := range ps {
			ps[i].X += s.XOffset
		}
	}
	return Polyline{Name: name, Color: s.Color, Width: width, Points: ps}
}

func hidden(ids []string, id string) bool {
	for _, h := range ids {
		if h == id {
			return true
		}
	}
	return false
}
