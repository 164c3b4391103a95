package logview

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

// seq returns n points with x = i, y = i+1.
func seq(n int) Points {
	ps := make(Points, n)
	for i := range ps {
		ps[i] = Point{X: float64(i), Y: float64(i + 1)}
	}
	return ps
}

func TestFilterPoints(t *testing.T) {
	t.Parallel()

	small := seq(500)
	large := seq(1500)

	for _, tc := range []struct {
		name string
		ps   Points
		vp   Viewport
		want Points
	}{
		{
			// Below the skip threshold nothing is trimmed, whatever
			// the viewport.
			name: "small series unchanged",
			ps:   small,
			vp:   Viewport{Lo: 100, Hi: 300},
			want: small,
		},
		{
			name: "partial overlap keeps anchors",
			ps:   large,
			vp:   Viewport{Lo: 100, Hi: 500},
			want: append(append(Points{{X: 0, Y: 1}}, large[100:500]...), Point{X: 1499, Y: 1500}),
		},
		{
			name: "viewport past the data keeps only anchors",
			ps:   large,
			vp:   Viewport{Lo: 2000, Hi: 3000},
			want: Points{{X: 0, Y: 1}, {X: 1499, Y: 1500}},
		},
		{
			name: "viewport covering everything",
			ps:   large,
			vp:   Viewport{Lo: -10, Hi: 10000},
			want: large,
		},
		{
			name: "prefix needs only the tail anchor",
			ps:   large,
			vp:   Viewport{Lo: -10, Hi: 500},
			want: append(large[:500].Clone(), Point{X: 1499, Y: 1500}),
		},
		{
			name: "suffix needs only the head anchor",
			ps:   large,
			vp:   Viewport{Lo: 1000, Hi: 10000},
			want: append(Points{{X: 0, Y: 1}}, large[1000:]...),
		},
		{
			name: "empty input",
			ps:   Points{},
			vp:   Viewport{Lo: 0, Hi: 100},
			want: Points{},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterPoints(tc.ps, tc.vp)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("FilterPoints mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterPointsDoesNotAlias(t *testing.T) {
	t.Parallel()

	ps := seq(100)
	got := FilterPoints(ps, Viewport{Lo: 0, Hi: 100})
	got[0].Y = -1
	if ps[0].Y != 1 {
		t.Errorf("filtered output aliases input: %v", ps[0])
	}
}

func TestFilterPointsProperties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 3000).Draw(t, "n")
		ps := seq(n)
		lo := rapid.Float64Range(-100, float64(n)+100).Draw(t, "lo")
		hi := rapid.Float64Range(lo, float64(n)+100).Draw(t, "hi")
		vp := Viewport{Lo: lo, Hi: hi}

		got := FilterPoints(ps, vp)

		// First and last point survive any viewport.
		if got[0] != ps[0] || got[len(got)-1] != ps[n-1] {
			t.Fatalf("anchors lost: got [%v .. %v], want [%v .. %v]",
				got[0], got[len(got)-1], ps[0], ps[n-1])
		}

		// Filtering an already filtered result is the identity.
		again := FilterPoints(got, vp)
		if !reflect.DeepEqual(got, again) {
			t.Fatalf("not idempotent: %v != %v", got, again)
		}
	})
}

func TestExtractRange(t *testing.T) {
	t.Parallel()

	ps := seq(8)

	for _, tc := range []struct {
		name       string
		ps         Points
		start, end int
		want       Points
	}{
		{"empty input", Points{}, 0, 0, Points{}},
		{"full range", ps, 0, 8, ps},
		{"interior", ps, 2, 5, Points{ps[0], ps[2], ps[3], ps[4], ps[7]}},
		{"empty range", ps, 3, 3, Points{ps[0], ps[7]}},
		{"prefix", ps, 0, 4, Points{ps[0], ps[1], ps[2], ps[3], ps[7]}},
		{"suffix", ps, 4, 8, Points{ps[0], ps[4], ps[5], ps[6], ps[7]}},
		{"single point series", seq(1), 0, 1, seq(1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractRange(tc.ps, tc.start, tc.end)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ExtractRange(%d, %d) mismatch (-want +got):\n%s", tc.start, tc.end, diff)
			}
		})
	}
}
