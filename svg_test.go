package morph

import (
	"errors"
	"math"
	"strings"
	"testing"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("sink full") }

func TestWriteSVG(t *testing.T) {
	want := "M0,0 C1,0 2,0 3,0 C3,1 3,2 3,3 C2,3 1,3 0,3 C0,2 0,1 0,0 Z"
	diff(t, want, square(3).SVG(SVGOptions{}))

	// A second subpath gets its own moveto; only closed subpaths end in
	// Z.
	p := square(3)
	p.MoveTo(Pt(10, 0, 0))
	if err := p.LineTo(Pt(13, 0, 0)); err != nil {
		t.Fatal(err)
	}
	want += " M10,0 C11,0 12,0 13,0"
	diff(t, want, p.SVG(SVGOptions{}))

	diff(t, "", (&Path{}).SVG(SVGOptions{}))

	// A lone subpath start has no curve to render.
	dot := &Path{}
	dot.MoveTo(Pt(1, 2, 0))
	diff(t, "", dot.SVG(SVGOptions{}))

	if err := square(3).WriteSVG(failWriter{}, SVGOptions{}); err == nil {
		t.Error("writing to a failing writer succeeded")
	}
}

func TestWriteSVGPrecision(t *testing.T) {
	p := &Path{}
	p.MoveTo(Pt(1.25, 0.5, 0))
	if err := p.LineTo(Pt(120, 3, 0)); err != nil {
		t.Fatal(err)
	}
	// Trailing zeros are trimmed, which leaves whole numbers with a
	// bare decimal point; exact ties round to even.
	diff(t, "M1.2,0.5 C40.8,1.3 80.4,2.2 120.,3.", p.SVG(SVGOptions{MaxPrecision: 1}))
	diff(t, "M1.25,0.5 C40.83,1.33 80.42,2.17 120.,3.", p.SVG(SVGOptions{MaxPrecision: 2}))
}

func TestParsePathLines(t *testing.T) {
	got, err := ParsePath("M0 1 L3 1 l3 0 H9 h3 V4 v3 Z")
	if err != nil {
		t.Fatal(err)
	}
	want := &Path{}
	want.MoveTo(Pt(0, 1, 0))
	for _, pt := range []Point3{
		Pt(3, 1, 0), Pt(6, 1, 0), Pt(9, 1, 0), Pt(12, 1, 0), Pt(12, 4, 0), Pt(12, 7, 0),
	} {
		if err := want.LineTo(pt); err != nil {
			t.Fatal(err)
		}
	}
	if err := want.ClosePath(); err != nil {
		t.Fatal(err)
	}
	diff(t, want.Points, got.Points)
}

func TestParsePathCubics(t *testing.T) {
	got, err := ParsePath("M0 0 C1 0 2 1 3 1 s2 1 3 0")
	if err != nil {
		t.Fatal(err)
	}
	want := &Path{}
	want.MoveTo(Pt(0, 0, 0))
	if err := want.CubicTo(Pt(1, 0, 0), Pt(2, 1, 0), Pt(3, 1, 0)); err != nil {
		t.Fatal(err)
	}
	// The smooth segment's first handle mirrors the previous second
	// handle across the shared anchor.
	if err := want.CubicTo(Pt(4, 1, 0), Pt(5, 2, 0), Pt(6, 1, 0)); err != nil {
		t.Fatal(err)
	}
	diff(t, want.Points, got.Points)

	// Without a preceding curve command the smooth handle collapses
	// onto the current point.
	got, err = ParsePath("M1 1 S2 2 3 1")
	if err != nil {
		t.Fatal(err)
	}
	want = &Path{}
	want.MoveTo(Pt(1, 1, 0))
	if err := want.CubicTo(Pt(1, 1, 0), Pt(2, 2, 0), Pt(3, 1, 0)); err != nil {
		t.Fatal(err)
	}
	diff(t, want.Points, got.Points)
}

func TestParsePathQuads(t *testing.T) {
	got, err := ParsePath("M0 0 Q1 2 2 0 t2 0")
	if err != nil {
		t.Fatal(err)
	}
	want := &Path{}
	want.MoveTo(Pt(0, 0, 0))
	if err := want.QuadTo(Pt(1, 2, 0), Pt(2, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := want.QuadTo(Pt(3, -2, 0), Pt(4, 0, 0)); err != nil {
		t.Fatal(err)
	}
	diff(t, want.Points, got.Points)
}

func TestParsePathImplicit(t *testing.T) {
	// Extra pairs after a moveto draw lines.
	got, err := ParsePath("M0 0 1 1 2 0")
	if err != nil {
		t.Fatal(err)
	}
	want := &Path{}
	want.MoveTo(Pt(0, 0, 0))
	if err := want.LineTo(Pt(1, 1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := want.LineTo(Pt(2, 0, 0)); err != nil {
		t.Fatal(err)
	}
	diff(t, want.Points, got.Points)

	// A relative moveto on an empty path is absolute; its extra pairs
	// are relative linetos.
	got, err = ParsePath("m1 1 1 1")
	if err != nil {
		t.Fatal(err)
	}
	want = &Path{}
	want.MoveTo(Pt(1, 1, 0))
	if err := want.LineTo(Pt(2, 2, 0)); err != nil {
		t.Fatal(err)
	}
	diff(t, want.Points, got.Points)

	// Numbers may run together where a sign separates them, and may
	// use exponents.
	got, err = ParsePath("M0 0L1-1")
	if err != nil {
		t.Fatal(err)
	}
	want = &Path{}
	want.MoveTo(Pt(0, 0, 0))
	if err := want.LineTo(Pt(1, -1, 0)); err != nil {
		t.Fatal(err)
	}
	diff(t, want.Points, got.Points)

	got, err = ParsePath("M1e1 -2.5e-1 L2e1 0")
	if err != nil {
		t.Fatal(err)
	}
	want = &Path{}
	want.MoveTo(Pt(10, -0.25, 0))
	if err := want.LineTo(Pt(20, 0, 0)); err != nil {
		t.Fatal(err)
	}
	diff(t, want.Points, got.Points)
}

func TestParsePathErrors(t *testing.T) {
	for _, tt := range []struct {
		data string
		msg  string
	}{
		{"L1 2", "must begin with a moveto"},
		{"5 5", "expected a command"},
		{"M1 2 X3", `unknown command 'X'`},
		{"M1 2 L", "expected a number"},
		{"M", "expected a number"},
		{"M0 0 L1 0 Z 5", "after closepath"},
	} {
		_, err := ParsePath(tt.data)
		if err == nil {
			t.Errorf("ParsePath(%q) succeeded", tt.data)
			continue
		}
		if !strings.Contains(err.Error(), tt.msg) {
			t.Errorf("ParsePath(%q) = %q, want it to mention %q", tt.data, err, tt.msg)
		}
	}

	// Empty input is an empty path.
	p, err := ParsePath("  ")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0, len(p.Points))
}

func TestParsePathArcs(t *testing.T) {
	// A unit semicircle below the chord.
	p, err := ParsePath("M0 0 A1 1 0 0 1 2 0")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 4, p.NumCurves())
	diff(t, Pt(0, 0, 0), p.Points[0])
	diff(t, Pt(1, -1, 0), p.Points[7], near(1e-9))
	// The final anchor snaps to the exact endpoint.
	diff(t, Pt(2, 0, 0), p.Points[len(p.Points)-1])
	if length := p.ArcLength(0); math.Abs(length-math.Pi) > 2e-3 {
		t.Errorf("semicircle length %v, want about %v", length, math.Pi)
	}

	// The large, unswept variant runs above the chord.
	p, err = ParsePath("M0 0 A1 1 0 1 0 2 0")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 4, p.NumCurves())
	diff(t, Pt(1, 1, 0), p.Points[7], near(1e-9))
	diff(t, Pt(2, 0, 0), p.Points[len(p.Points)-1])

	// Radii too small to span the endpoints are scaled up.
	p, err = ParsePath("M0 0 A0.1 0.1 0 0 1 2 0")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 4, p.NumCurves())
	diff(t, Pt(1, -1, 0), p.Points[7], near(1e-9))

	// A zero radius degenerates to a line.
	p, err = ParsePath("M0 0 A0 5 0 0 1 3 0")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point3{Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0), Pt(3, 0, 0)}, p.Points)

	// Coincident endpoints produce nothing.
	p, err = ParsePath("M1 1 A2 2 0 0 1 1 1")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point3{Pt(1, 1, 0)}, p.Points)
}

func TestSVGRoundTrip(t *testing.T) {
	svg := square(3).SVG(SVGOptions{})
	p, err := ParsePath(svg)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, square(3).Points, p.Points)
	diff(t, svg, p.SVG(SVGOptions{}))

	multi := square(3)
	multi.MoveTo(Pt(10, 0, 0))
	if err := multi.LineTo(Pt(13, 0, 0)); err != nil {
		t.Fatal(err)
	}
	svg = multi.SVG(SVGOptions{})
	p, err = ParsePath(svg)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, multi.Points, p.Points)
	diff(t, svg, p.SVG(SVGOptions{}))
}
