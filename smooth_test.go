package morph

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// d2Start and d2End evaluate a cubic's second derivative at its ends.

func d2Start(c CubicBez) Vec3 {
	return Vec3(c.P0).Sub(Vec3(c.P1).Mul(2)).Add(Vec3(c.P2)).Mul(6)
}

func d2End(c CubicBez) Vec3 {
	return Vec3(c.P1).Sub(Vec3(c.P2).Mul(2)).Add(Vec3(c.P3)).Mul(6)
}

func TestSmoothHandlesOpen(t *testing.T) {
	anchors := []Point3{
		Pt(0, 0, 0),
		Pt(2, 3, 1),
		Pt(5, 1, -1),
		Pt(7, 4, 0),
		Pt(9, 0, 2),
	}
	h1, h2 := SmoothHandles(anchors, 0)
	n := len(anchors) - 1
	if len(h1) != n || len(h2) != n {
		t.Fatalf("got %d and %d handles, want %d each", len(h1), len(h2), n)
	}

	curves := make([]CubicBez, n)
	for i := range curves {
		curves[i] = CubicBez{anchors[i], h1[i], h2[i], anchors[i+1]}
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	for i := 0; i < n-1; i++ {
		// First and second derivatives agree where consecutive curves
		// meet.
		diff(t, curves[i].Differentiate().Eval(1), curves[i+1].Differentiate().Eval(0), approx)
		diff(t, d2End(curves[i]), d2Start(curves[i+1]), approx)
	}
	// The curvature vanishes at the open ends.
	diff(t, Vec(0, 0, 0), d2Start(curves[0]), approx)
	diff(t, Vec(0, 0, 0), d2End(curves[n-1]), approx)
}

func TestSmoothHandlesClosed(t *testing.T) {
	anchors := []Point3{
		Pt(0, 0, 0),
		Pt(3, 0, 0),
		Pt(3, 3, 0),
		Pt(0, 3, 0),
		Pt(0, 0, 0),
	}
	h1, h2 := SmoothHandles(anchors, 0)
	if len(h1) != 4 || len(h2) != 4 {
		t.Fatalf("got %d and %d handles, want 4 each", len(h1), len(h2))
	}

	loop := []Point3{anchors[0], anchors[1], anchors[2], anchors[3]}
	curves := make([]CubicBez, 4)
	for i := range curves {
		curves[i] = CubicBez{loop[i], h1[i], h2[i], loop[(i+1)%4]}
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	for i := range curves {
		// Derivatives agree at every join, including the seam back to the
		// start.
		next := curves[(i+1)%4]
		diff(t, curves[i].Differentiate().Eval(1), next.Differentiate().Eval(0), approx)
		diff(t, d2End(curves[i]), d2Start(next), approx)
	}

	// With two anchors the cyclic system has a closed form: each handle
	// lands on an anchor.
	a, b := Pt(0, 0, 0), Pt(4, 2, -2)
	h1, h2 = SmoothHandles([]Point3{a, b, a}, 0)
	diff(t, []Point3{a, b}, h1, approx)
	diff(t, []Point3{b, a}, h2, approx)
}

func TestSmoothHandlesDegenerate(t *testing.T) {
	if h1, h2 := SmoothHandles(nil, 0); h1 != nil || h2 != nil {
		t.Error("no anchors should yield no handles")
	}
	if h1, h2 := SmoothHandles([]Point3{Pt(1, 1, 1)}, 0); h1 != nil || h2 != nil {
		t.Error("a single anchor should yield no handles")
	}

	// A single open curve keeps its handles on the chord.
	h1, h2 := SmoothHandles([]Point3{Pt(0, 0, 0), Pt(3, 0, 0)}, 0)
	diff(t, []Point3{Pt(1, 0, 0)}, h1)
	diff(t, []Point3{Pt(2, 0, 0)}, h2)

	// A generous tolerance can declare a pair of anchors closed, which
	// collapses the loop's handles onto its only anchor.
	h1, h2 = SmoothHandles([]Point3{Pt(0, 0, 0), Pt(0.5, 0, 0)}, 1)
	diff(t, []Point3{Pt(0, 0, 0)}, h1)
	diff(t, []Point3{Pt(0, 0, 0)}, h2)
}

func TestMakeSmooth(t *testing.T) {
	p := square(3)
	p.MakeSmooth()
	if n := p.NumCurves(); n != 4 {
		t.Fatalf("got %d curves, want 4", n)
	}
	diff(t, square(3).StartAnchors(), p.StartAnchors())
	diff(t, square(3).EndAnchors(), p.EndAnchors())

	curves := slices.Collect(p.Curves())
	approx := cmpopts.EquateApprox(0, 1e-9)
	for i := range curves {
		next := curves[(i+1)%len(curves)]
		diff(t, curves[i].Differentiate().Eval(1), next.Differentiate().Eval(0), approx)
		diff(t, d2End(curves[i]), d2Start(next), approx)
	}

	// Straightening the handles again restores the original square.
	p.MakeJagged()
	diff(t, square(3).Points, p.Points)
}

func TestSetSmooth(t *testing.T) {
	anchors := []Point3{Pt(0, 0, 0), Pt(2, 3, 0), Pt(5, 1, 0), Pt(7, 4, 0)}

	p := &Path{}
	p.SetSmooth(anchors...)

	want := &Path{}
	want.SetCorners(anchors...)
	want.MakeSmooth()
	diff(t, want.Points, p.Points)
	diff(t, anchors[:3], p.StartAnchors())
}

func TestMakeJagged(t *testing.T) {
	p := &Path{}
	err := p.SetAnchorsAndHandles(
		[]Point3{Pt(0, 0, 0), Pt(3, 0, 0)},
		[]Point3{Pt(-2, 8, 1), Pt(5, -9, 2)},
		[]Point3{Pt(4, 7, -3), Pt(-1, 6, 0)},
		[]Point3{Pt(3, 0, 0), Pt(3, 3, 0)},
	)
	if err != nil {
		t.Fatal(err)
	}
	p.MakeJagged()

	want := &Path{}
	want.SetCorners(Pt(0, 0, 0), Pt(3, 0, 0), Pt(3, 3, 0))
	diff(t, want.Points, p.Points)

	// Rebuilding drops a pending subpath start.
	p.MoveTo(Pt(9, 9, 9))
	p.MakeJagged()
	if len(p.Points) != 8 {
		t.Errorf("got %d points, want 8", len(p.Points))
	}
}

func TestMakeSmoothSubpaths(t *testing.T) {
	p := &Path{}
	p.SetCorners(Pt(0, 0, 0), Pt(2, 1, 0), Pt(4, 0, 0), Pt(6, 2, 0))
	q := &Path{}
	q.SetCorners(Pt(10, 0, 0), Pt(12, 1, 0), Pt(14, 0, 0), Pt(16, 2, 0))
	p.AppendPath(q)

	before := p.Clone()
	p.MakeSmooth()
	if subs := p.Subpaths(); len(subs) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(subs))
	}
	diff(t, before.StartAnchors(), p.StartAnchors())
	diff(t, before.EndAnchors(), p.EndAnchors())

	// Each subpath is smoothed on its own, with its own natural ends.
	curves := slices.Collect(p.Curves())
	approx := cmpopts.EquateApprox(0, 1e-9)
	diff(t, Vec(0, 0, 0), d2Start(curves[0]), approx)
	diff(t, Vec(0, 0, 0), d2End(curves[2]), approx)
	diff(t, Vec(0, 0, 0), d2Start(curves[3]), approx)
	diff(t, Vec(0, 0, 0), d2End(curves[5]), approx)
	diff(t, curves[0].Differentiate().Eval(1), curves[1].Differentiate().Eval(0), approx)
	diff(t, curves[3].Differentiate().Eval(1), curves[4].Differentiate().Eval(0), approx)
}

func BenchmarkSmoothHandles(b *testing.B) {
	for _, n := range []int{4, 16, 64, 256} {
		anchors := make([]Point3, n)
		for i := range anchors {
			ts := float64(i) / float64(n)
			anchors[i] = Pt(math.Cos(ts*math.Pi), math.Sin(ts*math.Pi), ts)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for range b.N {
				SmoothHandles(anchors, 0)
			}
		})
	}
}
