package morph

import (
	"fmt"
)

// InsertCurves splits existing curves in place so that the path gains n
// curves without changing its shape. The splits are distributed as evenly
// as possible across the existing curves. A pending subpath start is
// preserved; a lone point grows into n degenerate curves.
func (p *Path) InsertCurves(n int) {
	pending := p.hasPendingMove()
	var start Point3
	if pending {
		start = p.Points[len(p.Points)-1]
	}
	p.Points = insertCurvesInto(p.Points, n)
	if pending {
		p.Points = append(p.Points, start)
	}
}

func repeatPoint(pt Point3, n int) []Point3 {
	out := make([]Point3, n)
	for i := range out {
		out[i] = pt
	}
	return out
}

// insertCurvesInto returns a new buffer with n curves added by splitting
// the complete curves of points. A single point repeats into n degenerate
// curves. Incomplete trailing chunks are dropped.
func insertCurvesInto(points []Point3, n int) []Point3 {
	if len(points) == 1 {
		return repeatPoint(points[0], 4*n)
	}
	curr := len(points) / 4
	target := curr + n
	if curr == 0 {
		return nil
	}

	// With curr = 10 and target = 15 the index list reads
	// [0 0 1 2 2 3 4 4 5 6 6 7 8 8 9]: curve k appears once per piece it
	// should be split into.
	splits := make([]int, curr)
	for i := range target {
		splits[i*curr/target]++
	}

	out := make([]Point3, 0, 4*target)
	for ci := range curr {
		c := CubicBez{points[4*ci], points[4*ci+1], points[4*ci+2], points[4*ci+3]}
		sf := splits[ci]
		for i := range sf {
			sub := c.Subsegment(float64(i)/float64(sf), float64(i+1)/float64(sf))
			out = append(out, sub.P0, sub.P1, sub.P2, sub.P3)
		}
	}
	return out
}

func allPointsWithin(pts []Point3, ref Point3, tol float64) bool {
	for _, pt := range pts {
		if !pointsWithin(pt, ref, tol) {
			return false
		}
	}
	return true
}

// AlignWith mutates p and o into buffers of equal length tracing the same
// shapes, splitting curves and padding missing subpaths with degenerate
// ones. Styles are reconciled first. Afterwards the two paths can be
// blended pointwise with [Path.Interpolate].
func (p *Path) AlignWith(o *Path) error {
	p.AlignStyle(o)
	if len(p.Points) == len(o.Points) {
		return nil
	}

	for _, path := range []*Path{p, o} {
		// An empty path contributes a null curve at its center, a pending
		// subpath start one at its own position.
		if len(path.Points) == 0 {
			path.MoveTo(path.Center())
		}
		if path.hasPendingMove() {
			if err := path.LineTo(path.Points[len(path.Points)-1]); err != nil {
				return err
			}
		}
	}

	subs1 := p.Subpaths()
	subs2 := o.Subpaths()
	if len(subs1) == 0 || len(subs2) == 0 {
		return fmt.Errorf("cannot align paths of %d and %d points without complete curves",
			len(p.Points), len(o.Points))
	}

	// nthSubpath pads past the end with a degenerate run at the final
	// point, and strips trailing null curves so they don't skew the
	// distribution of inserted ones.
	nthSubpath := func(subs [][]Point3, n int) []Point3 {
		if n >= len(subs) {
			last := subs[len(subs)-1]
			return repeatPoint(last[len(last)-1], 4)
		}
		sub := subs[n]
		for len(sub) > 4 && allPointsWithin(sub[len(sub)-4:], sub[len(sub)-5], p.tol()) {
			sub = sub[:len(sub)-4]
		}
		return sub
	}

	numSubs := max(len(subs1), len(subs2))
	var new1, new2 []Point3
	for n := range numSubs {
		sp1 := nthSubpath(subs1, n)
		sp2 := nthSubpath(subs2, n)
		diff1 := max(0, (len(sp2)-len(sp1))/4)
		diff2 := max(0, (len(sp1)-len(sp2))/4)
		new1 = append(new1, insertCurvesInto(sp1, diff1)...)
		new2 = append(new2, insertCurvesInto(sp2, diff2)...)
	}
	p.Points = new1
	o.Points = new2
	return nil
}

// Interpolate sets p to the pointwise blend of a and b at alpha, geometry
// and style both. The two buffers must have equal lengths, which
// [Path.AlignWith] establishes.
func (p *Path) Interpolate(a, b *Path, alpha float64) error {
	if len(a.Points) != len(b.Points) {
		return fmt.Errorf("cannot interpolate between paths of %d and %d points",
			len(a.Points), len(b.Points))
	}
	pts := make([]Point3, len(a.Points))
	for i := range pts {
		pts[i] = a.Points[i].Lerp(b.Points[i], alpha)
	}
	p.Points = pts
	p.Style = a.Style.Interpolate(b.Style, alpha)
	return nil
}
