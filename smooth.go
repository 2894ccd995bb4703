package morph

import (
	"gonum.org/v1/gonum/mat"
)

// MakeSmooth recomputes every subpath's handles so that consecutive curves
// meet with continuous first and second derivatives, keeping anchors in
// place. Subpaths that close on themselves stay smooth across the seam.
func (p *Path) MakeSmooth() {
	p.changeAnchorMode(true)
}

// MakeJagged replaces every subpath's handles with the third points of the
// anchor chords, turning each curve into a straight segment.
func (p *Path) MakeJagged() {
	p.changeAnchorMode(false)
}

func (p *Path) changeAnchorMode(smooth bool) {
	rebuilt := make([]Point3, 0, len(p.Points))
	for _, sub := range p.Subpaths() {
		numCurves := len(sub) / 4
		anchors := make([]Point3, 0, numCurves+1)
		for i := 0; i+4 <= len(sub); i += 4 {
			anchors = append(anchors, sub[i])
		}
		anchors = append(anchors, sub[len(sub)-1])
		var h1, h2 []Point3
		if smooth {
			h1, h2 = SmoothHandles(anchors, p.tol())
		} else {
			h1 = make([]Point3, numCurves)
			h2 = make([]Point3, numCurves)
			for i := range numCurves {
				h1[i] = anchors[i].Lerp(anchors[i+1], 1.0/3.0)
				h2[i] = anchors[i].Lerp(anchors[i+1], 2.0/3.0)
			}
		}
		start := len(rebuilt)
		rebuilt = append(rebuilt, sub...)
		for i := range numCurves {
			rebuilt[start+4*i+1] = h1[i]
			rebuilt[start+4*i+2] = h2[i]
		}
	}
	p.Points = rebuilt
}

// SmoothHandles computes handles for the piecewise cubic through anchors
// such that consecutive curves join with continuous first and second
// derivatives. When the first and last anchors coincide within tolerance,
// the duplicate is dropped and the spline closes smoothly around the loop.
// A non-positive tolerance means [DefaultTolerance]. Fewer than two
// anchors yield no handles.
//
// The open case solves the tridiagonal system described at
// <https://www.particleincell.com/2012/bezier-splines/>. The closed case
// folds the cyclic corner terms into a rank-one correction of the same
// system.
func SmoothHandles(anchors []Point3, tolerance float64) (h1, h2 []Point3) {
	if len(anchors) < 2 {
		return nil, nil
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if pointsWithin(anchors[0], anchors[len(anchors)-1], tolerance) {
		return smoothHandlesClosed(anchors[:len(anchors)-1])
	}
	return smoothHandlesOpen(anchors)
}

// smoothHandlesOpen solves for the handles of an open spline with natural
// end conditions. anchors has one more entry than there are curves.
func smoothHandlesOpen(anchors []Point3) (h1, h2 []Point3) {
	n := len(anchors) - 1
	h1 = make([]Point3, n)
	h2 = make([]Point3, n)
	if n == 1 {
		h1[0] = anchors[0].Lerp(anchors[1], 1.0/3.0)
		h2[0] = anchors[0].Lerp(anchors[1], 2.0/3.0)
		return h1, h2
	}

	dl := make([]float64, n-1)
	d := make([]float64, n)
	du := make([]float64, n-1)
	for i := range dl {
		dl[i] = 1
		du[i] = 1
	}
	dl[n-2] = 2
	d[0] = 2
	for i := 1; i < n-1; i++ {
		d[i] = 4
	}
	d[n-1] = 7

	rhs := mat.NewDense(n, 3, nil)
	rhs.SetRow(0, []float64{
		anchors[0].X + 2*anchors[1].X,
		anchors[0].Y + 2*anchors[1].Y,
		anchors[0].Z + 2*anchors[1].Z,
	})
	for i := 1; i < n-1; i++ {
		rhs.SetRow(i, []float64{
			4*anchors[i].X + 2*anchors[i+1].X,
			4*anchors[i].Y + 2*anchors[i+1].Y,
			4*anchors[i].Z + 2*anchors[i+1].Z,
		})
	}
	rhs.SetRow(n-1, []float64{
		8*anchors[n-1].X + anchors[n].X,
		8*anchors[n-1].Y + anchors[n].Y,
		8*anchors[n-1].Z + anchors[n].Z,
	})

	var sol mat.Dense
	if err := mat.NewTridiag(n, dl, d, du).SolveTo(&sol, false, rhs); err != nil {
		// The system is strictly diagonally dominant and cannot be
		// singular.
		panic(err)
	}
	for i := range n {
		h1[i] = Pt(sol.At(i, 0), sol.At(i, 1), sol.At(i, 2))
	}
	for i := 0; i < n-1; i++ {
		h2[i] = Pt(
			2*anchors[i+1].X-h1[i+1].X,
			2*anchors[i+1].Y-h1[i+1].Y,
			2*anchors[i+1].Z-h1[i+1].Z,
		)
	}
	h2[n-1] = Pt(
		0.5*(anchors[n].X+h1[n-1].X),
		0.5*(anchors[n].Y+h1[n-1].Y),
		0.5*(anchors[n].Z+h1[n-1].Z),
	)
	return h1, h2
}

// smoothHandlesClosed solves for the handles of a closed spline. anchors
// holds one entry per curve, with the duplicate endpoint already removed;
// indices wrap around.
func smoothHandlesClosed(anchors []Point3) (h1, h2 []Point3) {
	n := len(anchors)
	h1 = make([]Point3, n)
	h2 = make([]Point3, n)
	if n == 1 {
		h1[0] = anchors[0]
		h2[0] = anchors[0]
		return h1, h2
	}

	// The cyclic system has rows h1[i-1] + 4 h1[i] + h1[i+1] = rhs[i] with
	// wrapping indices. Writing its matrix as T + u vᵀ for a plain
	// tridiagonal T lets a banded solver handle it; the rank-one term is
	// then removed with the Sherman-Morrison formula.
	const gamma = -4.0
	dl := make([]float64, n-1)
	d := make([]float64, n)
	du := make([]float64, n-1)
	for i := range dl {
		dl[i] = 1
		du[i] = 1
	}
	for i := range d {
		d[i] = 4
	}
	d[0] -= gamma
	d[n-1] -= 1 / gamma

	rhs := mat.NewDense(n, 3, nil)
	for i := range n {
		next := anchors[(i+1)%n]
		rhs.SetRow(i, []float64{
			4*anchors[i].X + 2*next.X,
			4*anchors[i].Y + 2*next.Y,
			4*anchors[i].Z + 2*next.Z,
		})
	}

	tri := mat.NewTridiag(n, dl, d, du)
	var y mat.Dense
	if err := tri.SolveTo(&y, false, rhs); err != nil {
		panic(err)
	}
	u := mat.NewVecDense(n, nil)
	u.SetVec(0, gamma)
	u.SetVec(n-1, 1)
	var q mat.VecDense
	if err := tri.SolveVecTo(&q, false, u); err != nil {
		panic(err)
	}

	// x = y - q (v·y)/(1 + v·q) per coordinate, with v = (1, 0, ..., 1/γ).
	vDotQ := q.AtVec(0) + q.AtVec(n-1)/gamma
	sol := make([]float64, 3*n)
	for c := range 3 {
		vDotY := y.At(0, c) + y.At(n-1, c)/gamma
		f := vDotY / (1 + vDotQ)
		for i := range n {
			sol[3*i+c] = y.At(i, c) - q.AtVec(i)*f
		}
	}
	for i := range n {
		h1[i] = Pt(sol[3*i], sol[3*i+1], sol[3*i+2])
	}
	for i := range n {
		next := (i + 1) % n
		h2[i] = Pt(
			2*anchors[next].X-h1[next].X,
			2*anchors[next].Y-h1[next].Y,
			2*anchors[next].Z-h1[next].Z,
		)
	}
	return h1, h2
}
