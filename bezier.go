package morph

import (
	"math"
	"sort"
)

// DefaultAccuracy is a default value for methods that take an accuracy
// argument, suitable for general-purpose measurement.
const DefaultAccuracy = 1e-6

// defaultCurveSamples is the sample count used by sampled-length methods
// when the caller doesn't specify one.
const defaultCurveSamples = 10

type CubicBez struct {
	P0 Point3
	P1 Point3
	P2 Point3
	P3 Point3
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) Eval(t float64) Point3 {
	mt := 1.0 - t
	a := Vec3(c.P0).Mul(mt * mt * mt)
	b := Vec3(c.P1).Mul(mt * mt * 3.0)
	cc := Vec3(c.P2).Mul(mt * 3.0)
	d := Vec3(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point3(v)
}

func (c CubicBez) Start() Point3 {
	return c.P0
}

func (c CubicBez) End() Point3 {
	return c.P3
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point3(c.P1.Sub(c.P0).Mul(3)),
		Point3(c.P2.Sub(c.P1).Mul(3)),
		Point3(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point3(Vec3(c.P0).Add(Vec3(c.P1).Mul(2.0)).Add(Vec3(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point3(Vec3(c.P1).Add(Vec3(c.P2).Mul(2.0)).Add(Vec3(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Subsegment returns the control points for the parameter window [t0, t1],
// valid for any 0 ≤ t0 ≤ t1 ≤ 1. The window (0, 1) reproduces the curve
// exactly. At t0 == 1 the result degenerates to four copies of the end
// point.
//
// The construction evaluates the truncated tails of the control polygon at
// t0 and then the prefixes of those values at the renormalized end
// parameter, which is de Casteljau's subdivision applied twice.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	if t0 == 1 {
		return CubicBez{c.P3, c.P3, c.P3, c.P3}
	}
	q0 := c.Eval(t0)
	q1 := QuadBez{c.P1, c.P2, c.P3}.Eval(t0)
	q2 := Point3(Vec3(c.P2).Mul(1 - t0).Add(Vec3(c.P3).Mul(t0)))
	q3 := c.P3
	u := (t1 - t0) / (1.0 - t0)
	return CubicBez{
		q0,
		Point3(Vec3(q0).Mul(1 - u).Add(Vec3(q1).Mul(u))),
		QuadBez{q0, q1, q2}.Eval(u),
		CubicBez{q0, q1, q2, q3}.Eval(u),
	}
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		f := ddNorm2 / dNorm2
		est += wi * f
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm, dm1, dm2 Vec3) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += math.Sqrt(2.25) * wi * (dpx + dmx)
	}
	return sum
}

// SampledLength returns the length of the polyline through the given number
// of samples uniformly spaced in parameter. It approaches [CubicBez.Arclen]
// from below as the sample count grows. A non-positive count uses 10
// samples.
func (c CubicBez) SampledLength(samples int) float64 {
	var sum float64
	for _, piece := range c.PieceLengths(samples) {
		sum += piece
	}
	return sum
}

// PieceLengths returns the chord lengths between consecutive samples
// uniformly spaced in parameter; the result holds samples−1 values. A
// non-positive count uses 10 samples.
func (c CubicBez) PieceLengths(samples int) []float64 {
	if samples <= 0 {
		samples = defaultCurveSamples
	}
	out := make([]float64, 0, samples-1)
	last := c.Eval(0)
	for i := 1; i < samples; i++ {
		next := c.Eval(float64(i) / float64(samples-1))
		out = append(out, next.Distance(last))
		last = next
	}
	return out
}

// Params returns the curve parameters in [0, 1] at which the curve passes
// through pt, in increasing order.
//
// Each coordinate contributes a cubic polynomial whose real roots are
// candidate parameters; a candidate survives only if every coordinate that
// constrains the curve agrees on it. Roots are rounded to the tolerance's
// decimal grid before the per-coordinate sets are intersected. A
// non-positive tolerance uses [DefaultTolerance].
func (c CubicBez) Params(pt Point3, tolerance float64) ([3]float64, int) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	scale := math.Pow(10, math.Round(-math.Log10(tolerance)))

	coords := [3][5]float64{
		{c.P0.X, c.P1.X, c.P2.X, c.P3.X, pt.X},
		{c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, pt.Y},
		{c.P0.Z, c.P1.Z, c.P2.Z, c.P3.Z, pt.Z},
	}
	var common [3]float64
	commonN := -1
	for _, co := range coords {
		k0, k1, k2, k3 := cubicBezCoefficients(co[0], co[1], co[2], co[3])
		k0 -= co[4]
		if k0 == 0 && k1 == 0 && k2 == 0 && k3 == 0 {
			// The coordinate is constant and equal to the target's, so it
			// doesn't constrain the parameter.
			continue
		}
		roots, n := SolveCubic(k0, k1, k2, k3)
		var axis [3]float64
		axisN := 0
		for _, r := range roots[:n] {
			r = math.Round(r*scale) / scale
			dup := false
			for _, prev := range axis[:axisN] {
				if prev == r {
					dup = true
					break
				}
			}
			if !dup {
				axis[axisN] = r
				axisN++
			}
		}
		if commonN < 0 {
			common, commonN = axis, axisN
		} else {
			var next [3]float64
			nextN := 0
			for _, r := range common[:commonN] {
				for _, s := range axis[:axisN] {
					if r == s {
						next[nextN] = r
						nextN++
						break
					}
				}
			}
			common, commonN = next, nextN
		}
		if commonN == 0 {
			return [3]float64{}, 0
		}
	}
	if commonN < 0 {
		// A constant curve sitting on pt matches every parameter; report
		// the end.
		return [3]float64{1}, 1
	}
	var out [3]float64
	outN := 0
	for _, r := range common[:commonN] {
		if r >= 0 && r <= 1 {
			out[outN] = r
			outN++
		}
	}
	sort.Float64s(out[:outN])
	return out, outN
}

// Return polynomial coefficients given cubic bezier coordinates.
func cubicBezCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3.0*x1 - 3.0*x0
	p2 := 3.0*x2 - 6.0*x1 + 3.0*x0
	p3 := x3 - 3.0*x2 + 3.0*x1 - x0
	return p0, p1, p2, p3
}

type QuadBez struct {
	P0 Point3
	P1 Point3
	P2 Point3
}

func (q QuadBez) Eval(t float64) Point3 {
	mt := 1.0 - t
	a := Vec3(q.P0).Mul(mt * mt)
	b := Vec3(q.P1).Mul(mt * 2.0)
	c := Vec3(q.P2).Mul(t)
	d := b.Add(c)
	return Point3(a.Add(d.Mul(t)))
}

// Raise the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Start() Point3 {
	return q.P0
}

func (q QuadBez) End() Point3 {
	return q.P2
}

// IntegerInterpolate interpolates between the integers start and end,
// splitting the result into an integer part and a fractional residue.
// alpha at or above 1 caps the result at (end−1, 1); at or below 0 it is
// (start, 0).
func IntegerInterpolate(start, end int, alpha float64) (int, float64) {
	if alpha >= 1 {
		return end - 1, 1.0
	}
	if alpha <= 0 {
		return start, 0.0
	}
	value := int(float64(start) + float64(end-start)*alpha)
	residue := math.Mod(float64(end-start)*alpha, 1)
	return value, residue
}
