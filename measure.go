package morph

import (
	"fmt"
)

// ArcLength returns the approximate length of the path, measured by
// sampling each curve at the given number of points and summing chord
// lengths. Non-positive samples means 10.
func (p *Path) ArcLength(samples int) float64 {
	var total float64
	for c := range p.Curves() {
		total += c.SampledLength(samples)
	}
	return total
}

// curveLengths returns the sampled length of every complete curve.
func (p *Path) curveLengths(samples int) []float64 {
	out := make([]float64, 0, p.NumCurves())
	for c := range p.Curves() {
		out = append(out, c.SampledLength(samples))
	}
	return out
}

// PointFromProportion returns the point at the given fraction of the
// path's sampled arc length, with alpha in [0, 1]. Zero-length curves are
// skipped over rather than divided by.
func (p *Path) PointFromProportion(alpha float64) (Point3, error) {
	if alpha < 0 || alpha > 1 {
		return Point3{}, fmt.Errorf("alpha %v not between 0 and 1", alpha)
	}
	if len(p.Points) == 0 {
		return Point3{}, ErrNoPoints
	}
	if alpha == 1 {
		return p.Points[len(p.Points)-1], nil
	}

	lengths := p.curveLengths(defaultCurveSamples)
	var total float64
	for _, l := range lengths {
		total += l
	}
	target := alpha * total
	var acc float64
	for i, l := range lengths {
		if acc+l >= target {
			residue := 0.0
			if l != 0 {
				residue = (target - acc) / l
			}
			c, err := p.Curve(i)
			if err != nil {
				return Point3{}, err
			}
			return c.Eval(residue), nil
		}
		acc += l
	}
	// Only reachable when the buffer holds no complete curve.
	return p.Points[len(p.Points)-1], nil
}

// ProportionFromPoint returns the fraction of the path's sampled arc
// length at which pt lies, the inverse of [Path.PointFromProportion] up to
// sampling error. Points on several curves report the first curve, at its
// largest matching parameter. Returns [ErrNotOnPath] when pt lies on none
// of the curves.
func (p *Path) ProportionFromPoint(pt Point3) (float64, error) {
	if len(p.Points) == 0 {
		return 0, ErrNoPoints
	}
	var target float64
	found := false
	for c := range p.Curves() {
		length := c.SampledLength(defaultCurveSamples)
		params, n := c.Params(pt, p.tol())
		if n > 0 {
			target += length * params[n-1]
			found = true
			break
		}
		target += length
	}
	if !found {
		return 0, ErrNotOnPath
	}
	return target / p.ArcLength(defaultCurveSamples), nil
}
