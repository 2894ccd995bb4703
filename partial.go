package morph

import (
	"fmt"
)

// BecomePartial replaces p's buffer with the slice of src that spans the
// fractions [a, b] of src's curve count. The end curves of the slice are
// trimmed with [CubicBez.Subsegment]; p's style is left untouched. A span
// covering all of src copies its buffer verbatim.
func (p *Path) BecomePartial(src *Path, a, b float64) error {
	if a > b {
		return fmt.Errorf("invalid span [%v, %v]", a, b)
	}
	if a <= 0 && b >= 1 {
		if p != src {
			p.SetPoints(src.Points)
		}
		return nil
	}
	numCurves := src.NumCurves()
	if numCurves == 0 {
		return nil
	}
	curve := func(i int) CubicBez {
		return CubicBez{src.Points[4*i], src.Points[4*i+1], src.Points[4*i+2], src.Points[4*i+3]}
	}
	lowerIndex, lowerResidue := IntegerInterpolate(0, numCurves, a)
	upperIndex, upperResidue := IntegerInterpolate(0, numCurves, b)

	out := make([]Point3, 0, 4*(upperIndex-lowerIndex+1))
	push := func(c CubicBez) {
		out = append(out, c.P0, c.P1, c.P2, c.P3)
	}
	if lowerIndex == upperIndex {
		push(curve(lowerIndex).Subsegment(lowerResidue, upperResidue))
	} else {
		push(curve(lowerIndex).Subsegment(lowerResidue, 1))
		for i := lowerIndex + 1; i < upperIndex; i++ {
			push(curve(i))
		}
		push(curve(upperIndex).Subsegment(0, upperResidue))
	}
	p.Points = out
	return nil
}

// Subcurve returns a copy of the path restricted to the span [a, b] of its
// curve count. On a closed path a may exceed b; the result then wraps
// through the start.
func (p *Path) Subcurve(a, b float64) (*Path, error) {
	if p.IsClosed() && a > b {
		out := p.Clone()
		if err := out.BecomePartial(p, a, 1); err != nil {
			return nil, err
		}
		tail := p.Clone()
		if err := tail.BecomePartial(p, 0, b); err != nil {
			return nil, err
		}
		out.AppendPath(tail)
		return out, nil
	}
	out := p.Clone()
	if err := out.BecomePartial(p, a, b); err != nil {
		return nil, err
	}
	return out, nil
}
