package morph

import (
	"math"
	"sort"
)

// A Dashed is a group of short copies of a source path laid out along it
// with gaps in between. Its children are the dashes in path order.
type Dashed struct {
	Group
	// NumDashes and Ratio record the pattern the dashes were built from.
	NumDashes int
	Ratio     float64
}

// NewDashed cuts src into numDashes pieces that together cover ratio of
// its length, evenly spaced, with the pattern shifted along the path by
// offset periods. Closed paths alternate dashes and gaps all the way
// around the seam; open paths begin and end with a dash. When
// equalLengths is set, dash boundaries are measured along sampled arc
// length instead of the curve parameter, so dashes come out equally long
// even when the path's curves don't. The container takes over src's
// style; the dashes keep their own copies of it.
func NewDashed(src *Path, numDashes int, ratio, offset float64, equalLengths bool) (*Dashed, error) {
	d := &Dashed{NumDashes: numDashes, Ratio: ratio}
	n := numDashes
	if n > 0 {
		// All lengths below are fractions of the path's total length.
		dashLen := ratio / float64(n)
		closed := src.IsClosed()
		var voidLen float64
		switch {
		case closed:
			voidLen = (1 - ratio) / float64(n)
		case n == 1:
			voidLen = 1 - ratio
		default:
			voidLen = (1 - ratio) / float64(n-1)
		}

		period := dashLen + voidLen
		phase := math.Mod(offset, 1)
		if phase < 0 {
			phase++
		}
		phase *= period

		// Open paths start and end with a dash, so their pattern carries
		// one extra void.
		patternLen := 1.0
		if !closed {
			patternLen = 1 + voidLen
		}

		starts := make([]float64, n)
		ends := make([]float64, n)
		for i := range starts {
			starts[i] = math.Mod(float64(i)*period+phase, patternLen)
			ends[i] = math.Mod(float64(i)*period+dashLen+phase, patternLen)
		}

		// Closed paths absorb pattern overflow at the seam. On open paths
		// the phase shift can push only the final dash out of range.
		if !closed {
			last := n - 1
			switch {
			case ends[last] > 1 && starts[last] > 1:
				starts = starts[:last]
				ends = ends[:last]
			case ends[last] < dashLen:
				if starts[last] < 1 {
					starts = append(starts, 0)
					ends = append(ends, ends[last])
					ends[last] = 1
				} else {
					starts[last] = 0
				}
			case starts[last] > 1-dashLen:
				ends[last] = 1
			}
		}

		cut := func(a, b float64) error {
			sub, err := src.Subcurve(a, b)
			if err != nil {
				return err
			}
			return d.Add(sub)
		}
		if equalLengths {
			xs := []float64{0}
			for c := range src.Curves() {
				for _, piece := range c.PieceLengths(defaultCurveSamples) {
					xs = append(xs, xs[len(xs)-1]+piece)
				}
			}
			ys := make([]float64, len(xs))
			if len(ys) > 1 {
				for i := range ys {
					ys[i] = float64(i) / float64(len(ys)-1)
				}
			}
			total := xs[len(xs)-1]
			for i := range starts {
				a := interpMonotone(starts[i]*total, xs, ys)
				b := interpMonotone(ends[i]*total, xs, ys)
				if err := cut(a, b); err != nil {
					return nil, err
				}
			}
		} else {
			for i := range starts {
				if err := cut(starts[i], ends[i]); err != nil {
					return nil, err
				}
			}
		}
	}
	d.Path().MatchStyle(src)
	return d, nil
}

// interpMonotone maps x through the piecewise linear function given by the
// non-decreasing xs and their ys, clamping outside the table. An exact hit
// on a repeated entry resolves to its first occurrence.
func interpMonotone(x float64, xs, ys []float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}
	j := sort.SearchFloat64s(xs, x)
	if xs[j] == x {
		return ys[j]
	}
	t := (x - xs[j-1]) / (xs[j] - xs[j-1])
	return ys[j-1] + t*(ys[j]-ys[j-1])
}
