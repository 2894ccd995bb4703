package morph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// near returns a comparer that treats two points as equal when they lie
// within tol of each other.
func near(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b Point3) bool {
		return a.Distance(b) <= tol
	})
}

// square returns a closed axis-aligned square path with its lower left
// corner at the origin. A side length of 3 keeps every coordinate an exact
// integer.
func square(side float64) *Path {
	p := &Path{}
	p.SetCorners(
		Pt(0, 0, 0),
		Pt(side, 0, 0),
		Pt(side, side, 0),
		Pt(0, side, 0),
		Pt(0, 0, 0),
	)
	return p
}
