package morph

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
)

// DefaultTolerance is the point-equality tolerance used when a Path doesn't
// specify one.
const DefaultTolerance = 1e-6

var (
	// ErrNoPoints is returned by operations that need an existing point or
	// curve on a path that has none.
	ErrNoPoints = errors.New("path has no points")
	// ErrNotOnPath is returned when a point doesn't lie on any of a path's
	// curves.
	ErrNotOnPath = errors.New("point does not lie on the path")
)

// A Path is a sequence of cubic Bézier curves stored as a flat buffer of
// control points. Every four consecutive points [anchor1, handle1, handle2,
// anchor2] form one curve. A curve whose first point coincides with the
// previous curve's last point (within Tolerance) continues a subpath; any
// other boundary starts a new one.
//
// A buffer whose length is 1 modulo 4 carries a pending subpath start as
// its trailing point; the next segment append consumes it. The zero value
// is an empty path ready for use.
//
// Paths are not safe for concurrent mutation.
type Path struct {
	// Points is the flattened control-point buffer. Renderers may iterate
	// it directly. Mutating operations keep its length at 0 or 1 modulo 4.
	Points []Point3
	// Tolerance is the per-coordinate "same point" distance. Zero means
	// [DefaultTolerance].
	Tolerance float64
	// Style carries the visual attributes reconciled and interpolated
	// alongside the geometry.
	Style Style
}

func (p *Path) tol() float64 {
	if p.Tolerance > 0 {
		return p.Tolerance
	}
	return DefaultTolerance
}

// eq reports whether two points coincide within the path's tolerance.
func (p *Path) eq(a, b Point3) bool {
	return pointsWithin(a, b, p.tol())
}

func pointsWithin(a, b Point3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// eq2D compares x and y only, with an additional relative component. It
// backs the planar subpath split used by renderers.
func (p *Path) eq2D(a, b Point3) bool {
	const rtol = 1e-5
	tol := p.tol()
	if math.Abs(a.X-b.X) > tol+rtol*math.Abs(b.X) {
		return false
	}
	return math.Abs(a.Y-b.Y) <= tol+rtol*math.Abs(b.Y)
}

// hasPendingMove reports whether the buffer's trailing point is a subpath
// start not yet consumed by a segment.
func (p *Path) hasPendingMove() bool {
	return len(p.Points)%4 == 1
}

// LastPoint returns the buffer's final point.
func (p *Path) LastPoint() (Point3, error) {
	if len(p.Points) == 0 {
		return Point3{}, ErrNoPoints
	}
	return p.Points[len(p.Points)-1], nil
}

// Clone returns a deep copy of the path, style included.
func (p *Path) Clone() *Path {
	return &Path{
		Points:    slices.Clone(p.Points),
		Tolerance: p.Tolerance,
		Style:     p.Style.Clone(),
	}
}

// SetPoints replaces the buffer with a copy of pts.
func (p *Path) SetPoints(pts []Point3) {
	p.Points = slices.Clone(pts)
}

// AppendPoints extends the buffer with pts verbatim.
func (p *Path) AppendPoints(pts ...Point3) {
	p.Points = append(p.Points, pts...)
}

// MoveTo starts a new subpath at pt. An unfinished trailing curve is first
// padded out by repeating its starting point.
func (p *Path) MoveTo(pt Point3) {
	if n := len(p.Points) % 4; n != 0 {
		start := p.Points[len(p.Points)-n]
		for range 4 - n {
			p.Points = append(p.Points, start)
		}
	}
	p.Points = append(p.Points, pt)
}

// CubicTo appends a cubic segment through handles h1 and h2 ending at pt.
// A pending subpath start is consumed as the segment's first anchor;
// otherwise the segment continues from the last point.
func (p *Path) CubicTo(h1, h2, pt Point3) error {
	if len(p.Points) == 0 {
		return ErrNoPoints
	}
	if p.hasPendingMove() {
		p.Points = append(p.Points, h1, h2, pt)
	} else {
		last := p.Points[len(p.Points)-1]
		p.Points = append(p.Points, last, h1, h2, pt)
	}
	return nil
}

// QuadTo appends the exact cubic equivalent of a quadratic segment through
// handle h ending at pt.
func (p *Path) QuadTo(h, pt Point3) error {
	last, err := p.LastPoint()
	if err != nil {
		return err
	}
	raised := QuadBez{last, h, pt}.Raise()
	return p.CubicTo(raised.P1, raised.P2, raised.P3)
}

// LineTo appends a straight segment to pt, expressed as a cubic with
// handles at the third points of the chord.
func (p *Path) LineTo(pt Point3) error {
	last, err := p.LastPoint()
	if err != nil {
		return err
	}
	return p.CubicTo(
		last.Lerp(pt, 1.0/3.0),
		last.Lerp(pt, 2.0/3.0),
		pt,
	)
}

// SmoothTo appends a curve to pt that continues the previous curve's exit
// tangent. The entry handle mirrors that tangent; the exit handle reflects
// it across the chord, so consecutive calls trace a smooth path. On a
// freshly started subpath it degenerates to [Path.LineTo].
func (p *Path) SmoothTo(pt Point3) error {
	if p.hasPendingMove() {
		return p.LineTo(pt)
	}
	if len(p.Points) == 0 {
		return ErrNoPoints
	}
	lastH2 := p.Points[len(p.Points)-2]
	lastA2 := p.Points[len(p.Points)-1]
	tangent := lastA2.Sub(lastH2)
	h1 := lastA2.Translate(tangent)
	newTangent := tangent.Rotate(pt.Sub(lastA2), math.Pi)
	h2 := pt.Translate(newTangent.Negate())
	p.Points = append(p.Points, lastA2, h1, h2, pt)
	return nil
}

// SmoothCubicTo is [Path.SmoothTo] with an explicit exit handle.
func (p *Path) SmoothCubicTo(h2, pt Point3) error {
	if p.hasPendingMove() {
		return p.LineTo(pt)
	}
	if len(p.Points) == 0 {
		return ErrNoPoints
	}
	lastH2 := p.Points[len(p.Points)-2]
	lastA2 := p.Points[len(p.Points)-1]
	tangent := lastA2.Sub(lastH2)
	h1 := lastA2.Translate(tangent)
	p.Points = append(p.Points, lastA2, h1, h2, pt)
	return nil
}

// appendCorner appends one straight cubic from a to b sampled at the
// quarter parameters.
func (p *Path) appendCorner(a, b Point3) {
	p.Points = append(p.Points,
		a,
		a.Lerp(b, 1.0/3.0),
		a.Lerp(b, 2.0/3.0),
		b,
	)
}

// AddCorners extends the path with straight segments through the given
// corner points. The current last point contributes the first corner; a
// pending subpath start is consumed by the extension. With no corners the
// call is a no-op.
func (p *Path) AddCorners(pts ...Point3) error {
	if len(p.Points) == 0 {
		return ErrNoPoints
	}
	if len(pts) == 0 {
		return nil
	}
	starts := make([]Point3, len(pts))
	starts[0] = p.Points[len(p.Points)-1]
	copy(starts[1:], pts[:len(pts)-1])
	if p.hasPendingMove() {
		p.Points = p.Points[:len(p.Points)-1]
	}
	for i, end := range pts {
		p.appendCorner(starts[i], end)
	}
	return nil
}

// SetCorners replaces the buffer with straight segments through the given
// corners.
func (p *Path) SetCorners(pts ...Point3) {
	n := max(len(pts)-1, 0)
	p.Points = make([]Point3, 0, 4*n)
	for i := 0; i < n; i++ {
		p.appendCorner(pts[i], pts[i+1])
	}
}

// SetSmooth replaces the buffer with a smooth curve through the given
// anchors.
func (p *Path) SetSmooth(pts ...Point3) {
	p.SetCorners(pts...)
	p.MakeSmooth()
}

// SetAnchorsAndHandles replaces the buffer with the interleaving of the
// four control rails. The rails must have equal lengths.
func (p *Path) SetAnchorsAndHandles(anchors1, handles1, handles2, anchors2 []Point3) error {
	if len(handles1) != len(anchors1) || len(handles2) != len(anchors1) || len(anchors2) != len(anchors1) {
		return fmt.Errorf("control rails have mismatched lengths %d, %d, %d, %d",
			len(anchors1), len(handles1), len(handles2), len(anchors2))
	}
	p.Points = make([]Point3, 0, 4*len(anchors1))
	for i := range anchors1 {
		p.Points = append(p.Points, anchors1[i], handles1[i], handles2[i], anchors2[i])
	}
	return nil
}

// AddSubpath appends a run of complete curves verbatim. The run's length
// must be a multiple of four.
func (p *Path) AddSubpath(pts []Point3) error {
	if len(pts)%4 != 0 {
		return fmt.Errorf("subpath length %d is not a multiple of four", len(pts))
	}
	p.Points = append(p.Points, pts...)
	return nil
}

// AppendPath concatenates o's buffer onto p. A pending subpath start on p
// is dropped first.
func (p *Path) AppendPath(o *Path) {
	if p.hasPendingMove() {
		p.Points = p.Points[:len(p.Points)-1]
	}
	p.Points = append(p.Points, o.Points...)
}

// ClosePath appends a straight segment back to the current subpath's start
// unless the path already ends there.
func (p *Path) ClosePath() error {
	if len(p.Points) == 0 {
		return ErrNoPoints
	}
	if p.IsClosed() {
		return nil
	}
	subs := p.Subpaths()
	if len(subs) == 0 {
		return ErrNoPoints
	}
	return p.LineTo(subs[len(subs)-1][0])
}

// IsClosed reports whether the buffer's last point returns to its first
// within tolerance. An empty path is not closed.
func (p *Path) IsClosed() bool {
	if len(p.Points) == 0 {
		return false
	}
	return p.eq(p.Points[0], p.Points[len(p.Points)-1])
}

// NumCurves returns the number of complete cubic segments in the buffer.
func (p *Path) NumCurves() int {
	return len(p.Points) / 4
}

// Curve returns the nth complete cubic segment.
func (p *Path) Curve(n int) (CubicBez, error) {
	if n < 0 || n >= p.NumCurves() {
		return CubicBez{}, fmt.Errorf("curve index %d out of range for a path with %d curves", n, p.NumCurves())
	}
	i := 4 * n
	return CubicBez{p.Points[i], p.Points[i+1], p.Points[i+2], p.Points[i+3]}, nil
}

// Curves returns an iterator over the complete cubic segments.
func (p *Path) Curves() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		for i := 0; i+4 <= len(p.Points); i += 4 {
			if !yield(CubicBez{p.Points[i], p.Points[i+1], p.Points[i+2], p.Points[i+3]}) {
				return
			}
		}
	}
}

// StartAnchors returns the first point of every chunk of four, including a
// trailing incomplete chunk's.
func (p *Path) StartAnchors() []Point3 {
	out := make([]Point3, 0, (len(p.Points)+3)/4)
	for i := 0; i < len(p.Points); i += 4 {
		out = append(out, p.Points[i])
	}
	return out
}

// EndAnchors returns the last point of every complete curve.
func (p *Path) EndAnchors() []Point3 {
	out := make([]Point3, 0, p.NumCurves())
	for i := 3; i < len(p.Points); i += 4 {
		out = append(out, p.Points[i])
	}
	return out
}

// Anchors returns the start and end anchors of every complete curve,
// interleaved. A buffer holding a single point returns just that point.
func (p *Path) Anchors() []Point3 {
	if len(p.Points) == 1 {
		return []Point3{p.Points[0]}
	}
	starts := p.StartAnchors()
	ends := p.EndAnchors()
	out := make([]Point3, 0, 2*len(ends))
	for i := range ends {
		out = append(out, starts[i], ends[i])
	}
	return out
}

// Subpaths splits the buffer into runs of connected curves. A new run
// begins wherever a chunk's first point differs from the previous chunk's
// last point beyond tolerance. Runs shorter than one full curve are
// dropped. The returned slices alias the buffer.
func (p *Path) Subpaths() [][]Point3 {
	return subpathsFrom(p.Points, p.eq)
}

// Subpaths2D splits like [Path.Subpaths] but compares only x and y, with a
// relative tolerance component. Renderers use it to split paths projected
// onto the drawing plane.
func (p *Path) Subpaths2D() [][]Point3 {
	return subpathsFrom(p.Points, p.eq2D)
}

func subpathsFrom(points []Point3, eq func(a, b Point3) bool) [][]Point3 {
	var out [][]Point3
	start := 0
	for n := 4; n < len(points); n += 4 {
		if !eq(points[n-1], points[n]) {
			if n-start >= 4 {
				out = append(out, points[start:n])
			}
			start = n
		}
	}
	if len(points)-start >= 4 {
		out = append(out, points[start:])
	}
	return out
}

// shoelaceArea computes the trapezoidal shoelace sum over polygon
// vertices in the xy plane, without the closing edge.
func shoelaceArea(pts []Point3) float64 {
	var sum float64
	for i := 0; i+1 < len(pts); i++ {
		sum += (pts[i+1].X - pts[i].X) * (pts[i+1].Y + pts[i].Y)
	}
	return 0.5 * sum
}

// A Direction is a winding orientation in the xy plane.
type Direction uint8

const (
	CW Direction = iota
	CCW
)

func (d Direction) String() string {
	switch d {
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Direction reports the winding of the path's start anchors. Positive
// trapezoidal area means clockwise.
func (p *Path) Direction() Direction {
	if shoelaceArea(p.StartAnchors()) > 0 {
		return CW
	}
	return CCW
}

// Reverse reverses the buffer in place, flipping the path's direction.
func (p *Path) Reverse() {
	slices.Reverse(p.Points)
}

// ForceDirection reverses the path when its winding doesn't match d.
func (p *Path) ForceDirection(d Direction) error {
	if d != CW && d != CCW {
		return fmt.Errorf("invalid direction %v", d)
	}
	if p.Direction() != d {
		p.Reverse()
	}
	return nil
}

// Center returns the center of the buffer's bounding box, or the origin
// for an empty path.
func (p *Path) Center() Point3 {
	if len(p.Points) == 0 {
		return Point3{}
	}
	lo, hi := p.Points[0], p.Points[0]
	for _, pt := range p.Points[1:] {
		lo.X, hi.X = min(lo.X, pt.X), max(hi.X, pt.X)
		lo.Y, hi.Y = min(lo.Y, pt.Y), max(hi.Y, pt.Y)
		lo.Z, hi.Z = min(lo.Z, pt.Z), max(hi.Z, pt.Z)
	}
	return lo.Midpoint(hi)
}

// ScaleHandles moves every handle toward or away from its anchor by the
// given factor, leaving anchors in place. Factors below 1 flatten the
// path's curvature, factors above 1 exaggerate it.
func (p *Path) ScaleHandles(factor float64) {
	for i := 0; i+4 <= len(p.Points); i += 4 {
		a1, h1, h2, a2 := p.Points[i], p.Points[i+1], p.Points[i+2], p.Points[i+3]
		p.Points[i+1] = a1.Translate(h1.Sub(a1).Mul(factor))
		p.Points[i+2] = a2.Translate(h2.Sub(a2).Mul(factor))
	}
}
