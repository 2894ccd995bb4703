package morph

import (
	"math"
)

// Arc returns the circular arc around center with the given radius,
// starting at startAngle and sweeping sweep radians counterclockwise, in
// the z = 0 plane. Negative sweeps run clockwise.
func Arc(center Point3, radius, startAngle, sweep float64) *Path {
	p := &Path{}
	p.MoveTo(center.Translate(sampleEllipse(radius, radius, 0, startAngle)))
	if err := appendArcSegments(p, center, radius, radius, 0, startAngle, sweep); err != nil {
		panic(err)
	}
	return p
}

// Circle returns a full circle around center in the z = 0 plane. The
// resulting path closes within [DefaultTolerance].
func Circle(center Point3, radius float64) *Path {
	return Arc(center, radius, 0, 2*math.Pi)
}

// Ellipse returns a full axis-aligned ellipse around center in the z = 0
// plane.
func Ellipse(center Point3, rx, ry float64) *Path {
	p := &Path{}
	p.MoveTo(center.Translate(sampleEllipse(rx, ry, 0, 0)))
	if err := appendArcSegments(p, center, rx, ry, 0, 0, 2*math.Pi); err != nil {
		panic(err)
	}
	return p
}

// Polygon returns the closed polygon through the given vertices, each
// side a straight segment. The last side returns to the first vertex.
func Polygon(vertices ...Point3) *Path {
	p := &Path{}
	if len(vertices) == 0 {
		return p
	}
	pts := make([]Point3, 0, len(vertices)+1)
	pts = append(pts, vertices...)
	pts = append(pts, vertices[0])
	p.SetCorners(pts...)
	return p
}

// appendArcSegments extends p with cubic segments tracing the elliptical
// arc around center from startAngle over sweep radians, with the radii
// rotated by xRot. The path's last point must already sit at the arc's
// start. A full turn takes eight segments; shorter arcs still take two.
func appendArcSegments(p *Path, center Point3, rx, ry, xRot, startAngle, sweep float64) error {
	if sweep == 0 {
		return nil
	}
	n := max(2, math.Ceil(math.Abs(sweep)*(4/math.Pi)))
	angleStep := sweep / n
	armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweep)
	angle0 := startAngle
	p0 := sampleEllipse(rx, ry, xRot, angle0)
	for range int(n) {
		angle1 := angle0 + angleStep
		p1 := p0.Add(sampleEllipse(rx, ry, xRot, angle0+math.Pi/2).Mul(armLen))
		p3 := sampleEllipse(rx, ry, xRot, angle1)
		p2 := p3.Sub(sampleEllipse(rx, ry, xRot, angle1+math.Pi/2).Mul(armLen))

		angle0 = angle1
		p0 = p3

		if err := p.CubicTo(
			center.Translate(p1),
			center.Translate(p2),
			center.Translate(p3),
		); err != nil {
			return err
		}
	}
	return nil
}

// sampleEllipse returns the point at the given angle of an ellipse with
// the given radii rotated by xRotation, as an offset from its center in
// the z = 0 plane.
func sampleEllipse(rx, ry, xRotation, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	u := rx * cos
	v := ry * sin
	sinR, cosR := math.Sincos(xRotation)
	return Vec3{X: u*cosR - v*sinR, Y: u*sinR + v*cosR}
}
