package morph

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// ParsePath parses SVG path data into a path in the z = 0 plane. The full
// command set is accepted, absolute and relative: M, L, H, V, C, S, Q, T,
// A and Z. Elliptical arcs are converted to runs of cubic segments.
// Coordinates may be separated by whitespace or commas; an omitted
// command letter repeats the previous command, with extra pairs after a
// moveto drawing lines. Arc flags must be separated like any other
// number.
func ParsePath(data string) (*Path, error) {
	pp := &pathParser{data: []byte(data), path: &Path{}}
	if err := pp.run(); err != nil {
		return nil, err
	}
	return pp.path, nil
}

type pathParser struct {
	data []byte
	pos  int
	path *Path

	// Control point of the previous curve command, reflected by the
	// smooth commands.
	cpx, cpy float64
	prevCmd  byte
}

func (pp *pathParser) errorf(format string, args ...any) error {
	args = append([]any{pp.pos}, args...)
	return fmt.Errorf("invalid path data at offset %d: "+format, args...)
}

func (pp *pathParser) wrap(err error) error {
	return fmt.Errorf("invalid path data at offset %d: %w", pp.pos, err)
}

func (pp *pathParser) skipSep() {
	for pp.pos < len(pp.data) {
		switch pp.data[pp.pos] {
		case ' ', ',', '\n', '\r', '\t':
			pp.pos++
		default:
			return
		}
	}
}

func (pp *pathParser) number() (float64, error) {
	pp.skipSep()
	f, n := strconv.ParseFloat(pp.data[pp.pos:])
	if n == 0 {
		return 0, pp.errorf("expected a number")
	}
	pp.pos += n
	return f, nil
}

func (pp *pathParser) pair() (x, y float64, err error) {
	x, err = pp.number()
	if err != nil {
		return 0, 0, err
	}
	y, err = pp.number()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func isPathCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'Z', 'z', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	}
	return false
}

func (pp *pathParser) run() error {
	pp.skipSep()
	for pp.pos < len(pp.data) {
		c := pp.data[pp.pos]
		cmd := pp.prevCmd
		switch {
		case isPathCommand(c):
			cmd = c
			pp.pos++
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z':
			return pp.errorf("unknown command %q", c)
		case cmd == 0:
			return pp.errorf("expected a command, found %q", c)
		case cmd == 'Z' || cmd == 'z':
			return pp.errorf("expected a command after closepath, found %q", c)
		case cmd == 'M':
			cmd = 'L'
		case cmd == 'm':
			cmd = 'l'
		}
		if pp.prevCmd == 0 && cmd != 'M' && cmd != 'm' {
			return pp.errorf("path data must begin with a moveto command")
		}
		if err := pp.command(cmd); err != nil {
			return err
		}
		pp.prevCmd = cmd
		pp.skipSep()
	}
	return nil
}

func (pp *pathParser) command(cmd byte) error {
	rel := cmd >= 'a'
	var cur Point3
	if n := len(pp.path.Points); n > 0 {
		cur = pp.path.Points[n-1]
	}
	switch cmd {
	case 'M', 'm':
		x, y, err := pp.pair()
		if err != nil {
			return err
		}
		if rel {
			x += cur.X
			y += cur.Y
		}
		pp.path.MoveTo(Pt(x, y, 0))
	case 'Z', 'z':
		if err := pp.path.ClosePath(); err != nil {
			return pp.wrap(err)
		}
	case 'L', 'l':
		x, y, err := pp.pair()
		if err != nil {
			return err
		}
		if rel {
			x += cur.X
			y += cur.Y
		}
		if err := pp.path.LineTo(Pt(x, y, 0)); err != nil {
			return pp.wrap(err)
		}
	case 'H', 'h':
		x, err := pp.number()
		if err != nil {
			return err
		}
		if rel {
			x += cur.X
		}
		if err := pp.path.LineTo(Pt(x, cur.Y, 0)); err != nil {
			return pp.wrap(err)
		}
	case 'V', 'v':
		y, err := pp.number()
		if err != nil {
			return err
		}
		if rel {
			y += cur.Y
		}
		if err := pp.path.LineTo(Pt(cur.X, y, 0)); err != nil {
			return pp.wrap(err)
		}
	case 'C', 'c':
		x1, y1, err := pp.pair()
		if err != nil {
			return err
		}
		x2, y2, err := pp.pair()
		if err != nil {
			return err
		}
		x, y, err := pp.pair()
		if err != nil {
			return err
		}
		if rel {
			x1, y1 = x1+cur.X, y1+cur.Y
			x2, y2 = x2+cur.X, y2+cur.Y
			x, y = x+cur.X, y+cur.Y
		}
		if err := pp.path.CubicTo(Pt(x1, y1, 0), Pt(x2, y2, 0), Pt(x, y, 0)); err != nil {
			return pp.wrap(err)
		}
		pp.cpx, pp.cpy = x2, y2
	case 'S', 's':
		x2, y2, err := pp.pair()
		if err != nil {
			return err
		}
		x, y, err := pp.pair()
		if err != nil {
			return err
		}
		if rel {
			x2, y2 = x2+cur.X, y2+cur.Y
			x, y = x+cur.X, y+cur.Y
		}
		x1, y1 := cur.X, cur.Y
		switch pp.prevCmd {
		case 'C', 'c', 'S', 's':
			x1, y1 = 2*cur.X-pp.cpx, 2*cur.Y-pp.cpy
		}
		if err := pp.path.CubicTo(Pt(x1, y1, 0), Pt(x2, y2, 0), Pt(x, y, 0)); err != nil {
			return pp.wrap(err)
		}
		pp.cpx, pp.cpy = x2, y2
	case 'Q', 'q':
		x1, y1, err := pp.pair()
		if err != nil {
			return err
		}
		x, y, err := pp.pair()
		if err != nil {
			return err
		}
		if rel {
			x1, y1 = x1+cur.X, y1+cur.Y
			x, y = x+cur.X, y+cur.Y
		}
		if err := pp.path.QuadTo(Pt(x1, y1, 0), Pt(x, y, 0)); err != nil {
			return pp.wrap(err)
		}
		pp.cpx, pp.cpy = x1, y1
	case 'T', 't':
		x, y, err := pp.pair()
		if err != nil {
			return err
		}
		if rel {
			x, y = x+cur.X, y+cur.Y
		}
		x1, y1 := cur.X, cur.Y
		switch pp.prevCmd {
		case 'Q', 'q', 'T', 't':
			x1, y1 = 2*cur.X-pp.cpx, 2*cur.Y-pp.cpy
		}
		if err := pp.path.QuadTo(Pt(x1, y1, 0), Pt(x, y, 0)); err != nil {
			return pp.wrap(err)
		}
		pp.cpx, pp.cpy = x1, y1
	case 'A', 'a':
		var nums [7]float64
		for i := range nums {
			n, err := pp.number()
			if err != nil {
				return err
			}
			nums[i] = n
		}
		rx, ry := math.Abs(nums[0]), math.Abs(nums[1])
		xRot := nums[2] * math.Pi / 180
		large := math.Abs(nums[3]-1) < 1e-10
		sweep := math.Abs(nums[4]-1) < 1e-10
		x, y := nums[5], nums[6]
		if rel {
			x += cur.X
			y += cur.Y
		}
		if err := pp.arc(cur, rx, ry, xRot, large, sweep, x, y); err != nil {
			return err
		}
	default:
		panic("unreachable")
	}
	return nil
}

func (pp *pathParser) arc(cur Point3, rx, ry, xRot float64, large, sweep bool, x, y float64) error {
	if len(pp.path.Points) == 0 {
		return pp.wrap(ErrNoPoints)
	}
	// Zero radii and coincident endpoints degenerate per the W3C notes.
	if rx == 0 || ry == 0 {
		if err := pp.path.LineTo(Pt(x, y, 0)); err != nil {
			return pp.wrap(err)
		}
		return nil
	}
	if cur.X == x && cur.Y == y {
		return nil
	}
	cx, cy, rx, ry, start, delta := arcCenter(cur.X, cur.Y, rx, ry, xRot, large, sweep, x, y)
	if err := appendArcSegments(pp.path, Pt(cx, cy, 0), rx, ry, xRot, start, delta); err != nil {
		return pp.wrap(err)
	}
	// Snap the final anchor to the exact endpoint.
	pp.path.Points[len(pp.path.Points)-1] = Pt(x, y, 0)
	return nil
}

// arcCenter converts an arc from the SVG endpoint parameterization to
// center and angles, following the W3C implementation notes at
// <https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes>. Radii
// too small to span the endpoints are scaled up and returned alongside
// the center, the start angle and the signed sweep.
func arcCenter(x1, y1, rx, ry, xRot float64, large, sweep bool, x2, y2 float64) (cx, cy, rxAdj, ryAdj, startAngle, sweepAngle float64) {
	sinR, cosR := math.Sincos(xRot)
	x1p := cosR*(x1-x2)/2 + sinR*(y1-y2)/2
	y1p := -sinR*(x1-x2)/2 + cosR*(y1-y2)/2

	check := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if check > 1 {
		rx *= math.Sqrt(check)
		ry *= math.Sqrt(check)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0 {
		sq = 0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx = cosR*cxp - sinR*cyp + (x1+x2)/2
	cy = sinR*cxp + cosR*cyp + (y1+y2)/2

	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	startAngle = math.Acos(ux / math.Hypot(ux, uy))
	if uy < 0 {
		startAngle = -startAngle
	}
	delta := math.Acos((ux*vx + uy*vy) / math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))
	if ux*vy-uy*vx < 0 {
		delta = -delta
	}
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	return cx, cy, rx, ry, startAngle, delta
}
