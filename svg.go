package morph

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [Path.SVG] and
// [Path.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG renders the path's xy projection as a string of SVG path commands.
//
// See [Path.WriteSVG] for a version that writes to an [io.Writer] instead
// of returning a string.
func (p *Path) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG renders the path's xy projection as SVG path commands and
// writes them to w. Every subpath becomes one M command followed by C
// commands, with a trailing Z when the subpath returns to its start
// within tolerance. The z coordinate is dropped.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func (p *Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	write := func(s string) {
		if err != nil {
			return
		}
		_, err = io.WriteString(w, s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			return strings.TrimRight(s, "0")
		}
	}
	first := true
	for _, sub := range p.Subpaths() {
		if err != nil {
			return err
		}
		if !first {
			write(" ")
		}
		first = false
		writef("M%s,%s", format(sub[0].X), format(sub[0].Y))
		for i := 0; i+4 <= len(sub); i += 4 {
			writef(" C%s,%s %s,%s %s,%s",
				format(sub[i+1].X), format(sub[i+1].Y),
				format(sub[i+2].X), format(sub[i+2].Y),
				format(sub[i+3].X), format(sub[i+3].Y))
		}
		if pointsWithin(sub[0], sub[len(sub)-1], p.tol()) {
			write(" Z")
		}
	}
	return err
}
