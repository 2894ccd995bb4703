package morph

import (
	"slices"
)

// An RGBA is a color with red, green, blue, and alpha components,
// conventionally in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Lerp linearly interpolates the color towards o.
func (c RGBA) Lerp(o RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + t*(o.R-c.R),
		G: c.G + t*(o.G-c.G),
		B: c.B + t*(o.B-c.B),
		A: c.A + t*(o.A-c.A),
	}
}

// A Style holds the visual attributes carried along a path's geometry.
// Each color slot holds zero or more colors; renderers spread multiple
// colors along the path as a gradient. The zero value is an unstyled
// path.
type Style struct {
	// FillRGBAs colors the path's interior.
	FillRGBAs []RGBA
	// StrokeRGBAs colors the outline.
	StrokeRGBAs []RGBA
	// BackgroundStrokeRGBAs colors a second outline drawn behind
	// everything else, so a path keeps a halo when overdrawn.
	BackgroundStrokeRGBAs []RGBA
	StrokeWidth           float64
	BackgroundStrokeWidth float64
}

// Clone returns a copy of the style that shares nothing with s.
func (s Style) Clone() Style {
	s.FillRGBAs = slices.Clone(s.FillRGBAs)
	s.StrokeRGBAs = slices.Clone(s.StrokeRGBAs)
	s.BackgroundStrokeRGBAs = slices.Clone(s.BackgroundStrokeRGBAs)
	return s
}

// stretchRGBAs resamples rgbas to length n by repeating entries in order.
// An empty input yields n transparent entries.
func stretchRGBAs(rgbas []RGBA, n int) []RGBA {
	if len(rgbas) == 0 {
		return make([]RGBA, n)
	}
	out := make([]RGBA, n)
	for i := range out {
		out[i] = rgbas[i*len(rgbas)/n]
	}
	return out
}

func alignRGBAs(a, b *[]RGBA) {
	if len(*a) > len(*b) {
		*b = stretchRGBAs(*b, len(*a))
	} else if len(*b) > len(*a) {
		*a = stretchRGBAs(*a, len(*b))
	}
}

func (s *Style) alignWith(o *Style) {
	alignRGBAs(&s.FillRGBAs, &o.FillRGBAs)
	alignRGBAs(&s.StrokeRGBAs, &o.StrokeRGBAs)
	alignRGBAs(&s.BackgroundStrokeRGBAs, &o.BackgroundStrokeRGBAs)
}

func lerpRGBAs(a, b []RGBA, alpha float64) []RGBA {
	n := max(len(a), len(b))
	if n == 0 {
		return nil
	}
	a = stretchRGBAs(a, n)
	b = stretchRGBAs(b, n)
	out := make([]RGBA, n)
	for i := range out {
		out[i] = a[i].Lerp(b[i], alpha)
	}
	return out
}

// Interpolate returns the blend of s and o at alpha. Color slots of
// different lengths are stretched to match first; an empty slot blends as
// transparent.
func (s Style) Interpolate(o Style, alpha float64) Style {
	return Style{
		FillRGBAs:             lerpRGBAs(s.FillRGBAs, o.FillRGBAs, alpha),
		StrokeRGBAs:           lerpRGBAs(s.StrokeRGBAs, o.StrokeRGBAs, alpha),
		BackgroundStrokeRGBAs: lerpRGBAs(s.BackgroundStrokeRGBAs, o.BackgroundStrokeRGBAs, alpha),
		StrokeWidth:           s.StrokeWidth + alpha*(o.StrokeWidth-s.StrokeWidth),
		BackgroundStrokeWidth: s.BackgroundStrokeWidth + alpha*(o.BackgroundStrokeWidth-s.BackgroundStrokeWidth),
	}
}

// SetFill replaces the path's fill colors.
func (p *Path) SetFill(colors ...RGBA) {
	p.Style.FillRGBAs = slices.Clone(colors)
}

// SetStroke replaces the path's stroke width and colors.
func (p *Path) SetStroke(width float64, colors ...RGBA) {
	p.Style.StrokeWidth = width
	p.Style.StrokeRGBAs = slices.Clone(colors)
}

// SetBackgroundStroke replaces the path's background stroke width and
// colors.
func (p *Path) SetBackgroundStroke(width float64, colors ...RGBA) {
	p.Style.BackgroundStrokeWidth = width
	p.Style.BackgroundStrokeRGBAs = slices.Clone(colors)
}

// MatchStyle copies src's style onto p, leaving the geometry alone.
func (p *Path) MatchStyle(src *Path) {
	p.Style = src.Style.Clone()
}

// AlignStyle stretches the color slots of p and o to matching lengths,
// mutating whichever side of each slot is shorter.
func (p *Path) AlignStyle(o *Path) {
	p.Style.alignWith(&o.Style)
}
