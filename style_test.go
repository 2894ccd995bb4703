package morph

import (
	"testing"
)

func TestRGBALerp(t *testing.T) {
	red := RGBA{1, 0, 0, 1}
	blue := RGBA{0, 0, 1, 0.5}
	diff(t, red, red.Lerp(blue, 0))
	diff(t, blue, red.Lerp(blue, 1))
	diff(t, RGBA{0.5, 0, 0.5, 0.75}, red.Lerp(blue, 0.5))
}

func TestStretchRGBAs(t *testing.T) {
	// An empty slot stretches to transparent entries.
	diff(t, []RGBA{{}, {}, {}}, stretchRGBAs(nil, 3))

	a := RGBA{1, 0, 0, 1}
	b := RGBA{0, 0, 1, 1}
	diff(t, []RGBA{a, a, b, b}, stretchRGBAs([]RGBA{a, b}, 4))
	diff(t, []RGBA{a, b}, stretchRGBAs([]RGBA{a, b}, 2))

	c := RGBA{0, 1, 0, 1}
	diff(t, []RGBA{a, c}, stretchRGBAs([]RGBA{a, b, c, {1, 1, 1, 1}}, 2))
}

func TestStyleInterpolate(t *testing.T) {
	s := Style{
		FillRGBAs:   []RGBA{{1, 0, 0, 1}},
		StrokeWidth: 2,
	}
	o := Style{
		FillRGBAs:   []RGBA{{0, 0, 1, 1}},
		StrokeWidth: 4,
	}
	got := s.Interpolate(o, 0.25)
	diff(t, []RGBA{{0.75, 0, 0.25, 1}}, got.FillRGBAs)
	diff(t, 2.5, got.StrokeWidth)

	// An empty slot blends as transparent.
	o.FillRGBAs = nil
	got = s.Interpolate(o, 0.5)
	diff(t, []RGBA{{0.5, 0, 0, 0.5}}, got.FillRGBAs)

	// Slots of different lengths are stretched to match.
	s.FillRGBAs = []RGBA{{1, 0, 0, 1}}
	o.FillRGBAs = []RGBA{{0, 1, 0, 1}, {0, 0, 1, 1}}
	got = s.Interpolate(o, 0.5)
	diff(t, []RGBA{{0.5, 0.5, 0, 1}, {0.5, 0, 0.5, 1}}, got.FillRGBAs)

	// Nothing blends to nothing.
	got = Style{}.Interpolate(Style{}, 0.5)
	if got.FillRGBAs != nil || got.StrokeRGBAs != nil || got.BackgroundStrokeRGBAs != nil {
		t.Error("empty slots should stay empty")
	}
}

func TestPathAlignStyle(t *testing.T) {
	red := RGBA{1, 0, 0, 1}
	p, o := &Path{}, &Path{}
	p.SetFill(red)
	o.SetFill(RGBA{0, 1, 0, 1}, RGBA{0, 1, 1, 1}, RGBA{0, 0, 1, 1})
	p.SetStroke(1, red, red)

	p.AlignStyle(o)
	diff(t, []RGBA{red, red, red}, p.Style.FillRGBAs)
	if len(o.Style.FillRGBAs) != 3 {
		t.Errorf("got %d fill colors, want 3", len(o.Style.FillRGBAs))
	}
	// Each slot aligns on its own; the other path gains transparent
	// strokes.
	diff(t, []RGBA{{}, {}}, o.Style.StrokeRGBAs)
}

func TestStyleClone(t *testing.T) {
	s := Style{
		FillRGBAs:   []RGBA{{1, 0, 0, 1}},
		StrokeRGBAs: []RGBA{{0, 0, 0, 1}},
		StrokeWidth: 3,
	}
	c := s.Clone()
	c.FillRGBAs[0] = RGBA{0, 1, 0, 1}
	c.StrokeRGBAs[0] = RGBA{1, 1, 1, 1}
	diff(t, RGBA{1, 0, 0, 1}, s.FillRGBAs[0])
	diff(t, RGBA{0, 0, 0, 1}, s.StrokeRGBAs[0])
	diff(t, 3.0, c.StrokeWidth)
}

func TestPathStyleSetters(t *testing.T) {
	p := &Path{}
	colors := []RGBA{{1, 0, 0, 1}, {0, 1, 0, 1}}
	p.SetFill(colors...)
	colors[0] = RGBA{0, 0, 0, 0}
	diff(t, RGBA{1, 0, 0, 1}, p.Style.FillRGBAs[0])

	p.SetStroke(2.5, RGBA{0, 0, 1, 1})
	diff(t, 2.5, p.Style.StrokeWidth)
	diff(t, []RGBA{{0, 0, 1, 1}}, p.Style.StrokeRGBAs)

	p.SetBackgroundStroke(5, RGBA{0, 0, 0, 1})
	diff(t, 5.0, p.Style.BackgroundStrokeWidth)
	diff(t, []RGBA{{0, 0, 0, 1}}, p.Style.BackgroundStrokeRGBAs)
}

func TestPathMatchStyle(t *testing.T) {
	p := &Path{}
	p.SetFill(RGBA{1, 0, 0, 1})
	p.SetStroke(2, RGBA{0, 0, 0, 1})

	q := square(3)
	q.MatchStyle(p)
	diff(t, p.Style.FillRGBAs, q.Style.FillRGBAs)
	diff(t, 2.0, q.Style.StrokeWidth)
	if len(q.Points) != 16 {
		t.Error("matching style should not touch the geometry")
	}

	// The copy shares nothing with the source.
	p.Style.FillRGBAs[0] = RGBA{0, 1, 0, 1}
	diff(t, RGBA{1, 0, 0, 1}, q.Style.FillRGBAs[0])
}
