// Package morph provides mutable cubic Bézier paths for vector graphics
// animation. It covers building and editing paths, smoothing them, measuring
// them, cutting them apart, and, most importantly, aligning two arbitrary
// paths so that one can be continuously deformed into the other.
//
// # Features
//
// We provide the following notable features:
//
//   - Morphing (see [Path.AlignWith] and [Path.Interpolate])
//   - Partial paths (see [Path.BecomePartial] and [Path.Subcurve])
//   - Smoothing (see [Path.MakeSmooth] and [Path.SmoothTo])
//   - Measuring (see [Path.ArcLength] and [Path.PointFromProportion])
//   - Dashing (see [NewDashed])
//   - Reading and writing SVG path data (see [ParsePath] and [Path.SVG])
//
// # Point buffers
//
// The central type is [Path], which stores its geometry as a flat buffer of
// [Point3] values. Every group of four consecutive points describes one cubic
// Bézier curve: start anchor, first handle, second handle, end anchor. Curves
// don't share points. A curve that starts where the previous curve ended
// continues that subpath; one that starts elsewhere begins a new subpath (see
// [Path.Subpaths]).
//
// Everything is a cubic. Lines are stored with their handles at the third
// points and quadratic Béziers are raised to cubics (see [QuadBez.Raise]), so
// all path manipulation deals with a single, uniform representation. Points
// live in three dimensions. Planar paths simply leave Z at zero, and
// operations that are inherently two-dimensional, such as [Path.Direction],
// project onto the XY plane.
//
// This representation is what makes morphing simple: two paths whose buffers
// have the same length interpolate index by index. [Path.AlignWith] brings
// two arbitrary paths into that form by padding the path that has fewer
// subpaths and subdividing curves (see [Path.InsertCurves]) until both
// buffers match, after which [Path.Interpolate] blends both geometry and
// style.
//
// # Building paths
//
// [Path.MoveTo], [Path.LineTo], [Path.QuadTo], [Path.CubicTo], and
// [Path.ClosePath] work like the drawing commands in graphics APIs such as
// PostScript. [Path.SmoothTo] appends a curve that continues the previous one
// with a matching tangent. [Path.SetCorners] and [Path.AddCorners] build
// polylines, and [Path.MakeSmooth] replaces the handles of every subpath with
// those of the C² continuous spline through its anchors, solving a
// tridiagonal system per subpath (a cyclic one for closed subpaths).
// [Path.MakeJagged] is its inverse.
//
// The [Arc], [Circle], [Ellipse], and [Polygon] functions construct common
// shapes, and [ParsePath] builds paths from SVG path data, including
// elliptical arcs.
//
// # Measuring
//
// [Path.ArcLength] approximates path length by sampling. On top of it,
// [Path.PointFromProportion] finds the point a given fraction of the length
// along the path, and [Path.ProportionFromPoint] is its inverse.
// [Path.BecomePartial] and [Path.Subcurve] extract the stretch of a path
// between two such fractions, which is what partial drawing animations and
// the [Dashed] decomposition are made of.
//
// # Styling
//
// A [Path] carries a [Style]: fill, stroke, and background stroke colors as
// [RGBA] slices that are spread along the path like gradient stops, plus
// stroke widths. Styles align and interpolate just like geometry does, so a
// morph blends colors along with shape.
//
// # Hierarchies
//
// Scenes arrange paths in trees. [Node] and [PathNode] describe the tree
// structure, [Group] is the basic container, and [Dict] is a container whose
// members are additionally reachable by name. [VectorPoint] disguises a
// single point as a path so that positions can participate in animations, and
// [CurveParts] splits a path into one path per curve. [Family] flattens a
// tree into a slice, and [EachPath] visits all paths in one.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [Smooth Bézier spline through prescribed points] by Lubos Brieda
//   - [Rodrigues' rotation formula]
//   - [Sherman-Morrison formula]
//   - [SVG implementation notes] (conversion from endpoint to center
//     parameterization)
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [Smooth Bézier spline through prescribed points]: https://www.particleincell.com/2012/bezier-splines/
// [Rodrigues' rotation formula]: https://en.wikipedia.org/wiki/Rodrigues%27_rotation_formula
// [Sherman-Morrison formula]: https://en.wikipedia.org/wiki/Sherman%E2%80%93Morrison_formula
// [SVG implementation notes]: https://www.w3.org/TR/SVG2/implnote.html#ArcConversionEndpointToCenter
package morph
