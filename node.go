package morph

import (
	"errors"
	"fmt"
	"slices"
)

// A Node is a member of a display tree.
type Node interface {
	// Children returns the node's direct members, in draw order.
	Children() []Node
}

// A PathNode is a node that carries path geometry of its own.
type PathNode interface {
	Node
	Path() *Path
}

// Children implements [Node]; a bare path has no members.
func (p *Path) Children() []Node { return nil }

// Path implements [PathNode].
func (p *Path) Path() *Path { return p }

// A MemberError reports a value that cannot become a group member.
type MemberError struct {
	// Index is the position of the offending argument. Elem is the
	// position inside it when the argument was a slice, -1 otherwise.
	Index int
	Elem  int
	// Value is the rejected value.
	Value any
}

func (e *MemberError) Error() string {
	if e.Elem >= 0 {
		return fmt.Sprintf("cannot add %v of type %T (argument %d, element %d) to a group: not a usable path node",
			e.Value, e.Value, e.Index, e.Elem)
	}
	return fmt.Sprintf("cannot add %v of type %T (argument %d) to a group: not a usable path node",
		e.Value, e.Value, e.Index)
}

// A Group is an interior node. It draws nothing itself but owns a path
// whose style stands for the group as a whole.
type Group struct {
	path     Path
	children []Node
}

// NewGroup returns a group with the given members. Nil members and
// duplicates are ignored.
func NewGroup(members ...PathNode) *Group {
	g := &Group{}
	for _, m := range members {
		if m == nil || g.contains(m) {
			continue
		}
		g.children = append(g.children, m)
	}
	return g
}

// Path returns the group's own path. It carries the group's style and no
// geometry.
func (g *Group) Path() *Path { return &g.path }

// Children returns the group's live member list, in draw order.
func (g *Group) Children() []Node { return g.children }

func (g *Group) contains(n Node) bool {
	for _, c := range g.children {
		if c == n {
			return true
		}
	}
	return false
}

func (g *Group) check(n PathNode, i, j int) error {
	if n == nil {
		return &MemberError{Index: i, Elem: j, Value: n}
	}
	if n == PathNode(g) {
		return errors.New("a group cannot contain itself")
	}
	return nil
}

// Add appends members to the group. It accepts [PathNode] values as well
// as slices of them ([]PathNode or []*Path). All arguments are validated
// before any is added, so a failed call leaves the group unchanged.
// Members already present are skipped.
func (g *Group) Add(items ...any) error {
	var nodes []PathNode
	for i, item := range items {
		switch v := item.(type) {
		case PathNode:
			if err := g.check(v, i, -1); err != nil {
				return err
			}
			nodes = append(nodes, v)
		case []PathNode:
			for j, m := range v {
				if err := g.check(m, i, j); err != nil {
					return err
				}
				nodes = append(nodes, m)
			}
		case []*Path:
			for j, m := range v {
				if m == nil {
					return &MemberError{Index: i, Elem: j, Value: m}
				}
				nodes = append(nodes, m)
			}
		default:
			return &MemberError{Index: i, Elem: -1, Value: item}
		}
	}
	for _, n := range nodes {
		if !g.contains(n) {
			g.children = append(g.children, n)
		}
	}
	return nil
}

// Remove removes members from the group. Values not present are ignored.
func (g *Group) Remove(members ...Node) {
	for _, m := range members {
		for i, c := range g.children {
			if c == m {
				g.children = slices.Delete(g.children, i, i+1)
				break
			}
		}
	}
}

// Family returns n followed by all nodes below it, depth first, listing
// each node once. A node reachable along several branches keeps its last
// position.
func Family(n Node) []Node {
	var all []Node
	var walk func(Node)
	walk = func(n Node) {
		all = append(all, n)
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(n)

	seen := make(map[Node]bool, len(all))
	out := make([]Node, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if !seen[all[i]] {
			seen[all[i]] = true
			out = append(out, all[i])
		}
	}
	slices.Reverse(out)
	return out
}

// EachPath calls f for every path in n's family, in family order.
func EachPath(n Node, f func(*Path)) {
	for _, member := range Family(n) {
		if pn, ok := member.(PathNode); ok {
			f(pn.Path())
		}
	}
}

// A VectorPoint is a node holding a single location, used as an invisible
// anchor or placeholder in a tree.
type VectorPoint struct {
	path Path
}

// NewVectorPoint returns a point node at the given location.
func NewVectorPoint(location Point3) *VectorPoint {
	vp := &VectorPoint{}
	vp.SetLocation(location)
	return vp
}

// Path returns the underlying single-point path.
func (v *VectorPoint) Path() *Path { return &v.path }

// Children implements [Node].
func (v *VectorPoint) Children() []Node { return nil }

// Location returns the node's position.
func (v *VectorPoint) Location() Point3 {
	if len(v.path.Points) == 0 {
		return Point3{}
	}
	return v.path.Points[0]
}

// SetLocation moves the node.
func (v *VectorPoint) SetLocation(pt Point3) {
	v.path.SetPoints([]Point3{pt})
}

// CurveParts breaks a path into one child per cubic curve, each child a
// path carrying a copy of the source's style. Animations can then drive
// every curve separately.
type CurveParts struct {
	Group
}

// NewCurveParts returns the per-curve decomposition of src.
func NewCurveParts(src *Path) *CurveParts {
	cp := &CurveParts{}
	for c := range src.Curves() {
		part := &Path{Tolerance: src.Tolerance}
		part.SetPoints([]Point3{c.P0, c.P1, c.P2, c.P3})
		part.MatchStyle(src)
		cp.children = append(cp.children, part)
	}
	return cp
}

// PointFromProportion returns the point at the given fraction of the
// parts' combined sampled arc length, with alpha in [0, 1]. Children
// without points are passed over; if no child has points the error is
// [ErrNoPoints].
func (cp *CurveParts) PointFromProportion(alpha float64) (Point3, error) {
	if alpha < 0 || alpha > 1 {
		return Point3{}, fmt.Errorf("alpha %v not between 0 and 1", alpha)
	}
	var parts []*Path
	for _, c := range cp.children {
		if pn, ok := c.(PathNode); ok && len(pn.Path().Points) > 0 {
			parts = append(parts, pn.Path())
		}
	}
	if len(parts) == 0 {
		return Point3{}, ErrNoPoints
	}
	if alpha == 1 {
		last := parts[len(parts)-1]
		return last.Points[len(last.Points)-1], nil
	}
	lengths := make([]float64, len(parts))
	var total float64
	for i, part := range parts {
		lengths[i] = part.ArcLength(defaultCurveSamples)
		total += lengths[i]
	}
	target := alpha * total
	var acc float64
	for i, part := range parts {
		if acc+lengths[i] >= target {
			residue := 0.0
			if lengths[i] != 0 {
				residue = (target - acc) / lengths[i]
			}
			return part.PointFromProportion(residue)
		}
		acc += lengths[i]
	}
	last := parts[len(parts)-1]
	return last.Points[len(last.Points)-1], nil
}
