package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Geometries is a collection of intersectables with an optional BVH.
//
// Bounded entries are clustered into one hierarchy by Build. Unbounded
// entries (planes, tubes) form a separate partition that is scanned on every
// query and never merged. Adding entries invalidates the hierarchy; the next
// Build flattens everything and clusters from scratch.
//
// Build must not run concurrently with queries or Add.
type Geometries struct {
	bounded   []Intersectable // flat entries, or the single BVH root once built
	unbounded []Intersectable
	built     bool
}

// NewGeometries creates a container holding the given entries
func NewGeometries(entries ...Intersectable) *Geometries {
	g := &Geometries{}
	g.Add(entries...)
	return g
}

// Add appends entries and drops any built hierarchy
func (g *Geometries) Add(entries ...Intersectable) {
	if g.built {
		g.Flatten()
	}
	for _, e := range entries {
		if e == nil {
			continue
		}
		if e.BoundingBox().Unbounded {
			g.unbounded = append(g.unbounded, e)
		} else {
			g.bounded = append(g.bounded, e)
		}
	}
}

// Build flattens any existing hierarchy and clusters the bounded entries into a new BVH
func (g *Geometries) Build() {
	g.Flatten()
	if root := cluster(g.bounded); root != nil {
		g.bounded = []Intersectable{root}
	}
	g.built = true
}

// Flatten dissolves the hierarchy, and any nested containers, back to leaf entries
func (g *Geometries) Flatten() {
	var bounded, unbounded []Intersectable
	collect := func(e Intersectable) {
		for _, leaf := range leaves(e) {
			if leaf.BoundingBox().Unbounded {
				unbounded = append(unbounded, leaf)
			} else {
				bounded = append(bounded, leaf)
			}
		}
	}
	for _, e := range g.bounded {
		collect(e)
	}
	for _, e := range g.unbounded {
		collect(e)
	}
	g.bounded, g.unbounded = bounded, unbounded
	g.built = false
}

// leaves expands composites and nested containers into their primitives
func leaves(e Intersectable) []Intersectable {
	switch node := e.(type) {
	case *Composite:
		return append(leaves(node.Left), leaves(node.Right)...)
	case *Geometries:
		var out []Intersectable
		for _, child := range node.bounded {
			out = append(out, leaves(child)...)
		}
		for _, child := range node.unbounded {
			out = append(out, leaves(child)...)
		}
		return out
	default:
		return []Intersectable{e}
	}
}

// IsBuilt reports whether a hierarchy is in place
func (g *Geometries) IsBuilt() bool {
	return g.built
}

// Len returns the number of leaf primitives
func (g *Geometries) Len() int {
	return len(leaves(g))
}

// Primitives returns the leaf primitives, bounded first
func (g *Geometries) Primitives() []Intersectable {
	return leaves(g)
}

// FindIntersections aggregates every hit across the container. Unbounded
// entries are always scanned; bounded entries prune by box when accelerate is set.
func (g *Geometries) FindIntersections(ray core.Ray, maxDistance float64, accelerate bool) []Intersection {
	var hits []Intersection
	for _, e := range g.bounded {
		hits = append(hits, e.FindIntersections(ray, maxDistance, accelerate)...)
	}
	for _, e := range g.unbounded {
		hits = append(hits, e.FindIntersections(ray, maxDistance, accelerate)...)
	}
	return hits
}

// BoundingBox returns the union of all entries; unbounded if any entry is
func (g *Geometries) BoundingBox() core.AABB {
	if len(g.unbounded) > 0 {
		return core.UnboundedAABB()
	}
	if len(g.bounded) == 0 {
		return core.AABB{}
	}
	box := g.bounded[0].BoundingBox()
	for _, e := range g.bounded[1:] {
		box = box.Union(e.BoundingBox())
	}
	return box
}

// Stats returns statistics about the current hierarchy
func (g *Geometries) Stats() BVHStats {
	stats := BVHStats{Unbounded: len(g.unbounded)}
	for _, e := range g.bounded {
		collectStats(e, 0, &stats)
	}
	return stats
}
