package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Composite is an inner BVH node: two owned children and the exact union of their boxes
type Composite struct {
	Left  Intersectable
	Right Intersectable
	box   core.AABB
}

// NewComposite joins two bounded children under one box
func NewComposite(left, right Intersectable) *Composite {
	return &Composite{
		Left:  left,
		Right: right,
		box:   left.BoundingBox().Union(right.BoundingBox()),
	}
}

// BoundingBox returns the union of the children's boxes
func (c *Composite) BoundingBox() core.AABB {
	return c.box
}

// FindIntersections tests the node's box first when accelerate is set and
// only descends on a hit; otherwise it always descends into both children
func (c *Composite) FindIntersections(ray core.Ray, maxDistance float64, accelerate bool) []Intersection {
	if accelerate && !c.box.Hit(ray, maxDistance) {
		return nil
	}
	hits := c.Left.FindIntersections(ray, maxDistance, accelerate)
	return append(hits, c.Right.FindIntersections(ray, maxDistance, accelerate)...)
}

// cluster builds a binary hierarchy over bounded entries by agglomerative
// clustering: merge the closest pair of boxes until a single root remains.
//
// Each round scans all pairs, so the build is O(n³) in the number of entries.
// That is fine for tens to low hundreds of primitives; larger scenes need a
// different builder.
func cluster(entries []Intersectable) Intersectable {
	if len(entries) == 0 {
		return nil
	}

	nodes := make([]Intersectable, len(entries))
	copy(nodes, entries)
	boxes := make([]core.AABB, len(nodes))
	for i, n := range nodes {
		boxes[i] = n.BoundingBox()
	}

	for len(nodes) > 1 {
		bestI, bestJ := 0, 1
		bestDistance, bestSpread := math.Inf(1), math.Inf(1)

		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				d := boxes[i].DistanceTo(boxes[j])
				if d > bestDistance {
					continue
				}
				// Overlapping boxes all sit at distance zero; break ties by center spread
				spread := boxes[i].Center().DistanceSquared(boxes[j].Center())
				if d < bestDistance || spread < bestSpread {
					bestI, bestJ, bestDistance, bestSpread = i, j, d, spread
				}
			}
		}

		merged := NewComposite(nodes[bestI], nodes[bestJ])

		// bestJ > bestI, so removing bestJ first keeps bestI valid
		last := len(nodes) - 1
		nodes[bestJ], boxes[bestJ] = nodes[last], boxes[last]
		nodes, boxes = nodes[:last], boxes[:last]
		nodes[bestI], boxes[bestI] = merged, merged.box
	}

	return nodes[0]
}

// BVHStats contains statistics about the hierarchy
type BVHStats struct {
	TotalNodes int // Composite nodes plus leaves
	LeafNodes  int // Bounded primitives under the root
	MaxDepth   int
	Unbounded  int // Entries kept outside the hierarchy
}

// collectStats recursively collects statistics about the hierarchy
func collectStats(node Intersectable, depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if c, ok := node.(*Composite); ok {
		collectStats(c.Left, depth+1, stats)
		collectStats(c.Right, depth+1, stats)
		return
	}
	stats.LeafNodes++
}
