package game

// RectF is an axis-aligned rectangle in world space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r RectF) contains(o RectF) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

const (
	quadCapacity = 8
	quadMaxDepth = 6
)

type quadEntry struct {
	key    ChunkKey
	bounds RectF
}

// quadNode is a quadtree over loaded chunk bounds, used for view-rect
// culling queries from the renderer/minimap contract. It is rebuilt when
// the loaded set changes and never mutated by queries.
type quadNode struct {
	bounds  RectF
	depth   int
	entries []quadEntry
	kids    *[4]quadNode
}

func newQuadNode(bounds RectF, depth int) *quadNode {
	return &quadNode{bounds: bounds, depth: depth}
}

func (n *quadNode) insert(key ChunkKey, b RectF) {
	if n.kids != nil {
		for i := range n.kids {
			if n.kids[i].bounds.contains(b) {
				n.kids[i].insert(key, b)
				return
			}
		}
	}

	n.entries = append(n.entries, quadEntry{key: key, bounds: b})
	if n.kids == nil && len(n.entries) > quadCapacity && n.depth < quadMaxDepth {
		n.split()
	}
}

func (n *quadNode) split() {
	mx := (n.bounds.X0 + n.bounds.X1) / 2
	my := (n.bounds.Y0 + n.bounds.Y1) / 2
	n.kids = &[4]quadNode{
		{bounds: RectF{n.bounds.X0, n.bounds.Y0, mx, my}, depth: n.depth + 1},
		{bounds: RectF{mx, n.bounds.Y0, n.bounds.X1, my}, depth: n.depth + 1},
		{bounds: RectF{n.bounds.X0, my, mx, n.bounds.Y1}, depth: n.depth + 1},
		{bounds: RectF{mx, my, n.bounds.X1, n.bounds.Y1}, depth: n.depth + 1},
	}

	kept := n.entries[:0]
	for _, e := range n.entries {
		placed := false
		for i := range n.kids {
			if n.kids[i].bounds.contains(e.bounds) {
				n.kids[i].insert(e.key, e.bounds)
				placed = true
				break
			}
		}
		if !placed {
			kept = append(kept, e)
		}
	}
	n.entries = kept
}

func (n *quadNode) query(view RectF, out []ChunkKey) []ChunkKey {
	if !n.bounds.Intersects(view) {
		return out
	}
	for _, e := range n.entries {
		if e.bounds.Intersects(view) {
			out = append(out, e.key)
		}
	}
	if n.kids != nil {
		for i := range n.kids {
			out = n.kids[i].query(view, out)
		}
	}
	return out
}
