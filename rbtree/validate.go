package rbtree

// Valid independently re-derives the structural invariants: the root
// exists and is black, no red node has a red child, and every path
// from a node down to a logical leaf crosses the same number of black
// nodes. It is a diagnostic; Insert, Search, and Remove never call it.
// An empty tree is rejected.
func (t *Tree[V]) Valid() bool {
	if t.root == nil {
		return false
	}
	if colorOf(t.root) != black {
		return false
	}
	_, ok := blackHeight(t.root)
	return ok
}

// blackHeight returns the subtree's black-height, counting the logical
// leaf, and whether the subtree is well formed. The height rides the
// return value so that nested audits never share state.
func blackHeight[V any](n *node[V]) (int, bool) {
	if n == nil {
		return 1, true
	}
	if colorOf(n) == red && (colorOf(n.left) == red || colorOf(n.right) == red) {
		return 0, false
	}
	lh, ok := blackHeight(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := blackHeight(n.right)
	if !ok || lh != rh {
		return 0, false
	}
	if colorOf(n) == black {
		lh++
	}
	return lh, true
}
