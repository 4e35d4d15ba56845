package rbtree

type Color uint8

const (
	red   Color = 0
	black Color = 1
)

// node is the physical tree node. Absent children are nil pointers
// (logical leaves); there is no data-bearing sentinel. The parent link
// is a back-reference only and never owns the node it points at.
type node[V any] struct {
	value  V
	color  Color
	left   *node[V]
	right  *node[V]
	parent *node[V]
}

// colorOf reads a node's color tag. A nil node is a logical leaf and
// counts as black. A tag that is neither red nor black means the
// structure has been corrupted, which is not a recoverable condition.
func colorOf[V any](n *node[V]) Color {
	if n == nil {
		return black
	}
	switch n.color {
	case red, black:
		return n.color
	}
	panic("rbtree: corrupt color tag")
}

// sibling returns the parent's other child. The caller guarantees the
// node has a parent.
func (n *node[V]) sibling() *node[V] {
	if n == n.parent.left {
		return n.parent.right
	}
	return n.parent.left
}

// uncle returns the grandparent's other child. The caller guarantees
// the node has a grandparent.
func (n *node[V]) uncle() *node[V] {
	return n.parent.sibling()
}

// minNode walks to the leftmost node of a non-empty subtree.
func minNode[V any](n *node[V]) *node[V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode walks to the rightmost node of a non-empty subtree.
func maxNode[V any](n *node[V]) *node[V] {
	for n.right != nil {
		n = n.right
	}
	return n
}
