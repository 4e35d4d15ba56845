package rbtree

// leftRotate pivots n's right child into n's place. Four links move:
// the pivot's left subtree becomes n's right subtree, n becomes the
// pivot's left child, and n's parent (or the tree root) is redirected
// to the pivot. In-order sequence is unchanged; colors are the
// caller's business.
func (t *Tree[V]) leftRotate(n *node[V]) {
	y := n.right
	if y == nil {
		panic("rbtree: left rotation requires a right child")
	}
	n.right = y.left
	if y.left != nil {
		y.left.parent = n
	}
	y.parent = n.parent
	if n.parent == nil {
		t.root = y
	} else if n == n.parent.left {
		n.parent.left = y
	} else {
		n.parent.right = y
	}
	y.left = n
	n.parent = y
}

// rightRotate is the mirror of leftRotate, pivoting n's left child
// into n's place.
func (t *Tree[V]) rightRotate(n *node[V]) {
	y := n.left
	if y == nil {
		panic("rbtree: right rotation requires a left child")
	}
	n.left = y.right
	if y.right != nil {
		y.right.parent = n
	}
	y.parent = n.parent
	if n.parent == nil {
		t.root = y
	} else if n == n.parent.right {
		n.parent.right = y
	} else {
		n.parent.left = y
	}
	y.right = n
	n.parent = y
}
