package rbtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildShapeTree links the classic rotation diagram by hand:
//
//	    x
//	   / \
//	  a   y
//	     / \
//	    b   c
func buildShapeTree() (*Tree[int], *node[int], *node[int]) {
	x := &node[int]{value: 2, color: black}
	a := &node[int]{value: 1, color: black}
	y := &node[int]{value: 4, color: black}
	b := &node[int]{value: 3, color: black}
	c := &node[int]{value: 5, color: black}

	x.left, x.right = a, y
	a.parent, y.parent = x, x
	y.left, y.right = b, c
	b.parent, c.parent = y, y

	tree := New(Compare[int])
	tree.root = x
	tree.size = 5
	return tree, x, y
}

func TestLeftThenRightRotateRestoresShape(t *testing.T) {
	tree, x, y := buildShapeTree()
	before := values(tree)

	tree.leftRotate(x)
	require.Same(t, y, tree.root)
	require.Same(t, x, y.left)
	require.Equal(t, before, values(tree), "rotation must preserve in-order sequence")

	tree.rightRotate(y)
	require.Same(t, x, tree.root)
	require.Same(t, y, x.right)
	require.Equal(t, 1, x.left.value)
	require.Equal(t, 3, y.left.value)
	require.Equal(t, 5, y.right.value)
	require.Equal(t, before, values(tree))
}

func TestRotateReparentsDisplacedGrandchild(t *testing.T) {
	tree, x, y := buildShapeTree()
	b := y.left

	tree.leftRotate(x)
	require.Same(t, b, x.right, "pivot's inner subtree must move under the old root")
	require.Same(t, x, b.parent)
}

func TestRotateBelowRootRedirectsParentLink(t *testing.T) {
	tree, x, _ := buildShapeTree()
	top := &node[int]{value: 10, color: black, left: tree.root}
	tree.root.parent = top
	tree.root = top

	tree.leftRotate(x)
	require.Equal(t, 4, top.left.value)
	require.Same(t, top, top.left.parent)
}

func TestRotateWithoutRequiredChildPanics(t *testing.T) {
	tree := New(Compare[int])
	mustInsert(t, tree, 1)

	require.Panics(t, func() { tree.leftRotate(tree.root) })
	require.Panics(t, func() { tree.rightRotate(tree.root) })
}
