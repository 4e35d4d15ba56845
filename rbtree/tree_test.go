package rbtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func inorder(n *node[int], out *[]int) {
	if n == nil {
		return
	}
	inorder(n.left, out)
	*out = append(*out, n.value)
	inorder(n.right, out)
}

func values(t *Tree[int]) []int {
	var out []int
	inorder(t.root, &out)
	return out
}

func mustInsert(t *testing.T, tree *Tree[int], vs ...int) {
	t.Helper()
	for _, v := range vs {
		require.NoError(t, tree.Insert(v))
	}
}

func TestNewPanicsOnNilComparator(t *testing.T) {
	require.Panics(t, func() { New[int](nil) })
}

func TestEmptyTree(t *testing.T) {
	tree := New(Compare[int])
	require.Equal(t, 0, tree.Size())

	_, ok := tree.Search(7)
	require.False(t, ok)

	_, err := tree.Remove(7)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, 0, tree.Size())
}

func TestInsertSearchRoundTrip(t *testing.T) {
	tree := New(Compare[int])
	n := 200
	perm := rand.Perm(n)
	for _, v := range perm {
		mustInsert(t, tree, v)
	}
	require.Equal(t, n, tree.Size())

	for i := 0; i < n; i++ {
		got, ok := tree.Search(i)
		require.True(t, ok, "value %d missing", i)
		require.Equal(t, i, got)
	}
	_, ok := tree.Search(n)
	require.False(t, ok, "value %d was never inserted", n)
}

func TestDuplicateInsertRejected(t *testing.T) {
	tree := New(Compare[int])
	mustInsert(t, tree, 5, 3, 8)

	before := values(tree)
	require.ErrorIs(t, tree.Insert(5), ErrDuplicate)
	require.Equal(t, 3, tree.Size())
	require.Equal(t, before, values(tree))
}

func TestInorderStrictlyIncreasing(t *testing.T) {
	tree := New(Compare[int])
	for _, v := range rand.Perm(500) {
		mustInsert(t, tree, v)
	}

	vs := values(tree)
	require.Len(t, vs, 500)
	for i := 1; i < len(vs); i++ {
		require.Less(t, vs[i-1], vs[i], "in-order sequence not strictly increasing at %d", i)
	}
}

func TestSearchUsesComparatorNotIdentity(t *testing.T) {
	type entry struct {
		key  int
		name string
	}
	tree := New(func(a, b entry) Ordering { return Compare(a.key, b.key) })
	require.NoError(t, tree.Insert(entry{key: 1, name: "one"}))

	got, ok := tree.Search(entry{key: 1})
	require.True(t, ok)
	require.Equal(t, "one", got.name)
}

func TestComparatorContractEnforced(t *testing.T) {
	tree := New(func(a, b int) Ordering { return Ordering(42) })
	require.NoError(t, tree.Insert(1))
	require.Panics(t, func() { _ = tree.Insert(2) })
}

func TestClear(t *testing.T) {
	tree := New(Compare[int])
	mustInsert(t, tree, 1, 2, 3)

	tree.Clear()
	require.Equal(t, 0, tree.Size())
	_, ok := tree.Search(2)
	require.False(t, ok)

	mustInsert(t, tree, 4)
	require.Equal(t, 1, tree.Size())
}
