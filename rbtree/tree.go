package rbtree

import "errors"

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// CompareFunc reports how a orders against b. It must implement a
// total order over the payload type and must not mutate its arguments.
// Less, Equal, and Greater are its only legal results.
type CompareFunc[V any] func(a, b V) Ordering

// ReplacePolicy selects which in-order neighbor donates its value when
// a node with two children is removed.
type ReplacePolicy uint8

const (
	PreferPredecessor ReplacePolicy = iota
	PreferSuccessor
)

var (
	// ErrDuplicate is returned by Insert when a value comparing Equal
	// to the new value is already stored.
	ErrDuplicate = errors.New("rbtree: duplicate value")
	// ErrNotFound is returned by Remove when no stored value compares
	// Equal to the given one.
	ErrNotFound = errors.New("rbtree: value not found")
)

// Tree is an ordered self-balancing binary search tree. Use New to
// create one.
type Tree[V any] struct {
	root    *node[V]
	size    int
	compare CompareFunc[V]
	policy  ReplacePolicy
}

// New creates an empty tree ordered by compare.
func New[V any](compare CompareFunc[V]) *Tree[V] {
	if compare == nil {
		panic("rbtree: nil comparator")
	}
	return &Tree[V]{compare: compare}
}

// Size returns the number of stored values.
func (t *Tree[V]) Size() int { return t.size }

// ReplacePolicy reports which neighbor the next two-child removal will
// prefer. The tree alternates the preference after every replacement
// so that long runs of removals do not lean the tree to one side.
func (t *Tree[V]) ReplacePolicy() ReplacePolicy { return t.policy }

// SetReplacePolicy overrides the preference used by the next removal.
func (t *Tree[V]) SetReplacePolicy(p ReplacePolicy) { t.policy = p }

// Search returns the stored value comparing Equal to value, or false
// if there is none. The tree is never modified.
func (t *Tree[V]) Search(value V) (V, bool) {
	if n := t.searchNode(value); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// searchNode is the iterative binary descent shared by Search and
// Remove.
func (t *Tree[V]) searchNode(value V) *node[V] {
	n := t.root
	for n != nil {
		switch t.ord(value, n.value) {
		case Less:
			n = n.left
		case Greater:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// ord dispatches the comparator and enforces its contract: anything
// other than the three defined results is a programming error.
func (t *Tree[V]) ord(a, b V) Ordering {
	switch o := t.compare(a, b); o {
	case Less, Equal, Greater:
		return o
	}
	panic("rbtree: comparator returned an invalid ordering")
}

// Clear releases every node, leaving an empty tree.
func (t *Tree[V]) Clear() {
	t.root = nil
	t.size = 0
}
