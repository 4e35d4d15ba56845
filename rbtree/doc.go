// Package rbtree implements an ordered self-balancing binary search
// tree (a red-black tree) parameterized over a caller-supplied
// three-way comparator. It supports insertion, search, and removal in
// O(log n), plus an independent structural-invariant audit intended
// for testing and diagnostics.
//
// The tree is a single-writer structure. It performs no internal
// locking; callers sharing a tree across goroutines must provide
// their own mutual exclusion.
package rbtree
