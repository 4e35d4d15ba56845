package rbtree

import "golang.org/x/exp/constraints"

// Compare is a ready-made comparator for any primitive ordered type:
//
//	t := rbtree.New(rbtree.Compare[int])
func Compare[T constraints.Ordered](a, b T) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}
