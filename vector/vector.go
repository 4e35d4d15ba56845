// Package vector provides a growable sparse array addressed by index.
// Storage doubles whenever an index lands past the current capacity,
// and cleaned slots read back as absent.
package vector

import "errors"

const initialCapacity = 8

// ErrNegativeIndex is returned by Put for indices below zero.
var ErrNegativeIndex = errors.New("vector: negative index")

type slot[T any] struct {
	value T
	used  bool
}

// Vector is a growable sparse array. The zero value is not usable;
// call New.
type Vector[T any] struct {
	slots []slot[T]
	used  int
}

// New creates an empty vector with a small initial capacity.
func New[T any]() *Vector[T] {
	return &Vector[T]{slots: make([]slot[T], initialCapacity)}
}

// Put stores value at index i, growing the backing storage by doubling
// until i fits. Overwriting an occupied slot is allowed.
func (v *Vector[T]) Put(i int, value T) error {
	if i < 0 {
		return ErrNegativeIndex
	}
	for i >= len(v.slots) {
		v.grow()
	}
	if !v.slots[i].used {
		v.used++
	}
	v.slots[i] = slot[T]{value: value, used: true}
	return nil
}

func (v *Vector[T]) grow() {
	next := make([]slot[T], 2*len(v.slots))
	copy(next, v.slots)
	v.slots = next
}

// Get returns the value stored at index i, or false if the slot is
// empty or out of range. The value is not removed.
func (v *Vector[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(v.slots) || !v.slots[i].used {
		var zero T
		return zero, false
	}
	return v.slots[i].value, true
}

// Clean empties the slot at index i and reports whether it held a
// value.
func (v *Vector[T]) Clean(i int) bool {
	if i < 0 || i >= len(v.slots) || !v.slots[i].used {
		return false
	}
	v.slots[i] = slot[T]{}
	v.used--
	return true
}

// Len returns the number of occupied slots.
func (v *Vector[T]) Len() int { return v.used }

// Cap returns the current capacity.
func (v *Vector[T]) Cap() int { return len(v.slots) }
