package rbtree

// Remove deletes the stored value comparing Equal to value and returns
// it. A value with two children is not unlinked directly: its data is
// overwritten with an in-order neighbor's and the donor node, which
// has at most one child, is excised instead.
func (t *Tree[V]) Remove(value V) (V, error) {
	z := t.searchNode(value)
	if z == nil {
		var zero V
		return zero, ErrNotFound
	}
	removed := z.value

	donor, ok := t.simpleReplace(z)
	if !ok {
		// True leaf: detach z itself.
		donor = z
	}
	t.excise(donor)
	t.size--
	return removed, nil
}

// replaceWithPredecessor overwrites n's value with the maximum of its
// left subtree and returns the donor node, which still holds the stale
// copy and must be excised by the caller. Reports false when n has no
// left child.
func (t *Tree[V]) replaceWithPredecessor(n *node[V]) (*node[V], bool) {
	if n.left == nil {
		return nil, false
	}
	d := maxNode(n.left)
	n.value = d.value
	return d, true
}

// replaceWithSuccessor is the mirror, using the minimum of the right
// subtree.
func (t *Tree[V]) replaceWithSuccessor(n *node[V]) (*node[V], bool) {
	if n.right == nil {
		return nil, false
	}
	d := minNode(n.right)
	n.value = d.value
	return d, true
}

// simpleReplace tries the tree's preferred replacement direction and
// falls back to the other. Reports false only when n has neither
// child. After a successful replacement the preference flips.
func (t *Tree[V]) simpleReplace(n *node[V]) (*node[V], bool) {
	first, second := t.replaceWithPredecessor, t.replaceWithSuccessor
	if t.policy == PreferSuccessor {
		first, second = second, first
	}
	d, ok := first(n)
	if !ok {
		d, ok = second(n)
	}
	if ok {
		t.flipPolicy()
	}
	return d, ok
}

func (t *Tree[V]) flipPolicy() {
	if t.policy == PreferPredecessor {
		t.policy = PreferSuccessor
	} else {
		t.policy = PreferPredecessor
	}
}

// excise unlinks n, which holds a stale value and has at most one
// child. Removing a black node leaves one path short a black node, so
// the fixup runs first, while n still occupies its position.
func (t *Tree[V]) excise(n *node[V]) {
	child := n.left
	if child == nil {
		child = n.right
	}
	if n.color == black {
		if colorOf(child) == red {
			// The red child absorbs n's black.
			child.color = black
		} else {
			t.removeFixup(n)
		}
	}
	t.transplant(n, child)
	n.parent, n.left, n.right = nil, nil, nil
}

// transplant redirects the link that pointed at u to point at v
// instead. v may be nil.
func (t *Tree[V]) transplant(u, v *node[V]) {
	if u.parent == nil {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// removeFixup rebalances around n, whose subtree is one black node
// short on every path. The sibling is never nil here: n's own position
// carries at least one black, so the sibling side must too.
func (t *Tree[V]) removeFixup(n *node[V]) {
	for {
		// The deficit reached the root: every path lost one black
		// equally, so the invariant holds again.
		if n.parent == nil {
			return
		}

		// Red sibling: rotate it above the parent so the remaining
		// cases see a black sibling.
		s := n.sibling()
		if colorOf(s) == red {
			n.parent.color = red
			s.color = black
			if n == n.parent.left {
				t.leftRotate(n.parent)
			} else {
				t.rightRotate(n.parent)
			}
			s = n.sibling()
		}

		// Parent, sibling, and nephews all black: recolor the sibling
		// red and push the deficit up to the parent.
		if colorOf(n.parent) == black && colorOf(s.left) == black && colorOf(s.right) == black {
			s.color = red
			n = n.parent
			continue
		}

		// Red parent, black sibling and nephews: the parent pays the
		// missing black.
		if colorOf(n.parent) == red && colorOf(s.left) == black && colorOf(s.right) == black {
			s.color = red
			n.parent.color = black
			return
		}

		// Near nephew red, far nephew black: rotate the sibling so the
		// far nephew turns red.
		if n == n.parent.left && colorOf(s.right) == black {
			s.color = red
			s.left.color = black
			t.rightRotate(s)
			s = n.sibling()
		} else if n == n.parent.right && colorOf(s.left) == black {
			s.color = red
			s.right.color = black
			t.leftRotate(s)
			s = n.sibling()
		}

		// Far nephew red: one rotation at the parent moves a black
		// onto n's side. Done.
		s.color = colorOf(n.parent)
		n.parent.color = black
		if n == n.parent.left {
			s.right.color = black
			t.leftRotate(n.parent)
		} else {
			s.left.color = black
			t.rightRotate(n.parent)
		}
		return
	}
}
