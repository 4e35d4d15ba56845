package rbtree

// Insert adds value to the tree. Inserting a value that compares Equal
// to a stored value fails with ErrDuplicate and leaves the tree
// untouched.
func (t *Tree[V]) Insert(value V) error {
	z := &node[V]{value: value, color: red}
	if t.root == nil {
		t.root = z
	} else {
		p := t.root
		for {
			ord := t.ord(value, p.value)
			if ord == Equal {
				return ErrDuplicate
			}
			if ord == Less {
				if p.left == nil {
					p.left = z
					break
				}
				p = p.left
			} else {
				if p.right == nil {
					p.right = z
					break
				}
				p = p.right
			}
		}
		z.parent = p
	}
	t.insertFixup(z)
	t.size++
	return nil
}

// insertFixup restores the red-black invariants after z was attached
// red. Each iteration re-examines z against its parent and uncle; the
// recolor case moves z two levels up, every other case terminates.
func (t *Tree[V]) insertFixup(z *node[V]) {
	for {
		// z is the root: paint it black and stop.
		if z.parent == nil {
			z.color = black
			return
		}

		// Black parent: nothing was disturbed.
		if z.parent.color == black {
			return
		}

		// Red parent and red uncle: pull the grandparent's black down
		// onto both, treat the now-red grandparent as freshly inserted.
		g := z.parent.parent
		if u := z.uncle(); colorOf(u) == red {
			z.parent.color = black
			u.color = black
			g.color = red
			z = g
			continue
		}

		// Zig-zag: rotate the parent away from z so the configuration
		// below resolves it as a zig-zig.
		if z == z.parent.right && z.parent == g.left {
			t.leftRotate(z.parent)
			z = z.left
		} else if z == z.parent.left && z.parent == g.right {
			t.rightRotate(z.parent)
			z = z.right
		}

		// Zig-zig: swap parent/grandparent colors and rotate the
		// grandparent toward the uncle's side. Done.
		z.parent.color = black
		z.parent.parent.color = red
		if z == z.parent.left {
			t.rightRotate(z.parent.parent)
		} else {
			t.leftRotate(z.parent.parent)
		}
		return
	}
}
