package Trees

import (
	"golang.org/x/exp/constraints"
)

// base is the node arena shared by the tree operations.
// ns[0] is the absent node, every other index is either linked into the tree or in the free list.
type base[T any, S constraints.Unsigned] struct {
	ns []node[T, S]
	// free is the beginning of the linked list that contains all the free indexes; node.l represents next.
	root, free S
	// limit is the maximum number of live nodes; 0 means bounded only by S.
	limit S
	less  func(a, b T) bool
}

func makeBase[T any, S constraints.Unsigned](hint S, less func(a, b T) bool) base[T, S] {
	ns := make([]node[T, S], 1, uint(hint)+1)
	return base[T, S]{ns: ns, less: less}
}

// capacity is the most live nodes the arena may hold.
func (u *base[T, S]) capacity() S {
	if u.limit != 0 {
		return u.limit
	}
	return ^S(0)
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.ns[a] = node[T, S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ns[u.free].l
	return b
}

// alloc a detached leaf holding v under parent p. Freed slots are reused before the arena grows.
// Nothing in the tree refers to the new index yet, so a failure leaves the tree untouched.
func (u *base[T, S]) alloc(v T, p S) (S, error) {
	if u.ns[u.root].sz >= u.capacity() {
		return 0, ErrFull
	}
	i := u.popFree()
	if i == 0 {
		if uint64(len(u.ns)) > uint64(^S(0)) { // index space of S is used up
			return 0, ErrFull
		}
		i = S(len(u.ns))
		u.ns = append(u.ns, node[T, S]{})
	}
	u.ns[i] = node[T, S]{v: v, p: p, sz: 1, h: 1}
	return i, nil
}

// release a detached node back to the free list, dropping its value.
func (u *base[T, S]) release(i S) {
	u.addFree(i)
}

// recalc the cached size and height of i from its children.
func (u *base[T, S]) recalc(i S) {
	n := &u.ns[i]
	n.sz = u.ns[n.l].sz + u.ns[n.r].sz + 1
	n.h = max(u.ns[n.l].h, u.ns[n.r].h) + 1
}

// setParent of i to p, ignoring the absent node.
func (u *base[T, S]) setParent(i, p S) {
	if i != 0 {
		u.ns[i].p = p
	}
}

// replace the link that points to a, in a's parent or in root, with b.
func (u *base[T, S]) replace(a, b S) {
	if p := u.ns[a].p; p == 0 {
		u.root = b
	} else {
		*u.ns[p].link(a) = b
	}
	u.setParent(b, u.ns[a].p)
}

// rotateLeft lifts b, the right child of a, into a's place. a becomes b's left child and b's old
// left subtree becomes a's right subtree.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(a, b S) {
	u.replace(a, b)
	bl := u.ns[b].l
	u.ns[a].r = bl
	u.setParent(bl, a)
	u.ns[b].l = a
	u.ns[a].p = b
	u.recalc(a)
	u.recalc(b)
}

// rotateRight is the mirror of rotateLeft; b is the left child of a.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(a, b S) {
	u.replace(a, b)
	br := u.ns[b].r
	u.ns[a].l = br
	u.setParent(br, a)
	u.ns[b].r = a
	u.ns[a].p = b
	u.recalc(a)
	u.recalc(b)
}

// resolve an imbalance of more than 1 between the children of i with one single or double rotation.
// Returns the index now rooting the subtree that i rooted.
func (u *base[T, S]) resolve(i S) S {
	n := u.ns[i]
	if lh, rh := u.ns[n.l].h, u.ns[n.r].h; rh > lh+1 {
		if rc := u.ns[n.r]; u.ns[rc.l].h > u.ns[rc.r].h {
			u.rotateRight(n.r, rc.l)
		}
		r := u.ns[i].r
		u.rotateLeft(i, r)
		return r
	} else if lh > rh+1 {
		if lc := u.ns[n.l]; u.ns[lc.r].h > u.ns[lc.l].h {
			u.rotateLeft(n.l, lc.r)
		}
		l := u.ns[i].l
		u.rotateRight(i, l)
		return l
	}
	return i
}

// retrace from i up to the root, refreshing the bookkeeping and rebalancing every ancestor.
// Time: O(D)
func (u *base[T, S]) retrace(i S) {
	for i != 0 {
		u.recalc(i)
		i = u.ns[u.resolve(i)].p
	}
}

// leftmost node of the subtree rooting at i; 0 if i is 0.
func (u *base[T, S]) leftmost(i S) S {
	if i != 0 {
		for u.ns[i].l != 0 {
			i = u.ns[i].l
		}
	}
	return i
}

// rightmost node of the subtree rooting at i; 0 if i is 0.
func (u *base[T, S]) rightmost(i S) S {
	if i != 0 {
		for u.ns[i].r != 0 {
			i = u.ns[i].r
		}
	}
	return i
}

// next in-order index after i. next(0) is the leftmost node, and the last node's next is 0.
func (u *base[T, S]) next(i S) S {
	if i == 0 {
		return u.leftmost(u.root)
	} else if r := u.ns[i].r; r != 0 {
		return u.leftmost(r)
	}
	for p := u.ns[i].p; p != 0 && u.ns[p].r == i; p = u.ns[i].p {
		i = p
	}
	return u.ns[i].p
}

// prev is the mirror of next.
func (u *base[T, S]) prev(i S) S {
	if i == 0 {
		return u.rightmost(u.root)
	} else if l := u.ns[i].l; l != 0 {
		return u.rightmost(l)
	}
	for p := u.ns[i].p; p != 0 && u.ns[p].l == i; p = u.ns[i].p {
		i = p
	}
	return u.ns[i].p
}

// search for the node equal to v; 0 if there isn't one.
func (u *base[T, S]) search(v T) S {
	for curI := u.root; curI != 0; {
		if cur := &u.ns[curI]; u.less(v, cur.v) {
			curI = cur.l
		} else if u.less(cur.v, v) {
			curI = cur.r
		} else {
			return curI
		}
	}
	return 0
}
