package Trees

import (
	"fmt"

	"github.com/g-m-twostay/go-avlset"
)

// Check walks the whole tree and returns a CorruptError for the first broken property, or nil.
// Besides the ordering, sizes, heights, balance and parent links of every node, it verifies
// that each slot of the arena is either reachable from the root exactly once or in the free
// list exactly once, so no node is leaked or shared.
// Time: O(n); Space: O(n) bits
func (u *AVLTree[T, S]) Check() error {
	if u.ns[0].sz != 0 || u.ns[0].h != 0 {
		return CorruptError{0, "absent node has a size or height"}
	}
	seen := avlset.NewBitArray(uint(len(u.ns)))
	seen.Up(0)
	if err := u.check(u.root, 0, nil, nil, seen); err != nil {
		return err
	}
	for i := u.free; i != 0; i = u.ns[i].l {
		if uint(i) >= uint(len(u.ns)) {
			return CorruptError{uint64(i), "free index out of range"}
		} else if seen.Get(uint(i)) {
			return CorruptError{uint64(i), "free node is also linked, or freed twice"}
		}
		seen.Up(uint(i))
	}
	if c := seen.Count(); c != uint(len(u.ns)) {
		return CorruptError{0, fmt.Sprintf("%d nodes are neither linked nor free", uint(len(u.ns))-c)}
	}
	return nil
}

// check the subtree rooting at i, whose parent should be p and whose values should lie strictly
// between lo and hi when those are given.
func (u *AVLTree[T, S]) check(i, p S, lo, hi *T, seen avlset.BitArray) error {
	if i == 0 {
		return nil
	}
	if uint(i) >= uint(len(u.ns)) {
		return CorruptError{uint64(i), "index out of range"}
	} else if seen.Get(uint(i)) {
		return CorruptError{uint64(i), "reached twice"}
	}
	seen.Up(uint(i))
	n := &u.ns[i]
	if n.p != p {
		return CorruptError{uint64(i), fmt.Sprintf("parent is %d, want %d", n.p, p)}
	}
	if (lo != nil && !u.less(*lo, n.v)) || (hi != nil && !u.less(n.v, *hi)) {
		return CorruptError{uint64(i), fmt.Sprintf("value %v is out of order", n.v)}
	}
	if err := u.check(n.l, i, lo, &n.v, seen); err != nil {
		return err
	}
	if err := u.check(n.r, i, &n.v, hi, seen); err != nil {
		return err
	}
	l, r := &u.ns[n.l], &u.ns[n.r]
	if n.sz != l.sz+r.sz+1 {
		return CorruptError{uint64(i), fmt.Sprintf("size is %d, want %d", n.sz, l.sz+r.sz+1)}
	}
	if n.h != max(l.h, r.h)+1 {
		return CorruptError{uint64(i), fmt.Sprintf("height is %d, want %d", n.h, max(l.h, r.h)+1)}
	}
	if l.h > r.h+1 || r.h > l.h+1 {
		return CorruptError{uint64(i), fmt.Sprintf("unbalanced: left height %d, right height %d", l.h, r.h)}
	}
	return nil
}

// Corrupt [Tree.Corrupt]
func (u *AVLTree[T, S]) Corrupt() bool {
	return u.Check() != nil
}
