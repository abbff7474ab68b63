package Trees

import "golang.org/x/exp/constraints"

// A node in the AVLTree, stored by value in the arena of base.
// l, r are the owning child indexes, p is the non-owning parent index.
// Index 0 is the absent node: its sz and h are 0, so reading the size or height
// of a missing child needs no special case.
// While a node sits in the free list, l holds the next free index.
type node[T any, S constraints.Unsigned] struct {
	v       T
	l, r, p S
	sz, h   S
}

// link returns the address of the child link of n that holds c, or nil if c isn't a child of n.
func (n *node[T, S]) link(c S) *S {
	if n.l == c {
		return &n.l
	} else if n.r == c {
		return &n.r
	}
	return nil
}
