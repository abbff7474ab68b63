package Trees

import (
	"cmp"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by checking the heights of subtrees, so that
// the heights of the two children of any node differ by at most 1.
// T is the type of values it will hold, S is the type used for node indexes
// and for the cached sizes and heights of subtrees, so the additional memory
// cost per value is 5*size(S). A tree holds at most max(S) values.
// Nodes live in one slice and refer to each other by index. Each node keeps
// the index of its parent, which lets iterators walk the tree without a stack.
// The worst case height of the tree is less than 1.44*log2(n+2)-0.33.
// The zero value isn't usable; create trees with New, NewFunc, or FromSorted.
// An AVLTree isn't safe for concurrent use.
type AVLTree[T any, S constraints.Unsigned] struct {
	base[T, S]
}

// New returns an empty tree ordering values with cmp.Less. hint is the number of values the
// tree should hold without growing its arena.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *AVLTree[T, S] {
	return NewFunc[T, S](hint, cmp.Less[T])
}

// NewFunc returns an empty tree ordering values with less, which must be a strict total order.
func NewFunc[T any, S constraints.Unsigned](hint S, less func(a, b T) bool) *AVLTree[T, S] {
	return &AVLTree[T, S]{makeBase[T, S](hint, less)}
}

// FromSorted builds a tree from the given slice, which must be strictly ascending. This is
// faster than repeatedly calling Insert. The slice isn't retained.
// Returns InvalidSliceError if the slice isn't strictly ascending, or ErrFull if S can't
// index all the values.
// Time: O(n)
func FromSorted[T cmp.Ordered, S constraints.Unsigned](vs []T) (*AVLTree[T, S], error) {
	return FromSortedFunc[T, S](vs, cmp.Less[T])
}

// FromSortedFunc is FromSorted with a custom order.
func FromSortedFunc[T any, S constraints.Unsigned](vs []T, less func(a, b T) bool) (*AVLTree[T, S], error) {
	for i := 1; i < len(vs); i++ {
		if !less(vs[i-1], vs[i]) {
			return nil, InvalidSliceError{i - 1, vs[i-1], vs[i]}
		}
	}
	if uint64(len(vs)) > uint64(^S(0)) {
		return nil, ErrFull
	}
	u := NewFunc[T, S](S(len(vs)), less)
	u.ns = u.ns[:len(vs)+1] // vs[i] is placed at index i+1.
	var build func(lo, hi int, p S) S
	build = func(lo, hi int, p S) S {
		if lo >= hi {
			return 0
		}
		mid := int(uint(lo+hi) >> 1)
		i := S(mid + 1)
		u.ns[i] = node[T, S]{v: vs[mid], p: p}
		u.ns[i].l = build(lo, mid, i)
		u.ns[i].r = build(mid+1, hi, i)
		u.recalc(i)
		return i
	}
	u.root = build(0, len(vs), 0)
	return u, nil
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T, S]) Size() S {
	return u.ns[u.root].sz
}

// Empty reports whether the tree holds no value.
func (u *AVLTree[T, S]) Empty() bool {
	return u.root == 0
}

// Height of the tree; 0 for an empty tree, 1 for a single value.
func (u *AVLTree[T, S]) Height() S {
	return u.ns[u.root].h
}

// Limit returns the maximum number of values the tree accepts; 0 means no limit other than S.
func (u *AVLTree[T, S]) Limit() S {
	return u.limit
}

// SetLimit on the number of values. A limit below the current size doesn't remove anything, it
// only makes every following Insert fail with ErrFull.
func (u *AVLTree[T, S]) SetLimit(n S) {
	u.limit = n
}

// Insert [Tree.Insert]. Equal values are rejected wherever they are met during the descent.
// Time: O(D)
func (u *AVLTree[T, S]) Insert(v T) (bool, error) {
	var p S
	goLeft := false
	for curI := u.root; curI != 0; {
		p = curI
		if cur := &u.ns[curI]; u.less(v, cur.v) {
			curI, goLeft = cur.l, true
		} else if u.less(cur.v, v) {
			curI, goLeft = cur.r, false
		} else {
			return false, nil
		}
	}
	i, err := u.alloc(v, p)
	if err != nil {
		return false, err
	}
	if p == 0 {
		u.root = i
	} else {
		if goLeft {
			u.ns[p].l = i
		} else {
			u.ns[p].r = i
		}
		u.retrace(p)
	}
	return true, nil
}

// Erase [Tree.Erase]. A node with children isn't unlinked: it takes the value of the
// closest node in its taller subtree, and that node is erased instead, until a leaf is reached.
// Time: O(D)
func (u *AVLTree[T, S]) Erase(v T) bool {
	i := u.search(v)
	if i == 0 {
		return false
	}
	for {
		n := &u.ns[i]
		if n.l == 0 && n.r == 0 {
			break
		}
		var j S
		if u.ns[n.l].h >= u.ns[n.r].h {
			j = u.rightmost(n.l)
		} else {
			j = u.leftmost(n.r)
		}
		n.v = u.ns[j].v
		i = j
	}
	p := u.ns[i].p
	u.replace(i, 0)
	u.release(i)
	u.retrace(p)
	return true
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Has(v T) bool {
	return u.search(v) != 0
}

// Find returns the iterator at the value equal to v, or End if there's none.
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Find(v T) Iterator[T, S] {
	return Iterator[T, S]{u, u.search(v)}
}

// LowerBound returns the iterator at the smallest value not less than v, or End if there's none.
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) LowerBound(v T) Iterator[T, S] {
	var c S
	for curI := u.root; curI != 0; {
		if cur := &u.ns[curI]; u.less(cur.v, v) {
			curI = cur.r
		} else {
			c = curI
			curI = cur.l
		}
	}
	return Iterator[T, S]{u, c}
}

// UpperBound returns the iterator at the smallest value greater than v, or End if there's none.
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) UpperBound(v T) Iterator[T, S] {
	var c S
	for curI := u.root; curI != 0; {
		if cur := &u.ns[curI]; u.less(v, cur.v) {
			c = curI
			curI = cur.l
		} else {
			curI = cur.r
		}
	}
	return Iterator[T, S]{u, c}
}

// Begin returns the iterator at the smallest value, which is End for an empty tree.
func (u *AVLTree[T, S]) Begin() Iterator[T, S] {
	return Iterator[T, S]{u, u.leftmost(u.root)}
}

// Last returns the iterator at the greatest value, which is End for an empty tree.
func (u *AVLTree[T, S]) Last() Iterator[T, S] {
	return Iterator[T, S]{u, u.rightmost(u.root)}
}

// End returns the iterator past the greatest value; it's also the one before the smallest.
func (u *AVLTree[T, S]) End() Iterator[T, S] {
	return Iterator[T, S]{u, 0}
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Minimum() (T, bool) {
	i := u.leftmost(u.root)
	return u.ns[i].v, i != 0
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Maximum() (T, bool) {
	i := u.rightmost(u.root)
	return u.ns[i].v, i != 0
}

// At [Tree.At]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) At(k S) (T, bool) {
	for curI := u.root; curI != 0; {
		if li := u.ns[curI].l; k < u.ns[li].sz {
			curI = li
		} else if k > u.ns[li].sz {
			k -= u.ns[li].sz + 1
			curI = u.ns[curI].r
		} else {
			return u.ns[curI].v, true
		}
	}
	return *new(T), false
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) RankOf(v T) (S, bool) {
	var ra S = 0
	for curI := u.root; curI != 0; {
		if cur := &u.ns[curI]; u.less(v, cur.v) {
			curI = cur.l
		} else if u.less(cur.v, v) {
			ra += u.ns[cur.l].sz + 1
			curI = cur.r
		} else {
			return ra + u.ns[cur.l].sz, true
		}
	}
	return ra, false
}

// All [Tree.All]
func (u *AVLTree[T, S]) All() iter.Seq[T] {
	return u.Begin().Forward()
}

// Backward returns all the values in descending order.
func (u *AVLTree[T, S]) Backward() iter.Seq[T] {
	return u.Last().Backward()
}

// Clone returns a deep copy of the tree. The copy shares no node with u and keeps u's limit.
// Time: O(n)
func (u *AVLTree[T, S]) Clone() *AVLTree[T, S] {
	c := *u
	c.ns = slices.Clone(u.ns)
	return &c
}

// CopyFrom replaces the values of u with a deep copy of those of o, taking o's order as well.
// u keeps its own limit; if o holds more values than that limit, CopyFrom returns ErrFull
// and u is unchanged. Copying a tree onto itself does nothing.
// Time: O(n)
func (u *AVLTree[T, S]) CopyFrom(o *AVLTree[T, S]) error {
	if u == o {
		return nil
	}
	if o.Size() > u.capacity() {
		return ErrFull
	}
	clear(u.ns[1:])
	u.ns = append(u.ns[:0], o.ns...)
	u.root, u.free, u.less = o.root, o.free, o.less
	return nil
}

// Clear the tree, releasing every node and the values they hold. The arena keeps its memory.
// Time: O(n)
func (u *AVLTree[T, S]) Clear() {
	clear(u.ns[1:])
	u.ns = u.ns[:1]
	u.root, u.free = 0, 0
}
