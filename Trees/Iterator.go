package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator is a position in the in-order sequence of an AVLTree. It is a small value: moving it
// returns a new Iterator and leaves the old one where it was.
// The position past the greatest value, End, is also the position before the smallest one, so
// Next from End gives the smallest value and Prev from End gives the greatest.
// Any Insert, Erase, CopyFrom, or Clear on the tree invalidates all its iterators. Using an
// invalid iterator doesn't panic but gives meaningless values.
type Iterator[T any, S constraints.Unsigned] struct {
	t   *AVLTree[T, S]
	cur S // 0 is End.
}

// End reports whether the iterator is past the last value (or before the first one).
func (u Iterator[T, S]) End() bool {
	return u.cur == 0
}

// Value at the iterator; the zero value of T at End.
func (u Iterator[T, S]) Value() T {
	if u.t == nil {
		return *new(T)
	}
	return u.t.ns[u.cur].v
}

// Next position in ascending order.
// Time: amortized O(1)
func (u Iterator[T, S]) Next() Iterator[T, S] {
	if u.t != nil {
		u.cur = u.t.next(u.cur)
	}
	return u
}

// Prev position in ascending order.
// Time: amortized O(1)
func (u Iterator[T, S]) Prev() Iterator[T, S] {
	if u.t != nil {
		u.cur = u.t.prev(u.cur)
	}
	return u
}

// Equal reports whether both iterators are at the same position of the same tree.
func (u Iterator[T, S]) Equal(o Iterator[T, S]) bool {
	return u.t == o.t && u.cur == o.cur
}

// Forward yields the values from the iterator up to the greatest value.
func (u Iterator[T, S]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := u; !it.End(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward yields the values from the iterator down to the smallest value.
func (u Iterator[T, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := u; !it.End(); it = it.Prev() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
