// Package OrderedSet provides OrderedSet, a set of unique ordered values kept in an AVL tree.
//
// Values double as keys: two values are the same element when neither is less than the other.
// All operations but Clone, Assign and the constructors take O(log n) time. An OrderedSet
// isn't safe for concurrent use; guard it with a lock if several goroutines share it.
package OrderedSet

import (
	"cmp"
	"iter"
	"slices"

	"github.com/g-m-twostay/go-avlset/Sets"
	"github.com/g-m-twostay/go-avlset/Trees"
	"github.com/pkg/errors"
)

// ErrFull is returned when the set can't take one more value, see WithLimit.
var ErrFull = Trees.ErrFull

// Iterator is a position in an OrderedSet, see Trees.Iterator.
type Iterator[T any] = Trees.Iterator[T, uint32]

// OrderedSet of values of type T. It exclusively owns its nodes: copies made with Clone or
// Assign share nothing with their source. The zero value isn't usable, use New or NewFunc.
type OrderedSet[T any] struct {
	t *Trees.AVLTree[T, uint32]
}

var _ Sets.Ordered[int] = (*OrderedSet[int])(nil)

// New empty set ordered by cmp.Less.
func New[T cmp.Ordered](opts ...Option) *OrderedSet[T] {
	return NewFunc(cmp.Less[T], opts...)
}

// NewFunc returns an empty set ordered by less, which must be a strict total order.
func NewFunc[T any](less func(a, b T) bool, opts ...Option) *OrderedSet[T] {
	c := makeConfig(opts)
	t := Trees.NewFunc[T, uint32](c.hint, less)
	t.SetLimit(c.limit)
	return &OrderedSet[T]{t}
}

// Of returns the set of the given values, like a literal.
func Of[T cmp.Ordered](vs ...T) (*OrderedSet[T], error) {
	return Collect(slices.Values(vs))
}

// Collect the values of seq into a new set; repeated values are kept once.
// If a value can't be stored, every node built so far is released and the error is returned.
func Collect[T cmp.Ordered](seq iter.Seq[T], opts ...Option) (*OrderedSet[T], error) {
	return CollectFunc(seq, cmp.Less[T], opts...)
}

// CollectFunc is Collect with a custom order.
func CollectFunc[T any](seq iter.Seq[T], less func(a, b T) bool, opts ...Option) (*OrderedSet[T], error) {
	u := NewFunc(less, opts...)
	i := 0
	for v := range seq {
		if _, err := u.t.Insert(v); err != nil {
			u.Destroy()
			return nil, errors.Wrapf(err, "collecting value %d", i)
		}
		i++
	}
	return u, nil
}

// FromSorted builds a set from strictly ascending values in O(n). The slice isn't retained.
// WithHint is ignored; a WithLimit smaller than len(vs) makes FromSorted fail with ErrFull.
func FromSorted[T cmp.Ordered](vs []T, opts ...Option) (*OrderedSet[T], error) {
	c := makeConfig(opts)
	if c.limit != 0 && uint64(len(vs)) > uint64(c.limit) {
		return nil, errors.Wrapf(ErrFull, "building from %d sorted values with limit %d", len(vs), c.limit)
	}
	t, err := Trees.FromSorted[T, uint32](vs)
	if err != nil {
		return nil, errors.Wrap(err, "building from sorted values")
	}
	t.SetLimit(c.limit)
	return &OrderedSet[T]{t}, nil
}

// Clone returns an independent deep copy of the set, with the same order and limit.
func (u *OrderedSet[T]) Clone() *OrderedSet[T] {
	return &OrderedSet[T]{u.t.Clone()}
}

// Assign replaces the content of u with a deep copy of o. Assigning a set to itself does
// nothing. If o holds more values than u's limit, u is left unchanged and ErrFull is returned.
func (u *OrderedSet[T]) Assign(o *OrderedSet[T]) error {
	if err := u.t.CopyFrom(o.t); err != nil {
		return errors.Wrapf(err, "assigning %d values", o.Size())
	}
	return nil
}

// Insert v. Inserting a value that's already in the set does nothing.
func (u *OrderedSet[T]) Insert(v T) error {
	if _, err := u.t.Insert(v); err != nil {
		return errors.Wrapf(err, "inserting %v", v)
	}
	return nil
}

// InsertAll inserts the values of seq and returns how many of them were new. If a value can't
// be stored, the values added by this call are erased again, so the set is left as it was, and
// the error is returned.
func (u *OrderedSet[T]) InsertAll(seq iter.Seq[T]) (int, error) {
	var added []T
	for v := range seq {
		ok, err := u.t.Insert(v)
		if err != nil {
			for i := len(added) - 1; i > -1; i-- {
				u.t.Erase(added[i])
			}
			return 0, errors.Wrapf(err, "inserting %v after %d new values", v, len(added))
		}
		if ok {
			added = append(added, v)
		}
	}
	return len(added), nil
}

// Erase v if it's in the set. Erasing an absent value does nothing.
func (u *OrderedSet[T]) Erase(v T) {
	u.t.Erase(v)
}

// Find returns the iterator at v, or End if v isn't in the set.
func (u *OrderedSet[T]) Find(v T) Iterator[T] {
	return u.t.Find(v)
}

// LowerBound returns the iterator at the smallest value not less than v, or End.
func (u *OrderedSet[T]) LowerBound(v T) Iterator[T] {
	return u.t.LowerBound(v)
}

// UpperBound returns the iterator at the smallest value greater than v, or End.
func (u *OrderedSet[T]) UpperBound(v T) Iterator[T] {
	return u.t.UpperBound(v)
}

func (u *OrderedSet[T]) Begin() Iterator[T] {
	return u.t.Begin()
}

func (u *OrderedSet[T]) End() Iterator[T] {
	return u.t.End()
}

// Size is the number of values in the set.
func (u *OrderedSet[T]) Size() uint {
	return uint(u.t.Size())
}

func (u *OrderedSet[T]) Empty() bool {
	return u.t.Empty()
}

// Limit is the maximum number of values; 0 means up to 1<<32-1.
func (u *OrderedSet[T]) Limit() uint32 {
	return u.t.Limit()
}

// Destroy releases every value of the set, leaving it empty but usable.
func (u *OrderedSet[T]) Destroy() {
	u.t.Clear()
}

// All values in ascending order.
func (u *OrderedSet[T]) All() iter.Seq[T] {
	return u.t.All()
}

// Backward yields all values in descending order.
func (u *OrderedSet[T]) Backward() iter.Seq[T] {
	return u.t.Backward()
}

// Check the internal invariants of the set, see Trees.AVLTree.Check.
func (u *OrderedSet[T]) Check() error {
	return u.t.Check()
}

// Put [Sets.Set.Put]
func (u *OrderedSet[T]) Put(v T) (bool, error) {
	ok, err := u.t.Insert(v)
	if err != nil {
		return false, errors.Wrapf(err, "putting %v", v)
	}
	return ok, nil
}

func (u *OrderedSet[T]) Has(v T) bool {
	return u.t.Has(v)
}

// Remove v, returning whether it was in the set.
func (u *OrderedSet[T]) Remove(v T) bool {
	return u.t.Erase(v)
}

// Range calls f on every value in ascending order until f returns false.
func (u *OrderedSet[T]) Range(f func(T) bool) {
	for v := range u.t.All() {
		if !f(v) {
			return
		}
	}
}

func (u *OrderedSet[T]) Minimum() (T, bool) {
	return u.t.Minimum()
}

func (u *OrderedSet[T]) Maximum() (T, bool) {
	return u.t.Maximum()
}

// Ascend [Sets.Ordered.Ascend]
func (u *OrderedSet[T]) Ascend(from T, f func(T) bool) {
	for v := range u.t.LowerBound(from).Forward() {
		if !f(v) {
			return
		}
	}
}
