package Trees

import (
	"errors"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Tree represents an ordered set of unique values implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and should not be used.
// S is the unsigned type used for node indexes and subtree sizes; it also
// bounds how many values a tree can hold.
type Tree[T any, S constraints.Unsigned] interface {
	//Insert v to the Tree. Returns true if v was added, false if an equal
	//value was already there. A non nil error means no node could be
	//allocated for v and the tree is unchanged.
	Insert(v T) (bool, error)
	//Erase v from the Tree. Returns false if v wasn't in the tree.
	Erase(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//At returns the k-th smallest element, starting from 0.
	At(k S) (T, bool)
	//RankOf v in the tree according to in-order, starting from 0. If v
	//isn't found, returns the rank v would have if it was inserted.
	RankOf(v T) (S, bool)
	//Size of the tree.
	Size() S
	//All elements in ascending order. The tree must not be modified while
	//ranging over the sequence.
	All() iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures: broken
	//ordering, stale cached sizes or heights, inconsistent links, or an
	//imbalance the rotations should have removed.
	Corrupt() bool
}

// ErrFull is returned when a node can't be allocated, either because the tree reached
// its limit or because the index type S has no index left.
var ErrFull = errors.New("tree is full")

// InvalidSliceError reports that a slice given to FromSorted isn't strictly ascending:
// Prev is at Index and Next at Index+1.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at %d: %v then %v", e.Index, e.Prev, e.Next)
}

// CorruptError describes the first broken property found by Check.
type CorruptError struct {
	Index  uint64 // arena index of the offending node
	Reason string
}

func (e CorruptError) Error() string {
	return fmt.Sprintf("node %d: %s", e.Index, e.Reason)
}
