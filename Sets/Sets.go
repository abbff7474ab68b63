package Sets

// Set of unique elements.
type Set[E any] interface {
	// Put e in the set. Returns false if e was already there; an error means e couldn't be stored.
	Put(E) (bool, error)
	Has(E) bool
	Remove(E) bool
	Size() uint
	Range(func(E) bool)
}

// Ordered is a Set whose elements are totally ordered. Range visits them in ascending order.
type Ordered[E any] interface {
	Set[E]
	Minimum() (E, bool)
	Maximum() (E, bool)
	// Ascend calls f on the elements not less than from, in ascending order, until f returns false.
	Ascend(from E, f func(E) bool)
}
