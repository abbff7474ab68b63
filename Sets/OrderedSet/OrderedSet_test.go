package OrderedSet_test

import (
	"errors"
	"iter"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/g-m-twostay/go-avlset/Sets"
	"github.com/g-m-twostay/go-avlset/Sets/OrderedSet"
	"github.com/g-m-twostay/go-avlset/Trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			if !yield(i) {
				return
			}
		}
	}
}

func TestOrderedSet_InsertAscending(t *testing.T) {
	s := OrderedSet.New[int]()
	require.True(t, s.Empty())
	for i := range 1000 {
		require.NoError(t, s.Insert(i))
	}
	assert.EqualValues(t, 1000, s.Size())
	assert.Equal(t, slices.Collect(count(1000)), slices.Collect(s.All()))
	require.NoError(t, s.Check())
}

func TestOrderedSet_CopyLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("large set")
	}
	a := OrderedSet.New[int]()
	for i := 1; i <= 1000000; i++ {
		require.NoError(t, a.Insert(i))
	}
	b := a.Clone()
	assert.EqualValues(t, 1000000, a.Size())
	assert.EqualValues(t, 1000000, b.Size())
	a.Destroy()
	assert.True(t, a.Empty())
	assert.EqualValues(t, 1000000, b.Size())
	v, ok := b.Minimum()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, _ = b.Maximum()
	assert.Equal(t, 1000000, v)
	require.NoError(t, b.Check())
}

func TestOrderedSet_CollectLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("large set")
	}
	rg := rand.New(rand.NewSource(1))
	in := make([]int, 1000000)
	distinct := haxmap.New[int, struct{}]()
	for i := range in {
		in[i] = rg.Intn(1 << 21)
		distinct.Set(in[i], struct{}{})
	}
	s, err := OrderedSet.Collect(slices.Values(in))
	require.NoError(t, err)
	assert.EqualValues(t, distinct.Len(), s.Size())
	for _, v := range in[:1000] {
		_, ok := distinct.Get(v)
		assert.Equal(t, ok, s.Has(v))
	}
	require.NoError(t, s.Check())
}

func TestOrderedSet_Duplicate(t *testing.T) {
	s := OrderedSet.New[string]()
	require.NoError(t, s.Insert("a"))
	require.NoError(t, s.Insert("b"))
	before := s.Size()
	require.NoError(t, s.Insert("c"))
	require.NoError(t, s.Insert("c"))
	assert.Equal(t, before+1, s.Size())
	ok, err := s.Put("c")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOrderedSet_EraseRoot(t *testing.T) {
	s, err := OrderedSet.Of(20, 10, 30)
	require.NoError(t, err)
	s.Erase(20)
	assert.EqualValues(t, 2, s.Size())
	assert.Equal(t, []int{10, 30}, slices.Collect(s.All()))
	require.NoError(t, s.Check())
}

func TestOrderedSet_FindErase(t *testing.T) {
	s := OrderedSet.New[int]()
	require.NoError(t, s.Insert(7))
	it := s.Find(7)
	require.False(t, it.End())
	assert.Equal(t, 7, it.Value())
	s.Erase(7)
	assert.True(t, s.Find(7).Equal(s.End()))
	s.Erase(7)
	assert.True(t, s.Empty())
	assert.False(t, s.Remove(7))
}

func TestOrderedSet_EraseAbsent(t *testing.T) {
	s, err := OrderedSet.Of(1, 3, 5, 7)
	require.NoError(t, err)
	for _, v := range []int{0, 2, 4, 6, 8} {
		s.Erase(v)
	}
	assert.Equal(t, []int{1, 3, 5, 7}, slices.Collect(s.All()))
}

func TestOrderedSet_LowerBound(t *testing.T) {
	s, err := OrderedSet.Of(10, 20, 30, 40)
	require.NoError(t, err)
	for _, c := range []struct{ v, want int }{{5, 10}, {10, 10}, {11, 20}, {39, 40}, {40, 40}} {
		it := s.LowerBound(c.v)
		require.False(t, it.End(), "lower bound of %d", c.v)
		assert.Equal(t, c.want, it.Value(), "lower bound of %d", c.v)
	}
	assert.True(t, s.LowerBound(41).End())
	assert.Equal(t, 30, s.UpperBound(20).Value())
	assert.True(t, s.UpperBound(40).End())
	assert.True(t, OrderedSet.New[int]().LowerBound(0).End())
}

func TestOrderedSet_Iterate(t *testing.T) {
	s, err := OrderedSet.Of(3, 1, 2)
	require.NoError(t, err)
	var got []int
	for it := s.Begin(); !it.Equal(s.End()); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(s.Backward()))
	assert.Equal(t, 3, s.End().Prev().Value())
	assert.Equal(t, 1, s.End().Next().Value())
}

func TestOrderedSet_CopyIndependence(t *testing.T) {
	a, err := OrderedSet.Of(1, 2, 3, 4, 5)
	require.NoError(t, err)
	b := a.Clone()
	b.Erase(3)
	require.NoError(t, b.Insert(6))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(a.All()))
	a.Erase(1)
	assert.Equal(t, []int{1, 2, 4, 5, 6}, slices.Collect(b.All()))

	c := OrderedSet.New[int]()
	require.NoError(t, c.Insert(100))
	require.NoError(t, c.Assign(a))
	assert.Equal(t, slices.Collect(a.All()), slices.Collect(c.All()))
	c.Erase(2)
	assert.True(t, a.Has(2))
	require.NoError(t, c.Assign(c))
	assert.Equal(t, []int{3, 4, 5}, slices.Collect(c.All()))
	require.NoError(t, c.Check())
}

func TestOrderedSet_AssignOverLimit(t *testing.T) {
	src, err := OrderedSet.Collect(count(10))
	require.NoError(t, err)
	dst := OrderedSet.New[int](OrderedSet.WithLimit(5))
	require.NoError(t, dst.Insert(-1))
	err = dst.Assign(src)
	require.ErrorIs(t, err, OrderedSet.ErrFull)
	assert.Equal(t, []int{-1}, slices.Collect(dst.All()))
	assert.EqualValues(t, 5, dst.Limit())
}

func TestOrderedSet_CollectUnwinds(t *testing.T) {
	s, err := OrderedSet.Collect(count(100), OrderedSet.WithLimit(50), OrderedSet.WithHint(1000))
	require.ErrorIs(t, err, Trees.ErrFull)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "collecting value 50")

	s, err = OrderedSet.Collect(count(50), OrderedSet.WithLimit(50))
	require.NoError(t, err)
	assert.EqualValues(t, 50, s.Size())
}

func TestOrderedSet_InsertAllRollsBack(t *testing.T) {
	s := OrderedSet.New[int](OrderedSet.WithLimit(10))
	for _, v := range []int{0, 2, 4} {
		require.NoError(t, s.Insert(v))
	}
	n, err := s.InsertAll(count(20))
	require.True(t, errors.Is(err, OrderedSet.ErrFull))
	assert.Zero(t, n)
	assert.Equal(t, []int{0, 2, 4}, slices.Collect(s.All()))
	require.NoError(t, s.Check())

	n, err = s.InsertAll(slices.Values([]int{1, 2, 3, 3}))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, slices.Collect(s.All()))
}

func TestOrderedSet_InsertFull(t *testing.T) {
	s := OrderedSet.New[int](OrderedSet.WithLimit(1))
	require.NoError(t, s.Insert(1))
	err := s.Insert(2)
	require.ErrorIs(t, err, OrderedSet.ErrFull)
	assert.Contains(t, err.Error(), "inserting 2")
	_, err = s.Put(3)
	require.ErrorIs(t, err, OrderedSet.ErrFull)
	assert.EqualValues(t, 1, s.Size())
}

func TestOrderedSet_FromSorted(t *testing.T) {
	s, err := OrderedSet.FromSorted([]int{1, 2, 3, 5, 8, 13})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 5, 8, 13}, slices.Collect(s.All()))
	require.NoError(t, s.Check())

	_, err = OrderedSet.FromSorted([]int{1, 3, 2})
	var ise Trees.InvalidSliceError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, 1, ise.Index)

	_, err = OrderedSet.FromSorted([]int{1, 2, 3}, OrderedSet.WithLimit(2))
	require.ErrorIs(t, err, OrderedSet.ErrFull)

	s, err = OrderedSet.FromSorted([]int{1, 2}, OrderedSet.WithLimit(2))
	require.NoError(t, err)
	require.ErrorIs(t, s.Insert(3), OrderedSet.ErrFull)
}

func TestOrderedSet_NewFunc(t *testing.T) {
	s := OrderedSet.NewFunc(func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})
	for _, v := range []string{"Go", "go", "AVL", "avl", "tree"} {
		require.NoError(t, s.Insert(v))
	}
	assert.Equal(t, []string{"AVL", "Go", "tree"}, slices.Collect(s.All()))
	assert.True(t, s.Has("TREE"))
}

func TestOrderedSet_SetInterface(t *testing.T) {
	var s Sets.Ordered[int] = OrderedSet.New[int]()
	for _, v := range []int{5, 1, 9, 3, 7} {
		ok, err := s.Put(v)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.True(t, s.Remove(9))
	assert.False(t, s.Has(9))
	assert.EqualValues(t, 4, s.Size())
	var got []int
	s.Ascend(4, func(v int) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []int{5, 7}, got)
	got = got[:0]
	s.Range(func(v int) bool {
		got = append(got, v)
		return v < 3
	})
	assert.Equal(t, []int{1, 3}, got)
	lo, _ := s.Minimum()
	hi, _ := s.Maximum()
	assert.Equal(t, [2]int{1, 7}, [2]int{lo, hi})
}

func TestOrderedSet_Random(t *testing.T) {
	rg := rand.New(rand.NewSource(2))
	s := OrderedSet.New[int]()
	content := haxmap.New[int, struct{}]()
	for i := range 50000 {
		v := rg.Intn(4000)
		if rg.Intn(2) == 0 {
			require.NoError(t, s.Insert(v))
			content.Set(v, struct{}{})
		} else {
			s.Erase(v)
			content.Del(v)
		}
		if i%5000 == 0 {
			require.NoError(t, s.Check())
		}
	}
	assert.EqualValues(t, content.Len(), s.Size())
	prev := -1
	for v := range s.All() {
		_, ok := content.Get(v)
		assert.True(t, ok, "unexpected value %d", v)
		assert.Greater(t, v, prev)
		prev = v
	}
}
