// Package avlset holds helpers shared by the tree and set packages.
package avlset

import (
	"math/bits"
)

// NewBitArray that can hold size bits, all of them down.
func NewBitArray(size uint) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed size array of bits. The zero value holds no bit.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() uint {
	return uint(len(u.bits)) * bits.UintSize
}

func (u BitArray) Get(i uint) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i uint) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i uint) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count of bits that are up.
func (u BitArray) Count() (c uint) {
	for _, b := range u.bits {
		c += uint(bits.OnesCount(b))
	}
	return
}
