package minivec

import (
	"math"
	"unsafe"
)

const (
	// InitialCapacity is the number of slots reserved by the first Push.
	InitialCapacity = 2
	// GrowthFactor multiplies the capacity each time a full Vec grows.
	GrowthFactor = 2
)

const intSize = 32 << (^uint(0) >> 63)

// maxAllocBytes caps a single backing allocation: 2^47-1 on 64-bit platforms,
// math.MaxInt32 on 32-bit ones.
const maxAllocBytes = 1<<(31+(intSize-32)/2) - 1

// elemSize returns the number of bytes one slot of T occupies.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// allocSlice returns n zeroed slots of T.
// It panics with an *AllocError if n is negative or n slots of T would exceed
// maxAllocBytes. Returns nil if n == 0.
func allocSlice[T any](n int) []T {
	size := elemSize[T]()
	if n < 0 || (size > 0 && n > maxAllocBytes/size) {
		panic(&AllocError{Elems: n, ElemSize: size})
	}
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

// nextCapacity returns the capacity a full buffer of old slots grows to.
func nextCapacity[T any](old int) int {
	if old == 0 {
		return InitialCapacity
	}
	if old > math.MaxInt/GrowthFactor {
		panic(&AllocError{Elems: old, ElemSize: elemSize[T]()})
	}
	return old * GrowthFactor
}

// resize allocates n slots and moves the first live elements of old into them.
// old must not be read after resize returns.
func resize[T any](old []T, live, n int) []T {
	buf := allocSlice[T](n)
	copy(buf, old[:live])
	return buf
}
