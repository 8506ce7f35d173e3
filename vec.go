package minivec

// Vec is a growable array of T backed by a single owned buffer.
// The zero value is an empty Vec with no allocation. Not goroutine-safe:
// callers sharing a Vec must synchronize access themselves.
type Vec[T any] struct {
	slots    []T // backing buffer, len(slots) == capacity
	capacity int // allocated slots, 0 when slots is nil
	size     int // live elements, always <= capacity
	grows    int // growth events since construction or Release
}

// New returns an empty Vec. No memory is allocated until the first Push.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// Size returns the number of live elements.
func (v *Vec[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vec[T]) Capacity() int {
	return v.capacity
}

// Push appends x, growing the buffer first if it is full.
// Amortized O(1); O(Capacity()) when growth occurs.
func (v *Vec[T]) Push(x T) {
	if v.size == v.capacity {
		v.grow()
	}
	v.slots[v.size] = x
	v.size++
}

// Remove deletes the element at index, shifting every later element down by
// one, and returns it. Capacity is unchanged. Panics with an *IndexError if
// index is out of range.
func (v *Vec[T]) Remove(index int) T {
	v.checkIndex(index)

	removed := v.slots[index]
	copy(v.slots[index:v.size-1], v.slots[index+1:v.size])
	v.size--

	// The vacated tail slot is no longer live; drop whatever it references.
	var zero T
	v.slots[v.size] = zero
	return removed
}

// Get returns a copy of the element at index.
// Panics with an *IndexError if index is out of range.
func (v *Vec[T]) Get(index int) T {
	v.checkIndex(index)
	return v.slots[index]
}

// At returns a pointer to the element at index. The pointer stays valid until
// the next Push that grows the Vec, or Release.
// Panics with an *IndexError if index is out of range.
func (v *Vec[T]) At(index int) *T {
	v.checkIndex(index)
	return &v.slots[index]
}

// Set overwrites the element at index with x.
// Panics with an *IndexError if index is out of range.
func (v *Vec[T]) Set(index int, x T) {
	v.checkIndex(index)
	v.slots[index] = x
}

// Release drops the backing buffer and returns v to its freshly constructed
// state. Releasing an empty Vec is a no-op; a released Vec may be reused.
func (v *Vec[T]) Release() {
	if v.slots == nil {
		return
	}
	clear(v.slots[:v.size])
	v.slots = nil
	v.capacity = 0
	v.size = 0
	v.grows = 0
}

// grow replaces the full buffer with one of nextCapacity slots.
func (v *Vec[T]) grow() {
	n := nextCapacity[T](v.capacity)
	if v.slots == nil {
		v.slots = allocSlice[T](n)
	} else {
		v.slots = resize(v.slots, v.size, n)
	}
	v.capacity = n
	v.grows++
}

// checkIndex panics unless 0 <= index < v.size.
func (v *Vec[T]) checkIndex(index int) {
	if index < 0 || index >= v.size {
		panic(&IndexError{Index: index, Size: v.size})
	}
}
