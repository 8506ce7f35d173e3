package minivec

// Free returns the number of allocated slots not holding a live element.
func (v *Vec[T]) Free() int {
	return v.capacity - v.size
}

// Utilization returns the ratio of live elements to allocated slots (0.0 to 1.0).
// Returns 0.0 if the Vec has no allocation.
func (v *Vec[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Grows returns the number of times the backing buffer was allocated or
// reallocated since construction or the last Release.
func (v *Vec[T]) Grows() int {
	return v.grows
}

// ReservedBytes returns the size in bytes of the backing buffer.
func (v *Vec[T]) ReservedBytes() int {
	return v.capacity * elemSize[T]()
}

// Metrics returns a snapshot of Vec statistics.
func (v *Vec[T]) Metrics() VecMetrics {
	return VecMetrics{
		Size:          v.Size(),
		Capacity:      v.Capacity(),
		Free:          v.Free(),
		Grows:         v.Grows(),
		ElemSize:      elemSize[T](),
		ReservedBytes: v.ReservedBytes(),
		Utilization:   v.Utilization(),
	}
}

// VecMetrics contains statistical information about a Vec.
type VecMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Free          int     // Capacity - Size
	Grows         int     // Growth events
	ElemSize      int     // Bytes per slot
	ReservedBytes int     // Capacity * ElemSize
	Utilization   float64 // Ratio of live elements to slots (0.0-1.0)
}
