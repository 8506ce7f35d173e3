// Package minivec implements a small growable array backed by a single owned
// buffer.
//
// # Overview
//
// A Vec holds zero or one backing allocation of Capacity() slots, of which the
// first Size() are live elements. Nothing is allocated until the first Push;
// from then on the capacity follows a fixed schedule:
//
//	0 -> 2 -> 4 -> 8 -> 16 -> ...
//
// # Basic Usage
//
//	v := minivec.New[int]()
//	defer v.Release()
//
//	v.Push(1)
//	v.Push(2)
//	v.Push(3)        // Size() == 3, Capacity() == 4
//
//	x := v.Get(0)    // 1
//	v.Set(1, 20)
//	*v.At(2) += 10   // element 2 is now 13
//
//	first := v.Remove(0) // 1; the rest shift down, Size() == 2
//
// # Failure Model
//
// Out-of-range indices and failed allocations are programming errors, not
// runtime conditions. Get, At, Set and Remove panic with an *IndexError for
// any index outside [0, Size()), including every index on an empty Vec.
// Growth panics with an *AllocError when the requested buffer cannot be
// allocated. Both unwrap to a sentinel (ErrInvalidIndex, ErrAllocation) for
// callers that recover and classify with errors.Is.
//
// # Performance Characteristics
//
//   - Push: O(1) amortized, O(Capacity()) when the buffer grows
//   - Remove: O(Size() - index)
//   - Get, At, Set, Size, Capacity: O(1)
//   - Release: O(Size())
//
// # Thread Safety
//
// Vec is not goroutine-safe. Guard a shared Vec with a sync.Mutex.
//
// # Metrics
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reserved: %d bytes\n", m.ReservedBytes)
package minivec
