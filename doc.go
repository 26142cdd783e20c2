// Package vec implements a growable contiguous sequence (dynamic array)
// that manages its own memory.
//
// # Overview
//
// A Vec owns a block of raw memory and the elements stored in it. The block
// grows by doubling (0, 1, 2, 4, 8, ...) when a Push or Insert would
// overflow it, so appends and removals at the end are amortized O(1) and
// indexing is O(1).
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // drops elements and frees memory
//
//	v.Push(1)
//	v.Push(3)
//	v.Insert(1, 2)       // [1 2 3]
//	x := v.Remove(0)     // x == 1, v is [2 3]
//	last, ok := v.Pop()  // 3, true
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Consuming Iteration
//
// IntoIter moves the elements into an Iter, which yields them from either
// end. The Vec must not be used afterwards; the Iter must be released
// instead, which drops anything it did not yield:
//
//	it := v.IntoIter()
//	defer it.Release()
//	first, _ := it.Next()
//	last, _ := it.NextBack()
//
// # Element Ownership
//
// Elements implementing Dropper have Drop called exactly once when the
// container destroys them: by Release, or by Set replacing them. Elements
// handed out by Pop, Remove, Next and NextBack belong to the caller.
//
// # Memory Layout
//
// Element types that contain no Go pointers are stored off the Go heap in
// blocks from an mmap-backed allocator and are freed by Release. Other
// element types are stored in ordinary Go memory so the garbage collector
// can trace them.
//
// Off-heap blocks are invisible to the garbage collector. A Vec or Iter
// holding one that is never released leaks the block for the life of the
// process; Go-heap blocks are reclaimed by the collector either way, though
// their elements are then never dropped.
//
// # Faults
//
// Out of range indices, zero-sized element types, oversized or failed
// allocations, and use after Release or IntoIter all panic. Popping an
// empty Vec or draining an exhausted Iter returns false instead.
//
// # Thread Safety
//
// A Vec or Iter may be handed between goroutines, but it has no internal
// locking: concurrent use of one instance must be serialized by the caller.
//
// # Metrics
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reserved: %d bytes\n", m.BytesReserved)
package vec
