package vec

import (
	"fmt"
	"math"
	"math/bits"
	"reflect"
	"sync"
	"unsafe"

	"modernc.org/memory"
)

// maxAllocBytes is the largest block a buffer may request. Offsets into a
// block must stay representable as a signed int.
const maxAllocBytes = math.MaxInt

// offHeap is the process-wide allocator for element types that hold no Go
// pointers. memory.Allocator is not goroutine-safe, and separately owned
// Vecs may live on different goroutines.
var offHeap struct {
	mu sync.Mutex
	a  memory.Allocator
}

// rawAlloc returns a fresh off-heap block of size bytes.
// Running out of memory is fatal.
func rawAlloc(size int) []byte {
	offHeap.mu.Lock()
	b, err := offHeap.a.Malloc(size)
	offHeap.mu.Unlock()
	if err != nil {
		panic(fmt.Errorf("vec: out of memory allocating %d bytes: %w", size, err))
	}
	return b
}

// rawRealloc resizes b to size bytes, preserving its contents at the same
// offsets. The block may move; b must not be used afterwards.
func rawRealloc(b []byte, size int) []byte {
	offHeap.mu.Lock()
	r, err := offHeap.a.Realloc(b, size)
	offHeap.mu.Unlock()
	if err != nil {
		panic(fmt.Errorf("vec: out of memory reallocating %d bytes: %w", size, err))
	}
	return r
}

// rawFree returns b to the off-heap allocator.
func rawFree(b []byte) {
	offHeap.mu.Lock()
	err := offHeap.a.Free(b)
	offHeap.mu.Unlock()
	if err != nil {
		panic(fmt.Errorf("vec: free of %d bytes: %w", len(b), err))
	}
}

// allocSize returns the byte size of n elements of elemSize bytes.
// Sizes past maxAllocBytes are rejected before anything is allocated.
func allocSize(n uint, elemSize uintptr) int {
	hi, lo := bits.Mul(n, uint(elemSize))
	if hi != 0 || lo > maxAllocBytes {
		panic(fmt.Sprintf("vec: allocation too large (%d elements of %d bytes)", n, elemSize))
	}
	return int(lo)
}

// typedSlots views the block b as n elements of T.
func typedSlots[T any](b []byte, n int) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

var pointerFreeCache sync.Map // reflect.Type -> bool

// pointerFree reports whether values of t contain no Go pointers and can
// therefore live in memory the garbage collector does not scan.
func pointerFree(t reflect.Type) bool {
	if v, ok := pointerFreeCache.Load(t); ok {
		return v.(bool)
	}
	free := scanPointerFree(t)
	pointerFreeCache.Store(t, free)
	return free
}

func scanPointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || scanPointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !scanPointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointer, slice, map, chan, func, interface, string, unsafe.Pointer.
		return false
	}
}
