package vec

import (
	"reflect"
	"unsafe"
)

// buffer owns the raw slots of a Vec and their capacity. It knows nothing
// about which slots hold live elements.
//
// Element types without pointers are stored off the Go heap and freed
// explicitly. All other element types are stored in typed Go memory so the
// garbage collector keeps seeing what they point to; freeing those just
// drops the reference.
type buffer[T any] struct {
	slots   []T    // capacity-length view; nil while cap == 0
	raw     []byte // off-heap block backing slots
	cap     int
	offHeap bool
	grows   int
}

// newBuffer returns an empty buffer. Nothing is allocated until the first
// grow. Zero-sized element types are rejected.
func newBuffer[T any]() buffer[T] {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic("vec: zero-sized element type " + reflect.TypeFor[T]().String())
	}
	return buffer[T]{offHeap: pointerFree(reflect.TypeFor[T]())}
}

func (b *buffer[T]) elemSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// grow doubles the capacity (0 becomes 1). Existing elements keep their
// indices. New slots hold the zero value. On a fault the buffer is left
// as it was.
func (b *buffer[T]) grow() {
	if b.cap == 0 {
		// A zero-value Vec never went through New.
		*b = newBuffer[T]()
	}
	newCap := uint(1)
	if b.cap != 0 {
		newCap = uint(b.cap) * 2
	}
	size := allocSize(newCap, b.elemSize())

	if b.offHeap {
		var raw []byte
		if b.cap == 0 {
			raw = rawAlloc(size)
		} else {
			raw = rawRealloc(b.raw, size)
		}
		slots := typedSlots[T](raw, int(newCap))
		clear(slots[b.cap:])
		b.raw, b.slots = raw, slots
	} else {
		slots := make([]T, newCap)
		copy(slots, b.slots)
		b.slots = slots
	}
	b.cap = int(newCap)
	b.grows++
}

// release frees the block, if any, and leaves the buffer empty.
func (b *buffer[T]) release() {
	if b.cap == 0 {
		return
	}
	if b.offHeap {
		rawFree(b.raw)
	}
	*b = buffer[T]{offHeap: b.offHeap}
}

// isOffHeap reports where the elements are, or will be once allocated.
func (b *buffer[T]) isOffHeap() bool {
	if b.cap == 0 {
		return pointerFree(reflect.TypeFor[T]())
	}
	return b.offHeap
}

// bytes returns the size of the block in bytes.
func (b *buffer[T]) bytes() int {
	return b.cap * int(b.elemSize())
}
