package vec

import "iter"

// Iter yields the elements of a consumed Vec from either end, handing
// ownership of each to the caller. Elements never yielded are dropped by
// Release.
type Iter[T any] struct {
	buf   buffer[T]
	front int // next element from the front
	back  int // one past the next element from the back
}

// Next takes the first remaining element. It returns false once every
// element has been yielded.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.front == it.back {
		return zero, false
	}
	x := it.buf.slots[it.front]
	it.buf.slots[it.front] = zero
	it.front++
	return x, true
}

// NextBack takes the last remaining element. It returns false once every
// element has been yielded.
func (it *Iter[T]) NextBack() (T, bool) {
	var zero T
	if it.front == it.back {
		return zero, false
	}
	it.back--
	x := it.buf.slots[it.back]
	it.buf.slots[it.back] = zero
	return x, true
}

// Len returns the number of elements not yet yielded.
func (it *Iter[T]) Len() int { return it.back - it.front }

// All consumes the remaining elements front to back.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Backward consumes the remaining elements back to front.
func (it *Iter[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := it.NextBack()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Release drops the elements not yet yielded and frees the memory.
// It is safe to call more than once.
func (it *Iter[T]) Release() {
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		drop(x)
	}
	it.buf.release()
	it.front, it.back = 0, 0
}
