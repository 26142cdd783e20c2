package vec

import (
	"fmt"
	"iter"
)

type state uint8

const (
	live state = iota
	released
	moved
)

// Vec is a growable contiguous sequence. Not goroutine-safe; a Vec may be
// handed to another goroutine, but concurrent use must be serialized by
// the caller.
type Vec[T any] struct {
	buf   buffer[T]
	len   int
	state state
}

// New returns an empty Vec. No memory is allocated until the first Push or
// Insert. New panics if T has zero size.
func New[T any]() *Vec[T] {
	return &Vec[T]{buf: newBuffer[T]()}
}

// Push appends x to the end of v.
func (v *Vec[T]) Push(x T) {
	v.panicIfUnusable()
	if v.len == v.buf.cap {
		v.buf.grow()
	}
	v.buf.slots[v.len] = x
	v.len++
}

// Pop removes the last element and hands it to the caller.
// It returns false if v is empty.
func (v *Vec[T]) Pop() (T, bool) {
	v.panicIfUnusable()
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	x := v.buf.slots[v.len]
	v.buf.slots[v.len] = zero
	return x, true
}

// Insert places x at index i, shifting the elements at i and after up by
// one. It panics unless 0 <= i <= Len().
func (v *Vec[T]) Insert(i int, x T) {
	v.panicIfUnusable()
	if i < 0 || i > v.len {
		panic(fmt.Sprintf("vec: insert index %d out of range [0:%d]", i, v.len+1))
	}
	if v.len == v.buf.cap {
		v.buf.grow()
	}
	s := v.buf.slots
	copy(s[i+1:v.len+1], s[i:v.len])
	s[i] = x
	v.len++
}

// Remove takes the element at index i out of v and closes the gap.
// It panics unless 0 <= i < Len().
func (v *Vec[T]) Remove(i int) T {
	v.panicIfUnusable()
	if i < 0 || i >= v.len {
		panic(fmt.Sprintf("vec: remove index %d out of range [0:%d]", i, v.len))
	}
	s := v.buf.slots
	x := s[i]
	copy(s[i:v.len-1], s[i+1:v.len])
	v.len--
	var zero T
	s[v.len] = zero
	return x
}

// Len returns the number of elements in v.
func (v *Vec[T]) Len() int { return v.len }

// Cap returns the number of slots v can hold before it must grow.
func (v *Vec[T]) Cap() int { return v.buf.cap }

// Slice returns the live elements as a slice sharing v's memory. Elements
// may be read and written through it, but writes replace elements without
// dropping them. The slice is only valid until the next Push, Insert,
// Remove, Pop, IntoIter or Release.
func (v *Vec[T]) Slice() []T {
	if v.len == 0 {
		return nil
	}
	return v.buf.slots[:v.len:v.len]
}

// At returns the element at index i. Out of range indices panic like any
// slice index.
func (v *Vec[T]) At(i int) T {
	return v.buf.slots[:v.len][i]
}

// Set replaces the element at index i with x and drops the old element.
func (v *Vec[T]) Set(i int, x T) {
	s := v.buf.slots[:v.len]
	old := s[i]
	s[i] = x
	drop(old)
}

// All returns an iterator over index/element pairs that leaves v intact.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(i, v.buf.slots[i]) {
				return
			}
		}
	}
}

// IntoIter moves v's elements and memory into a consuming Iter. v is
// unusable afterwards and its Release does nothing; release the Iter
// instead.
func (v *Vec[T]) IntoIter() *Iter[T] {
	v.panicIfUnusable()
	it := &Iter[T]{buf: v.buf, back: v.len}
	v.buf = buffer[T]{offHeap: v.buf.offHeap}
	v.len = 0
	v.state = moved
	return it
}

// Release drops every element, last to first, and frees v's memory.
// Calling Release again, or on a Vec that was turned into an Iter, does
// nothing.
func (v *Vec[T]) Release() {
	if v.state != live {
		return
	}
	for {
		x, ok := v.Pop()
		if !ok {
			break
		}
		drop(x)
	}
	v.buf.release()
	v.state = released
}

func (v *Vec[T]) panicIfUnusable() {
	switch v.state {
	case released:
		panic("vec: use after Release()")
	case moved:
		panic("vec: use after move")
	}
}
