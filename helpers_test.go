package vec

import "testing"

// expectPanic runs fn and fails the test unless it panics. It returns the
// recovered value.
func expectPanic(t *testing.T, name string, fn func()) (r any) {
	t.Helper()
	defer func() {
		r = recover()
		if r == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
	return nil
}

// counted records how many times each id was dropped. It holds a map, so
// it is stored on the Go heap.
type counted struct {
	id    int
	drops map[int]int
}

func (c counted) Drop() { c.drops[c.id]++ }

// handle is a pointer-free Dropper, so it is stored off the Go heap.
type handle int64

var handleDrops = map[handle]int{}

func (h handle) Drop() { handleDrops[h]++ }

func resetHandleDrops() {
	clear(handleDrops)
}

// checkDroppedOnce fails unless every id in [0, n) was dropped exactly once.
func checkDroppedOnce(t *testing.T, drops map[int]int, n int) {
	t.Helper()
	if len(drops) != n {
		t.Errorf("dropped %d distinct elements, want %d", len(drops), n)
	}
	for id := 0; id < n; id++ {
		if drops[id] != 1 {
			t.Errorf("element %d dropped %d times, want 1", id, drops[id])
		}
	}
}

func fill(n int) *Vec[int] {
	v := New[int]()
	for i := 0; i < n; i++ {
		v.Push(i)
	}
	return v
}
