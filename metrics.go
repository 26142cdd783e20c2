package vec

// ElemSize returns the size in bytes of one element slot.
func (v *Vec[T]) ElemSize() int {
	return int(v.buf.elemSize())
}

// BytesReserved returns the size in bytes of v's backing block.
func (v *Vec[T]) BytesReserved() int {
	return v.buf.bytes()
}

// BytesInUse returns the number of bytes occupied by live elements.
func (v *Vec[T]) BytesInUse() int {
	return v.len * v.ElemSize()
}

// Grows returns how many times v has grown its backing block.
func (v *Vec[T]) Grows() int {
	return v.buf.grows
}

// OffHeap reports whether v's elements live outside the Go heap.
func (v *Vec[T]) OffHeap() bool {
	return v.buf.isOffHeap()
}

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 if v has no capacity.
func (v *Vec[T]) Utilization() float64 {
	if v.buf.cap == 0 {
		return 0
	}
	return float64(v.len) / float64(v.buf.cap)
}

// Metrics returns a snapshot of v's statistics.
func (v *Vec[T]) Metrics() VecMetrics {
	return VecMetrics{
		Len:           v.Len(),
		Cap:           v.Cap(),
		ElemSize:      v.ElemSize(),
		BytesInUse:    v.BytesInUse(),
		BytesReserved: v.BytesReserved(),
		Grows:         v.Grows(),
		OffHeap:       v.OffHeap(),
		Utilization:   v.Utilization(),
	}
}

// VecMetrics contains statistical information about a Vec.
type VecMetrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated slots
	ElemSize      int     // Bytes per slot
	BytesInUse    int     // Len * ElemSize
	BytesReserved int     // Cap * ElemSize
	Grows         int     // Growth steps performed by this Vec
	OffHeap       bool    // Backing block is outside the Go heap
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
}
