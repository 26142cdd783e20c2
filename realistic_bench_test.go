package vec

import (
	"runtime"
	"testing"
)

// BenchmarkRealisticUsage compares Vec against builtin slices for common
// request-scoped patterns
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Build a batch, drain it, release
	b.Run("BatchBuildDrain/Vec", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int64]()
			for j := 0; j < 100; j++ {
				v.Push(int64(j))
			}
			for {
				if _, ok := v.Pop(); !ok {
					break
				}
			}
			v.Release()
		}
	})

	b.Run("BatchBuildDrain/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int64
			for j := 0; j < 100; j++ {
				s = append(s, int64(j))
			}
			for len(s) > 0 {
				s = s[:len(s)-1]
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	// Test 2: Struct records with front insertion
	type record struct {
		ID   int64
		Data [56]byte // Total 64 bytes
	}

	b.Run("FrontInsert/Vec", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[record]()
			for j := 0; j < 64; j++ {
				v.Insert(0, record{ID: int64(j)})
			}
			v.Release()
		}
	})

	b.Run("FrontInsert/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []record
			for j := 0; j < 64; j++ {
				s = append(s, record{})
				copy(s[1:], s)
				s[0] = record{ID: int64(j)}
			}
		}
	})

	// Test 3: Consume from both ends
	b.Run("DoubleEnded/Vec", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < 100; j++ {
				v.Push(j)
			}
			it := v.IntoIter()
			for it.Len() > 0 {
				it.Next()
				it.NextBack()
			}
			it.Release()
		}
	})
}
