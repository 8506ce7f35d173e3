package minivec

import (
	"fmt"
	"testing"
)

// BenchmarkPush compares Vec growth with the builtin append
func BenchmarkPush(b *testing.B) {
	for _, n := range []int{16, 1024, 65536} {
		b.Run(fmt.Sprintf("Vec-%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := New[int]()
				for j := 0; j < n; j++ {
					v.Push(j)
				}
				v.Release()
			}
		})

		b.Run(fmt.Sprintf("Builtin-%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < n; j++ {
					s = append(s, j)
				}
				_ = s
			}
		})
	}
}

// BenchmarkRemove measures the shift cost at both ends
func BenchmarkRemove(b *testing.B) {
	const n = 1024

	b.Run("Front", func(b *testing.B) {
		v := New[int]()
		for i := 0; i < b.N; i++ {
			if v.Size() == 0 {
				b.StopTimer()
				for j := 0; j < n; j++ {
					v.Push(j)
				}
				b.StartTimer()
			}
			v.Remove(0)
		}
	})

	b.Run("Back", func(b *testing.B) {
		v := New[int]()
		for i := 0; i < b.N; i++ {
			if v.Size() == 0 {
				b.StopTimer()
				for j := 0; j < n; j++ {
					v.Push(j)
				}
				b.StartTimer()
			}
			v.Remove(v.Size() - 1)
		}
	})
}

// BenchmarkIndexing covers the bounds-checked accessors
func BenchmarkIndexing(b *testing.B) {
	const n = 1024
	v := New[int]()
	for i := 0; i < n; i++ {
		v.Push(i)
	}

	b.Run("Get", func(b *testing.B) {
		sum := 0
		for i := 0; i < b.N; i++ {
			sum += v.Get(i % n)
		}
		_ = sum
	})

	b.Run("Set", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Set(i%n, i)
		}
	})

	b.Run("At", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			*v.At(i % n)++
		}
	})
}
