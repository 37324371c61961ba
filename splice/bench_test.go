package splice_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/seq"
	"github.com/katalvlaran/lvlseq/splice"
)

// BenchmarkCopy_AppendSlice measures the amortized O(k) append strategy
// into a contiguous destination.
func BenchmarkCopy_AppendSlice(b *testing.B) {
	src := seq.NewSlice[int]()
	for i := 0; i < 1_000; i++ {
		src.Append(i)
	}
	first, last := src.Begin(), src.End()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst := seq.NewSlice[int]()
		if _, err := splice.Copy(first, last, splice.Append[int](dst)); err != nil {
			b.Fatalf("Copy failed: %v", err)
		}
	}
}

// BenchmarkCopy_BeforeList measures the positional strategy into a linked
// destination, where every InsertBefore is O(1).
func BenchmarkCopy_BeforeList(b *testing.B) {
	src := seq.NewSlice[int]()
	for i := 0; i < 1_000; i++ {
		src.Append(i)
	}
	first, last := src.Begin(), src.End()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst := seq.ListOf(-1, -2)
		at, err := dst.Begin().Step()
		if err != nil {
			b.Fatalf("Step failed: %v", err)
		}
		if _, err = splice.Copy(first, last, splice.Before[int](dst, at)); err != nil {
			b.Fatalf("Copy failed: %v", err)
		}
	}
}
