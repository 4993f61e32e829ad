package Trees

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares BinarySearchTree with https://github.com/google/btree and
// https://github.com/petar/GoLLRB, both balanced, and with the hash maps
// https://github.com/cornelk/hashmap and https://github.com/alphadose/haxmap
// for lookups. A random insertion order keeps the unbalanced tree at
// O(log n) expected height.
const benchmarkItemCount = 1 << 12

var benchPerm = rand.New(rand.NewSource(1)).Perm(benchmarkItemCount)

func BenchmarkInsertBinarySearchTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tr := NewBinarySearchTree[int]()
		for _, v := range benchPerm {
			tr.Add(v)
		}
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tr := btree.NewOrderedG[int](32)
		for _, v := range benchPerm {
			tr.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tr := llrb.New()
		for _, v := range benchPerm {
			tr.InsertNoReplace(llrb.Int(v))
		}
	}
}

func setupBinarySearchTree(b *testing.B) *BinarySearchTree[int] {
	b.Helper()
	tr := NewBinarySearchTree[int]()
	for _, v := range benchPerm {
		tr.Add(v)
	}
	return tr
}

func BenchmarkHasBinarySearchTree(b *testing.B) {
	tr := setupBinarySearchTree(b)
	b.Log(tr.Level())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < benchmarkItemCount; j++ {
			if !tr.Has(j) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasBTree(b *testing.B) {
	tr := btree.NewOrderedG[int](32)
	for _, v := range benchPerm {
		tr.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < benchmarkItemCount; j++ {
			if !tr.Has(j) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasLLRB(b *testing.B) {
	tr := llrb.New()
	for _, v := range benchPerm {
		tr.InsertNoReplace(llrb.Int(v))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < benchmarkItemCount; j++ {
			if !tr.Has(llrb.Int(j)) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasHashMap(b *testing.B) {
	m := hashmap.New[int, struct{}]()
	for _, v := range benchPerm {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < benchmarkItemCount; j++ {
			if _, ok := m.Get(j); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasHaxMap(b *testing.B) {
	m := haxmap.New[int, struct{}]()
	for _, v := range benchPerm {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < benchmarkItemCount; j++ {
			if _, ok := m.Get(j); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkTraversals(b *testing.B) {
	tr := setupBinarySearchTree(b)
	r, _ := tr.Root()
	for _, tv := range []Traversal{PreOrder, InOrder, PostOrder, BreadthFirst} {
		b.Run(tv.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tr.Subtree(r, tv)
			}
		})
	}
}

func BenchmarkRemoveBinarySearchTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tr := setupBinarySearchTree(b)
		b.StartTimer()
		for _, v := range benchPerm {
			tr.Remove(v)
		}
	}
}
