// Package benchmark contains Go benchmarks for the indexer, trie, sparse
// vector, and tokenizer, measuring throughput and allocation behaviour.
package benchmark

import (
	"fmt"
	"testing"

	"github.com/searchlite/searchlite/internal/index/sparse"
	"github.com/searchlite/searchlite/internal/index/trie"
	"github.com/searchlite/searchlite/internal/indexer"
)

// BenchmarkIndexerAdd measures per-document insert throughput.
func BenchmarkIndexerAdd(b *testing.B) {
	ix := indexer.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		docID := fmt.Sprintf("doc-%d", i)
		ix.AddDocument("this is a benchmark document with several words for measuring the indexing throughput of the inverted index", docID)
	}
}

// BenchmarkIndexerSearch measures exact-word lookup latency over 10 000
// documents.
func BenchmarkIndexerSearch(b *testing.B) {
	ix := indexer.New()
	for i := 0; i < 10000; i++ {
		docID := fmt.Sprintf("doc-%d", i)
		ix.AddDocument("search engine with prefix trees and sparse frequency vectors", docID)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		results := ix.SearchExact("search")
		_ = results
	}
}

// BenchmarkIndexerSearchParallel measures concurrent read throughput.
func BenchmarkIndexerSearchParallel(b *testing.B) {
	ix := indexer.New()
	for i := 0; i < 10000; i++ {
		docID := fmt.Sprintf("doc-%d", i)
		ix.AddDocument("search engine with prefix trees and sparse frequency vectors", docID)
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			results := ix.SearchExact("search")
			_ = results
		}
	})
}

// BenchmarkIndexerAutocomplete measures prefix-completion latency at various
// vocabulary sizes.
func BenchmarkIndexerAutocomplete(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("vocab_%d", size), func(b *testing.B) {
			ix := indexer.New()
			for i := 0; i < size; i++ {
				ix.AddDocument(fmt.Sprintf("term%06d", i), "")
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				suggestions := ix.Autocomplete("term", 10)
				_ = suggestions
			}
		})
	}
}

// BenchmarkTrieInsert measures single-word insert cost.
func BenchmarkTrieInsert(b *testing.B) {
	tr := trie.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Insert(fmt.Sprintf("word%d", i))
	}
}

// BenchmarkTrieSearch measures exact membership lookup over a 10 000 word
// vocabulary.
func BenchmarkTrieSearch(b *testing.B) {
	tr := trie.New()
	for i := 0; i < 10000; i++ {
		tr.Insert(fmt.Sprintf("word%05d", i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		found := tr.Search("word05000")
		_ = found
	}
}

// BenchmarkSparseVectorSet measures skiplist insert cost across slot values.
func BenchmarkSparseVectorSet(b *testing.B) {
	vec := sparse.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vec.Set(i%10000, i+1)
	}
}

// BenchmarkSparseVectorItems measures ordered iteration over a dense vector.
func BenchmarkSparseVectorItems(b *testing.B) {
	vec := sparse.New()
	for i := 0; i < 5000; i++ {
		vec.Set(i*2, i+1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		items := vec.Items()
		_ = items
	}
}
