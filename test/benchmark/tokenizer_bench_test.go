package benchmark

import (
	"fmt"
	"strings"
	"testing"

	"github.com/searchlite/searchlite/internal/indexer/tokenizer"
)

var sampleTexts = map[string]string{
	"short": "The quick brown fox jumps over the lazy dog",
	"medium": `Prefix trees answer membership and completion queries in time
        proportional to the word length. The inverted index maps each word to
        the documents containing it along with its occurrence count. Sparse
        vectors store only non-zero frequencies, keeping memory proportional
        to the number of documents a word actually appears in.`,
	"long": strings.Repeat(`Text search systems combine tokenization with an
        inverted index to answer word queries without scanning documents. Each
        document is split into lowercase words, counted, and recorded under a
        stable slot derived from its identifier. Autocompletion walks the
        prefix tree in lexicographic order and stops once enough suggestions
        have been collected. `, 20),
}

func BenchmarkTokenize(b *testing.B) {
	for name, text := range sampleTexts {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				tokens := tokenizer.Tokenize(text)
				_ = tokens
			}
		})
	}
}

func BenchmarkTokenizeParallel(b *testing.B) {
	text := sampleTexts["medium"]
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			tokens := tokenizer.Tokenize(text)
			_ = tokens
		}
	})
}

func BenchmarkFrequencies(b *testing.B) {
	text := sampleTexts["medium"]
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		freqs := tokenizer.Frequencies(text)
		_ = freqs
	}
}

func BenchmarkTokenizeVaryingSize(b *testing.B) {
	sizes := []int{10, 100, 500, 1000, 5000}
	baseWord := "sparse vector inverted index prefix tree "
	for _, size := range sizes {
		text := strings.Repeat(baseWord, size/len(baseWord)+1)[:size]
		b.Run(fmt.Sprintf("bytes_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				tokens := tokenizer.Tokenize(text)
				_ = tokens
			}
		})
	}
}
