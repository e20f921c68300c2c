// Package indexer ties the three core structures together: the trie for
// vocabulary membership and autocompletion, the inverted index for postings,
// and one sparse vector per word keyed by document slot. All three are
// updated together under a single write lock, so a word is in the trie iff
// it has postings iff it has a non-empty vector.
package indexer

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/searchlite/searchlite/internal/index"
	"github.com/searchlite/searchlite/internal/index/sparse"
	"github.com/searchlite/searchlite/internal/index/trie"
	"github.com/searchlite/searchlite/internal/indexer/tokenizer"
)

// Statistics summarises the state of the index.
type Statistics struct {
	DocumentCount    int     `json:"document_count"`
	UniqueWordCount  int     `json:"unique_word_count"`
	VectorCount      int     `json:"vector_count"`
	AvgVectorDensity float64 `json:"avg_vector_density"`
}

// Indexer is the in-memory document index. A single writer lock serialises
// document adds; queries take the read lock.
type Indexer struct {
	mu          sync.RWMutex
	trie        *trie.Trie
	postings    map[string]index.PostingList
	vectors     map[string]*sparse.Vector
	documents   map[string]string
	docOrder    []string
	slots       map[int]string
	docCounter  int
	onCollision func(slot int, docID, previousID string)
	logger      *slog.Logger
}

// SetCollisionHook installs a callback fired whenever two distinct documents
// hash to the same vector slot. Must be called before any AddDocument.
func (ix *Indexer) SetCollisionHook(fn func(slot int, docID, previousID string)) {
	ix.onCollision = fn
}

// New creates an empty Indexer.
func New() *Indexer {
	return &Indexer{
		trie:      trie.New(),
		postings:  make(map[string]index.PostingList),
		vectors:   make(map[string]*sparse.Vector),
		documents: make(map[string]string),
		slots:     make(map[int]string),
		logger:    slog.Default().With("component", "indexer"),
	}
}

// AddDocument tokenizes content and records every distinct word in the trie,
// the inverted index, and the word's sparse vector at the document's slot.
// An empty docID gets a generated doc_<n> identifier; the counter advances
// on every call either way. Re-using an identifier silently overwrites the
// stored content and appends fresh postings. The identifier used is
// returned.
func (ix *Indexer) AddDocument(content, docID string) string {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if docID == "" {
		docID = fmt.Sprintf("doc_%d", ix.docCounter)
	}
	ix.docCounter++

	if _, exists := ix.documents[docID]; !exists {
		ix.docOrder = append(ix.docOrder, docID)
	}
	ix.documents[docID] = content

	slot := docSlot(docID)
	if prev, taken := ix.slots[slot]; taken && prev != docID {
		ix.logger.Warn("document slot collision, vector entries will overwrite",
			"slot", slot,
			"doc_id", docID,
			"previous_doc_id", prev,
		)
		if ix.onCollision != nil {
			ix.onCollision(slot, docID, prev)
		}
	}
	ix.slots[slot] = docID

	freqs := tokenizer.Frequencies(content)
	for word, freq := range freqs {
		ix.trie.Insert(word)
		ix.postings[word] = append(ix.postings[word], index.Posting{
			DocID:     docID,
			Frequency: freq,
		})
		vec, ok := ix.vectors[word]
		if !ok {
			vec = sparse.New()
			ix.vectors[word] = vec
		}
		vec.Set(slot, freq)
	}

	ix.logger.Debug("document indexed",
		"doc_id", docID,
		"slot", slot,
		"distinct_words", len(freqs),
	)
	return docID
}

// SearchExact returns the posting list for a word in document-insertion
// order, or nil when the word was never indexed. The trie is consulted
// first; the inverted index is only touched for known words.
func (ix *Indexer) SearchExact(word string) index.PostingList {
	word = strings.ToLower(word)
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if !ix.trie.Search(word) {
		return nil
	}
	return ix.postings[word].Clone()
}

// Autocomplete returns up to max indexed words beginning with prefix, in
// lexicographic order.
func (ix *Indexer) Autocomplete(prefix string, max int) []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.trie.Autocomplete(prefix, max)
}

// WordVector returns a copy of the word's frequency vector over the document
// slot space, or an empty vector for unknown words. Mutating the returned
// vector never affects the index.
func (ix *Indexer) WordVector(word string) *sparse.Vector {
	word = strings.ToLower(word)
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	vec, ok := ix.vectors[word]
	if !ok {
		return sparse.New()
	}
	return vec.Clone()
}

// Document returns the stored content for docID, or "" when unknown.
func (ix *Indexer) Document(docID string) string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.documents[docID]
}

// HasDocument reports whether docID is known.
func (ix *Indexer) HasDocument(docID string) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	_, ok := ix.documents[docID]
	return ok
}

// Documents returns all document identifiers in insertion order.
func (ix *Indexer) Documents() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]string, len(ix.docOrder))
	copy(out, ix.docOrder)
	return out
}

// Entries enumerates the whole inverted index, terms sorted, postings in
// insertion order.
func (ix *Indexer) Entries() []index.TermEntry {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	entries := make([]index.TermEntry, 0, len(ix.postings))
	for term, pl := range ix.postings {
		entries = append(entries, index.TermEntry{
			Term:     term,
			Postings: pl.Clone(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Term < entries[j].Term
	})
	return entries
}

// Statistics returns document, word, and vector counts plus the average
// number of non-zero entries per vector (0 when nothing is indexed).
func (ix *Indexer) Statistics() Statistics {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	stats := Statistics{
		DocumentCount:   len(ix.documents),
		UniqueWordCount: len(ix.postings),
		VectorCount:     len(ix.vectors),
	}
	if stats.VectorCount > 0 {
		nonZero := 0
		for _, vec := range ix.vectors {
			nonZero += vec.Len()
		}
		stats.AvgVectorDensity = float64(nonZero) / float64(stats.VectorCount)
	}
	return stats
}
