// Package trie implements the character-level prefix tree that backs
// vocabulary membership tests and autocompletion. Lookups and inserts run in
// O(m) for a word of length m.
package trie

import (
	"sort"
	"strings"
)

type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a prefix tree over lowercase words. It only ever grows; there is
// no delete operation.
type Trie struct {
	root  *node
	words int
}

// New creates an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds a word to the trie, folding it to lowercase first. Inserting
// the same word twice is a no-op beyond the first insertion.
func (t *Trie) Insert(word string) {
	n := t.root
	for _, r := range strings.ToLower(word) {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		t.words++
	}
}

// Search reports whether the complete word was inserted. Words that only
// exist as prefixes of other words are not matches.
func (t *Trie) Search(word string) bool {
	n := t.walk(word)
	return n != nil && n.terminal
}

// StartsWith reports whether any inserted word begins with prefix. The empty
// prefix always matches.
func (t *Trie) StartsWith(prefix string) bool {
	return t.walk(prefix) != nil
}

// Autocomplete returns up to max words beginning with prefix, in
// lexicographic order. The prefix itself is included when it is a complete
// word. A missing prefix or non-positive max yields an empty result.
func (t *Trie) Autocomplete(prefix string, max int) []string {
	if max <= 0 {
		return nil
	}
	prefix = strings.ToLower(prefix)
	n := t.walk(prefix)
	if n == nil {
		return nil
	}
	results := make([]string, 0, max)
	collect(n, prefix, max, &results)
	return results
}

// Words returns every inserted word in lexicographic order.
func (t *Trie) Words() []string {
	results := make([]string, 0, t.words)
	collect(t.root, "", t.words, &results)
	return results
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	return t.words
}

// walk follows the case-folded path for s and returns the final node, or nil
// if the path does not exist.
func (t *Trie) walk(s string) *node {
	n := t.root
	for _, r := range strings.ToLower(s) {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// collect performs a depth-first traversal below n, visiting children in
// ascending rune order so results come out sorted. Recursion depth is
// bounded by the longest inserted word.
func collect(n *node, word string, max int, results *[]string) {
	if len(*results) >= max {
		return
	}
	if n.terminal {
		*results = append(*results, word)
	}
	if len(n.children) == 0 {
		return
	}
	runes := make([]rune, 0, len(n.children))
	for r := range n.children {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	for _, r := range runes {
		collect(n.children[r], word+string(r), max, results)
		if len(*results) >= max {
			return
		}
	}
}
