// Package sparse provides the sparse integer vector used to record one
// word's frequency across the numeric document-slot space. Only non-zero
// entries are stored; the backing skip list keeps them ordered by index so
// iteration needs no sort.
package sparse

import "github.com/huandu/skiplist"

// Entry is one non-zero (index, value) pair of a Vector.
type Entry struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

// Vector is a sparse mapping from non-negative integer index to non-zero
// value. The zero value of Vector is not usable; call New.
type Vector struct {
	list *skiplist.SkipList
}

// New creates an empty Vector.
func New() *Vector {
	return &Vector{list: skiplist.New(skiplist.Int)}
}

// Set stores value at index. Setting zero removes the entry, keeping the
// structure sparse.
func (v *Vector) Set(index, value int) {
	if value == 0 {
		v.list.Remove(index)
		return
	}
	v.list.Set(index, value)
}

// Get returns the value at index, or 0 when no entry exists.
func (v *Vector) Get(index int) int {
	value, ok := v.list.GetValue(index)
	if !ok {
		return 0
	}
	return value.(int)
}

// Increment adds one to the value at index.
func (v *Vector) Increment(index int) {
	v.Set(index, v.Get(index)+1)
}

// Items returns all non-zero entries in ascending index order.
func (v *Vector) Items() []Entry {
	entries := make([]Entry, 0, v.list.Len())
	for elem := v.list.Front(); elem != nil; elem = elem.Next() {
		entries = append(entries, Entry{
			Index: elem.Key().(int),
			Value: elem.Value.(int),
		})
	}
	return entries
}

// Len returns the number of non-zero entries.
func (v *Vector) Len() int {
	return v.list.Len()
}

// Clone returns an independent copy. Mutating the clone never affects the
// original.
func (v *Vector) Clone() *Vector {
	c := New()
	for elem := v.list.Front(); elem != nil; elem = elem.Next() {
		c.list.Set(elem.Key(), elem.Value)
	}
	return c
}
