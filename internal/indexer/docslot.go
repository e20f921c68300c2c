package indexer

import (
	farmhash "github.com/leemcloughlin/gofarmhash"
)

// slotModulus fixes the size of the numeric document-address space used by
// the per-word sparse vectors.
const slotModulus = 10000

// docSlot derives the numeric slot for a document identifier. FarmHash with
// a fixed seed keeps the mapping stable across runs. Distinct identifiers
// may collide; the indexer logs collisions but keeps the overwrite
// semantics.
func docSlot(docID string) int {
	return int(farmhash.Hash32WithSeed([]byte(docID), 0)) % slotModulus
}
