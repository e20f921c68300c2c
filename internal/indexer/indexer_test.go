package indexer

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/searchlite/searchlite/internal/index"
)

func TestAddDocumentEndToEnd(t *testing.T) {
	ix := New()
	id := ix.AddDocument("Cats and dogs. Cats sleep.", "d1")
	if id != "d1" {
		t.Fatalf("AddDocument returned %q, want \"d1\"", id)
	}

	if got, want := ix.SearchExact("cats"), (index.PostingList{{DocID: "d1", Frequency: 2}}); !reflect.DeepEqual(got, want) {
		t.Errorf("SearchExact(\"cats\") = %v, want %v", got, want)
	}
	if got, want := ix.SearchExact("dogs"), (index.PostingList{{DocID: "d1", Frequency: 1}}); !reflect.DeepEqual(got, want) {
		t.Errorf("SearchExact(\"dogs\") = %v, want %v", got, want)
	}
	if got, want := ix.Autocomplete("ca", 10), []string{"cats"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Autocomplete(\"ca\", 10) = %v, want %v", got, want)
	}

	stats := ix.Statistics()
	if stats.DocumentCount != 1 {
		t.Errorf("DocumentCount = %d, want 1", stats.DocumentCount)
	}
	if stats.UniqueWordCount != 4 {
		t.Errorf("UniqueWordCount = %d, want 4 (cats, and, dogs, sleep)", stats.UniqueWordCount)
	}
	if stats.VectorCount != 4 {
		t.Errorf("VectorCount = %d, want 4", stats.VectorCount)
	}
	if stats.AvgVectorDensity != 1 {
		t.Errorf("AvgVectorDensity = %f, want 1", stats.AvgVectorDensity)
	}
}

func TestGeneratedIdentifiers(t *testing.T) {
	ix := New()

	first := ix.AddDocument("alpha", "")
	if first != "doc_0" {
		t.Errorf("first generated id = %q, want \"doc_0\"", first)
	}

	// The counter advances even when the caller supplies an identifier.
	ix.AddDocument("beta", "named")
	third := ix.AddDocument("gamma", "")
	if third != "doc_2" {
		t.Errorf("third id = %q, want \"doc_2\"", third)
	}

	want := []string{"doc_0", "named", "doc_2"}
	if got := ix.Documents(); !reflect.DeepEqual(got, want) {
		t.Errorf("Documents() = %v, want %v", got, want)
	}
}

func TestSearchUnknownWord(t *testing.T) {
	ix := New()
	ix.AddDocument("some plain content", "d1")

	if got := ix.SearchExact("javascript"); got != nil {
		t.Errorf("SearchExact for unindexed word = %v, want nil", got)
	}
	// Prefix of an indexed word is still not a word.
	if got := ix.SearchExact("plai"); got != nil {
		t.Errorf("SearchExact(\"plai\") = %v, want nil", got)
	}
}

func TestCaseFolding(t *testing.T) {
	ix := New()
	ix.AddDocument("Python PYTHON python", "d1")

	got := ix.SearchExact("PyThOn")
	want := index.PostingList{{DocID: "d1", Frequency: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchExact(\"PyThOn\") = %v, want %v", got, want)
	}
	if stats := ix.Statistics(); stats.UniqueWordCount != 1 {
		t.Errorf("UniqueWordCount = %d, want 1", stats.UniqueWordCount)
	}
}

func TestDocumentIsolation(t *testing.T) {
	ix := New()
	ix.AddDocument("apples oranges", "fruit")
	ix.AddDocument("hammers wrenches", "tools")

	vec := ix.WordVector("apples")
	if vec.Len() != 1 {
		t.Errorf("vector for word unique to one document has %d entries, want 1", vec.Len())
	}
	if got := ix.SearchExact("hammers"); len(got) != 1 || got[0].DocID != "tools" {
		t.Errorf("SearchExact(\"hammers\") = %v, want single posting for \"tools\"", got)
	}
}

func TestPostingOrderAcrossDocuments(t *testing.T) {
	ix := New()
	ix.AddDocument("shared word", "first")
	ix.AddDocument("shared again shared", "second")
	ix.AddDocument("shared", "third")

	got := ix.SearchExact("shared")
	want := index.PostingList{
		{DocID: "first", Frequency: 1},
		{DocID: "second", Frequency: 2},
		{DocID: "third", Frequency: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("postings = %v, want insertion order %v", got, want)
	}
}

func TestWordVectorCopyIsIndependent(t *testing.T) {
	ix := New()
	ix.AddDocument("solo", "d1")

	vec := ix.WordVector("solo")
	entries := vec.Items()
	if len(entries) != 1 {
		t.Fatalf("vector entries = %v, want exactly one", entries)
	}
	vec.Set(entries[0].Index, 0)

	if again := ix.WordVector("solo"); again.Len() != 1 {
		t.Error("mutating a returned vector corrupted the index")
	}
}

func TestWordVectorUnknownWord(t *testing.T) {
	ix := New()
	if got := ix.WordVector("nothing"); got.Len() != 0 {
		t.Errorf("WordVector for unknown word has %d entries, want empty", got.Len())
	}
}

func TestDocumentStore(t *testing.T) {
	ix := New()
	ix.AddDocument("the content", "d1")

	if got := ix.Document("d1"); got != "the content" {
		t.Errorf("Document(\"d1\") = %q", got)
	}
	if got := ix.Document("missing"); got != "" {
		t.Errorf("Document(\"missing\") = %q, want empty", got)
	}
	if !ix.HasDocument("d1") || ix.HasDocument("missing") {
		t.Error("HasDocument answers are wrong")
	}
}

func TestEntriesSortedByTerm(t *testing.T) {
	ix := New()
	ix.AddDocument("zebra apple", "d1")

	entries := ix.Entries()
	if len(entries) != 2 || entries[0].Term != "apple" || entries[1].Term != "zebra" {
		t.Errorf("Entries() = %v, want terms sorted", entries)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	ix := New()
	stats := ix.Statistics()
	if stats.DocumentCount != 0 || stats.UniqueWordCount != 0 || stats.AvgVectorDensity != 0 {
		t.Errorf("empty index statistics = %+v, want zeros", stats)
	}
}

func TestDocSlotStable(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("doc_%d", i)
		slot := docSlot(id)
		if slot < 0 || slot >= slotModulus {
			t.Fatalf("docSlot(%q) = %d, outside [0, %d)", id, slot, slotModulus)
		}
		if again := docSlot(id); again != slot {
			t.Fatalf("docSlot(%q) changed between calls: %d then %d", id, slot, again)
		}
	}
}
