// Package index defines the posting types shared by the inverted index and
// its consumers.
package index

// Posting records one occurrence of a word in a document: the document's
// identifier and how many times the word appears in it.
type Posting struct {
	DocID     string `json:"document_id"`
	Frequency int    `json:"frequency"`
}

// PostingList is the ordered postings of a single word, in the order the
// documents were added. Entries are never merged: adding two documents under
// the same identifier appends two postings.
type PostingList []Posting

// Clone returns an independent copy of the list.
func (pl PostingList) Clone() PostingList {
	if pl == nil {
		return nil
	}
	out := make(PostingList, len(pl))
	copy(out, pl)
	return out
}

// TermEntry pairs a word with its postings, used when enumerating the whole
// index.
type TermEntry struct {
	Term     string      `json:"term"`
	Postings PostingList `json:"postings"`
}
