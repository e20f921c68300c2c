// Package corpus ships a small set of sample documents used to seed the
// index for demos and local development.
package corpus

import "github.com/searchlite/searchlite/internal/indexer"

// Document pairs an identifier with its content.
type Document struct {
	ID      string
	Content string
}

// Samples returns the built-in demo documents in a stable order.
func Samples() []Document {
	return []Document{
		{
			ID: "python_intro.txt",
			Content: `Python is a high-level interpreted programming language.
Python is known for its clear and readable syntax. Many developers
prefer Python for data science, web development and automation.
Python's philosophy emphasizes code readability.`,
		},
		{
			ID: "data_structures.txt",
			Content: `Data structures are fundamental in programming. Trees
are hierarchical structures. Dictionaries allow fast search.
Sparse matrices save memory by storing only non-zero values.
Python provides efficient implementations of these structures.`,
		},
		{
			ID: "algorithms.txt",
			Content: `Search algorithms are essential for retrieving information.
Binary search works on sorted data. Hash algorithms
allow constant-time search. Python includes optimized algorithms
in its standard libraries for sorting and searching.`,
		},
		{
			ID: "web_development.txt",
			Content: `Python is popular for web development. Frameworks like Django and Flask
facilitate the creation of web applications. Python allows connecting
databases, creating REST APIs and generating dynamic content.
Web development with Python is fast and efficient.`,
		},
		{
			ID: "machine_learning.txt",
			Content: `Python dominates the field of machine learning and artificial intelligence.
Libraries like TensorFlow, PyTorch and scikit-learn facilitate the development
of models. Python is the preferred language for data processing
and building neural networks. Data analysis with Python is powerful.`,
		},
	}
}

// Load indexes every sample document and returns the identifiers used.
func Load(ix *indexer.Indexer) []string {
	docs := Samples()
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, ix.AddDocument(doc.Content, doc.ID))
	}
	return ids
}
