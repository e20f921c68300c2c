// Command console is an interactive terminal client for the index. It loads
// the sample corpus and drives the core API directly, without the HTTP
// server.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/searchlite/searchlite/internal/corpus"
	"github.com/searchlite/searchlite/internal/indexer"
	"github.com/searchlite/searchlite/pkg/logger"
)

const autocompleteLimit = 10

func main() {
	logger.Setup("warn", "text")

	ix := indexer.New()
	fmt.Println("Loading sample documents...")
	fmt.Println()
	for _, id := range corpus.Load(ix) {
		fmt.Printf("| %s\n", id)
	}
	fmt.Println()

	runMenu(ix, bufio.NewScanner(os.Stdin))
}

func runMenu(ix *indexer.Indexer, scanner *bufio.Scanner) {
	for {
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println("MINI TEXT SEARCHER")
		fmt.Println("1. Search exact word")
		fmt.Println("2. Autocomplete (prefix)")
		fmt.Println("3. View statistics")
		fmt.Println("4. View word sparse vector")
		fmt.Println("5. List documents")
		fmt.Println("6. Exit")
		fmt.Println(strings.Repeat("=", 50))

		choice := prompt(scanner, "Select an option: ")
		fmt.Println()

		switch choice {
		case "1":
			word := prompt(scanner, "Enter word to search: ")
			displaySearchResults(ix, word)
		case "2":
			prefix := prompt(scanner, "Enter prefix: ")
			displayAutocomplete(prefix, ix.Autocomplete(prefix, autocompleteLimit))
		case "3":
			displayStatistics(ix.Statistics())
		case "4":
			word := prompt(scanner, "Enter word: ")
			displayVector(ix, word)
		case "5":
			fmt.Println("Documents in index:")
			fmt.Println()
			for i, docID := range ix.Documents() {
				fmt.Printf("  %d. %s\n", i+1, docID)
			}
			fmt.Println()
		case "6":
			return
		default:
			fmt.Println("Invalid option. Try again.")
			fmt.Println()
		}
	}
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(scanner.Text())
}

func displaySearchResults(ix *indexer.Indexer, word string) {
	results := ix.SearchExact(word)
	if len(results) == 0 {
		fmt.Printf("Word %q not found.\n\n", word)
		return
	}

	fmt.Printf("%q found in %d document(s):\n\n", word, len(results))
	for _, posting := range results {
		fmt.Printf(" [ ] %s\n", posting.DocID)
		fmt.Printf("     Occurrences: %d\n", posting.Frequency)
		fmt.Printf("     Preview: %s\n", snippet(ix.Document(posting.DocID)))
		fmt.Println()
	}
}

func snippet(content string) string {
	firstLine, _, _ := strings.Cut(strings.TrimSpace(content), "\n")
	firstLine = strings.TrimSpace(firstLine)
	if len(firstLine) > 80 {
		return firstLine[:80] + "..."
	}
	return firstLine
}

func displayAutocomplete(prefix string, suggestions []string) {
	if len(suggestions) == 0 {
		fmt.Printf("No words starting with %q.\n\n", prefix)
		return
	}
	fmt.Printf("Suggestions for %q:\n\n", prefix)
	for i, word := range suggestions {
		fmt.Printf("  %d. %s\n", i+1, word)
	}
	fmt.Println()
}

func displayStatistics(stats indexer.Statistics) {
	fmt.Println("Index Statistics:")
	fmt.Println()
	fmt.Printf("  Indexed documents: %d\n", stats.DocumentCount)
	fmt.Printf("  Unique words: %d\n", stats.UniqueWordCount)
	fmt.Printf("  Sparse vectors: %d\n", stats.VectorCount)
	fmt.Printf("  Average density: %.2f docs/word\n", stats.AvgVectorDensity)
	fmt.Println()
}

func displayVector(ix *indexer.Indexer, word string) {
	vec := ix.WordVector(word)
	fmt.Printf("Sparse vector for %q:\n\n", word)
	if vec.Len() == 0 {
		fmt.Println("  Empty vector (word not found)")
	} else {
		fmt.Printf("  Non-zero elements: %d\n", vec.Len())
		parts := make([]string, 0, vec.Len())
		for _, entry := range vec.Items() {
			parts = append(parts, fmt.Sprintf("%d: %d", entry.Index, entry.Value))
		}
		fmt.Printf("  Data: {%s}\n", strings.Join(parts, ", "))
	}
	fmt.Println()
}
