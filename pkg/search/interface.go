// Package search answers substring queries against a built suffix index.
package search

// Searcher defines what front-ends need from a substring search engine.
type Searcher interface {
	// Search returns every word containing sub, in dictionary order
	Search(sub string) []string

	// SearchLimit returns at most limit matches plus the total match count
	SearchLimit(sub string, limit int) ([]string, int)

	// Matches is SearchLimit with the position of sub inside each word
	Matches(sub string, limit int) ([]Match, int)

	// Count returns the number of matches without materializing them
	Count(sub string) int

	// Stats returns statistics about the index and cache
	Stats() map[string]int
}

// Match is one search hit. Start and End delimit the first occurrence of the
// query in Word, as byte offsets.
type Match struct {
	Index int
	Word  string
	Start int
	End   int
}
