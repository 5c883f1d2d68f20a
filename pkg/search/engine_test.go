package search

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/bastiangx/wordfind/pkg/index"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newEngine(words []string, opts ...Option) *Engine {
	return New(index.Build(words), opts...)
}

func TestSearch(t *testing.T) {
	testCases := []struct {
		description string
		words       []string
		query       string
		expected    []string
	}{
		{"Both duplicates in order", []string{"wand", "award", "wand"}, "wand", []string{"wand", "wand"}},
		{"Single full word", []string{"wand", "award", "wand"}, "award", []string{"award"}},
		{"Infix match", []string{"squire", "square", "acquire"}, "qui", []string{"squire", "acquire"}},
		{"Prefix match", []string{"squire", "square", "acquire"}, "squ", []string{"squire", "square"}},
		{"No match", []string{"squire", "square", "acquire"}, "xyz", nil},
		{"Single character", []string{"a", "b"}, "a", []string{"a"}},
		{"Empty query", []string{"a", "b"}, "", nil},
		{"Empty dictionary", nil, "a", nil},
	}

	for _, tc := range testCases {
		for _, cached := range []bool{false, true} {
			name := tc.description
			if cached {
				name += " (cached)"
			}
			t.Run(name, func(t *testing.T) {
				var e *Engine
				if cached {
					e = newEngine(tc.words, WithCache(8))
				} else {
					e = newEngine(tc.words)
				}
				got := e.Search(tc.query)
				if !reflect.DeepEqual(got, tc.expected) {
					t.Errorf("Search(%q): expected %v, got %v", tc.query, tc.expected, got)
				}
				if n := e.Count(tc.query); n != len(tc.expected) {
					t.Errorf("Count(%q): expected %d, got %d", tc.query, len(tc.expected), n)
				}
			})
		}
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	e := newEngine([]string{"squire", "square", "acquire"}, WithCache(4))
	first := e.Search("re")
	for i := 0; i < 5; i++ {
		if got := e.Search("re"); !reflect.DeepEqual(got, first) {
			t.Fatalf("call %d: expected %v, got %v", i, first, got)
		}
	}
}

func TestSearchResultsAreIndependent(t *testing.T) {
	e := newEngine([]string{"squire", "square"}, WithCache(4))
	got := e.Search("squ")
	got[0] = "mutated"
	if again := e.Search("squ"); again[0] != "squire" {
		t.Errorf("cached result was mutated through a previous return value: %v", again)
	}
}

func TestSearchLimit(t *testing.T) {
	e := newEngine([]string{"aa", "ab", "ba", "bb", "ca"})

	words, total := e.SearchLimit("a", 2)
	if total != 4 {
		t.Errorf("expected total 4, got %d", total)
	}
	if !reflect.DeepEqual(words, []string{"aa", "ab"}) {
		t.Errorf("expected first two matches, got %v", words)
	}

	words, total = e.SearchLimit("a", 0)
	if total != 4 || len(words) != 4 {
		t.Errorf("limit 0 should return all: got %v (%d)", words, total)
	}

	words, total = e.SearchLimit("a", 10)
	if total != 4 || len(words) != 4 {
		t.Errorf("limit above total should return all: got %v (%d)", words, total)
	}
}

func TestMatches(t *testing.T) {
	e := newEngine([]string{"squire", "square", "acquire", "quiquí"})
	matches, total := e.Matches("qui", 0)
	expected := []Match{
		{Index: 0, Word: "squire", Start: 1, End: 4},
		{Index: 2, Word: "acquire", Start: 2, End: 5},
		{Index: 3, Word: "quiquí", Start: 0, End: 3},
	}
	if total != len(expected) {
		t.Fatalf("expected %d matches, got %d", len(expected), total)
	}
	if !reflect.DeepEqual(matches, expected) {
		t.Errorf("expected %+v, got %+v", expected, matches)
	}
	for _, m := range matches {
		if m.Word[m.Start:m.End] != "qui" {
			t.Errorf("span [%d,%d) of %q does not hold the query", m.Start, m.End, m.Word)
		}
	}
}

func TestRandomAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := "xyz"
	randWord := func(maxLen int) string {
		var sb strings.Builder
		for i, n := 0, rng.Intn(maxLen+1); i < n; i++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		return sb.String()
	}

	for round := 0; round < 30; round++ {
		words := make([]string, rng.Intn(30))
		for i := range words {
			words[i] = randWord(7)
		}
		e := newEngine(words, WithCache(16))

		for q := 0; q < 50; q++ {
			sub := randWord(3)
			var expected []string
			if sub != "" {
				for _, w := range words {
					if strings.Contains(w, sub) {
						expected = append(expected, w)
					}
				}
			}
			if got := e.Search(sub); !reflect.DeepEqual(got, expected) {
				t.Fatalf("round %d: Search(%q) on %v: expected %v, got %v", round, sub, words, expected, got)
			}
		}
	}
}

func TestConcurrentSearch(t *testing.T) {
	words := make([]string, 500)
	for i := range words {
		words[i] = fmt.Sprintf("item%03d", i)
	}
	e := newEngine(words, WithCache(4))
	queries := []string{"item", "00", "1", "99", "m4", "zz"}
	expected := make(map[string][]string)
	for _, q := range queries {
		expected[q] = newEngine(words).Search(q)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				q := queries[(worker+i)%len(queries)]
				if got := e.Search(q); !reflect.DeepEqual(got, expected[q]) {
					t.Errorf("worker %d: Search(%q) mismatch", worker, q)
					return
				}
			}
		}(w)
	}
	wg.Wait()
}

func TestStats(t *testing.T) {
	e := newEngine([]string{"ab"}, WithCache(2))
	e.Search("a")
	e.Search("a")
	stats := e.Stats()
	if stats["words"] != 1 || stats["nodes"] != 3 {
		t.Errorf("unexpected index stats: %v", stats)
	}
	if stats["cacheHits"] != 1 || stats["cacheMisses"] != 1 || stats["cacheEntries"] != 1 {
		t.Errorf("unexpected cache stats: %v", stats)
	}

	if _, ok := newEngine([]string{"ab"}).Stats()["cacheHits"]; ok {
		t.Errorf("engine without cache should not report cache stats")
	}
}
