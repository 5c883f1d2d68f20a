// Package index builds the all-suffixes trie that backs substring lookups.
//
// Every suffix of every word is inserted character by character, and each node
// records which words reached it. A node therefore answers "which words contain
// the substring spelled from the root to here" directly, at the cost of
// quadratic construction time and memory in the total dictionary length.
//
// An Index is built once and never mutated afterwards, so it can be shared by
// any number of concurrent readers without locking.
package index

// Index owns the ordered word list and the suffix trie built from it.
type Index struct {
	words []string
	root  *node
}

// Stats describes the shape of a built trie.
type Stats struct {
	Words    int
	Chars    int
	Nodes    int // excludes the root
	Edges    int
	Postings int // sum of all node index-set sizes
	MaxDepth int
}

// Build indexes words in the given order. Position i in words becomes word
// index i; duplicates are kept and indexed separately. The slice is copied.
func Build(words []string) *Index {
	idx := &Index{
		words: make([]string, len(words)),
		root:  &node{},
	}
	copy(idx.words, words)

	for i, w := range idx.words {
		for k := 0; k < len(w); k++ {
			current := idx.root
			for j := k; j < len(w); j++ {
				current = current.childOrCreate(w[j])
				current.add(i)
			}
		}
	}
	return idx
}

// Lookup returns the ascending indexes of all words containing sub, or nil if
// none do. The empty string matches nothing since the root keeps no indexes.
// The returned slice is a copy and may be modified by the caller.
func (idx *Index) Lookup(sub string) []int {
	current := idx.find(sub)
	if current == nil || len(current.ids) == 0 {
		return nil
	}
	ids := make([]int, len(current.ids))
	copy(ids, current.ids)
	return ids
}

// Count returns how many word indexes contain sub.
func (idx *Index) Count(sub string) int {
	if current := idx.find(sub); current != nil {
		return len(current.ids)
	}
	return 0
}

// find walks sub from the root and returns the node it ends on.
func (idx *Index) find(sub string) *node {
	current := idx.root
	for i := 0; i < len(sub); i++ {
		current = current.child(sub[i])
		if current == nil {
			return nil
		}
	}
	return current
}

// Word returns the word stored at index i.
func (idx *Index) Word(i int) string {
	return idx.words[i]
}

// Words returns a copy of the indexed words in their original order.
func (idx *Index) Words() []string {
	out := make([]string, len(idx.words))
	copy(out, idx.words)
	return out
}

// Len returns the number of indexed words, duplicates included.
func (idx *Index) Len() int {
	return len(idx.words)
}

// Stats walks the trie and reports its size.
func (idx *Index) Stats() Stats {
	s := Stats{Words: len(idx.words)}
	for _, w := range idx.words {
		s.Chars += len(w)
	}

	type frame struct {
		n     *node
		depth int
	}
	stack := []frame{{idx.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > s.MaxDepth {
			s.MaxDepth = f.depth
		}
		if f.n != idx.root {
			s.Nodes++
			s.Postings += len(f.n.ids)
		}
		s.Edges += len(f.n.edges)
		for _, e := range f.n.edges {
			stack = append(stack, frame{e.child, f.depth + 1})
		}
	}
	return s
}
