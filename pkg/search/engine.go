package search

import (
	"strings"

	"github.com/bastiangx/wordfind/pkg/index"
)

// Engine resolves queries against one immutable index. It is safe for
// concurrent use.
type Engine struct {
	idx   *index.Index
	cache *Cache
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache enables a query cache holding up to size entries.
// A size of zero or less leaves caching off.
func WithCache(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.cache = NewCache(size)
		}
	}
}

var _ Searcher = (*Engine)(nil)

// New wraps a built index.
func New(idx *index.Index, opts ...Option) *Engine {
	e := &Engine{idx: idx}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// lookup returns the ascending word indexes for sub. The result must not be
// modified since it may be shared through the cache.
func (e *Engine) lookup(sub string) []int {
	if sub == "" {
		return nil
	}
	if e.cache != nil {
		if ids, ok := e.cache.Get(sub); ok {
			return ids
		}
	}
	ids := e.idx.Lookup(sub)
	if e.cache != nil {
		e.cache.Put(sub, ids)
	}
	return ids
}

// Search returns all words containing sub in original dictionary order.
// An empty or absent substring yields no results.
func (e *Engine) Search(sub string) []string {
	words, _ := e.SearchLimit(sub, 0)
	return words
}

// SearchLimit returns the first limit matches and the total number of
// matches. A limit of zero or less returns every match.
func (e *Engine) SearchLimit(sub string, limit int) ([]string, int) {
	ids := e.lookup(sub)
	total := len(ids)
	if total == 0 {
		return nil, 0
	}
	if limit > 0 && limit < total {
		ids = ids[:limit]
	}

	words := make([]string, len(ids))
	for i, id := range ids {
		words[i] = e.idx.Word(id)
	}
	return words, total
}

// Matches is like SearchLimit but also locates sub inside every word.
func (e *Engine) Matches(sub string, limit int) ([]Match, int) {
	ids := e.lookup(sub)
	total := len(ids)
	if total == 0 {
		return nil, 0
	}
	if limit > 0 && limit < total {
		ids = ids[:limit]
	}

	matches := make([]Match, len(ids))
	for i, id := range ids {
		word := e.idx.Word(id)
		start := strings.Index(word, sub)
		matches[i] = Match{
			Index: id,
			Word:  word,
			Start: start,
			End:   start + len(sub),
		}
	}
	return matches, total
}

// Count returns the number of words containing sub.
func (e *Engine) Count(sub string) int {
	if sub == "" {
		return 0
	}
	return e.idx.Count(sub)
}

// Index returns the underlying index.
func (e *Engine) Index() *index.Index {
	return e.idx
}

// Stats merges index shape and cache counters.
func (e *Engine) Stats() map[string]int {
	s := e.idx.Stats()
	stats := map[string]int{
		"words":    s.Words,
		"chars":    s.Chars,
		"nodes":    s.Nodes,
		"edges":    s.Edges,
		"postings": s.Postings,
		"maxDepth": s.MaxDepth,
	}
	if e.cache != nil {
		for k, v := range e.cache.Stats() {
			stats[k] = v
		}
	}
	return stats
}
