// Package index implements the thread-safe inverted index that maps tokens
// to the articles they appear in.
package index

import (
	"sort"
	"sync"
)

// Article identifies a single news article by its (title, url) pair.
// Two articles are equal only if both fields match; articles are otherwise
// immutable once constructed.
type Article struct {
	Title string
	URL   string
}

// less orders articles lexicographically by (title, url), used only to
// break ties between postings that carry the same count.
func (a Article) less(other Article) bool {
	if a.Title != other.Title {
		return a.Title < other.Title
	}
	return a.URL < other.URL
}

// Posting pairs an article with the number of times a queried token
// occurred within it.
type Posting struct {
	Article Article
	Count   int
}

// Index is a thread-safe inverted index from token to the set of articles
// that contain it. A single mutex guards the whole map; per spec this
// coarse locking is acceptable since Add only ever performs a bounded,
// non-blocking merge under the lock.
type Index struct {
	mu   sync.Mutex
	data map[string]map[Article]int
}

// New constructs an empty Index.
func New() *Index {
	return &Index{
		data: make(map[string]map[Article]int),
	}
}

// Add merges every token in tokens into the index as occurrences of
// article. Duplicate tokens within tokens accumulate; repeated calls with
// the same article accumulate across calls. Add is safe to call
// concurrently from any number of goroutines.
func (idx *Index) Add(article Article, tokens []string) {
	if len(tokens) == 0 {
		return
	}

	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		counts[t]++
	}
	if len(counts) == 0 {
		return
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	for token, n := range counts {
		postings, ok := idx.data[token]
		if !ok {
			postings = make(map[Article]int)
			idx.data[token] = postings
		}
		postings[article] += n
	}
}

// Matching returns the posting list for query, sorted by descending count
// with ties broken lexicographically by (title, url). An unknown token
// yields an empty, non-nil slice.
func (idx *Index) Matching(query string) []Posting {
	idx.mu.Lock()
	postings, ok := idx.data[query]
	if !ok {
		idx.mu.Unlock()
		return []Posting{}
	}
	result := make([]Posting, 0, len(postings))
	for article, count := range postings {
		result = append(result, Posting{Article: article, Count: count})
	}
	idx.mu.Unlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Article.less(result[j].Article)
	})
	return result
}
