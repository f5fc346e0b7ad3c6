// Package similarity provides fuzzy suggestions for out-of-vocabulary
// words using a BK-tree over dictionary headwords.
package similarity

import (
	"sort"

	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/normalizer"
)

// Suggestion is one candidate headword with its edit distance from the
// query.
type Suggestion struct {
	Word     string `json:"word"`
	Phonetic string `json:"phonetic"`
	Distance int    `json:"distance"`
}

// Index is a BK-tree keyed by ASCII-folded headwords, so accented
// spellings still find their plain neighbours. BK-trees partition the
// metric space by edit distance, which keeps lookups far below a full
// dictionary sweep.
type Index struct {
	root *node
	size int
}

type node struct {
	word     string // original headword
	folded   string // ASCII-folded key used for distances
	phonetic string // primary phonetic variant
	children map[int]*node
}

// NewIndex creates an empty suggestion index.
func NewIndex() *Index {
	return &Index{}
}

// Add inserts a headword with its primary phonetic. Duplicate folded
// keys keep the first insertion.
func (ix *Index) Add(word, phonetic string) {
	if word == "" {
		return
	}
	folded := normalizer.FoldASCII(word)

	if ix.root == nil {
		ix.root = &node{word: word, folded: folded, phonetic: phonetic, children: make(map[int]*node)}
		ix.size++
		return
	}

	current := ix.root
	for {
		dist := EditDistance(folded, current.folded)
		if dist == 0 {
			return
		}
		child, ok := current.children[dist]
		if !ok {
			current.children[dist] = &node{word: word, folded: folded, phonetic: phonetic, children: make(map[int]*node)}
			ix.size++
			return
		}
		current = child
	}
}

// Size returns the number of indexed headwords.
func (ix *Index) Size() int {
	return ix.size
}

// Suggest returns headwords within maxDistance of the query, nearest
// first, alphabetical within a distance. limit <= 0 means no limit.
func (ix *Index) Suggest(query string, maxDistance, limit int) []Suggestion {
	if ix.root == nil || query == "" {
		return nil
	}

	folded := normalizer.FoldASCII(query)
	var results []Suggestion
	ix.search(ix.root, folded, maxDistance, &results)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Word < results[j].Word
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (ix *Index) search(n *node, folded string, maxDistance int, results *[]Suggestion) {
	dist := EditDistance(folded, n.folded)
	if dist <= maxDistance {
		*results = append(*results, Suggestion{Word: n.word, Phonetic: n.phonetic, Distance: dist})
	}

	// Triangle inequality prunes children outside [dist-max, dist+max].
	for childDist, child := range n.children {
		if childDist >= dist-maxDistance && childDist <= dist+maxDistance {
			ix.search(child, folded, maxDistance, results)
		}
	}
}

// EditDistance is the Levenshtein distance between two strings, computed
// over runes with a two-row matrix.
func EditDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	if len(r1) > len(r2) {
		r1, r2 = r2, r1
	}
	if len(r1) == 0 {
		return len(r2)
	}

	prev := make([]int, len(r1)+1)
	curr := make([]int, len(r1)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(r2); j++ {
		curr[0] = j
		for i := 1; i <= len(r1); i++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(r1)]
}

func min(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
