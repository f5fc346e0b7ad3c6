// Package trie provides per-language prefix trees mapping words to
// phonetic transcriptions.
package trie

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDictionary is returned when a trie operation runs before any
// dictionary has been selected.
var ErrNoDictionary = errors.New("no dictionary selected")

// Node is a single trie node, one per character position.
type Node struct {
	Char      rune
	Word      string // complete word if this node ends an entry, "" otherwise
	Phonetics []string
	Children  Level
}

// Level maps the next character to its child node. The root of each
// dictionary is a bare Level, not a Node.
type Level map[rune]*Node

// Terminal reports whether the node ends a dictionary entry.
func (n *Node) Terminal() bool {
	return n.Word != ""
}

// PrimaryPhonetic returns the first-inserted phonetic variant.
func (n *Node) PrimaryPhonetic() string {
	if len(n.Phonetics) == 0 {
		return ""
	}
	return n.Phonetics[0]
}

// addPhonetic appends a variant, keeping insertion order and skipping
// duplicates.
func (n *Node) addPhonetic(phonetic string) {
	for _, p := range n.Phonetics {
		if p == phonetic {
			return
		}
	}
	n.Phonetics = append(n.Phonetics, phonetic)
}

// Trie is a forest of per-language dictionaries. All word operations
// apply to the currently selected dictionary.
type Trie struct {
	dictionaries map[string]Level
	current      string
}

// New creates an empty trie forest.
func New() *Trie {
	return &Trie{dictionaries: make(map[string]Level)}
}

// HasDictionary reports whether a dictionary has been created for id.
func (t *Trie) HasDictionary(id string) bool {
	_, ok := t.dictionaries[id]
	return ok
}

// Select switches to the dictionary for id, creating it if absent.
func (t *Trie) Select(id string) {
	if _, ok := t.dictionaries[id]; !ok {
		t.dictionaries[id] = make(Level)
	}
	t.current = id
}

// Root returns the root level of the selected dictionary.
func (t *Trie) Root() (Level, error) {
	if t.current == "" {
		return nil, ErrNoDictionary
	}
	return t.dictionaries[t.current], nil
}

// RootFor returns the root level for id without changing the selection.
// The second result is false if the dictionary was never created.
func (t *Trie) RootFor(id string) (Level, bool) {
	level, ok := t.dictionaries[id]
	return level, ok
}

// AddWord inserts a word under the selected dictionary. The phonetics
// argument may hold several comma-separated variants; each is stored
// individually. Inserting an existing word appends variants rather than
// overwriting.
func (t *Trie) AddWord(word, phonetics string) error {
	if t.current == "" {
		return fmt.Errorf("add %q: %w", word, ErrNoDictionary)
	}
	if word == "" {
		return nil
	}

	level := t.dictionaries[t.current]
	var node *Node
	for _, ch := range word {
		child, ok := level[ch]
		if !ok {
			child = &Node{Char: ch, Children: make(Level)}
			level[ch] = child
		}
		node = child
		level = child.Children
	}

	node.Word = word
	for _, p := range strings.Split(phonetics, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			node.addPhonetic(p)
		}
	}
	return nil
}

// Find walks the selected dictionary for an exact full-string match.
// Strict prefixes of longer entries are not found.
func (t *Trie) Find(word string) (*Node, bool) {
	if t.current == "" || word == "" {
		return nil, false
	}

	level := t.dictionaries[t.current]
	var node *Node
	for _, ch := range word {
		child, ok := level[ch]
		if !ok {
			return nil, false
		}
		node = child
		level = child.Children
	}
	if !node.Terminal() {
		return nil, false
	}
	return node, true
}

// Words returns every complete word in the selected dictionary.
func (t *Trie) Words() []string {
	if t.current == "" {
		return nil
	}
	var words []string
	collectWords(t.dictionaries[t.current], &words)
	return words
}

func collectWords(level Level, words *[]string) {
	for _, node := range level {
		if node.Terminal() {
			*words = append(*words, node.Word)
		}
		collectWords(node.Children, words)
	}
}
