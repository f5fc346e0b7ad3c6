// Package stepper implements the cursor-based longest-match scanning
// engine that walks input text against a trie level, plus the two stepper
// variants built on it: a word-boundary-gated document scanner and an
// ungated single-word orthography scanner.
package stepper

import (
	"errors"
	"strings"

	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/normalizer"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/trie"
)

// ErrNoText is returned when a scan runs before any text has been set.
var ErrNoText = errors.New("no text set")

// DefaultDelimiter wraps words that fell through to the orthography
// converter in the rendered output.
const DefaultDelimiter = "#"

// FallbackFunc converts a word that missed the dictionary.
type FallbackFunc func(word string) (string, error)

// engine is the shared scan machine. It walks the padded, case-folded
// text left to right against a trie root level, recording the most recent
// position where a complete entry matched so a failed longer walk can
// back track to it.
type engine struct {
	root      trie.Level
	gated     bool // require letter boundaries around matches
	fallback  FallbackFunc
	delimiter string

	text   []rune
	cursor int
	tokens []Token

	// transient walk state, reset between match attempts
	level      trie.Level
	matched    int
	lastNode   *trie.Node
	lastCursor int

	wordBuf []rune
}

func newEngine(root trie.Level, gated bool) *engine {
	e := &engine{root: root, gated: gated, delimiter: DefaultDelimiter}
	e.reset()
	return e
}

// SetText loads a new input, folded to lowercase and padded with space
// sentinels so boundary checks never run off the buffer.
func (e *engine) SetText(text string) {
	e.Clear()
	e.text = []rune(" " + normalizer.Fold(text) + " ")
}

// Clear fully resets the engine, dropping text, cursor and results.
func (e *engine) Clear() {
	e.text = nil
	e.cursor = 0
	e.tokens = nil
	e.wordBuf = nil
	e.reset()
}

// reset drops the in-progress walk state, keeping cursor and results.
// Used between match attempts and on backtrack.
func (e *engine) reset() {
	e.level = e.root
	e.matched = 0
	e.lastNode = nil
	e.lastCursor = 0
}

// Run executes one full scan over the loaded text.
func (e *engine) Run() error {
	if e.text == nil {
		return ErrNoText
	}
	e.reset()

	for e.cursor <= len(e.text) {
		var node *trie.Node
		ok := false
		if e.cursor < len(e.text) {
			node, ok = e.level[e.text[e.cursor]]
		}

		if ok && (e.matched > 0 || e.canStart()) {
			e.matched++
			if node.Terminal() && e.canEnd() {
				e.lastNode = node
				e.lastCursor = e.cursor
			}
			e.level = node.Children
			e.cursor++
			continue
		}

		// The walk cannot continue at the cursor.
		if e.lastNode != nil {
			// Prefer the longest confirmed match over the failed
			// longer attempt: emit it and rescan just past it.
			e.emitMatch(e.lastNode)
			e.cursor = e.lastCursor + 1
			e.reset()
			continue
		}

		if e.matched > 0 {
			// Dead end with nothing confirmed: rewind to where the
			// attempt began and consume that character literally.
			e.cursor -= e.matched
			e.reset()
		}

		if e.cursor >= len(e.text) {
			break
		}
		if e.cursor == 0 || e.cursor == len(e.text)-1 {
			// sentinel padding is a boundary, never output
			e.flushWord()
		} else {
			e.consumeLiteral(e.text[e.cursor])
		}
		e.cursor++
	}

	e.flushWord()
	return nil
}

// canStart reports whether a trie walk may begin at the cursor. Gated
// engines require the previous character to be a non-letter.
func (e *engine) canStart() bool {
	if !e.gated {
		return true
	}
	return e.cursor == 0 || !normalizer.IsWordChar(e.text[e.cursor-1])
}

// canEnd reports whether a terminal node at the cursor is acceptable as a
// candidate. Gated engines require the following character to be a
// non-letter, so entries never match inside longer words.
func (e *engine) canEnd() bool {
	if !e.gated {
		return true
	}
	return e.cursor+1 >= len(e.text) || !normalizer.IsWordChar(e.text[e.cursor+1])
}

func (e *engine) emitMatch(node *trie.Node) {
	e.flushWord()
	e.tokens = append(e.tokens, Token{
		Kind:      KindMatch,
		Word:      node.Word,
		Phonetics: node.Phonetics,
	})
}

// consumeLiteral handles one character outside any trie match. Gated
// engines collect letter runs into a word buffer for the fallback
// converter; everything else passes through.
func (e *engine) consumeLiteral(r rune) {
	if e.gated && normalizer.IsWordChar(r) {
		e.wordBuf = append(e.wordBuf, r)
		return
	}
	e.flushWord()
	e.tokens = append(e.tokens, Token{Kind: KindLiteral, Text: string(r)})
}

// flushWord hands the buffered letter run to the fallback converter and
// emits the delimited result. Without a converter the word passes
// through inside the delimiters unchanged.
func (e *engine) flushWord() {
	if len(e.wordBuf) == 0 {
		return
	}
	word := string(e.wordBuf)
	e.wordBuf = nil

	converted := word
	if e.fallback != nil {
		if out, err := e.fallback(word); err == nil {
			converted = out
		}
	}
	e.tokens = append(e.tokens, Token{
		Kind:      KindFallback,
		Word:      word,
		Phonetics: []string{e.delimiter + converted + e.delimiter},
	})
}

// Tokens returns the result of the last run.
func (e *engine) Tokens() []Token {
	return e.tokens
}

// Render joins the token stream into the plain transcription. Slash
// delimiters around dictionary phonetics are stripped; fallback words
// keep their delimiter wrapping.
func (e *engine) Render() string {
	var b strings.Builder
	for _, tok := range e.tokens {
		switch tok.Kind {
		case KindMatch:
			b.WriteString(strings.Trim(tok.Primary(), "/"))
		default:
			b.WriteString(tok.Primary())
		}
	}
	return strings.TrimSpace(b.String())
}

// TranslateText sets the text, runs a full scan and returns the trimmed
// rendering.
func (e *engine) TranslateText(text string) (string, error) {
	e.SetText(text)
	if err := e.Run(); err != nil {
		return "", err
	}
	return e.Render(), nil
}
