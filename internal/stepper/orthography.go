package stepper

import (
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/rules"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/trie"
)

// OrthographyStepper converts a single word via a grapheme-to-phoneme
// trie. Every position is eligible to start a match since the word is
// already isolated, so no boundary gating applies. The trie scan is
// wrapped by an optional preprocessor (orthographic normalization of the
// raw word) and postprocessor (phonological rewrites over the assembled
// phonetic string).
type OrthographyStepper struct {
	engine *engine
	pre    *rules.Processor
	post   *rules.Processor
}

// NewOrthographyStepper creates an orthography stepper over a
// grapheme-to-phoneme root level. root may be nil, degrading the scan to
// literal passthrough.
func NewOrthographyStepper(root trie.Level) *OrthographyStepper {
	return &OrthographyStepper{engine: newEngine(root, false)}
}

// SetProcessors attaches the pre and post rule processors. Either may be
// nil for a no-op phase.
func (s *OrthographyStepper) SetProcessors(pre, post *rules.Processor) {
	s.pre = pre
	s.post = post
}

// TranslateWord converts one word: preprocessor rewrite, trie scan,
// postprocessor rewrite.
func (s *OrthographyStepper) TranslateWord(word string) (string, error) {
	word = s.pre.Process(word)
	phonetic, err := s.engine.TranslateText(word)
	if err != nil {
		return "", err
	}
	return s.post.Process(phonetic), nil
}

// Tokens returns the token stream of the last conversion.
func (s *OrthographyStepper) Tokens() []Token {
	return s.engine.Tokens()
}

// Clear fully resets the stepper.
func (s *OrthographyStepper) Clear() {
	s.engine.Clear()
}
