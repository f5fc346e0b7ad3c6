package stepper

import (
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/trie"
)

// WordStepper scans whole input text against a word dictionary. Matches
// are gated on letter boundaries on both sides; letter runs that miss the
// dictionary are handed to the fallback converter, normally an
// OrthographyStepper.
type WordStepper struct {
	engine *engine
}

// NewWordStepper creates a word stepper over a dictionary root level.
// fallback may be nil, in which case unmatched words pass through inside
// the fallback delimiters unchanged.
func NewWordStepper(root trie.Level, fallback FallbackFunc) *WordStepper {
	e := newEngine(root, true)
	e.fallback = fallback
	return &WordStepper{engine: e}
}

// SetDelimiter overrides the delimiter wrapped around fallback words.
func (s *WordStepper) SetDelimiter(delimiter string) {
	s.engine.delimiter = delimiter
}

// SetText loads input text for a subsequent Run.
func (s *WordStepper) SetText(text string) {
	s.engine.SetText(text)
}

// Run scans the loaded text.
func (s *WordStepper) Run() error {
	return s.engine.Run()
}

// Clear fully resets the stepper for an unrelated input.
func (s *WordStepper) Clear() {
	s.engine.Clear()
}

// Tokens returns the token stream of the last run.
func (s *WordStepper) Tokens() []Token {
	return s.engine.Tokens()
}

// Render returns the plain rendering of the last run.
func (s *WordStepper) Render() string {
	return s.engine.Render()
}

// TranslateText scans text and returns the trimmed transcription.
func (s *WordStepper) TranslateText(text string) (string, error) {
	return s.engine.TranslateText(text)
}
