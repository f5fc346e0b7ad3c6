package stepper

// Kind discriminates the token variants a scan emits.
type Kind int

const (
	// KindMatch is a dictionary match resolved from the trie.
	KindMatch Kind = iota
	// KindFallback is a word absent from the dictionary, converted by the
	// orthography fallback and wrapped in the fallback delimiter.
	KindFallback
	// KindLiteral is a passthrough character.
	KindLiteral
)

// Token is one element of a scan result, in emission order.
type Token struct {
	Kind Kind
	// Word is the source word for match and fallback tokens.
	Word string
	// Phonetics holds every variant for a match token (insertion order,
	// first is primary) and the single delimited conversion for a
	// fallback token.
	Phonetics []string
	// Text is the passthrough text of a literal token.
	Text string
}

// Primary returns the first phonetic variant, or the literal text.
func (t Token) Primary() string {
	if len(t.Phonetics) > 0 {
		return t.Phonetics[0]
	}
	return t.Text
}
