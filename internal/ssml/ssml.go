// Package ssml renders scan results as SSML for speech synthesis.
package ssml

import (
	"strings"

	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/stepper"
)

const (
	pauseBreak = `<break time="750ms"/>`
	weakBreak  = `<break strength="weak"/>`
)

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Render converts a token stream to an SSML document. Matched and
// fallback tokens become IPA phoneme elements with their delimiters
// stripped; literal text is escaped, with double newlines as pauses and
// single newlines as weak breaks.
func Render(tokens []stepper.Token) string {
	var b strings.Builder
	b.WriteString("<speak>")

	var literal strings.Builder
	flush := func() {
		if literal.Len() == 0 {
			return
		}
		b.WriteString(renderLiteral(literal.String()))
		literal.Reset()
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case stepper.KindLiteral:
			literal.WriteString(tok.Text)
		default:
			flush()
			b.WriteString(renderPhoneme(tok))
		}
	}
	flush()

	b.WriteString("</speak>")
	return b.String()
}

// renderLiteral escapes a literal run and converts newlines to breaks.
func renderLiteral(text string) string {
	text = escaper.Replace(text)
	text = strings.ReplaceAll(text, "\n\n", pauseBreak)
	text = strings.ReplaceAll(text, "\n", weakBreak)
	return text
}

// renderPhoneme wraps a token as an IPA phoneme element, using the
// primary variant with slash or hash delimiters stripped.
func renderPhoneme(tok stepper.Token) string {
	ph := strings.Trim(tok.Primary(), "/#")
	var b strings.Builder
	b.WriteString(`<phoneme alphabet="ipa" ph="`)
	b.WriteString(escaper.Replace(ph))
	b.WriteString(`">`)
	b.WriteString(escaper.Replace(tok.Word))
	b.WriteString(`</phoneme>`)
	return b.String()
}
