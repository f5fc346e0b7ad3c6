// Package normalizer handles text folding for trie scanning and ASCII
// folding for the suggestion index.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// charMap maps accented characters to plain ASCII for suggestion keys.
var charMap = map[rune]string{
	// Turkish
	'ç': "c", 'ş': "s", 'ğ': "g", 'ı': "i",
	// German
	'ä': "a", 'ö': "o", 'ü': "u", 'ß': "ss",
	// French
	'à': "a", 'â': "a", 'æ': "ae",
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e",
	'î': "i", 'ï': "i",
	'ô': "o", 'œ': "oe",
	'ù': "u", 'û': "u",
	'ÿ': "y",
	// Spanish
	'á': "a", 'í': "i", 'ó': "o", 'ú': "u", 'ñ': "n",
	// Portuguese
	'ã': "a", 'õ': "o",
	// Nordic
	'å': "a", 'ø': "o",
}

// Fold prepares text for trie scanning: NFC composition so that combining
// sequences match precomposed dictionary keys, then lowercasing.
func Fold(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}

// IsWordChar reports whether r belongs to a word. Letters and combining
// marks count; punctuation, digits and whitespace are boundaries.
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)
}

// FoldASCII reduces a word to lowercase ASCII for fuzzy matching.
// Characters outside the direct map fall back to NFD decomposition with
// combining marks stripped.
func FoldASCII(word string) string {
	var result strings.Builder
	result.Grow(len(word))
	for _, r := range strings.ToLower(word) {
		result.WriteString(foldRune(r))
	}
	return result.String()
}

func foldRune(r rune) string {
	if ascii, ok := charMap[r]; ok {
		return ascii
	}
	if r < 128 {
		return string(r)
	}

	decomposed := norm.NFD.String(string(r))
	var result strings.Builder
	for _, c := range decomposed {
		if c < 128 && !unicode.Is(unicode.Mn, c) {
			result.WriteRune(unicode.ToLower(c))
		}
	}
	if result.Len() > 0 {
		return result.String()
	}
	return string(r)
}
