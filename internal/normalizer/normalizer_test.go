package normalizer

import (
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello world"},
		{"CAFÉ", "café"},
		{"cafe\u0301", "café"}, // combining acute composes to é
		{"Straße", "straße"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Fold(tt.input); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsWordChar(t *testing.T) {
	wordChars := []rune{'a', 'z', 'é', 'ş', 'ß', '\u0301'}
	for _, r := range wordChars {
		if !IsWordChar(r) {
			t.Errorf("IsWordChar(%q) = false, want true", r)
		}
	}

	boundaries := []rune{' ', '.', ',', '!', '\n', '\t', '3', '-', '\''}
	for _, r := range boundaries {
		if IsWordChar(r) {
			t.Errorf("IsWordChar(%q) = true, want false", r)
		}
	}
}

func TestFoldASCII(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"café", "cafe"},
		{"Straße", "strasse"},
		{"ŞEKER", "seker"},
		{"cœur", "coeur"},
		{"naïve", "naive"},
		{"plain", "plain"},
		{"ćevapi", "cevapi"}, // via NFD fallback, not in the direct map
	}

	for _, tt := range tests {
		if got := FoldASCII(tt.input); got != tt.want {
			t.Errorf("FoldASCII(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
