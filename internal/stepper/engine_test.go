package stepper

import (
	"errors"
	"testing"

	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/trie"
)

func wordTrie(t *testing.T, entries map[string]string) trie.Level {
	t.Helper()
	tr := trie.New()
	tr.Select("test")
	for word, phonetic := range entries {
		if err := tr.AddWord(word, phonetic); err != nil {
			t.Fatal(err)
		}
	}
	root, err := tr.Root()
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestRunWithoutTextFails(t *testing.T) {
	s := NewWordStepper(wordTrie(t, nil), nil)
	if err := s.Run(); !errors.Is(err, ErrNoText) {
		t.Fatalf("Run without text: got %v, want ErrNoText", err)
	}
}

func TestDictionaryScan(t *testing.T) {
	root := wordTrie(t, map[string]string{
		"hello": "/həˈloʊ/",
		"world": "/wɔrld/",
	})
	s := NewWordStepper(root, nil)

	got, err := s.TranslateText("Hello world!")
	if err != nil {
		t.Fatal(err)
	}
	if got != "həˈloʊ wɔrld!" {
		t.Errorf("TranslateText = %q, want %q", got, "həˈloʊ wɔrld!")
	}
}

func TestLongestMatchPrefersFullWord(t *testing.T) {
	root := wordTrie(t, map[string]string{
		"cat":      "kæt",
		"category": "ˈkætəɡɔri",
	})
	s := NewWordStepper(root, nil)

	got, err := s.TranslateText("category")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ˈkætəɡɔri" {
		t.Errorf("TranslateText(category) = %q, want full entry", got)
	}
}

func TestWordBoundaryBlocksEmbeddedMatch(t *testing.T) {
	root := wordTrie(t, map[string]string{
		"cat":      "kæt",
		"category": "ˈkætəɡɔri",
	})
	s := NewWordStepper(root, nil)

	// "cat" matches as a word, "sat" has no entry and falls through.
	got, err := s.TranslateText("the cat sat")
	if err != nil {
		t.Fatal(err)
	}
	if got != "#the# kæt #sat#" {
		t.Errorf("TranslateText = %q, want %q", got, "#the# kæt #sat#")
	}

	// "cats" is not a word boundary match for "cat": the whole run
	// falls through rather than matching inside the longer word.
	got, err = s.TranslateText("cats")
	if err != nil {
		t.Fatal(err)
	}
	if got != "#cats#" {
		t.Errorf("TranslateText(cats) = %q, want %q", got, "#cats#")
	}
}

func TestEmptyDictionaryPassthrough(t *testing.T) {
	s := NewWordStepper(wordTrie(t, nil), NewOrthographyStepper(nil).TranslateWord)

	got, err := s.TranslateText("cat")
	if err != nil {
		t.Fatal(err)
	}
	if got != "#cat#" {
		t.Errorf("TranslateText(cat) = %q, want %q", got, "#cat#")
	}
}

func TestPunctuationPassesThrough(t *testing.T) {
	root := wordTrie(t, map[string]string{"cat": "kæt"})
	s := NewWordStepper(root, nil)

	got, err := s.TranslateText("cat, cat... cat!")
	if err != nil {
		t.Fatal(err)
	}
	if got != "kæt, kæt... kæt!" {
		t.Errorf("TranslateText = %q, want %q", got, "kæt, kæt... kæt!")
	}
}

func TestFirstVariantIsPrimary(t *testing.T) {
	root := wordTrie(t, map[string]string{"either": "/ˈiːðər/, /ˈaɪðər/"})
	s := NewWordStepper(root, nil)

	got, err := s.TranslateText("either")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ˈiːðər" {
		t.Errorf("TranslateText(either) = %q, want first-inserted variant", got)
	}

	tokens := s.Tokens()
	var match *Token
	for i := range tokens {
		if tokens[i].Kind == KindMatch {
			match = &tokens[i]
			break
		}
	}
	if match == nil {
		t.Fatal("no match token emitted")
	}
	if len(match.Phonetics) != 2 {
		t.Errorf("match token variants = %v, want both", match.Phonetics)
	}
}

func TestCustomDelimiter(t *testing.T) {
	s := NewWordStepper(wordTrie(t, nil), nil)
	s.SetDelimiter("/")

	got, err := s.TranslateText("cat")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/cat/" {
		t.Errorf("TranslateText = %q, want %q", got, "/cat/")
	}
}

func TestStepperReuseAcrossTexts(t *testing.T) {
	root := wordTrie(t, map[string]string{"cat": "kæt", "dog": "dɒɡ"})
	s := NewWordStepper(root, nil)

	first, err := s.TranslateText("cat")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.TranslateText("dog")
	if err != nil {
		t.Fatal(err)
	}
	if first != "kæt" || second != "dɒɡ" {
		t.Errorf("reuse: got %q then %q", first, second)
	}
	if len(s.Tokens()) == 0 {
		t.Error("Tokens empty after run")
	}

	s.Clear()
	if len(s.Tokens()) != 0 {
		t.Error("Tokens survive Clear")
	}
	if err := s.Run(); !errors.Is(err, ErrNoText) {
		t.Error("Run after Clear should require new text")
	}
}

func BenchmarkWordScan(b *testing.B) {
	tr := trie.New()
	tr.Select("bench")
	tr.AddWord("the", "ðə")
	tr.AddWord("quick", "kwɪk")
	tr.AddWord("brown", "braʊn")
	tr.AddWord("fox", "fɒks")
	root, _ := tr.Root()
	s := NewWordStepper(root, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.TranslateText("the quick brown fox jumps over the lazy dog")
	}
}
