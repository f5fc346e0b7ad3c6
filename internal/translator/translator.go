// Package translator is the public entry point: it composes resource
// loading, the word and orthography steppers and the rule processors
// into per-language text-to-IPA translation.
package translator

import (
	"strings"

	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/resource"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/rules"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/similarity"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/ssml"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/stepper"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/trie"
)

// Translator caches per-language resources and runs translations.
// Loading is idempotent per language; loaded dictionaries are shared
// read-only by every scan. A Translator is not safe for concurrent use:
// each translation builds its own steppers, but the caches and the
// last-run token stream are unguarded.
type Translator struct {
	dataDir   string
	delimiter string

	dicts       *trie.Trie
	maps        *trie.Trie
	pre         map[string]*rules.Processor
	post        map[string]*rules.Processor
	suggestions map[string]*similarity.Index
	loaded      map[string]bool

	lastTokens []stepper.Token
}

// Stats summarizes the last translation's token stream.
type Stats struct {
	WordsMatched  int64
	WordsFallback int64
	LiteralRunes  int64
}

// New creates a translator reading resources from dataDir.
func New(dataDir string) *Translator {
	return &Translator{
		dataDir:     dataDir,
		delimiter:   stepper.DefaultDelimiter,
		dicts:       trie.New(),
		maps:        trie.New(),
		pre:         make(map[string]*rules.Processor),
		post:        make(map[string]*rules.Processor),
		suggestions: make(map[string]*similarity.Index),
		loaded:      make(map[string]bool),
	}
}

// SetDelimiter overrides the delimiter around fallback words.
func (t *Translator) SetDelimiter(delimiter string) {
	t.delimiter = delimiter
}

// Loaded reports whether a language's resources are installed.
func (t *Translator) Loaded(language string) bool {
	return t.loaded[language]
}

// Load reads and installs a language's resources. Repeat calls for the
// same language are no-ops; missing resource files install as empty.
func (t *Translator) Load(language string) error {
	if t.loaded[language] {
		return nil
	}
	set, err := resource.LoadLanguage(t.dataDir, language)
	if err != nil {
		return err
	}
	t.Install(set)
	return nil
}

// Install places an already-loaded resource set into the caches, for
// callers that preloaded languages in parallel.
func (t *Translator) Install(set *resource.LanguageSet) {
	lang := set.Language
	if t.loaded[lang] {
		return
	}

	t.dicts.Select(lang)
	index := similarity.NewIndex()
	for _, entry := range set.Words {
		t.dicts.AddWord(entry.Word, entry.Phonetics)
		index.Add(entry.Word, primaryVariant(entry.Phonetics))
	}
	t.suggestions[lang] = index

	t.maps.Select(lang)
	for _, entry := range set.Map {
		t.maps.AddWord(entry.Word, entry.Phonetics)
	}

	t.pre[lang] = rules.ParseSource(set.PreSource)
	t.post[lang] = rules.ParseSource(set.PostSource)
	t.loaded[lang] = true
}

// primaryVariant picks the first comma-separated phonetic option,
// without its slash delimiters.
func primaryVariant(phonetics string) string {
	first, _, _ := strings.Cut(phonetics, ",")
	return strings.Trim(strings.TrimSpace(first), "/")
}

// Translate converts text for a language and returns the trimmed
// phonetic string.
func (t *Translator) Translate(language, text string) (string, error) {
	if err := t.Load(language); err != nil {
		return "", err
	}

	word := t.newWordStepper(language)
	out, err := word.TranslateText(text)
	if err != nil {
		return "", err
	}
	t.lastTokens = word.Tokens()
	return out, nil
}

// TranslateSSML converts text and renders the result as SSML.
func (t *Translator) TranslateSSML(language, text string) (string, error) {
	if _, err := t.Translate(language, text); err != nil {
		return "", err
	}
	return ssml.Render(t.lastTokens), nil
}

// newWordStepper assembles the scan pipeline for one translation.
func (t *Translator) newWordStepper(language string) *stepper.WordStepper {
	dictRoot, _ := t.dicts.RootFor(language)
	mapRoot, _ := t.maps.RootFor(language)

	ortho := stepper.NewOrthographyStepper(mapRoot)
	ortho.SetProcessors(t.pre[language], t.post[language])

	word := stepper.NewWordStepper(dictRoot, ortho.TranslateWord)
	word.SetDelimiter(t.delimiter)
	return word
}

// Tokens returns the token stream of the last translation.
func (t *Translator) Tokens() []stepper.Token {
	return t.lastTokens
}

// LastStats summarizes the last translation.
func (t *Translator) LastStats() Stats {
	var s Stats
	for _, tok := range t.lastTokens {
		switch tok.Kind {
		case stepper.KindMatch:
			s.WordsMatched++
		case stepper.KindFallback:
			s.WordsFallback++
		case stepper.KindLiteral:
			s.LiteralRunes++
		}
	}
	return s
}

// Suggest returns dictionary headwords near an out-of-vocabulary word.
func (t *Translator) Suggest(language, word string, maxDistance, limit int) ([]similarity.Suggestion, error) {
	if err := t.Load(language); err != nil {
		return nil, err
	}
	index := t.suggestions[language]
	if index == nil {
		return nil, nil
	}
	return index.Suggest(word, maxDistance, limit), nil
}

// DictionarySize returns the number of dictionary headwords loaded for a
// language.
func (t *Translator) DictionarySize(language string) int {
	if index, ok := t.suggestions[language]; ok {
		return index.Size()
	}
	return 0
}
