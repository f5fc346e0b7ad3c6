// Package resource loads per-language dictionary, orthography-map and
// rule resources from the data directory.
//
// Layout under the data directory:
//
//	<lang>/words.tsv  word dictionary, tab-separated
//	<lang>/map.tsv    grapheme-to-phoneme map, tab-separated
//	<lang>/pre.rules  preprocessor rule source
//	<lang>/post.rules postprocessor rule source
//
// Missing files load as empty resources; translation degrades to
// passthrough rather than failing.
package resource

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one word-to-phonetics line of a dictionary or map file.
type Entry struct {
	Word      string
	Phonetics string
}

// DictionaryPath returns the word-dictionary file for a language.
func DictionaryPath(dataDir, language string) string {
	return filepath.Join(dataDir, language, "words.tsv")
}

// MapPath returns the orthography-map file for a language.
func MapPath(dataDir, language string) string {
	return filepath.Join(dataDir, language, "map.tsv")
}

// RulePath returns the rule-source file for a language and phase
// ("pre" or "post").
func RulePath(dataDir, language, phase string) string {
	return filepath.Join(dataDir, language, phase+".rules")
}

// LoadEntries parses a tab-separated resource file. Blank lines and lines
// missing either field are skipped. A missing file is an empty resource,
// not an error.
func LoadEntries(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		word, phonetics, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		word = strings.TrimSpace(word)
		phonetics = strings.TrimSpace(phonetics)
		if word == "" || phonetics == "" {
			continue
		}
		entries = append(entries, Entry{Word: word, Phonetics: phonetics})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return entries, nil
}

// LoadRuleSource reads a rule-source body. A missing file is an empty
// source.
func LoadRuleSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// LanguageSet bundles every loaded resource for one language.
type LanguageSet struct {
	Language   string
	Words      []Entry
	Map        []Entry
	PreSource  string
	PostSource string
}

// Empty reports whether no resource file held any content.
func (s *LanguageSet) Empty() bool {
	return len(s.Words) == 0 && len(s.Map) == 0 &&
		s.PreSource == "" && s.PostSource == ""
}

// LoadLanguage loads every resource for one language.
func LoadLanguage(dataDir, language string) (*LanguageSet, error) {
	words, err := LoadEntries(DictionaryPath(dataDir, language))
	if err != nil {
		return nil, err
	}
	graphemes, err := LoadEntries(MapPath(dataDir, language))
	if err != nil {
		return nil, err
	}
	pre, err := LoadRuleSource(RulePath(dataDir, language, "pre"))
	if err != nil {
		return nil, err
	}
	post, err := LoadRuleSource(RulePath(dataDir, language, "post"))
	if err != nil {
		return nil, err
	}
	return &LanguageSet{
		Language:   language,
		Words:      words,
		Map:        graphemes,
		PreSource:  pre,
		PostSource: post,
	}, nil
}
