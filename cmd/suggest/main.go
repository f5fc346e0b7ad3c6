// phonetics-suggest - Dictionary headword suggestions for misspelled or
// out-of-vocabulary words.
// Usage: phonetics-suggest [options] <query>
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/config"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/resource"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/similarity"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/translator"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/pflag"
)

func main() {
	cfg := config.Load()

	// Flags
	dataDir := pflag.StringP("data-dir", "d", cfg.Defaults.DataDir, "Directory containing language resources")
	language := pflag.StringP("language", "L", cfg.Defaults.Language, "Language code")
	maxDistance := pflag.IntP("distance", "n", 2, "Maximum edit distance")
	limit := pflag.IntP("limit", "l", 10, "Maximum results to show")
	mode := pflag.StringP("mode", "m", "distance", "Match mode: distance or subsequence")
	jsonOutput := pflag.BoolP("json", "j", false, "Output as JSON")

	pflag.Parse()

	if pflag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: phonetics-suggest [options] <query>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	query := strings.ToLower(pflag.Arg(0))

	var results []similarity.Suggestion
	var err error

	switch *mode {
	case "distance":
		results, err = distanceSuggestions(*dataDir, *language, query, *maxDistance, *limit)
	case "subsequence":
		results, err = subsequenceSuggestions(*dataDir, *language, query, *limit)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode %q (want distance or subsequence)\n", *mode)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// Output
	if *jsonOutput {
		output := struct {
			Query   string                  `json:"query"`
			Mode    string                  `json:"mode"`
			Count   int                     `json:"count"`
			Results []similarity.Suggestion `json:"results"`
		}{
			Query:   query,
			Mode:    *mode,
			Count:   len(results),
			Results: results,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(output)
		return
	}

	if len(results) == 0 {
		fmt.Printf("No matches found for %q\n", query)
		return
	}

	fmt.Printf("Suggestions for %q:\n\n", query)
	for _, r := range results {
		if r.Phonetic != "" {
			fmt.Printf("  %s  /%s/  (distance: %d)\n", r.Word, r.Phonetic, r.Distance)
		} else {
			fmt.Printf("  %s  (distance: %d)\n", r.Word, r.Distance)
		}
	}
	fmt.Printf("\n%d result(s) found\n", len(results))
}

// distanceSuggestions uses the BK-tree index over the language's
// dictionary headwords.
func distanceSuggestions(dataDir, language, query string, maxDistance, limit int) ([]similarity.Suggestion, error) {
	tr := translator.New(dataDir)
	suggestions, err := tr.Suggest(language, query, maxDistance, limit)
	if err != nil {
		return nil, err
	}
	if tr.DictionarySize(language) == 0 {
		return nil, fmt.Errorf("no dictionary entries for language %q under %s", language, dataDir)
	}
	return suggestions, nil
}

// subsequenceSuggestions matches the query as a fuzzy subsequence of the
// headwords, so partial spellings like "ctgry" still find "category".
func subsequenceSuggestions(dataDir, language, query string, limit int) ([]similarity.Suggestion, error) {
	entries, err := resource.LoadEntries(resource.DictionaryPath(dataDir, language))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no dictionary entries for language %q under %s", language, dataDir)
	}

	words := make([]string, len(entries))
	phonetics := make(map[string]string, len(entries))
	for i, entry := range entries {
		words[i] = entry.Word
		first, _, _ := strings.Cut(entry.Phonetics, ",")
		phonetics[entry.Word] = strings.Trim(strings.TrimSpace(first), "/")
	}

	ranks := fuzzy.RankFindNormalizedFold(query, words)
	sort.Sort(ranks)

	var results []similarity.Suggestion
	for _, rank := range ranks {
		results = append(results, similarity.Suggestion{
			Word:     rank.Target,
			Phonetic: phonetics[rank.Target],
			Distance: rank.Distance,
		})
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}
