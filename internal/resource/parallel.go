package resource

import (
	"sync"
)

// PreloadResult holds the outcome of loading one language's resources.
type PreloadResult struct {
	Language string
	Set      *LanguageSet
	Err      error
}

// ProgressCallback is invoked as each language finishes loading.
type ProgressCallback func(language string, result *PreloadResult)

// PreloadLanguages loads resources for several languages with a worker
// pool. Results come back in input order; the callback fires in
// completion order. workers <= 1 loads sequentially. Loading is the only
// concurrent phase; scanning stays single-threaded.
func PreloadLanguages(dataDir string, languages []string, workers int, callback ProgressCallback) []*PreloadResult {
	results := make([]*PreloadResult, len(languages))

	if workers <= 1 {
		for i, lang := range languages {
			results[i] = loadOne(dataDir, lang)
			if callback != nil {
				callback(lang, results[i])
			}
		}
		return results
	}

	type job struct {
		index    int
		language string
	}

	jobs := make(chan job, len(languages))
	done := make(chan struct {
		index  int
		result *PreloadResult
	}, len(languages))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				done <- struct {
					index  int
					result *PreloadResult
				}{j.index, loadOne(dataDir, j.language)}
			}
		}()
	}

	go func() {
		for i, lang := range languages {
			jobs <- job{i, lang}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(done)
	}()

	for r := range done {
		results[r.index] = r.result
		if callback != nil {
			callback(r.result.Language, r.result)
		}
	}

	return results
}

func loadOne(dataDir, language string) *PreloadResult {
	set, err := LoadLanguage(dataDir, language)
	return &PreloadResult{Language: language, Set: set, Err: err}
}
