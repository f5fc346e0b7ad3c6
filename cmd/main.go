// phonetics CLI - Text to IPA transliteration.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/config"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/metrics"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/resource"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/translator"
	"github.com/OrderAndCh4oS/phonetics-transliterator/internal/ui"

	"github.com/spf13/pflag"
)

func main() {
	cfg := config.Load()

	// Flags
	languages := pflag.StringP("languages", "l", cfg.Defaults.Language, "Comma-separated language codes")
	dataDir := pflag.StringP("data-dir", "d", cfg.Defaults.DataDir, "Directory containing language resources")
	outputDir := pflag.StringP("output-dir", "o", cfg.Defaults.OutputDir, "Output directory for transcriptions and metrics")
	files := pflag.StringArrayP("file", "f", nil, "Input text file (repeatable; - for stdin)")
	ssmlOut := pflag.Bool("ssml", cfg.Defaults.SSML, "Render output as SSML")
	delimiter := pflag.String("delimiter", cfg.Defaults.FallbackDelimiter, "Delimiter around orthography fallback words")
	write := pflag.Bool("write", false, "Write transcriptions under the output directory")
	quiet := pflag.BoolP("quiet", "q", cfg.Defaults.Quiet, "Suppress progress output")
	verbose := pflag.BoolP("verbose", "v", cfg.Defaults.Verbose, "Verbose logging")
	writeMetrics := pflag.Bool("metrics", cfg.Defaults.Metrics, "Write metrics to output directory")
	benchmark := pflag.Bool("benchmark", false, "Run in benchmark mode (JSON output only)")
	workers := pflag.IntP("workers", "w", cfg.Defaults.Workers, "Number of parallel resource loaders (0 = auto)")

	pflag.Parse()

	// Auto-detect workers
	if *workers <= 0 {
		*workers = runtime.NumCPU()
		if *workers > config.MaxWorkers {
			*workers = config.MaxWorkers
		}
	}

	// Initialize UI
	term := ui.New(*quiet || *benchmark, *verbose)

	if !*benchmark {
		term.Banner()
	}

	// Parse languages
	langs := strings.Split(*languages, ",")
	for i := range langs {
		langs[i] = strings.TrimSpace(langs[i])
	}

	// Gather input texts
	texts, names, err := readInputs(*files, pflag.Args())
	if err != nil {
		term.Error(err.Error())
		os.Exit(1)
	}
	if len(texts) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: phonetics [options] <text>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	// Initialize metrics collector
	collector := metrics.NewCollector()
	collector.SetConfig("languages", langs)
	collector.SetConfig("texts", len(texts))
	collector.SetConfig("ssml", *ssmlOut)
	collector.SetConfig("workers", *workers)

	if !*benchmark {
		term.Config(*languages, *dataDir, *ssmlOut, *workers)
	}

	tr := translator.New(*dataDir)
	tr.SetDelimiter(*delimiter)

	// Phase 1: Load language resources
	collector.StartStage("load")
	if !*benchmark {
		term.Phase(1, 2, "Loading language resources")
	}

	loadedLangs := preload(term, tr, *dataDir, langs, *workers, *benchmark)
	collector.EndStage("load")
	collector.SetStageCounter("load", "languages", int64(len(loadedLangs)))

	if len(loadedLangs) == 0 {
		term.Error("no language resources loaded")
		os.Exit(1)
	}

	// Phase 2: Translate
	collector.StartStage("scan")
	if !*benchmark {
		term.Phase(2, 2, "Transliterating")
	}

	var matched, fallback, literal int64
	outputs := 0

	for _, lang := range loadedLangs {
		for i, text := range texts {
			var out string
			var err error
			if *ssmlOut {
				out, err = tr.TranslateSSML(lang, text)
			} else {
				out, err = tr.Translate(lang, text)
			}
			if err != nil {
				term.LanguageStatus(lang, "error", err.Error())
				continue
			}

			stats := tr.LastStats()
			matched += stats.WordsMatched
			fallback += stats.WordsFallback
			literal += stats.LiteralRunes
			outputs++

			if *benchmark {
				continue
			}
			if *quiet {
				fmt.Println(out)
			} else {
				term.Translation(text, out)
			}

			if *write {
				if path, err := writeOutput(*outputDir, lang, names[i], *ssmlOut, out); err != nil {
					term.Warning(fmt.Sprintf("Failed to write output: %v", err))
				} else {
					term.Debug(fmt.Sprintf("Wrote %s", path))
				}
			}
		}
	}

	collector.EndStage("scan")
	collector.SetStageCounter("scan", "words_matched", matched)
	collector.SetStageCounter("scan", "words_fallback", fallback)
	collector.SetStageCounter("scan", "literal_runes", literal)

	if !*benchmark && !*quiet {
		term.ScanStats(matched, fallback, literal)
	}

	// Finalize metrics
	runMetrics := collector.Finalize(len(loadedLangs), matched, fallback, literal)

	if *writeMetrics || *benchmark {
		reporter := metrics.NewReporter(*outputDir)

		previousRun, _ := reporter.LastRun()

		if err := reporter.Write(runMetrics); err != nil {
			if !*benchmark {
				term.Warning(fmt.Sprintf("Failed to write metrics: %v", err))
			}
		} else if !*benchmark {
			term.Debug(fmt.Sprintf("Metrics written: %s", runMetrics.RunID))
		}

		if previousRun != nil && !*benchmark {
			comparison := metrics.CompareRuns(runMetrics, previousRun)
			if comparison != nil {
				term.Info(metrics.FormatComparison(comparison))
			}
		}
	}

	// Final report
	if *benchmark {
		fmt.Printf(`{"run_id":"%s","duration_ms":%d,"throughput":%.2f,"words_matched":%d,"words_fallback":%d,"languages":%d,"workers":%d}`,
			runMetrics.RunID,
			runMetrics.Totals.DurationMs,
			runMetrics.Totals.Throughput,
			matched,
			fallback,
			len(loadedLangs),
			*workers,
		)
		fmt.Println()
	} else if !*quiet {
		term.FinalReport(outputs, matched+fallback, collector.StageDuration("load")+collector.StageDuration("scan"))
		term.Done()
	}
}

// preload loads language resources in parallel and installs the
// successful ones. Returns the languages that ended up usable.
func preload(term *ui.UI, tr *translator.Translator, dataDir string, langs []string, workers int, benchmark bool) []string {
	spinner := term.Spinner(fmt.Sprintf("Loading %d language(s)...", len(langs)))
	results := resource.PreloadLanguages(dataDir, langs, workers, nil)
	spinner.Stop()

	var loaded []string
	for _, r := range results {
		if r.Err != nil {
			if !benchmark {
				term.LanguageStatus(r.Language, "error", r.Err.Error())
			}
			continue
		}
		if !benchmark {
			if len(r.Set.Words) == 0 && len(r.Set.Map) == 0 {
				term.LanguageStatus(r.Language, "skip", "no resources found, passthrough only")
			} else {
				term.LanguageStatus(r.Language, "ok", fmt.Sprintf("%d dictionary entries, %d graphemes", len(r.Set.Words), len(r.Set.Map)))
			}
		}
		tr.Install(r.Set)
		loaded = append(loaded, r.Language)
	}
	return loaded
}

// readInputs collects input texts from files, stdin and positional
// arguments. Positional arguments join into a single text.
func readInputs(files []string, args []string) ([]string, []string, error) {
	var texts, names []string

	for _, path := range files {
		if path == "-" {
			text, err := readAll(os.Stdin)
			if err != nil {
				return nil, nil, fmt.Errorf("read stdin: %w", err)
			}
			texts = append(texts, text)
			names = append(names, "stdin")
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		texts = append(texts, string(data))
		base := filepath.Base(path)
		names = append(names, strings.TrimSuffix(base, filepath.Ext(base)))
	}

	if len(args) > 0 {
		texts = append(texts, strings.Join(args, " "))
		names = append(names, "text")
	}

	return texts, names, nil
}

func readAll(f *os.File) (string, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String(), scanner.Err()
}

// writeOutput writes one transcription under <outputDir>/<lang>/.
func writeOutput(outputDir, lang, name string, ssmlOut bool, content string) (string, error) {
	dir := filepath.Join(outputDir, lang)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	ext := ".ipa.txt"
	if ssmlOut {
		ext = ".ssml"
	}
	path := filepath.Join(dir, name+ext)
	return path, os.WriteFile(path, []byte(content+"\n"), 0644)
}
