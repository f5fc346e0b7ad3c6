package metrics

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Reporter writes run metrics under <outputDir>/metrics: latest.json is
// overwritten each run, run_<id>.json is kept per run, and history.jsonl
// accumulates one compact line per run.
type Reporter struct {
	outputDir   string
	historyFile string
}

// NewReporter creates a reporter rooted at outputDir.
func NewReporter(outputDir string) *Reporter {
	metricsDir := filepath.Join(outputDir, "metrics")
	os.MkdirAll(metricsDir, 0755)

	return &Reporter{
		outputDir:   metricsDir,
		historyFile: filepath.Join(metricsDir, "history.jsonl"),
	}
}

// Write persists a run report.
func (r *Reporter) Write(run *RunMetrics) error {
	latestPath := filepath.Join(r.outputDir, "latest.json")
	if err := r.writeJSON(latestPath, run); err != nil {
		return fmt.Errorf("write latest.json: %w", err)
	}

	runPath := filepath.Join(r.outputDir, fmt.Sprintf("run_%s.json", run.RunID))
	if err := r.writeJSON(runPath, run); err != nil {
		return fmt.Errorf("write run file: %w", err)
	}

	if err := r.appendHistory(run); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (r *Reporter) writeJSON(path string, run *RunMetrics) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(run)
}

func (r *Reporter) appendHistory(run *RunMetrics) error {
	file, err := os.OpenFile(r.historyFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	line, err := json.Marshal(run)
	if err != nil {
		return err
	}
	_, err = file.WriteString(string(line) + "\n")
	return err
}

// ReadHistory returns the last limit runs from history, oldest first.
func (r *Reporter) ReadHistory(limit int) ([]*RunMetrics, error) {
	file, err := os.Open(r.historyFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var runs []*RunMetrics
	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		var run RunMetrics
		if err := json.Unmarshal(scanner.Bytes(), &run); err != nil {
			continue // skip malformed lines
		}
		runs = append(runs, &run)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if limit > 0 && len(runs) > limit {
		runs = runs[len(runs)-limit:]
	}
	return runs, nil
}

// LastRun returns the most recent run from history, nil without one.
func (r *Reporter) LastRun() (*RunMetrics, error) {
	runs, err := r.ReadHistory(1)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return runs[0], nil
}

// Comparison is the difference between two runs.
type Comparison struct {
	CurrentRunID  string  `json:"current_run_id"`
	PreviousRunID string  `json:"previous_run_id"`
	SpeedupFactor float64 `json:"speedup_factor"`
	WordsDiff     int64   `json:"words_diff"`
}

// CompareRuns compares the current run against a previous one.
func CompareRuns(current, previous *RunMetrics) *Comparison {
	if current == nil || previous == nil {
		return nil
	}

	speedup := float64(1)
	if current.Totals.DurationMs > 0 {
		speedup = float64(previous.Totals.DurationMs) / float64(current.Totals.DurationMs)
	}

	currentWords := current.Totals.WordsMatched + current.Totals.WordsFallback
	previousWords := previous.Totals.WordsMatched + previous.Totals.WordsFallback

	return &Comparison{
		CurrentRunID:  current.RunID,
		PreviousRunID: previous.RunID,
		SpeedupFactor: speedup,
		WordsDiff:     currentWords - previousWords,
	}
}

// FormatComparison returns a human-readable comparison line.
func FormatComparison(c *Comparison) string {
	if c == nil {
		return "No previous run to compare"
	}

	direction := "faster"
	if c.SpeedupFactor < 1 {
		direction = "slower"
	}
	return fmt.Sprintf("%.2fx %s than previous run (%+d words)", c.SpeedupFactor, direction, c.WordsDiff)
}
