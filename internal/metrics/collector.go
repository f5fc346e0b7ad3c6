// Package metrics collects and reports per-run translation metrics.
package metrics

import (
	"crypto/rand"
	"encoding/hex"
	"runtime"
	"time"
)

// StageMetrics times a single stage of a run (resource loading, text
// scanning).
type StageMetrics struct {
	Name       string           `json:"name"`
	StartTime  time.Time        `json:"start_time"`
	EndTime    time.Time        `json:"end_time"`
	DurationMs int64            `json:"duration_ms"`
	Counters   map[string]int64 `json:"counters,omitempty"`
}

// TotalMetrics aggregates a whole run.
type TotalMetrics struct {
	DurationMs    int64   `json:"duration_ms"`
	Languages     int     `json:"languages"`
	WordsMatched  int64   `json:"words_matched"`
	WordsFallback int64   `json:"words_fallback"`
	LiteralRunes  int64   `json:"literal_runes"`
	Throughput    float64 `json:"throughput_words_per_sec"`
}

// EnvironmentInfo records where the run executed.
type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	GOOS      string `json:"goos"`
	GOARCH    string `json:"goarch"`
	NumCPU    int    `json:"num_cpu"`
}

// RunMetrics is the full report for one translation run.
type RunMetrics struct {
	RunID       string                   `json:"run_id"`
	Timestamp   time.Time                `json:"timestamp"`
	Config      map[string]interface{}   `json:"config"`
	Stages      map[string]*StageMetrics `json:"stages"`
	Totals      *TotalMetrics            `json:"totals"`
	Environment *EnvironmentInfo         `json:"environment"`
}

// Collector accumulates metrics while a run executes.
type Collector struct {
	runID       string
	startTime   time.Time
	config      map[string]interface{}
	stages      map[string]*StageMetrics
	activeStage string
}

// NewCollector creates a collector with a fresh run id.
func NewCollector() *Collector {
	return &Collector{
		runID:     generateRunID(),
		startTime: time.Now(),
		config:    make(map[string]interface{}),
		stages:    make(map[string]*StageMetrics),
	}
}

func generateRunID() string {
	timestamp := time.Now().Format("20060102-150405")
	bytes := make([]byte, 4)
	rand.Read(bytes)
	return timestamp + "-" + hex.EncodeToString(bytes)
}

// SetConfig stores one configuration value for the report.
func (c *Collector) SetConfig(key string, value interface{}) {
	c.config[key] = value
}

// StartStage begins timing a stage and makes it active.
func (c *Collector) StartStage(name string) {
	c.activeStage = name
	c.stages[name] = &StageMetrics{
		Name:      name,
		StartTime: time.Now(),
		Counters:  make(map[string]int64),
	}
}

// EndStage completes timing for a stage.
func (c *Collector) EndStage(name string) {
	if stage, ok := c.stages[name]; ok {
		stage.EndTime = time.Now()
		stage.DurationMs = stage.EndTime.Sub(stage.StartTime).Milliseconds()
	}
}

// AddCounter increments a counter on the active stage.
func (c *Collector) AddCounter(name string, delta int64) {
	if stage, ok := c.stages[c.activeStage]; ok {
		stage.Counters[name] += delta
	}
}

// SetStageCounter sets a counter on a specific stage.
func (c *Collector) SetStageCounter(stage, name string, value int64) {
	if s, ok := c.stages[stage]; ok {
		s.Counters[name] = value
	}
}

// StageDuration returns the duration of a completed stage.
func (c *Collector) StageDuration(name string) time.Duration {
	if stage, ok := c.stages[name]; ok && !stage.EndTime.IsZero() {
		return stage.EndTime.Sub(stage.StartTime)
	}
	return 0
}

// RunID returns the run identifier.
func (c *Collector) RunID() string {
	return c.runID
}

// Finalize closes the run and builds the report.
func (c *Collector) Finalize(languages int, matched, fallback, literal int64) *RunMetrics {
	totalDuration := time.Since(c.startTime)

	words := matched + fallback
	throughput := float64(0)
	if totalDuration.Seconds() > 0 {
		throughput = float64(words) / totalDuration.Seconds()
	}

	return &RunMetrics{
		RunID:     c.runID,
		Timestamp: c.startTime,
		Config:    c.config,
		Stages:    c.stages,
		Totals: &TotalMetrics{
			DurationMs:    totalDuration.Milliseconds(),
			Languages:     languages,
			WordsMatched:  matched,
			WordsFallback: fallback,
			LiteralRunes:  literal,
			Throughput:    throughput,
		},
		Environment: &EnvironmentInfo{
			GoVersion: runtime.Version(),
			GOOS:      runtime.GOOS,
			GOARCH:    runtime.GOARCH,
			NumCPU:    runtime.NumCPU(),
		},
	}
}
