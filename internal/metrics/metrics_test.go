package metrics

import (
	"testing"
	"time"
)

func TestCollectorStages(t *testing.T) {
	c := NewCollector()
	c.SetConfig("language", "en")

	c.StartStage("load")
	c.AddCounter("words_loaded", 100)
	c.EndStage("load")

	c.StartStage("scan")
	c.AddCounter("words_matched", 8)
	c.AddCounter("words_matched", 2)
	c.EndStage("scan")

	run := c.Finalize(1, 10, 3, 25)

	if run.RunID == "" {
		t.Error("RunID empty")
	}
	if len(run.Stages) != 2 {
		t.Fatalf("Stages = %d, want 2", len(run.Stages))
	}
	if run.Stages["load"].Counters["words_loaded"] != 100 {
		t.Errorf("load counter = %d", run.Stages["load"].Counters["words_loaded"])
	}
	if run.Stages["scan"].Counters["words_matched"] != 10 {
		t.Errorf("scan counter = %d", run.Stages["scan"].Counters["words_matched"])
	}
	if run.Totals.WordsMatched != 10 || run.Totals.WordsFallback != 3 || run.Totals.LiteralRunes != 25 {
		t.Errorf("Totals = %+v", run.Totals)
	}
	if run.Config["language"] != "en" {
		t.Errorf("Config = %v", run.Config)
	}
	if run.Environment == nil || run.Environment.GoVersion == "" {
		t.Error("Environment missing")
	}
}

func TestStageDuration(t *testing.T) {
	c := NewCollector()
	c.StartStage("scan")
	time.Sleep(time.Millisecond)
	c.EndStage("scan")

	if c.StageDuration("scan") <= 0 {
		t.Error("StageDuration(scan) = 0")
	}
	if c.StageDuration("missing") != 0 {
		t.Error("StageDuration(missing) != 0")
	}
}

func TestReporterWriteAndHistory(t *testing.T) {
	dir := t.TempDir()
	r := NewReporter(dir)

	last, err := r.LastRun()
	if err != nil || last != nil {
		t.Fatalf("LastRun on empty history = %v, %v", last, err)
	}

	c := NewCollector()
	c.StartStage("scan")
	c.EndStage("scan")
	run := c.Finalize(1, 5, 1, 0)

	if err := r.Write(run); err != nil {
		t.Fatal(err)
	}

	last, err = r.LastRun()
	if err != nil {
		t.Fatal(err)
	}
	if last == nil || last.RunID != run.RunID {
		t.Errorf("LastRun = %+v, want run %s", last, run.RunID)
	}

	run2 := NewCollector().Finalize(1, 7, 0, 0)
	if err := r.Write(run2); err != nil {
		t.Fatal(err)
	}

	history, err := r.ReadHistory(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %d entries, want 2", len(history))
	}
	if history[1].RunID != run2.RunID {
		t.Errorf("history order wrong: %s", history[1].RunID)
	}
}

func TestCompareRuns(t *testing.T) {
	current := &RunMetrics{RunID: "b", Totals: &TotalMetrics{DurationMs: 50, WordsMatched: 10}}
	previous := &RunMetrics{RunID: "a", Totals: &TotalMetrics{DurationMs: 100, WordsMatched: 8}}

	c := CompareRuns(current, previous)
	if c == nil {
		t.Fatal("CompareRuns = nil")
	}
	if c.SpeedupFactor != 2 {
		t.Errorf("SpeedupFactor = %v, want 2", c.SpeedupFactor)
	}
	if c.WordsDiff != 2 {
		t.Errorf("WordsDiff = %d, want 2", c.WordsDiff)
	}

	if CompareRuns(nil, previous) != nil {
		t.Error("CompareRuns(nil, x) != nil")
	}
	if FormatComparison(nil) == "" {
		t.Error("FormatComparison(nil) empty")
	}
}
