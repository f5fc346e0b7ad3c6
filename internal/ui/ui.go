// Package ui provides terminal UI components using pterm.
package ui

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

// UI wraps pterm components for the transliterator CLIs.
type UI struct {
	quiet   bool
	verbose bool
}

// New creates a new UI instance.
func New(quiet, verbose bool) *UI {
	if quiet {
		pterm.DisableOutput()
	}
	return &UI{quiet: quiet, verbose: verbose}
}

// Banner prints the application banner.
func (u *UI) Banner() {
	pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("pho", pterm.NewStyle(pterm.FgCyan)),
		pterm.NewLettersFromStringWithStyle("netics", pterm.NewStyle(pterm.FgLightBlue)),
	).Render()

	pterm.DefaultCenter.Println(
		pterm.FgGray.Sprint("Text to IPA Transliterator"),
	)
	fmt.Println()
}

// Config prints the configuration summary.
func (u *UI) Config(language, dataDir string, ssmlOut bool, workers int) {
	pterm.DefaultSection.Println("Configuration")

	data := [][]string{
		{"Language", language},
		{"Data Dir", dataDir},
		{"SSML", fmt.Sprintf("%t", ssmlOut)},
		{"Workers", fmt.Sprintf("%d", workers)},
	}

	pterm.DefaultTable.WithData(data).Render()
	fmt.Println()
}

// Phase prints a phase header.
func (u *UI) Phase(number int, total int, name string) {
	pterm.DefaultSection.WithLevel(2).Println(
		fmt.Sprintf("[%d/%d] %s", number, total, name),
	)
}

// Spinner creates a spinner for long operations.
func (u *UI) Spinner(message string) *pterm.SpinnerPrinter {
	spinner, _ := pterm.DefaultSpinner.
		WithRemoveWhenDone(true).
		Start(message)
	return spinner
}

// LanguageStatus prints status for a language operation.
func (u *UI) LanguageStatus(lang string, status string, details string) {
	prefix := pterm.FgCyan.Sprintf("[%s]", lang)
	switch status {
	case "ok":
		pterm.Success.Println(prefix, details)
	case "skip":
		pterm.Warning.Println(prefix, details)
	case "error":
		pterm.Error.Println(prefix, details)
	case "info":
		pterm.Info.Println(prefix, details)
	default:
		fmt.Printf("%s %s\n", prefix, details)
	}
}

// Translation prints a source/result pair in a panel.
func (u *UI) Translation(source, result string) {
	panel := pterm.DefaultBox.WithTitle("Translation").Sprint(
		fmt.Sprintf("  %s\n  %s",
			pterm.FgGray.Sprint(source),
			pterm.FgGreen.Sprint(result),
		),
	)
	fmt.Println(panel)
}

// ScanStats prints the token statistics of a run.
func (u *UI) ScanStats(matched, fallback, literal int64) {
	data := pterm.TableData{
		{"Tokens", "Count"},
		{"Dictionary matches", fmt.Sprintf("%d", matched)},
		{"Orthography fallbacks", fmt.Sprintf("%d", fallback)},
		{"Literal runes", fmt.Sprintf("%d", literal)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	fmt.Println()
}

// FinalReport prints the final summary report.
func (u *UI) FinalReport(texts int, words int64, duration time.Duration) {
	pterm.DefaultSection.Println("Summary")

	panel := pterm.DefaultBox.WithTitle("Results").Sprint(
		fmt.Sprintf(
			"  Texts:      %s\n"+
				"  Words:      %s\n"+
				"  Duration:   %s",
			pterm.FgCyan.Sprintf("%d", texts),
			pterm.FgGreen.Sprintf("%d", words),
			pterm.FgYellow.Sprint(duration.Round(time.Millisecond)),
		),
	)
	fmt.Println(panel)
}

// Success prints a success message.
func (u *UI) Success(message string) {
	pterm.Success.Println(message)
}

// Error prints an error message.
func (u *UI) Error(message string) {
	pterm.Error.Println(message)
}

// Warning prints a warning message.
func (u *UI) Warning(message string) {
	pterm.Warning.Println(message)
}

// Info prints an info message.
func (u *UI) Info(message string) {
	pterm.Info.Println(message)
}

// Debug prints a debug message (only in verbose mode).
func (u *UI) Debug(message string) {
	if u.verbose {
		pterm.Debug.Println(message)
	}
}

// Done prints the completion message.
func (u *UI) Done() {
	fmt.Println()
	pterm.DefaultCenter.Println(
		pterm.FgGreen.Sprint("✓ Done!"),
	)
}
