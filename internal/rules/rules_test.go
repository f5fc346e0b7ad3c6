package rules

import (
	"testing"
)

func TestRuleSimpleReplace(t *testing.T) {
	rule, err := NewRule("c", "k", "", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := rule.Apply("cocoa"); got != "kokoa" {
		t.Errorf("Apply(cocoa) = %q, want %q", got, "kokoa")
	}
}

func TestRuleWithContext(t *testing.T) {
	groups := map[string]string{"vowel": "a|e|i|o|u"}

	rule, err := NewRule("s", "z", "::vowel::", "::vowel::", groups)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		word string
		want string
	}{
		{"casa", "caza"},    // intervocalic
		{"sala", "sala"},    // word-initial, no left context
		{"pasta", "pasta"},  // consonant on the right
		{"osasis", "ozasis"},
	}
	for _, tt := range tests {
		if got := rule.Apply(tt.word); got != tt.want {
			t.Errorf("Apply(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestRuleBoundaryAnchors(t *testing.T) {
	// Final e deletion
	final, err := NewRule("e", "0", "", "#", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := final.Apply("time"); got != "tim" {
		t.Errorf("final-e Apply(time) = %q, want %q", got, "tim")
	}
	if got := final.Apply("epee"); got != "epe" {
		t.Errorf("final-e Apply(epee) = %q, want %q", got, "epe")
	}

	// Initial h deletion
	initial, err := NewRule("h", "0", "#", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := initial.Apply("hache"); got != "ache" {
		t.Errorf("initial-h Apply(hache) = %q, want %q", got, "ache")
	}
}

func TestDeletionMarker(t *testing.T) {
	rule, err := NewRule("gh", "0", "", "t", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := rule.Apply("night"); got != "nit" {
		t.Errorf("Apply(night) = %q, want %q", got, "nit")
	}
}

func TestProcessorPipeline(t *testing.T) {
	r1, _ := NewRule("a", "b", "", "", nil)
	r2, _ := NewRule("b", "c", "", "", nil)
	p := NewProcessor([]*Rule{r1, r2})

	// r2 sees r1's output, so every a ends up as c.
	if got := p.Process("aba"); got != "ccc" {
		t.Errorf("Process(aba) = %q, want %q", got, "ccc")
	}
}

func TestProcessorEmptyIsIdentity(t *testing.T) {
	p := NewProcessor(nil)
	if got := p.Process("unchanged"); got != "unchanged" {
		t.Errorf("Process = %q, want input back", got)
	}

	var nilProc *Processor
	if got := nilProc.Process("still"); got != "still" {
		t.Errorf("nil Process = %q, want input back", got)
	}
}

func TestParseSource(t *testing.T) {
	source := `
::vowel:: = a|e|i|o|u

s -> z / ::vowel:: _ ::vowel::
e -> 0 / _ #
c -> k
`
	p := ParseSource(source)
	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3", p.Len())
	}

	tests := []struct {
		word string
		want string
	}{
		{"case", "kaz"},   // intervocalic s, final e dropped, c -> k
		{"cose", "koz"},
		{"sec", "sek"},
	}
	for _, tt := range tests {
		if got := p.Process(tt.word); got != tt.want {
			t.Errorf("Process(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestParseSourceIgnoresJunk(t *testing.T) {
	source := `
this is not a rule
::broken
a -> b
`
	p := ParseSource(source)
	if p.Len() != 1 {
		t.Fatalf("Len = %d, want 1", p.Len())
	}
	if got := p.Process("aaa"); got != "bbb" {
		t.Errorf("Process(aaa) = %q, want %q", got, "bbb")
	}
}

func TestParseSourceEmpty(t *testing.T) {
	p := ParseSource("")
	if p.Len() != 0 {
		t.Errorf("Len = %d, want 0", p.Len())
	}
	if got := p.Process("word"); got != "word" {
		t.Errorf("Process = %q, want input back", got)
	}
}

func BenchmarkProcess(b *testing.B) {
	source := `
::vowel:: = a|e|i|o|u
s -> z / ::vowel:: _ ::vowel::
e -> 0 / _ #
`
	p := ParseSource(source)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Process("paradise")
	}
}
