// Package rules implements context-sensitive phonological rewrite rules.
//
// A rule source is a text block holding character-group definitions
//
//	::vowel:: = a|e|i|o|u
//
// and rewrite rules of the form
//
//	PATTERN -> REPLACEMENT / PREFIX _ SUFFIX
//
// The prefix and suffix give the left and right context around the cursor
// marker. A "#" in a context is a word boundary and a literal "0"
// replacement deletes the matched pattern.
package rules

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	groupLine = regexp.MustCompile(`(?m)^[ \t]*::([A-Za-z][A-Za-z0-9_-]*)::[ \t]*=[ \t]*(\S+)[ \t]*$`)
	ruleLine  = regexp.MustCompile(`(?m)^[ \t]*(\S+)[ \t]*->[ \t]*(\S+)(?:[ \t]*/[ \t]*(\S*)[ \t]*_[ \t]*(\S*))?[ \t]*$`)
	groupRef  = regexp.MustCompile(`::([A-Za-z][A-Za-z0-9_-]*)::`)
)

// Rule is a single compiled rewrite. The contextual pattern
// (prefix)(toReplace)(suffix) is compiled once at construction and applied
// to all non-overlapping matches, left to right.
type Rule struct {
	ToReplace   string
	Replacement string
	Prefix      string
	Suffix      string

	pattern *regexp.Regexp
}

// NewRule compiles a rule from its four raw fields. Character-group
// references are expanded from groups before compilation; "#" becomes a
// start-of-string anchor in the prefix and an end-of-string anchor in the
// suffix. A replacement of "0" means deletion.
func NewRule(toReplace, replacement, prefix, suffix string, groups map[string]string) (*Rule, error) {
	if replacement == "0" {
		replacement = ""
	}

	pre := strings.ReplaceAll(expandGroups(prefix, groups), "#", "^")
	suf := strings.ReplaceAll(expandGroups(suffix, groups), "#", "$")
	target := expandGroups(toReplace, groups)

	pattern, err := regexp.Compile("(" + pre + ")(" + target + ")(" + suf + ")")
	if err != nil {
		return nil, fmt.Errorf("compile rule %q -> %q: %w", toReplace, replacement, err)
	}

	return &Rule{
		ToReplace:   toReplace,
		Replacement: replacement,
		Prefix:      prefix,
		Suffix:      suffix,
		pattern:     pattern,
	}, nil
}

// expandGroups substitutes ::name:: references with non-capturing
// alternations. Unknown references are left untouched.
func expandGroups(s string, groups map[string]string) string {
	return groupRef.ReplaceAllStringFunc(s, func(ref string) string {
		name := ref[2 : len(ref)-2]
		if options, ok := groups[name]; ok {
			return "(?:" + options + ")"
		}
		return ref
	})
}

// Apply rewrites every match of the rule in word, keeping the prefix and
// suffix context intact.
func (r *Rule) Apply(word string) string {
	return r.pattern.ReplaceAllString(word, "${1}"+r.Replacement+"${3}")
}

// Processor is an ordered rule pipeline for one language and phase.
type Processor struct {
	rules []*Rule
}

// NewProcessor creates a processor over an ordered rule list.
func NewProcessor(rules []*Rule) *Processor {
	return &Processor{rules: rules}
}

// ParseSource extracts character groups and rules from a rule-source body.
// Rules apply in file order. Lines that match neither form are ignored,
// as are rules that fail to compile.
func ParseSource(source string) *Processor {
	groups := make(map[string]string)
	for _, m := range groupLine.FindAllStringSubmatch(source, -1) {
		groups[m[1]] = m[2]
	}

	var compiled []*Rule
	for _, m := range ruleLine.FindAllStringSubmatch(source, -1) {
		rule, err := NewRule(m[1], m[2], m[3], m[4], groups)
		if err != nil {
			continue
		}
		compiled = append(compiled, rule)
	}
	return NewProcessor(compiled)
}

// Process runs the word through every rule in order, each rule consuming
// the previous rule's output. With no rules loaded the word is returned
// unchanged.
func (p *Processor) Process(word string) string {
	if p == nil {
		return word
	}
	for _, rule := range p.rules {
		word = rule.Apply(word)
	}
	return word
}

// Len returns the number of loaded rules.
func (p *Processor) Len() int {
	if p == nil {
		return 0
	}
	return len(p.rules)
}
