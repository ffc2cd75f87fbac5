package diary

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type compiledRule struct {
	re   *regexp.Regexp
	repl string

	// Go's \b only knows ASCII word characters. A pattern that starts or
	// ends with \b has that edge re-checked against Unicode letters, so
	// "brûlée" is one word and its "l" is left alone.
	leading  bool
	trailing bool
}

// Normalizer cleans single text fragments: trim, drop blanks, then run the
// substitution rules in their configured order.
type Normalizer struct {
	rules []compiledRule
}

// NewNormalizer compiles rules in order. A nil or empty slice yields a
// normalizer that only trims and drops blanks.
func NewNormalizer(rules []Rule) (*Normalizer, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: substitution %d %q: %v", ErrInvalidRule, i+1, rule.Pattern, err)
		}
		compiled = append(compiled, compiledRule{
			re:       re,
			repl:     rule.Replacement,
			leading:  strings.HasPrefix(rule.Pattern, `\b`),
			trailing: endsWithBoundary(rule.Pattern),
		})
	}
	return &Normalizer{rules: compiled}, nil
}

// Normalize returns the cleaned fragment, or false when it is blank and
// should be removed from the enclosing sequence.
func (n *Normalizer) Normalize(fragment string) (string, bool) {
	text := strings.TrimSpace(fragment)
	if text == "" {
		return "", false
	}
	if n == nil {
		return text, true
	}
	// Each rule sees the output of the previous one.
	for _, rule := range n.rules {
		text = rule.apply(text)
	}
	return text, true
}

// Clean normalizes every fragment, keeping order and omitting blanks.
func (n *Normalizer) Clean(fragments []string) []string {
	out := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if text, ok := n.Normalize(fragment); ok {
			out = append(out, text)
		}
	}
	return out
}

func (r compiledRule) apply(text string) string {
	if !r.leading && !r.trailing {
		return r.re.ReplaceAllString(text, r.repl)
	}
	matches := r.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		if r.leading && isWordRune(runeBefore(text, m[0])) {
			continue
		}
		if r.trailing && isWordRune(runeAfter(text, m[1])) {
			continue
		}
		b.WriteString(text[last:m[0]])
		b.Write(r.re.ExpandString(nil, r.repl, text, m))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func runeBefore(text string, i int) rune {
	if i == 0 {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return r
}

func runeAfter(text string, i int) rune {
	if i >= len(text) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return r
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

// endsWithBoundary reports whether pattern ends in a \b assertion rather than
// an escaped backslash followed by a literal b.
func endsWithBoundary(pattern string) bool {
	if !strings.HasSuffix(pattern, `\b`) {
		return false
	}
	slashes := 0
	for i := len(pattern) - 2; i >= 0 && pattern[i] == '\\'; i-- {
		slashes++
	}
	return slashes%2 == 1
}
