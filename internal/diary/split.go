package diary

import (
	"fmt"
	"regexp"
	"strings"
)

// Splitter breaks a block of text on a delimiter pattern and cleans the pieces.
type Splitter struct {
	re         *regexp.Regexp
	normalizer *Normalizer
}

// NewSplitter compiles pattern in multi-line mode so ^ and $ anchor at line
// boundaries while a match may still span the whole block.
func NewSplitter(pattern string, normalizer *Normalizer) (*Splitter, error) {
	re, err := compileMultiline(pattern)
	if err != nil {
		return nil, err
	}
	return &Splitter{re: re, normalizer: normalizer}, nil
}

// Split returns the cleaned fragments between delimiter matches, in order.
// The delimiter text itself is never part of a fragment.
func (s *Splitter) Split(block string) []string {
	return s.normalizer.Clean(s.re.Split(block, -1))
}

// Sections splits block and drops only the fragments that are exactly empty,
// which happens when the block opens or closes with a delimiter. The rest are
// trimmed and keep their position even when nothing but whitespace was there,
// so a section's place in the slice is its place in the source.
func (s *Splitter) Sections(block string) []string {
	parts := s.re.Split(block, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

func compileMultiline(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidRule, pattern, err)
	}
	return re, nil
}
