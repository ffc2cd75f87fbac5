package diary

import (
	"regexp"
	"strings"

	"github.com/NicholasBallard/calories-parse/internal/logger"
)

// DayExtractor locates date tokens in a lower-cased log.
type DayExtractor struct {
	re *regexp.Regexp
}

// NewDayExtractor compiles the date pattern in multi-line mode.
func NewDayExtractor(pattern string) (*DayExtractor, error) {
	re, err := compileMultiline(pattern)
	if err != nil {
		return nil, err
	}
	return &DayExtractor{re: re}, nil
}

// Dates returns every date token in the order it appears. Repeats are kept.
func (e *DayExtractor) Dates(text string) []DateToken {
	matches := e.re.FindAllString(text, -1)
	dates := make([]DateToken, 0, len(matches))
	for _, m := range matches {
		dates = append(dates, DateToken(m))
	}
	return dates
}

// Blocks returns the day blocks: the text following each date token up to the
// next one. Anything before the first token is not a day and is dropped.
// len(Blocks(t)) always equals len(Dates(t)).
func (e *DayExtractor) Blocks(text string) []string {
	locs := e.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	if preamble := strings.TrimSpace(text[:locs[0][0]]); preamble != "" {
		logger.Warn("ignoring %d bytes before the first date line", len(preamble))
	}
	blocks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, text[loc[1]:end])
	}
	return blocks
}
