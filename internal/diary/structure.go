package diary

import (
	"fmt"
	"strings"

	"github.com/NicholasBallard/calories-parse/internal/logger"
)

// AlignmentPolicy decides what happens when date tokens and day blocks differ in count.
type AlignmentPolicy uint8

const (
	// AlignTruncate pairs up to the shorter sequence and drops the rest.
	AlignTruncate AlignmentPolicy = iota
	// AlignStrict refuses to pair sequences of different length.
	AlignStrict
)

// String implements fmt.Stringer.
func (p AlignmentPolicy) String() string {
	switch p {
	case AlignStrict:
		return "strict"
	default:
		return "truncate"
	}
}

// DayPair is one date token matched with its day block.
type DayPair struct {
	Date  DateToken
	Block string
}

// Pair matches dates and blocks by position according to policy.
func Pair(dates []DateToken, blocks []string, policy AlignmentPolicy) ([]DayPair, error) {
	n := min(len(dates), len(blocks))
	if len(dates) != len(blocks) {
		if policy == AlignStrict {
			return nil, fmt.Errorf("%w: %d dates, %d day blocks", ErrAlignmentMismatch, len(dates), len(blocks))
		}
		logger.Warn("pairing %d dates with %d day blocks; keeping %d", len(dates), len(blocks), n)
	}
	pairs := make([]DayPair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, DayPair{Date: dates[i], Block: blocks[i]})
	}
	return pairs, nil
}

// Structurer turns paired day blocks into a LogRecord.
type Structurer struct {
	meals     *Splitter
	items     *Splitter
	alignment AlignmentPolicy
}

// NewStructurer wires the meal and item splitters. Substitutions run once,
// on items.
func NewStructurer(cfg Config, items *Normalizer) (*Structurer, error) {
	meals, err := NewSplitter(cfg.MealDelimiter, nil)
	if err != nil {
		return nil, fmt.Errorf("meal delimiter: %w", err)
	}
	lines, err := NewSplitter(cfg.ItemDelimiter, items)
	if err != nil {
		return nil, fmt.Errorf("item delimiter: %w", err)
	}
	return &Structurer{meals: meals, items: lines, alignment: cfg.Alignment}, nil
}

// Structure builds the date -> meal -> items hierarchy.
func (s *Structurer) Structure(dates []DateToken, blocks []string) (*LogRecord, error) {
	pairs, err := Pair(dates, blocks, s.alignment)
	if err != nil {
		return nil, err
	}
	rec := NewLogRecord()
	for _, pair := range pairs {
		// A blank section between two delimiters still takes a meal number.
		sections := s.meals.Sections(strings.TrimSpace(pair.Block))
		meals := make([]Meal, 0, len(sections))
		for i, section := range sections {
			meals = append(meals, Meal{Index: i + 1, Items: s.items.Split(section)})
		}
		if rec.Put(pair.Date, meals) {
			logger.Warn("date %s appears again; its meals replace the earlier entry", pair.Date)
		}
	}
	return rec, nil
}
