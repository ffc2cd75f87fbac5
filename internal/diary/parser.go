package diary

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NicholasBallard/calories-parse/internal/logger"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Parser turns a raw diary into table rows using one fixed Config.
// A Parser holds only compiled patterns and is safe to reuse.
type Parser struct {
	cfg        Config
	days       *DayExtractor
	structurer *Structurer
}

// NewParser compiles every pattern in cfg.
func NewParser(cfg Config) (*Parser, error) {
	normalizer, err := NewNormalizer(cfg.Rules)
	if err != nil {
		return nil, err
	}
	days, err := NewDayExtractor(cfg.DatePattern)
	if err != nil {
		return nil, fmt.Errorf("date pattern: %w", err)
	}
	structurer, err := NewStructurer(cfg, normalizer)
	if err != nil {
		return nil, err
	}
	return &Parser{cfg: cfg, days: days, structurer: structurer}, nil
}

// Config returns the configuration the parser was built with.
func (p *Parser) Config() Config {
	return p.cfg
}

// ParseRecord lower-cases raw once and builds the hierarchical record.
func (p *Parser) ParseRecord(raw string) (*LogRecord, error) {
	text := PrepareText(raw)
	dates := p.days.Dates(text)
	blocks := p.days.Blocks(text)
	logger.Debug("found %d date lines", len(dates))
	return p.structurer.Structure(dates, blocks)
}

// Parse returns the flattened rows for raw. Empty input yields no rows.
func (p *Parser) Parse(raw string) ([]TableRow, error) {
	rec, err := p.ParseRecord(raw)
	if err != nil {
		return nil, err
	}
	rows := Flatten(rec)
	logger.Debug("flattened %d days into %d rows", len(rec.Days), len(rows))
	return rows, nil
}

// PrepareText unifies line endings and lower-cases the whole log.
func PrepareText(raw string) string {
	return cases.Lower(language.Und).String(lineEndings.Replace(raw))
}
