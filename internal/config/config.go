// Package config gathers the CLI's settings from the environment, an optional
// .env file and an optional TOML rule file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/NicholasBallard/calories-parse/internal/diary"
)

// Environment variables read by Load.
const (
	EnvInput     = "CALORIES_INPUT"
	EnvOutput    = "CALORIES_OUTPUT"
	EnvXLSX      = "CALORIES_XLSX"
	EnvSQLite    = "CALORIES_SQLITE"
	EnvConfig    = "CALORIES_CONFIG"
	EnvClipboard = "CALORIES_CLIPBOARD"
	EnvStrict    = "CALORIES_STRICT"
)

// ErrInvalidConfig is returned when the rule file holds unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved set of CLI settings.
type Config struct {
	Input     string
	Output    string
	XLSX      string
	SQLite    string
	Clipboard bool
	Strict    bool

	// RulesPath is the TOML file Rules was read from, if any.
	RulesPath string
	Rules     RuleFile
}

// RuleFile mirrors the TOML layout:
//
//	replace_defaults = false
//
//	[patterns]
//	date = '^\d{8}$'
//	meal = '^\.$'
//	item = '\n'
//
//	[output]
//	columns = ["food", "date", "meal"]
//	input_date_layout = "20060102"
//	output_date_layout = "2006/01/02"
//
//	[alignment]
//	strict = false
//
//	[[substitution]]
//	pattern = '\bpb\b'
//	replacement = "peanut butter"
type RuleFile struct {
	ReplaceDefaults bool         `toml:"replace_defaults"`
	Patterns        Patterns     `toml:"patterns"`
	Output          Output       `toml:"output"`
	Alignment       Alignment    `toml:"alignment"`
	Substitutions   []diary.Rule `toml:"substitution"`
}

// Patterns overrides the structural regular expressions.
type Patterns struct {
	Date string `toml:"date"`
	Meal string `toml:"meal"`
	Item string `toml:"item"`
}

// Output overrides the exported columns and date layouts.
type Output struct {
	Columns          []string `toml:"columns"`
	InputDateLayout  string   `toml:"input_date_layout"`
	OutputDateLayout string   `toml:"output_date_layout"`
}

// Alignment selects the day pairing policy.
type Alignment struct {
	Strict bool `toml:"strict"`
}

// Load reads .env (if present), the environment, and the rule file at path.
// An empty path falls back to $CALORIES_CONFIG; with neither set no rule file
// is read and the stock rules apply.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Input:     getEnv(EnvInput, ""),
		Output:    getEnv(EnvOutput, ""),
		XLSX:      getEnv(EnvXLSX, ""),
		SQLite:    getEnv(EnvSQLite, ""),
		Clipboard: getEnvBool(EnvClipboard, true),
		Strict:    getEnvBool(EnvStrict, false),
	}

	if path == "" {
		path = strings.TrimSpace(getEnv(EnvConfig, ""))
	}
	if path == "" {
		return cfg, nil
	}

	rules, err := ReadRuleFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg.RulesPath = path
	cfg.Rules = rules
	if rules.Alignment.Strict {
		cfg.Strict = true
	}
	return cfg, nil
}

// ReadRuleFile decodes a TOML rule file.
func ReadRuleFile(path string) (RuleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleFile{}, fmt.Errorf("read rule file: %w", err)
	}
	var rules RuleFile
	if err := toml.Unmarshal(data, &rules); err != nil {
		return RuleFile{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return rules, nil
}

// Diary builds the parser configuration: stock defaults, then rule file
// overrides, then the strict flag.
func (c Config) Diary() (diary.Config, error) {
	out := diary.DefaultConfig()
	f := c.Rules

	if f.Patterns.Date != "" {
		out.DatePattern = f.Patterns.Date
	}
	if f.Patterns.Meal != "" {
		out.MealDelimiter = f.Patterns.Meal
	}
	if f.Patterns.Item != "" {
		out.ItemDelimiter = f.Patterns.Item
	}

	if f.ReplaceDefaults {
		out.Rules = append([]diary.Rule(nil), f.Substitutions...)
	} else {
		out.Rules = append(out.Rules, f.Substitutions...)
	}
	for i, rule := range out.Rules {
		if rule.Pattern == "" {
			return diary.Config{}, fmt.Errorf("%w: substitution %d has an empty pattern", ErrInvalidConfig, i+1)
		}
	}

	if cols := f.Output.Columns; len(cols) > 0 {
		if len(cols) != len(out.Columns) {
			return diary.Config{}, fmt.Errorf("%w: output.columns needs %d names, got %d", ErrInvalidConfig, len(out.Columns), len(cols))
		}
		copy(out.Columns[:], cols)
	}
	if f.Output.InputDateLayout != "" {
		out.InputDateLayout = f.Output.InputDateLayout
	}
	if f.Output.OutputDateLayout != "" {
		out.OutputDateLayout = f.Output.OutputDateLayout
	}

	if c.Strict {
		out.Alignment = diary.AlignStrict
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
