package diary

const (
	// DefaultDatePattern matches a date line such as 20240105.
	DefaultDatePattern = `^\d{8}$`
	// DefaultMealDelimiter matches a line holding a single period.
	DefaultMealDelimiter = `^\.$`
	// DefaultItemDelimiter splits a meal section into lines.
	DefaultItemDelimiter = `\n`

	// DefaultInputDateLayout is the Go layout of a date token.
	DefaultInputDateLayout = "20060102"
	// DefaultOutputDateLayout renders dates as YYYY/MM/DD in exports.
	DefaultOutputDateLayout = "2006/01/02"
)

// DefaultColumns are the spreadsheet headers in row order.
var DefaultColumns = [3]string{"food", "date", "meal"}

// Rule is one ordered pattern -> replacement substitution applied to items.
// Replacement may reference capture groups with $1 or ${1}.
type Rule struct {
	Pattern     string `toml:"pattern"`
	Replacement string `toml:"replacement"`
}

// DefaultRules returns the stock abbreviation expansions in the order they run.
// Every rule is written so that its output never matches it again. Word
// boundaries count accented letters as part of a word.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: `\bbs\b`, Replacement: "brown sugar"},
		{Pattern: `\bmed\b`, Replacement: "medium"},
		{Pattern: `\bpop\b`, Replacement: "popcorn"},
		{Pattern: `\bl\b`, Replacement: "large"},
		{Pattern: `(^|[^'\pL\pN\pM_])s\b`, Replacement: "${1}small"},
		{Pattern: `\bgf\b`, Replacement: "gluten free"},
		{Pattern: `g banana( peeled)?\b`, Replacement: "g banana peeled"},
	}
}

// Config carries every pattern and layout the parser needs. Build one with
// DefaultConfig and override fields; nothing in this package reads globals.
type Config struct {
	DatePattern   string
	MealDelimiter string
	ItemDelimiter string
	Rules         []Rule

	Columns          [3]string
	InputDateLayout  string
	OutputDateLayout string

	Alignment AlignmentPolicy
}

// DefaultConfig returns the stock diary conventions.
func DefaultConfig() Config {
	return Config{
		DatePattern:      DefaultDatePattern,
		MealDelimiter:    DefaultMealDelimiter,
		ItemDelimiter:    DefaultItemDelimiter,
		Rules:            DefaultRules(),
		Columns:          DefaultColumns,
		InputDateLayout:  DefaultInputDateLayout,
		OutputDateLayout: DefaultOutputDateLayout,
		Alignment:        AlignTruncate,
	}
}
