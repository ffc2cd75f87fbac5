package diary

// DateToken is an 8-digit YYYYMMDD string identifying one day block.
// The core only matches its shape; calendar validity is checked at export.
type DateToken string

// Meal holds the items recorded under one meal section of a day.
// Index is 1-based and resets for every day.
type Meal struct {
	Index int
	Items []string
}

// Day groups the meals logged beneath a single date token.
type Day struct {
	Date  DateToken
	Meals []Meal
}

// TableRow is the flattened (item, date, meal) output unit.
type TableRow struct {
	Item string
	Date DateToken
	Meal int
}

// LogRecord maps date tokens to their meals, preserving the order in which
// dates were first encountered.
type LogRecord struct {
	Days []Day

	// Duplicates counts date tokens that replaced an earlier day's meals.
	Duplicates int

	index map[DateToken]int
}

// NewLogRecord returns an empty record ready for Put.
func NewLogRecord() *LogRecord {
	return &LogRecord{index: make(map[DateToken]int)}
}

// Put stores meals under date. A date seen before keeps its original position
// but its meals are replaced wholesale; Put reports whether that happened.
func (r *LogRecord) Put(date DateToken, meals []Meal) (replaced bool) {
	if r.index == nil {
		r.index = make(map[DateToken]int)
	}
	if pos, ok := r.index[date]; ok {
		r.Days[pos].Meals = meals
		r.Duplicates++
		return true
	}
	r.index[date] = len(r.Days)
	r.Days = append(r.Days, Day{Date: date, Meals: meals})
	return false
}

func (r *LogRecord) lookup(date DateToken) (Day, bool) {
	if r == nil {
		return Day{}, false
	}
	pos, ok := r.index[date]
	if !ok {
		return Day{}, false
	}
	return r.Days[pos], true
}

func (r *LogRecord) dates() []DateToken {
	if r == nil {
		return nil
	}
	dates := make([]DateToken, 0, len(r.Days))
	for _, day := range r.Days {
		dates = append(dates, day.Date)
	}
	return dates
}

// ItemCount totals the items across every day and meal.
func (r *LogRecord) ItemCount() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, day := range r.Days {
		for _, meal := range day.Meals {
			total += len(meal.Items)
		}
	}
	return total
}
