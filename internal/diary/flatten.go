package diary

// Flatten emits one row per item: dates in insertion order, meals ascending,
// items in source order.
func Flatten(rec *LogRecord) []TableRow {
	rows := make([]TableRow, 0, rec.ItemCount())
	if rec == nil {
		return rows
	}
	for _, day := range rec.Days {
		for _, meal := range day.Meals {
			for _, item := range meal.Items {
				rows = append(rows, TableRow{Item: item, Date: day.Date, Meal: meal.Index})
			}
		}
	}
	return rows
}
