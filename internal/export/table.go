// Package export renders parsed diary rows for spreadsheets: CSV files, the
// clipboard, XLSX workbooks and a SQLite table.
package export

import (
	"errors"
	"strconv"
	"time"

	"github.com/NicholasBallard/calories-parse/internal/diary"
)

// Record is one formatted output row.
type Record struct {
	Food string
	Date string
	Meal int
}

// Strings returns the record as spreadsheet cells.
func (r Record) Strings() []string {
	return []string{r.Food, r.Date, strconv.Itoa(r.Meal)}
}

// Table is the header plus formatted records shared by every sink.
type Table struct {
	Header  []string
	Records []Record
}

// Len returns the number of records.
func (t Table) Len() int {
	return len(t.Records)
}

// FormatDate re-renders a date token from inLayout to outLayout.
func FormatDate(token, inLayout, outLayout string) (string, error) {
	parsed, err := time.Parse(inLayout, token)
	if err != nil {
		return "", &MalformedDateError{Token: token, Err: err}
	}
	return parsed.Format(outLayout), nil
}

// BuildTable formats rows with the configured columns and date layouts. The
// first unparseable date aborts the build.
func BuildTable(rows []diary.TableRow, cfg diary.Config) (Table, error) {
	t := Table{
		Header:  cfg.Columns[:],
		Records: make([]Record, 0, len(rows)),
	}
	for i, row := range rows {
		date, err := FormatDate(string(row.Date), cfg.InputDateLayout, cfg.OutputDateLayout)
		if err != nil {
			var mde *MalformedDateError
			if errors.As(err, &mde) {
				mde.Row = i + 1
			}
			return Table{}, err
		}
		t.Records = append(t.Records, Record{Food: row.Item, Date: date, Meal: row.Meal})
	}
	return t, nil
}
