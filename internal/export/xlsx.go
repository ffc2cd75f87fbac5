package export

import "github.com/xuri/excelize/v2"

// NewWorkbook lays the table out on the first sheet, header in row 1.
func NewWorkbook(t Table) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range t.Header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, rec := range t.Records {
		r := i + 2
		values := []any{rec.Food, rec.Date, rec.Meal}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, r)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// EncodeXLSX renders the table as the bytes of an .xlsx workbook.
func EncodeXLSX(t Table) ([]byte, error) {
	f, err := NewWorkbook(t)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
