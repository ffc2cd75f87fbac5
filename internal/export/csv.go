package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the header and every record.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range t.Records {
		if err := cw.Write(rec.Strings()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeCSV renders the table as a complete CSV document.
func EncodeCSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
