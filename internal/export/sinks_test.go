package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/NicholasBallard/calories-parse/internal/diary"
)

func sampleTable(t *testing.T) Table {
	t.Helper()
	table, err := BuildTable(sampleRows(), diary.DefaultConfig())
	require.NoError(t, err)
	return table
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable(t)))

	want := "food,date,meal\n" +
		"oz banana,2024/01/05,1\n" +
		"large coffee,2024/01/05,2\n" +
		"\"soup, tomato\",2024/01/06,1\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeCSV(t *testing.T) {
	data, err := EncodeCSV(sampleTable(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable(t)))
	assert.Equal(t, buf.Bytes(), data)
}

func TestClipboardText(t *testing.T) {
	want := "oz banana\t2024/01/05\t1\n" +
		"large coffee\t2024/01/05\t2\n" +
		"soup, tomato\t2024/01/06\t1\n"
	assert.Equal(t, want, ClipboardText(sampleTable(t)))
	assert.Equal(t, "", ClipboardText(Table{}))
}

func TestCopyToClipboard_UsesWriter(t *testing.T) {
	var got string
	err := CopyToClipboard(sampleTable(t), func(text string) error {
		got = text
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, ClipboardText(sampleTable(t)), got)

	boom := errors.New("no clipboard")
	err = CopyToClipboard(sampleTable(t), func(string) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestEncodeXLSX(t *testing.T) {
	data, err := EncodeXLSX(sampleTable(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"food", "date", "meal"}, rows[0])
	assert.Equal(t, []string{"large coffee", "2024/01/05", "2"}, rows[2])
}

func TestSaveSQLite_ReplacesContents(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "calories.db")

	require.NoError(t, SaveSQLite(ctx, path, sampleTable(t)))
	got, err := LoadSQLite(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, sampleTable(t).Records, got)

	smaller := sampleTable(t)
	smaller.Records = smaller.Records[:1]
	require.NoError(t, SaveSQLite(ctx, path, smaller))
	got, err = LoadSQLite(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, smaller.Records, got)
}

func TestLoadSQLite_MissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")
	_, err := LoadSQLite(context.Background(), path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, path)
}
