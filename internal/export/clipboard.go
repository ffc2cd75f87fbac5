package export

import (
	"strings"

	"github.com/atotto/clipboard"
)

// ClipboardWriter places text on the system clipboard.
type ClipboardWriter func(text string) error

// SystemClipboard writes through the OS clipboard utility.
var SystemClipboard ClipboardWriter = clipboard.WriteAll

// ClipboardText renders records without a header, tab separated, so they
// paste into spreadsheet cells.
func ClipboardText(t Table) string {
	var b strings.Builder
	for _, rec := range t.Records {
		b.WriteString(strings.Join(rec.Strings(), "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// CopyToClipboard sends ClipboardText(t) to write, or the system clipboard when write is nil.
func CopyToClipboard(t Table, write ClipboardWriter) error {
	if write == nil {
		write = SystemClipboard
	}
	return write(ClipboardText(t))
}

// ClipboardAvailable reports whether a system clipboard utility was found.
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}
