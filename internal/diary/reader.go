package diary

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/NicholasBallard/calories-parse/internal/files"
)

// Reader loads the diary file through a files.Manager and parses it.
type Reader struct {
	manager *files.Manager
	parser  *Parser
}

// NewReader wires a reader using the shared files.Manager.
func NewReader(manager *files.Manager, parser *Parser) *Reader {
	return &Reader{manager: manager, parser: parser}
}

// Record reads the input file once and returns its hierarchical record.
func (r *Reader) Record(ctx context.Context) (*LogRecord, error) {
	if r == nil || r.manager == nil || r.parser == nil {
		return nil, errors.New("reader not initialized with file manager and parser")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := r.manager.ReadInput()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, r.manager.InputPath())
		}
		return nil, err
	}
	return r.parser.ParseRecord(raw)
}

// Rows reads the input file once and returns the flattened rows.
func (r *Reader) Rows(ctx context.Context) ([]TableRow, error) {
	rec, err := r.Record(ctx)
	if err != nil {
		return nil, err
	}
	return Flatten(rec), nil
}
