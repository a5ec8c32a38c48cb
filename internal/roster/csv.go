package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// CSVSource is a Source read from CSV with a header row
type CSVSource struct {
	RecordSource
}

// NewCSVSource reads the whole CSV document from r.
// An empty document is valid and has no columns.
func NewCSVSource(r io.Reader) (*CSVSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	// The header is read on its own so a roster with no rows still
	// reports its columns.
	header, err := gocsv.DefaultCSVReader(bytes.NewReader(data)).Read()
	if errors.Is(err, io.EOF) {
		return &CSVSource{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read roster header: %w", err)
	}

	records, err := gocsv.CSVToMaps(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read roster rows: %w", err)
	}

	return &CSVSource{*NewRecordSource(header, records)}, nil
}
