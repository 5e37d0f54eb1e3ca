package fileloader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// CSV reading primitives. All entry points accept raw bytes so callers can
// feed decompressed data; use ReadFile to get bytes from disk with
// transparent decompression.

// newCSVReader builds a csv.Reader with the lenient settings used
// throughout filesift: variable field counts and lazy quotes, so slightly
// corrupted exports still load.
func newCSVReader(data []byte) *csv.Reader {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

// ReadCSVHeader returns the normalized header row from CSV data. With
// NoHeaderRow set, synthetic Unnamed_A style headers are generated from
// the first row's width instead.
func ReadCSVHeader(data []byte, options Options) ([]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("data is empty")
	}

	firstRow, err := newCSVReader(data).Read()
	if err != nil {
		return nil, err
	}

	if options.NoHeaderRow {
		return NormalizeHeaders(make([]string, len(firstRow))), nil
	}
	return NormalizeHeaders(firstRow), nil
}

// ReadCSVRecords returns the header and all data records from CSV data.
// Records may be shorter or longer than the header; aligning them to
// header keys is the caller's concern.
func ReadCSVRecords(data []byte, options Options) (header []string, records [][]string, err error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("data is empty")
	}

	r := newCSVReader(data)

	firstRow, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, fmt.Errorf("data is empty")
		}
		return nil, nil, err
	}

	if options.NoHeaderRow {
		header = NormalizeHeaders(make([]string, len(firstRow)))
		records = append(records, firstRow)
	} else {
		header = NormalizeHeaders(firstRow)
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if rec == nil {
				break
			}
		}
		records = append(records, rec)
	}

	return header, records, nil
}

// CSVRowCount returns the number of data rows in CSV data
func CSVRowCount(data []byte, options Options) (int, error) {
	_, records, err := ReadCSVRecords(data, options)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
