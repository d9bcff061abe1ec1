// Package csvio reads and writes the tabular interchange files that carry
// canonical records between runs. Files are header-driven: columns are
// addressed by name, unrecognized columns ride along untouched.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/handiism/tagsync/internal/model"
)

// ErrMissingColumn reports an interchange file whose header lacks a required
// column. This is a configuration error; the whole run aborts.
var ErrMissingColumn = errors.New("missing required column")

// Row is one interchange record, keyed by column name.
type Row map[string]string

// Table is a parsed interchange file.
type Table struct {
	// Columns is the header, in file order.
	Columns []string

	// Rows holds one map per data line. Lines shorter than the header leave
	// the trailing columns absent.
	Rows []Row
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	for _, column := range t.Columns {
		if column == name {
			return true
		}
	}
	return false
}

// TagColumns returns the header columns that are canonical tag fields, in
// header order. Everything else in the header is ignored by consumers.
func (t *Table) TagColumns() []string {
	tags := make([]string, 0, len(t.Columns))
	for _, column := range t.Columns {
		if model.IsSupportedTag(column) {
			tags = append(tags, column)
		}
	}
	return tags
}

// Read parses an interchange file. A missing or empty header, or a header
// without the filename column, is a fatal configuration error.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv %s appears to be empty or improperly formatted: %w", path, err)
	}

	table := &Table{Columns: header}
	if !table.HasColumn(model.FieldFilename) {
		return nil, fmt.Errorf("csv %s: %w: %s", path, ErrMissingColumn, model.FieldFilename)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv %s: %w", path, err)
		}
		row := make(Row, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Write creates (or truncates) an interchange file with the given column
// order. Row values for absent columns are written as empty cells.
func Write(path string, columns []string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	line := make([]string, len(columns))
	for _, row := range rows {
		for i, column := range columns {
			line[i] = row[column]
		}
		if err := writer.Write(line); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv %s: %w", path, err)
	}
	return nil
}

// RecordRow converts a canonical record into a row carrying the given
// columns.
func RecordRow(rec model.Record, columns []string) Row {
	row := make(Row, len(columns))
	for _, column := range columns {
		row[column] = rec.Value(column)
	}
	return row
}
