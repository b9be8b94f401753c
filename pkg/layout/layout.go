// Package layout reads the keyboard layout table: a CSV file with one
// row per key. The required "primary" column holds the main legend;
// optional "shift", "altcr" and "fn" columns hold secondary legends and
// the optional "name" column overrides the output file name.
package layout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one unit of batch work. Rows are consumed once by the export
// pipeline and not retained afterward.
type Row struct {
	Primary  string
	Shift    string
	AltGr    string
	Function string
	Name     string // output name; falls back to Primary when blank
}

// Read parses the layout file at path. Rows with a blank primary legend
// are skipped.
func Read(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("layout: parse %s: %w", path, err)
	}
	return rows, nil
}

// Parse reads layout rows from r. The first record is the header; column
// order is free and unknown columns are ignored.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty layout table")
	}
	if err != nil {
		return nil, err
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["primary"]; !ok {
		return nil, fmt.Errorf(`missing required column "primary"`)
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		primary := field(record, "primary")
		if primary == "" {
			continue
		}
		row := Row{
			Primary:  primary,
			Shift:    field(record, "shift"),
			AltGr:    field(record, "altcr"),
			Function: field(record, "fn"),
			Name:     field(record, "name"),
		}
		if row.Name == "" {
			row.Name = primary
		}
		rows = append(rows, row)
	}
	return rows, nil
}
