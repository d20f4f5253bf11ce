package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/colormap"
)

// ReadItems reads the taxon→group mapping from a CSV file ("-" for
// stdin, tab-separated for .tsv). Rows have two columns (taxon, group)
// or one column, in which case each value is both taxon and group. Row
// order is preserved.
func ReadItems(path string) ([]colormap.Item, error) {
	var in io.Reader
	if path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		in = f
	}

	comma := ','
	if strings.HasSuffix(path, ".tsv") {
		comma = '\t'
	}
	return parseItems(in, comma)
}

func parseItems(in io.Reader, comma rune) ([]colormap.Item, error) {
	reader := csv.NewReader(in)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var items []colormap.Item
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading taxa: %w", err)
		}
		line++

		switch len(record) {
		case 1:
			// A bare value is its own group.
			items = append(items, colormap.Item{Name: record[0], Group: record[0]})
		case 2:
			items = append(items, colormap.Item{Name: record[0], Group: record[1]})
		default:
			return nil, fmt.Errorf("line %d: expected 1 or 2 columns, got %d", line, len(record))
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no taxa found in input")
	}
	return items, nil
}
