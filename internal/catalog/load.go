package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// file is the YAML shape of a catalog file.
type file struct {
	Lots []Lot `yaml:"lots"`
}

// Load reads a catalog from a .yaml/.yml or .csv file.
func Load(path string, opts ...Option) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lots []Lot
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		lots, err = ReadYAML(f)
	case ".csv":
		lots, err = ReadCSV(f)
	default:
		return nil, fmt.Errorf("catalog: unsupported file %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", filepath.Base(path), err)
	}
	return New(lots, opts...)
}

func ReadYAML(r io.Reader) ([]Lot, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, err
	}
	return doc.Lots, nil
}

// ReadCSV reads lots from a CSV with a header row. Columns are detected by
// name (case-insensitive): id, name|nombre, area|superficie|m2,
// price|precio, status|estado. Status defaults to available when the column
// is missing.
func ReadCSV(r io.Reader) ([]Lot, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrEmptyCatalog
	}
	idx := map[string]int{"id": -1, "name": -1, "area": -1, "price": -1, "status": -1}
	for i, h := range recs[0] {
		var col string
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "id", "lote":
			col = "id"
		case "name", "nombre":
			col = "name"
		case "area", "superficie", "m2":
			col = "area"
		case "price", "precio":
			col = "price"
		case "status", "estado":
			col = "status"
		default:
			continue
		}
		if idx[col] == -1 {
			idx[col] = i
		}
	}
	for _, col := range []string{"id", "area", "price"} {
		if idx[col] == -1 {
			return nil, fmt.Errorf("csv: %s column not found", col)
		}
	}
	cell := func(row []string, col string) string {
		i := idx[col]
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var lots []Lot
	for n, row := range recs[1:] {
		line := n + 2
		area, err := strconv.ParseFloat(cell(row, "area"), 64)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: area: %w", line, err)
		}
		price, err := strconv.ParseInt(cell(row, "price"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: price: %w", line, err)
		}
		status := StatusAvailable
		if s := cell(row, "status"); s != "" {
			if status, err = ParseStatus(s); err != nil {
				return nil, fmt.Errorf("csv line %d: %w", line, err)
			}
		}
		id := cell(row, "id")
		name := cell(row, "name")
		if name == "" {
			name = "Lote " + id
		}
		lots = append(lots, Lot{ID: id, Name: name, AreaSquareMeters: area, PriceCLP: price, Status: status})
	}
	if len(lots) == 0 {
		return nil, ErrEmptyCatalog
	}
	return lots, nil
}
