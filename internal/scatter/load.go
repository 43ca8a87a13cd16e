package scatter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Dataset bundles a converted point set with its named attribute columns.
// Names keeps a stable order for UI cycling.
type Dataset struct {
	Points  PointSet
	Names   []string
	Columns map[string]*Column
}

// Column looks an attribute column up by name. A missing name is a
// routine empty outcome, not an error.
func (d *Dataset) Column(name string) (*Column, bool) {
	c, ok := d.Columns[name]
	return c, ok
}

type jsonColumn struct {
	Kind       string    `json:"kind"`
	Codes      []int     `json:"codes,omitempty"`
	Categories []string  `json:"categories,omitempty"`
	Values     []float64 `json:"values,omitempty"`
	Index      []int     `json:"index,omitempty"`
}

type jsonDataset struct {
	X       []float64             `json:"x"`
	Y       []float64             `json:"y"`
	Columns map[string]jsonColumn `json:"columns"`
}

// LoadJSON reads a reduction dataset file: parallel x/y arrays plus named
// attribute columns. Every column is validated against the point count
// here, at the data-contract boundary, so the encoder never sees an
// out-of-range sparse index.
func LoadJSON(path string) (*Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw jsonDataset
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	if len(raw.X) != len(raw.Y) {
		return nil, fmt.Errorf("x/y length mismatch: %d vs %d", len(raw.X), len(raw.Y))
	}

	ds := &Dataset{
		Points:  Convert(raw.X, raw.Y),
		Columns: map[string]*Column{},
	}
	for name, jc := range raw.Columns {
		col, err := convertJSONColumn(jc)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		if err := col.Validate(ds.Points.N); err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		ds.Columns[name] = col
		ds.Names = append(ds.Names, name)
	}
	sort.Strings(ds.Names)
	return ds, nil
}

func convertJSONColumn(jc jsonColumn) (*Column, error) {
	switch jc.Kind {
	case "categorical":
		return &Column{Kind: Categorical, Codes: jc.Codes, Categories: jc.Categories}, nil
	case "numeric":
		return &Column{Kind: Numeric, Values: jc.Values}, nil
	case "sparse":
		return &Column{Kind: SparseNumeric, Index: jc.Index, Sparse: jc.Values}, nil
	}
	return nil, fmt.Errorf("unsupported kind %q", jc.Kind)
}

// LoadCSV reads a CSV dataset. Coordinate columns are detected by header
// name (x|dim1|lon|longitude and y|dim2|lat|latitude, case-insensitive);
// every remaining column becomes an attribute column: numeric when all of
// its non-empty cells parse as floats, categorical otherwise with codes
// assigned in order of first appearance.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return datasetFromRecords(recs)
}

// ParseCSVString builds a dataset from pasted CSV text, same rules as
// LoadCSV.
func ParseCSVString(s string) (*Dataset, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimSpace(s)))
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return datasetFromRecords(recs)
}

func datasetFromRecords(recs [][]string) (*Dataset, error) {
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	header := recs[0]
	idxX, idxY := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "dim1", "lon", "longitude":
			if idxX == -1 {
				idxX = i
			}
		case "y", "dim2", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return nil, errors.New("csv: x/y columns not found")
	}

	var xs, ys []float64
	var kept [][]string
	for _, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
		kept = append(kept, row)
	}
	if len(xs) == 0 {
		return nil, errors.New("csv: no valid points parsed")
	}

	ds := &Dataset{
		Points:  Convert(xs, ys),
		Columns: map[string]*Column{},
	}
	for i, name := range header {
		if i == idxX || i == idxY {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		col := inferCSVColumn(kept, i)
		if err := col.Validate(ds.Points.N); err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		ds.Columns[name] = col
		ds.Names = append(ds.Names, name)
	}
	sort.Strings(ds.Names)
	return ds, nil
}

// inferCSVColumn reads column i of the kept rows as numeric when every
// non-empty cell parses, categorical otherwise.
func inferCSVColumn(rows [][]string, i int) *Column {
	cell := func(row []string) string {
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	numeric := true
	for _, row := range rows {
		s := cell(row)
		if s == "" {
			continue
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			numeric = false
			break
		}
	}

	if numeric {
		values := make([]float64, len(rows))
		for j, row := range rows {
			v, err := strconv.ParseFloat(cell(row), 64)
			if err == nil {
				values[j] = v
			}
		}
		return &Column{Kind: Numeric, Values: values}
	}

	codes := make([]int, len(rows))
	var cats []string
	seen := map[string]int{}
	for j, row := range rows {
		s := cell(row)
		code, ok := seen[s]
		if !ok {
			code = len(cats)
			seen[s] = code
			cats = append(cats, s)
		}
		codes[j] = code
	}
	return &Column{Kind: Categorical, Codes: codes, Categories: cats}
}
