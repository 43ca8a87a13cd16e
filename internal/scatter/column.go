package scatter

import (
	"fmt"
	"strconv"
)

// ColumnKind discriminates the closed set of attribute column variants.
type ColumnKind int

const (
	// Categorical columns carry a small integer category code per point.
	Categorical ColumnKind = iota
	// Numeric columns carry a dense float per point.
	Numeric
	// SparseNumeric columns carry (point id, value) pairs; unlisted points
	// are implicitly zero.
	SparseNumeric
)

func (k ColumnKind) String() string {
	switch k {
	case Categorical:
		return "categorical"
	case Numeric:
		return "numeric"
	case SparseNumeric:
		return "sparse"
	}
	return "unknown"
}

// Column is one per-point attribute in one of the three variants. Only the
// fields of the active Kind are meaningful.
type Column struct {
	Kind ColumnKind

	// Categorical
	Codes      []int
	Categories []string // code -> label; length is the category count

	// Numeric
	Values []float64

	// SparseNumeric
	Index  []int
	Sparse []float64
}

// Validate checks the column against the point count n. This is the
// data-contract boundary: a sparse index at or beyond n, a negative code,
// or a dense column of the wrong length is a collaborator bug and is
// rejected here, before anything reaches the encoder.
func (c *Column) Validate(n int) error {
	switch c.Kind {
	case Categorical:
		if len(c.Codes) != n {
			return fmt.Errorf("categorical column: %d codes for %d points", len(c.Codes), n)
		}
		for i, code := range c.Codes {
			if code < 0 {
				return fmt.Errorf("categorical column: negative code %d at point %d", code, i)
			}
		}
	case Numeric:
		if len(c.Values) != n {
			return fmt.Errorf("numeric column: %d values for %d points", len(c.Values), n)
		}
	case SparseNumeric:
		if len(c.Index) != len(c.Sparse) {
			return fmt.Errorf("sparse column: %d indices but %d values", len(c.Index), len(c.Sparse))
		}
		for _, idx := range c.Index {
			if idx < 0 || idx >= n {
				return fmt.Errorf("sparse column: index %d out of range for %d points", idx, n)
			}
		}
	default:
		return fmt.Errorf("unknown column kind %d", c.Kind)
	}
	return nil
}

// Label formats the attribute value of point i for display. Missing data
// (an unlisted sparse point, an out-of-range code) yields an empty string
// rather than an error; hover against gaps is routine, not exceptional.
func (c *Column) Label(i int) string {
	switch c.Kind {
	case Categorical:
		if i < 0 || i >= len(c.Codes) {
			return ""
		}
		code := c.Codes[i]
		if code >= 0 && code < len(c.Categories) {
			return c.Categories[code]
		}
		return strconv.Itoa(code)
	case Numeric:
		if i < 0 || i >= len(c.Values) {
			return ""
		}
		return strconv.FormatFloat(c.Values[i], 'g', -1, 64)
	case SparseNumeric:
		for j, idx := range c.Index {
			if idx == i {
				return strconv.FormatFloat(c.Sparse[j], 'g', -1, 64)
			}
		}
		return ""
	}
	return ""
}
