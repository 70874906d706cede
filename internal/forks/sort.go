package forks

import (
	"slices"
	"strings"
)

// SortSpec selects the sort column and direction.
type SortSpec struct {
	Column int
	Desc   bool
}

// DefaultSort orders by the given column, descending.
func DefaultSort(column int) SortSpec {
	return SortSpec{Column: column, Desc: true}
}

// SortRows returns a sorted copy of rows. Ties keep their input order.
func SortRows(rows []Row, spec SortSpec) []Row {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b Row) int {
		if spec.Column < 0 || spec.Column >= len(a.Cells) || spec.Column >= len(b.Cells) {
			return 0
		}
		c := compareCells(a.Cells[spec.Column], b.Cells[spec.Column])
		if spec.Desc {
			return -c
		}
		return c
	})
	return sorted
}

func compareCells(a, b Cell) int {
	switch {
	case a.Numeric && b.Numeric:
		return a.Num - b.Num
	case !a.Time.IsZero() || !b.Time.IsZero():
		return a.Time.Compare(b.Time)
	default:
		return strings.Compare(strings.ToLower(a.Raw), strings.ToLower(b.Raw))
	}
}
