package forks

import "testing"

func TestSortRows(t *testing.T) {
	cols := DefaultColumns()
	rows := Transform(sampleForks(), cols)

	asc := SortRows(rows, SortSpec{Column: cols.StarsIndex()})
	if asc[0].Record.FullName != "ghost/Hello-World" {
		t.Errorf("ascending first = %s", asc[0].Record.FullName)
	}

	desc := SortRows(rows, DefaultSort(cols.StarsIndex()))
	if desc[0].Record.FullName != "alice/Hello-World" {
		t.Errorf("descending first = %s", desc[0].Record.FullName)
	}

	byPush := SortRows(rows, SortSpec{Column: 7, Desc: true})
	if byPush[0].Record.FullName != "alice/Hello-World" {
		t.Errorf("most recent push first = %s", byPush[0].Record.FullName)
	}

	byOwner := SortRows(rows, SortSpec{Column: 0})
	if byOwner[0].Record.FullName != "alice/Hello-World" {
		t.Errorf("owner ascending first = %s", byOwner[0].Record.FullName)
	}

	if rows[0].Record.FullName != "alice/Hello-World" {
		t.Error("SortRows must not reorder its input")
	}
}

func TestSortRowsStable(t *testing.T) {
	cols := DefaultColumns()
	forks := sampleForks()
	forks[1].StargazersCount = forks[0].StargazersCount
	rows := Transform(forks, cols)

	sorted := SortRows(rows, DefaultSort(cols.StarsIndex()))
	if sorted[0].Record.FullName != "alice/Hello-World" || sorted[1].Record.FullName != "ghost/Hello-World" {
		t.Error("equal rows should keep their order")
	}
}
