package forks

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/altinukshini/gh-forks/internal/model"
)

// Record is a fork plus the HTML fragments shown in the browser table.
type Record struct {
	model.Fork
	RepoLink  string
	OwnerName string
}

func NewRecord(f model.Fork) Record {
	return Record{
		Fork:      f,
		RepoLink:  repoLink(f),
		OwnerName: ownerName(f),
	}
}

func repoLink(f model.Fork) string {
	return fmt.Sprintf(`<a href="https://github.com/%s">%s</a>`,
		html.EscapeString(f.FullName), html.EscapeString(f.Name))
}

func ownerName(f model.Fork) string {
	img := fmt.Sprintf(`<img src="%s" width="24" height="24" class="mr-2 rounded-circle" />`,
		html.EscapeString(avatarSized(f.AvatarURL(), 48)))
	if f.OwnerLogin() == "" {
		return img + "<strike><em>" + unknownOwner + "</em></strike>"
	}
	login := html.EscapeString(f.OwnerLogin())
	return img + fmt.Sprintf(`<a href="https://github.com/%s">%s</a>`, login, login)
}

func avatarSized(u string, size int) string {
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + "s=" + strconv.Itoa(size)
}

// Row is one table row. Cells align with the Columns that produced them.
type Row struct {
	Record Record
	Cells  []Cell
}

// Transform converts forks into rows in input order.
func Transform(forks []model.Fork, cols Columns) []Row {
	rows := make([]Row, 0, len(forks))
	for _, f := range forks {
		rec := NewRecord(f)
		cells := make([]Cell, len(cols))
		for i, c := range cols {
			cells[i] = c.Extract(rec)
		}
		rows = append(rows, Row{Record: rec, Cells: cells})
	}
	return rows
}
