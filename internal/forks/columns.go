// Package forks turns fork listings into table rows and runs the
// validate-fetch-transform lookup shared by every front end.
package forks

import (
	"strconv"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/text"
)

// Cell is one extracted table value. Raw is what sorting and searching see;
// Text and HTML are display forms for the terminal and the browser.
type Cell struct {
	Raw     string
	Text    string
	HTML    string
	Num     int
	Numeric bool
	Time    time.Time
}

// Display returns the terminal text. Timestamps are shown relative to now.
func (c Cell) Display(now time.Time) string {
	if !c.Time.IsZero() {
		return text.RelativeTimeAgo(now, c.Time)
	}
	return c.Text
}

// Column pairs a title with the extractor that fills it.
type Column struct {
	Title   string
	Key     string
	Width   int
	Extract func(Record) Cell
}

// Columns is the ordered column schema. Row cells align with it by index.
type Columns []Column

const (
	starsTitle   = "Stars"
	unknownOwner = "Unknown"
)

// DefaultColumns returns Owner, Link, Branch, Stars, Forks, Open Issues,
// Size and Last Push, in that order.
func DefaultColumns() Columns {
	return Columns{
		{Title: "Owner", Key: "ownerName", Width: 16, Extract: func(r Record) Cell {
			login := r.OwnerLogin()
			if login == "" {
				login = unknownOwner
			}
			return Cell{Raw: login, Text: login, HTML: r.OwnerName}
		}},
		{Title: "Link", Key: "repoLink", Width: 20, Extract: func(r Record) Cell {
			return Cell{Raw: r.Name, Text: r.Name, HTML: r.RepoLink}
		}},
		{Title: "Branch", Key: "default_branch", Width: 10, Extract: func(r Record) Cell {
			return Cell{Raw: r.DefaultBranch, Text: r.DefaultBranch}
		}},
		{Title: starsTitle, Key: "stargazers_count", Width: 6, Extract: func(r Record) Cell {
			return numberCell(r.StargazersCount)
		}},
		{Title: "Forks", Key: "forks", Width: 6, Extract: func(r Record) Cell {
			return numberCell(r.Forks)
		}},
		{Title: "Open Issues", Key: "open_issues_count", Width: 11, Extract: func(r Record) Cell {
			return numberCell(r.OpenIssuesCount)
		}},
		{Title: "Size", Key: "size", Width: 7, Extract: func(r Record) Cell {
			return numberCell(r.Size)
		}},
		{Title: "Last Push", Key: "pushed_at", Width: 18, Extract: func(r Record) Cell {
			if r.PushedAt.IsZero() {
				return Cell{}
			}
			raw := r.PushedAt.UTC().Format(time.RFC3339)
			return Cell{Raw: raw, Text: raw, Time: r.PushedAt}
		}},
	}
}

func numberCell(n int) Cell {
	s := strconv.Itoa(n)
	return Cell{Raw: s, Text: s, Num: n, Numeric: true}
}

// Index returns the position of the column titled title, or -1.
func (cs Columns) Index(title string) int {
	for i, c := range cs {
		if c.Title == title {
			return i
		}
	}
	return -1
}

// Lookup finds a column by key or case-insensitive title, ignoring spaces
// and underscores, so "open_issues", "openissues" and "Open Issues" all
// match.
func (cs Columns) Lookup(name string) int {
	want := squash(name)
	for i, c := range cs {
		if squash(c.Title) == want || squash(c.Key) == want {
			return i
		}
	}
	return -1
}

func squash(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "_", "")
}

// StarsIndex is the default sort column.
func (cs Columns) StarsIndex() int {
	return cs.Index(starsTitle)
}

// ResolveSort returns idx when it names a column and the Stars index
// otherwise.
func (cs Columns) ResolveSort(idx int) int {
	if idx >= 0 && idx < len(cs) {
		return idx
	}
	return cs.StarsIndex()
}

func (cs Columns) Titles() []string {
	titles := make([]string, len(cs))
	for i, c := range cs {
		titles[i] = c.Title
	}
	return titles
}
