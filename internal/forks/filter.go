package forks

import (
	"strings"
	"time"
)

// Filter narrows rows by fork attributes. Zero fields match everything.
type Filter struct {
	Owner        string
	Branch       string
	MinStars     int
	PushedWithin time.Duration
	HideArchived bool
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

// FilterRows keeps the rows matching every set field, in input
// order. Forks that were never pushed fail a PushedWithin filter.
func FilterRows(rows []Row, filter Filter, now time.Time) []Row {
	if filter.IsZero() {
		return rows
	}

	var matched []Row
	for _, r := range rows {
		f := r.Record.Fork
		if filter.Owner != "" && !strings.EqualFold(f.OwnerLogin(), filter.Owner) {
			continue
		}
		if filter.Branch != "" && f.DefaultBranch != filter.Branch {
			continue
		}
		if f.StargazersCount < filter.MinStars {
			continue
		}
		if filter.PushedWithin > 0 && (f.PushedAt.IsZero() || now.Sub(f.PushedAt) > filter.PushedWithin) {
			continue
		}
		if filter.HideArchived && f.Archived {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}
