package model

// SearchOp is the comparison used by a column-scoped search term.
type SearchOp string

const (
	OpContains SearchOp = ""
	OpEq       SearchOp = "="
	OpGt       SearchOp = ">"
	OpGte      SearchOp = ">="
	OpLt       SearchOp = "<"
	OpLte      SearchOp = "<="
)

// SearchTerm is one whitespace-separated part of a table search.
type SearchTerm struct {
	Column  string // empty matches any column
	Op      SearchOp
	Pattern string
	IsRegex bool
}

type SearchQuery struct {
	Raw           string
	Terms         []SearchTerm
	CaseSensitive bool
}

func (q SearchQuery) IsEmpty() bool {
	return len(q.Terms) == 0
}
