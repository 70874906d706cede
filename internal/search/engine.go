package search

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/altinukshini/gh-forks/internal/forks"
	"github.com/altinukshini/gh-forks/internal/model"
)

// Engine filters fork rows against a query. Every term must match.
//
// Term forms:
//
//	alice        substring of any column
//	/^hello-     regular expression against any column
//	branch:dev   substring of one column
//	stars:>=10   comparison on a numeric or timestamp column
type Engine struct {
	columns forks.Columns
}

func New(columns forks.Columns) *Engine {
	return &Engine{columns: columns}
}

var ops = []model.SearchOp{model.OpGte, model.OpLte, model.OpGt, model.OpLt, model.OpEq}

// Parse splits s into terms. A "key:" prefix only scopes a term when key
// names a column; otherwise the whole word is searched as plain text.
func (e *Engine) Parse(s string) model.SearchQuery {
	query := model.SearchQuery{Raw: s}
	for _, word := range strings.Fields(s) {
		query.Terms = append(query.Terms, e.parseTerm(word))
	}
	return query
}

func (e *Engine) parseTerm(word string) model.SearchTerm {
	if strings.HasPrefix(word, "/") && len(word) > 1 {
		return model.SearchTerm{Pattern: word[1:], IsRegex: true}
	}

	key, value, found := strings.Cut(word, ":")
	if !found || e.columns.Lookup(key) < 0 {
		return model.SearchTerm{Pattern: word}
	}

	term := model.SearchTerm{Column: key, Pattern: value}
	for _, op := range ops {
		if rest, ok := strings.CutPrefix(value, string(op)); ok {
			term.Op = op
			term.Pattern = rest
			break
		}
	}
	if strings.HasPrefix(term.Pattern, "/") && len(term.Pattern) > 1 && term.Op == model.OpContains {
		term.Pattern = term.Pattern[1:]
		term.IsRegex = true
	}
	return term
}

// Filter returns the rows matching query, in input order.
func (e *Engine) Filter(rows []forks.Row, query model.SearchQuery) ([]forks.Row, error) {
	if query.IsEmpty() {
		return rows, nil
	}

	matchers := make([]func(forks.Row) bool, 0, len(query.Terms))
	for _, term := range query.Terms {
		m, err := e.buildMatcher(term, query.CaseSensitive)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}

	var out []forks.Row
	for _, row := range rows {
		if matchAll(row, matchers) {
			out = append(out, row)
		}
	}
	return out, nil
}

// FilterString parses and applies s in one step.
func (e *Engine) FilterString(rows []forks.Row, s string) ([]forks.Row, error) {
	return e.Filter(rows, e.Parse(s))
}

func matchAll(row forks.Row, matchers []func(forks.Row) bool) bool {
	for _, m := range matchers {
		if !m(row) {
			return false
		}
	}
	return true
}

func (e *Engine) buildMatcher(term model.SearchTerm, caseSensitive bool) (func(forks.Row) bool, error) {
	col := -1
	if term.Column != "" {
		col = e.columns.Lookup(term.Column)
	}

	if term.Op != model.OpContains {
		return compareMatcher(col, term)
	}

	match, err := buildTextMatcher(term, caseSensitive)
	if err != nil {
		return nil, err
	}
	return func(row forks.Row) bool {
		if col >= 0 {
			return col < len(row.Cells) && match(row.Cells[col].Raw)
		}
		for _, c := range row.Cells {
			if match(c.Raw) {
				return true
			}
		}
		return false
	}, nil
}

func buildTextMatcher(term model.SearchTerm, caseSensitive bool) (func(string) bool, error) {
	if term.IsRegex {
		flags := ""
		if !caseSensitive {
			flags = "(?i)"
		}
		re, err := regexp.Compile(flags + term.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid search pattern %q: %w", term.Pattern, err)
		}
		return re.MatchString, nil
	}

	pattern := term.Pattern
	if !caseSensitive {
		pattern = strings.ToLower(pattern)
	}
	return func(s string) bool {
		if !caseSensitive {
			s = strings.ToLower(s)
		}
		return strings.Contains(s, pattern)
	}, nil
}

// compareMatcher handles scoped comparisons. Numeric columns compare as
// integers, everything else compares raw strings, which orders RFC 3339
// timestamps chronologically.
func compareMatcher(col int, term model.SearchTerm) (func(forks.Row) bool, error) {
	n, numErr := strconv.Atoi(term.Pattern)
	return func(row forks.Row) bool {
		if col < 0 || col >= len(row.Cells) {
			return false
		}
		cell := row.Cells[col]
		var cmp int
		switch {
		case cell.Numeric:
			if numErr != nil {
				return false
			}
			cmp = cell.Num - n
		case term.Op == model.OpEq:
			return strings.EqualFold(cell.Raw, term.Pattern)
		default:
			if cell.Raw == "" {
				return false
			}
			cmp = strings.Compare(cell.Raw, term.Pattern)
		}
		switch term.Op {
		case model.OpGt:
			return cmp > 0
		case model.OpGte:
			return cmp >= 0
		case model.OpLt:
			return cmp < 0
		case model.OpLte:
			return cmp <= 0
		default:
			return cmp == 0
		}
	}, nil
}
