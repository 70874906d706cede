// Package location parses the "owner/name?sort=N" fragments that identify a
// fork lookup, and keeps the in-session history of looked up repositories.
package location

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Params maps a fragment's query keys to their decoded values.
type Params map[string]string

// Has reports whether key was present, with or without a value.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Encode renders the params back into a query string with sorted keys.
func (p Params) Encode() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if p[k] == "" {
			parts = append(parts, url.PathEscape(k))
			continue
		}
		parts = append(parts, url.PathEscape(k)+"="+url.PathEscape(p[k]))
	}
	return strings.Join(parts, "&")
}

// ParseParams extracts the key/value pairs following the first '?' in s.
// Only the text up to a second '?' is considered. Keys without '=' map to the
// empty string and values that fail to decode are kept verbatim.
func ParseParams(s string) Params {
	params := Params{}
	_, query, found := strings.Cut(s, "?")
	if !found {
		return params
	}
	query, _, _ = strings.Cut(query, "?")

	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if decoded, err := url.PathUnescape(value); err == nil {
			value = decoded
		}
		params[key] = value
	}
	return params
}

var repoPrefixes = []string{"https://github.com/", "http://github.com/"}

// NormalizeRepo reduces a repository reference to "owner/name". Everything
// from the first '?' is dropped, along with a leading github.com URL prefix
// and a trailing ".git". Stripping repeats until nothing changes, so the
// result is a fixed point.
func NormalizeRepo(s string) string {
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	for {
		prev := s
		for _, prefix := range repoPrefixes {
			s = strings.TrimPrefix(s, prefix)
		}
		s = strings.TrimSuffix(s, ".git")
		if s == prev {
			return s
		}
	}
}

var repoPattern = regexp.MustCompile(`^[-_\w]+/[-_.\w]+$`)

// ValidRepo reports whether s is exactly an "owner/name" pair.
func ValidRepo(s string) bool {
	return repoPattern.MatchString(s)
}

// SortColumn returns the column index requested by the "sort" parameter, or
// def when the parameter is absent. A value that is not an integer yields -1
// so that the caller's range check falls back to its default column.
func SortColumn(p Params, def int) int {
	if !p.Has("sort") {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(p["sort"]))
	if err != nil {
		return -1
	}
	return n
}
