package location

import (
	"net/url"
	"strings"
)

// Location is a parsed lookup fragment.
type Location struct {
	Repo   string
	Params Params
}

// Parse decodes a fragment such as "octocat/Hello-World?sort=4". A leading
// '#' is optional, and a full page URL is accepted, in which case only the
// part after its '#' is used. A repository reference followed by an anchor,
// like "https://github.com/cli/cli#readme", keeps the reference and drops
// the anchor.
func Parse(raw string) Location {
	frag := strings.TrimSpace(raw)
	if before, after, found := strings.Cut(frag, "#"); found {
		if ValidRepo(NormalizeRepo(before)) {
			frag = before
		} else {
			frag = after
		}
	}
	if decoded, err := url.PathUnescape(frag); err == nil {
		frag = decoded
	}
	return Location{
		Repo:   NormalizeRepo(frag),
		Params: ParseParams(frag),
	}
}

// Sort resolves the requested sort column, defaulting to def.
func (l Location) Sort(def int) int {
	return SortColumn(l.Params, def)
}

// Fragment renders the location as "#owner/name[?params]".
func (l Location) Fragment() string {
	if len(l.Params) == 0 {
		return "#" + l.Repo
	}
	return "#" + l.Repo + "?" + l.Params.Encode()
}

// History is a push-only stack of fragments, newest last.
type History struct {
	entries []string
}

// NewHistory starts a history at the given fragment, if any.
func NewHistory(initial string) *History {
	h := &History{}
	if initial != "" {
		h.entries = append(h.entries, initial)
	}
	return h
}

// Current returns the newest fragment, or "" when empty.
func (h *History) Current() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

// PushRepo records "#repo" as a new entry unless the current entry already
// refers to repo. Params of the current entry are not carried over.
func (h *History) PushRepo(repo string) bool {
	if cur := h.Current(); cur != "" && Parse(cur).Repo == repo {
		return false
	}
	h.entries = append(h.entries, Location{Repo: repo}.Fragment())
	return true
}

// Back drops the newest entry and returns the one before it.
func (h *History) Back() (string, bool) {
	if len(h.entries) < 2 {
		return "", false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.Current(), true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}
