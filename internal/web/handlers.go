package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/altinukshini/gh-forks/internal/errors"
	"github.com/altinukshini/gh-forks/internal/forks"
	"github.com/altinukshini/gh-forks/internal/location"
)

// Response is the JSON envelope of /api routes.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type forkList struct {
	Repo    string     `json:"repo"`
	Sort    int        `json:"sort"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}

// handleIndex shows the empty form, or redirects a submitted repository to
// its own location.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("q") {
		s.renderPage(w, http.StatusOK, s.newPage(""))
		return
	}

	raw := query.Get("q")
	repo := forks.CleanInput(raw)
	if !location.ValidRepo(repo) {
		s.logger.Warn("invalid repository", "input", raw)
		p := s.newPage(raw)
		p.Message = forks.MessageFor(apperrors.New(apperrors.ErrCodeInvalidInput, "invalid repository %q", raw))
		s.renderPage(w, http.StatusBadRequest, p)
		return
	}

	target := "/r/" + repo
	if sort := query.Get("sort"); sort != "" {
		target += "?" + url.Values{"sort": {sort}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleRepo(w http.ResponseWriter, r *http.Request) {
	repo := chi.URLParam(r, "owner") + "/" + chi.URLParam(r, "name")
	p := s.newPage(repo)
	p.Sort = s.sortParam(r)

	res, err := s.service.Lookup(r.Context(), repo)
	if err != nil {
		p.Message = forks.MessageFor(err)
		s.renderPage(w, statusFor(err), p)
		return
	}

	p.Repo = res.Repo
	p.Rows = res.Rows
	p.Now = time.Now()
	s.renderPage(w, http.StatusOK, p)
}

func (s *Server) handleAPIForks(w http.ResponseWriter, r *http.Request) {
	repo := chi.URLParam(r, "owner") + "/" + chi.URLParam(r, "name")
	sort := s.sortParam(r)

	res, err := s.service.Lookup(r.Context(), repo)
	if err != nil {
		s.writeJSON(w, statusFor(err), Response{Error: forks.MessageFor(err).Text})
		return
	}

	cols := s.service.Columns()
	rows := forks.SortRows(res.Rows, forks.DefaultSort(sort))
	list := forkList{
		Repo:    res.Repo,
		Sort:    sort,
		Columns: cols.Titles(),
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		raw := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			raw[i] = c.Raw
		}
		list.Rows = append(list.Rows, raw)
	}
	s.writeJSON(w, http.StatusOK, Response{Success: true, Data: list})
}

// sortParam reads ?sort=N, falling back to the Stars column for anything
// missing or out of range.
func (s *Server) sortParam(r *http.Request) int {
	cols := s.service.Columns()
	params := location.Params{}
	if q := r.URL.Query(); q.Has("sort") {
		params["sort"] = q.Get("sort")
	}
	return cols.ResolveSort(location.SortColumn(params, cols.StarsIndex()))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func statusFor(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case apperrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeRequestFailed:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
