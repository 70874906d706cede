package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/altinukshini/gh-forks/internal/forks"
)

//go:embed templates/*.html
var templateFS embed.FS

type page struct {
	Input   string
	Repo    string
	Sort    int
	Message forks.Message
	Columns forks.Columns
	Rows    []forks.Row
	Now     time.Time
}

type cellView struct {
	Body   template.HTML
	Order  string
	Search string
}

// Cells renders one row. Cells with HTML use it as is (it is built escaped);
// timestamps show relative text but sort and search on the raw value.
func (p page) Cells(row forks.Row) []cellView {
	out := make([]cellView, len(row.Cells))
	for i, c := range row.Cells {
		v := cellView{}
		switch {
		case c.HTML != "":
			v.Body = template.HTML(c.HTML)
		default:
			v.Body = template.HTML(template.HTMLEscapeString(c.Display(p.Now)))
		}
		if !c.Time.IsZero() {
			v.Order = c.Raw
			v.Search = c.Raw
		}
		out[i] = v
	}
	return out
}

type pageRenderer struct {
	tmpl *template.Template
}

func newPageRenderer() *pageRenderer {
	funcs := template.FuncMap{
		"alertClass": func(sev forks.Severity) string {
			if sev == forks.SeverityDanger {
				return "alert-danger"
			}
			return "alert-info"
		},
	}
	tmpl := template.Must(template.New("page.html").Funcs(funcs).ParseFS(templateFS, "templates/page.html"))
	return &pageRenderer{tmpl: tmpl}
}

func (s *Server) newPage(input string) page {
	cols := s.service.Columns()
	return page{
		Input:   input,
		Sort:    cols.StarsIndex(),
		Columns: cols,
		Now:     time.Now(),
	}
}

func (s *Server) renderPage(w http.ResponseWriter, status int, p page) {
	var buf bytes.Buffer
	if err := s.pages.tmpl.Execute(&buf, p); err != nil {
		s.logger.Error("render page", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
