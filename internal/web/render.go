package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"locallibrary/internal/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{
	"index",
	"author_list", "author_detail", "author_form", "author_delete",
	"genre_list", "genre_detail", "genre_form", "genre_delete",
	"book_list", "book_detail", "book_form", "book_delete",
	"bookinstance_list", "bookinstance_detail", "bookinstance_form", "bookinstance_delete",
	"404", "500",
}

// Renderer holds one compiled template set per page, each page parsed
// together with the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"statuses": entity.Statuses,
	}
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("base.html").Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

// Page is the payload every template executes against.
type Page struct {
	Title string
	Data  interface{}
}

// HTML renders the named page. The template executes into a buffer first so
// a render failure can still become a 500 instead of a half-written page.
func (rn *Renderer) HTML(w http.ResponseWriter, status int, page string, p Page) {
	t, ok := rn.templates[page]
	if !ok {
		rn.ServerError(w, fmt.Errorf("unknown template %q", page))
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", p); err != nil {
		rn.ServerError(w, fmt.Errorf("render %s: %w", page, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (rn *Renderer) NotFound(w http.ResponseWriter) {
	rn.HTML(w, http.StatusNotFound, "404", Page{Title: "Not Found"})
}

func (rn *Renderer) ServerError(w http.ResponseWriter, err error) {
	log.Printf("server error: %v", err)

	t, ok := rn.templates["500"]
	if !ok {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if terr := t.ExecuteTemplate(&buf, "base", Page{Title: "Error"}); terr != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = buf.WriteTo(w)
}
