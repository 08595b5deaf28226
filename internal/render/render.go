package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"jmorrow.dev/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PlaceholderImage is the image shown for catalog entries without an imgSrc.
// Must match the path used in templates/partials.html.
const PlaceholderImage = "/static/images/placeholder.svg"

// Renderer renders site pages from the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded template set.
func New() (*Renderer, error) {
	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// IndexData feeds the landing page.
type IndexData struct {
	Projects []models.Project
	Posts    []models.Post
}

// ProjectsData feeds the projects page.
type ProjectsData struct {
	Projects []models.Project
}

// BlogData feeds the blog index.
type BlogData struct {
	Posts []models.Post
}

// PostData feeds a single article page.
type PostData struct {
	Post *models.Post
}

// Index renders the landing page.
func (r *Renderer) Index(w io.Writer, data IndexData) error {
	return r.execute(w, "index.html", data)
}

// Projects renders the project catalog page. Cards appear in catalog order;
// a card links out only when the record carries an href.
func (r *Renderer) Projects(w io.Writer, data ProjectsData) error {
	return r.execute(w, "projects.html", data)
}

// Blog renders the blog index.
func (r *Renderer) Blog(w io.Writer, data BlogData) error {
	return r.execute(w, "blog.html", data)
}

// Post renders a single article page.
func (r *Renderer) Post(w io.Writer, data PostData) error {
	return r.execute(w, "post.html", data)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
