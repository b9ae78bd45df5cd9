package admin

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Dashboard(w io.Writer, d Dashboard) error {
	return r.tmpl.ExecuteTemplate(w, "dashboard", d)
}

func (r *Renderer) Detail(w io.Writer, d Detail) error {
	return r.tmpl.ExecuteTemplate(w, "detail", d)
}

func (r *Renderer) Bill(w io.Writer, b Bill) error {
	return r.tmpl.ExecuteTemplate(w, "bill", b)
}

func (r *Renderer) NotFound(w io.Writer, orderID string) error {
	return r.tmpl.ExecuteTemplate(w, "notfound", orderID)
}
