package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the storefront's embedded page templates
type Renderer struct {
	templates *template.Template
	log       logrus.FieldLogger
}

// NewRenderer parses the embedded templates
func NewRenderer(log logrus.FieldLogger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl, log: log}, nil
}

// Render executes the named page into a buffer first, so a template error
// becomes a clean 500 instead of a half-written page
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		r.log.WithError(err).WithField("template", name).Error("error rendering template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
