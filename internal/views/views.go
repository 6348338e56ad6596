// Package views renders the feedback page. Templates are parsed with
// html/template, so every value is escaped for the context it lands in.
package views

import (
	"embed"
	"html/template"
	"io"

	"github.com/getmentor/feedback-form/internal/models"
)

// FeedbackTemplate is the name of the feedback page template
const FeedbackTemplate = "feedback"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Templates returns the parsed page templates
func Templates() *template.Template {
	return templates
}

// Render writes the feedback page for state to w
func Render(w io.Writer, state models.FormState) error {
	return templates.ExecuteTemplate(w, FeedbackTemplate, state)
}
