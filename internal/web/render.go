// Package web holds the HTML pages and the helpers handlers use to render
// them with flash messages.
package web

import (
	"embed"
	"html/template"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every embedded page. Page templates are addressed by file
// name, e.g. "venues.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}

// Install parses the pages and makes them the engine's HTML renderer.
func Install(r *gin.Engine) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)
	return nil
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"datetime": FormatDatetime,
		"join":     strings.Join,
		"has":      slices.Contains[[]string, string],
	}
}

// FormatDatetime renders t as "full" (Tuesday October, 15, 2026 at 8:00PM),
// "medium" (Tue 10, 15, 2026 8:00PM), or with format as a Go layout.
func FormatDatetime(t time.Time, format string) string {
	switch format {
	case "full":
		format = "Monday January, 2, 2006 at 3:04PM"
	case "medium", "":
		format = "Mon 01, 02, 2006 3:04PM"
	}
	return t.Format(format)
}
