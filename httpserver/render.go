package httpserver

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed views/*.html
var viewsFS embed.FS

// Renderer serves the small server-rendered surface (login, register,
// movie entry form, movie listing) through echo's Renderer contract.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"shortDate": shortDate,
		"orNoData":  orNoData,
	}
	return &Renderer{
		templates: template.Must(template.New("").Funcs(funcs).ParseFS(viewsFS, "views/*.html")),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func shortDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2-1-2006")
}

func orNoData(s string) template.HTML {
	if s == "" {
		return template.HTML(`<p style="color:red">No Data</p>`)
	}
	return template.HTML(template.HTMLEscapeString(s))
}
