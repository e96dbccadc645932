package httpx

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/modelgrid/modelgrid/internal/view"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	Cells  *view.CellResolver // Cell value resolution for table bodies (optional)
	Logger *slog.Logger       // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer from the embedded templates.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	cells := cfg.Cells
	if cells == nil {
		cells = view.NewCellResolver()
	}

	funcs := template.FuncMap{
		// cell resolves a column's display value for a record row.
		"cell": cells.Display,
		"add":  func(a, b int) int { return a + b },
	}

	t, err := template.New("root").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed",
				slog.Any("error", err),
				slog.String("phase", "initialization"),
			)
		}
		return nil, err
	}
	return &TemplateRenderer{t: t, logger: cfg.Logger}, nil
}

// RenderPage executes the named page template wrapped in the layout.
func (r *TemplateRenderer) RenderPage(w http.ResponseWriter, name string, data any) error {
	if r.t == nil {
		return errors.New("renderer not initialized")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.t.ExecuteTemplate(w, name, data); err != nil {
		if r.logger != nil {
			r.logger.Error("template execution failed",
				slog.String("template", name),
				slog.Any("error", err),
			)
		}
		return err
	}
	return nil
}
