package render

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-relnotes/pkg/notes"
	rendertemplate "github.com/goliatone/go-relnotes/pkg/render/template"
	"github.com/goliatone/go-relnotes/pkg/render/template/gotemplate"
)

// ContentType is the media type of the rendered document.
const ContentType = "text/markdown; charset=utf-8"

// Renderer executes the release notes template against a request.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	name      string
}

// New constructs a Renderer. Without options it uses the embedded bundle and
// the pongo2 engine.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateName: TemplateName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine := cfg.templateRenderer
	if engine == nil {
		goEngine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("render: configure template renderer: %w", err)
		}
		engine = goEngine
	}

	return &Renderer{templates: engine, name: cfg.templateName}, nil
}

// Render fills the template with req. Values are inserted verbatim. Errors only
// come from the template bundle (missing file, syntax); the request itself is
// not validated here.
func (r *Renderer) Render(req notes.Request) (string, error) {
	if r == nil || r.templates == nil {
		return "", fmt.Errorf("render: renderer is not configured")
	}
	out, err := r.templates.RenderTemplate(r.name, req.TemplateData())
	if err != nil {
		return "", fmt.Errorf("render: release notes: %w", err)
	}
	return out, nil
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
)

// Default returns the shared renderer over the embedded bundle.
func Default() *Renderer {
	defaultOnce.Do(func() {
		r, err := New()
		if err != nil {
			panic(fmt.Sprintf("render: embedded templates: %v", err))
		}
		defaultRenderer = r
	})
	return defaultRenderer
}

// Markdown renders the release notes document for req using the embedded
// template. It cannot fail for any string input; a panic here means the
// embedded template itself is broken.
func Markdown(req notes.Request) string {
	out, err := Default().Render(req)
	if err != nil {
		panic(err)
	}
	return out
}
