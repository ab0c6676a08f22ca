package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-relnotes/pkg/notes"
	"github.com/goliatone/go-relnotes/pkg/render/template/gotemplate"
	"github.com/goliatone/go-relnotes/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	assertGolden(t, "hello.golden", result, written)
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})

	assertGolden(t, "use-global.golden", result, written)
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	if !pongo2.FilterExists("relnotes_shout") {
		err := engine.RegisterFilter("relnotes_shout", func(input any, _ any) (any, error) {
			if input == nil {
				return "", nil
			}
			return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
		})
		if err != nil {
			t.Fatalf("register filter: %v", err)
		}
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})

	assertGolden(t, "use-filter.golden", result, written)
}

func TestGoTemplateEngine_RegisterFilterRejectsDuplicates(t *testing.T) {
	engine := newEngine(t)
	if err := engine.RegisterFilter("safe", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate builtin filter to be rejected")
	}
	if err := engine.RegisterFilter("", nil); err == nil {
		t.Fatalf("expected empty filter registration to fail")
	}
}

func TestGoTemplateEngine_RenderStringUsesJSONTags(t *testing.T) {
	engine := newEngine(t)
	req := notes.Request{Space: "Default", Project: "Web", Environment: "Production", Date: "2024-06-01"}

	got, err := engine.RenderString("{{ space }}/{{ project }}/{{ environment }}@{{ date }}", req)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if want := "Default/Web/Production@2024-06-01"; got != want {
		t.Fatalf("render string mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestGoTemplateEngine_SafeFilterKeepsValuesVerbatim(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString("{{ value|safe }}", map[string]any{"value": "R&D <Core> \"api\""})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if want := "R&D <Core> \"api\""; got != want {
		t.Fatalf("expected verbatim value\nwant: %q\n got: %q", want, got)
	}
}

func TestGoTemplateEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("does-not-exist", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestGoTemplateEngine_BaseDir(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithBaseDir(filepath.Join("testdata", "templates")))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	got, err := engine.RenderTemplate("hello.tpl", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden")); got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func assertGolden(t *testing.T, name, result, written string) {
	t.Helper()

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", name))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}
