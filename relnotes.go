// Package relnotes generates the release notes template for an Octopus Deploy
// project. The root package re-exports the common entry points so callers can
// depend on a single import path.
package relnotes

import (
	"context"
	"io/fs"
	"time"

	"github.com/goliatone/go-relnotes/pkg/generator"
	"github.com/goliatone/go-relnotes/pkg/notes"
	"github.com/goliatone/go-relnotes/pkg/render"
)

// Request names the space, project and environment to generate notes for.
type Request = generator.Request

// Result describes a completed generation.
type Result = generator.Result

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// Generate writes RELEASE_NOTES.md using the supplied options and returns the
// result of the run.
func Generate(ctx context.Context, req Request, options ...generator.Option) (Result, error) {
	return generator.New(options...).Generate(ctx, req)
}

// Render fills the embedded template for the given names, dated with the UTC
// calendar date of now. Values are inserted verbatim.
func Render(space, project, environment string, now time.Time) string {
	return render.Markdown(notes.NewRequest(space, project, environment, now))
}

// EmbeddedTemplates exposes the built-in template bundle so callers can copy
// or extend it and pass the result back through render.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}
