package generator

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-relnotes/internal/narration"
	"github.com/goliatone/go-relnotes/pkg/render"
)

// Option customises a Generator.
type Option func(*Generator)

// WithRenderer injects a renderer, e.g. one built over a custom template bundle.
func WithRenderer(r *render.Renderer) Option {
	return func(g *Generator) {
		if r != nil {
			g.renderer = r
		}
	}
}

// WithNarrator replaces the progress narrator.
func WithNarrator(n *narration.Narrator) Option {
	return func(g *Generator) {
		if n != nil {
			g.narrator = n
		}
	}
}

// WithClock overrides the time source used for the Generated date.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithOutputDir sets the directory RELEASE_NOTES.md is written to.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outputDir = dir
	}
}

// WithFileName overrides the output file name.
func WithFileName(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.fileName = name
		}
	}
}

// WithSanitizer strips markup from the three names before rendering.
func WithSanitizer(enabled bool) Option {
	return func(g *Generator) {
		g.sanitize = enabled
	}
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) {
		g.log = l
		g.logSet = true
	}
}
