package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-relnotes/internal/logging"
	"github.com/goliatone/go-relnotes/internal/narration"
	"github.com/goliatone/go-relnotes/internal/output"
	"github.com/goliatone/go-relnotes/internal/sanitize"
	"github.com/goliatone/go-relnotes/pkg/notes"
	"github.com/goliatone/go-relnotes/pkg/render"
)

// Request names the Octopus space, project and environment the notes are for.
type Request struct {
	Space       string
	Project     string
	Environment string
}

// Result describes a completed run.
type Result struct {
	Path     string
	Bytes    int
	Date     string
	RunID    string
	Markdown string
}

// Generator renders and persists release notes.
type Generator struct {
	renderer  *render.Renderer
	narrator  *narration.Narrator
	now       func() time.Time
	outputDir string
	fileName  string
	sanitize  bool
	log       zerolog.Logger
	logSet    bool
}

// New constructs a Generator. Defaults: embedded template, silent narrator,
// wall clock, current directory, RELEASE_NOTES.md, names inserted verbatim.
func New(options ...Option) *Generator {
	g := &Generator{
		narrator:  narration.Discard(),
		now:       time.Now,
		outputDir: ".",
		fileName:  output.DefaultFileName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.renderer == nil {
		g.renderer = render.Default()
	}
	if !g.logSet {
		g.log = logging.Logger()
	}
	return g
}

// Generate narrates the workflow, renders the notes and writes them to disk,
// overwriting any previous file. Validation failures wrap
// notes.ErrMissingField; write failures are *output.WriteError.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if err := g.check(ctx, req); err != nil {
		return Result{}, err
	}

	runID := xid.New().String()
	log := g.log.With().Str("run_id", runID).Str("project", req.Project).Logger()

	g.narrator.Banner(req.Space, req.Project, req.Environment)
	g.narrator.Steps(narration.WorkflowSteps(req.Space, req.Project, req.Environment))

	result, err := g.build(req)
	if err != nil {
		return Result{}, err
	}
	result.RunID = runID

	path, err := output.WriteFile(g.outputDir, g.fileName, []byte(result.Markdown))
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("write release notes")
		return Result{}, err
	}
	result.Path = path

	log.Info().Str("path", path).Int("bytes", result.Bytes).Str("date", result.Date).Msg("release notes written")
	g.narrator.Done(path)
	return result, nil
}

// Preview renders the notes without narration or file output.
func (g *Generator) Preview(ctx context.Context, req Request) (Result, error) {
	if err := g.check(ctx, req); err != nil {
		return Result{}, err
	}
	result, err := g.build(req)
	if err != nil {
		return Result{}, err
	}
	result.RunID = xid.New().String()
	g.log.Debug().Str("run_id", result.RunID).Int("bytes", result.Bytes).Msg("release notes previewed")
	return result, nil
}

func (g *Generator) check(ctx context.Context, req Request) error {
	if ctx == nil {
		return errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, field := range []struct{ name, value string }{
		{"space", req.Space},
		{"project", req.Project},
		{"environment", req.Environment},
	} {
		if field.value == "" {
			return fmt.Errorf("generator: %w: %s", notes.ErrMissingField, field.name)
		}
	}
	return nil
}

func (g *Generator) build(req Request) (Result, error) {
	space, project, environment := req.Space, req.Project, req.Environment
	if g.sanitize {
		space, project, environment = sanitize.Names(space, project, environment)
	}

	nr := notes.NewRequest(space, project, environment, g.now())
	if err := nr.Validate(); err != nil {
		return Result{}, fmt.Errorf("generator: %w", err)
	}

	md, err := g.renderer.Render(nr)
	if err != nil {
		return Result{}, fmt.Errorf("generator: %w", err)
	}
	return Result{
		Bytes:    len(md),
		Date:     nr.Date,
		Markdown: md,
	}, nil
}
