package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/goliatone/go-relnotes/internal/config"
	"github.com/goliatone/go-relnotes/internal/logging"
	"github.com/goliatone/go-relnotes/internal/narration"
	"github.com/goliatone/go-relnotes/internal/output"
	"github.com/goliatone/go-relnotes/internal/prompt"
	"github.com/goliatone/go-relnotes/pkg/generator"
	"github.com/goliatone/go-relnotes/pkg/notes"
)

var promptFields = []prompt.Field{
	{Label: "Space name", Example: "Default"},
	{Label: "Project name", Example: "Octopus Copilot Function"},
	{Label: "Environment name", Example: "Production"},
}

// Runner executes one CLI invocation. Fields are exposed so tests can swap the
// terminal, clock and prompt driver.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Prompt prompt.Driver
	Now    func() time.Time
}

// NewRunner returns a Runner using the survey prompt and the wall clock.
func NewRunner(stdout, stderr io.Writer) *Runner {
	return &Runner{
		Stdout: stdout,
		Stderr: stderr,
		Prompt: prompt.NewSurveyDriver(),
		Now:    time.Now,
	}
}

// Run is the process entrypoint: it returns the exit code for args (excluding
// argv[0]).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return NewRunner(stdout, stderr).Run(ctx, args)
}

// Run parses args, generates the release notes and maps every failure to exit
// code 1 with a message on Stderr.
func (r *Runner) Run(ctx context.Context, args []string) (code int) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Error("unhandled failure", "panic", fmt.Sprint(rec))
			fmt.Fprintf(r.Stderr, "Fatal error: %v\n", rec)
			code = ExitFailure
		}
	}()

	inv, err := ParseInvocation(args, r.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitFailure
	}

	cfg, err := config.Load(inv.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "Error loading configuration: %v\n", err)
		return ExitFailure
	}
	applyOverrides(&cfg, inv)
	logging.InitLogger(cfg.Logger.File, cfg.Logger.MaxSizeMB, cfg.Logger.MaxBackups, cfg.Logger.MaxAgeDays, cfg.Logger.Compress, cfg.Logger.Level)

	if !inv.Complete() && inv.Interactive {
		filled, err := prompt.Fill(ctx, r.Prompt, promptFields, inv.Positionals())
		if err != nil {
			return r.fail(err)
		}
		inv.Space, inv.Project, inv.Environment = filled[0], filled[1], filled[2]
	}
	if !inv.Complete() {
		return r.fail(ErrUsage)
	}

	narrator := narration.New(r.Stdout)
	if inv.Quiet || inv.DryRun {
		narrator = narration.Discard()
	}

	gen := generator.New(
		generator.WithNarrator(narrator),
		generator.WithClock(r.Now),
		generator.WithOutputDir(cfg.Output.Dir),
		generator.WithFileName(cfg.Output.FileName),
		generator.WithSanitizer(cfg.Sanitize),
		generator.WithLogger(logging.Logger()),
	)
	req := generator.Request{Space: inv.Space, Project: inv.Project, Environment: inv.Environment}

	if inv.DryRun {
		result, err := gen.Preview(ctx, req)
		if err != nil {
			return r.fail(err)
		}
		fmt.Fprint(r.Stdout, result.Markdown)
		return ExitOK
	}

	if _, err := gen.Generate(ctx, req); err != nil {
		return r.fail(err)
	}
	return ExitOK
}

func (r *Runner) fail(err error) int {
	var writeErr *output.WriteError
	switch {
	case errors.Is(err, ErrUsage), errors.Is(err, notes.ErrMissingField):
		writeUsage(r.Stderr)
	case errors.Is(err, prompt.ErrAborted):
		fmt.Fprintln(r.Stderr, "Aborted.")
	case errors.As(err, &writeErr):
		fmt.Fprintf(r.Stderr, "Error generating release notes: %v\n", writeErr)
	default:
		logging.Error("unhandled failure", "error", err)
		fmt.Fprintf(r.Stderr, "Fatal error: %v\n", err)
	}
	return ExitFailure
}

func applyOverrides(cfg *config.Config, inv Invocation) {
	if inv.OutputDir != "" {
		cfg.Output.Dir = inv.OutputDir
	}
	if inv.OutputName != "" {
		cfg.Output.FileName = inv.OutputName
	}
	if inv.LogLevel != "" {
		cfg.Logger.Level = inv.LogLevel
	}
	if inv.Sanitize {
		cfg.Sanitize = true
	}
}
