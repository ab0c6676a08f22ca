// Package prompt asks for missing CLI values interactively.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a single text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// Driver abstracts the terminal so callers can be tested without one.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns a Driver backed by survey.
func NewSurveyDriver() Driver {
	return &surveyDriver{}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validator := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validator(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// NonEmpty rejects blank answers.
func NonEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

// Field names one positional value the CLI may need to ask for.
type Field struct {
	Label   string
	Example string
}

// Fill asks for every empty entry in values, in order, using fields for the
// prompt text. values and fields must have the same length.
func Fill(ctx context.Context, driver Driver, fields []Field, values []string) ([]string, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}
	if len(fields) != len(values) {
		return nil, fmt.Errorf("prompt: %d fields for %d values", len(fields), len(values))
	}
	out := make([]string, len(values))
	copy(out, values)
	for i, field := range fields {
		if out[i] != "" {
			continue
		}
		answer, err := driver.Input(ctx, InputConfig{
			Message:   field.Label + ":",
			Help:      "e.g. " + field.Example,
			Validator: NonEmpty,
		})
		if err != nil {
			return nil, err
		}
		if err := NonEmpty(answer); err != nil {
			return nil, fmt.Errorf("prompt: %s: %w", strings.ToLower(field.Label), err)
		}
		out[i] = strings.TrimSpace(answer)
	}
	return out, nil
}
