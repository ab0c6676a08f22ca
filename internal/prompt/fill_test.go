package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type scriptedDriver struct {
	answers []string
	err     error
	asked   []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if d.err != nil {
		return "", d.err
	}
	answer := d.answers[0]
	d.answers = d.answers[1:]
	return answer, nil
}

var fields = []Field{
	{Label: "Space name", Example: "Default"},
	{Label: "Project name", Example: "Octopus Copilot Function"},
	{Label: "Environment name", Example: "Production"},
}

func TestFill_AsksOnlyForMissingValues(t *testing.T) {
	driver := &scriptedDriver{answers: []string{" Web ", "Production"}}

	got, err := Fill(context.Background(), driver, fields, []string{"Default", "", ""})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if diff := cmp.Diff([]string{"Default", "Web", "Production"}, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Project name:", "Environment name:"}, driver.asked); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestFill_PropagatesAbort(t *testing.T) {
	driver := &scriptedDriver{err: ErrAborted}
	_, err := Fill(context.Background(), driver, fields, []string{"", "", ""})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestFill_RejectsBlankAnswer(t *testing.T) {
	driver := &scriptedDriver{answers: []string{"   "}}
	if _, err := Fill(context.Background(), driver, fields, []string{"", "Web", "Production"}); err == nil {
		t.Fatalf("expected blank answer to fail")
	}
}

func TestFill_LengthMismatch(t *testing.T) {
	if _, err := Fill(context.Background(), &scriptedDriver{}, fields, []string{"a"}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}
