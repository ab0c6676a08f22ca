package notes

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date form used for the Generated line.
const DateLayout = "2006-01-02"

// Request carries the values interpolated into the release notes template.
type Request struct {
	Space       string `json:"space"`
	Project     string `json:"project"`
	Environment string `json:"environment"`
	// Date is the generation day in DateLayout form, without a time component.
	Date string `json:"date"`
}

// NewRequest builds a Request whose Date is the UTC calendar date of now.
func NewRequest(space, project, environment string, now time.Time) Request {
	return Request{
		Space:       space,
		Project:     project,
		Environment: environment,
		Date:        FormatDate(now),
	}
}

// FormatDate returns the UTC calendar date of t.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Validate reports the first empty field. Any non-empty value, whitespace
// included, is accepted as-is; no escaping or sanitising happens here.
func (r Request) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"space", r.Space},
		{"project", r.Project},
		{"environment", r.Environment},
		{"date", r.Date},
	}
	for _, field := range fields {
		if field.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("notes: date %q is not in %s form", r.Date, DateLayout)
	}
	return nil
}

// TemplateData exposes the request as the context map handed to templates.
func (r Request) TemplateData() map[string]any {
	return map[string]any{
		"space":       r.Space,
		"project":     r.Project,
		"environment": r.Environment,
		"date":        r.Date,
	}
}
