// Package narration prints the advisory progress text shown while release
// notes are generated. The output has no machine-readable contract.
package narration

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	ruleWidth = 80
	title     = "Octopus Deploy Release Notes Generator"
)

// Narrator writes progress text to w. Styling degrades to plain text when w is
// not a terminal.
type Narrator struct {
	w       io.Writer
	heading lipgloss.Style
	step    lipgloss.Style
	detail  lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
}

// New returns a Narrator writing to w.
func New(w io.Writer) *Narrator {
	if w == nil {
		w = io.Discard
	}
	r := lipgloss.NewRenderer(w)
	return &Narrator{
		w:       w,
		heading: r.NewStyle().Bold(true),
		step:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		detail:  r.NewStyle().Faint(true),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		muted:   r.NewStyle().Italic(true),
	}
}

// Discard returns a Narrator that prints nothing.
func Discard() *Narrator {
	return New(io.Discard)
}

// Banner prints the title and the configuration block.
func (n *Narrator) Banner(space, project, environment string) {
	rule := strings.Repeat("=", ruleWidth)
	n.println(rule)
	n.println(n.heading.Render(title))
	n.println(rule)
	n.println("")
	n.println("Configuration:")
	n.printf("  Space:       %s\n", space)
	n.printf("  Project:     %s\n", project)
	n.printf("  Environment: %s\n", environment)
	n.println("")
}

// Steps prints every workflow step in order.
func (n *Narrator) Steps(steps []Step) {
	for i, s := range steps {
		n.println(n.step.Render(fmt.Sprintf("Step %d: %s", i+1, s.Title)))
		for _, d := range s.Details {
			n.println(n.detail.Render("  -> " + d))
		}
		n.println("")
	}
}

// Done prints the success line and the closing note.
func (n *Narrator) Done(path string) {
	n.println(n.success.Render("✓ Release notes template generated successfully!"))
	n.printf("  Output: %s\n", path)
	n.println("")
	n.println(n.muted.Render("Note: This is a demonstration tool. To generate actual release notes,"))
	n.println(n.muted.Render("configure Octopus Deploy server URL and API key, then use the MCP tools."))
}

func (n *Narrator) println(s string) {
	_, _ = fmt.Fprintln(n.w, s)
}

func (n *Narrator) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(n.w, format, args...)
}
