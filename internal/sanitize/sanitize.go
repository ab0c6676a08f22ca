// Package sanitize strips markup from user supplied names before they are
// interpolated into the release notes. It is opt-in; by default names are
// inserted verbatim.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// maxPasses bounds decode/strip rounds for nested or multiply encoded markup.
const maxPasses = 5

var policy = bluemonday.StrictPolicy()

// String removes every HTML element from s, including elements hidden behind
// entity encoding, and trims surrounding whitespace. Plain text entities such
// as "&" survive as literal characters.
func String(s string) string {
	out := s
	for i := 0; i < maxPasses; i++ {
		next := html.UnescapeString(policy.Sanitize(html.UnescapeString(out)))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	// Still changing: keep bluemonday's escaped form so nothing decodes into markup.
	return strings.TrimSpace(policy.Sanitize(out))
}

// Names applies String to the space, project and environment names.
func Names(space, project, environment string) (string, string, string) {
	return String(space), String(project), String(environment)
}
