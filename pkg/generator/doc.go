// Package generator wires narration, rendering and the file write into the
// single-shot release notes run the CLI performs. Preview runs the same
// pipeline without touching disk.
package generator
