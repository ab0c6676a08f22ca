// Package render turns a notes.Request into the release notes markdown
// document. Markdown is the total entry point backed by the embedded template;
// Renderer exposes the same pipeline over caller supplied template bundles.
package render
