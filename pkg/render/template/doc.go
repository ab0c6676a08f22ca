// Package template defines the engine seam the release notes renderer relies
// on. The pongo2-backed implementation lives in the gotemplate subpackage;
// callers can supply any other engine that satisfies TemplateRenderer.
package template
