// Package notes defines the request value consumed by the release notes
// renderer. A Request is built once per invocation, handed to the renderer and
// discarded; nothing in this module mutates it after construction.
package notes
