// Package manifest reads a project's package.json. The scaffolder only needs
// the manifest's presence and shape, so it decodes a handful of fields and
// validates the document against an embedded JSON Schema before any
// dependency installation is attempted.
package manifest
