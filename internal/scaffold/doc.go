// Package scaffold materializes project artifacts without ever overwriting
// them. An Engine ensures one Artifact at a time: a template from the
// project's templates directory is copied verbatim when present, otherwise
// an embedded default is rendered with text/template. BuildSkeleton creates
// the feature-oriented source tree. The ordered artifact list and the
// skeleton layout live in the embedded catalog.yaml.
package scaffold
