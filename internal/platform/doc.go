// Package platform provides cross-platform filesystem helpers used while
// materializing a project: a writability probe for the target directory,
// permission management that degrades to a no-op on Windows, and copies that
// refuse to replace existing files.
package platform
