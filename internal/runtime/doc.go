// Package runtime probes the JavaScript toolchain a project depends on. It
// wraps external command execution behind the Runner interface, parses and
// gates the Node.js version, and knows how each supported package manager
// spells install, add-dev and exec invocations.
package runtime
