// Package cli defines the Cobra command tree for the rnsetup CLI. The root
// command runs the setup procedure; doctor, env, config and version are
// registered as subcommands, one per file. Commands only handle flags and
// output and delegate the work to the internal packages.
package cli
