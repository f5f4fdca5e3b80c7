// Package setup drives a scaffolding run. The procedure is an ordered list
// of Steps; each returns a tagged Result (success, skipped, warning or
// failure) that the driver prints as it happens and folds into a RunState.
// A failure from a fatal step aborts the run; any other failure is counted
// and the run continues. The exit status is decided by the failure count
// alone.
package setup
