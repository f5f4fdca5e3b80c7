// Package report writes the scaffolder's user-facing output: one tagged line
// per event ([INFO], [ OK ], [SKIP], [WARN], [FAIL]), colored only when the
// destination is a terminal. It also builds the structured command logger
// used for --verbose diagnostics.
package report
