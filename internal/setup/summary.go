package setup

import (
	"github.com/rnkit-labs/rnsetup/internal/report"
)

// PrintSummary prints the closing summary block for state.
func PrintSummary(r *report.Reporter, state *RunState) {
	r.Heading("Summary")
	r.Plain("Failures: %d", state.Failures)
	r.Plain("Warnings: %d", state.Warnings)

	switch state.Outcome() {
	case OutcomeClean:
		r.Success("Setup complete")
	case OutcomeWithCaveats:
		r.Warn("Setup complete with %d warning(s)", state.Warnings)
	default:
		r.Error("Setup finished with %d failure(s)", state.Failures)
	}
}
