// Package report aggregates hook outcomes and derives the process exit
// code consumers of the pre-commit contract depend on.
package report

// Process exit codes. This mapping is a hard external contract:
// version-control integrations branch on it.
const (
	// ExitClean means every hook passed without findings.
	ExitClean = 0
	// ExitFindings means at least one hook modified files, found
	// violations, or failed externally.
	ExitFindings = 1
	// ExitToolError means the engine itself failed (bad pattern, I/O
	// error), distinct from hooks finding issues.
	ExitToolError = 2
)

// Kind classifies the result of running one hook.
type Kind int

const (
	// Clean means the hook found nothing to report.
	Clean Kind = iota
	// Modified means files were changed in place (or would be, in
	// dry-run mode).
	Modified
	// Violation means issues were found that cannot be auto-fixed.
	Violation
	// ExternalFailure means an external hook could not be provisioned,
	// failed to spawn, or exited with an unexpected status.
	ExternalFailure
	// ToolError means an engine-level fault: pattern error, I/O error.
	ToolError
)

func (k Kind) String() string {
	switch k {
	case Clean:
		return "clean"
	case Modified:
		return "modified"
	case Violation:
		return "violation"
	case ExternalFailure:
		return "external failure"
	case ToolError:
		return "tool error"
	default:
		return "unknown"
	}
}

// Outcome is the result of running a single hook.
type Outcome struct {
	Hook    string
	Kind    Kind
	Files   []string
	Message string
}

// Report is the ordered sequence of outcomes for one full invocation,
// following configured hook order regardless of execution interleaving.
type Report struct {
	Outcomes []Outcome
}

// Append adds an outcome to the report.
func (r *Report) Append(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// ExitCode derives the aggregate process exit code.
func (r *Report) ExitCode() int {
	code := ExitClean
	for _, o := range r.Outcomes {
		switch o.Kind {
		case ToolError:
			return ExitToolError
		case Modified, Violation, ExternalFailure:
			code = ExitFindings
		}
	}
	return code
}

// Clean reports whether every outcome passed without findings.
func (r *Report) Clean() bool {
	return r.ExitCode() == ExitClean
}
