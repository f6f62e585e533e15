package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles and symbols for rendered outcomes.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

func symbol(k Kind) string {
	switch k {
	case Clean:
		return "✓"
	case Modified:
		return "±"
	case Violation:
		return "✗"
	case ExternalFailure:
		return "✗"
	default:
		return "!"
	}
}

func style(k Kind) lipgloss.Style {
	switch k {
	case Clean:
		return successStyle
	case Modified:
		return warnStyle
	default:
		return errorStyle
	}
}

// Render writes a human-readable summary of the report. When color is
// false (e.g. stdout is not a terminal), output is plain text.
func Render(w io.Writer, r *Report, color bool) {
	paint := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	for _, o := range r.Outcomes {
		mark := paint(style(o.Kind), symbol(o.Kind))
		fmt.Fprintf(w, "%s %s: %s", mark, o.Hook, o.Kind)
		if n := len(o.Files); n > 0 {
			fmt.Fprintf(w, " (%d %s)", n, plural(n, "file", "files"))
		}
		fmt.Fprintln(w)

		if o.Message != "" {
			fmt.Fprintf(w, "    %s\n", paint(mutedStyle, o.Message))
		}
		// Clean outcomes keep the file count but skip the listing:
		// a repo-wide run would otherwise dump every selected path.
		if o.Kind != Clean {
			for _, f := range o.Files {
				fmt.Fprintf(w, "    %s\n", f)
			}
		}
	}

	code := r.ExitCode()
	switch code {
	case ExitClean:
		fmt.Fprintln(w, paint(successStyle, "All hooks passed."))
	case ExitFindings:
		fmt.Fprintln(w, paint(boldStyle, "Hooks found or fixed issues."))
	default:
		fmt.Fprintln(w, paint(errorStyle, "Engine error while running hooks."))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
