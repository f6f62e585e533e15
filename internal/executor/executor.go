// Package executor runs a single hook against its resolved file set and
// classifies the result into a report outcome.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/precommit/internal/builtin"
	"github.com/raphi011/precommit/internal/hook"
	"github.com/raphi011/precommit/internal/log"
	"github.com/raphi011/precommit/internal/report"
)

// Options control a single hook invocation.
type Options struct {
	// DryRun prevents built-in transforms from writing and skips external
	// process execution.
	DryRun bool
	// Root is the working directory for external commands without an
	// explicit working-dir.
	Root string
	// Timeout bounds external commands that set none of their own.
	// Zero means no limit.
	Timeout time.Duration
}

// Run executes one hook against files and returns its outcome. It never
// returns an error: every failure mode maps to an outcome kind, so the
// orchestrator can always complete the full report.
func Run(ctx context.Context, d hook.Descriptor, files []string, opts Options) report.Outcome {
	if d.Kind == hook.KindBuiltin {
		return runBuiltin(ctx, d, files, opts)
	}
	return runExternal(ctx, d, files, opts)
}

func runBuiltin(ctx context.Context, d hook.Descriptor, files []string, opts Options) report.Outcome {
	res, err := d.Transform(ctx, files, builtin.Options{DryRun: opts.DryRun, Args: d.Args})
	if err != nil {
		return report.Outcome{
			Hook:    d.Name,
			Kind:    report.ToolError,
			Message: err.Error(),
		}
	}

	if len(res.Violations) == 0 && len(res.Modified) == 0 {
		return report.Outcome{Hook: d.Name, Kind: report.Clean, Files: files}
	}

	// A transform may both fix files and report violations; the outcome
	// carries every touched path. Violations dominate the kind.
	var paths, msgs []string
	if len(res.Modified) > 0 {
		paths = append(paths, res.Modified...)
		if opts.DryRun {
			msgs = append(msgs, "would fix")
		} else {
			msgs = append(msgs, "fixed")
		}
	}
	kind := report.Modified
	if len(res.Violations) > 0 {
		kind = report.Violation
		for _, v := range res.Violations {
			paths = append(paths, v.Path)
			msgs = append(msgs, fmt.Sprintf("%s: %s", v.Path, v.Message))
		}
	}
	return report.Outcome{
		Hook:    d.Name,
		Kind:    kind,
		Files:   paths,
		Message: strings.Join(msgs, "\n"),
	}
}

func runExternal(ctx context.Context, d hook.Descriptor, files []string, opts Options) report.Outcome {
	// No files, no process.
	if len(files) == 0 {
		return report.Outcome{Hook: d.Name, Kind: report.Clean}
	}

	line := commandLine(d, files)
	l := log.FromContext(ctx)

	if opts.DryRun {
		l.Printf("[dry-run] %s: %s\n", d.Name, line)
		return report.Outcome{Hook: d.Name, Kind: report.Clean, Files: files, Message: "skipped (dry run)"}
	}

	timeout := d.Timeout
	if timeout == 0 {
		timeout = opts.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	l.Command("sh", "-c", line)

	cmd := exec.CommandContext(ctx, "sh", "-c", line)
	cmd.Dir = opts.Root
	if d.WorkingDir != "" {
		cmd.Dir = d.WorkingDir
	}
	if len(d.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range d.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	output := strings.TrimSpace(out.String())
	if err == nil {
		return report.Outcome{Hook: d.Name, Kind: report.Clean, Files: files}
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return report.Outcome{
			Hook:    d.Name,
			Kind:    report.ExternalFailure,
			Files:   files,
			Message: fmt.Sprintf("timed out after %s", timeout),
		}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		// Exit 1 is the conventional "found something" signal. Whether
		// that means rewritten files or violations depends on the hook.
		kind := report.Violation
		if d.Exit1 == hook.ConventionModified {
			kind = report.Modified
		}
		return report.Outcome{Hook: d.Name, Kind: kind, Files: files, Message: output}
	}

	msg := err.Error()
	if output != "" {
		msg = fmt.Sprintf("%s: %s", err, output)
	}
	return report.Outcome{Hook: d.Name, Kind: report.ExternalFailure, Files: files, Message: msg}
}

// commandLine builds the shell command for an external hook. A {files}
// placeholder in the template is replaced with the shell-quoted paths;
// without one, the paths are appended as trailing arguments.
func commandLine(d hook.Descriptor, files []string) string {
	parts := []string{d.Command}
	for _, a := range d.Args {
		parts = append(parts, shellQuote(a))
	}
	line := strings.Join(parts, " ")

	quoted := make([]string, len(files))
	for i, f := range files {
		quoted[i] = shellQuote(f)
	}
	joined := strings.Join(quoted, " ")

	if strings.Contains(line, "{files}") {
		return strings.ReplaceAll(line, "{files}", joined)
	}
	return line + " " + joined
}

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes.
func shellQuote(s string) string {
	// Single quotes preserve everything literally except single quotes themselves.
	// To include a single quote, we end the quoted string, add an escaped quote, and restart.
	// e.g., "it's" becomes 'it'\''s'
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
