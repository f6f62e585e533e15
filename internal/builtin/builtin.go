// Package builtin implements the compiled-in hook transforms.
//
// Each transform is a pure function over a resolved file set. Transforms
// report which files they changed (or would change in dry-run mode) and
// which files carry violations they cannot fix. An error return means an
// engine-level fault (I/O failure), not a finding.
//
// Fixer transforms write through [WriteFileAtomic] so an interrupted run
// never leaves a truncated file behind. Files that are not valid UTF-8 are
// skipped by the text-based transforms, matching the behavior external
// pre-commit tooling expects.
package builtin

import (
	"context"
	"os"
	"unicode/utf8"
)

// Options carries per-run flags into a transform.
type Options struct {
	// DryRun reports what would change without writing.
	DryRun bool
	// Args are extra hook arguments from configuration.
	Args []string
}

// Violation is an issue a transform found but cannot fix.
type Violation struct {
	Path    string
	Message string
}

// Result is the structured outcome of one transform invocation.
type Result struct {
	// Modified lists files changed in place, or that would be changed
	// in dry-run mode.
	Modified []string
	// Violations lists unfixable findings.
	Violations []Violation
}

// Func is the transform contract shared by all built-in hooks.
type Func func(ctx context.Context, files []string, opt Options) (Result, error)

// readText reads a file and reports whether it contains valid UTF-8.
// Non-UTF-8 files are skipped by text transforms, not treated as errors.
func readText(path string) (content string, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	if !utf8.Valid(data) {
		return "", false, nil
	}
	return string(data), true, nil
}
