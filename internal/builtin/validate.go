package builtin

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Validate checks that a built-in transform meets the hook contract:
// it accepts an empty file set, never mutates files in dry-run mode,
// detects its trigger input, and (for fixers) is idempotent after a fix.
func Validate(ctx context.Context, name string, fn Func) error {
	// Empty file set must be a no-op.
	if _, err := fn(ctx, nil, Options{}); err != nil {
		return fmt.Errorf("%s failed on empty file set: %w", name, err)
	}

	dir, err := os.MkdirTemp("", "precommit-validate-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, sampleName(name))
	if err := os.WriteFile(path, sampleContent(name), 0644); err != nil {
		return err
	}
	original, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Dry-run must detect the finding without touching the file.
	res, err := fn(ctx, []string{path}, Options{DryRun: true})
	if err != nil {
		return fmt.Errorf("%s failed in dry-run: %w", name, err)
	}
	if len(res.Modified) == 0 && len(res.Violations) == 0 {
		return fmt.Errorf("%s did not detect its trigger input in dry-run", name)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !bytes.Equal(original, after) {
		return fmt.Errorf("%s modified a file in dry-run mode", name)
	}

	// Real run must report the finding.
	res, err = fn(ctx, []string{path}, Options{})
	if err != nil {
		return fmt.Errorf("%s failed on trigger input: %w", name, err)
	}
	fixed := len(res.Modified) > 0
	if !fixed && len(res.Violations) == 0 {
		return fmt.Errorf("%s did not report its trigger input", name)
	}

	// A fixer must converge: running again on fixed input reports clean.
	if fixed {
		res, err = fn(ctx, []string{path}, Options{})
		if err != nil {
			return fmt.Errorf("%s failed on already-fixed input: %w", name, err)
		}
		if len(res.Modified) != 0 || len(res.Violations) != 0 {
			return fmt.Errorf("%s is not idempotent: second run still reports changes", name)
		}
	}

	return nil
}

func sampleName(hook string) string {
	switch hook {
	case "check-yaml":
		return "sample.yaml"
	case "pretty-format-json":
		return "sample.json"
	default:
		return "sample.txt"
	}
}

// sampleContent returns input that must trigger the named hook.
func sampleContent(hook string) []byte {
	switch hook {
	case "check-yaml":
		return []byte("key: [unclosed\n")
	case "pretty-format-json":
		return []byte(`{"a":1}`)
	case "check-added-large-files":
		return bytes.Repeat([]byte{'x'}, DefaultMaxBytes+1)
	case "end-of-file-fixer":
		return []byte("no trailing newline")
	default:
		return []byte("line with trailing spaces   \n")
	}
}
