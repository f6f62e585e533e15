// Package git locates the enclosing repository and installs the
// pre-commit shim into its hooks directory.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/raphi011/precommit/internal/cmd"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// RepoRoot returns the absolute path of the repository containing dir.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	out, err := cmd.OutputContext(ctx, dir, "git", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// HooksDir returns the repository's hooks directory, honoring
// core.hooksPath when set.
func HooksDir(ctx context.Context, dir string) (string, error) {
	out, err := cmd.OutputContext(ctx, dir, "git", "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(string(out))
	if !filepath.IsAbs(path) {
		root, err := RepoRoot(ctx, dir)
		if err != nil {
			return "", err
		}
		path = filepath.Join(root, path)
	}
	return path, nil
}

// hookShim is the pre-commit script installed into .git/hooks. It execs
// the engine so the hook picks up new binary versions without reinstall.
const hookShim = `#!/bin/sh
# Installed by precommit. Re-run "precommit install" after moving the binary.
exec "%s" run
`

// InstallHook writes the pre-commit shim invoking bin into the
// repository's hooks directory. An existing hook not written by this tool
// is left alone and reported as an error; force replaces it regardless.
func InstallHook(ctx context.Context, dir, bin string, force bool) (string, error) {
	hooksDir, err := HooksDir(ctx, dir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(hooksDir, "pre-commit")

	if existing, err := os.ReadFile(path); err == nil {
		if !force && !strings.Contains(string(existing), "Installed by precommit") {
			return "", fmt.Errorf("existing pre-commit hook at %s; use --force to replace it", path)
		}
	}

	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return "", err
	}
	script := fmt.Sprintf(hookShim, bin)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		return "", err
	}
	return path, nil
}
