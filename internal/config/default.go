package config

import (
	"errors"
	"os"
)

const defaultConfig = `# precommit configuration
#
# Each entry under "hooks" is either a built-in (no "command") or an
# external hook (with "command"). Hooks run in the order listed here.

hooks:
  # Built-in hooks. Leave out "include" to use each hook's defaults.
  - name: trailing-whitespace
  - name: end-of-file-fixer
  - name: check-yaml
  - name: pretty-format-json
    enabled: false

  # check-added-large-files takes the size limit in bytes as its first
  # argument (default 500000).
  # - name: check-added-large-files
  #   args: ["1000000"]

  # External hooks run via "sh -c". The resolved file paths are appended
  # as arguments, or substituted for a {files} placeholder if the command
  # contains one.
  #
  # - name: my-linter
  #   command: "my-linter --check {files}"
  #   install: "pip install my-linter"   # runs once, cached until changed
  #   include: ["**/*.py"]
  #   exclude: ["vendor/**"]
  #   exit1: violation      # what exit code 1 means: violation or modified
  #   timeout: 2m           # optional per-hook limit
  #
  # - name: gofmt
  #   command: "gofmt -l -w"
  #   include: ["**/*.go"]
  #   exit1: modified
  #
  # Additional keys: "working-dir" (run the command there instead of the
  # repository root) and "env" (extra environment variables).
`

// Init writes the default hooks document to path.
// If force is true, an existing file is overwritten.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
