// Package scaffold generates starter source for new external hooks.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Language selects the generated hook's implementation language.
type Language string

const (
	LanguageGo     Language = "go"
	LanguagePython Language = "python"
	LanguageShell  Language = "shell"
)

// ParseLanguage validates a --language flag value.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageGo, LanguagePython, LanguageShell:
		return Language(s), nil
	default:
		return "", fmt.Errorf("invalid language %q: must be \"go\", \"python\", or \"shell\"", s)
	}
}

const goTemplate = `// %[2]s checks the files passed as arguments.
//
// Exit 0 when everything is fine, 1 when the hook found (or fixed)
// something, any other code for an internal failure.
package main

import (
	"fmt"
	"os"
)

func main() {
	failed := false
	for _, path := range os.Args[1:] {
		ok, err := check(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%[1]s: %%s: %%v\n", path, err)
			os.Exit(2)
		}
		if !ok {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func check(path string) (bool, error) {
	// TODO: implement the actual check.
	_ = path
	return true, nil
}
`

const pythonTemplate = `#!/usr/bin/env python3
"""%[2]s

Checks the files passed as arguments. Exit 0 when everything is fine,
1 when the hook found (or fixed) something, any other code for an
internal failure.
"""
import sys


def check(path: str) -> bool:
    # TODO: implement the actual check.
    return True


def main() -> int:
    failed = False
    for path in sys.argv[1:]:
        if not check(path):
            print(f"%[1]s: {path}", file=sys.stderr)
            failed = True
    return 1 if failed else 0


if __name__ == "__main__":
    sys.exit(main())
`

const shellTemplate = `#!/bin/sh
# %[2]s
#
# Checks the files passed as arguments. Exit 0 when everything is fine,
# 1 when the hook found (or fixed) something, any other code for an
# internal failure.
set -u

failed=0
for path in "$@"; do
    # TODO: implement the actual check.
    :
done

exit "$failed"
`

// Create writes a starter hook script for name into dir and returns the
// written path plus a ready-to-paste configuration snippet.
func Create(dir, name string, lang Language, description string) (string, string, error) {
	if name == "" {
		return "", "", fmt.Errorf("hook name required")
	}
	if strings.ContainsAny(name, "/ ") {
		return "", "", fmt.Errorf("invalid hook name %q", name)
	}
	if description == "" {
		description = name + " hook"
	}

	var file, content string
	var mode os.FileMode = 0755
	switch lang {
	case LanguageGo:
		file = name + ".go"
		content = fmt.Sprintf(goTemplate, name, description)
		mode = 0644
	case LanguagePython:
		file = name + ".py"
		content = fmt.Sprintf(pythonTemplate, name, description)
	case LanguageShell:
		file = name + ".sh"
		content = fmt.Sprintf(shellTemplate, name, description)
	default:
		return "", "", fmt.Errorf("invalid language %q", lang)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", err
	}
	path := filepath.Join(dir, file)
	if _, err := os.Stat(path); err == nil {
		return "", "", fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return "", "", err
	}

	return path, configSnippet(name, lang, path), nil
}

// configSnippet returns the hooks-document entry wiring the new script.
func configSnippet(name string, lang Language, path string) string {
	command := path
	if lang == LanguageGo {
		command = "go run " + path
	}
	return fmt.Sprintf(`  - name: %s
    command: "%s"
    include: ["**"]
`, name, command)
}
