// Package files resolves the concrete file set a hook runs against.
//
// Inputs may be individual files or directories; directories expand
// recursively, skipping version-control metadata. Include and exclude
// patterns use doublestar globs ('**', '{a,b}' alternatives); exclude
// always wins over include. The resulting set is de-duplicated and keeps
// input traversal order so runs are deterministic for a given invocation.
package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// vcsDirs are version-control metadata directories never traversed.
var vcsDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
}

// ValidatePatterns checks glob syntax, returning the first bad pattern.
func ValidatePatterns(patterns []string) error {
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("invalid glob pattern %q", pat)
		}
	}
	return nil
}

// Match reports whether path matches any include pattern and no exclude
// pattern. Exclude wins when both match.
func Match(include, exclude []string, path string) (bool, error) {
	slashed := filepath.ToSlash(path)

	for _, pat := range exclude {
		ok, err := doublestar.Match(pat, slashed)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern %q", pat)
		}
		if ok {
			return false, nil
		}
	}
	for _, pat := range include {
		ok, err := doublestar.Match(pat, slashed)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern %q", pat)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Select resolves inputs against include/exclude patterns into an ordered,
// de-duplicated file list. Patterns are written relative to root, so a
// path under root is matched by its root-relative form; returned paths
// keep the input's form. Directories expand recursively; explicitly named
// files that don't exist are an error rather than silently skipped.
func Select(root string, include, exclude, inputs []string) ([]string, error) {
	var selected []string
	seen := make(map[string]bool)

	add := func(path string) error {
		path = filepath.Clean(path)
		if seen[path] {
			return nil
		}
		ok, err := Match(include, exclude, matchPath(root, path))
		if err != nil {
			return err
		}
		if ok {
			seen[path] = true
			selected = append(selected, path)
		}
		return nil
	}

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("no such file or directory: %s", input)
			}
			return nil, err
		}

		if !info.IsDir() {
			if err := add(input); err != nil {
				return nil, err
			}
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if vcsDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return selected, nil
}

// matchPath returns the form of path that patterns are matched against:
// relative to root when path lies under it, unchanged otherwise.
func matchPath(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
