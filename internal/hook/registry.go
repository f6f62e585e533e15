package hook

import (
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/precommit/internal/builtin"
)

// Builtin describes a compiled-in hook: its transform plus the default
// include patterns applied when configuration doesn't override them.
type Builtin struct {
	Transform builtin.Func
	Include   []string
}

// builtins is the static lookup table, fixed at build time.
var builtins = map[string]Builtin{
	"trailing-whitespace": {
		Transform: builtin.TrailingWhitespace,
		Include:   []string{"**/*.{go,py,js,ts,txt,md}"},
	},
	"end-of-file-fixer": {
		Transform: builtin.EndOfFileFixer,
		Include:   []string{"**/*.{go,py,txt,md}"},
	},
	"check-yaml": {
		Transform: builtin.CheckYAML,
		Include:   []string{"**/*.{yml,yaml}"},
	},
	"pretty-format-json": {
		Transform: builtin.PrettyFormatJSON,
		Include:   []string{"**/*.json"},
	},
	"check-added-large-files": {
		Transform: builtin.CheckAddedLargeFiles,
		Include:   []string{"**"},
	},
}

// IsBuiltin reports whether name refers to a compiled-in hook.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// BuiltinNames returns the names of all compiled-in hooks, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up a compiled-in hook by name.
func Resolve(name string) (Builtin, error) {
	b, ok := builtins[name]
	if !ok {
		return Builtin{}, &UnknownError{Name: name, Suggestion: closest(name)}
	}
	return b, nil
}

// UnknownError reports a configuration reference to a built-in hook
// that does not exist.
type UnknownError struct {
	Name       string
	Suggestion string
}

func (e *UnknownError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown hook %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown hook %q", e.Name)
}

// closest returns the best fuzzy match for name among the built-in
// hooks, or "" when nothing comes close.
func closest(name string) string {
	matches := fuzzy.Find(name, BuiltinNames())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
