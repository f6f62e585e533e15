// Package hook defines the hook descriptor model and the registry of
// compiled-in transforms.
package hook

import (
	"time"

	"github.com/raphi011/precommit/internal/builtin"
)

// Kind identifies how a hook executes.
type Kind int

const (
	// KindBuiltin runs an in-process transform.
	KindBuiltin Kind = iota
	// KindExternal spawns a configured command.
	KindExternal
)

func (k Kind) String() string {
	if k == KindBuiltin {
		return "builtin"
	}
	return "external"
}

// Convention states what an external hook's exit code 1 means.
// Pre-commit tools disagree on this, so each hook declares it explicitly.
type Convention int

const (
	// ConventionViolation treats exit 1 as "issues found, not fixed".
	ConventionViolation Convention = iota
	// ConventionModified treats exit 1 as "files were modified in place".
	ConventionModified
)

func (c Convention) String() string {
	if c == ConventionModified {
		return "modified"
	}
	return "violation"
}

// Descriptor is one configured hook. It is immutable for the duration
// of a run.
type Descriptor struct {
	Name    string
	Kind    Kind
	Enabled bool

	// Include/Exclude are glob patterns applied by the file selector.
	// Exclude wins when both match a path.
	Include []string
	Exclude []string

	// Args are extra arguments: transform options for built-ins,
	// appended command arguments for external hooks.
	Args []string

	// Transform is set for built-in hooks only.
	Transform builtin.Func

	// External invocation spec.
	Command    string
	Install    string
	WorkingDir string
	Env        map[string]string
	Exit1      Convention
	Timeout    time.Duration
}
