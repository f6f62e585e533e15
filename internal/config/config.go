package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/raphi011/precommit/internal/files"
	"github.com/raphi011/precommit/internal/hook"
)

// DefaultPath is the hooks document looked up in the repository root.
const DefaultPath = ".pre-commit.yaml"

// rawHook mirrors one entry of the hooks document before validation.
type rawHook struct {
	Name       string            `yaml:"name"`
	Enabled    *bool             `yaml:"enabled"`
	Include    []string          `yaml:"include"`
	Exclude    []string          `yaml:"exclude"`
	Args       []string          `yaml:"args"`
	Command    string            `yaml:"command"`
	Install    string            `yaml:"install"`
	Exit1      string            `yaml:"exit1"`
	WorkingDir string            `yaml:"working-dir"`
	Env        map[string]string `yaml:"env"`
	Timeout    string            `yaml:"timeout"`
}

type document struct {
	Hooks []rawHook `yaml:"hooks"`
}

// Load reads and validates the hooks document at path, returning the hook
// descriptors in document order. Unknown keys anywhere in the document are
// an error, so typos fail loudly instead of silently disabling a hook.
func Load(path string) ([]hook.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse validates a hooks document held in memory. See Load.
func Parse(data []byte) ([]hook.Descriptor, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document: nothing to run.
			return nil, nil
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}

	seen := make(map[string]bool, len(doc.Hooks))
	descs := make([]hook.Descriptor, 0, len(doc.Hooks))
	for i, raw := range doc.Hooks {
		if raw.Name == "" {
			return nil, fmt.Errorf("hook #%d: missing name", i+1)
		}
		if seen[raw.Name] {
			return nil, fmt.Errorf("duplicate hook name %q", raw.Name)
		}
		seen[raw.Name] = true

		d, err := descriptor(raw)
		if err != nil {
			return nil, fmt.Errorf("hook %q: %w", raw.Name, err)
		}
		descs = append(descs, d)
	}
	return descs, nil
}

func descriptor(raw rawHook) (hook.Descriptor, error) {
	d := hook.Descriptor{
		Name:       raw.Name,
		Enabled:    true,
		Include:    raw.Include,
		Exclude:    raw.Exclude,
		Args:       raw.Args,
		Command:    raw.Command,
		Install:    raw.Install,
		WorkingDir: raw.WorkingDir,
		Env:        raw.Env,
	}
	if raw.Enabled != nil {
		d.Enabled = *raw.Enabled
	}

	if raw.Command == "" {
		// No command means a built-in: its transform and default patterns
		// come from the registry.
		b, err := hook.Resolve(raw.Name)
		if err != nil {
			return d, err
		}
		if raw.Install != "" {
			return d, errors.New("built-in hooks do not take an install command")
		}
		d.Kind = hook.KindBuiltin
		d.Transform = b.Transform
		if len(d.Include) == 0 {
			d.Include = b.Include
		}
	} else {
		if hook.IsBuiltin(raw.Name) {
			return d, errors.New("name collides with a built-in hook; pick another name or drop the command")
		}
		d.Kind = hook.KindExternal
		if len(d.Include) == 0 {
			d.Include = []string{"**"}
		}
	}

	if err := files.ValidatePatterns(d.Include); err != nil {
		return d, fmt.Errorf("include: %w", err)
	}
	if err := files.ValidatePatterns(d.Exclude); err != nil {
		return d, fmt.Errorf("exclude: %w", err)
	}

	switch raw.Exit1 {
	case "", "violation":
		d.Exit1 = hook.ConventionViolation
	case "modified":
		d.Exit1 = hook.ConventionModified
	default:
		return d, fmt.Errorf("invalid exit1 %q: must be \"modified\" or \"violation\"", raw.Exit1)
	}

	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return d, fmt.Errorf("invalid timeout: %w", err)
		}
		if timeout <= 0 {
			return d, fmt.Errorf("invalid timeout %q: must be positive", raw.Timeout)
		}
		d.Timeout = timeout
	}

	return d, nil
}
