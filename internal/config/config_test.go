package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/raphi011/precommit/internal/hook"
)

func TestParseBuiltinEntry(t *testing.T) {
	t.Parallel()

	descs, err := Parse([]byte(`
hooks:
  - name: trailing-whitespace
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(descs) != 1 {
		t.Fatalf("got %d hooks, want 1", len(descs))
	}

	d := descs[0]
	if d.Kind != hook.KindBuiltin {
		t.Errorf("kind = %s, want %s", d.Kind, hook.KindBuiltin)
	}
	if !d.Enabled {
		t.Error("hook not enabled by default")
	}
	if d.Transform == nil {
		t.Error("builtin transform not resolved")
	}
	if len(d.Include) == 0 {
		t.Error("default include patterns not applied")
	}
}

func TestParseExternalEntry(t *testing.T) {
	t.Parallel()

	descs, err := Parse([]byte(`
hooks:
  - name: my-linter
    command: "my-linter --check {files}"
    install: "pip install my-linter"
    include: ["**/*.py"]
    exclude: ["vendor/**"]
    args: ["--strict"]
    exit1: modified
    working-dir: "subdir"
    env:
      LINT_MODE: fast
    timeout: 90s
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	d := descs[0]
	if d.Kind != hook.KindExternal {
		t.Errorf("kind = %s, want %s", d.Kind, hook.KindExternal)
	}
	if d.Command != "my-linter --check {files}" {
		t.Errorf("command = %q", d.Command)
	}
	if d.Install != "pip install my-linter" {
		t.Errorf("install = %q", d.Install)
	}
	if d.Exit1 != hook.ConventionModified {
		t.Errorf("exit1 = %s, want %s", d.Exit1, hook.ConventionModified)
	}
	if d.WorkingDir != "subdir" {
		t.Errorf("working-dir = %q", d.WorkingDir)
	}
	if d.Env["LINT_MODE"] != "fast" {
		t.Errorf("env = %v", d.Env)
	}
	if d.Timeout != 90*time.Second {
		t.Errorf("timeout = %s, want 90s", d.Timeout)
	}
	if len(d.Args) != 1 || d.Args[0] != "--strict" {
		t.Errorf("args = %v", d.Args)
	}
}

func TestParseExternalDefaultsToMatchAll(t *testing.T) {
	t.Parallel()

	descs, err := Parse([]byte(`
hooks:
  - name: lint
    command: "lint"
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d := descs[0]
	if len(d.Include) != 1 || d.Include[0] != "**" {
		t.Errorf("include = %v, want [**]", d.Include)
	}
	if d.Exit1 != hook.ConventionViolation {
		t.Errorf("exit1 = %s, want %s", d.Exit1, hook.ConventionViolation)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "unknown top-level key",
			doc:     "hooks: []\nextra: true\n",
			wantErr: "extra",
		},
		{
			name:    "unknown hook key",
			doc:     "hooks:\n  - name: check-yaml\n    exculde: [\"a\"]\n",
			wantErr: "exculde",
		},
		{
			name:    "missing name",
			doc:     "hooks:\n  - command: lint\n",
			wantErr: "missing name",
		},
		{
			name:    "duplicate name",
			doc:     "hooks:\n  - name: check-yaml\n  - name: check-yaml\n",
			wantErr: "duplicate hook name",
		},
		{
			name:    "unknown builtin",
			doc:     "hooks:\n  - name: check-yml\n",
			wantErr: "unknown hook",
		},
		{
			name:    "builtin with install",
			doc:     "hooks:\n  - name: check-yaml\n    install: pip install x\n",
			wantErr: "install",
		},
		{
			name:    "external shadows builtin",
			doc:     "hooks:\n  - name: check-yaml\n    command: yamllint\n",
			wantErr: "collides",
		},
		{
			name:    "bad include pattern",
			doc:     "hooks:\n  - name: lint\n    command: lint\n    include: [\"[\"]\n",
			wantErr: "include",
		},
		{
			name:    "bad exit1",
			doc:     "hooks:\n  - name: lint\n    command: lint\n    exit1: maybe\n",
			wantErr: "exit1",
		},
		{
			name:    "bad timeout",
			doc:     "hooks:\n  - name: lint\n    command: lint\n    timeout: fast\n",
			wantErr: "timeout",
		},
		{
			name:    "negative timeout",
			doc:     "hooks:\n  - name: lint\n    command: lint\n    timeout: -1s\n",
			wantErr: "positive",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseUnknownBuiltinSuggestsClosest(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("hooks:\n  - name: check-yml\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	var unknown *hook.UnknownError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %T, want *hook.UnknownError", err)
	}
	if unknown.Suggestion != "check-yaml" {
		t.Errorf("suggestion = %q, want %q", unknown.Suggestion, "check-yaml")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	t.Parallel()

	descs, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(descs) != 0 {
		t.Errorf("got %d hooks, want 0", len(descs))
	}
}

func TestParsePreservesOrder(t *testing.T) {
	t.Parallel()

	descs, err := Parse([]byte(`
hooks:
  - name: check-yaml
  - name: zebra
    command: zebra
  - name: trailing-whitespace
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"check-yaml", "zebra", "trailing-whitespace"}
	for i, d := range descs {
		if d.Name != want[i] {
			t.Errorf("hook %d = %q, want %q", i, d.Name, want[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".pre-commit.yaml")
	if err := Init(path, false); err != nil {
		t.Fatalf("init: %v", err)
	}

	// The generated default must parse cleanly.
	descs, err := Load(path)
	if err != nil {
		t.Fatalf("load generated config: %v", err)
	}
	if len(descs) == 0 {
		t.Error("default config declares no hooks")
	}

	// Refuses to overwrite without force.
	if err := Init(path, false); err == nil {
		t.Error("expected error re-initializing existing config")
	}
	if err := Init(path, true); err != nil {
		t.Errorf("force init: %v", err)
	}
}

func TestLoadSettingsFrom(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
cache_dir = "` + dir + `"
jobs = 2
external_timeout = "5m"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := loadSettingsFrom(path)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if s.CacheDir != dir {
		t.Errorf("cache dir = %q, want %q", s.CacheDir, dir)
	}
	if s.Jobs != 2 {
		t.Errorf("jobs = %d, want 2", s.Jobs)
	}
	if s.Timeout() != 5*time.Minute {
		t.Errorf("timeout = %s, want 5m", s.Timeout())
	}
}

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	s, err := loadSettingsFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if s.CacheDir == "" {
		t.Error("default cache dir empty")
	}
	if s.Timeout() != 0 {
		t.Errorf("timeout = %s, want 0", s.Timeout())
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"relative cache dir", `cache_dir = "relative/path"`},
		{"negative jobs", `jobs = -1`},
		{"bad timeout", `external_timeout = "soon"`},
		{"bad toml", `cache_dir = [`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := loadSettingsFrom(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
