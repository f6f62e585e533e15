package provision

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/raphi011/precommit/internal/hook"
)

func external(name, install string) hook.Descriptor {
	return hook.Descriptor{
		Name:    name,
		Kind:    hook.KindExternal,
		Enabled: true,
		Command: "true",
		Install: install,
	}
}

// countingInstall returns an install command that appends a line to the
// given file each time it runs, so tests can count invocations.
func countingInstall(t *testing.T, countFile string) string {
	t.Helper()
	return "echo run >> " + countFile
}

func installCount(t *testing.T, countFile string) int {
	t.Helper()
	data, err := os.ReadFile(countFile)
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatalf("read count file: %v", err)
	}
	return strings.Count(string(data), "run")
}

func TestEnsureReadyInstallsOnce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	countFile := filepath.Join(dir, "count")
	m := NewManager(filepath.Join(dir, "cache"), dir)
	d := external("my-linter", countingInstall(t, countFile))

	for i := 0; i < 3; i++ {
		if err := m.EnsureReady(context.Background(), d); err != nil {
			t.Fatalf("ensure ready #%d: %v", i+1, err)
		}
	}

	if got := installCount(t, countFile); got != 1 {
		t.Errorf("install ran %d times, want 1", got)
	}
}

func TestEnsureReadySkipsBuiltinsAndUninstallable(t *testing.T) {
	t.Parallel()

	m := NewManager(filepath.Join(t.TempDir(), "cache"), t.TempDir())

	hooks := []hook.Descriptor{
		{Name: "trailing-whitespace", Kind: hook.KindBuiltin},
		{Name: "no-install", Kind: hook.KindExternal, Command: "true"},
	}
	for _, d := range hooks {
		if err := m.EnsureReady(context.Background(), d); err != nil {
			t.Errorf("hook %q: unexpected error: %v", d.Name, err)
		}
	}

	// Nothing should have been cached.
	if _, err := os.Stat(m.dir); !os.IsNotExist(err) {
		t.Errorf("cache dir created for hooks that need no provisioning")
	}
}

func TestEnsureReadyRetriesAfterFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	m := NewManager(filepath.Join(dir, "cache"), dir)

	d := external("flaky", "false")
	err := m.EnsureReady(context.Background(), d)
	if err == nil {
		t.Fatal("expected error from failing install")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if perr.Hook != "flaky" {
		t.Errorf("error hook = %q, want %q", perr.Hook, "flaky")
	}

	// A failed install writes no marker, so a corrected template installs.
	countFile := filepath.Join(dir, "count")
	fixed := external("flaky", countingInstall(t, countFile))
	if err := m.EnsureReady(context.Background(), fixed); err != nil {
		t.Fatalf("ensure ready after fix: %v", err)
	}
	if got := installCount(t, countFile); got != 1 {
		t.Errorf("install ran %d times, want 1", got)
	}
}

func TestEnsureReadyReinstallsOnTemplateChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cache := filepath.Join(dir, "cache")
	m := NewManager(cache, dir)

	first := external("tool", countingInstall(t, filepath.Join(dir, "a")))
	if err := m.EnsureReady(context.Background(), first); err != nil {
		t.Fatalf("first install: %v", err)
	}

	second := external("tool", countingInstall(t, filepath.Join(dir, "b")))
	if err := m.EnsureReady(context.Background(), second); err != nil {
		t.Fatalf("second install: %v", err)
	}
	if got := installCount(t, filepath.Join(dir, "b")); got != 1 {
		t.Errorf("changed template ran %d times, want 1", got)
	}

	// The stale marker for the old template must be gone.
	oldMarker := m.markerPath("tool", Key("tool", first.Install))
	if _, err := os.Stat(oldMarker); !os.IsNotExist(err) {
		t.Errorf("stale marker %s still exists", oldMarker)
	}
	newMarker := m.markerPath("tool", Key("tool", second.Install))
	if _, err := os.Stat(newMarker); err != nil {
		t.Errorf("new marker missing: %v", err)
	}
}

func TestEnsureReadyConcurrent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	countFile := filepath.Join(dir, "count")
	m := NewManager(filepath.Join(dir, "cache"), dir)
	d := external("shared", countingInstall(t, countFile))

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = m.EnsureReady(context.Background(), d)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("goroutine %d: %v", i, err)
		}
	}
	if got := installCount(t, countFile); got != 1 {
		t.Errorf("install ran %d times, want 1", got)
	}
}

func TestKeyStable(t *testing.T) {
	t.Parallel()

	a := Key("tool", "pip install tool")
	if b := Key("tool", "pip install tool"); a != b {
		t.Errorf("same inputs produced different keys: %q vs %q", a, b)
	}
	if b := Key("tool", "pip install tool==2"); a == b {
		t.Error("different templates produced the same key")
	}
	if b := Key("other", "pip install tool"); a == b {
		t.Error("different names produced the same key")
	}
	if len(a) != 12 {
		t.Errorf("key length = %d, want 12", len(a))
	}
}
