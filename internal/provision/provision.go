// Package provision ensures external hooks' runtime environments exist
// before execution.
//
// Each successful install leaves a marker file in the cache directory,
// keyed by hook name and a hash of the install command template. A marker
// with a matching key short-circuits provisioning on later runs; changing
// the template changes the key, which invalidates the old marker and
// triggers a fresh install. Failed installs never write a marker, so the
// next run retries.
//
// # Concurrency
//
// Within a process, a singleflight group guarantees at most one install
// attempt per key; concurrent callers wait for the in-flight result.
// Across processes, an advisory flock on the cache directory serializes
// installs targeting the same cache.
package provision

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/raphi011/precommit/internal/hook"
	"github.com/raphi011/precommit/internal/log"
)

// Error reports a failed provisioning attempt for one hook.
type Error struct {
	Hook string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provisioning hook %q: %v", e.Hook, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// marker is the on-disk provisioning record. External tooling must treat
// these files as opaque and engine-owned.
type marker struct {
	Hook        string    `json:"hook"`
	Hash        string    `json:"hash"`
	Install     string    `json:"install"`
	InstalledAt time.Time `json:"installed_at"`
}

// Manager provisions external hook environments into a cache directory.
type Manager struct {
	dir  string // marker cache directory
	root string // working directory for install commands
	sf   singleflight.Group
}

// NewManager creates a Manager writing markers under dir and running
// install commands rooted at root.
func NewManager(dir, root string) *Manager {
	return &Manager{dir: dir, root: root}
}

// Key computes the stable provisioning key for a hook name and install
// command template.
func Key(name, install string) string {
	sum := sha256.Sum256([]byte(name + "\x00" + install))
	return hex.EncodeToString(sum[:])[:12]
}

// EnsureReady makes sure the hook's environment exists, installing it on
// first use. Hooks without an install template are assumed pre-installed.
// Callers racing on the same key wait for the single in-flight attempt.
func (m *Manager) EnsureReady(ctx context.Context, d hook.Descriptor) error {
	if d.Kind != hook.KindExternal || d.Install == "" {
		return nil
	}

	key := Key(d.Name, d.Install)
	_, err, _ := m.sf.Do(key, func() (any, error) {
		return nil, m.provision(ctx, d, key)
	})
	return err
}

// Provisioned reports whether the hook's environment already exists.
// It never installs anything.
func (m *Manager) Provisioned(d hook.Descriptor) bool {
	if d.Kind != hook.KindExternal || d.Install == "" {
		return true
	}
	return m.ready(d.Name, Key(d.Name, d.Install))
}

func (m *Manager) provision(ctx context.Context, d hook.Descriptor, key string) error {
	if m.ready(d.Name, key) {
		return nil
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return &Error{Hook: d.Name, Err: err}
	}

	lock := NewFileLock(filepath.Join(m.dir, ".lock"))
	if err := lock.Lock(); err != nil {
		return &Error{Hook: d.Name, Err: fmt.Errorf("acquire cache lock: %w", err)}
	}
	defer lock.Unlock()

	// Another process may have finished the install while we waited.
	if m.ready(d.Name, key) {
		return nil
	}

	l := log.FromContext(ctx)
	l.Printf("Provisioning hook '%s'...\n", d.Name)
	l.Command("sh", "-c", d.Install)

	cmd := exec.CommandContext(ctx, "sh", "-c", d.Install)
	cmd.Dir = m.root
	cmd.Stdout = l.Writer()
	cmd.Stderr = l.Writer()

	if err := cmd.Run(); err != nil {
		// No marker on failure: the next run retries provisioning.
		return &Error{Hook: d.Name, Err: fmt.Errorf("install command failed: %w", err)}
	}

	if err := m.writeMarker(d, key); err != nil {
		return &Error{Hook: d.Name, Err: err}
	}
	m.removeStale(d.Name, key)
	return nil
}

// ready reports whether a valid marker exists for the key.
func (m *Manager) ready(name, key string) bool {
	data, err := os.ReadFile(m.markerPath(name, key))
	if err != nil {
		return false
	}
	var mk marker
	if err := json.Unmarshal(data, &mk); err != nil {
		return false
	}
	return mk.Hash == key
}

func (m *Manager) markerPath(name, key string) string {
	return filepath.Join(m.dir, name+"-"+key+".json")
}

// writeMarker records a successful install atomically, so a crash mid-write
// never leaves a marker that caches failure as success.
func (m *Manager) writeMarker(d hook.Descriptor, key string) error {
	data, err := json.MarshalIndent(marker{
		Hook:        d.Name,
		Hash:        key,
		Install:     d.Install,
		InstalledAt: time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return err
	}

	path := m.markerPath(d.Name, key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// removeStale deletes markers for the same hook written under other keys,
// so a changed install template fully replaces the old record.
func (m *Manager) removeStale(name, key string) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(m.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var mk marker
		if err := json.Unmarshal(data, &mk); err != nil {
			continue
		}
		if mk.Hook == name && mk.Hash != key {
			os.Remove(path)
		}
	}
}
