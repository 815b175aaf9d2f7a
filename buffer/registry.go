package buffer

import (
	"sort"

	"github.com/go-memacs/core/status"
)

// Registry is the global, name-ordered buffer table (§3.7 lifecycle).
// Buffers are created on demand and retained here; a buffer is freed only
// when explicitly deleted and not displayed in any window.
type Registry struct {
	byName map[string]*Buffer
}

// NewRegistry returns an empty buffer registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Buffer)}
}

// Create makes a new buffer with the given name and registers it. Creating
// a buffer under a name that already exists returns the existing buffer
// unchanged (matching "create on demand" semantics for scratch-buffer
// requests).
func (r *Registry) Create(name string) *Buffer {
	if b, ok := r.byName[name]; ok {
		return b
	}
	b := NewBuffer(name)
	r.byName[name] = b
	return b
}

// Lookup finds a buffer by exact name.
func (r *Registry) Lookup(name string) (*Buffer, bool) {
	b, ok := r.byName[name]
	return b, ok
}

// Delete removes a buffer from the registry. It is a Failure to delete a
// buffer that is still displayed in any window.
func (r *Registry) Delete(name string) error {
	b, ok := r.byName[name]
	if !ok {
		return status.New(status.NotFound, "no such buffer %q", name)
	}
	if b.NWind > 0 {
		return status.New(status.Failure, "buffer %q is displayed in %d window(s)", name, b.NWind)
	}
	delete(r.byName, name)
	return nil
}

// Rename changes a buffer's registry key and Name field. Fails if the new
// name is already taken by a different buffer.
func (r *Registry) Rename(oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	b, ok := r.byName[oldName]
	if !ok {
		return status.New(status.NotFound, "no such buffer %q", oldName)
	}
	if _, taken := r.byName[newName]; taken {
		return status.New(status.Failure, "buffer %q already exists", newName)
	}
	delete(r.byName, oldName)
	b.Name = newName
	b.MacroName = ""
	if rs := []rune(newName); len(rs) > 0 && rs[0] == MacroSigil {
		b.MacroName = string(rs[1:])
	}
	r.byName[newName] = b
	return nil
}

// Names returns every registered buffer name in sorted order, matching the
// "ordered buffer table" requirement (§3.7).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of registered buffers.
func (r *Registry) Len() int { return len(r.byName) }
