package fonts

import (
	"sort"
	"sync"

	"github.com/matzehuels/stackbadge/pkg/errors"
)

// Registry maps font names to fonts. A name can be registered only once.
// Registries are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]*Font
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fonts: make(map[string]*Font)}
}

// Register adds font under name.
func (r *Registry) Register(name string, font *Font) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "font name is empty")
	}
	if font == nil {
		return errors.New(errors.ErrCodeInvalidInput, "font %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fonts[name]; ok {
		return errors.New(errors.ErrCodeDuplicateFont, "font %q already registered", name)
	}
	r.fonts[name] = font
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, font *Font) {
	if err := r.Register(name, font); err != nil {
		panic(err)
	}
}

// Get returns the font registered under name.
func (r *Registry) Get(name string) (*Font, error) {
	r.mu.RLock()
	f, ok := r.fonts[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownFont, "unknown font %q", name)
	}
	return f, nil
}

// Default returns the font registered under [DefaultFont].
func (r *Registry) Default() (*Font, error) {
	return r.Get(DefaultFont)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.fonts[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fonts)
}
