package mailer

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps sender identities by name so a service can route different
// notification kinds through different upstream accounts.
type Registry struct {
	mu      sync.RWMutex
	senders map[string]Sender
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{senders: make(map[string]Sender)}
}

// Register adds or replaces the sender under name. Names are case-insensitive.
func (r *Registry) Register(name string, s Sender) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if s == nil {
		return fmt.Errorf("%w: sender is required", ErrInvalidConfig)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.senders[name] = s
	return nil
}

// Get returns the sender registered under name, or ErrSenderNotFound.
func (r *Registry) Get(name string) (Sender, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.senders[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSenderNotFound, name)
	}
	return s, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.senders))
	for name := range r.senders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
