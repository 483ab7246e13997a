package algo

import (
	"sort"
	"sync"

	"github.com/termfx/findfx/algo/catalog"
)

// Searcher is the contract every exact-match algorithm implements.
//
// All implementations share the same result convention: FindIndex returns the
// smallest 0-based offset at which pattern occurs in text, or -1 when it does
// not occur. An empty pattern never matches and yields -1, as does a pattern
// longer than the text. Implementations hold no per-call state and are safe
// for concurrent use.
type Searcher interface {
	// Metadata
	Algorithm() string
	Aliases() []string
	Description() string

	// Core operations
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
}

// defaultRegistry is populated by implementation packages on import.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a searcher to the default registry.
func Register(s Searcher) {
	defaultRegistry.Register(s)
}

// Registry manages all searchers
type Registry struct {
	mu        sync.RWMutex
	searchers map[string]Searcher
}

// NewRegistry creates searcher registry
func NewRegistry() *Registry {
	return &Registry{
		searchers: make(map[string]Searcher),
	}
}

// Register adds a searcher
func (r *Registry) Register(s Searcher) {
	r.mu.Lock()
	r.searchers[s.Algorithm()] = s
	r.mu.Unlock()

	catalog.Register(catalog.Info{
		ID:          s.Algorithm(),
		Aliases:     s.Aliases(),
		Description: s.Description(),
	})
}

// Get retrieves a searcher by algorithm ID or registered alias.
func (r *Registry) Get(name string) (Searcher, bool) {
	id := name
	if info, ok := catalog.Lookup(name); ok {
		id = info.ID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	s, exists := r.searchers[id]
	return s, exists
}

// List returns all searchers
func (r *Registry) List() []Searcher {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Searcher, 0, len(r.searchers))
	for _, s := range r.searchers {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Algorithm() < result[j].Algorithm()
	})
	return result
}

// Algorithms returns all registered algorithm identifiers, sorted.
func (r *Registry) Algorithms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.searchers))
	for k := range r.searchers {
		ids = append(ids, k)
	}
	sort.Strings(ids)
	return ids
}
