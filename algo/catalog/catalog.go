package catalog

import (
	"sort"
	"strings"
	"sync"
)

// Info captures metadata about a search algorithm.
type Info struct {
	ID          string
	Aliases     []string
	Description string
}

var (
	mu      sync.RWMutex
	byID    = make(map[string]Info)
	byAlias = make(map[string]Info)
)

// Register stores algorithm metadata for name and alias lookups. Subsequent
// registrations for the same algorithm overwrite prior data to keep the
// catalog in sync with the latest searcher definition.
func Register(info Info) {
	if info.ID == "" {
		return
	}

	normalized := uniqueAliases(info.ID, info.Aliases)
	info.Aliases = normalized

	mu.Lock()
	defer mu.Unlock()

	byID[strings.ToLower(info.ID)] = info
	for _, alias := range normalized {
		byAlias[alias] = info
	}
}

// Lookup returns the algorithm info associated with an ID or alias.
func Lookup(name string) (Info, bool) {
	key := strings.ToLower(strings.TrimSpace(name))

	mu.RLock()
	defer mu.RUnlock()
	if info, ok := byID[key]; ok {
		return info, true
	}
	info, ok := byAlias[key]
	return info, ok
}

// Algorithms returns all registered algorithm infos sorted by ID.
func Algorithms() []Info {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]Info, 0, len(byID))
	for _, info := range byID {
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

func uniqueAliases(id string, aliases []string) []string {
	seen := map[string]struct{}{strings.ToLower(id): {}}
	result := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		normalized := strings.ToLower(strings.TrimSpace(alias))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result
}
