package dispatch

import (
	"sort"
	"sync"

	"github.com/ccxla/3RVX/internal/hotkey"
	"github.com/ccxla/3RVX/internal/keys"
	"github.com/rs/zerolog"
)

// Registry holds the definitions eligible for dispatch, keyed by
// combination.
type Registry struct {
	mu   sync.RWMutex
	defs map[keys.Combo]*hotkey.Definition
	log  zerolog.Logger
}

// NewRegistry returns an empty Registry.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		defs: make(map[keys.Combo]*hotkey.Definition),
		log:  logger,
	}
}

// Reload replaces the registered definitions with the valid subset of
// defs and reports how many were accepted. Invalid definitions log
// their reason and are skipped; a duplicate combination replaces the
// earlier entry. Accepted definitions get argument caching switched
// on, since their arguments no longer change.
func (r *Registry) Reload(defs []*hotkey.Definition) int {
	next := make(map[keys.Combo]*hotkey.Definition, len(defs))
	for _, def := range defs {
		if def == nil || !def.Valid() {
			continue
		}
		if prev, ok := next[def.Combo]; ok {
			r.log.Warn().
				Str("combo", def.Combo.String()).
				Str("replaced", prev.String()).
				Msg("Duplicate hotkey combination")
		}
		def.EnableArgCache()
		next[def.Combo] = def
	}

	r.mu.Lock()
	r.defs = next
	r.mu.Unlock()

	r.log.Info().Int("count", len(next)).Int("given", len(defs)).Msg("Hotkeys registered")
	return len(next)
}

// Lookup returns the definition registered for combo.
func (r *Registry) Lookup(combo keys.Combo) (*hotkey.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[combo]
	return def, ok
}

// Definitions returns a snapshot of the registered definitions sorted
// by combination.
func (r *Registry) Definitions() []*hotkey.Definition {
	r.mu.RLock()
	defs := make([]*hotkey.Definition, 0, len(r.defs))
	for _, def := range r.defs {
		defs = append(defs, def)
	}
	r.mu.RUnlock()

	sort.Slice(defs, func(i, j int) bool { return defs[i].Combo < defs[j].Combo })
	return defs
}

// Len reports the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}
