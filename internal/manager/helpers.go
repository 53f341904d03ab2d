package manager

import (
	"genhost/pkg/types"
)

// Helper: find model in registry by id.
func (m *Manager) getModelByID(id string) (types.Model, bool) {
	for _, mdl := range m.registry {
		if mdl.ID == id {
			return mdl, true
		}
	}
	return types.Model{}, false
}

// Lookup returns the catalog entry for id.
func (m *Manager) Lookup(id string) (types.Model, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.getModelByID(id)
}

// kindFor resolves the kind from the catalog, inferring it from the
// identifier for models requested outside the catalog.
func (m *Manager) kindFor(id string) types.ModelKind {
	m.mu.RLock()
	mdl, ok := m.getModelByID(id)
	m.mu.RUnlock()
	if ok && mdl.Kind.Valid() {
		return mdl.Kind
	}
	return types.InferKind(id)
}
