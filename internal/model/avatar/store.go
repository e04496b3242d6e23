package avatar

// Store exposes avatar retrieval for HTTP handlers and validation.
type Store interface {
	List() []Avatar
	FindByID(id string) (Avatar, bool)
	IDs() []string
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Avatar
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied avatars.
func NewMemoryStore(items []Avatar) *MemoryStore {
	return &MemoryStore{items: append([]Avatar(nil), items...)}
}

// List returns the registered avatars.
func (s *MemoryStore) List() []Avatar {
	return append([]Avatar(nil), s.items...)
}

// FindByID looks up an avatar by identifier.
func (s *MemoryStore) FindByID(id string) (Avatar, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Avatar{}, false
}

// IDs returns the avatar identifiers in registration order. Validation
// failures for unknown avatar types include this list.
func (s *MemoryStore) IDs() []string {
	ids := make([]string, 0, len(s.items))
	for _, item := range s.items {
		ids = append(ids, item.ID)
	}
	return ids
}
