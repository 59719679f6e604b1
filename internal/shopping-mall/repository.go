package shoppingmall

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("shopping mall not found")

// Repository provides access to malls.
type Repository interface {
	List(limit int) ([]Mall, error)
	GetByID(id string) (Mall, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Mall
}

func NewInMemoryRepository(seed []Mall) *InMemoryRepository {
	return &InMemoryRepository{storage: append([]Mall(nil), seed...)}
}

func (r *InMemoryRepository) List(limit int) ([]Mall, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit < 0 {
		limit = 0
	}
	if limit > len(r.storage) {
		limit = len(r.storage)
	}
	out := make([]Mall, limit)
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Mall, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.storage {
		if m.ID == id {
			return m, nil
		}
	}
	return Mall{}, ErrNotFound
}
