package feed

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("feed entry not found")

type Repository interface {
	List() ([]Entry, error)
	GetByID(id string) (Entry, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Entry
}

func NewInMemoryRepository(seed []Entry) *InMemoryRepository {
	return &InMemoryRepository{storage: append([]Entry(nil), seed...)}
}

func (r *InMemoryRepository) List() ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.storage {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}
