package favorite

import (
	"errors"
	"sync"
)

var (
	ErrAlreadyFavorite = errors.New("product already in favorites")
	ErrNotFavorite     = errors.New("product not in favorites")
)

// Repository stores each device's favorite product ids in the order they
// were added.
type Repository interface {
	AddFavorite(deviceID, productID string) ([]string, error)
	RemoveFavorite(deviceID, productID string) ([]string, error)
	GetFavorites(deviceID string) ([]string, error)
}

// InMemoryRepository keeps favorites for the lifetime of the process.
type InMemoryRepository struct {
	mu      sync.RWMutex
	devices map[string][]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{devices: map[string][]string{}}
}

func (r *InMemoryRepository) AddFavorite(deviceID, productID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	favs := r.devices[deviceID]
	for _, pid := range favs {
		if pid == productID {
			return nil, ErrAlreadyFavorite
		}
	}
	favs = append(favs, productID)
	r.devices[deviceID] = favs
	return clone(favs), nil
}

func (r *InMemoryRepository) RemoveFavorite(deviceID, productID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	favs := r.devices[deviceID]
	found := false
	next := make([]string, 0, len(favs))
	for _, pid := range favs {
		if pid == productID {
			found = true
			continue
		}
		next = append(next, pid)
	}
	if !found {
		return nil, ErrNotFavorite
	}
	r.devices[deviceID] = next
	return clone(next), nil
}

func (r *InMemoryRepository) GetFavorites(deviceID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.devices[deviceID]), nil
}

func clone(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
