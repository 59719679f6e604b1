package cart

import "sync"

// Line is one product in one size with its quantity.
type Line struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// Repository provides access to cart operations.
// Adding an existing (product, size) line increments its quantity.
type Repository interface {
	AddToCart(deviceID, productID, size string, qty int) ([]Line, error)
	GetCart(deviceID string) ([]Line, error)
	ClearCart(deviceID string) error
}

// InMemoryRepository keeps carts for the lifetime of the process. Lines keep
// the order in which they were first added.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]Line
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: map[string][]Line{}}
}

func (r *InMemoryRepository) AddToCart(deviceID, productID, size string, qty int) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[deviceID]
	idx := -1
	for i, l := range lines {
		if l.ProductID == productID && l.Size == size {
			idx = i
			break
		}
	}
	switch {
	case idx >= 0:
		lines[idx].Quantity += qty
		// remove the line when its quantity drops to zero or below
		if lines[idx].Quantity <= 0 {
			lines = append(lines[:idx], lines[idx+1:]...)
		}
	case qty > 0:
		lines = append(lines, Line{ProductID: productID, Size: size, Quantity: qty})
	}
	r.carts[deviceID] = lines
	return cloneLines(lines), nil
}

func (r *InMemoryRepository) GetCart(deviceID string) ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneLines(r.carts[deviceID]), nil
}

// ClearCart empties a device's cart.
func (r *InMemoryRepository) ClearCart(deviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, deviceID)
	return nil
}

func cloneLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
