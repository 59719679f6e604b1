package cart

import (
	"errors"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/wichananm65/kg-market-backend/internal/product"
)

// MaxLineQuantity bounds the quantity of a single (product, size) line.
const MaxLineQuantity = 999

var (
	ErrInvalidSize   = errors.New("choose a size offered by the product")
	ErrQuantityLimit = fmt.Errorf("a cart line holds at most %d items", MaxLineQuantity)
)

type Catalog interface {
	GetByID(id string) (product.Product, error)
}

// Item is a cart line resolved against the catalog.
type Item struct {
	Product   product.Product `json:"product"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	LineTotal int             `json:"lineTotal"`
}

// Cart is the cart tab: lines plus totals in som.
type Cart struct {
	Items         []Item `json:"items"`
	TotalQuantity int    `json:"totalQuantity"`
	TotalPrice    int    `json:"totalPrice"`
}

// Service orchestrates cart operations.
type Service struct {
	repo    Repository
	catalog Catalog
	log     *log.Helper
}

func NewService(repo Repository, catalog Catalog, logger log.Logger) *Service {
	return &Service{repo: repo, catalog: catalog, log: log.NewHelper(log.With(logger, "module", "cart"))}
}

// AddToCart changes the quantity of the (product, size) line by qty.
// Negative quantities decrement and zero only returns the current cart.
func (s *Service) AddToCart(deviceID, productID, size string, qty int) (Cart, error) {
	p, err := s.catalog.GetByID(productID)
	if err != nil {
		return Cart{}, err
	}
	if !p.HasSize(size) {
		return Cart{}, ErrInvalidSize
	}
	if qty == 0 {
		return s.GetCart(deviceID)
	}
	if qty > 0 {
		current, err := s.lineQuantity(deviceID, productID, size)
		if err != nil {
			return Cart{}, err
		}
		if qty > MaxLineQuantity-current {
			return Cart{}, ErrQuantityLimit
		}
	}
	lines, err := s.repo.AddToCart(deviceID, productID, size, qty)
	if err != nil {
		return Cart{}, fmt.Errorf("add to cart: %w", err)
	}
	return s.resolve(lines)
}

func (s *Service) GetCart(deviceID string) (Cart, error) {
	lines, err := s.repo.GetCart(deviceID)
	if err != nil {
		return Cart{}, fmt.Errorf("get cart: %w", err)
	}
	return s.resolve(lines)
}

func (s *Service) lineQuantity(deviceID, productID, size string) (int, error) {
	lines, err := s.repo.GetCart(deviceID)
	if err != nil {
		return 0, fmt.Errorf("get cart: %w", err)
	}
	for _, l := range lines {
		if l.ProductID == productID && l.Size == size {
			return l.Quantity, nil
		}
	}
	return 0, nil
}

// ClearCart empties a device's cart.
func (s *Service) ClearCart(deviceID string) error {
	return s.repo.ClearCart(deviceID)
}

func (s *Service) resolve(lines []Line) (Cart, error) {
	cart := Cart{Items: make([]Item, 0, len(lines))}
	for _, l := range lines {
		p, err := s.catalog.GetByID(l.ProductID)
		if errors.Is(err, product.ErrNotFound) {
			s.log.Warnf("cart line for unknown product %s dropped", l.ProductID)
			continue
		}
		if err != nil {
			return Cart{}, err
		}
		total := p.Price * l.Quantity
		cart.Items = append(cart.Items, Item{Product: p, Size: l.Size, Quantity: l.Quantity, LineTotal: total})
		cart.TotalQuantity += l.Quantity
		cart.TotalPrice += total
	}
	return cart, nil
}
