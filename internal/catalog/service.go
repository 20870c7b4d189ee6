package catalog

import (
	"fmt"
	"strings"

	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
)

// Service exposes read access to the product catalog.
type Service interface {
	List(category string) []Product
	GetByID(productID string) (Product, error)
	Categories() []string
}

type service struct {
	products []Product
	byID     map[string]Product
}

// NewService builds the catalog from the launch seed.
func NewService() (Service, error) {
	return newService(seedProducts())
}

func newService(products []Product) (Service, error) {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry: %w", err)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog product id %q", p.ID)
		}
		byID[p.ID] = p
	}
	return &service{products: products, byID: byID}, nil
}

// List returns catalog entries, optionally filtered by category.
// An empty or "todos" category returns everything.
func (s *service) List(category string) []Product {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == "todos" {
		out := make([]Product, len(s.products))
		copy(out, s.products)
		return out
	}
	var out []Product
	for _, p := range s.products {
		if strings.ToLower(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}

// GetByID returns the product for the given identifier.
func (s *service) GetByID(productID string) (Product, error) {
	p, ok := s.byID[strings.TrimSpace(productID)]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", productID))
	}
	return p, nil
}

// Categories returns the distinct category labels in catalog order.
func (s *service) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
