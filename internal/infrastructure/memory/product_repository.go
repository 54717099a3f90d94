package memory

import (
	"sync"

	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// ProductRepository catálogo de productos en memoria (solo lectura tras sembrar).
type ProductRepository struct {
	mu       sync.RWMutex
	products []entity.Product
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository construye el catálogo con el snapshot inicial.
func NewProductRepository(seed []entity.Product) *ProductRepository {
	return &ProductRepository{products: append([]entity.Product(nil), seed...)}
}

// List devuelve el catálogo completo.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.products))
	for i := range r.products {
		p := r.products[i]
		out = append(out, &p)
	}
	return out, nil
}
