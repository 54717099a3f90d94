package repository

import "github.com/jhoicas/storeops-api/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo de productos (DIP).
type ProductRepository interface {
	List() ([]*entity.Product, error)
}
