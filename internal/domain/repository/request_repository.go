package repository

import "github.com/jhoicas/storeops-api/internal/domain/entity"

// TimeOffRepository define el puerto de persistencia para TimeOffRequest (DIP).
type TimeOffRepository interface {
	Create(req *entity.TimeOffRequest) error
	GetByID(id string) (*entity.TimeOffRequest, error) // nil si no existe
	Update(req *entity.TimeOffRequest) error
	List() ([]*entity.TimeOffRequest, error)
}

// ReorderRepository define el puerto de persistencia para ReorderRequest (DIP).
type ReorderRepository interface {
	Create(req *entity.ReorderRequest) error
	GetByID(id string) (*entity.ReorderRequest, error) // nil si no existe
	Update(req *entity.ReorderRequest) error
	List() ([]*entity.ReorderRequest, error)
}
