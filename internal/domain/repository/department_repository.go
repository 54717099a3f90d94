package repository

import "github.com/jhoicas/storeops-api/internal/domain/entity"

// DepartmentRepository define el puerto de lectura para Department (DIP).
// Los departamentos son data de referencia: no hay escrituras después del sembrado.
type DepartmentRepository interface {
	GetByID(id string) (*entity.Department, error) // nil si no existe
	List() ([]*entity.Department, error)
}
