package usecase

import (
	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/domain"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// DepartmentUseCase lecturas sobre la data de referencia de departamentos.
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// GetByID obtiene un departamento; ErrNotFound si no existe.
func (uc *DepartmentUseCase) GetByID(id string) (*dto.DepartmentResponse, error) {
	dept, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.ErrNotFound
	}
	out := toDepartmentResponse(dept)
	return &out, nil
}

// List devuelve todos los departamentos.
func (uc *DepartmentUseCase) List() ([]dto.DepartmentResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDepartmentResponse(d))
	}
	return out, nil
}

func toDepartmentResponse(d *entity.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:   d.ID,
		Name: d.Name,
		Type: string(d.Type),
		SOP:  d.SOP,
	}
}

// CatalogUseCase lectura del catálogo de productos.
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List devuelve el catálogo completo.
func (uc *CatalogUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductResponse{
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Notes:    p.Notes,
		})
	}
	return out, nil
}
