package repository

import "github.com/jhoicas/storeops-api/internal/domain/entity"

// ShiftRepository define el puerto de persistencia para Shift (DIP).
// DeleteByUserAndDate es la primitiva sobre la que el planificador construye
// el reemplazo por (usuario, fecha).
type ShiftRepository interface {
	Create(shift *entity.Shift) error
	DeleteByUserAndDate(userID, date string) error
	List(from, to string) ([]*entity.Shift, error) // rango inclusivo; "" = sin límite
	ListByUser(userID string) ([]*entity.Shift, error)
}
