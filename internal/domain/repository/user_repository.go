package repository

import "github.com/jhoicas/storeops-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los usuarios se crean y editan pero nunca se eliminan.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)       // nil si no existe
	FindByEmail(email string) (*entity.User, error) // nil si no existe
	Update(user *entity.User) error
	List() ([]*entity.User, error)
}
