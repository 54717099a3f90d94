package usecase

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/domain"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// UserUseCase altas y ediciones de empleados. Los usuarios nunca se eliminan.
type UserUseCase struct {
	repo     repository.UserRepository
	deptRepo repository.DepartmentRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, deptRepo repository.DepartmentRepository) *UserUseCase {
	return &UserUseCase{repo: repo, deptRepo: deptRepo}
}

// Create crea un empleado. El email debe ser único y el departamento principal
// debe existir; rol Employee por defecto.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	role := entity.Role(in.Role)
	if in.Role == "" {
		role = entity.RoleEmployee
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.checkDepartments(in.DepartmentID, in.SecondaryDepartmentIDs); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:                     uuid.New().String(),
		Name:                   in.Name,
		Role:                   role,
		DepartmentID:           in.DepartmentID,
		SecondaryDepartmentIDs: in.SecondaryDepartmentIDs,
		Email:                  in.Email,
		Phone:                  in.Phone,
		Color:                  in.Color,
		PasswordHash:           string(hash),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	out := ToUserResponse(user)
	return &out, nil
}

// Update edita el perfil de un empleado existente.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		role := entity.Role(*in.Role)
		if !entity.ValidRole(role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = role
	}
	if in.DepartmentID != nil {
		if err := uc.checkDepartments(*in.DepartmentID, nil); err != nil {
			return nil, err
		}
		user.DepartmentID = *in.DepartmentID
	}
	if in.SecondaryDepartmentIDs != nil {
		if err := uc.checkDepartments("", *in.SecondaryDepartmentIDs); err != nil {
			return nil, err
		}
		user.SecondaryDepartmentIDs = *in.SecondaryDepartmentIDs
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Color != nil {
		user.Color = *in.Color
	}

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	out := ToUserResponse(user)
	return &out, nil
}

// GetByID obtiene un empleado; ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := ToUserResponse(user)
	return &out, nil
}

// List devuelve todos los empleados.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, ToUserResponse(u))
	}
	return out, nil
}

// checkDepartments valida que primary (si no viene vacío) y cada secundario existan.
func (uc *UserUseCase) checkDepartments(primary string, secondary []string) error {
	ids := secondary
	if primary != "" {
		ids = append([]string{primary}, secondary...)
	}
	for _, id := range ids {
		dept, err := uc.deptRepo.GetByID(id)
		if err != nil {
			return err
		}
		if dept == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// ToUserResponse convierte la entidad a DTO sin exponer el hash.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                     u.ID,
		Name:                   u.Name,
		Role:                   string(u.Role),
		DepartmentID:           u.DepartmentID,
		SecondaryDepartmentIDs: u.SecondaryDepartmentIDs,
		Email:                  u.Email,
		Phone:                  u.Phone,
		Color:                  u.Color,
	}
}
