package dto

// CreateUserRequest entrada para crear un empleado.
type CreateUserRequest struct {
	Name                   string   `json:"name" validate:"required,min=1,max=120"`
	Role                   string   `json:"role"` // Owner | Manager | Employee; Employee por defecto
	DepartmentID           string   `json:"department_id" validate:"required"`
	SecondaryDepartmentIDs []string `json:"secondary_department_ids"`
	Email                  string   `json:"email" validate:"required,email"`
	Phone                  string   `json:"phone"`
	Color                  string   `json:"color"`
	Password               string   `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest entrada para editar el perfil (los usuarios no se eliminan).
type UpdateUserRequest struct {
	Name                   *string   `json:"name"`
	Role                   *string   `json:"role"`
	DepartmentID           *string   `json:"department_id"`
	SecondaryDepartmentIDs *[]string `json:"secondary_department_ids"`
	Email                  *string   `json:"email"`
	Phone                  *string   `json:"phone"`
	Color                  *string   `json:"color"`
}

// UserResponse salida de un empleado (nunca incluye el hash de contraseña).
type UserResponse struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Role                   string   `json:"role"`
	DepartmentID           string   `json:"department_id"`
	SecondaryDepartmentIDs []string `json:"secondary_department_ids,omitempty"`
	Email                  string   `json:"email"`
	Phone                  string   `json:"phone,omitempty"`
	Color                  string   `json:"color,omitempty"`
}
