package entity

// Role rol del empleado dentro de la tienda.
type Role string

const (
	RoleOwner    Role = "Owner"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

// ValidRole indica si el string corresponde a un rol conocido.
func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User empleado de la tienda. DepartmentID es el departamento principal y debe
// referenciar un departamento existente; SecondaryDepartmentIDs son opcionales.
// Color se usa para visualización en el calendario de turnos.
type User struct {
	ID                     string
	Name                   string
	Role                   Role
	DepartmentID           string
	SecondaryDepartmentIDs []string
	Email                  string
	Phone                  string
	Color                  string
	PasswordHash           string // bcrypt hash, nunca plano después de sembrar
}

// CanManage indica si el rol puede aprobar solicitudes y mutar estados de otros.
func (u *User) CanManage() bool {
	return u.Role == RoleOwner || u.Role == RoleManager
}
