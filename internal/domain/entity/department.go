package entity

// DepartmentType clasifica el departamento: piso de venta (Retail) o trastienda (Backend).
type DepartmentType string

const (
	DepartmentRetail  DepartmentType = "Retail"
	DepartmentBackend DepartmentType = "Backend"
)

// Department datos de referencia inmutables: se siembran al arranque y nunca se mutan.
// SOP es el procedimiento operativo estándar del departamento (texto libre / markdown).
type Department struct {
	ID   string
	Name string
	Type DepartmentType
	SOP  string
}
