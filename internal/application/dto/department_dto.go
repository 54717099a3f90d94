package dto

// DepartmentResponse salida de un departamento con su SOP.
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	SOP  string `json:"sop"`
}

// ProductResponse entrada del catálogo de productos.
type ProductResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Notes    string `json:"notes"`
}
