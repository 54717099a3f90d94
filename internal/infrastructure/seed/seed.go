// Package seed carga la data de referencia (departamentos, usuarios,
// plantillas, catálogo) desde YAML. El archivo embebido reproduce la tienda
// por defecto; SEED_PATH permite reemplazarlo sin recompilar.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/storeops-api/internal/domain/entity"
)

//go:embed data.yaml
var defaultData []byte

// Data snapshot inicial del almacén en memoria.
type Data struct {
	Departments []entity.Department
	Users       []entity.User
	Templates   []entity.TaskTemplate
	Products    []entity.Product
}

type yamlFile struct {
	DefaultPassword string           `yaml:"default_password"`
	Departments     []yamlDepartment `yaml:"departments"`
	Users           []yamlUser       `yaml:"users"`
	TaskTemplates   []yamlTemplate   `yaml:"task_templates"`
	Products        []yamlProduct    `yaml:"products"`
}

type yamlDepartment struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	SOP  string `yaml:"sop"`
}

type yamlUser struct {
	ID                     string   `yaml:"id"`
	Name                   string   `yaml:"name"`
	Role                   string   `yaml:"role"`
	DepartmentID           string   `yaml:"department_id"`
	SecondaryDepartmentIDs []string `yaml:"secondary_department_ids"`
	Email                  string   `yaml:"email"`
	Phone                  string   `yaml:"phone"`
	Color                  string   `yaml:"color"`
	Password               string   `yaml:"password"`
}

type yamlTemplate struct {
	Title        string `yaml:"title"`
	Frequency    string `yaml:"frequency"`
	DepartmentID string `yaml:"department_id"`
	Notes        string `yaml:"notes"`
}

type yamlProduct struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
	Notes    string `yaml:"notes"`
}

// Load devuelve el snapshot embebido por defecto.
func Load() (*Data, error) {
	return parse(defaultData)
}

// LoadFile carga un snapshot desde disco con el mismo formato.
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer seed %q: %w", path, err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Data, error) {
	var f yamlFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsear seed: %w", err)
	}

	data := &Data{}
	deptIDs := make(map[string]bool, len(f.Departments))
	for _, d := range f.Departments {
		if d.ID == "" || d.Name == "" {
			return nil, fmt.Errorf("departamento sin id o nombre: %+v", d)
		}
		if deptIDs[d.ID] {
			return nil, fmt.Errorf("id de departamento duplicado: %s", d.ID)
		}
		deptIDs[d.ID] = true
		data.Departments = append(data.Departments, entity.Department{
			ID:   d.ID,
			Name: d.Name,
			Type: entity.DepartmentType(d.Type),
			SOP:  d.SOP,
		})
	}

	for _, u := range f.Users {
		role := entity.Role(u.Role)
		if !entity.ValidRole(role) {
			return nil, fmt.Errorf("usuario %s: rol desconocido %q", u.ID, u.Role)
		}
		if !deptIDs[u.DepartmentID] {
			return nil, fmt.Errorf("usuario %s: departamento principal inexistente %q", u.ID, u.DepartmentID)
		}
		for _, sec := range u.SecondaryDepartmentIDs {
			if !deptIDs[sec] {
				return nil, fmt.Errorf("usuario %s: departamento secundario inexistente %q", u.ID, sec)
			}
		}
		password := u.Password
		if password == "" {
			password = f.DefaultPassword
		}
		if password == "" {
			return nil, fmt.Errorf("usuario %s: sin contraseña ni default_password", u.ID)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("usuario %s: hash de contraseña: %w", u.ID, err)
		}
		data.Users = append(data.Users, entity.User{
			ID:                     u.ID,
			Name:                   u.Name,
			Role:                   role,
			DepartmentID:           u.DepartmentID,
			SecondaryDepartmentIDs: u.SecondaryDepartmentIDs,
			Email:                  u.Email,
			Phone:                  u.Phone,
			Color:                  u.Color,
			PasswordHash:           string(hash),
		})
	}

	for _, t := range f.TaskTemplates {
		freq := entity.TaskFrequency(t.Frequency)
		switch freq {
		case entity.FrequencyDaily, entity.FrequencyWeekly, entity.FrequencyMonthly:
		default:
			return nil, fmt.Errorf("plantilla %q: frecuencia desconocida %q", t.Title, t.Frequency)
		}
		if !deptIDs[t.DepartmentID] {
			return nil, fmt.Errorf("plantilla %q: departamento inexistente %q", t.Title, t.DepartmentID)
		}
		data.Templates = append(data.Templates, entity.TaskTemplate{
			Title:        t.Title,
			Frequency:    freq,
			DepartmentID: t.DepartmentID,
			Notes:        t.Notes,
		})
	}

	for _, p := range f.Products {
		data.Products = append(data.Products, entity.Product{
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Notes:    p.Notes,
		})
	}

	return data, nil
}
