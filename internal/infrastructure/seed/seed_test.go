package seed_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/infrastructure/seed"
)

// El snapshot embebido debe cargar completo y consistente.
func TestLoad_SnapshotEmbebido(t *testing.T) {
	data, err := seed.Load()
	require.NoError(t, err)

	assert.Len(t, data.Departments, 16)
	assert.NotEmpty(t, data.Users)
	assert.NotEmpty(t, data.Templates)
	assert.NotEmpty(t, data.Products)

	// Toda referencia a departamento debe resolver.
	deptIDs := make(map[string]bool, len(data.Departments))
	for _, d := range data.Departments {
		deptIDs[d.ID] = true
	}
	for _, u := range data.Users {
		assert.True(t, deptIDs[u.DepartmentID], "usuario %s: departamento %s", u.ID, u.DepartmentID)
		for _, sec := range u.SecondaryDepartmentIDs {
			assert.True(t, deptIDs[sec], "usuario %s: secundario %s", u.ID, sec)
		}
	}
	for _, tpl := range data.Templates {
		assert.True(t, deptIDs[tpl.DepartmentID], "plantilla %q: departamento %s", tpl.Title, tpl.DepartmentID)
	}
}

// Las contraseñas se siembran como hash bcrypt de la contraseña por defecto.
func TestLoad_PasswordsHasheados(t *testing.T) {
	data, err := seed.Load()
	require.NoError(t, err)
	require.NotEmpty(t, data.Users)

	u := data.Users[0]
	assert.NotEqual(t, "store123", u.PasswordHash, "nunca debe quedar en plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("store123")))
}

// Debe existir al menos un Owner para poder administrar la tienda.
func TestLoad_HayUnOwner(t *testing.T) {
	data, err := seed.Load()
	require.NoError(t, err)

	var owners int
	for _, u := range data.Users {
		if u.Role == entity.RoleOwner {
			owners++
		}
	}
	assert.GreaterOrEqual(t, owners, 1)
}

func TestLoadFile_ArchivoInexistente(t *testing.T) {
	_, err := seed.LoadFile("/no/such/file.yaml")
	assert.Error(t, err)
}

// Un seed con referencias rotas debe rechazarse completo.
func TestLoadFile_ReferenciasRotas(t *testing.T) {
	path := t.TempDir() + "/bad.yaml"
	raw := `default_password: x
departments:
  - id: dept_a
    name: A
    type: Retail
users:
  - id: u1
    name: Ghost
    role: Employee
    department_id: dept_missing
    email: ghost@store.com
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	_, err := seed.LoadFile(path)
	assert.ErrorContains(t, err, "departamento principal inexistente")
}

func TestLoadFile_FrecuenciaDesconocida(t *testing.T) {
	path := t.TempDir() + "/bad.yaml"
	raw := `default_password: x
departments:
  - id: dept_a
    name: A
    type: Retail
task_templates:
  - title: Something
    frequency: Hourly
    department_id: dept_a
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	_, err := seed.LoadFile(path)
	assert.ErrorContains(t, err, "frecuencia desconocida")
}
