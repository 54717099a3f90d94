package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/storeops-api/internal/application/auth"
	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/domain"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/storeops-api/pkg/jwt"
)

const testSecret = "auth-test-secret"

func newAuthUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("store123"), bcrypt.MinCost)
	require.NoError(t, err)
	users := memory.NewUserRepository([]entity.User{
		{ID: "u2", Name: "Mike", Role: entity.RoleManager, DepartmentID: "dept_beer", Email: "mike@store.com", PasswordHash: string(hash)},
	})
	return auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "store-ops-test",
	})
}

// Login correcto: el token lleva el user_id y el rol para el RBAC.
func TestLogin_TokenConRol(t *testing.T) {
	uc := newAuthUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Email: "mike@store.com", Password: "store123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "Mike", out.User.Name)
	assert.Equal(t, "Manager", out.User.Role)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u2", userID)
	assert.Equal(t, "Manager", role)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nobody@store.com", Password: "store123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Email: "mike@store.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
