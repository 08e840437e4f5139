package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/beautybook-api/internal/application/auth"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type userStore struct{ items map[string]*entity.User }

func (r *userStore) Create(u *entity.User) error { r.items[u.ID] = u; return nil }
func (r *userStore) GetByID(id string) (*entity.User, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *userStore) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *userStore) Update(u *entity.User) error { r.items[u.ID] = u; return nil }
func (r *userStore) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.items {
		out = append(out, u)
	}
	return out, nil
}
func (r *userStore) Delete(id string) error { delete(r.items, id); return nil }

var testCfg = auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "beautybook"}

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *dto.UserResponse) {
	t.Helper()
	uc := auth.NewAuthUseCase(&userStore{items: map[string]*entity.User{}}, testCfg)
	admin, err := uc.CreateUser(dto.CreateUserRequest{
		Name: "Admin", Email: "admin@salon.local", Password: "secret123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	return uc, admin
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenConClaims(t *testing.T) {
	uc, admin := newAuthUC(t)

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@salon.local", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, resp.User.ID)

	userID, role, err := jwt.Parse(testCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "admin@salon.local", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@salon.local", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioDesactivado(t *testing.T) {
	uc, admin := newAuthUC(t)

	inactive := false
	_, err := uc.UpdateUser(admin.ID, dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "admin@salon.local", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.CreateUser(dto.CreateUserRequest{
		Email: "admin@salon.local", Password: "otra123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUser_Validaciones(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.CreateUser(dto.CreateUserRequest{Email: "x@salon.local", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password mínimo seis caracteres")

	_, err = uc.CreateUser(dto.CreateUserRequest{Email: "x@salon.local", Password: "secret123", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol fuera del catálogo")

	emp, err := uc.CreateUser(dto.CreateUserRequest{Email: "emp@salon.local", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, emp.Role, "employee por defecto")
	assert.Equal(t, "emp@salon.local", emp.Name, "sin nombre se usa el email")
}

func TestChangePassword_VerificaLaActual(t *testing.T) {
	uc, admin := newAuthUC(t)

	err := uc.ChangePassword(admin.ID, dto.ChangePasswordRequest{
		CurrentPassword: "nope", NewPassword: "nueva123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.ChangePassword(admin.ID, dto.ChangePasswordRequest{
		CurrentPassword: "secret123", NewPassword: "nueva123",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "admin@salon.local", Password: "nueva123"})
	assert.NoError(t, err)
	_, err = uc.Login(dto.LoginRequest{Email: "admin@salon.local", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// SetPassword no pide la contraseña vigente (flujo de admin).
func TestSetPassword_SinVerificarActual(t *testing.T) {
	uc, _ := newAuthUC(t)

	emp, err := uc.CreateUser(dto.CreateUserRequest{Email: "emp@salon.local", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, uc.SetPassword(emp.ID, dto.SetPasswordRequest{NewPassword: "asignada1"}))

	_, err = uc.Login(dto.LoginRequest{Email: "emp@salon.local", Password: "asignada1"})
	assert.NoError(t, err)

	err = uc.SetPassword(emp.ID, dto.SetPasswordRequest{NewPassword: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
