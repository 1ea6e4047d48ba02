package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vivitasol/tienda-api/internal/application/dto"
	"github.com/vivitasol/tienda-api/internal/application/usecase"
	"github.com/vivitasol/tienda-api/internal/domain"
	"github.com/vivitasol/tienda-api/internal/domain/entity"
)

// fakeUserRepo fake en memoria de UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User // key: ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / registro
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_RolVacioQuedaCliente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(dto.CreateUserRequest{
		Nombre:   "Carla Pérez",
		Email:    "carla@tienda.cl",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, out.Rol, "el rol por defecto es CLIENTE")
	assert.True(t, out.Activo, "un usuario nuevo nace activo")
}

func TestUserCreate_PasswordQuedaHasheado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(dto.CreateUserRequest{
		Nombre:   "Carla Pérez",
		Email:    "carla@tienda.cl",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)

	stored := repo.users[out.ID]
	assert.NotEqual(t, "clave-segura-123", stored.PasswordHash,
		"el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("clave-segura-123")),
		"el hash debe verificar contra el password original")
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{
		Nombre: "Carla", Email: "carla@tienda.cl", Password: "clave-segura-123",
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUserRequest{
		Nombre: "Otra Carla", Email: "carla@tienda.cl", Password: "otra-clave-456",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_RolInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{
		Nombre: "Carla", Email: "carla@tienda.cl", Password: "clave-segura-123",
		Rol: "SUPERUSUARIO",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Disable
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUpdate_CambioDeEmailVerificaUnicidad(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	a, err := uc.Create(dto.CreateUserRequest{
		Nombre: "Ana", Email: "ana@tienda.cl", Password: "clave-segura-123",
	})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateUserRequest{
		Nombre: "Beto", Email: "beto@tienda.cl", Password: "clave-segura-123",
	})
	require.NoError(t, err)

	email := "beto@tienda.cl"
	_, err = uc.Update(a.ID, dto.UpdateUserRequest{Email: &email})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"no se puede tomar el email de otro usuario")
}

func TestUserUpdate_PasswordSeRehashea(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(dto.CreateUserRequest{
		Nombre: "Ana", Email: "ana@tienda.cl", Password: "clave-original-1",
	})
	require.NoError(t, err)

	nueva := "clave-nueva-22"
	_, err = uc.Update(out.ID, dto.UpdateUserRequest{Password: &nueva})
	require.NoError(t, err)

	stored := repo.users[out.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte(nueva)))
	assert.Error(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("clave-original-1")))
}

func TestUserDisable_InhabilitaSinEliminar(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(dto.CreateUserRequest{
		Nombre: "Ana", Email: "ana@tienda.cl", Password: "clave-segura-123",
	})
	require.NoError(t, err)

	disabled, err := uc.Disable(out.ID)
	require.NoError(t, err)
	assert.False(t, disabled.Activo)
	assert.Contains(t, repo.users, out.ID, "inhabilitar no borra la cuenta")
}

func TestUserDisable_InexistenteEsNotFound(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Disable("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProfile_ActualizaPorEmailDelToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{
		Nombre: "Ana", Email: "ana@tienda.cl", Password: "clave-segura-123",
	})
	require.NoError(t, err)

	nombre := "Ana María"
	out, err := uc.UpdateProfile("ana@tienda.cl", dto.UpdateProfileRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.Nombre)
	assert.Equal(t, entity.RoleCliente, out.Rol, "el perfil no puede cambiar el rol")
}
