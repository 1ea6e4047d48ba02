package auth

import (
	"github.com/vivitasol/tienda-api/internal/application/dto"
	"github.com/vivitasol/tienda-api/internal/domain"
	"github.com/vivitasol/tienda-api/internal/domain/entity"
	"github.com/vivitasol/tienda-api/internal/domain/repository"
	"github.com/vivitasol/tienda-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: verificación de credenciales y emisión de token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Authenticate verifica email y password contra el hash almacenado.
// Email desconocido y password incorrecto responden el mismo ErrInvalidCredentials
// para no revelar qué emails existen. Cuenta inactiva retorna ErrInactiveAccount.
func (uc *AuthUseCase) Authenticate(email, password string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domain.ErrInactiveAccount
	}
	return user, nil
}

// Login autentica y genera el JWT con claims id, nombre y rol.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.Authenticate(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		ID:     user.ID,
		Nombre: user.Name,
		Email:  user.Email,
		Rol:    user.Role,
		Token:  token,
	}, nil
}
