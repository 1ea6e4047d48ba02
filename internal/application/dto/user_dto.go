package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
// Rol opcional: si no viene, el use case asigna CLIENTE.
type CreateUserRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol" validate:"omitempty,oneof=ADMIN CLIENTE"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password vacío = no cambiar.
type UpdateUserRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Rol      *string `json:"rol" validate:"omitempty,oneof=ADMIN CLIENTE"`
	Activo   *bool   `json:"activo"`
}

// UpdateProfileRequest entrada para que el usuario autenticado edite su propio perfil.
type UpdateProfileRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID       string    `json:"id"`
	Nombre   string    `json:"nombre"`
	Email    string    `json:"email"`
	Rol      string    `json:"rol"`
	Activo   bool      `json:"activo"`
	CreadoEn time.Time `json:"creado_en"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida de login: datos básicos del usuario más el token JWT.
type LoginResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	Token  string `json:"token"`
}
