package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "ADMIN"
	RoleCliente = "CLIENTE"
)

// User representa un usuario del sistema (cliente o administrador de la tienda).
type User struct {
	ID           string
	Name         string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, CLIENTE
	Active       bool   // false = inhabilitado (no se elimina en el flujo normal)
	CreatedAt    time.Time
}

// ValidRole indica si el rol es uno de los reconocidos.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleCliente
}
