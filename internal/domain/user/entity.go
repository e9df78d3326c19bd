package user

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName    = errors.New("el nombre no puede estar vacío")
	ErrEmptyEmail   = errors.New("el correo no puede estar vacío")
	ErrInvalidRole  = errors.New("rol inválido")
	ErrWeakPassword = errors.New("la contraseña debe tener al menos 6 caracteres")
)

// Role representa el rol del usuario dentro de la farmacia
type Role string

const (
	RoleAdmin      Role = "admin"      // Administrador del sistema
	RolePharmacist Role = "pharmacist" // Farmacéutico
	RoleCashier    Role = "cashier"    // Cajero
	RoleEmployee   Role = "employee"   // Empleado regular
)

// ValidRole indica si el rol pertenece al conjunto permitido
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RolePharmacist, RoleCashier, RoleEmployee:
		return true
	}
	return false
}

// User representa un usuario del sistema
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // La contraseña nunca se serializa en las respuestas
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser crea un nuevo usuario con la contraseña ya hasheada
func NewUser(name, email, password string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	u := &User{
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword asigna la contraseña del usuario aplicando hash bcrypt
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return ErrWeakPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifica si la contraseña proporcionada es válida
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// IsAdmin indica si el usuario es administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session representa una sesión de refresco de token.
// Solo se persiste el hash SHA-256 del token, nunca el token en claro.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired indica si la sesión ya venció
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
