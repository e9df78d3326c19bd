package dto

import "github.com/farmaciags/backend/internal/domain/user"

// LoginRequest es el cuerpo de la petición de login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest es el cuerpo de la petición de refresco de token
type RefreshRequest struct {
	Token string `json:"token" validate:"required"`
}

// UserPayload son los datos del usuario que viajan junto a los tokens
type UserPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse es la respuesta del login
type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         UserPayload `json:"user"`
}

// RefreshResponse es la respuesta del refresco de token
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// ToUserPayload convierte la entidad usuario a su payload
func ToUserPayload(u *user.User) UserPayload {
	return UserPayload{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}
