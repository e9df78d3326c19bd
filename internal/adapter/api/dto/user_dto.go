package dto

import (
	"time"

	"github.com/farmaciags/backend/internal/domain/user"
)

// UserRequest es el cuerpo de creación/actualización de un usuario
type UserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	Role     string `json:"role" validate:"required,oneof=admin pharmacist cashier employee"`
}

// UserResponse es la representación de un usuario en las respuestas
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse convierte la entidad a su DTO de respuesta
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// ToUserListResponse convierte la lista de entidades a DTOs
func ToUserListResponse(users []*user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
