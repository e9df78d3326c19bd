package user

import (
	"context"
)

// Repository define la interfaz del repositorio de usuarios
type Repository interface {
	// Create crea un nuevo usuario
	Create(ctx context.Context, u *User) error

	// FindByID busca un usuario por su ID
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail busca un usuario por su correo
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List lista los usuarios con paginación
	List(ctx context.Context, limit, offset int) ([]*User, error)

	// Count cuenta el total de usuarios
	Count(ctx context.Context) (int, error)

	// Update actualiza los datos de un usuario existente
	Update(ctx context.Context, u *User) error

	// Delete elimina un usuario del sistema
	Delete(ctx context.Context, id int64) error
}

// SessionRepository define la interfaz del repositorio de sesiones de refresco
type SessionRepository interface {
	// CreateSession guarda una nueva sesión
	CreateSession(ctx context.Context, s *Session) error

	// FindSessionByTokenHash busca una sesión por el hash del token de refresco
	FindSessionByTokenHash(ctx context.Context, tokenHash string) (*Session, error)

	// DeleteSession elimina una sesión
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions elimina las sesiones vencidas
	DeleteExpiredSessions(ctx context.Context) error
}
