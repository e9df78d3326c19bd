package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/farmaciags/backend/internal/domain/user"
	"github.com/farmaciags/backend/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Errores específicos del repositorio de usuarios
var (
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUserDuplicateEmail = errors.New("ya existe un usuario con ese correo electrónico")
	ErrSessionNotFound    = errors.New("sesión no encontrada")
)

// UserRepository implementa la interfaz user.Repository
type UserRepository struct {
	db database.Pool
}

// NewUserRepository crea una nueva instancia de UserRepository
func NewUserRepository(db database.Pool) user.Repository {
	return &UserRepository{db: db}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		u.Name, u.Email, u.Password, u.Role, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrUserDuplicateEmail
		}
		return fmt.Errorf("error al crear usuario: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var u user.User
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, created_at, updated_at
		 FROM users WHERE id = $1`,
		id).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error al buscar usuario: %w", err)
	}

	return &u, nil
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, created_at, updated_at
		 FROM users WHERE LOWER(email) = LOWER($1)`,
		email).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error al buscar usuario por correo: %w", err)
	}

	return &u, nil
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, password_hash, role, created_at, updated_at
		 FROM users
		 ORDER BY name ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar usuarios: %w", err)
	}
	defer rows.Close()

	users := make([]*user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error al leer usuario: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return users, nil
}

// Count implementa user.Repository.Count
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("error al contar usuarios: %w", err)
	}
	return count, nil
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users
		 SET name = $1, email = $2, password_hash = $3, role = $4, updated_at = $5
		 WHERE id = $6`,
		u.Name, u.Email, u.Password, u.Role, u.UpdatedAt, u.ID)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrUserDuplicateEmail
		}
		return fmt.Errorf("error al actualizar usuario: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete implementa user.Repository.Delete
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar usuario: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SessionRepository implementa la interfaz user.SessionRepository
type SessionRepository struct {
	db database.Pool
}

// NewSessionRepository crea una nueva instancia de SessionRepository
func NewSessionRepository(db database.Pool) user.SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession implementa user.SessionRepository.CreateSession
func (r *SessionRepository) CreateSession(ctx context.Context, s *user.Session) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sessions (id, user_id, token_hash, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.UserID, s.TokenHash, s.ExpiresAt, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("error al crear sesión: %w", err)
	}
	return nil
}

// FindSessionByTokenHash implementa user.SessionRepository.FindSessionByTokenHash
func (r *SessionRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string) (*user.Session, error) {
	var s user.Session
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, token_hash, expires_at, created_at
		 FROM sessions WHERE token_hash = $1`,
		tokenHash).Scan(&s.ID, &s.UserID, &s.TokenHash, &s.ExpiresAt, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error al buscar sesión: %w", err)
	}

	return &s, nil
}

// DeleteSession implementa user.SessionRepository.DeleteSession
func (r *SessionRepository) DeleteSession(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM sessions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar sesión: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpiredSessions implementa user.SessionRepository.DeleteExpiredSessions
func (r *SessionRepository) DeleteExpiredSessions(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM sessions WHERE expires_at < NOW()"); err != nil {
		return fmt.Errorf("error al depurar sesiones expiradas: %w", err)
	}
	return nil
}
