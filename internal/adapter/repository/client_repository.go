package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/farmaciags/backend/internal/domain/client"
	"github.com/farmaciags/backend/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Errores específicos del repositorio de clientes
var (
	ErrClientNotFound     = errors.New("cliente no encontrado")
	ErrClientDuplicateKey = errors.New("ya existe un cliente con esos datos")
)

// ClientRepository implementa la interfaz client.Repository
type ClientRepository struct {
	db database.Pool
}

// NewClientRepository crea una nueva instancia de ClientRepository
func NewClientRepository(db database.Pool) client.Repository {
	return &ClientRepository{db: db}
}

// Create implementa client.Repository.Create. Las restricciones únicas
// de la tabla son el respaldo final ante duplicados concurrentes que el
// verificador no alcanzó a ver.
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO clients (name, email, phone, cedula, rnc, address, created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8)
		 RETURNING id`,
		c.Name, c.Email, c.Phone, c.Cedula, c.RNC, c.Address, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrClientDuplicateKey
		}
		return fmt.Errorf("error al crear cliente: %w", err)
	}

	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*client.Client, error) {
	var c client.Client
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, phone, COALESCE(cedula, ''), COALESCE(rnc, ''), COALESCE(address, ''), created_at, updated_at
		 FROM clients WHERE id = $1`,
		id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Cedula, &c.RNC, &c.Address, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("error al buscar cliente: %w", err)
	}

	return &c, nil
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, phone, COALESCE(cedula, ''), COALESCE(rnc, ''), COALESCE(address, ''), created_at, updated_at
		 FROM clients
		 ORDER BY name ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar clientes: %w", err)
	}
	defer rows.Close()

	clients := make([]*client.Client, 0)
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Cedula, &c.RNC, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error al leer cliente: %w", err)
		}
		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return clients, nil
}

// Count implementa client.Repository.Count
func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM clients").Scan(&count); err != nil {
		return 0, fmt.Errorf("error al contar clientes: %w", err)
	}
	return count, nil
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	result, err := r.db.Exec(ctx,
		`UPDATE clients
		 SET name = $1, email = $2, phone = $3, cedula = NULLIF($4, ''), rnc = NULLIF($5, ''), address = $6, updated_at = $7
		 WHERE id = $8`,
		c.Name, c.Email, c.Phone, c.Cedula, c.RNC, c.Address, c.UpdatedAt, c.ID)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrClientDuplicateKey
		}
		return fmt.Errorf("error al actualizar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Delete implementa client.Repository.Delete
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// ExistsByEmail implementa client.Lookups.ExistsByEmail.
// La comparación no distingue mayúsculas de minúsculas.
func (r *ClientRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM clients WHERE LOWER(email) = LOWER($1) AND ($2 = 0 OR id != $2))`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error al verificar correo del cliente: %w", err)
	}
	return exists, nil
}

// ExistsByPhone implementa client.Lookups.ExistsByPhone
func (r *ClientRepository) ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM clients WHERE phone = $1 AND ($2 = 0 OR id != $2))`,
		phone, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error al verificar teléfono del cliente: %w", err)
	}
	return exists, nil
}

// ExistsByCedula implementa client.Lookups.ExistsByCedula
func (r *ClientRepository) ExistsByCedula(ctx context.Context, cedula string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM clients WHERE cedula = $1 AND ($2 = 0 OR id != $2))`,
		cedula, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error al verificar cédula del cliente: %w", err)
	}
	return exists, nil
}

// ExistsByRNC implementa client.Lookups.ExistsByRNC
func (r *ClientRepository) ExistsByRNC(ctx context.Context, rnc string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM clients WHERE rnc = $1 AND ($2 = 0 OR id != $2))`,
		rnc, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error al verificar RNC del cliente: %w", err)
	}
	return exists, nil
}
