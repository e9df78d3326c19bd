package client

import (
	"context"
)

// Lookups define las consultas de existencia que usa el verificador de
// duplicados. excludeID permite excluir el propio registro durante una
// actualización; cero significa sin exclusión.
type Lookups interface {
	// ExistsByEmail verifica si otro cliente usa el correo (sin distinguir mayúsculas)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)

	// ExistsByPhone verifica si otro cliente usa el teléfono
	ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error)

	// ExistsByCedula verifica si otro cliente usa la cédula
	ExistsByCedula(ctx context.Context, cedula string, excludeID int64) (bool, error)

	// ExistsByRNC verifica si otro cliente usa el RNC
	ExistsByRNC(ctx context.Context, rnc string, excludeID int64) (bool, error)
}

// Repository define la interfaz del repositorio de clientes
type Repository interface {
	Lookups

	// Create crea un nuevo cliente
	Create(ctx context.Context, c *Client) error

	// FindByID busca un cliente por su ID
	FindByID(ctx context.Context, id int64) (*Client, error)

	// List lista los clientes con paginación
	List(ctx context.Context, limit, offset int) ([]*Client, error)

	// Count cuenta el total de clientes
	Count(ctx context.Context) (int, error)

	// Update actualiza un cliente existente
	Update(ctx context.Context, c *Client) error

	// Delete elimina un cliente
	Delete(ctx context.Context, id int64) error
}
