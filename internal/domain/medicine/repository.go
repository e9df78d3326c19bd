package medicine

import (
	"context"
	"time"
)

// Repository define la interfaz del repositorio de medicamentos
type Repository interface {
	// Create crea un nuevo medicamento
	Create(ctx context.Context, m *Medicine) error

	// FindByID busca un medicamento por su ID
	FindByID(ctx context.Context, id int64) (*Medicine, error)

	// List lista los medicamentos con paginación
	List(ctx context.Context, limit, offset int) ([]*Medicine, error)

	// Count cuenta el total de medicamentos
	Count(ctx context.Context) (int, error)

	// Update actualiza un medicamento existente
	Update(ctx context.Context, m *Medicine) error

	// Delete elimina un medicamento
	Delete(ctx context.Context, id int64) error

	// FindAlerts lista los medicamentos con stock bajo o próximos a vencer
	FindAlerts(ctx context.Context, stockThreshold int, expiresBefore time.Time) ([]*Medicine, error)
}
