package sale

import (
	"context"
	"time"
)

// Repository define la interfaz del repositorio de ventas
type Repository interface {
	// Create registra la venta con sus líneas y descuenta el stock en
	// una sola transacción
	Create(ctx context.Context, s *Sale) error

	// FindByID busca una venta con sus líneas y los nombres del cajero
	// y del cliente
	FindByID(ctx context.Context, id int64) (*Sale, error)

	// List lista las ventas más recientes con los nombres del cajero y
	// del cliente, sin líneas
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// Count cuenta el total de ventas
	Count(ctx context.Context) (int, error)

	// Cancel marca una venta como cancelada
	Cancel(ctx context.Context, id int64) error

	// FindByPeriod lista las ventas no canceladas del período, sin líneas
	FindByPeriod(ctx context.Context, from, to time.Time) ([]*Sale, error)

	// FindByPeriodWithItems lista las ventas no canceladas del período
	// con sus líneas y los nombres de cajero, cliente y medicamento
	FindByPeriodWithItems(ctx context.Context, from, to time.Time) ([]*Sale, error)
}
