package audit

import (
	"context"
)

// Repository define la interfaz del repositorio de la bitácora.
// La bitácora es de solo inserción y lectura: no hay Update ni Delete.
type Repository interface {
	// Append agrega un registro a la bitácora
	Append(ctx context.Context, e *Entry) error

	// List lista los registros más recientes aplicando los filtros,
	// con el nombre y correo del usuario
	List(ctx context.Context, f Filter, limit, offset int) ([]*Entry, error)

	// Count cuenta los registros que cumplen los filtros
	Count(ctx context.Context, f Filter) (int, error)
}
