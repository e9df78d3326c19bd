package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/farmaciags/backend/internal/infrastructure/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool es la abstracción mínima sobre el pool de conexiones que usan
// los repositorios. La implementan *pgxpool.Pool y pgxmock.PgxPoolIface,
// lo que permite probar los repositorios sin una base de datos real.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// PostgresDB gestiona la conexión con PostgreSQL
type PostgresDB struct {
	Pool Pool
}

// NewPostgresDB crea el pool de conexiones a partir de la configuración
// y verifica que la base de datos responda.
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("error al analizar la configuración del pool: %w", err)
	}

	poolConfig.MaxConns = cfg.DBMaxConns
	poolConfig.MinConns = cfg.DBMinConns
	poolConfig.MaxConnLifetime = cfg.DBMaxConnLife
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("error al crear el pool de conexiones: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("error al verificar la conexión con la base de datos: %w", err)
	}

	return &PostgresDB{Pool: pool}, nil
}

// Close cierra el pool de conexiones
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// IsUniqueViolation indica si el error corresponde a una violación de
// restricción de unicidad. Las restricciones de la base de datos son el
// respaldo final frente a escrituras concurrentes que pasaron la
// validación de la aplicación.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
