package database

import (
	"errors"
	"fmt"

	"github.com/farmaciags/backend/internal/infrastructure/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations aplica las migraciones pendientes sobre la base de datos
func RunMigrations(cfg *config.Config) error {
	sourceURL := fmt.Sprintf("file://%s", cfg.MigrationsPath)

	m, err := migrate.New(sourceURL, cfg.MigrationURL())
	if err != nil {
		return fmt.Errorf("error al crear migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error al aplicar migraciones: %w", err)
	}

	return nil
}

// RollbackMigration revierte la última migración aplicada
func RollbackMigration(cfg *config.Config) error {
	sourceURL := fmt.Sprintf("file://%s", cfg.MigrationsPath)

	m, err := migrate.New(sourceURL, cfg.MigrationURL())
	if err != nil {
		return fmt.Errorf("error al crear migrate: %w", err)
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil {
		return fmt.Errorf("error al revertir migración: %w", err)
	}

	return nil
}
