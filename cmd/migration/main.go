package main

import (
	"flag"
	"log"

	"github.com/farmaciags/backend/internal/infrastructure/config"
	"github.com/farmaciags/backend/internal/infrastructure/database"
)

func main() {
	down := flag.Bool("down", false, "revierte la última migración en lugar de aplicar las pendientes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error al cargar configuración: %v", err)
	}

	if *down {
		if err := database.RollbackMigration(cfg); err != nil {
			log.Fatalf("Error al revertir migración: %v", err)
		}
		log.Println("Migración revertida")
		return
	}

	if err := database.RunMigrations(cfg); err != nil {
		log.Fatalf("Error al aplicar migraciones: %v", err)
	}
	log.Println("Migraciones aplicadas")
}
