package main

import (
	"log"
)

func main() {
	app, err := NewApp()
	if err != nil {
		log.Fatalf("Error al inicializar la aplicación: %v", err)
	}
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
