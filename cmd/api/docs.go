package main

// @title           Farmacia GS API
// @version         1.0
// @description     API del sistema de punto de venta e inventario Farmacia GS

// @contact.name   Farmacia GS
// @contact.email  soporte@farmaciags.com

// @host      localhost:4004
// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Autenticación JWT con esquema Bearer. Ejemplo: "Bearer {token}"
