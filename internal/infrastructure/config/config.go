package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contiene toda la configuración de la aplicación.
// Se carga una sola vez al arrancar el proceso y se pasa de forma
// explícita a los componentes que la necesitan; ningún componente
// vuelve a leer variables de entorno después de Load.
type Config struct {
	// Servidor HTTP
	Port     string
	BasePath string

	// Base de datos
	DatabaseURL     string
	DBHost          string
	DBPort          int
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	DBMaxConns      int32
	DBMinConns      int32
	DBMaxConnLife   time.Duration
	MigrationsPath  string

	// Autenticación
	JWTSecret         string
	JWTExpiration     time.Duration
	RefreshExpiration time.Duration

	// Exportación de reportes
	ExportDir string
}

// Load carga el archivo .env (si existe) y construye la configuración
// a partir de las variables de entorno.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: archivo .env no encontrado: %v", err)
	}

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNECTIONS", "10"))
	minConns, _ := strconv.Atoi(getEnv("DB_MIN_CONNECTIONS", "2"))
	maxLife, _ := strconv.Atoi(getEnv("DB_MAX_LIFETIME", "3600"))

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET no está definido")
	}

	jwtHours, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshDays, _ := strconv.Atoi(getEnv("REFRESH_EXPIRATION_DAYS", "7"))

	return &Config{
		Port:            getEnv("PORT", "4004"),
		BasePath:        getEnv("API_BASE_PATH", "/api"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          port,
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "farmacia_gs"),
		DBSSLMode:       getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:      int32(maxConns),
		DBMinConns:      int32(minConns),
		DBMaxConnLife:   time.Duration(maxLife) * time.Second,
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "migrations"),
		JWTSecret:       jwtSecret,
		JWTExpiration:   time.Duration(jwtHours) * time.Hour,
		RefreshExpiration: time.Duration(refreshDays) * 24 * time.Hour,
		ExportDir:       getEnv("EXPORT_DIR", "exports"),
	}, nil
}

// ConnectionString retorna la cadena de conexión para PostgreSQL.
// Si DATABASE_URL fue definida se usa tal cual.
func (c *Config) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// MigrationURL retorna la URL de conexión en formato postgres:// para
// la herramienta de migraciones.
func (c *Config) MigrationURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retorna el valor de una variable de entorno o un valor por defecto
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
