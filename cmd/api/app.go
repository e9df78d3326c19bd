package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/farmaciags/backend/docs"
	"github.com/farmaciags/backend/internal/adapter/api/controller"
	"github.com/farmaciags/backend/internal/adapter/api/route"
	"github.com/farmaciags/backend/internal/adapter/repository"
	clientdomain "github.com/farmaciags/backend/internal/domain/client"
	"github.com/farmaciags/backend/internal/infrastructure/config"
	"github.com/farmaciags/backend/internal/infrastructure/database"
	"github.com/farmaciags/backend/pkg/audit"
	"github.com/farmaciags/backend/pkg/auth"
	"github.com/farmaciags/backend/pkg/logger"
	"github.com/farmaciags/backend/pkg/report"
	"github.com/farmaciags/backend/pkg/validator"
)

// App representa la aplicación y sus dependencias
type App struct {
	cfg      *config.Config
	router   *gin.Engine
	db       *database.PostgresDB
	recorder *audit.Recorder
	logger   logger.Logger
}

// NewApp construye la aplicación: configuración, base de datos,
// migraciones, repositorios, controladores y rutas.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(cfg); err != nil {
		db.Close()
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration)
	if err != nil {
		db.Close()
		return nil, err
	}

	// Repositorios
	userRepo := repository.NewUserRepository(db.Pool)
	sessionRepo := repository.NewSessionRepository(db.Pool)
	medicineRepo := repository.NewMedicineRepository(db.Pool)
	clientRepo := repository.NewClientRepository(db.Pool)
	saleRepo := repository.NewSaleRepository(db.Pool)
	auditRepo := repository.NewAuditRepository(db.Pool)

	// Servicios compartidos
	validate := validator.New()
	recorder := audit.NewRecorder(auditRepo, log)
	checker := clientdomain.NewChecker(clientRepo)
	exporter := report.NewExporter(cfg.ExportDir)

	// Controladores
	authController := controller.NewAuthController(userRepo, sessionRepo, jwtService, cfg.RefreshExpiration, validate, recorder, log)
	userController := controller.NewUserController(userRepo, validate, log)
	medicineController := controller.NewMedicineController(medicineRepo, validate, log)
	clientController := controller.NewClientController(clientRepo, checker, log)
	saleController := controller.NewSaleController(saleRepo, validate, log)
	auditController := controller.NewAuditController(auditRepo, log)
	reportController := controller.NewReportController(medicineRepo, saleRepo, exporter, log)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Documentación Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(cfg.BasePath)
	route.RegisterAuthRoutes(api, authController)
	route.RegisterUserRoutes(api, userController, jwtService, recorder)
	route.RegisterMedicineRoutes(api, medicineController, jwtService, recorder)
	route.RegisterClientRoutes(api, clientController, jwtService, recorder)
	route.RegisterSaleRoutes(api, saleController, jwtService, recorder)
	route.RegisterAuditRoutes(api, auditController, jwtService)
	route.RegisterReportRoutes(api, reportController, jwtService, recorder)

	return &App{
		cfg:      cfg,
		router:   router,
		db:       db,
		recorder: recorder,
		logger:   log,
	}, nil
}

// Start arranca el servidor HTTP y espera la señal de apagado
func (a *App) Start() error {
	srv := &http.Server{
		Addr:    ":" + a.cfg.Port,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "port", a.cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.logger.Info("apagando servidor", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	// Esperar las escrituras de bitácora en vuelo antes de salir.
	a.recorder.Flush()

	return nil
}

// Close libera los recursos de la aplicación
func (a *App) Close() {
	if a.recorder != nil {
		a.recorder.Flush()
	}
	if a.db != nil {
		a.db.Close()
	}
}
