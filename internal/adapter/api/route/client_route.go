package route

import (
	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/controller"
	"github.com/farmaciags/backend/pkg/audit"
	"github.com/farmaciags/backend/pkg/auth"
)

// RegisterClientRoutes registra las rutas del módulo de clientes
func RegisterClientRoutes(r *gin.RouterGroup, clientController *controller.ClientController, jwtService *auth.JWTService, recorder *audit.Recorder) {
	clients := r.Group("/clients")
	clients.Use(auth.Middleware(jwtService))
	{
		clients.POST("", audit.Middleware(recorder, "CREATE_CLIENT"), clientController.Create)
		clients.POST("/check", clientController.Check)
		clients.GET("", clientController.List)
		clients.GET("/:id", clientController.Get)
		clients.PUT("/:id", audit.Middleware(recorder, "UPDATE_CLIENT"), clientController.Update)
		clients.DELETE("/:id", audit.Middleware(recorder, "DELETE_CLIENT"), clientController.Delete)
	}
}
