package route

import (
	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/controller"
)

// RegisterAuthRoutes registra las rutas del módulo de autenticación
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/logout", authController.Logout)
	}
}
