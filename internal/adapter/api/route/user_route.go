package route

import (
	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/controller"
	userdomain "github.com/farmaciags/backend/internal/domain/user"
	"github.com/farmaciags/backend/pkg/audit"
	"github.com/farmaciags/backend/pkg/auth"
)

// RegisterUserRoutes registra las rutas del módulo de usuarios.
// Todas las rutas son exclusivas de administradores.
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController, jwtService *auth.JWTService, recorder *audit.Recorder) {
	users := r.Group("/users")
	users.Use(auth.Middleware(jwtService), auth.RequireRoles(string(userdomain.RoleAdmin)))
	{
		users.POST("", audit.Middleware(recorder, "CREATE_USER"), userController.Create)
		users.GET("", userController.List)
		users.GET("/:id", userController.Get)
		users.PUT("/:id", audit.Middleware(recorder, "UPDATE_USER"), userController.Update)
		users.DELETE("/:id", audit.Middleware(recorder, "DELETE_USER"), userController.Delete)
	}
}
