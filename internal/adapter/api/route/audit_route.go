package route

import (
	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/controller"
	userdomain "github.com/farmaciags/backend/internal/domain/user"
	"github.com/farmaciags/backend/pkg/auth"
)

// RegisterAuditRoutes registra las rutas de consulta de la bitácora.
// La bitácora es de solo lectura y exclusiva de administradores.
func RegisterAuditRoutes(r *gin.RouterGroup, auditController *controller.AuditController, jwtService *auth.JWTService) {
	audit := r.Group("/audit")
	audit.Use(auth.Middleware(jwtService), auth.RequireRoles(string(userdomain.RoleAdmin)))
	{
		audit.GET("", auditController.List)
	}
}
