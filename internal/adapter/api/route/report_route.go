package route

import (
	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/controller"
	userdomain "github.com/farmaciags/backend/internal/domain/user"
	"github.com/farmaciags/backend/pkg/audit"
	"github.com/farmaciags/backend/pkg/auth"
)

// RegisterReportRoutes registra las rutas de reportes exportables
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController, jwtService *auth.JWTService, recorder *audit.Recorder) {
	reports := r.Group("/reports")
	reports.Use(auth.Middleware(jwtService), auth.RequireRoles(string(userdomain.RoleAdmin), string(userdomain.RolePharmacist)))
	{
		reports.GET("/inventory", audit.Middleware(recorder, "EXPORT_INVENTORY"), reportController.ExportInventory)
		reports.GET("/sales", audit.Middleware(recorder, "EXPORT_SALES"), reportController.ExportSales)
	}
}
