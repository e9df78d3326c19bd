package route

import (
	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/controller"
	userdomain "github.com/farmaciags/backend/internal/domain/user"
	"github.com/farmaciags/backend/pkg/audit"
	"github.com/farmaciags/backend/pkg/auth"
)

// RegisterSaleRoutes registra las rutas del módulo de ventas y caja
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController, jwtService *auth.JWTService, recorder *audit.Recorder) {
	sales := r.Group("/sales")
	sales.Use(auth.Middleware(jwtService))
	{
		sales.POST("", audit.Middleware(recorder, "CREATE_SALE"), saleController.Create)
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)
		// Solo un administrador puede cancelar una venta.
		sales.DELETE("/:id", auth.RequireRoles(string(userdomain.RoleAdmin)), audit.Middleware(recorder, "CANCEL_SALE"), saleController.Cancel)
	}

	cashbox := r.Group("/cashbox")
	cashbox.Use(auth.Middleware(jwtService))
	{
		cashbox.GET("/summary", saleController.CashboxSummary)
		cashbox.GET("/details", saleController.CashboxDetails)
	}
}
