package route

import (
	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/controller"
	"github.com/farmaciags/backend/pkg/audit"
	"github.com/farmaciags/backend/pkg/auth"
)

// RegisterMedicineRoutes registra las rutas del módulo de medicamentos
func RegisterMedicineRoutes(r *gin.RouterGroup, medicineController *controller.MedicineController, jwtService *auth.JWTService, recorder *audit.Recorder) {
	medicines := r.Group("/medicines")
	medicines.Use(auth.Middleware(jwtService))
	{
		medicines.POST("", audit.Middleware(recorder, "CREATE_MEDICINE"), medicineController.Create)
		medicines.GET("", medicineController.List)
		medicines.GET("/alerts", medicineController.Alerts)
		medicines.GET("/:id", medicineController.Get)
		medicines.PUT("/:id", audit.Middleware(recorder, "UPDATE_MEDICINE"), medicineController.Update)
		medicines.DELETE("/:id", audit.Middleware(recorder, "DELETE_MEDICINE"), medicineController.Delete)
	}
}
