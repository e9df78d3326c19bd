package audit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware registra la acción en la bitácora después de que el
// manejador responde, solo cuando la operación fue exitosa. La acción
// es una etiqueta fija por ruta.
func Middleware(recorder *Recorder, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			recorder.Record(c, action, "")
		}
	}
}
