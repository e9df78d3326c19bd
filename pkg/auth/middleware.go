package auth

import (
	"net/http"
	"strings"

	"github.com/farmaciags/backend/internal/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Claves bajo las que el middleware deja las claims en el contexto de gin.
// El registrador de auditoría lee CtxUserID desde el mismo contexto.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
	CtxUserName  = "user_name"
	CtxUserRole  = "user_role"
)

// Middleware valida el token Bearer y deja las claims en el contexto
func Middleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token no informado", ""))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "formato de token inválido", "use el formato 'Bearer <token>'"))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			message := "token inválido"
			if err == ErrExpiredToken {
				message = "token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, message, err.Error()))
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserName, claims.Name)
		c.Set(CtxUserRole, claims.Role)

		c.Next()
	}
}

// RequireRoles restringe la ruta a los roles indicados
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "acceso denegado", "el rol no tiene permiso para esta operación"))
	}
}
