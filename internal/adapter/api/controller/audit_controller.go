package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/dto"
	auditdomain "github.com/farmaciags/backend/internal/domain/audit"
	"github.com/farmaciags/backend/pkg/logger"
)

// AuditController gestiona la consulta de la bitácora de auditoría
type AuditController struct {
	auditRepo auditdomain.Repository
	logger    logger.Logger
}

// NewAuditController crea una nueva instancia de AuditController
func NewAuditController(auditRepo auditdomain.Repository, logger logger.Logger) *AuditController {
	return &AuditController{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// List lista los registros de la bitácora
// @Summary Consultar bitácora
// @Description Lista los registros de auditoría con filtros y paginación (solo administradores)
// @Tags audit
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param user_id query int false "ID del usuario"
// @Param action query string false "Acción registrada"
// @Param date_from query string false "Fecha inicial (YYYY-MM-DD)"
// @Param date_to query string false "Fecha final (YYYY-MM-DD)"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /audit [get]
func (c *AuditController) List(ctx *gin.Context) {
	p := paginationFrom(ctx)

	userID, _ := strconv.ParseInt(ctx.Query("user_id"), 10, 64)
	f := auditdomain.Filter{
		UserID:   userID,
		Action:   ctx.Query("action"),
		DateFrom: ctx.Query("date_from"),
		DateTo:   ctx.Query("date_to"),
	}

	entries, err := c.auditRepo.List(ctx, f, p.PageSize, p.Offset())
	if err != nil {
		c.logger.Error("error al listar la bitácora", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al consultar la bitácora", ""))
		return
	}

	total, err := c.auditRepo.Count(ctx, f)
	if err != nil {
		c.logger.Error("error al contar la bitácora", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al consultar la bitácora", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToAuditListResponse(entries), total, p.Page, p.PageSize))
}
