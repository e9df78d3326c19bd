package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/dto"
	"github.com/farmaciags/backend/internal/adapter/repository"
	saledomain "github.com/farmaciags/backend/internal/domain/sale"
	"github.com/farmaciags/backend/pkg/auth"
	"github.com/farmaciags/backend/pkg/logger"
	"github.com/farmaciags/backend/pkg/validator"
)

// SaleController gestiona las peticiones relacionadas con ventas y caja
type SaleController struct {
	saleRepo saledomain.Repository
	validate *validator.Validator
	logger   logger.Logger
}

// NewSaleController crea una nueva instancia de SaleController
func NewSaleController(saleRepo saledomain.Repository, validate *validator.Validator, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo: saleRepo,
		validate: validate,
		logger:   logger,
	}
}

// Create registra una nueva venta
// @Summary Registrar venta
// @Description Registra una venta con sus líneas y descuenta el stock
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Datos de la venta"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	if errs := c.validate.ValidateStruct(req); errs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(errs))
		return
	}

	items := make([]saledomain.Item, 0, len(req.Details))
	for _, d := range req.Details {
		items = append(items, saledomain.Item{
			MedicineID: *d.MedicineID,
			Quantity:   *d.Quantity,
			UnitPrice:  *d.Price,
		})
	}

	// El cero se interpreta como venta sin cliente registrado.
	clientID := req.ClientID
	if clientID != nil && *clientID == 0 {
		clientID = nil
	}

	userID := ctx.GetInt64(auth.CtxUserID)
	s, err := saledomain.NewSale(userID, clientID, req.PaymentMethod, req.RNC, items)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al registrar venta", err.Error()))
		return
	}

	if err := c.saleRepo.Create(ctx, s); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "stock insuficiente", err.Error()))
			return
		}
		c.logger.Error("error al registrar venta", "user_id", userID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al registrar venta", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// List lista las ventas
// @Summary Listar ventas
// @Description Lista las ventas más recientes con paginación
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	p := paginationFrom(ctx)

	sales, err := c.saleRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		c.logger.Error("error al listar ventas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar ventas", ""))
		return
	}

	total, err := c.saleRepo.Count(ctx)
	if err != nil {
		c.logger.Error("error al contar ventas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar ventas", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToSaleListResponse(sales), total, p.Page, p.PageSize))
}

// Get busca una venta por ID
// @Summary Buscar venta
// @Description Busca una venta con sus líneas por su ID
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID de la venta"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venta no encontrada", ""))
			return
		}
		c.logger.Error("error al buscar venta", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar venta", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// Cancel cancela una venta
// @Summary Cancelar venta
// @Description Marca una venta como cancelada; queda fuera de los totales de caja
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID de la venta"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *SaleController) Cancel(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := c.saleRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venta no encontrada", ""))
			return
		}
		c.logger.Error("error al cancelar venta", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al cancelar venta", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venta cancelada", nil))
}

// CashboxSummary retorna el resumen del cuadre de caja del día
// @Summary Resumen de caja
// @Description Total vendido, transacciones y desglose por método de pago del día actual
// @Tags cashbox
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} saledomain.CashboxSummary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cashbox/summary [get]
func (c *SaleController) CashboxSummary(ctx *gin.Context) {
	from, to := saledomain.TodayWindow(time.Now())

	sales, err := c.saleRepo.FindByPeriod(ctx, from, to)
	if err != nil {
		c.logger.Error("error al consultar ventas del día", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al consultar la caja", ""))
		return
	}

	ctx.JSON(http.StatusOK, saledomain.Summarize(sales))
}

// CashboxDetails retorna el detalle del cuadre de caja del día
// @Summary Detalle de caja
// @Description Resumen del día junto con cada venta y sus líneas
// @Tags cashbox
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CashboxDetailsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cashbox/details [get]
func (c *SaleController) CashboxDetails(ctx *gin.Context) {
	from, to := saledomain.TodayWindow(time.Now())

	sales, err := c.saleRepo.FindByPeriodWithItems(ctx, from, to)
	if err != nil {
		c.logger.Error("error al consultar ventas del día", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al consultar la caja", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.CashboxDetailsResponse{
		Summary: saledomain.Summarize(sales),
		Sales:   dto.ToSaleListResponse(sales),
	})
}
