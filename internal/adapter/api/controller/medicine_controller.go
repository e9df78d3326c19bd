package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/dto"
	"github.com/farmaciags/backend/internal/adapter/repository"
	medicinedomain "github.com/farmaciags/backend/internal/domain/medicine"
	"github.com/farmaciags/backend/pkg/logger"
	"github.com/farmaciags/backend/pkg/validator"
)

// Umbrales de las alertas de inventario
const (
	alertStockThreshold = 10
	alertExpiryDays     = 30
)

// MedicineController gestiona las peticiones relacionadas con medicamentos
type MedicineController struct {
	medicineRepo medicinedomain.Repository
	validate     *validator.Validator
	logger       logger.Logger
}

// NewMedicineController crea una nueva instancia de MedicineController
func NewMedicineController(medicineRepo medicinedomain.Repository, validate *validator.Validator, logger logger.Logger) *MedicineController {
	return &MedicineController{
		medicineRepo: medicineRepo,
		validate:     validate,
		logger:       logger,
	}
}

// Create crea un nuevo medicamento
// @Summary Crear medicamento
// @Description Crea un nuevo medicamento en el inventario
// @Tags medicines
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param medicine body dto.MedicineRequest true "Datos del medicamento"
// @Success 201 {object} dto.MedicineResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /medicines [post]
func (c *MedicineController) Create(ctx *gin.Context) {
	var req dto.MedicineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	if errs := c.validate.ValidateStruct(req); errs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(errs))
		return
	}

	m, err := medicinedomain.NewMedicine(req.Name, req.Description, *req.Stock, *req.Price, req.ParsedExpiration(), req.Lot)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear medicamento", err.Error()))
		return
	}

	if err := c.medicineRepo.Create(ctx, m); err != nil {
		c.logger.Error("error al guardar medicamento", "name", m.Name, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar medicamento", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMedicineResponse(m))
}

// List lista los medicamentos
// @Summary Listar medicamentos
// @Description Lista los medicamentos con paginación
// @Tags medicines
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /medicines [get]
func (c *MedicineController) List(ctx *gin.Context) {
	p := paginationFrom(ctx)

	medicines, err := c.medicineRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		c.logger.Error("error al listar medicamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar medicamentos", ""))
		return
	}

	total, err := c.medicineRepo.Count(ctx)
	if err != nil {
		c.logger.Error("error al contar medicamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar medicamentos", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToMedicineListResponse(medicines), total, p.Page, p.PageSize))
}

// Get busca un medicamento por ID
// @Summary Buscar medicamento
// @Description Busca un medicamento por su ID
// @Tags medicines
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID del medicamento"
// @Success 200 {object} dto.MedicineResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /medicines/{id} [get]
func (c *MedicineController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	m, err := c.medicineRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "medicamento no encontrado", ""))
			return
		}
		c.logger.Error("error al buscar medicamento", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar medicamento", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMedicineResponse(m))
}

// Update actualiza un medicamento
// @Summary Actualizar medicamento
// @Description Actualiza los datos de un medicamento existente
// @Tags medicines
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID del medicamento"
// @Param medicine body dto.MedicineRequest true "Datos del medicamento"
// @Success 200 {object} dto.MedicineResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /medicines/{id} [put]
func (c *MedicineController) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req dto.MedicineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	if errs := c.validate.ValidateStruct(req); errs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(errs))
		return
	}

	m, err := c.medicineRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "medicamento no encontrado", ""))
			return
		}
		c.logger.Error("error al buscar medicamento", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar medicamento", ""))
		return
	}

	if err := m.Update(req.Name, req.Description, *req.Stock, *req.Price, req.ParsedExpiration(), req.Lot); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al actualizar medicamento", err.Error()))
		return
	}

	if err := c.medicineRepo.Update(ctx, m); err != nil {
		c.logger.Error("error al guardar medicamento", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar medicamento", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMedicineResponse(m))
}

// Delete elimina un medicamento
// @Summary Eliminar medicamento
// @Description Elimina un medicamento del inventario
// @Tags medicines
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID del medicamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /medicines/{id} [delete]
func (c *MedicineController) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := c.medicineRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "medicamento no encontrado", ""))
			return
		}
		c.logger.Error("error al eliminar medicamento", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar medicamento", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("medicamento eliminado", nil))
}

// Alerts lista los medicamentos con stock bajo o próximos a vencer
// @Summary Alertas de inventario
// @Description Lista los medicamentos con stock bajo o con vencimiento próximo
// @Tags medicines
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /medicines/alerts [get]
func (c *MedicineController) Alerts(ctx *gin.Context) {
	expiresBefore := time.Now().AddDate(0, 0, alertExpiryDays)

	medicines, err := c.medicineRepo.FindAlerts(ctx, alertStockThreshold, expiresBefore)
	if err != nil {
		c.logger.Error("error al listar alertas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar alertas", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("alertas de inventario", dto.ToMedicineListResponse(medicines)))
}

// idParam lee el parámetro de ruta "id"; en caso de error responde 400
func idParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", ""))
		return 0, false
	}
	return id, true
}

// paginationFrom lee los parámetros de paginación de la query
func paginationFrom(ctx *gin.Context) dto.Pagination {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	return dto.GetPagination(page, pageSize)
}
