package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/dto"
	"github.com/farmaciags/backend/internal/adapter/repository"
	clientdomain "github.com/farmaciags/backend/internal/domain/client"
	"github.com/farmaciags/backend/pkg/logger"
)

// ClientController gestiona las peticiones relacionadas con clientes
type ClientController struct {
	clientRepo clientdomain.Repository
	checker    *clientdomain.Checker
	logger     logger.Logger
}

// NewClientController crea una nueva instancia de ClientController
func NewClientController(clientRepo clientdomain.Repository, checker *clientdomain.Checker, logger logger.Logger) *ClientController {
	return &ClientController{
		clientRepo: clientRepo,
		checker:    checker,
		logger:     logger,
	}
}

// Create crea un nuevo cliente
// @Summary Crear cliente
// @Description Crea un nuevo cliente previa verificación de duplicados
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param client body dto.ClientRequest true "Datos del cliente"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} clientdomain.CheckResult
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [post]
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	if result := c.checker.Check(ctx, req.CheckInput(0)); !result.IsValid {
		ctx.JSON(http.StatusBadRequest, result)
		return
	}

	cl, err := clientdomain.NewClient(req.Name, req.Email, req.Phone, req.Cedula, req.RNC, req.Address)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear cliente", err.Error()))
		return
	}

	if err := c.clientRepo.Create(ctx, cl); err != nil {
		// Una escritura concurrente pudo ganar la carrera después de la
		// verificación; la restricción de la base de datos decide.
		if errors.Is(err, repository.ErrClientDuplicateKey) {
			ctx.JSON(http.StatusBadRequest, clientdomain.CheckResult{IsValid: false, Message: clientdomain.MsgDuplicateEmail})
			return
		}
		c.logger.Error("error al guardar cliente", "name", cl.Name, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar cliente", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(cl))
}

// Check verifica los datos de un cliente sin guardarlo
// @Summary Verificar datos de cliente
// @Description Ejecuta la verificación de duplicados sin crear el cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param client body dto.ClientRequest true "Datos del cliente"
// @Success 200 {object} clientdomain.CheckResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /clients/check [post]
func (c *ClientController) Check(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, c.checker.Check(ctx, req.CheckInput(0)))
}

// List lista los clientes
// @Summary Listar clientes
// @Description Lista los clientes con paginación
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [get]
func (c *ClientController) List(ctx *gin.Context) {
	p := paginationFrom(ctx)

	clients, err := c.clientRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		c.logger.Error("error al listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar clientes", ""))
		return
	}

	total, err := c.clientRepo.Count(ctx)
	if err != nil {
		c.logger.Error("error al contar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar clientes", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToClientListResponse(clients), total, p.Page, p.PageSize))
}

// Get busca un cliente por ID
// @Summary Buscar cliente
// @Description Busca un cliente por su ID
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID del cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [get]
func (c *ClientController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	cl, err := c.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente no encontrado", ""))
			return
		}
		c.logger.Error("error al buscar cliente", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar cliente", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(cl))
}

// Update actualiza un cliente
// @Summary Actualizar cliente
// @Description Actualiza los datos de un cliente previa verificación de duplicados
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID del cliente"
// @Param client body dto.ClientRequest true "Datos del cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} clientdomain.CheckResult
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [put]
func (c *ClientController) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	// Al actualizar, el propio cliente queda excluido de la búsqueda
	// de duplicados.
	if result := c.checker.Check(ctx, req.CheckInput(id)); !result.IsValid {
		ctx.JSON(http.StatusBadRequest, result)
		return
	}

	cl, err := c.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente no encontrado", ""))
			return
		}
		c.logger.Error("error al buscar cliente", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar cliente", ""))
		return
	}

	if err := cl.Update(req.Name, req.Email, req.Phone, req.Cedula, req.RNC, req.Address); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al actualizar cliente", err.Error()))
		return
	}

	if err := c.clientRepo.Update(ctx, cl); err != nil {
		if errors.Is(err, repository.ErrClientDuplicateKey) {
			ctx.JSON(http.StatusBadRequest, clientdomain.CheckResult{IsValid: false, Message: clientdomain.MsgDuplicateEmail})
			return
		}
		c.logger.Error("error al guardar cliente", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar cliente", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(cl))
}

// Delete elimina un cliente
// @Summary Eliminar cliente
// @Description Elimina un cliente del sistema
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID del cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [delete]
func (c *ClientController) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := c.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente no encontrado", ""))
			return
		}
		c.logger.Error("error al eliminar cliente", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar cliente", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente eliminado", nil))
}
