package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/dto"
	"github.com/farmaciags/backend/internal/adapter/repository"
	userdomain "github.com/farmaciags/backend/internal/domain/user"
	"github.com/farmaciags/backend/pkg/auth"
	"github.com/farmaciags/backend/pkg/logger"
	"github.com/farmaciags/backend/pkg/validator"
)

// UserController gestiona las peticiones relacionadas con usuarios
type UserController struct {
	userRepo userdomain.Repository
	validate *validator.Validator
	logger   logger.Logger
}

// NewUserController crea una nueva instancia de UserController
func NewUserController(userRepo userdomain.Repository, validate *validator.Validator, logger logger.Logger) *UserController {
	return &UserController{
		userRepo: userRepo,
		validate: validate,
		logger:   logger,
	}
}

// Create crea un nuevo usuario
// @Summary Crear usuario
// @Description Crea un nuevo usuario del sistema (solo administradores)
// @Tags users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param user body dto.UserRequest true "Datos del usuario"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	if errs := c.validate.ValidateStruct(req); errs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(errs))
		return
	}

	u, err := userdomain.NewUser(req.Name, req.Email, req.Password, userdomain.Role(req.Role))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear usuario", err.Error()))
		return
	}

	if err := c.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateEmail) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ya existe un usuario con ese correo electrónico", ""))
			return
		}
		c.logger.Error("error al guardar usuario", "email", u.Email, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar usuario", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// List lista los usuarios
// @Summary Listar usuarios
// @Description Lista los usuarios con paginación (solo administradores)
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	p := paginationFrom(ctx)

	users, err := c.userRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		c.logger.Error("error al listar usuarios", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar usuarios", ""))
		return
	}

	total, err := c.userRepo.Count(ctx)
	if err != nil {
		c.logger.Error("error al contar usuarios", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar usuarios", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToUserListResponse(users), total, p.Page, p.PageSize))
}

// Get busca un usuario por ID
// @Summary Buscar usuario
// @Description Busca un usuario por su ID (solo administradores)
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID del usuario"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	u, err := c.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuario no encontrado", ""))
			return
		}
		c.logger.Error("error al buscar usuario", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar usuario", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// Update actualiza un usuario
// @Summary Actualizar usuario
// @Description Actualiza los datos de un usuario existente (solo administradores)
// @Tags users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID del usuario"
// @Param user body dto.UserRequest true "Datos del usuario"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	if errs := c.validate.ValidateStruct(req); errs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(errs))
		return
	}

	u, err := c.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuario no encontrado", ""))
			return
		}
		c.logger.Error("error al buscar usuario", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar usuario", ""))
		return
	}

	u.Name = req.Name
	u.Email = req.Email
	u.Role = userdomain.Role(req.Role)

	// La contraseña solo cambia cuando viene en la petición.
	if req.Password != "" {
		if err := u.SetPassword(req.Password); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al actualizar usuario", err.Error()))
			return
		}
	}

	if err := c.userRepo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateEmail) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ya existe un usuario con ese correo electrónico", ""))
			return
		}
		c.logger.Error("error al guardar usuario", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar usuario", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// Delete elimina un usuario
// @Summary Eliminar usuario
// @Description Elimina un usuario del sistema (solo administradores)
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID del usuario"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	// Un administrador no puede eliminarse a sí mismo.
	if id == ctx.GetInt64(auth.CtxUserID) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "no puede eliminar su propio usuario", ""))
		return
	}

	if err := c.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuario no encontrado", ""))
			return
		}
		c.logger.Error("error al eliminar usuario", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar usuario", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("usuario eliminado", nil))
}
