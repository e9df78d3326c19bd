package controller

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/farmaciags/backend/internal/adapter/api/dto"
	"github.com/farmaciags/backend/internal/adapter/repository"
	userdomain "github.com/farmaciags/backend/internal/domain/user"
	"github.com/farmaciags/backend/pkg/audit"
	"github.com/farmaciags/backend/pkg/auth"
	"github.com/farmaciags/backend/pkg/logger"
	"github.com/farmaciags/backend/pkg/validator"
)

// AuthController gestiona el inicio de sesión y el refresco de tokens
type AuthController struct {
	userRepo    userdomain.Repository
	sessionRepo userdomain.SessionRepository
	jwtService  *auth.JWTService
	refreshTTL  time.Duration
	validate    *validator.Validator
	recorder    *audit.Recorder
	logger      logger.Logger
}

// NewAuthController crea una nueva instancia de AuthController
func NewAuthController(
	userRepo userdomain.Repository,
	sessionRepo userdomain.SessionRepository,
	jwtService *auth.JWTService,
	refreshTTL time.Duration,
	validate *validator.Validator,
	recorder *audit.Recorder,
	logger logger.Logger,
) *AuthController {
	return &AuthController{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		refreshTTL:  refreshTTL,
		validate:    validate,
		recorder:    recorder,
		logger:      logger,
	}
}

// Login autentica a un usuario
// @Summary Iniciar sesión
// @Description Autentica al usuario y retorna los tokens de acceso y refresco
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	if errs := c.validate.ValidateStruct(req); errs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(errs))
		return
	}

	// La misma respuesta para correo inexistente y contraseña errada:
	// no se revela cuál de los dos falló.
	u, err := c.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciales inválidas", ""))
			return
		}
		c.logger.Error("error al buscar usuario en login", "email", req.Email, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al iniciar sesión", ""))
		return
	}

	if !u.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciales inválidas", ""))
		return
	}

	accessToken, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("error al generar token de acceso", "user_id", u.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al iniciar sesión", ""))
		return
	}

	refreshToken, err := c.createSession(ctx, u.ID)
	if err != nil {
		c.logger.Error("error al crear sesión de refresco", "user_id", u.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al iniciar sesión", ""))
		return
	}

	ctx.Set(auth.CtxUserID, u.ID)
	c.recorder.Record(ctx, "LOGIN", "")

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserPayload(u),
	})
}

// Refresh renueva el token de acceso
// @Summary Refrescar token
// @Description Emite un nuevo token de acceso a partir del token de refresco
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest true "Token de refresco"
// @Success 200 {object} dto.RefreshResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	session, err := c.findSession(ctx, req.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token de refresco inválido", ""))
		return
	}

	if session.Expired() {
		_ = c.sessionRepo.DeleteSession(ctx, session.ID)
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token de refresco expirado", ""))
		return
	}

	u, err := c.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token de refresco inválido", ""))
		return
	}

	accessToken, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("error al generar token de acceso", "user_id", u.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al refrescar token", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshResponse{AccessToken: accessToken})
}

// Logout invalida la sesión de refresco
// @Summary Cerrar sesión
// @Description Elimina la sesión asociada al token de refresco
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest true "Token de refresco"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	// Cerrar sesión con un token desconocido no es un error.
	if session, err := c.findSession(ctx, req.Token); err == nil {
		_ = c.sessionRepo.DeleteSession(ctx, session.ID)
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("sesión cerrada", nil))
}

// createSession genera el token de refresco, guarda su hash y retorna
// el token en claro. El token nunca se persiste tal cual.
func (c *AuthController) createSession(ctx *gin.Context, userID int64) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	session := &userdomain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(c.refreshTTL),
		CreatedAt: time.Now(),
	}

	if err := c.sessionRepo.CreateSession(ctx, session); err != nil {
		return "", err
	}

	return token, nil
}

// findSession busca la sesión por el hash del token recibido
func (c *AuthController) findSession(ctx *gin.Context, token string) (*userdomain.Session, error) {
	return c.sessionRepo.FindSessionByTokenHash(ctx, hashToken(token))
}

// hashToken calcula el hash SHA-256 del token en hexadecimal
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
