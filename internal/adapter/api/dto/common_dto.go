package dto

import "github.com/farmaciags/backend/pkg/validator"

// ErrorResponse representa la estructura de respuesta para errores
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse crea una nueva respuesta de error
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// ValidationErrorResponse es la respuesta 400 de la validación de
// esquemas: los mensaje por campo tal cual los produjo el validador
type ValidationErrorResponse struct {
	Errors validator.Errors `json:"errors"`
}

// NewValidationErrorResponse crea la respuesta de errores de validación
func NewValidationErrorResponse(errs validator.Errors) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: errs}
}

// SuccessResponse representa una respuesta genérica de éxito
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse crea una nueva respuesta de éxito
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Message: message,
		Data:    data,
	}
}

// ListResponse es la envoltura paginada de los listados
type ListResponse struct {
	Data       interface{} `json:"data"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// NewListResponse crea una respuesta de listado paginado
func NewListResponse(data interface{}, total, page, pageSize int) ListResponse {
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	return ListResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Pagination normaliza los parámetros de paginación
type Pagination struct {
	Page     int
	PageSize int
}

// GetPagination retorna parámetros de paginación con valores por defecto
func GetPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// Offset retorna el desplazamiento correspondiente a la página
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
