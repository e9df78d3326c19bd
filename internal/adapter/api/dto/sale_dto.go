package dto

import (
	"time"

	"github.com/farmaciags/backend/internal/domain/sale"
)

// SaleDetailRequest es una línea del cuerpo de creación de venta
type SaleDetailRequest struct {
	MedicineID *int64   `json:"medicineId" validate:"required"`
	Quantity   *int     `json:"quantity" validate:"required,gt=0"`
	Price      *float64 `json:"price" validate:"required,gte=0"`
}

// SaleRequest es el cuerpo de creación de una venta
type SaleRequest struct {
	ClientID      *int64              `json:"clientId" validate:"required"`
	Total         *float64            `json:"total" validate:"required,gte=0"`
	PaymentMethod string              `json:"paymentMethod"`
	RNC           string              `json:"rnc"`
	Details       []SaleDetailRequest `json:"details" validate:"required,min=1,dive"`
}

// SaleItemResponse es una línea de venta en las respuestas
type SaleItemResponse struct {
	MedicineName string  `json:"medicine_name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
}

// SaleResponse es la representación de una venta en las respuestas
type SaleResponse struct {
	ID            int64              `json:"id"`
	UserName      string             `json:"user_name"`
	ClientName    string             `json:"client_name"`
	Total         float64            `json:"total"`
	CreatedAt     time.Time          `json:"created_at"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	Items         []SaleItemResponse `json:"items,omitempty"`
}

// CashboxDetailsResponse es la respuesta del detalle del cuadre de caja
type CashboxDetailsResponse struct {
	Summary sale.CashboxSummary `json:"summary"`
	Sales   []SaleResponse      `json:"sales"`
}

// ToSaleResponse convierte la entidad a su DTO de respuesta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			MedicineName: it.MedicineName,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			TotalPrice:   it.TotalPrice,
		})
	}

	clientName := s.ClientName
	if clientName == "" {
		clientName = "Cliente ocasional"
	}

	return SaleResponse{
		ID:            s.ID,
		UserName:      s.UserName,
		ClientName:    clientName,
		Total:         s.Total,
		CreatedAt:     s.CreatedAt,
		PaymentMethod: s.PaymentMethod,
		Status:        string(s.Status),
		Items:         items,
	}
}

// ToSaleListResponse convierte la lista de ventas a DTOs
func ToSaleListResponse(sales []*sale.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, ToSaleResponse(s))
	}
	return out
}
