package sale

import (
	"errors"
	"time"
)

var (
	ErrNoItems          = errors.New("la venta debe incluir al menos un producto")
	ErrNegativeTotal    = errors.New("el total no puede ser negativo")
	ErrInvalidQuantity  = errors.New("la cantidad debe ser mayor que cero")
	ErrNegativePrice    = errors.New("el precio unitario no puede ser negativo")
	ErrAlreadyCancelled = errors.New("la venta ya está cancelada")
)

// Status representa el estado de una venta
type Status string

const (
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// UnknownPaymentMethod agrupa las ventas sin método de pago registrado
const UnknownPaymentMethod = "Desconocido"

// Item es una línea de venta. La venta es dueña de sus líneas: se
// eliminan junto con ella.
type Item struct {
	ID           int64   `json:"id"`
	SaleID       int64   `json:"sale_id"`
	MedicineID   int64   `json:"medicine_id"`
	MedicineName string  `json:"medicine_name,omitempty"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
}

// Sale representa una venta registrada en caja
type Sale struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	UserName      string    `json:"user_name,omitempty"`
	ClientID      *int64    `json:"client_id"`
	ClientName    string    `json:"client_name,omitempty"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	RNC           string    `json:"rnc,omitempty"`
	Status        Status    `json:"status"`
	Items         []Item    `json:"items,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewSale arma una venta validando sus invariantes. El total se calcula
// a partir de las líneas.
func NewSale(userID int64, clientID *int64, paymentMethod, rnc string, items []Item) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	var total float64
	for i := range items {
		if items[i].Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if items[i].UnitPrice < 0 {
			return nil, ErrNegativePrice
		}
		items[i].TotalPrice = items[i].UnitPrice * float64(items[i].Quantity)
		total += items[i].TotalPrice
	}

	if paymentMethod == "" {
		paymentMethod = UnknownPaymentMethod
	}

	return &Sale{
		UserID:        userID,
		ClientID:      clientID,
		Total:         total,
		PaymentMethod: paymentMethod,
		RNC:           rnc,
		Status:        StatusCompleted,
		Items:         items,
		CreatedAt:     time.Now(),
	}, nil
}

// Cancel marca la venta como cancelada
func (s *Sale) Cancel() error {
	if s.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	s.Status = StatusCancelled
	return nil
}

// Cancelled indica si la venta está cancelada
func (s *Sale) Cancelled() bool {
	return s.Status == StatusCancelled
}
