package medicine

import (
	"errors"
	"time"
)

var (
	ErrEmptyName     = errors.New("el nombre del medicamento es obligatorio")
	ErrEmptyLot      = errors.New("el lote del medicamento es obligatorio")
	ErrNegativeStock = errors.New("el stock no puede ser negativo")
	ErrNegativePrice = errors.New("el precio no puede ser negativo")
)

// DateLayout es el formato de la fecha de vencimiento aceptado en la API
const DateLayout = "2006-01-02"

// Medicine representa un medicamento del inventario
type Medicine struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Stock          int       `json:"stock"`
	Price          float64   `json:"price"`
	ExpirationDate time.Time `json:"expiration_date"`
	Lot            string    `json:"lot"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewMedicine crea un nuevo medicamento validando sus invariantes
func NewMedicine(name, description string, stock int, price float64, expirationDate time.Time, lot string) (*Medicine, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if lot == "" {
		return nil, ErrEmptyLot
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	now := time.Now()
	return &Medicine{
		Name:           name,
		Description:    description,
		Stock:          stock,
		Price:          price,
		ExpirationDate: expirationDate,
		Lot:            lot,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Update actualiza los datos del medicamento validando sus invariantes
func (m *Medicine) Update(name, description string, stock int, price float64, expirationDate time.Time, lot string) error {
	if name == "" {
		return ErrEmptyName
	}
	if lot == "" {
		return ErrEmptyLot
	}
	if stock < 0 {
		return ErrNegativeStock
	}
	if price < 0 {
		return ErrNegativePrice
	}

	m.Name = name
	m.Description = description
	m.Stock = stock
	m.Price = price
	m.ExpirationDate = expirationDate
	m.Lot = lot
	m.UpdatedAt = time.Now()

	return nil
}

// LowStock indica si el stock está por debajo del umbral dado
func (m *Medicine) LowStock(threshold int) bool {
	return m.Stock < threshold
}

// ExpiresBefore indica si el medicamento vence antes de la fecha dada
func (m *Medicine) ExpiresBefore(t time.Time) bool {
	return m.ExpirationDate.Before(t)
}
